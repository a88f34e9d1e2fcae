package tensor

import (
	"log/slog"

	"github.com/born-ml/jennifer/internal/parallel"
)

// Padding resizes the tensor to dims, keeping the region that the old and
// new extents share. Growth is appended at the high end of every axis and
// filled with value; shrinking truncates the high end.
//
// Unlike New, the logical shape afterwards is the full 3-axis extent:
// Padding([]int{5, 5}, 0) on a (2, 3) tensor reports RawShape (1, 5, 5).
// Padding allocates and fails on viewing tensors.
//
// Example:
//
//	t, _ := tensor.New[float32](2, 3, 3)
//	_ = t.Ones()
//	_ = t.Padding([]int{2, 5, 5}, 0) // each plane: 3x3 ones, zero border
func (t *Tensor[T]) Padding(dims []int, value T) error {
	if t.Empty() {
		return errEmpty("Padding")
	}
	dst, err := alignExtent(dims)
	if err != nil {
		return precondition("Padding", "%v", err)
	}
	if err := checkAlloc[T]("Padding", dst); err != nil {
		return err
	}
	if t.store.mode == Viewing {
		return precondition("Padding", "cannot reallocate a viewing tensor")
	}

	out := make([]T, dst.Size())
	for i := range out {
		out[i] = value
	}

	src := t.extent
	channels := min(src.Channels(), dst.Channels())
	rows := min(src.Rows(), dst.Rows())
	cols := min(src.Cols(), dst.Cols())
	parallel.For(channels, rows*cols, func(lo, hi int) {
		for ch := lo; ch < hi; ch++ {
			for col := 0; col < cols; col++ {
				from := src.Offset(ch, 0, col)
				to := dst.Offset(ch, 0, col)
				copy(out[to:to+rows], t.store.data[from:from+rows])
			}
		}
	}, workers)

	slog.Debug("tensor: padding", "from", src, "to", dst)
	t.replace(out, dst, dst.Shape())
	return nil
}
