package tensor

import (
	"log/slog"

	"github.com/born-ml/jennifer/internal/logutil"
	"github.com/born-ml/jennifer/internal/parallel"
)

// workers bounds the goroutines used to move planes between buffers.
var workers = parallel.DefaultConfig()

// targetExtent validates a reshape target against the current size.
func (t *Tensor[T]) targetExtent(op string, shape []int) (Extent, error) {
	if t.Empty() {
		return Extent{}, errEmpty(op)
	}
	ext, err := alignExtent(shape)
	if err != nil {
		return Extent{}, precondition(op, "%v", err)
	}
	if ext.Size() != len(t.store.data) {
		return Extent{}, precondition(op, "target %v holds %d elements, tensor has %d", shape, ext.Size(), len(t.store.data))
	}
	return ext, nil
}

// Reshape changes the tensor's shape to a rank-1..3 target with the same
// number of elements. The logical shape becomes shape exactly as given.
//
// With rowMajor unset the buffer is reinterpreted under the new extent
// without moving any element; this works on viewing tensors too.
//
// With rowMajor set the result has numpy reshape semantics: the row-major
// serialization (see Values) is the same before and after. This moves
// data into a new buffer and fails on viewing tensors.
//
// Example:
//
//	t, _ := tensor.New[float32](2, 3, 4)
//	err := t.Reshape([]int{6, 4}, true)
func (t *Tensor[T]) Reshape(shape []int, rowMajor bool) error {
	ext, err := t.targetExtent("Reshape", shape)
	if err != nil {
		return err
	}
	if rowMajor {
		if err := t.review("Reshape", ext); err != nil {
			return err
		}
	} else {
		logutil.Trace("tensor: reinterpret", "from", t.extent, "to", ext)
		t.extent = ext
	}
	t.shape = Shape(shape).Clone()
	return nil
}

// Flatten reshapes the tensor into a single axis of Size elements.
func (t *Tensor[T]) Flatten(rowMajor bool) error {
	if t.Empty() {
		return errEmpty("Flatten")
	}
	return t.Reshape([]int{len(t.store.data)}, rowMajor)
}

// Review permutes the buffer so that the row-major serialization under
// the target shape equals the row-major serialization under the current
// extent. It always allocates and fails on viewing tensors.
func (t *Tensor[T]) Review(shape []int) error {
	ext, err := t.targetExtent("Review", shape)
	if err != nil {
		return err
	}
	if err := t.review("Review", ext); err != nil {
		return err
	}
	t.shape = Shape(shape).Clone()
	return nil
}

// review moves every element to the physical position that its row-major
// index addresses in dst.
func (t *Tensor[T]) review(op string, dst Extent) error {
	if t.store.mode == Viewing {
		return precondition(op, "cannot reallocate a viewing tensor")
	}

	src := t.extent
	out := make([]T, dst.Size())
	srcPlane, dstPlane := src.PlaneSize(), dst.PlaneSize()
	// Distinct source elements have distinct row-major positions, so
	// channels can be moved concurrently.
	parallel.For(src.Channels(), srcPlane, func(lo, hi int) {
		for ch := lo; ch < hi; ch++ {
			for col := 0; col < src.Cols(); col++ {
				column := t.store.data[src.Offset(ch, 0, col):]
				for row := 0; row < src.Rows(); row++ {
					p := ch*srcPlane + row*src.Cols() + col
					rem := p % dstPlane
					out[dst.Offset(p/dstPlane, rem/dst.Cols(), rem%dst.Cols())] = column[row]
				}
			}
		}
	}, workers)

	slog.Debug("tensor: review", "from", src, "to", dst)
	t.store = storage[T]{data: out, mode: Owning}
	t.extent = dst
	return nil
}
