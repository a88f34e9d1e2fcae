package tensor

import (
	"fmt"
	"log/slog"
	"strconv"
	"unsafe"
)

// maxBytes bounds the buffer a single tensor may allocate.
const maxBytes = 1 << min(47, strconv.IntSize-2)

// checkAlloc rejects extents whose buffer of T would exceed maxBytes.
func checkAlloc[T Numeric](op string, ext Extent) error {
	var zero T
	if ext.Size() > maxBytes/int(unsafe.Sizeof(zero)) {
		return precondition(op, "extent %v needs more than %d bytes", ext, maxBytes)
	}
	return nil
}

// Tensor is a dense array of up to three axes with element type T.
//
// The buffer is laid out plane by plane (channels outermost) and each plane
// is column-major: the physical offset of (ch, row, col) is
// ch*(rows*cols) + col*rows + row.
//
// The zero value is an empty tensor. A Tensor is not safe for concurrent
// mutation; callers sharing one across goroutines must synchronize.
//
// Example:
//
//	t, err := tensor.New[float32](3, 224, 224)
//	if err != nil {
//	    return err
//	}
//	rows, _ := t.Rows() // 224
type Tensor[T Numeric] struct {
	store  storage[T]
	extent Extent
	shape  Shape
}

// New creates an owning tensor with the given dimensions.
// Dimensions are right-aligned into (channels, rows, cols) and leading
// singleton axes are dropped from the logical shape.
//
// Example:
//
//	t, _ := tensor.New[float32](1, 24)
//	shape, _ := t.RawShape() // [24]
func New[T Numeric](dims ...int) (*Tensor[T], error) {
	ext, shape, err := Normalize(dims)
	if err != nil {
		return nil, precondition("New", "%v", err)
	}
	if err := checkAlloc[T]("New", ext); err != nil {
		return nil, err
	}
	return &Tensor[T]{
		store:  newOwned[T](ext.Size()),
		extent: ext,
		shape:  shape,
	}, nil
}

// FromBuffer creates a viewing tensor over buf. The first
// channels*rows*cols elements of buf are used as the tensor's storage,
// laid out physically (see Tensor). The tensor never reallocates buf, so
// operations that need a new buffer (row-major Reshape, Review, Padding)
// fail on it. buf must outlive the tensor.
func FromBuffer[T Numeric](buf []T, dims ...int) (*Tensor[T], error) {
	if buf == nil {
		return nil, precondition("FromBuffer", "buffer is nil")
	}
	ext, shape, err := Normalize(dims)
	if err != nil {
		return nil, precondition("FromBuffer", "%v", err)
	}
	if len(buf) < ext.Size() {
		return nil, precondition("FromBuffer", "buffer holds %d elements, extent %v needs %d", len(buf), ext, ext.Size())
	}
	return &Tensor[T]{
		store:  newView(buf[:ext.Size()]),
		extent: ext,
		shape:  shape,
	}, nil
}

// Empty reports whether the tensor has no storage. It never fails.
func (t *Tensor[T]) Empty() bool {
	return t == nil || t.store.empty()
}

// Ownership returns whether the tensor owns or views its buffer.
func (t *Tensor[T]) Ownership() Ownership {
	return t.store.mode
}

// Size returns channels*rows*cols.
func (t *Tensor[T]) Size() (int, error) {
	if t.Empty() {
		return 0, errEmpty("Size")
	}
	return len(t.store.data), nil
}

// Rows returns the number of rows per plane.
func (t *Tensor[T]) Rows() (int, error) {
	if t.Empty() {
		return 0, errEmpty("Rows")
	}
	return t.extent.Rows(), nil
}

// Cols returns the number of columns per plane.
func (t *Tensor[T]) Cols() (int, error) {
	if t.Empty() {
		return 0, errEmpty("Cols")
	}
	return t.extent.Cols(), nil
}

// Channels returns the number of planes.
func (t *Tensor[T]) Channels() (int, error) {
	if t.Empty() {
		return 0, errEmpty("Channels")
	}
	return t.extent.Channels(), nil
}

// Shape returns the full physical extent (channels, rows, cols).
func (t *Tensor[T]) Shape() (Extent, error) {
	if t.Empty() {
		return Extent{}, errEmpty("Shape")
	}
	return t.extent, nil
}

// RawShape returns a copy of the logical shape.
func (t *Tensor[T]) RawShape() (Shape, error) {
	if t.Empty() {
		return nil, errEmpty("RawShape")
	}
	if len(t.shape) < 1 || len(t.shape) > MaxRank {
		return nil, precondition("RawShape", "logical rank %d out of range [1, %d]", len(t.shape), MaxRank)
	}
	return t.shape.Clone(), nil
}

// Clone returns an owning deep copy. Cloning an empty tensor yields an
// empty tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	if t.Empty() {
		return &Tensor[T]{}
	}
	return &Tensor[T]{
		store:  t.store.clone(),
		extent: t.extent,
		shape:  t.shape.Clone(),
	}
}

// Move transfers the buffer, extent and shape to a new tensor and leaves
// the receiver empty. The ownership mode moves with the buffer.
func (t *Tensor[T]) Move() *Tensor[T] {
	out := &Tensor[T]{
		store:  t.store,
		extent: t.extent,
		shape:  t.shape,
	}
	*t = Tensor[T]{}
	return out
}

// SetData copies src's elements into the receiver. Both tensors must have
// the same extent; the receiver keeps its buffer and ownership mode.
func (t *Tensor[T]) SetData(src *Tensor[T]) error {
	if t.Empty() || src.Empty() {
		return errEmpty("SetData")
	}
	if t.extent != src.extent {
		return precondition("SetData", "extent mismatch: %v vs %v", t.extent, src.extent)
	}
	copy(t.store.data, src.store.data)
	return nil
}

// String returns a short description such as "Tensor[float32](2, 3, 3) owning".
func (t *Tensor[T]) String() string {
	var zero T
	if t.Empty() {
		return fmt.Sprintf("Tensor[%T](empty)", zero)
	}
	return fmt.Sprintf("Tensor[%T]%v %s", zero, t.extent, t.store.mode)
}

// LogValue implements slog.LogValuer.
func (t *Tensor[T]) LogValue() slog.Value {
	if t.Empty() {
		return slog.StringValue("empty")
	}
	return slog.GroupValue(
		slog.Any("extent", t.extent),
		slog.Any("shape", []int(t.shape)),
		slog.String("storage", t.store.mode.String()),
	)
}

// replace swaps in a freshly allocated owning buffer of the given extent.
func (t *Tensor[T]) replace(data []T, ext Extent, shape Shape) {
	t.store = storage[T]{data: data, mode: Owning}
	t.extent = ext
	t.shape = shape
}
