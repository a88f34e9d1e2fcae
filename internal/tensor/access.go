package tensor

// offset validates (ch, row, col) against the extent and returns the
// physical offset.
func (t *Tensor[T]) offset(op string, ch, row, col int) (int, error) {
	if t.Empty() {
		return 0, errEmpty(op)
	}
	if ch < 0 || ch >= t.extent.Channels() {
		return 0, precondition(op, "channel index %d out of range [0, %d)", ch, t.extent.Channels())
	}
	if row < 0 || row >= t.extent.Rows() {
		return 0, precondition(op, "row index %d out of range [0, %d)", row, t.extent.Rows())
	}
	if col < 0 || col >= t.extent.Cols() {
		return 0, precondition(op, "column index %d out of range [0, %d)", col, t.extent.Cols())
	}
	return t.extent.Offset(ch, row, col), nil
}

func (t *Tensor[T]) checkIndex(op string, off int) error {
	if t.Empty() {
		return errEmpty(op)
	}
	if off < 0 || off >= len(t.store.data) {
		return precondition(op, "index %d out of range [0, %d)", off, len(t.store.data))
	}
	return nil
}

// At returns the element at the logical position (ch, row, col).
func (t *Tensor[T]) At(ch, row, col int) (T, error) {
	off, err := t.offset("At", ch, row, col)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.store.data[off], nil
}

// Set stores v at the logical position (ch, row, col).
func (t *Tensor[T]) Set(v T, ch, row, col int) error {
	off, err := t.offset("Set", ch, row, col)
	if err != nil {
		return err
	}
	t.store.data[off] = v
	return nil
}

// Index returns the element at the raw physical offset.
func (t *Tensor[T]) Index(off int) (T, error) {
	if err := t.checkIndex("Index", off); err != nil {
		var zero T
		return zero, err
	}
	return t.store.data[off], nil
}

// SetIndex stores v at the raw physical offset.
func (t *Tensor[T]) SetIndex(off int, v T) error {
	if err := t.checkIndex("SetIndex", off); err != nil {
		return err
	}
	t.store.data[off] = v
	return nil
}

// Data returns the whole buffer in physical order (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() ([]T, error) {
	if t.Empty() {
		return nil, errEmpty("Data")
	}
	return t.store.data, nil
}

// DataFrom returns the buffer starting at the physical offset (zero-copy).
func (t *Tensor[T]) DataFrom(off int) ([]T, error) {
	if err := t.checkIndex("DataFrom", off); err != nil {
		return nil, err
	}
	return t.store.data[off:], nil
}

// Plane returns the contiguous buffer of one channel (zero-copy).
// Inside the plane rows vary fastest: element (row, col) is at col*rows+row.
func (t *Tensor[T]) Plane(ch int) ([]T, error) {
	if t.Empty() {
		return nil, errEmpty("Plane")
	}
	if ch < 0 || ch >= t.extent.Channels() {
		return nil, precondition("Plane", "channel index %d out of range [0, %d)", ch, t.extent.Channels())
	}
	n := t.extent.PlaneSize()
	return t.store.data[ch*n : (ch+1)*n : (ch+1)*n], nil
}

// Slice returns an owning rows x cols copy of one channel.
func (t *Tensor[T]) Slice(ch int) (*Tensor[T], error) {
	plane, err := t.Plane(ch)
	if err != nil {
		return nil, err
	}
	out, err := New[T](t.extent.Rows(), t.extent.Cols())
	if err != nil {
		return nil, err
	}
	copy(out.store.data, plane)
	return out, nil
}
