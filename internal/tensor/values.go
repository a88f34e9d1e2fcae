package tensor

// Values returns a copy of the elements. With rowMajor set the order is
// channel, row, column (column fastest), the flattening most tensor
// libraries use; otherwise the buffer is copied in physical order.
func (t *Tensor[T]) Values(rowMajor bool) ([]T, error) {
	if t.Empty() {
		return nil, errEmpty("Values")
	}
	out := make([]T, len(t.store.data))
	if !rowMajor {
		copy(out, t.store.data)
		return out, nil
	}
	ext := t.extent
	for ch := 0; ch < ext.Channels(); ch++ {
		for row := 0; row < ext.Rows(); row++ {
			for col := 0; col < ext.Cols(); col++ {
				out[ext.rowMajorIndex(ch, row, col)] = t.store.data[ext.Offset(ch, row, col)]
			}
		}
	}
	return out, nil
}

// FillValues overwrites every element from values, read in row-major or
// physical order (see Values). len(values) must equal the tensor size.
func (t *Tensor[T]) FillValues(values []T, rowMajor bool) error {
	if t.Empty() {
		return errEmpty("FillValues")
	}
	if len(values) != len(t.store.data) {
		return precondition("FillValues", "got %d values for %d elements", len(values), len(t.store.data))
	}
	if !rowMajor {
		copy(t.store.data, values)
		return nil
	}
	ext := t.extent
	for ch := 0; ch < ext.Channels(); ch++ {
		for row := 0; row < ext.Rows(); row++ {
			for col := 0; col < ext.Cols(); col++ {
				t.store.data[ext.Offset(ch, row, col)] = values[ext.rowMajorIndex(ch, row, col)]
			}
		}
	}
	return nil
}
