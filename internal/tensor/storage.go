package tensor

// Ownership tells whether a tensor manages its buffer or borrows it.
type Ownership int

// Storage modes.
const (
	// Owning tensors allocate their buffer and may replace it.
	Owning Ownership = iota
	// Viewing tensors wrap caller memory and never reallocate it.
	// The caller must keep the memory alive and unshared while in use.
	Viewing
)

// String returns a human-readable ownership mode.
func (o Ownership) String() string {
	switch o {
	case Owning:
		return "owning"
	case Viewing:
		return "viewing"
	default:
		return "unknown"
	}
}

// storage is the contiguous element buffer together with its ownership mode.
type storage[T Numeric] struct {
	data []T
	mode Ownership
}

func newOwned[T Numeric](n int) storage[T] {
	return storage[T]{data: make([]T, n), mode: Owning}
}

func newView[T Numeric](buf []T) storage[T] {
	return storage[T]{data: buf[:len(buf):len(buf)], mode: Viewing}
}

func (s storage[T]) empty() bool {
	return len(s.data) == 0
}

// clone returns an owning deep copy.
func (s storage[T]) clone() storage[T] {
	if s.empty() {
		return storage[T]{}
	}
	out := newOwned[T](len(s.data))
	copy(out.data, s.data)
	return out
}
