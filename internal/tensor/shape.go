package tensor

import (
	"fmt"
	"math"
)

// MaxRank is the largest number of axes a tensor can declare.
const MaxRank = 3

// Shape represents the logical dimensions of a tensor as the caller sees them.
type Shape []int

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has 1 to MaxRank axes, all positive.
func (s Shape) Validate() error {
	if len(s) == 0 || len(s) > MaxRank {
		return fmt.Errorf("rank %d out of range [1, %d]", len(s), MaxRank)
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Extent is the physical size of the backing buffer: channels, rows, cols.
type Extent [3]int

// Channels returns the number of planes.
func (e Extent) Channels() int { return e[0] }

// Rows returns the number of rows per plane.
func (e Extent) Rows() int { return e[1] }

// Cols returns the number of columns per plane.
func (e Extent) Cols() int { return e[2] }

// PlaneSize returns rows*cols.
func (e Extent) PlaneSize() int { return e[1] * e[2] }

// Size returns channels*rows*cols.
func (e Extent) Size() int { return e[0] * e[1] * e[2] }

// Offset returns the physical linear offset of (ch, row, col).
// Planes are contiguous and outermost; inside a plane rows vary fastest.
func (e Extent) Offset(ch, row, col int) int {
	return ch*e.PlaneSize() + col*e[1] + row
}

// rowMajorIndex returns the position of (ch, row, col) in a row-major
// serialization, where cols vary fastest.
func (e Extent) rowMajorIndex(ch, row, col int) int {
	return ch*e.PlaneSize() + row*e[2] + col
}

// Shape returns the full 3-axis shape without collapsing leading ones.
func (e Extent) Shape() Shape {
	return Shape{e[0], e[1], e[2]}
}

// String renders the extent as (channels, rows, cols).
func (e Extent) String() string {
	return fmt.Sprintf("(%d, %d, %d)", e[0], e[1], e[2])
}

// alignExtent right-aligns dims into a 3-slot extent, filling missing
// leading axes with 1. The element count must fit in an int.
func alignExtent(dims []int) (Extent, error) {
	if err := Shape(dims).Validate(); err != nil {
		return Extent{}, err
	}
	size := 1
	for _, dim := range dims {
		if dim > math.MaxInt/size {
			return Extent{}, fmt.Errorf("shape %v overflows the element count", dims)
		}
		size *= dim
	}
	ext := Extent{1, 1, 1}
	copy(ext[MaxRank-len(dims):], dims)
	return ext, nil
}

// collapse strips leading axes equal to 1, keeping at least one axis.
//
//	(1, 1, N) -> (N)
//	(1, R, C) -> (R, C)
//	(Ch, R, C) -> (Ch, R, C)
func (e Extent) collapse() Shape {
	switch {
	case e[0] == 1 && e[1] == 1:
		return Shape{e[2]}
	case e[0] == 1:
		return Shape{e[1], e[2]}
	default:
		return e.Shape()
	}
}

// Normalize canonicalizes a rank-1..3 shape into a physical extent and the
// minimal logical shape presented to callers.
//
// Examples:
//
//	Normalize([]int{24})       -> (1, 1, 24), (24)
//	Normalize([]int{1, 24})    -> (1, 1, 24), (24)
//	Normalize([]int{1, 13, 14}) -> (1, 13, 14), (13, 14)
//	Normalize([]int{3, 4, 5})  -> (3, 4, 5), (3, 4, 5)
func Normalize(dims []int) (Extent, Shape, error) {
	ext, err := alignExtent(dims)
	if err != nil {
		return Extent{}, nil, err
	}
	return ext, ext.collapse(), nil
}
