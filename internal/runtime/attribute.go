// Package runtime holds the types the graph layer uses to hand model
// weights and operands to the tensor engine.
package runtime

import (
	"fmt"

	"github.com/born-ml/jennifer/internal/tensor"
)

// Attribute is a serialized weight: its declared shape, its raw
// little-endian bytes and the element-type tag of those bytes.
type Attribute struct {
	Shape  []int32         // Declared shape (e.g., [64, 3, 3])
	Weight []byte          // Raw element bytes
	Type   tensor.DataType // Element encoding of Weight
}

// NewAttribute creates an attribute from its parts.
func NewAttribute(shape []int32, weight []byte, dtype tensor.DataType) *Attribute {
	return &Attribute{Shape: shape, Weight: weight, Type: dtype}
}

// NumElements returns the product of the declared shape.
func (a *Attribute) NumElements() int {
	if len(a.Shape) == 0 {
		return 0
	}
	n := 1
	for _, dim := range a.Shape {
		n *= int(dim)
	}
	return n
}

// Get decodes the weight bytes into a []T. When clearWeight is set the
// raw bytes are released afterwards.
//
// Example:
//
//	kernel, err := runtime.Get[float32](attr, true)
func Get[T tensor.Numeric](a *Attribute, clearWeight bool) ([]T, error) {
	if a.Type == tensor.Unknown {
		return nil, fmt.Errorf("attribute type is unknown: %w", tensor.ErrPrecondition)
	}
	data, err := tensor.Decode[T](a.Weight, a.Type)
	if err != nil {
		return nil, fmt.Errorf("decode attribute: %w", err)
	}
	if clearWeight {
		a.Weight = nil
	}
	return data, nil
}

// AttributeTensor binds the attribute's weight to a tensor shaped by its
// declared shape, which must have 1 to 3 axes. The tensor views Weight
// when the tag matches T (see tensor.FromBytes), so the attribute must
// outlive it.
func AttributeTensor[T tensor.Numeric](a *Attribute) (*tensor.Tensor[T], error) {
	dims := make([]int, len(a.Shape))
	for i, dim := range a.Shape {
		dims[i] = int(dim)
	}
	t, err := tensor.FromBytes[T](a.Weight, a.Type, dims...)
	if err != nil {
		return nil, fmt.Errorf("bind attribute %v: %w", a.Shape, err)
	}
	return t, nil
}
