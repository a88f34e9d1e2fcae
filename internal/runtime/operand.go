package runtime

import (
	"fmt"

	"github.com/born-ml/jennifer/internal/tensor"
)

// Operand is a named value flowing between operators. Shapes is the
// declared shape whose first axis is the batch; Data holds one tensor per
// batch entry. Tensors are shared handles: several operands may point at
// the same tensor.
type Operand[T tensor.Numeric] struct {
	Name   string
	Shapes []int32
	Data   []*tensor.Tensor[T]
	Type   tensor.DataType
}

// NewOperand creates an operand with room for batch tensors.
func NewOperand[T tensor.Numeric](name string, shapes []int32, batch int, dtype tensor.DataType) *Operand[T] {
	return &Operand[T]{
		Name:   name,
		Shapes: shapes,
		Data:   make([]*tensor.Tensor[T], batch),
		Type:   dtype,
	}
}

// Size returns the product of the declared shape, or 0 when it is empty.
func (o *Operand[T]) Size() int {
	if len(o.Shapes) == 0 {
		return 0
	}
	n := 1
	for _, dim := range o.Shapes {
		n *= int(dim)
	}
	return n
}

// Validate checks every bound tensor against the declared per-batch
// shape Shapes[1:]. Unbound (nil) entries are skipped.
func (o *Operand[T]) Validate() error {
	if len(o.Shapes) < 2 {
		return fmt.Errorf("operand %q: declared shape %v has no per-batch axes: %w", o.Name, o.Shapes, tensor.ErrPrecondition)
	}
	if int(o.Shapes[0]) != len(o.Data) {
		return fmt.Errorf("operand %q: batch %d, got %d tensors: %w", o.Name, o.Shapes[0], len(o.Data), tensor.ErrPrecondition)
	}

	want := make(tensor.Shape, 0, len(o.Shapes)-1)
	for _, dim := range o.Shapes[1:] {
		want = append(want, int(dim))
	}
	wantExt, _, err := tensor.Normalize(want)
	if err != nil {
		return fmt.Errorf("operand %q: %v: %w", o.Name, err, tensor.ErrPrecondition)
	}

	for i, t := range o.Data {
		if t == nil {
			continue
		}
		ext, err := t.Shape()
		if err != nil {
			return fmt.Errorf("operand %q[%d]: %w", o.Name, i, err)
		}
		if ext != wantExt {
			raw, _ := t.RawShape()
			return fmt.Errorf("operand %q[%d]: shape %v does not match declared %v: %w", o.Name, i, raw, want, tensor.ErrPrecondition)
		}
	}
	return nil
}
