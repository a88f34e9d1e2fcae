// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package runtime exposes the types a graph layer uses to bind model
// weights and operands to jennifer tensors.
//
// Example:
//
//	attr := runtime.NewAttribute([]int32{64, 3, 3}, weight, tensor.Float32)
//	kernel, err := runtime.AttributeTensor[float32](attr)
package runtime

import (
	"github.com/born-ml/jennifer/internal/runtime"
	"github.com/born-ml/jennifer/internal/tensor"
)

// Attribute is a serialized weight: declared shape, raw bytes and element-type tag.
type Attribute = runtime.Attribute

// Operand is a named, shaped group of shared tensor handles.
type Operand[T tensor.Numeric] = runtime.Operand[T]

// NewAttribute creates an attribute from its parts.
func NewAttribute(shape []int32, weight []byte, dtype tensor.DataType) *Attribute {
	return runtime.NewAttribute(shape, weight, dtype)
}

// Get decodes an attribute's weight bytes into a []T.
func Get[T tensor.Numeric](a *Attribute, clearWeight bool) ([]T, error) {
	return runtime.Get[T](a, clearWeight)
}

// AttributeTensor binds an attribute's weight to a tensor of its declared shape.
func AttributeTensor[T tensor.Numeric](a *Attribute) (*tensor.Tensor[T], error) {
	return runtime.AttributeTensor[T](a)
}

// NewOperand creates an operand with room for batch tensors.
func NewOperand[T tensor.Numeric](name string, shapes []int32, batch int, dtype tensor.DataType) *Operand[T] {
	return runtime.NewOperand[T](name, shapes, batch, dtype)
}
