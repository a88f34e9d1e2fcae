// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/jennifer/internal/tensor"
)

// Type aliases for public API

// Numeric is a constraint for tensor element types.
type Numeric = tensor.Numeric

// Tensor is a dense array of one to three axes.
//
// Example:
//
//	t, _ := tensor.New[float32](3, 224, 224)
//	ch, _ := t.Channels() // 3
type Tensor[T Numeric] = tensor.Tensor[T]

// Shape is the logical shape of a tensor.
type Shape = tensor.Shape

// Extent is the physical (channels, rows, cols) size of a tensor.
type Extent = tensor.Extent

// Ownership tells whether a tensor owns or views its buffer.
type Ownership = tensor.Ownership

// Ownership modes.
const (
	Owning  Ownership = tensor.Owning
	Viewing Ownership = tensor.Viewing
)

// DataType tags the element encoding of raw weight bytes.
type DataType = tensor.DataType

// Data type constants.
const (
	Unknown  DataType = tensor.Unknown
	Float32  DataType = tensor.Float32
	Float64  DataType = tensor.Float64
	Float16  DataType = tensor.Float16
	BFloat16 DataType = tensor.BFloat16
	Int32    DataType = tensor.Int32
	Int64    DataType = tensor.Int64
	Int16    DataType = tensor.Int16
	Int8     DataType = tensor.Int8
	Uint8    DataType = tensor.Uint8
)

// PreconditionError describes a violated precondition.
type PreconditionError = tensor.PreconditionError

// ErrPrecondition matches every error returned by tensor operations.
var ErrPrecondition = tensor.ErrPrecondition

// MaxRank is the largest number of axes a tensor can declare.
const MaxRank = tensor.MaxRank

// Creation functions

// New creates an owning tensor with the given dimensions.
//
// Example:
//
//	t, err := tensor.New[float32](13, 15) // Shape (1, 13, 15), RawShape [13 15]
func New[T Numeric](dims ...int) (*Tensor[T], error) {
	return tensor.New[T](dims...)
}

// FromBuffer creates a tensor that views buf without copying it.
//
// Example:
//
//	buf := make([]float32, 2*3*3)
//	t, err := tensor.FromBuffer(buf, 2, 3, 3)
func FromBuffer[T Numeric](buf []T, dims ...int) (*Tensor[T], error) {
	return tensor.FromBuffer(buf, dims...)
}

// FromBytes binds raw little-endian weight bytes of the given type.
//
// Example:
//
//	t, err := tensor.FromBytes[float32](weight, tensor.Float16, 64, 3, 3)
func FromBytes[T Numeric](data []byte, dtype DataType, dims ...int) (*Tensor[T], error) {
	return tensor.FromBytes[T](data, dtype, dims...)
}

// Decode converts raw little-endian bytes of the given type into a []T.
func Decode[T Numeric](data []byte, dtype DataType) ([]T, error) {
	return tensor.Decode[T](data, dtype)
}

// DataTypeOf returns the tag matching the in-memory encoding of T.
func DataTypeOf[T Numeric]() DataType {
	return tensor.DataTypeOf[T]()
}

// ParseDataType resolves a data type from its name or short alias.
func ParseDataType(s string) (DataType, error) {
	return tensor.ParseDataType(s)
}

// Normalize canonicalizes a rank-1..3 shape into an extent and a logical shape.
func Normalize(dims []int) (Extent, Shape, error) {
	return tensor.Normalize(dims)
}

// Must returns v, panicking if err is non-nil.
func Must[V any](v V, err error) V {
	return tensor.Must(v, err)
}
