// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense array engine of the jennifer runtime.
//
// # Overview
//
// A Tensor has one to three axes. Whatever the declared rank, the data
// lives in a fixed physical layout of (channels, rows, cols): planes are
// contiguous and outermost, and inside a plane rows vary fastest
// (column-major). The package provides:
//   - Owning tensors (New) and zero-copy views over caller memory (FromBuffer)
//   - Binding of serialized weight bytes by element-type tag (FromBytes, Decode)
//   - Row-major or physical bulk transfer (Values, FillValues)
//   - Metadata-only and row-major reshape (Reshape, Flatten, Review)
//   - Spatial padding and truncation (Padding)
//
// # Basic Usage
//
//	t, err := tensor.New[float32](2, 3, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = t.FillValues(values, true)   // values in row-major order
//	_ = t.Reshape([]int{6, 4}, true) // numpy-style reshape
//	out, _ := t.Values(true)
//
// # Shapes
//
// Leading axes equal to 1 are dropped from the logical shape at
// construction: New(1, 1, 24) reports RawShape [24] and Shape (1, 1, 24).
// Reshape keeps the target exactly as given, and Padding reports the full
// 3-axis shape.
//
// # Errors
//
// Every violated precondition (empty tensor, bad rank, size mismatch,
// index out of range, reallocating a view) returns an error matching
// ErrPrecondition. Failing operations leave the tensor unchanged.
package tensor
