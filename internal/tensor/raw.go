package tensor

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/d4l3k/go-bfloat16"
	"github.com/x448/float16"
)

// hostLittleEndian reports whether raw little-endian buffers can be
// reinterpreted in place.
var hostLittleEndian = func() bool {
	probe := uint16(1)
	//nolint:gosec // G103: reading the first byte of a uint16 to detect byte order.
	return *(*byte)(unsafe.Pointer(&probe)) == 1
}()

// Decode converts a little-endian byte buffer holding dtype elements into
// a new []T. The buffer must be non-empty and a whole number of elements.
//
// Example:
//
//	weights, err := tensor.Decode[float32](attr.Weight, tensor.Float16)
func Decode[T Numeric](data []byte, dtype DataType) ([]T, error) {
	size := dtype.Size()
	if size == 0 {
		return nil, precondition("Decode", "unsupported data type %s", dtype)
	}
	if len(data) == 0 {
		return nil, precondition("Decode", "empty buffer")
	}
	if len(data)%size != 0 {
		return nil, precondition("Decode", "%d bytes is not a multiple of the %s element size %d", len(data), dtype, size)
	}

	n := len(data) / size
	out := make([]T, n)
	switch dtype {
	case Float32:
		for i := range out {
			out[i] = T(math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:])))
		}
	case Float64:
		for i := range out {
			out[i] = T(math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:])))
		}
	case Float16:
		for i := range out {
			out[i] = T(float16.Frombits(binary.LittleEndian.Uint16(data[i*2:])).Float32())
		}
	case BFloat16:
		for i, v := range bfloat16.DecodeFloat32(data) {
			out[i] = T(v)
		}
	case Int32:
		for i := range out {
			//nolint:gosec // G115: reinterpreting the stored bit pattern.
			out[i] = T(int32(binary.LittleEndian.Uint32(data[i*4:])))
		}
	case Int64:
		for i := range out {
			//nolint:gosec // G115: reinterpreting the stored bit pattern.
			out[i] = T(int64(binary.LittleEndian.Uint64(data[i*8:])))
		}
	case Int16:
		for i := range out {
			//nolint:gosec // G115: reinterpreting the stored bit pattern.
			out[i] = T(int16(binary.LittleEndian.Uint16(data[i*2:])))
		}
	case Int8:
		for i, b := range data {
			//nolint:gosec // G115: reinterpreting the stored bit pattern.
			out[i] = T(int8(b))
		}
	case Uint8:
		for i, b := range data {
			out[i] = T(b)
		}
	}
	return out, nil
}

// FromBytes binds a raw weight buffer to a tensor of the given dimensions.
// The buffer must hold exactly channels*rows*cols elements of dtype, laid
// out physically (see Tensor).
//
// When dtype is the in-memory encoding of T and the buffer is suitably
// aligned, the result is a zero-copy viewing tensor over data; data must
// then outlive the tensor. Otherwise the elements are decoded into an
// owning tensor.
func FromBytes[T Numeric](data []byte, dtype DataType, dims ...int) (*Tensor[T], error) {
	ext, shape, err := Normalize(dims)
	if err != nil {
		return nil, precondition("FromBytes", "%v", err)
	}
	if dtype.Size() == 0 {
		return nil, precondition("FromBytes", "unsupported data type %s", dtype)
	}
	if len(data)%dtype.Size() != 0 || len(data)/dtype.Size() != ext.Size() {
		return nil, precondition("FromBytes", "%d bytes cannot hold %d %s elements", len(data), ext.Size(), dtype)
	}

	if view, ok := reinterpret[T](data, dtype); ok {
		return FromBuffer(view, dims...)
	}

	values, err := Decode[T](data, dtype)
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{
		store:  storage[T]{data: values, mode: Owning},
		extent: ext,
		shape:  shape,
	}, nil
}

// reinterpret views data as []T without copying when that is sound.
func reinterpret[T Numeric](data []byte, dtype DataType) ([]T, bool) {
	if !hostLittleEndian || DataTypeOf[T]() != dtype || len(data) == 0 {
		return nil, false
	}
	var zero T
	//nolint:gosec // G103: alignment check before reinterpreting the buffer.
	if uintptr(unsafe.Pointer(&data[0]))%unsafe.Alignof(zero) != 0 {
		return nil, false
	}
	//nolint:gosec // G103: unsafe.Slice for zero-copy binding, length checked by FromBytes.
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), len(data)/dtype.Size()), true
}
