// Package tensor provides the dense array engine of the jennifer inference runtime.
package tensor

import (
	"fmt"
	"strings"
)

// Numeric is a constraint for supported element types.
// It uses Go generics to ensure compile-time type safety.
type Numeric interface {
	~float32 | ~float64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64
}

// DataType tags the element encoding of a raw weight buffer.
type DataType int

// Supported element-type tags. The numbering follows the attribute
// encoding used by serialized models.
const (
	Unknown DataType = iota
	Float32
	Float64
	Float16
	Int32
	Int64
	Int16
	Int8
	Uint8
	BFloat16
)

// Size returns the byte size of one element, or 0 for Unknown.
func (dt DataType) Size() int {
	switch dt {
	case Float64, Int64:
		return 8
	case Float32, Int32:
		return 4
	case Float16, BFloat16, Int16:
		return 2
	case Int8, Uint8:
		return 1
	default:
		return 0
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Float16:
		return "float16"
	case BFloat16:
		return "bfloat16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Int16:
		return "int16"
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	default:
		return "unknown"
	}
}

// ParseDataType resolves a data type from its name or a common short alias
// ("f32", "fp16", "bf16", "i8", "u8", ...).
func ParseDataType(s string) (DataType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "float32", "f32", "fp32":
		return Float32, nil
	case "float64", "f64", "fp64":
		return Float64, nil
	case "float16", "f16", "fp16", "half":
		return Float16, nil
	case "bfloat16", "bf16":
		return BFloat16, nil
	case "int32", "i32":
		return Int32, nil
	case "int64", "i64":
		return Int64, nil
	case "int16", "i16":
		return Int16, nil
	case "int8", "i8":
		return Int8, nil
	case "uint8", "u8":
		return Uint8, nil
	default:
		return Unknown, fmt.Errorf("unknown data type %q", s)
	}
}

// DataTypeOf returns the tag whose encoding is exactly the in-memory
// layout of T. Types without a tag (and named types) report Unknown.
func DataTypeOf[T Numeric]() DataType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case int16:
		return Int16
	case int8:
		return Int8
	case uint8:
		return Uint8
	default:
		return Unknown
	}
}
