package tensor

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func float32Bytes(values ...float32) []byte {
	out := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

// unsafeBytes exposes the bytes of a float32 slice without copying.
func unsafeBytes(values []float32) []byte {
	//nolint:gosec // G103: test helper producing an aligned byte view.
	return unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), len(values)*4)
}

func TestDecode(t *testing.T) {
	t.Run("float32", func(t *testing.T) {
		got, err := Decode[float32](float32Bytes(1.5, -2, 0.25), Float32)
		require.NoError(t, err)
		assert.Equal(t, []float32{1.5, -2, 0.25}, got)
	})

	t.Run("float64", func(t *testing.T) {
		buf := make([]byte, 16)
		binary.LittleEndian.PutUint64(buf, math.Float64bits(math.Pi))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(-1))
		got, err := Decode[float64](buf, Float64)
		require.NoError(t, err)
		assert.Equal(t, []float64{math.Pi, -1}, got)
	})

	t.Run("float16", func(t *testing.T) {
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint16(buf, float16.Fromfloat32(1.5).Bits())
		binary.LittleEndian.PutUint16(buf[2:], float16.Fromfloat32(-0.5).Bits())
		got, err := Decode[float32](buf, Float16)
		require.NoError(t, err)
		assert.Equal(t, []float32{1.5, -0.5}, got)
	})

	t.Run("bfloat16", func(t *testing.T) {
		// 1.0 is 0x3f80 and -2.0 is 0xc000.
		got, err := Decode[float32]([]byte{0x80, 0x3f, 0x00, 0xc0}, BFloat16)
		require.NoError(t, err)
		assert.Equal(t, []float32{1, -2}, got)
	})

	t.Run("integers", func(t *testing.T) {
		i32 := make([]byte, 8)
		binary.LittleEndian.PutUint32(i32, 7)
		binary.LittleEndian.PutUint32(i32[4:], math.MaxUint32) // -1
		got32, err := Decode[int32](i32, Int32)
		require.NoError(t, err)
		assert.Equal(t, []int32{7, -1}, got32)

		i64 := make([]byte, 8)
		binary.LittleEndian.PutUint64(i64, math.MaxUint64)
		got64, err := Decode[int64](i64, Int64)
		require.NoError(t, err)
		assert.Equal(t, []int64{-1}, got64)

		got16, err := Decode[float32]([]byte{0xfe, 0xff, 0x03, 0x00}, Int16)
		require.NoError(t, err)
		assert.Equal(t, []float32{-2, 3}, got16)

		got8, err := Decode[int32]([]byte{0xff, 0x05}, Int8)
		require.NoError(t, err)
		assert.Equal(t, []int32{-1, 5}, got8)

		gotU8, err := Decode[float32]([]byte{0xff, 0x05}, Uint8)
		require.NoError(t, err)
		assert.Equal(t, []float32{255, 5}, gotU8)
	})
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode[float32](float32Bytes(1), Unknown)
	requirePrecondition(t, err, "Decode")

	_, err = Decode[float32](nil, Float32)
	requirePrecondition(t, err, "Decode")

	_, err = Decode[float32]([]byte{1, 2, 3}, Float32)
	requirePrecondition(t, err, "Decode")
}

func TestFromBytesView(t *testing.T) {
	// A []float32 backing array is suitably aligned for reinterpretation.
	backing := arange(6)
	buf := unsafeBytes(backing)

	x, err := FromBytes[float32](buf, Float32, 2, 3)
	require.NoError(t, err)
	if !hostLittleEndian {
		assert.Equal(t, Owning, x.Ownership())
		return
	}
	assert.Equal(t, Viewing, x.Ownership())

	require.NoError(t, x.SetIndex(0, 42))
	assert.Equal(t, float32(42), backing[0])
}

func TestFromBytesDecodes(t *testing.T) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint16(buf, float16.Fromfloat32(2).Bits())
	binary.LittleEndian.PutUint16(buf[2:], float16.Fromfloat32(4).Bits())

	x, err := FromBytes[float32](buf, Float16, 2)
	require.NoError(t, err)
	assert.Equal(t, Owning, x.Ownership())

	data, _ := x.Data()
	assert.Equal(t, []float32{2, 4}, data)
	raw, _ := x.RawShape()
	assert.Equal(t, Shape{2}, raw)
}

func TestFromBytesErrors(t *testing.T) {
	_, err := FromBytes[float32](float32Bytes(1, 2, 3), Float32, 2, 2)
	requirePrecondition(t, err, "FromBytes")

	_, err = FromBytes[float32](float32Bytes(1), Unknown, 1)
	requirePrecondition(t, err, "FromBytes")

	_, err = FromBytes[float32](float32Bytes(1), Float32, 1, 1, 1, 1)
	requirePrecondition(t, err, "FromBytes")

	_, err = FromBytes[float32](float32Bytes(1), Float32, math.MaxInt/2, 3)
	requirePrecondition(t, err, "FromBytes")

	// A wrapped byte count must not match a small buffer.
	_, err = FromBytes[float64](make([]byte, 8), Float64, math.MaxInt/4+2)
	requirePrecondition(t, err, "FromBytes")
}
