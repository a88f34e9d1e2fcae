package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtSet(t *testing.T) {
	x := Must(New[float64](2, 3, 4))
	require.NoError(t, x.Set(3.5, 1, 2, 3))

	v, err := x.At(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	raw, err := x.Index(12 + 3*3 + 2)
	require.NoError(t, err)
	assert.Equal(t, 3.5, raw)
}

func TestAtBounds(t *testing.T) {
	owned := Must(New[float32](2, 3, 4))
	view := Must(FromBuffer(arange(24), 2, 3, 4))

	for _, x := range []*Tensor[float32]{owned, view} {
		for _, idx := range [][3]int{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}, {-1, 0, 0}, {0, -1, 0}, {0, 0, -1}} {
			_, err := x.At(idx[0], idx[1], idx[2])
			requirePrecondition(t, err, "At")
			requirePrecondition(t, x.Set(1, idx[0], idx[1], idx[2]), "Set")
		}

		_, err := x.Index(24)
		requirePrecondition(t, err, "Index")
		_, err = x.Index(-1)
		requirePrecondition(t, err, "Index")
		requirePrecondition(t, x.SetIndex(24, 0), "SetIndex")
		_, err = x.DataFrom(24)
		requirePrecondition(t, err, "DataFrom")
	}
}

func TestDataIsShared(t *testing.T) {
	x := filled(t, 2, 2)
	data, err := x.Data()
	require.NoError(t, err)
	data[1] = 9

	assert.Equal(t, float32(9), Must(x.At(0, 1, 0)))

	tail, err := x.DataFrom(2)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 3}, tail)
}

func TestPlane(t *testing.T) {
	x := filled(t, 2, 2, 3)

	plane, err := x.Plane(1)
	require.NoError(t, err)
	assert.Equal(t, []float32{6, 9, 7, 10, 8, 11}, plane)
	assert.Equal(t, len(plane), cap(plane))

	plane[0] = -1
	assert.Equal(t, float32(-1), Must(x.At(1, 0, 0)))

	_, err = x.Plane(2)
	requirePrecondition(t, err, "Plane")
}

func TestSlice(t *testing.T) {
	x := filled(t, 2, 2, 3)

	s, err := x.Slice(1)
	require.NoError(t, err)
	assert.Equal(t, Owning, s.Ownership())
	raw, _ := s.RawShape()
	assert.Equal(t, Shape{2, 3}, raw)

	got, _ := s.Values(true)
	assert.Equal(t, []float32{6, 7, 8, 9, 10, 11}, got)

	require.NoError(t, s.Fill(0))
	assert.Equal(t, float32(6), Must(x.At(1, 0, 0)))

	_, err = x.Slice(-1)
	requirePrecondition(t, err, "Plane")
}
