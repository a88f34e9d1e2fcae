package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

func TestFillAndOnes(t *testing.T) {
	x := Must(New[int32](2, 2, 2))
	require.NoError(t, x.Fill(5))
	data, _ := x.Data()
	for _, v := range data {
		assert.Equal(t, int32(5), v)
	}

	require.NoError(t, x.Ones())
	for _, v := range data {
		assert.Equal(t, int32(1), v)
	}
}

func TestTransform(t *testing.T) {
	x := filled(t, 3, 4)
	require.NoError(t, x.Transform(func(v float32) float32 { return v * 2 }))

	got, _ := x.Values(true)
	for i, v := range got {
		assert.Equal(t, float32(2*i), v)
	}

	requirePrecondition(t, x.Transform(nil), "Transform")
}

func TestRandomNormal(t *testing.T) {
	x := Must(New[float64](4, 50, 50))
	require.NoError(t, x.RandomNormal(2, 0.5, rand.NewSource(42)))

	data, _ := x.Data()
	mean, std := stat.MeanStdDev(data, nil)
	assert.InDelta(t, 2, mean, 0.05)
	assert.InDelta(t, 0.5, std, 0.05)
}

func TestRandomNormalSeeded(t *testing.T) {
	a := Must(New[float32](16))
	b := Must(New[float32](16))
	require.NoError(t, a.RandomNormal(0, 1, rand.NewSource(7)))
	require.NoError(t, b.RandomNormal(0, 1, rand.NewSource(7)))

	da, _ := a.Data()
	db, _ := b.Data()
	assert.Equal(t, da, db)
}

func TestRandomNormalZeroStddev(t *testing.T) {
	x := Must(New[float32](10))
	require.NoError(t, x.RandomNormal(3, 0, rand.NewSource(1)))
	data, _ := x.Data()
	for _, v := range data {
		assert.Equal(t, float32(3), v)
	}
}

func TestRandomUniform(t *testing.T) {
	x := Must(New[float64](2, 40, 40))
	require.NoError(t, x.RandomUniform(-1, 3, rand.NewSource(42)))

	data, _ := x.Data()
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range data {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	assert.GreaterOrEqual(t, lo, -1.0)
	assert.Less(t, hi, 3.0)
	assert.InDelta(t, 1, stat.Mean(data, nil), 0.1)
}

func TestRandomUniformInteger(t *testing.T) {
	x := Must(New[int32](100))
	require.NoError(t, x.RandomUniform(0, 10, rand.NewSource(3)))
	data, _ := x.Data()
	for _, v := range data {
		assert.GreaterOrEqual(t, v, int32(0))
		assert.Less(t, v, int32(10))
	}
}

func TestRandomNormalUnsignedClamps(t *testing.T) {
	x := Must(New[uint8](1000))
	require.NoError(t, x.RandomNormal(0, 5, rand.NewSource(11)))

	data, _ := x.Data()
	zeros := 0
	for _, v := range data {
		assert.Less(t, v, uint8(50))
		if v == 0 {
			zeros++
		}
	}
	// At least every negative draw lands on 0.
	assert.Greater(t, zeros, 400)
}

func TestRandomErrors(t *testing.T) {
	x := Must(New[float32](4))
	requirePrecondition(t, x.RandomNormal(0, -1, nil), "RandomNormal")
	requirePrecondition(t, x.RandomUniform(2, 1, nil), "RandomUniform")

	var empty Tensor[float32]
	requirePrecondition(t, empty.Fill(1), "Fill")
	requirePrecondition(t, empty.Ones(), "Ones")
}
