package tensor

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Fill sets every element to value.
func (t *Tensor[T]) Fill(value T) error {
	if t.Empty() {
		return errEmpty("Fill")
	}
	for i := range t.store.data {
		t.store.data[i] = value
	}
	return nil
}

// Ones sets every element to 1.
func (t *Tensor[T]) Ones() error {
	if t.Empty() {
		return errEmpty("Ones")
	}
	return t.Fill(T(1))
}

// RandomNormal replaces every element with an independent draw from a
// normal distribution. src may be nil to use the global source.
// Integer element types truncate the draw toward zero; unsigned types
// clamp negative draws to 0.
func (t *Tensor[T]) RandomNormal(mean, stddev T, src rand.Source) error {
	if t.Empty() {
		return errEmpty("RandomNormal")
	}
	if stddev < 0 {
		return precondition("RandomNormal", "negative standard deviation %v", stddev)
	}
	dist := distuv.Normal{Mu: float64(mean), Sigma: float64(stddev), Src: src}
	t.sample(dist.Rand)
	return nil
}

// RandomUniform replaces every element with an independent draw from the
// uniform distribution on [low, high). src may be nil to use the global
// source.
func (t *Tensor[T]) RandomUniform(low, high T, src rand.Source) error {
	if t.Empty() {
		return errEmpty("RandomUniform")
	}
	if high < low {
		return precondition("RandomUniform", "empty interval [%v, %v)", low, high)
	}
	dist := distuv.Uniform{Min: float64(low), Max: float64(high), Src: src}
	t.sample(dist.Rand)
	return nil
}

func (t *Tensor[T]) sample(draw func() float64) {
	var zero T
	unsigned := zero-1 > zero
	for i := range t.store.data {
		v := draw()
		if unsigned && v < 0 {
			v = 0
		}
		t.store.data[i] = T(v)
	}
}

// Transform replaces every element x with f(x), keeping its position.
func (t *Tensor[T]) Transform(f func(T) T) error {
	if t.Empty() {
		return errEmpty("Transform")
	}
	if f == nil {
		return precondition("Transform", "nil function")
	}
	for i, v := range t.store.data {
		t.store.data[i] = f(v)
	}
	return nil
}
