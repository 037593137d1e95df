// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Vector is a dense vector over the field T. Elements are accessed by
// plain indexing; out-of-range indices panic at runtime
type Vector[T Scalar] []T

// VectorC is a complex vector; the wavefunction type of the simulation
type VectorC = Vector[complex128]

// NewVector returns a zero-filled vector with n components
func NewVector[T Scalar](n int) Vector[T] {
	return make(Vector[T], n)
}

// Size returns the number of components
func (o Vector[T]) Size() int { return len(o) }

// Clone returns a copy of this vector
func (o Vector[T]) Clone() Vector[T] {
	r := make(Vector[T], len(o))
	copy(r, o)
	return r
}

// Add returns this vector added to another one, in a new vector
func (o Vector[T]) Add(b Vector[T]) Vector[T] {
	if len(o) != len(b) {
		chk.Panic("vectors have incompatible sizes. %d != %d", len(o), len(b))
	}
	r := make(Vector[T], len(o))
	for i := 0; i < len(o); i++ {
		r[i] = o[i] + b[i]
	}
	return r
}

// Sub returns this vector subtracted by another one, in a new vector
func (o Vector[T]) Sub(b Vector[T]) Vector[T] {
	if len(o) != len(b) {
		chk.Panic("vectors have incompatible sizes. %d != %d", len(o), len(b))
	}
	r := make(Vector[T], len(o))
	for i := 0; i < len(o); i++ {
		r[i] = o[i] - b[i]
	}
	return r
}

// Mul returns this vector scaled by s, in a new vector
func (o Vector[T]) Mul(s T) Vector[T] {
	r := make(Vector[T], len(o))
	for i := 0; i < len(o); i++ {
		r[i] = o[i] * s
	}
	return r
}

// Conj returns the elementwise complex conjugate, in a new vector.
// Over the reals this is a plain copy
func (o Vector[T]) Conj() Vector[T] {
	r := make(Vector[T], len(o))
	for i := 0; i < len(o); i++ {
		r[i] = conj(o[i])
	}
	return r
}

// Dot computes the Hermitian inner product Σi conj(o[i])·b[i]
func (o Vector[T]) Dot(b Vector[T]) T {
	if len(o) != len(b) {
		chk.Panic("vectors have incompatible sizes. %d != %d", len(o), len(b))
	}
	var res T
	for i := 0; i < len(o); i++ {
		res += conj(o[i]) * b[i]
	}
	return res
}

// Norm returns the Euclidean norm √(o·o)
func (o Vector[T]) Norm() float64 {
	return math.Sqrt(realpart(o.Dot(o)))
}

// Normalised returns this vector scaled to unit norm, in a new vector.
// A zero-norm vector cannot be normalised
func (o Vector[T]) Normalised() (Vector[T], error) {
	nrm := o.Norm()
	if nrm <= macheps {
		return nil, chk.Err("numerical instability: cannot normalise vector with norm = %g", nrm)
	}
	return o.Mul(fromreal[T](1.0 / nrm)), nil
}
