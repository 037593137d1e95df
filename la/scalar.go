// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package la implements dense vectors and tridiagonal matrices over the
// real or complex field, with the direct solvers used by the simulation
package la

import (
	"math"
	"math/cmplx"
)

// macheps is the float64 machine precision
const macheps = 0x1p-52

// Scalar is the numeric field of vectors and matrices
type Scalar interface {
	float64 | complex128
}

// fromreal converts a real value to the field
func fromreal[T Scalar](x float64) (v T) {
	switch p := any(&v).(type) {
	case *float64:
		*p = x
	case *complex128:
		*p = complex(x, 0)
	}
	return
}

// conj returns the complex conjugate; identity over the reals
func conj[T Scalar](v T) T {
	if c, ok := any(v).(complex128); ok {
		return any(cmplx.Conj(c)).(T)
	}
	return v
}

// absval returns the magnitude as a real number
func absval[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case complex128:
		return cmplx.Abs(x)
	}
	return 0
}

// realpart returns the real part
func realpart[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return x
	case complex128:
		return real(x)
	}
	return 0
}

// sqrtv returns the square root within the field
func sqrtv[T Scalar](v T) T {
	switch x := any(v).(type) {
	case float64:
		return any(math.Sqrt(x)).(T)
	case complex128:
		return any(cmplx.Sqrt(x)).(T)
	}
	return v
}

// signv returns ±1 according to the sign of the real part
func signv[T Scalar](v T) T {
	if realpart(v) < 0 {
		return fromreal[T](-1)
	}
	return fromreal[T](1)
}
