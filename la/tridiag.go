// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"github.com/cpmech/gosl/chk"
)

// Line selects one of the three diagonals of a tridiagonal matrix
type Line int

const (
	Lower Line = iota // sub-diagonal
	Main              // main diagonal
	Upper             // super-diagonal
)

// Tridiag holds the three diagonals of a tridiagonal matrix of size n.
// Storage is row-aligned: row i carries (Low[i], Dia[i], Up[i]) with
// Low[i] at column i−1 and Up[i] at column i+1; thus Low[0] and Up[n−1]
// are out-of-band and ignored by MulVec and Solve.
//
//	Note: the historical C++ code this solver derives from indexed the
//	      first and last rows of the matrix–vector product with those
//	      out-of-band entries (and swapped the roles of Low and Up);
//	      this implementation uses the standard convention, so outputs
//	      differ from the historical ones at the boundary rows
type Tridiag[T Scalar] struct {
	Low []T // sub-diagonal. size=n
	Dia []T // main diagonal. size=n
	Up  []T // super-diagonal. size=n
}

// TridiagC is a complex tridiagonal matrix; the Hamiltonian type of the simulation
type TridiagC = Tridiag[complex128]

// NewTridiag returns a new zero matrix with size n
func NewTridiag[T Scalar](n int) *Tridiag[T] {
	return &Tridiag[T]{
		Low: make([]T, n),
		Dia: make([]T, n),
		Up:  make([]T, n),
	}
}

// Identity returns a new matrix with v along the main diagonal and
// zeros elsewhere
func Identity[T Scalar](n int, v T) *Tridiag[T] {
	m := NewTridiag[T](n)
	for i := 0; i < n; i++ {
		m.Dia[i] = v
	}
	return m
}

// Size returns the number of rows (== number of columns)
func (o *Tridiag[T]) Size() int { return len(o.Dia) }

// At returns the element at diagonal l and index j
func (o *Tridiag[T]) At(l Line, j int) T {
	switch l {
	case Lower:
		return o.Low[j]
	case Main:
		return o.Dia[j]
	case Upper:
		return o.Up[j]
	}
	chk.Panic("unknown diagonal selector %d", l)
	return fromreal[T](0)
}

// Set sets the element at diagonal l and index j
func (o *Tridiag[T]) Set(l Line, j int, v T) {
	switch l {
	case Lower:
		o.Low[j] = v
	case Main:
		o.Dia[j] = v
	case Upper:
		o.Up[j] = v
	default:
		chk.Panic("unknown diagonal selector %d", l)
	}
}

// Clone returns a copy of this matrix
func (o *Tridiag[T]) Clone() *Tridiag[T] {
	m := NewTridiag[T](o.Size())
	copy(m.Low, o.Low)
	copy(m.Dia, o.Dia)
	copy(m.Up, o.Up)
	return m
}

// Add returns this matrix added to another one, in a new matrix
func (o *Tridiag[T]) Add(b *Tridiag[T]) *Tridiag[T] {
	if o.Size() != b.Size() {
		chk.Panic("matrices have incompatible sizes. %d != %d", o.Size(), b.Size())
	}
	m := NewTridiag[T](o.Size())
	for i := 0; i < o.Size(); i++ {
		m.Low[i] = o.Low[i] + b.Low[i]
		m.Dia[i] = o.Dia[i] + b.Dia[i]
		m.Up[i] = o.Up[i] + b.Up[i]
	}
	return m
}

// Sub returns this matrix subtracted by another one, in a new matrix
func (o *Tridiag[T]) Sub(b *Tridiag[T]) *Tridiag[T] {
	if o.Size() != b.Size() {
		chk.Panic("matrices have incompatible sizes. %d != %d", o.Size(), b.Size())
	}
	m := NewTridiag[T](o.Size())
	for i := 0; i < o.Size(); i++ {
		m.Low[i] = o.Low[i] - b.Low[i]
		m.Dia[i] = o.Dia[i] - b.Dia[i]
		m.Up[i] = o.Up[i] - b.Up[i]
	}
	return m
}

// Mul returns this matrix scaled by s, in a new matrix
func (o *Tridiag[T]) Mul(s T) *Tridiag[T] {
	m := NewTridiag[T](o.Size())
	for i := 0; i < o.Size(); i++ {
		m.Low[i] = o.Low[i] * s
		m.Dia[i] = o.Dia[i] * s
		m.Up[i] = o.Up[i] * s
	}
	return m
}

// MulVec computes the matrix–vector product A·x, in a new vector
func (o *Tridiag[T]) MulVec(x Vector[T]) Vector[T] {
	n := o.Size()
	if n != len(x) {
		chk.Panic("matrix and vector have incompatible sizes. %d != %d", n, len(x))
	}
	r := NewVector[T](n)
	if n == 1 {
		r[0] = o.Dia[0] * x[0]
		return r
	}
	r[0] = o.Dia[0]*x[0] + o.Up[0]*x[1]
	for i := 1; i < n-1; i++ {
		r[i] = o.Low[i]*x[i-1] + o.Dia[i]*x[i] + o.Up[i]*x[i+1]
	}
	r[n-1] = o.Low[n-1]*x[n-2] + o.Dia[n-1]*x[n-1]
	return r
}

// Solve solves the linear system A·x = b with the Thomas algorithm.
// A zero or near-zero pivot aborts with a numerical instability error
func (o *Tridiag[T]) Solve(b Vector[T]) (Vector[T], error) {
	n := o.Size()
	if n != len(b) {
		chk.Panic("matrix and vector have incompatible sizes. %d != %d", n, len(b))
	}
	if absval(o.Dia[0]) <= macheps {
		return nil, chk.Err("numerical instability: pivot is too small. |pivot| = %g", absval(o.Dia[0]))
	}
	x := NewVector[T](n)
	if n == 1 {
		x[0] = b[0] / o.Dia[0]
		return x, nil
	}

	// forward sweep
	cp := make([]T, n) // modified super-diagonal
	bp := make([]T, n) // modified right-hand side
	cp[0] = o.Up[0] / o.Dia[0]
	bp[0] = b[0] / o.Dia[0]
	for i := 1; i < n-1; i++ {
		den := o.Dia[i] - o.Low[i]*cp[i-1]
		if absval(den) <= macheps {
			return nil, chk.Err("numerical instability: pivot is too small. |pivot| = %g", absval(den))
		}
		cp[i] = o.Up[i] / den
		bp[i] = (b[i] - o.Low[i]*bp[i-1]) / den
	}
	den := o.Dia[n-1] - o.Low[n-1]*cp[n-2]
	if absval(den) <= macheps {
		return nil, chk.Err("numerical instability: pivot is too small. |pivot| = %g", absval(den))
	}
	bp[n-1] = (b[n-1] - o.Low[n-1]*bp[n-2]) / den

	// back substitution
	x[n-1] = bp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = bp[i] - cp[i]*x[i+1]
	}
	return x, nil
}

// Expectation computes the expectation value ⟨v|A|v⟩
func (o *Tridiag[T]) Expectation(v Vector[T]) T {
	return v.Dot(o.MulVec(v))
}

// Green computes the diagonal lattice Green function at site 1 of the
// chain 1..n−1, by the continued fraction over sites n−1 down to 1;
// the entries of row 0 do not enter
func (o *Tridiag[T]) Green(energy T) T {
	n := o.Size()
	x := energy - o.Dia[n-1]
	for i := n - 2; i > 0; i-- {
		x = energy - o.Dia[i] - o.Up[i]*o.Up[i]/x
	}
	return fromreal[T](1) / x
}
