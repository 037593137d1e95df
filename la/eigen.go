// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// givens computes a numerically stable Givens rotation (c, s) zeroing y
// against x
func givens[T Scalar](x, y T) (c, s T) {
	switch {
	case absval(y) <= macheps:
		c = signv(x)
		s = fromreal[T](0)
	case absval(x) <= macheps:
		c = fromreal[T](0)
		s = signv(y)
	case absval(y) > absval(x):
		t := x / y
		u := signv(y) * sqrtv(fromreal[T](1)+t*t)
		s = fromreal[T](-1) / u
		c = (fromreal[T](0) - s) * t
	default:
		t := y / x
		u := signv(x) * sqrtv(fromreal[T](1)+t*t)
		c = fromreal[T](1) / u
		s = (fromreal[T](0) - c) * t
	}
	return
}

// Eigenvalues computes the eigenvalues of this matrix in ascending
// order, using the implicit-shift QR iteration with Wilkinson shifts
// and Givens bulge chasing. The matrix is not modified.
//
// The routine assumes a real-symmetric tridiagonal matrix; for a
// complex matrix whose entries carry no imaginary part the real parts
// of the converged diagonal are returned. An off-diagonal entry is
// considered deflated when its magnitude drops below tol
func (o *Tridiag[T]) Eigenvalues(tol float64) (Vector[float64], error) {
	n := o.Size()
	if n == 0 {
		return nil, chk.Err("cannot compute eigenvalues of an empty matrix")
	}
	d := make([]T, n)
	off := make([]T, n)
	copy(d, o.Dia)
	copy(off, o.Up)

	// contract the active tail block until it is exhausted
	maxsweeps := 30 * n
	sweeps := 0
	m := n - 1
	for m > 0 {

		// deflate converged tail
		if absval(off[m-1]) <= tol {
			off[m-1] = fromreal[T](0)
			m--
			continue
		}
		sweeps++
		if sweeps > maxsweeps {
			return nil, chk.Err("eigenvalue iteration did not converge after %d sweeps", maxsweeps)
		}

		// Wilkinson shift from the trailing 2×2 block
		var shift T
		u := (d[m-1] - d[m]) / fromreal[T](2)
		if absval(u) <= macheps {
			shift = d[m] - fromreal[T](absval(off[m-1]))
		} else {
			b := off[m-1]
			shift = d[m] - signv(u)*b*b/(fromreal[T](absval(u))+sqrtv(u*u+b*b))
		}

		// chase the bulge down the active block
		x := d[0] - shift
		y := off[0]
		for k := 0; k < m; k++ {
			c, s := givens(x, y)
			w := c*x - s*y
			dd := d[k] - d[k+1]
			z := (fromreal[T](2)*c*off[k] + dd*s) * s
			d[k] -= z
			d[k+1] += z
			off[k] = dd*c*s + (c*c-s*s)*off[k]
			x = off[k]
			if k > 0 {
				off[k-1] = w
			}
			if k < m-1 {
				y = (fromreal[T](0) - s) * off[k+1]
				off[k+1] = c * off[k+1]
			}
		}
	}

	res := NewVector[float64](n)
	for i := 0; i < n; i++ {
		res[i] = realpart(d[i])
	}
	sort.Float64s(res)
	return res, nil
}
