// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// FreeLattice implements the closed-form spectrum of the discrete
// Hamiltonian of a free particle on a chain with a constant potential:
// the real-symmetric tridiagonal matrix with 2+2·v0 along the main
// diagonal and −1 along the off-diagonals. The eigenvalues are
//
//	λk = 2 + 2·v0 − 2·cos(k·π/(n+1))   k = 1..n
type FreeLattice struct {

	// input
	n  int     // lattice size
	v0 float64 // constant potential
}

// Init initialises this structure
func (o *FreeLattice) Init(n int, prms fun.Prms) {
	o.n = n
	for _, p := range prms {
		switch p.N {
		case "v0":
			o.v0 = p.V
		}
	}
}

// Eigenvalue returns the k-th smallest eigenvalue, k = 0..n−1
func (o *FreeLattice) Eigenvalue(k int) float64 {
	return 2.0 + 2.0*o.v0 - 2.0*math.Cos(float64(k+1)*math.Pi/float64(o.n+1))
}

// Eigenvalues returns all eigenvalues in ascending order
func (o *FreeLattice) Eigenvalues() []float64 {
	res := make([]float64, o.n)
	for k := 0; k < o.n; k++ {
		res[k] = o.Eigenvalue(k)
	}
	return res
}
