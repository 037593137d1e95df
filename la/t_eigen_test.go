// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosch/ana"
)

func Test_eigen01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eigen01. 3x3 symmetric tridiagonal")

	a := &Tridiag[float64]{
		Low: []float64{0, 1, 1},
		Dia: []float64{2, 2, 2},
		Up:  []float64{1, 1, 0},
	}
	evs, err := a.Eigenvalues(1e-10)
	if err != nil {
		tst.Errorf("Eigenvalues failed: %v", err)
		return
	}
	chk.IntAssert(evs.Size(), 3)
	s2 := math.Sqrt2
	chk.Vector(tst, "eigenvalues", 1e-4, evs, []float64{2 - s2, 2, 2 + s2})

	// input matrix must not change
	chk.Vector(tst, "a.Dia unchanged", 1e-17, a.Dia, []float64{2, 2, 2})
	chk.Vector(tst, "a.Up unchanged", 1e-17, a.Up, []float64{1, 1, 0})
}

func Test_eigen02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eigen02. free lattice Hamiltonian vs closed form")

	n := 10
	h := NewTridiag[float64](n)
	for i := 0; i < n; i++ {
		h.Low[i] = -1
		h.Dia[i] = 2
		h.Up[i] = -1
	}
	evs, err := h.Eigenvalues(1e-12)
	if err != nil {
		tst.Errorf("Eigenvalues failed: %v", err)
		return
	}

	var sol ana.FreeLattice
	sol.Init(n, nil)
	chk.Vector(tst, "eigenvalues", 1e-8, evs, sol.Eigenvalues())
}

func Test_eigen03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eigen03. non-uniform matrix vs dense eigensolver")

	// symmetric tridiagonal with varying diagonal
	n := 6
	h := NewTridiag[float64](n)
	for i := 0; i < n; i++ {
		h.Dia[i] = float64(i + 1)
		h.Low[i] = 0.5
		h.Up[i] = 0.5
	}

	// dense copy
	d := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		d.SetSym(i, i, h.Dia[i])
		if i < n-1 {
			d.SetSym(i, i+1, h.Up[i])
		}
	}
	var es mat.EigenSym
	if !es.Factorize(d, false) {
		tst.Errorf("dense eigendecomposition failed")
		return
	}

	evs, err := h.Eigenvalues(1e-12)
	if err != nil {
		tst.Errorf("Eigenvalues failed: %v", err)
		return
	}
	chk.Vector(tst, "eigenvalues", 1e-8, evs, es.Values(nil))
}

func Test_eigen04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eigen04. complex matrix with real entries")

	a := &Tridiag[complex128]{
		Low: []complex128{0, 1, 1},
		Dia: []complex128{2, 2, 2},
		Up:  []complex128{1, 1, 0},
	}
	evs, err := a.Eigenvalues(1e-10)
	if err != nil {
		tst.Errorf("Eigenvalues failed: %v", err)
		return
	}
	s2 := math.Sqrt2
	chk.Vector(tst, "eigenvalues", 1e-4, evs, []float64{2 - s2, 2, 2 + s2})
}
