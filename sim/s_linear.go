// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gosch/la"
)

// LinearHamiltonian solves the linear Schrödinger equation
//
//	(P²/2m + V(r))·ψ = i·∂ψ/∂t
//
// The Hamiltonian is time-independent, so H and the Crank–Nicolson
// operator pair are built once at allocation
type LinearHamiltonian struct {
	prm   *Parameters
	v     fun.Func
	ham   *la.TridiagC
	left  *la.TridiagC
	right *la.TridiagC
}

// add solver to factory
func init() {
	solverallocators["linear"] = func(prm *Parameters, v fun.Func, kappa float64) HamiltonianSolver {
		return NewLinearHamiltonian(prm, v)
	}
}

// NewLinearHamiltonian returns a linear solver with the discrete
// Hamiltonian built from the potential v
func NewLinearHamiltonian(prm *Parameters, v fun.Func) *LinearHamiltonian {
	o := &LinearHamiltonian{prm: prm, v: v}
	n := prm.AtomCount
	o.ham = la.NewTridiag[complex128](n)
	for i := 0; i < n; i++ {
		o.ham.Low[i] = -1
		o.ham.Dia[i] = complex(2.0+2.0*v.F(float64(i)/float64(n), nil), 0)
		o.ham.Up[i] = -1
	}
	o.left, o.right = crank(o.ham, prm.Lambda)
	return o
}

// Solve advances the wavefunction by one step
func (o *LinearHamiltonian) Solve(current la.VectorC) (la.VectorC, error) {
	return o.left.Solve(o.right.MulVec(current))
}

// Hamiltonian returns the Hamiltonian matrix
func (o *LinearHamiltonian) Hamiltonian() *la.TridiagC { return o.ham }

// LeftMatrix returns the implicit Crank–Nicolson operator
func (o *LinearHamiltonian) LeftMatrix() *la.TridiagC { return o.left }

// RightMatrix returns the explicit Crank–Nicolson operator
func (o *LinearHamiltonian) RightMatrix() *la.TridiagC { return o.right }
