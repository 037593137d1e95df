// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gosch/la"
)

// HamiltonianSolver advances the wavefunction by one Crank–Nicolson
// step satisfying Left·ψⁿ⁺¹ = Right·ψⁿ with Left = I + i·λ·H and
// Right = I − i·λ·H
type HamiltonianSolver interface {
	Solve(current la.VectorC) (la.VectorC, error) // consume ψⁿ, return ψⁿ⁺¹
	Hamiltonian() *la.TridiagC                    // read-only H
	LeftMatrix() *la.TridiagC                     // I + i·λ·H
	RightMatrix() *la.TridiagC                    // I − i·λ·H
}

// solverallocators holds all available solvers
var solverallocators = make(map[string]func(prm *Parameters, v fun.Func, kappa float64) HamiltonianSolver)

// NewSolver allocates a Hamiltonian solver by type name.
//
//	Input:
//	 stype -- solver type. ex: "linear", "nonlinear", "nonlinear-local"
//	 prm   -- simulation parameters
//	 v     -- potential function over [0,1]
//	 kappa -- self-interaction factor; ignored by the linear solver
func NewSolver(stype string, prm *Parameters, v fun.Func, kappa float64) HamiltonianSolver {
	alloc, ok := solverallocators[stype]
	if !ok {
		chk.Panic("cannot find solver type named %q", stype)
	}
	return alloc(prm, v, kappa)
}

// crank computes the Crank–Nicolson operator pair (Left, Right) for a
// given Hamiltonian
func crank(h *la.TridiagC, lambda float64) (left, right *la.TridiagC) {
	n := h.Size()
	ilam := h.Mul(complex(0, lambda))
	left = la.Identity[complex128](n, 1).Add(ilam)
	right = la.Identity[complex128](n, 1).Sub(ilam)
	return
}
