// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math/cmplx"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gosch/la"
)

// NonLinearHamiltonian solves the nonlinear Schrödinger equation
//
//	(P²/2m + V(r) + κ·|ψ|²)·ψ = i·∂ψ/∂t
//
// The Hamiltonian depends on the state, so H and the Crank–Nicolson
// operator pair are rebuilt on every step.
//
// Two forms of the self-interaction term are available. The historical
// form ("nonlinear") puts the state-global scalar κ·⟨ψ|ψ⟩ on every
// diagonal entry, which keeps runs numerically compatible with the
// solver this engine derives from. The local form ("nonlinear-local")
// uses κ·|ψᵢ|² per site, which is the Gross–Pitaevskii term proper
type NonLinearHamiltonian struct {
	prm   *Parameters
	v     fun.Func
	kappa float64
	local bool
	ham   *la.TridiagC
	left  *la.TridiagC
	right *la.TridiagC
}

// add solvers to factory
func init() {
	solverallocators["nonlinear"] = func(prm *Parameters, v fun.Func, kappa float64) HamiltonianSolver {
		return NewNonLinearHamiltonian(prm, v, kappa)
	}
	solverallocators["nonlinear-local"] = func(prm *Parameters, v fun.Func, kappa float64) HamiltonianSolver {
		return NewNonLinearLocalHamiltonian(prm, v, kappa)
	}
}

// NewNonLinearHamiltonian returns a nonlinear solver with the
// state-global ⟨ψ|ψ⟩ self-interaction term
func NewNonLinearHamiltonian(prm *Parameters, v fun.Func, kappa float64) *NonLinearHamiltonian {
	o := &NonLinearHamiltonian{prm: prm, v: v, kappa: kappa}
	o.build(nil)
	return o
}

// NewNonLinearLocalHamiltonian returns a nonlinear solver with the
// per-site |ψᵢ|² self-interaction term
func NewNonLinearLocalHamiltonian(prm *Parameters, v fun.Func, kappa float64) *NonLinearHamiltonian {
	o := &NonLinearHamiltonian{prm: prm, v: v, kappa: kappa, local: true}
	o.build(nil)
	return o
}

// build assembles H and the operator pair for the given state. A nil
// state yields the bare κ term, matching the matrices exposed before
// the first step
func (o *NonLinearHamiltonian) build(current la.VectorC) {
	n := o.prm.AtomCount
	o.ham = la.NewTridiag[complex128](n)
	var global float64
	if current != nil && !o.local {
		global = real(current.Dot(current))
	}
	for i := 0; i < n; i++ {
		g := o.kappa
		if current != nil {
			if o.local {
				a := cmplx.Abs(current[i])
				g = o.kappa * a * a
			} else {
				g = o.kappa * global
			}
		}
		o.ham.Low[i] = -1
		o.ham.Dia[i] = complex(2.0+2.0*o.v.F(float64(i)/float64(n), nil)+g, 0)
		o.ham.Up[i] = -1
	}
	o.left, o.right = crank(o.ham, o.prm.Lambda)
}

// Solve rebuilds the Hamiltonian for the current state and advances the
// wavefunction by one step
func (o *NonLinearHamiltonian) Solve(current la.VectorC) (la.VectorC, error) {
	o.build(current)
	return o.left.Solve(o.right.MulVec(current))
}

// Hamiltonian returns the Hamiltonian matrix of the latest step
func (o *NonLinearHamiltonian) Hamiltonian() *la.TridiagC { return o.ham }

// LeftMatrix returns the implicit Crank–Nicolson operator of the latest step
func (o *NonLinearHamiltonian) LeftMatrix() *la.TridiagC { return o.left }

// RightMatrix returns the explicit Crank–Nicolson operator of the latest step
func (o *NonLinearHamiltonian) RightMatrix() *la.TridiagC { return o.right }
