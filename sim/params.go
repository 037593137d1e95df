// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim implements the Crank–Nicolson engine for the one dimensional
// time-dependent Schrödinger equation: waves, Hamiltonian solvers,
// observables and the simulation driver
package sim

import (
	"github.com/cpmech/gosl/chk"
)

// Parameters holds the lattice and stepping constants of one simulation.
// Values are fixed at construction
type Parameters struct {
	Dx         float64 // lattice spacing
	Dt         float64 // time step size
	Mass       float64 // particle mass
	Iterations int     // number of time steps
	AtomCount  int     // number of lattice sites

	// derived
	Lambda float64 // dt / (2·mass·dx²)
}

// NewParameters returns validated simulation parameters with the derived
// lambda constant computed
func NewParameters(dx, dt, mass float64, iterations, atomCount int) *Parameters {
	if dx <= 0 {
		chk.Panic("lattice spacing must be positive. dx = %g", dx)
	}
	if dt <= 0 {
		chk.Panic("time step must be positive. dt = %g", dt)
	}
	if mass <= 0 {
		chk.Panic("mass must be positive. mass = %g", mass)
	}
	if iterations < 0 {
		chk.Panic("iteration count cannot be negative. iterations = %d", iterations)
	}
	if atomCount < 3 {
		chk.Panic("lattice needs at least 3 atoms. atoms = %d", atomCount)
	}
	return &Parameters{
		Dx:         dx,
		Dt:         dt,
		Mass:       mass,
		Iterations: iterations,
		AtomCount:  atomCount,
		Lambda:     dt / (2.0 * mass * dx * dx),
	}
}
