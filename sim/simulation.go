// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gosch/la"
)

// simulation lifecycle states
const (
	unstarted = iota
	running
	finished
)

// Simulation owns the wavefunction, the Hamiltonian solver and the
// observables, and executes the fixed iteration schedule. The lattice
// behaves like a sandbox with hard walls: after every step the two
// boundary atoms are forced to zero.
//
// Waves, solver and observables may only be changed before Run is
// called; Run may be called once
type Simulation struct {
	prm     *Parameters
	atoms   la.VectorC
	solver  HamiltonianSolver
	filters []Observable
	it      int
	state   int
	Verbose bool // show stepping progress
}

// NewSimulation returns a simulation with a zero-initialised
// wavefunction of length prm.AtomCount
func NewSimulation(prm *Parameters) *Simulation {
	return &Simulation{
		prm:   prm,
		atoms: la.NewVector[complex128](prm.AtomCount),
	}
}

// Parameters returns the simulation parameters
func (o *Simulation) Parameters() *Parameters { return o.prm }

// Atoms returns the wavefunction over the lattice. The slice is the
// live state; observables must treat it as read-only
func (o *Simulation) Atoms() la.VectorC { return o.atoms }

// Iteration returns the current iteration index
func (o *Simulation) Iteration() int { return o.it }

// Solver returns the Hamiltonian solver
func (o *Simulation) Solver() HamiltonianSolver { return o.solver }

// SetSolver sets the Hamiltonian solver
func (o *Simulation) SetSolver(h HamiltonianSolver) {
	o.mustBeUnstarted("SetSolver")
	o.solver = h
}

// AddWave adds the displacements of a wave to the interior lattice
// sites. The two boundary sites are not perturbed
func (o *Simulation) AddWave(w Wave) {
	o.mustBeUnstarted("AddWave")
	for i := 1; i < o.prm.AtomCount-1; i++ {
		o.atoms[i] += w.Displacement(i)
	}
}

// AddFilter appends an observable. Observables fire in insertion order
// at each dispatch point
func (o *Simulation) AddFilter(f Observable) {
	o.mustBeUnstarted("AddFilter")
	o.filters = append(o.filters, f)
}

// Run executes the iteration schedule: Startup observables, then for
// each step solve / boundary fix / Iteration observables, and finally
// Cooldown observables. Numerical failures and observable write
// failures abort the run
func (o *Simulation) Run() (err error) {
	if o.state != unstarted {
		chk.Panic("simulation can only run once")
	}
	if o.solver == nil {
		chk.Panic("cannot run simulation without a solver")
	}
	o.state = running

	// startup
	err = o.dispatch(Startup)
	if err != nil {
		return
	}

	// time loop
	n := o.prm.AtomCount
	for i := 0; i < o.prm.Iterations; i++ {

		// advance wavefunction
		o.atoms, err = o.solver.Solve(o.atoms)
		if err != nil {
			return chk.Err("step %d failed:\n%v", i, err)
		}

		// hard-zero Dirichlet boundary
		o.atoms[0] = 0
		o.atoms[n-1] = 0

		// message
		o.it = i
		if o.Verbose {
			io.PfWhite("%10d\r", i)
		}

		// observables
		err = o.dispatch(Iteration)
		if err != nil {
			return
		}
	}

	// cooldown
	err = o.dispatch(Cooldown)
	if err != nil {
		return
	}
	o.state = finished
	return
}

// dispatch fans the simulation out to the observables scheduled at t
func (o *Simulation) dispatch(t CheckTime) (err error) {
	for _, f := range o.filters {
		if f.Check(t) {
			err = f.Filter(o)
			if err != nil {
				return chk.Err("observable failed:\n%v", err)
			}
		}
	}
	return
}

// mustBeUnstarted guards the mutators against use after Run
func (o *Simulation) mustBeUnstarted(op string) {
	if o.state != unstarted {
		chk.Panic("%s is only allowed before the simulation runs", op)
	}
}
