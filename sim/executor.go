// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"log"
	"os"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gosch/inp"
)

// Executor assembles and runs every simulation of a (.sim) descriptor
// file. Observable sinks are files under the descriptor's output
// directory, named <fnkey>-<file>
type Executor struct {
	Dsc     *inp.Descriptor // descriptor data
	Sims    []*Simulation   // assembled simulations, in descriptor order
	Verbose bool            // show messages
	sinks   []*os.File      // open observable sinks
}

// NewExecutor reads a descriptor file and assembles one simulation per
// entry, resolving solver, waves and observables through the factories
//
//	Input:
//	 fnamepath -- descriptor (.sim) filename including full path
//	 erasePrev -- erase previous results files in the output directory
//	 verbose   -- show messages
func NewExecutor(fnamepath string, erasePrev, verbose bool) (o *Executor) {

	// read input data
	o = &Executor{Verbose: verbose}
	o.Dsc = inp.ReadSim(fnamepath, erasePrev)
	if o.Dsc == nil {
		chk.Panic("cannot read descriptor file %q", fnamepath)
	}

	// assemble simulations
	for idx, r := range o.Dsc.Simulations {
		prm := NewParameters(r.Dx, r.Dt, r.Mass, r.Iterations, r.Atoms)
		s := NewSimulation(prm)
		s.Verbose = verbose

		// solver
		v := o.Dsc.Functions.GetOrPanic(r.Solver.Potential)
		s.SetSolver(NewSolver(r.Solver.Type, prm, v, r.Solver.Kappa))

		// waves
		for _, wd := range r.Waves {
			w, err := NewWave(wd.Type, wd.Prms)
			if err != nil {
				chk.Panic("simulation %d: cannot allocate wave:\n%v", idx, err)
			}
			s.AddWave(w)
		}

		// observables
		for _, od := range r.Observers {
			s.AddFilter(NewObservable(od, o.openSink(od), v))
		}

		o.Sims = append(o.Sims, s)
	}
	return
}

// Run runs all simulations in descriptor order and closes the sinks.
// Run may be called once
func (o *Executor) Run() (err error) {

	// benchmarking
	cputime := time.Now()
	defer func() {
		o.Close()
		if o.Verbose {
			io.Pfblue2("cpu time = %v\n", time.Now().Sub(cputime))
		}
	}()

	// loop over simulations
	for idx, s := range o.Sims {
		if o.Verbose {
			io.Pf("\nsimulation %d: %s\n", idx, o.Dsc.Simulations[idx].Desc)
		}
		err = s.Run()
		if err != nil {
			return chk.Err("simulation %d failed:\n%v", idx, err)
		}
		log.Printf("run: simulation %d finished. iterations=%d atoms=%d\n", idx, s.prm.Iterations, s.prm.AtomCount)
	}
	return
}

// Close closes the observable sinks and flushes the log file
func (o *Executor) Close() {
	for _, f := range o.sinks {
		f.Close()
	}
	o.sinks = nil
	inp.FlushLog()
}

// openSink opens the output file of one observable. An empty or
// "stdout" file name selects standard output
func (o *Executor) openSink(dat *inp.ObsData) *os.File {
	if dat.File == "" || dat.File == "stdout" {
		return os.Stdout
	}
	f, err := os.Create(io.Sf("%s/%s-%s", o.Dsc.Data.DirOut, o.Dsc.Data.FnameKey, dat.File))
	if err != nil {
		chk.Panic("cannot create observable output file:\n%v", err)
	}
	o.sinks = append(o.sinks, f)
	return f
}
