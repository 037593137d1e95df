// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"log"
	"os"

	goio "io"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {

	// global information
	Desc   string `json:"desc"`   // description of descriptor
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/gosch

	// derived
	FnameKey string // simulation filename key; e.g. mysim01.sim => mysim01
}

// SetDefault sets default values
func (o *Data) SetDefault() {
	o.DirOut = "/tmp/gosch"
}

// PostProcess performs a post-processing of the just read json file
func (o *Data) PostProcess(simfilepath string, erasefiles bool) {
	if o.DirOut == "" {
		o.DirOut = "/tmp/gosch"
	}
	o.FnameKey = io.FnKey(simfilepath)
	err := os.MkdirAll(o.DirOut, 0777)
	if err != nil {
		chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
	}
	if erasefiles {
		io.RemoveAll(io.Sf("%s/%s-*", o.DirOut, o.FnameKey))
	}
}

// SolverData holds Hamiltonian solver data
type SolverData struct {
	Type      string  `json:"type"`      // solver type. ex: linear, nonlinear, nonlinear-local
	Potential string  `json:"potential"` // name of the potential function. ex: zero, well1
	Kappa     float64 `json:"kappa"`     // self-interaction factor of the nonlinear solvers
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	if o.Type == "" {
		o.Type = "linear"
	}
	if o.Potential == "" {
		o.Potential = "zero"
	}
}

// WaveData holds initial wave data
type WaveData struct {
	Type string   `json:"type"` // wave type. ex: gaussian
	Prms fun.Prms `json:"prms"` // parameters. ex: w, x0, k
}

// ObsData holds observable data
type ObsData struct {
	Kind   string  `json:"kind"`   // observable kind. ex: density, real, imag, flux, expectation, potential, eigenvalues
	File   string  `json:"file"`   // output file name under dirout; empty or "stdout" selects standard output
	EigTol float64 `json:"eigtol"` // deflation tolerance for the eigenvalues kind; 0 means default
}

// RunData holds the data of one simulation run
type RunData struct {
	Desc       string      `json:"desc"`       // description of run
	Dx         float64     `json:"dx"`         // lattice spacing
	Dt         float64     `json:"dt"`         // time step size
	Mass       float64     `json:"mass"`       // particle mass; 0 means 1
	Iterations int         `json:"iterations"` // number of time steps
	Atoms      int         `json:"atoms"`      // number of lattice sites
	Script     string      `json:"script"`     // user script path; handled by an external host, ignored here
	Solver     SolverData  `json:"solver"`     // Hamiltonian solver data
	Waves      []*WaveData `json:"waves"`      // initial waves
	Observers  []*ObsData  `json:"observers"`  // observables
}

// Descriptor holds all data of a (.sim) descriptor file
type Descriptor struct {
	Data        Data       `json:"data"`        // global data
	Functions   FuncsData  `json:"functions"`   // potential functions
	Simulations []*RunData `json:"simulations"` // simulation runs
}

// ReadSim reads all simulation data from a .sim JSON file
//
//	Notes: 1) this function initialises the log file
//	       2) returns nil on errors
func ReadSim(simfilepath string, erasefiles bool) *Descriptor {

	// new descriptor
	var o Descriptor

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		io.PfRed("sim: cannot read descriptor file %s\n%v\n", simfilepath, err)
		return nil
	}

	// set default values
	o.Data.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		io.PfRed("sim: cannot unmarshal descriptor file %s\n%v\n", simfilepath, err)
		return nil
	}

	// derived data
	o.Data.PostProcess(simfilepath, erasefiles)

	// init log file
	err = InitLogFile(o.Data.DirOut, o.Data.FnameKey)
	if err != nil {
		io.PfRed("sim: cannot create log file\n%v\n", err)
		return nil
	}

	// for all runs
	for idx, r := range o.Simulations {

		// fix defaults
		if r.Mass == 0 {
			r.Mass = 1
		}
		r.Solver.SetDefault()

		// check data
		if LogErrCond(r.Dx < 1e-14, "sim: run %d: dx must be positive", idx) {
			return nil
		}
		if LogErrCond(r.Dt < 1e-14, "sim: run %d: dt must be positive", idx) {
			return nil
		}
		if LogErrCond(r.Atoms < 3, "sim: run %d: lattice needs at least 3 atoms", idx) {
			return nil
		}
		if LogErrCond(r.Iterations < 0, "sim: run %d: iterations cannot be negative", idx) {
			return nil
		}

		// scripts are run by an external host
		if r.Script != "" {
			log.Printf("sim: run %d: script %q is ignored; runs are assembled from the descriptor\n", idx, r.Script)
		}
	}

	// log
	log.Printf("sim: fn=%s desc=%q nfunctions=%d nsimulations=%d\n", simfilepath, o.Data.Desc, len(o.Functions), len(o.Simulations))
	return &o
}

// GetInfo returns formatted information
func (o *Descriptor) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return chk.Err("cannot marshal descriptor data")
	}
	_, err = w.Write(b)
	return
}
