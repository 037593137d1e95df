// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gosch/sim"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// help
	for _, a := range os.Args[1:] {
		if a == "-h" || a == "--help" {
			usage()
			return
		}
	}

	// read input parameters
	var fnames []string
	for i := 0; ; i++ {
		fnamepath, _ := io.ArgToFilename(i, "", ".sim", false)
		if fnamepath == "" {
			break
		}
		fnames = append(fnames, fnamepath)
	}
	if len(fnames) == 0 {
		usage()
		return
	}
	verbose := true
	erasePrev := true

	// message
	io.PfWhite("\nGosch -- Go Schrödinger Equation Solver\n\n")
	io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	// profiling?
	defer utl.DoProf(false)()

	// process files
	for _, fnamepath := range fnames {
		io.Pfyel("\nprocessing file: %s\n", fnamepath)

		// analysis data
		analysis := sim.NewExecutor(fnamepath, erasePrev, verbose)

		// run simulations
		err := analysis.Run()
		if err != nil {
			chk.Panic("run failed:\n%v", err)
		}
	}
}

// usage prints the command line usage
func usage() {
	io.Pf("Crank-Nicolson solver for one dimensional waves.\n")
	io.Pf("This program solves the time-dependent Schrödinger equation\n")
	io.Pf("for one dimensional waves.\n\n")
	io.Pf("Usage:\n  gosch file1.sim [file2.sim ...]\n\n")
	io.Pf("Each descriptor file yields an independent sequence of runs.\n")
}
