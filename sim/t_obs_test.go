// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gosch/la"
)

// errWriter fails every write
type errWriter struct{}

func (o errWriter) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("sink is broken")
}

func Test_obs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("obs01. dispatch masks")

	var buf bytes.Buffer
	chk.IntAssert(boolToInt(NewDensity(&buf).Check(Iteration)), 1)
	chk.IntAssert(boolToInt(NewDensity(&buf).Check(Startup)), 0)
	chk.IntAssert(boolToInt(NewPotential(&buf, &fun.Zero).Check(Startup)), 1)
	chk.IntAssert(boolToInt(NewPotential(&buf, &fun.Zero).Check(Iteration)), 0)
	chk.IntAssert(boolToInt(NewEnergyEigenvalues(&buf).Check(Startup)), 1)
	chk.IntAssert(boolToInt(NewFlux(&buf).Check(Cooldown)), 0)

	rec := T_recorder{Mask: Startup | Cooldown}
	chk.IntAssert(boolToInt(rec.Check(Startup)), 1)
	chk.IntAssert(boolToInt(rec.Check(Iteration)), 0)
	chk.IntAssert(boolToInt(rec.Check(Cooldown)), 1)
}

func Test_obs02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("obs02. density, real and imaginary records")

	prm := NewParameters(0.5, 1e-4, 1, 1, 4)
	s := NewSimulation(prm)
	s.SetSolver(NewLinearHamiltonian(prm, &fun.Zero))
	s.atoms = la.VectorC{0, 3 + 4i, -1, 0}

	var buf bytes.Buffer
	o := NewDensity(&buf)
	if err := o.Filter(s); err != nil {
		tst.Errorf("Filter failed: %v", err)
		return
	}
	if buf.String() != "0 0\n0.25 5\n0.5 1\n0.75 0\n\n\n" {
		tst.Errorf("density records are incorrect:\n%q", buf.String())
	}

	buf.Reset()
	re := NewRealPart(&buf)
	if err := re.Filter(s); err != nil {
		tst.Errorf("Filter failed: %v", err)
		return
	}
	if buf.String() != "0 0\n0.25 3\n0.5 -1\n0.75 0\n\n\n" {
		tst.Errorf("real records are incorrect:\n%q", buf.String())
	}

	buf.Reset()
	im := NewImagPart(&buf)
	if err := im.Filter(s); err != nil {
		tst.Errorf("Filter failed: %v", err)
		return
	}
	if buf.String() != "0 0\n0.25 4\n0.5 0\n0.75 0\n\n\n" {
		tst.Errorf("imag records are incorrect:\n%q", buf.String())
	}

	// write failures surface as errors
	if err := NewDensity(errWriter{}).Filter(s); err == nil {
		tst.Errorf("Filter should have failed on a broken sink")
	}
}

func Test_obs03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("obs03. probability flux")

	prm := NewParameters(0.5, 1e-4, 2, 1, 3)
	s := NewSimulation(prm)
	s.SetSolver(NewLinearHamiltonian(prm, &fun.Zero))
	s.atoms = la.VectorC{1, 1i, -1}

	// ∇ψ = (−2+2i, −2, −2−2i); ⟨ψ|∇ψ⟩ = 6i; j = 6/2 = 3
	var buf bytes.Buffer
	o := NewFlux(&buf)
	if err := o.Filter(s); err != nil {
		tst.Errorf("Filter failed: %v", err)
		return
	}
	if buf.String() != "0 3\n" {
		tst.Errorf("flux record is incorrect:\n%q", buf.String())
	}
}

func Test_obs04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("obs04. energy expectation value")

	prm := NewParameters(0.5, 1e-4, 1, 1, 3)
	s := NewSimulation(prm)
	s.SetSolver(NewLinearHamiltonian(prm, &fun.Zero))
	s.atoms = la.VectorC{1, 1, 1}

	// H·ψ = (1, 0, 1); ⟨ψ|H|ψ⟩ = 2
	var buf bytes.Buffer
	o := NewExpectationValue(&buf)
	if err := o.Filter(s); err != nil {
		tst.Errorf("Filter failed: %v", err)
		return
	}
	if buf.String() != "0 2\n" {
		tst.Errorf("expectation record is incorrect:\n%q", buf.String())
	}
}

func Test_obs05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("obs05. potential records")

	prm := NewParameters(0.5, 1e-4, 1, 1, 4)
	s := NewSimulation(prm)
	vf := &fun.Cte{C: 0.5}
	s.SetSolver(NewLinearHamiltonian(prm, vf))

	var buf bytes.Buffer
	o := NewPotential(&buf, vf)
	if err := o.Filter(s); err != nil {
		tst.Errorf("Filter failed: %v", err)
		return
	}
	if buf.String() != "0 0.5\n0.25 0.5\n0.5 0.5\n0.75 0.5\n\n\n" {
		tst.Errorf("potential records are incorrect:\n%q", buf.String())
	}
}

func Test_obs06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("obs06. energy eigenvalue records")

	prm := NewParameters(0.5, 1e-4, 1, 1, 3)
	s := NewSimulation(prm)
	s.SetSolver(NewLinearHamiltonian(prm, &fun.Zero))

	var buf bytes.Buffer
	o := NewEnergyEigenvalues(&buf)
	chk.Scalar(tst, "default tolerance", 1e-17, o.Tol, EigTolDefault)
	if err := o.Filter(s); err != nil {
		tst.Errorf("Filter failed: %v", err)
		return
	}

	// three ascending records plus the frame separator
	out := buf.String()
	if !strings.HasSuffix(out, "\n\n\n") {
		tst.Errorf("missing frame separator:\n%q", out)
		return
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n\n\n"), "\n")
	chk.IntAssert(len(lines), 3)
	correct := []float64{2 - math.Sqrt2, 2, 2 + math.Sqrt2}
	for i, line := range lines {
		var k int
		var ev float64
		if _, err := fmt.Sscanf(line, "%d %g", &k, &ev); err != nil {
			tst.Errorf("cannot parse record %q: %v", line, err)
			return
		}
		chk.IntAssert(k, i)
		chk.Scalar(tst, "λk", 1e-4, ev, correct[i])
	}
}

// boolToInt maps a flag to 0/1 for integer assertions
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
