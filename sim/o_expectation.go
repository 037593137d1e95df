// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"
	"io"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gosch/inp"
)

// ExpectationValue filters the energy expectation value Re(⟨ψ|H|ψ⟩)
// after each iteration. Records are "iteration value"
type ExpectationValue struct {
	when
	W io.Writer
}

// add observable to factory
func init() {
	obsallocators["expectation"] = func(dat *inp.ObsData, w io.Writer, v fun.Func) Observable {
		return NewExpectationValue(w)
	}
}

// NewExpectationValue returns an energy expectation observable writing to w
func NewExpectationValue(w io.Writer) *ExpectationValue {
	return &ExpectationValue{when: when(Iteration), W: w}
}

// Filter writes the energy expectation value of the current state
func (o *ExpectationValue) Filter(s *Simulation) error {
	v := s.Atoms()
	val := real(s.Solver().Hamiltonian().Expectation(v))
	if _, err := fmt.Fprintf(o.W, "%v %v\n", s.Iteration(), val); err != nil {
		return chk.Err("expectation: cannot write record: %v", err)
	}
	return nil
}
