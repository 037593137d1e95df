// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"io"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gosch/inp"
)

// CheckTime flags the dispatch points of the simulation schedule
type CheckTime int

const (
	Startup   CheckTime = 1 << iota // before the first step
	Iteration                       // after each step
	Cooldown                        // after the last step
)

// Observable samples a quantity from the running simulation. Check
// reports whether the observable wants to filter at the given dispatch
// point; Filter reads the simulation state and writes records to the
// observable's sink
type Observable interface {
	Check(t CheckTime) bool
	Filter(s *Simulation) error
}

// when is the dispatch mask shared by the built-in observables
type when CheckTime

// Check returns true if the mask includes the given dispatch point
func (o when) Check(t CheckTime) bool {
	return CheckTime(o)&t == t
}

// obsallocators holds all available observables
var obsallocators = make(map[string]func(dat *inp.ObsData, w io.Writer, v fun.Func) Observable)

// NewObservable allocates an observable by kind with sink w. The
// potential function v is consumed by the kinds that sample it
func NewObservable(dat *inp.ObsData, w io.Writer, v fun.Func) Observable {
	alloc, ok := obsallocators[dat.Kind]
	if !ok {
		chk.Panic("cannot find observable kind named %q", dat.Kind)
	}
	return alloc(dat, w, v)
}

// endframe writes the blank-line pair separating frames so downstream
// plotting tools can detect frame breaks
func endframe(w io.Writer) error {
	if _, err := io.WriteString(w, "\n\n"); err != nil {
		return chk.Err("cannot write frame separator: %v", err)
	}
	return nil
}
