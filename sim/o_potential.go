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

// Potential filters the potential over the lattice at startup.
// Records are "i/n V(i/n)"
type Potential struct {
	when
	W io.Writer
	V fun.Func
}

// add observable to factory
func init() {
	obsallocators["potential"] = func(dat *inp.ObsData, w io.Writer, v fun.Func) Observable {
		return NewPotential(w, v)
	}
}

// NewPotential returns a potential observable writing to w
func NewPotential(w io.Writer, v fun.Func) *Potential {
	return &Potential{when: when(Startup), W: w, V: v}
}

// Filter writes the potential over the lattice
func (o *Potential) Filter(s *Simulation) error {
	n := s.Parameters().AtomCount
	for i := 0; i < n; i++ {
		x := float64(i) / float64(n)
		if _, err := fmt.Fprintf(o.W, "%v %v\n", x, o.V.F(x, nil)); err != nil {
			return chk.Err("potential: cannot write record: %v", err)
		}
	}
	return endframe(o.W)
}
