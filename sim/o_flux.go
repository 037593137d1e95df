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
	"github.com/cpmech/gosch/la"
)

// Flux filters the probability flux j = Im(⟨ψ|∇ψ⟩)/mass after each
// iteration, with ∇ψ by centred finite differences (one-sided at the
// boundaries). Records are "iteration j"
type Flux struct {
	when
	W io.Writer
}

// add observable to factory
func init() {
	obsallocators["flux"] = func(dat *inp.ObsData, w io.Writer, v fun.Func) Observable {
		return NewFlux(w)
	}
}

// NewFlux returns a probability flux observable writing to w
func NewFlux(w io.Writer) *Flux {
	return &Flux{when: when(Iteration), W: w}
}

// Filter writes the probability flux of the current state
func (o *Flux) Filter(s *Simulation) error {
	v := s.Atoms()
	g := gradient(v, s.Parameters().Dx)
	j := 1.0 / s.Parameters().Mass * imag(v.Dot(g))
	if _, err := fmt.Fprintf(o.W, "%v %v\n", s.Iteration(), j); err != nil {
		return chk.Err("flux: cannot write record: %v", err)
	}
	return nil
}

// gradient computes ∇ψ by centred differences on the interior and
// one-sided differences at the two boundary sites
func gradient(v la.VectorC, dx float64) la.VectorC {
	n := v.Size()
	g := la.NewVector[complex128](n)
	g[0] = (v[1] - v[0]) / complex(dx, 0)
	for i := 1; i < n-1; i++ {
		g[i] = (v[i+1] - v[i-1]) / complex(2.0*dx, 0)
	}
	g[n-1] = (v[n-1] - v[n-2]) / complex(dx, 0)
	return g
}
