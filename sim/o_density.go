// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"
	"io"
	"math/cmplx"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gosch/inp"
)

// Density filters the probability density |ψ(i)| over the lattice after
// each iteration. Records are "i/n |ψ(i)|"
type Density struct {
	when
	W io.Writer
}

// RealPart filters the real component of ψ(i) over the lattice after
// each iteration. Records are "i/n Re ψ(i)"
type RealPart struct {
	when
	W io.Writer
}

// ImagPart filters the imaginary component of ψ(i) over the lattice
// after each iteration. Records are "i/n Im ψ(i)"
type ImagPart struct {
	when
	W io.Writer
}

// add observables to factory
func init() {
	obsallocators["density"] = func(dat *inp.ObsData, w io.Writer, v fun.Func) Observable {
		return NewDensity(w)
	}
	obsallocators["real"] = func(dat *inp.ObsData, w io.Writer, v fun.Func) Observable {
		return NewRealPart(w)
	}
	obsallocators["imag"] = func(dat *inp.ObsData, w io.Writer, v fun.Func) Observable {
		return NewImagPart(w)
	}
}

// NewDensity returns a probability density observable writing to w
func NewDensity(w io.Writer) *Density {
	return &Density{when: when(Iteration), W: w}
}

// NewRealPart returns a real-component observable writing to w
func NewRealPart(w io.Writer) *RealPart {
	return &RealPart{when: when(Iteration), W: w}
}

// NewImagPart returns an imaginary-component observable writing to w
func NewImagPart(w io.Writer) *ImagPart {
	return &ImagPart{when: when(Iteration), W: w}
}

// Filter writes the probability density of the current state
func (o *Density) Filter(s *Simulation) error {
	v := s.Atoms()
	n := v.Size()
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(o.W, "%v %v\n", float64(i)/float64(n), cmplx.Abs(v[i])); err != nil {
			return chk.Err("density: cannot write record: %v", err)
		}
	}
	return endframe(o.W)
}

// Filter writes the real component of the current state
func (o *RealPart) Filter(s *Simulation) error {
	v := s.Atoms()
	n := v.Size()
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(o.W, "%v %v\n", float64(i)/float64(n), real(v[i])); err != nil {
			return chk.Err("real: cannot write record: %v", err)
		}
	}
	return endframe(o.W)
}

// Filter writes the imaginary component of the current state
func (o *ImagPart) Filter(s *Simulation) error {
	v := s.Atoms()
	n := v.Size()
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(o.W, "%v %v\n", float64(i)/float64(n), imag(v[i])); err != nil {
			return chk.Err("imag: cannot write record: %v", err)
		}
	}
	return endframe(o.W)
}
