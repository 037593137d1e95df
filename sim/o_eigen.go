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

// EigTolDefault is the default deflation tolerance of the eigenvalue
// observable
const EigTolDefault = 1e-5

// EnergyEigenvalues filters the energy eigenvalues of the Hamiltonian
// at startup. The complex Hamiltonian is copied into a real matrix
// entry by entry before the QR iteration, so the values are meaningful
// for real-symmetric Hamiltonians only. Records are "k λk", ascending
type EnergyEigenvalues struct {
	when
	W   io.Writer
	Tol float64 // deflation tolerance of the QR iteration
}

// add observable to factory
func init() {
	obsallocators["eigenvalues"] = func(dat *inp.ObsData, w io.Writer, v fun.Func) Observable {
		o := NewEnergyEigenvalues(w)
		if dat.EigTol > 0 {
			o.Tol = dat.EigTol
		}
		return o
	}
}

// NewEnergyEigenvalues returns an energy eigenvalue observable writing
// to w with the default tolerance
func NewEnergyEigenvalues(w io.Writer) *EnergyEigenvalues {
	return &EnergyEigenvalues{when: when(Startup), W: w, Tol: EigTolDefault}
}

// Filter writes the energy eigenvalues of the Hamiltonian
func (o *EnergyEigenvalues) Filter(s *Simulation) error {
	ham := s.Solver().Hamiltonian()
	n := ham.Size()
	m := la.NewTridiag[float64](n)
	for i := 0; i < n; i++ {
		m.Low[i] = real(ham.Low[i])
		m.Dia[i] = real(ham.Dia[i])
		m.Up[i] = real(ham.Up[i])
	}
	evs, err := m.Eigenvalues(o.Tol)
	if err != nil {
		return chk.Err("eigenvalues: %v", err)
	}
	for k, ev := range evs {
		if _, err := fmt.Fprintf(o.W, "%v %v\n", k, ev); err != nil {
			return chk.Err("eigenvalues: cannot write record: %v", err)
		}
	}
	return endframe(o.W)
}
