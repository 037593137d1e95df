// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// GaussianWave is a Gaussian wavepacket
//
//	ψ(x) = (1/(2·π·σ²))^¼ · exp(−(x−x₀)²/σ²) · exp(−i·k·x)
//
// where x is the lattice index, σ the width, x₀ the centre position (in
// index units) and k the wavenumber
type GaussianWave struct {
	W  float64 // width σ
	X0 float64 // centre position
	K  float64 // wavenumber
}

// add wave to factory
func init() {
	waveallocators["gaussian"] = func(prms fun.Prms) (Wave, error) {
		o := new(GaussianWave)
		for _, p := range prms {
			switch p.N {
			case "w":
				o.W = p.V
			case "x0":
				o.X0 = p.V
			case "k":
				o.K = p.V
			default:
				return nil, chk.Err("gaussian: parameter named %q is incorrect", p.N)
			}
		}
		if o.W <= 0 {
			return nil, chk.Err("gaussian: width must be positive. w = %g", o.W)
		}
		return o, nil
	}
}

// NewGaussianWave returns a Gaussian wavepacket with width w, centre
// position x0 and wavenumber k
func NewGaussianWave(w, x0, k float64) *GaussianWave {
	if w <= 0 {
		chk.Panic("gaussian: width must be positive. w = %g", w)
	}
	return &GaussianWave{W: w, X0: x0, K: k}
}

// Displacement returns the displacement of the atom at index
func (o *GaussianWave) Displacement(index int) complex128 {
	ampl := math.Pow(1.0/(2.0*math.Pi*o.W*o.W), 0.25)
	x := float64(index)
	e1 := complex(-(x-o.X0)*(x-o.X0)/(o.W*o.W), 0)
	e2 := complex(0, -o.K*x)
	return complex(ampl, 0) * cmplx.Exp(e1) * cmplx.Exp(e2)
}
