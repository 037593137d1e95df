// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_vector01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vector01. creation and arithmetic")

	// creation
	a := NewVector[complex128](3)
	chk.IntAssert(a.Size(), 3)
	checkCvec(tst, "zero", 1e-17, a, Vector[complex128]{0, 0, 0})

	// arithmetic produces fresh vectors
	a = Vector[complex128]{1, 2 + 1i, 3}
	b := Vector[complex128]{2, -1i, 1}
	c := a.Add(b)
	d := a.Sub(b)
	e := a.Mul(2i)
	checkCvec(tst, "a+b", 1e-17, c, Vector[complex128]{3, 2, 4})
	checkCvec(tst, "a-b", 1e-17, d, Vector[complex128]{-1, 2 + 2i, 2})
	checkCvec(tst, "a*2i", 1e-17, e, Vector[complex128]{2i, -2 + 4i, 6i})
	checkCvec(tst, "a unchanged", 1e-17, a, Vector[complex128]{1, 2 + 1i, 3})

	// clone
	f := a.Clone()
	f[0] = 7
	checkCvec(tst, "a after clone edit", 1e-17, a, Vector[complex128]{1, 2 + 1i, 3})
}

func Test_vector02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vector02. Hermitian inner product and norm")

	// dot conjugates the left operand
	a := Vector[complex128]{1 + 2i, 3 - 1i}
	b := Vector[complex128]{2, 1i}
	checkC(tst, "a·b", 1e-15, a.Dot(b), 1-1i)
	checkC(tst, "b·a", 1e-15, b.Dot(a), 1+1i)

	// a·a is real and non-negative
	aa := a.Dot(a)
	chk.Scalar(tst, "Im(a·a)", 1e-17, imag(aa), 0)
	chk.Scalar(tst, "Re(a·a)", 1e-15, real(aa), 15)
	chk.Scalar(tst, "‖a‖", 1e-15, a.Norm(), math.Sqrt(15))

	// conjugation
	checkCvec(tst, "conj(a)", 1e-17, a.Conj(), Vector[complex128]{1 - 2i, 3 + 1i})

	// normalisation
	n, err := a.Normalised()
	if err != nil {
		tst.Errorf("Normalised failed: %v", err)
		return
	}
	chk.Scalar(tst, "‖normalised(a)‖", 1e-15, n.Norm(), 1)

	// zero vector cannot be normalised
	z := NewVector[complex128](4)
	_, err = z.Normalised()
	if err == nil {
		tst.Errorf("Normalised should have failed on a zero vector")
	}
}

func Test_vector03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vector03. real field instantiation")

	a := Vector[float64]{3, -4}
	b := Vector[float64]{1, 2}
	chk.Scalar(tst, "a·b", 1e-17, a.Dot(b), -5)
	chk.Scalar(tst, "‖a‖", 1e-17, a.Norm(), 5)

	// conjugation is the identity over the reals
	chk.Vector(tst, "conj(a)", 1e-17, a.Conj(), []float64{3, -4})

	n, err := a.Normalised()
	if err != nil {
		tst.Errorf("Normalised failed: %v", err)
		return
	}
	chk.Vector(tst, "normalised(a)", 1e-15, n, []float64{0.6, -0.8})
}
