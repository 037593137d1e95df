// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// checkC compares two complex scalars
func checkC(tst *testing.T, msg string, tol float64, res, correct complex128) {
	if diff := cmplx.Abs(res - correct); diff > tol {
		tst.Errorf("%s failed: diff = %g", msg, diff)
		return
	}
	if chk.Verbose {
		io.Pfgreen("%s OK\n", msg)
	}
}

// checkCvec compares two complex vectors
func checkCvec(tst *testing.T, msg string, tol float64, res, correct Vector[complex128]) {
	if len(res) != len(correct) {
		tst.Errorf("%s failed: sizes differ: %d != %d", msg, len(res), len(correct))
		return
	}
	for i := 0; i < len(res); i++ {
		if diff := cmplx.Abs(res[i] - correct[i]); diff > tol {
			tst.Errorf("%s failed: component %d: diff = %g", msg, i, diff)
			return
		}
	}
	if chk.Verbose {
		io.Pfgreen("%s OK\n", msg)
	}
}
