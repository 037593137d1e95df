// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Wave computes the initial displacement of lattice sites.
// Implementations must be pure functions of the site index
type Wave interface {
	Displacement(index int) complex128
}

// waveallocators holds all available wave types
var waveallocators = make(map[string]func(prms fun.Prms) (Wave, error))

// NewWave allocates a wave by type name with parameters from prms
func NewWave(wtype string, prms fun.Prms) (Wave, error) {
	alloc, ok := waveallocators[wtype]
	if !ok {
		chk.Panic("cannot find wave type named %q", wtype)
	}
	return alloc(prms)
}
