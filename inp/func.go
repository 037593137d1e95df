// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// FuncData holds function definition
type FuncData struct {
	Name string   `json:"name"` // name of function. ex: zero, well1, ramp2
	Type string   `json:"type"` // type of function. ex: cte, lin
	Prms fun.Prms `json:"prms"` // parameters
}

// FuncsData holds all function definitions
type FuncsData []*FuncData

// GetOrPanic returns function or panic
func (o FuncsData) GetOrPanic(name string) fun.Func {
	if name == "zero" {
		return &fun.Zero
	}
	for _, f := range o {
		if f.Name == name {
			return fun.New(f.Type, f.Prms)
		}
	}
	chk.Panic("cannot find function named %q", name)
	return nil
}
