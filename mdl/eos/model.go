// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos implements equations of state for compressible flow solvers.
// The main model evaluates tabulated properties on a regular (ρ, e - esat(ρ))
// grid and inverts the table with secant iterations to set the state from any
// of the supported pairs of thermodynamic variables
package eos

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines fluid models. Setters overwrite the state; they never fail and
// anomalies are reported in State().Status
type Model interface {
	Init(prms dbf.Params, tab *Table) error // initialises model; tab is ignored by analytic models
	GetPrms(example bool) dbf.Params        // gets (an example) of parameters
	SetTDStateRhoE(ρ, e float64)            // sets state from density and internal energy
	SetTDStatePRho(P, ρ float64)            // sets state from pressure and density
	SetTDStateRhoT(ρ, T float64)            // sets state from density and temperature
	SetTDStateRhoH(ρ, h float64)            // sets state from density and enthalpy
	SetTDStatePT(P, T float64)              // sets state from pressure and temperature
	SetTDStatePs(P, s float64)              // sets state from pressure and entropy
	SetTDStateHs(h, s float64)              // sets state from enthalpy and entropy
	SetEnergyPRho(P, ρ float64)             // sets only the internal energy from pressure and density
	State() State                           // returns the current state
}

// New returns new fluid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'eos' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// SetState sets the state of a model using the pair of variables named by key.
// Keys are case insensitive: "rhoe", "prho", "rhot", "rhoh", "pt", "ps" and "hs";
// a and b follow the order of the key
func SetState(mdl Model, key string, a, b float64) error {
	switch strings.ToLower(key) {
	case "rhoe":
		mdl.SetTDStateRhoE(a, b)
	case "prho":
		mdl.SetTDStatePRho(a, b)
	case "rhot":
		mdl.SetTDStateRhoT(a, b)
	case "rhoh":
		mdl.SetTDStateRhoH(a, b)
	case "pt":
		mdl.SetTDStatePT(a, b)
	case "ps":
		mdl.SetTDStatePs(a, b)
	case "hs":
		mdl.SetTDStateHs(a, b)
	default:
		return chk.Err("pair of variables %q is not available; options are rhoe, prho, rhot, rhoh, pt, ps and hs", key)
	}
	return nil
}
