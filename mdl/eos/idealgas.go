// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// IdealGas implements a calorically perfect gas. The model is:
//   P = (γ-1)・ρ・e   e = cv・T   h = γ・e
//   s = sref + cv・ln(T/Tref) - R・ln(ρ/ρref)
// All setters are closed-form; entropy is always computed
type IdealGas struct {

	// material data
	Gamma  float64 // ratio of specific heats γ = cp/cv
	R      float64 // specific gas constant
	Tref   float64 // reference temperature for entropy
	RhoRef float64 // reference density for entropy
	Sref   float64 // entropy at (Tref, RhoRef)

	// derived
	cv, cp float64 // specific heats

	// state
	state State
}

// add model to factory
func init() {
	allocators["idealgas"] = func() Model { return new(IdealGas) }
}

// Init initialises this structure
func (o *IdealGas) Init(prms dbf.Params, tab *Table) (err error) {
	o.Tref, o.RhoRef = 298.15, 1.0
	for _, p := range prms {
		switch p.N {
		case "gamma":
			o.Gamma = p.V
		case "R":
			o.R = p.V
		case "Tref":
			o.Tref = p.V
		case "rhoref":
			o.RhoRef = p.V
		case "sref":
			o.Sref = p.V
		default:
			return chk.Err("ideal gas: parameter named %q is incorrect", p.N)
		}
	}
	if o.Gamma <= 1 {
		return chk.Err("ideal gas: gamma = %g is invalid; it must be greater than 1", o.Gamma)
	}
	if o.R <= 0 {
		return chk.Err("ideal gas: R = %g is invalid", o.R)
	}
	if o.Tref <= 0 || o.RhoRef <= 0 {
		return chk.Err("ideal gas: reference state (Tref=%g, rhoref=%g) is invalid", o.Tref, o.RhoRef)
	}
	o.cv = o.R / (o.Gamma - 1.0)
	o.cp = o.Gamma * o.cv
	return
}

// GetPrms gets (an example of) parameters
//  Input:
//   example -- returns dry air parameters; othewise returns current parameters
func (o IdealGas) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // dry air
			&dbf.P{N: "gamma", V: 1.4},   // [-]
			&dbf.P{N: "R", V: 287.058},   // [J/(kg・K)]
			&dbf.P{N: "Tref", V: 298.15}, // [K]
			&dbf.P{N: "rhoref", V: 1.0},  // [kg/m³]
			&dbf.P{N: "sref", V: 0},      // [J/(kg・K)]
		}
	}
	return dbf.Params{
		&dbf.P{N: "gamma", V: o.Gamma},
		&dbf.P{N: "R", V: o.R},
		&dbf.P{N: "Tref", V: o.Tref},
		&dbf.P{N: "rhoref", V: o.RhoRef},
		&dbf.P{N: "sref", V: o.Sref},
	}
}

// State returns the current state
func (o *IdealGas) State() State {
	return o.state
}

// SetTDStateRhoE sets the state from density and internal energy
func (o *IdealGas) SetTDStateRhoE(ρ, e float64) {
	g := o.Gamma
	T := e / o.cv
	o.state = State{
		Rho:     ρ,
		E:       e,
		P:       (g - 1.0) * ρ * e,
		T:       T,
		H:       g * e,
		S:       o.Sref + o.cv*math.Log(T/o.Tref) - o.R*math.Log(ρ/o.RhoRef),
		A2:      g * (g - 1.0) * e,
		Cv:      o.cv,
		Cp:      o.cp,
		DPDrhoE: (g - 1.0) * e,
		DPDeRho: (g - 1.0) * ρ,
		DTDrhoE: 0,
		DTDeRho: 1.0 / o.cv,
	}
}

// SetEnergyPRho sets only the internal energy from pressure and density
func (o *IdealGas) SetEnergyPRho(P, ρ float64) {
	o.state.E = P / ((o.Gamma - 1.0) * ρ)
	o.state.Status = Converged
}

// SetTDStatePRho sets the state from pressure and density
func (o *IdealGas) SetTDStatePRho(P, ρ float64) {
	o.SetTDStateRhoE(ρ, P/((o.Gamma-1.0)*ρ))
}

// SetTDStateRhoT sets the state from density and temperature
func (o *IdealGas) SetTDStateRhoT(ρ, T float64) {
	o.SetTDStateRhoE(ρ, o.cv*T)
}

// SetTDStateRhoH sets the state from density and enthalpy
func (o *IdealGas) SetTDStateRhoH(ρ, h float64) {
	o.SetTDStateRhoE(ρ, h/o.Gamma)
}

// SetTDStatePT sets the state from pressure and temperature
func (o *IdealGas) SetTDStatePT(P, T float64) {
	o.SetTDStateRhoE(P/(o.R*T), o.cv*T)
}

// SetTDStatePs sets the state from pressure and entropy
func (o *IdealGas) SetTDStatePs(P, s float64) {
	lnρ := (o.cv*math.Log(P/(o.R*o.Tref)) + o.R*math.Log(o.RhoRef) - (s - o.Sref)) / o.cp
	o.SetTDStatePRho(P, math.Exp(lnρ))
}

// SetTDStateHs sets the state from enthalpy and entropy
func (o *IdealGas) SetTDStateHs(h, s float64) {
	T := h / o.cp
	lnρ := (o.cv*math.Log(T/o.Tref)-(s-o.Sref))/o.R + math.Log(o.RhoRef)
	o.SetTDStateRhoE(math.Exp(lnρ), o.cv*T)
}
