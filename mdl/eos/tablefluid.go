// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// TableFluid implements a fluid whose properties are interpolated from a Table.
//  Cost of setters:
//   (ρ,e)                    one lookup per property
//   (P,ρ), (ρ,T), (ρ,h)      one secant search along e, then (ρ,e)
//   (P,T), (P,s), (h,s)      secant search along ρ whose residual runs a
//                            search along e; up to NmaxIt² inner evaluations
//  The table is shared and never modified; each TableFluid owns its state, so
//  concurrent callers need one TableFluid each
type TableFluid struct {
	Tab     *Table // tabulated data (shared, read-only)
	Entropy bool   // compute entropy when setting the state
	Solver  Secant // root finder of all inversions
	state   State  // current state
}

// add model to factory
func init() {
	allocators["table"] = func() Model { return new(TableFluid) }
}

// NewTableFluid returns a table fluid with default solver constants
func NewTableFluid(tab *Table, entropy bool) *TableFluid {
	return &TableFluid{Tab: tab, Entropy: entropy, Solver: NewSecant()}
}

// Init initialises model
func (o *TableFluid) Init(prms dbf.Params, tab *Table) (err error) {
	if tab == nil {
		return chk.Err("table fluid: table must be non-nil")
	}
	o.Tab = tab
	o.Solver = NewSecant()
	for _, p := range prms {
		switch p.N {
		case "entropy":
			o.Entropy = p.V > 0
		case "NmaxIt":
			o.Solver.NmaxIt = int(p.V)
		case "Itol":
			o.Solver.Itol = p.V
		case "ShowR":
			o.Solver.ShowR = p.V > 0
		default:
			return chk.Err("table fluid: parameter named %q is incorrect", p.N)
		}
	}
	if o.Solver.NmaxIt < 1 {
		return chk.Err("table fluid: NmaxIt = %d is invalid", o.Solver.NmaxIt)
	}
	if o.Solver.Itol <= 0 {
		return chk.Err("table fluid: Itol = %g is invalid", o.Solver.Itol)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o TableFluid) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "entropy", V: 1},
			&dbf.P{N: "NmaxIt", V: 20},
			&dbf.P{N: "Itol", V: 1e-9},
		}
	}
	var entropy float64
	if o.Entropy {
		entropy = 1
	}
	return dbf.Params{
		&dbf.P{N: "entropy", V: entropy},
		&dbf.P{N: "NmaxIt", V: float64(o.Solver.NmaxIt)},
		&dbf.P{N: "Itol", V: o.Solver.Itol},
	}
}

// State returns the current state
func (o *TableFluid) State() State {
	return o.state
}

// cheap setter ///////////////////////////////////////////////////////////////////////////////////

// SetTDStateRhoE sets the state from density and internal energy
func (o *TableFluid) SetTDStateRhoE(ρ, e float64) {
	o.evaluateAt(ρ, e, Converged)
}

// not so cheap setters ///////////////////////////////////////////////////////////////////////////

// SetEnergyPRho sets only the internal energy from pressure and density
func (o *TableFluid) SetEnergyPRho(P, ρ float64) {
	res := o.EnergyRhoP(ρ, P)
	o.state.E = res.X
	o.state.Status = res.Status
	if !o.Tab.Inside(ρ, res.X) {
		o.state.Status |= Extrapolated
	}
}

// SetTDStatePRho sets the state from pressure and density
func (o *TableFluid) SetTDStatePRho(P, ρ float64) {
	o.setPRho(P, ρ, Converged)
}

// SetTDStateRhoT sets the state from density and temperature
func (o *TableFluid) SetTDStateRhoT(ρ, T float64) {
	res := o.EnergyRhoT(ρ, T)
	o.evaluateAt(ρ, res.X, res.Status)
}

// SetTDStateRhoH sets the state from density and enthalpy
func (o *TableFluid) SetTDStateRhoH(ρ, h float64) {
	o.setRhoH(ρ, h, Converged)
}

// expensive setters //////////////////////////////////////////////////////////////////////////////

// SetTDStatePT sets the state from pressure and temperature
func (o *TableFluid) SetTDStatePT(P, T float64) {
	res := o.RhoPT(P, T)
	o.setPRho(P, res.X, res.Status)
}

// SetTDStatePs sets the state from pressure and entropy
func (o *TableFluid) SetTDStatePs(P, s float64) {
	res := o.RhoPs(P, s)
	o.setPRho(P, res.X, res.Status)
}

// SetTDStateHs sets the state from enthalpy and entropy
func (o *TableFluid) SetTDStateHs(h, s float64) {
	res := o.RhoHs(h, s)
	o.setRhoH(res.X, h, res.Status)
}

// inversions /////////////////////////////////////////////////////////////////////////////////////

// EnergyRhoP finds e such that P(ρ,e) = P
func (o *TableFluid) EnergyRhoP(ρ, P float64) Result {
	return invertEnergy(o.Tab, o.Solver, ρ, Pressure, P)
}

// EnergyRhoT finds e such that T(ρ,e) = T
func (o *TableFluid) EnergyRhoT(ρ, T float64) Result {
	return invertEnergy(o.Tab, o.Solver, ρ, Temperature, T)
}

// EnergyRhoH finds e such that h(ρ,e) = h
func (o *TableFluid) EnergyRhoH(ρ, h float64) Result {
	return invertEnergy(o.Tab, o.Solver, ρ, Enthalpy, h)
}

// RhoPT finds ρ such that T(ρ, e(ρ,P)) = T
func (o *TableFluid) RhoPT(P, T float64) Result {
	return invertDensity(o.Tab, o.Solver, Pressure, P, Temperature, T)
}

// RhoPs finds ρ such that s(ρ, e(ρ,P)) = s
func (o *TableFluid) RhoPs(P, s float64) Result {
	return invertDensity(o.Tab, o.Solver, Pressure, P, Entropy, s)
}

// RhoHs finds ρ such that s(ρ, e(ρ,h)) = s
func (o *TableFluid) RhoHs(h, s float64) Result {
	return invertDensity(o.Tab, o.Solver, Enthalpy, h, Entropy, s)
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// setPRho finds the energy and sets the state; status carries flags of previous steps
func (o *TableFluid) setPRho(P, ρ float64, status Status) {
	res := o.EnergyRhoP(ρ, P)
	o.evaluateAt(ρ, res.X, status|res.Status)
}

// setRhoH finds the energy and sets the state; status carries flags of previous steps
func (o *TableFluid) setRhoH(ρ, h float64, status Status) {
	res := o.EnergyRhoH(ρ, h)
	o.evaluateAt(ρ, res.X, status|res.Status)
}

// evaluateAt overwrites the whole state with the properties at (ρ,e)
func (o *TableFluid) evaluateAt(ρ, e float64, status Status) {
	tab := o.Tab
	De := e - tab.Sat.Esat(ρ)
	if !tab.grid.Inside(ρ, De) {
		status |= Extrapolated
	}
	s := State{Rho: ρ, E: e, Status: status}
	s.P = tab.LookupDe(Pressure, ρ, De)
	s.T = tab.LookupDe(Temperature, ρ, De)
	s.H = tab.LookupDe(Enthalpy, ρ, De)
	s.A2 = tab.LookupDe(SoundSpeed2, ρ, De)
	s.DPDrhoE = tab.LookupDe(DPDrhoE, ρ, De)
	s.DPDeRho = tab.LookupDe(DPDeRho, ρ, De)
	s.DTDrhoE = tab.LookupDe(DTDrhoE, ρ, De)
	s.DTDeRho = tab.LookupDe(DTDeRho, ρ, De)
	s.Cv = tab.LookupDe(Cv, ρ, De)
	s.Cp = tab.LookupDe(Cp, ρ, De)
	if o.Entropy {
		s.S = tab.LookupDe(Entropy, ρ, De)
	}
	o.state = s
}

// energyResidual is the residual of property prop along e at fixed density
type energyResidual struct {
	tab    *Table
	prop   Prop
	ρ      float64
	target float64
}

// F returns prop(ρ,e) - target
func (o energyResidual) F(e float64) float64 {
	return o.tab.Lookup(o.prop, o.ρ, e) - o.target
}

// densityResidual is the residual of property outer along ρ, where the energy
// is found at each density by inverting property inner. Statuses of these inner
// solves are not kept: only the solve at the final density is reported
type densityResidual struct {
	tab    *Table
	solver Secant
	inner  Prop
	fixed  float64
	outer  Prop
	target float64
}

// F returns outer(ρ, e) - target with e such that inner(ρ,e) = fixed
func (o densityResidual) F(ρ float64) float64 {
	e := invertEnergy(o.tab, o.solver, ρ, o.inner, o.fixed).X
	return o.tab.Lookup(o.outer, ρ, e) - o.target
}

// invertEnergy finds e such that prop(ρ,e) = target starting from the first De node
func invertEnergy(tab *Table, solver Secant, ρ float64, prop Prop, target float64) Result {
	e0 := tab.Sat.Esat(ρ) + tab.De.Min
	return solver.Solve(e0, energyResidual{tab, prop, ρ, target})
}

// invertDensity finds ρ such that outer(ρ, e) = target, with inner(ρ, e) = fixed,
// starting from the first density node
func invertDensity(tab *Table, solver Secant, inner Prop, fixed float64, outer Prop, target float64) Result {
	return solver.Solve(tab.Rho.Min, densityResidual{tab, solver, inner, fixed, outer, target})
}
