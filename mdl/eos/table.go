// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Prop identifies a tabulated property
type Prop int

// tabulated properties
const (
	Pressure    Prop = iota // P
	Temperature             // T
	Enthalpy                // h
	Entropy                 // s
	Cv                      // specific heat at constant volume
	Cp                      // specific heat at constant pressure
	SoundSpeed2             // a²
	DPDrhoE                 // ∂P/∂ρ|e
	DPDeRho                 // ∂P/∂e|ρ
	DTDrhoE                 // ∂T/∂ρ|e
	DTDeRho                 // ∂T/∂e|ρ
	NumProps                // number of properties
)

// propKeys holds the keys used in data files
var propKeys = [NumProps]string{"P", "T", "h", "s", "cv", "cp", "a2", "dPdrho_e", "dPde_rho", "dTdrho_e", "dTde_rho"}

// String returns the key of the property
func (o Prop) String() string {
	if o < 0 || o >= NumProps {
		return "unknown"
	}
	return propKeys[o]
}

// PropByKey finds a property by its key
func PropByKey(key string) (Prop, bool) {
	for i, k := range propKeys {
		if k == key {
			return Prop(i), true
		}
	}
	return -1, false
}

// Table holds the tabulated properties of a fluid on a regular (ρ, De) grid,
// where De = e - esat(ρ) is the deviation of the internal energy from the
// saturation energy. A table is immutable after NewTable and is meant to be
// shared by pointer among any number of fluid models
type Table struct {
	Rho Axis       // density axis
	De  Axis       // energy deviation axis
	Sat Saturation // saturation energy coefficients

	// derived
	grid Grid                 // interpolator over (Rho, De)
	data [NumProps]*mat.Dense // Nx×Ny views of the provider's arrays
}

// NewTable wraps the arrays of all properties into a new table. Each array
// has nx*ny values in [ix*ny+iy] order and is kept, not copied.
// Only the shape is checked; the values are trusted
func NewTable(rho, de [2]float64, nx, ny int, sat Saturation, data map[Prop][]float64) (o *Table, err error) {

	// check grid
	if nx < 2 || ny < 2 {
		return nil, chk.Err("table: grid must have at least 2×2 nodes; nx=%d and ny=%d are invalid", nx, ny)
	}
	if !(rho[1] > rho[0]) {
		return nil, chk.Err("table: density axis must be strictly increasing; [%g, %g] is invalid", rho[0], rho[1])
	}
	if !(de[1] > de[0]) {
		return nil, chk.Err("table: energy deviation axis must be strictly increasing; [%g, %g] is invalid", de[0], de[1])
	}

	// new table
	o = new(Table)
	o.Rho = Axis{rho[0], rho[1], nx}
	o.De = Axis{de[0], de[1], ny}
	o.Sat = sat
	o.grid = Grid{o.Rho, o.De}

	// properties
	for p := Prop(0); p < NumProps; p++ {
		z, ok := data[p]
		if !ok {
			return nil, chk.Err("table: data for property %q is missing", p)
		}
		if len(z) != nx*ny {
			return nil, chk.Err("table: property %q must have nx*ny=%d values; %d is incorrect", p, nx*ny, len(z))
		}
		o.data[p] = mat.NewDense(nx, ny, z)
	}
	return
}

// Lookup interpolates property p at density ρ and internal energy e
func (o *Table) Lookup(p Prop, ρ, e float64) float64 {
	return o.grid.Eval(ρ, e-o.Sat.Esat(ρ), o.data[p])
}

// LookupDe interpolates property p at density ρ and energy deviation De
func (o *Table) LookupDe(p Prop, ρ, De float64) float64 {
	return o.grid.Eval(ρ, De, o.data[p])
}

// Inside tells whether (ρ, e) falls within the tabulated domain
func (o *Table) Inside(ρ, e float64) bool {
	return o.grid.Inside(ρ, e-o.Sat.Esat(ρ))
}

// At returns the value of property p stored at node (i,j)
func (o *Table) At(p Prop, i, j int) float64 {
	return o.data[p].At(i, j)
}

// Energy returns the internal energy of node (i,j)
func (o *Table) Energy(i, j int) float64 {
	return o.Sat.Esat(o.Rho.Node(i)) + o.De.Node(j)
}
