// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// newAir returns an ideal gas with dry air parameters
func newAir(tst *testing.T) *IdealGas {
	gas := new(IdealGas)
	err := gas.Init(gas.GetPrms(true), nil)
	if err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	return gas
}

// tabulate samples gas at the nodes of a new table
func tabulate(tst *testing.T, gas *IdealGas, rho, de [2]float64, nx, ny int, sat Saturation) *Table {
	data := make(map[Prop][]float64)
	for p := Prop(0); p < NumProps; p++ {
		data[p] = make([]float64, nx*ny)
	}
	X := Axis{rho[0], rho[1], nx}
	Y := Axis{de[0], de[1], ny}
	for i := 0; i < nx; i++ {
		ρ := X.Node(i)
		for j := 0; j < ny; j++ {
			gas.SetTDStateRhoE(ρ, sat.Esat(ρ)+Y.Node(j))
			s := gas.State()
			k := i*ny + j
			data[Pressure][k] = s.P
			data[Temperature][k] = s.T
			data[Enthalpy][k] = s.H
			data[Entropy][k] = s.S
			data[Cv][k] = s.Cv
			data[Cp][k] = s.Cp
			data[SoundSpeed2][k] = s.A2
			data[DPDrhoE][k] = s.DPDrhoE
			data[DPDeRho][k] = s.DPDeRho
			data[DTDrhoE][k] = s.DTDrhoE
			data[DTDeRho][k] = s.DTDeRho
		}
	}
	tab, err := NewTable(rho, de, nx, ny, sat, data)
	if err != nil {
		tst.Fatalf("NewTable failed: %v\n", err)
	}
	return tab
}

// airTable returns a table of dry air with constant saturation energy;
// P, T, h and a² are then bilinear in (ρ,De) and interpolated exactly
func airTable(tst *testing.T) *Table {
	return tabulate(tst, newAir(tst), [2]float64{0.5, 2.5}, [2]float64{0, 3e5}, 9, 7, Saturation{1e5, 0, 0, 0})
}

// curvedTable returns a table of dry air with a curved saturation line
func curvedTable(tst *testing.T) *Table {
	return tabulate(tst, newAir(tst), [2]float64{0.5, 2.5}, [2]float64{0, 3e5}, 9, 7, Saturation{1e5, 2e4, -3e4, 1e4})
}

// checkStatus checks the status of a state or result
func checkStatus(tst *testing.T, msg string, status, correct Status) {
	if status != correct {
		tst.Errorf("%s: status %v is incorrect; it should be %v\n", msg, status, correct)
		return
	}
	if chk.Verbose {
		io.Pforan("%s: %v\n", msg, status)
	}
}
