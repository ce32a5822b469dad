// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/tabeos/mdl/eos"
)

func Test_fluids01(tst *testing.T) {

	chk.PrintTitle("fluids01")

	db, err := ReadFluids("../data", "air.eos")
	if err != nil {
		tst.Errorf("ReadFluids failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pforan("%v\n", db)
	}
	if _, err = ReadFluids("../data", "nope.eos"); err == nil {
		tst.Errorf("ReadFluids should have failed with missing file\n")
	}
	chk.Int(tst, "number of fluids", len(db.Fluids), 2)
	if db.Get("water") != nil {
		tst.Errorf("Get should have returned nil\n")
	}

	// table
	fld := db.Get("air-table")
	if fld == nil || fld.Tab == nil {
		tst.Errorf("air-table should have a table\n")
		return
	}
	chk.Int(tst, "nx", fld.Tab.Rho.N, 9)
	chk.Int(tst, "ny", fld.Tab.De.N, 7)
	chk.Float64(tst, "c3", 1e-15, fld.Tab.Sat[3], 1e4)
	tf, ok := fld.Eos.(*eos.TableFluid)
	if !ok {
		tst.Errorf("model of air-table should be a table fluid\n")
		return
	}
	if !tf.Entropy {
		tst.Errorf("entropy flag should be set\n")
	}

	// ideal gas
	gas := db.Get("air")
	if gas == nil || gas.Tab != nil {
		tst.Errorf("air should be an analytic model without table\n")
		return
	}
}

func Test_fluids02(tst *testing.T) {

	chk.PrintTitle("fluids02. table against ideal gas")

	db, err := ReadFluids("../data", "air.eos")
	if err != nil {
		tst.Errorf("ReadFluids failed: %v\n", err)
		return
	}

	// each model owns its state; both share the table
	fld := db.Get("air-table")
	mdlA, errA := fld.NewModel()
	mdlB, errB := fld.NewModel()
	if errA != nil || errB != nil {
		tst.Errorf("NewModel failed: %v %v\n", errA, errB)
		return
	}
	if mdlA.(*eos.TableFluid).Tab != mdlB.(*eos.TableFluid).Tab {
		tst.Errorf("models should share the table\n")
	}

	P, T := 101325.0, 300.0
	mdlA.SetTDStatePT(P, T)
	mdlB.SetTDStateRhoE(1.5, 2e5)
	a := mdlA.State()
	chk.Float64(tst, "T", 1e-9, a.T, T)
	chk.Float64(tst, "P", 1e-3, a.P, P)
	if a.Err() != nil {
		tst.Errorf("%v\n", a.Err())
	}

	gas := db.Get("air").Eos
	gas.SetTDStatePT(P, T)
	g := gas.State()
	chk.Float64(tst, "rho (interpolation error)", 1e-3*g.Rho, a.Rho, g.Rho)
	chk.Float64(tst, "e (interpolation error)", 1e-3*g.E, a.E, g.E)
	chk.Float64(tst, "rho of other model", 0, mdlB.State().Rho, 1.5)
}

func Test_fluids03(tst *testing.T) {

	chk.PrintTitle("fluids03. wrong table data")

	props := make(map[string][]float64)
	for p := eos.Prop(0); p < eos.NumProps; p++ {
		props[p.String()] = make([]float64, 4)
	}
	data := TableData{Rho: [2]float64{1, 2}, De: [2]float64{0, 1}, Nx: 2, Ny: 2, Props: props}
	if _, err := data.Build(); err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}

	props["rho"] = make([]float64, 4)
	if _, err := data.Build(); err == nil {
		tst.Errorf("Build should have failed with unknown property\n")
	}
	delete(props, "rho")

	delete(props, "a2")
	if _, err := data.Build(); err == nil {
		tst.Errorf("Build should have failed with missing property\n")
	}

	fld := &Fluid{Name: "broken", Model: "table", Table: &data}
	if _, err := fld.NewModel(); err == nil {
		tst.Errorf("NewModel without table should have failed\n")
	}
}
