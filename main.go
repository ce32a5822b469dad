// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/tabeos/inp"
	"github.com/cpmech/tabeos/mdl/eos"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "data/air", ".eos", true)
	name := io.ArgToString(1, "air-table")
	pair := io.ArgToString(2, "pt")
	a := io.ArgToFloat(3, 101325)
	b := io.ArgToFloat(4, 300)
	verbose := io.ArgToBool(5, true)
	doprof := io.ArgToInt(6, 0)

	// message
	if verbose {
		io.PfWhite("\nTabeos -- Tabulated Equations of State\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"name of fluid", "name", name,
			"input pair: rhoe prho rhot rhoh pt ps hs", "pair", pair,
			"first value of pair", "a", a,
			"second value of pair", "b", b,
			"show messages", "verbose", verbose,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling?
	if doprof > 0 {
		defer utl.Prof(doprof == 2, !verbose)()
	}

	// state
	s, err := setState(fnamepath, name, pair, a, b)
	if err != nil {
		chk.Panic("%v", err)
	}

	// results
	io.Pf("\n%v\n", io.ArgsTable("STATE OF "+name,
		"density", "rho", s.Rho,
		"internal energy", "e", s.E,
		"pressure", "P", s.P,
		"temperature", "T", s.T,
		"enthalpy", "h", s.H,
		"entropy", "s", s.S,
		"speed of sound", "a", s.SoundSpeed(),
		"specific heat at constant volume", "cv", s.Cv,
		"specific heat at constant pressure", "cp", s.Cp,
		"status", "status", s.Status.String(),
	))
	if err = s.Err(); err != nil {
		io.PfYel("WARNING: %v\n", err)
	}
}

// setState reads the fluids in fnamepath and sets the state of fluid name from an input pair
func setState(fnamepath, name, pair string, a, b float64) (s eos.State, err error) {
	db, err := inp.ReadFluids(filepath.Dir(fnamepath), filepath.Base(fnamepath))
	if err != nil {
		return s, chk.Err("cannot read fluids:\n%v", err)
	}
	fluid := db.Get(name)
	if fluid == nil {
		return s, chk.Err("cannot find fluid named %q in %q", name, fnamepath)
	}
	err = eos.SetState(fluid.Eos, pair, a, b)
	if err != nil {
		return
	}
	return fluid.Eos.State(), nil
}
