// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/tabeos/mdl/eos"
)

func Test_main01(tst *testing.T) {

	chk.PrintTitle("main01. state from command line arguments")

	s, err := setState("data/air.eos", "air-table", "pt", 101325, 300)
	if err != nil {
		tst.Errorf("setState failed: %v\n", err)
		return
	}
	chk.Float64(tst, "T", 1e-9, s.T, 300)
	chk.Float64(tst, "P", 1e-3, s.P, 101325)
	if s.Status != eos.Converged {
		tst.Errorf("status should be converged. %v is incorrect\n", s.Status)
	}

	s, err = setState("data/air.eos", "air", "RhoE", 1.2, 2e5)
	if err != nil {
		tst.Errorf("setState failed: %v\n", err)
		return
	}
	chk.Float64(tst, "P", 1e-8, s.P, 0.4*1.2*2e5)
}

func Test_main02(tst *testing.T) {

	chk.PrintTitle("main02. wrong arguments")

	if _, err := setState("data/nope.eos", "air", "pt", 101325, 300); err == nil {
		tst.Errorf("missing file should have failed\n")
	}
	if _, err := setState("data/air.eos", "water", "pt", 101325, 300); err == nil {
		tst.Errorf("missing fluid should have failed\n")
	}
	if _, err := setState("data/air.eos", "air", "tv", 101325, 300); err == nil {
		tst.Errorf("unknown pair should have failed\n")
	}
}
