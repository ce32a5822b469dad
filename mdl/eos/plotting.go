// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots property p along the density axis for np energy deviations,
// including a margin of one cell on both sides to show the extrapolation
func Plot(tab *Table, p Prop, dirout, fnkey string, np int) {
	dρ := (tab.Rho.Max - tab.Rho.Min) / float64(tab.Rho.N-1)
	X := utl.LinSpace(tab.Rho.Min-dρ, tab.Rho.Max+dρ, 4*(tab.Rho.N+1)+1)
	plt.Reset(false, nil)
	for _, De := range utl.LinSpace(tab.De.Min, tab.De.Max, np) {
		Y := make([]float64, len(X))
		for i, ρ := range X {
			Y[i] = tab.LookupDe(p, ρ, De)
		}
		plt.Plot(X, Y, &plt.A{L: io.Sf("$\\Delta e=%g$", De)})
	}
	plt.Gll("$\\rho$", io.Sf("$%v$", p), nil)
	plt.Save(dirout, fnkey)
}
