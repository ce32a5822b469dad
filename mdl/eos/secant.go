// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Residual is a scalar function whose root is sought
type Residual interface {
	F(x float64) float64
}

// ResidualFunc adapts an ordinary function to Residual
type ResidualFunc func(x float64) float64

// F calls f(x)
func (f ResidualFunc) F(x float64) float64 { return f(x) }

// Result holds the outcome of a root search
type Result struct {
	X      float64 // last evaluated iterate
	R      float64 // residual at X
	It     int     // number of secant updates
	Status Status  // Converged, MaxIterationsReached or Degenerate
}

// Secant implements the secant method with a bounded number of iterations.
// Solve never fails: the last iterate is returned together with a status
type Secant struct {
	NmaxIt int     // max number of iterations
	Itol   float64 // tolerance on |r(x)| relative to |x0|
	Pert   float64 // the second seed is Pert・x0
	ShowR  bool    // show residual values
}

// NewSecant returns a solver with default constants
func NewSecant() Secant {
	return Secant{NmaxIt: 20, Itol: 1e-9, Pert: 1.01}
}

// Solve finds x such that r(x) ≈ 0 starting from x0 and Pert・x0.
//  Convergence: |r(x)| ≤ Itol・|x0|, with x0 the original seed.
//  A zero slope (equal consecutive residuals) or a non-finite residual stops
//  the iterations with Degenerate status and the last finite iterate.
func (o Secant) Solve(x0 float64, r Residual) (res Result) {

	// message
	if o.ShowR {
		io.PfYel("%6s%23s%23s%8s\n", "it", "x", "r", "ex(r)")
	}

	// first seed
	tol := o.Itol * math.Abs(x0)
	x, y := x0, r.F(x0)
	if o.ShowR {
		io.Pfyel("%6d%23.15e%23.15e%8d\n", 0, x, y, utl.Expon(y))
	}
	if !finite(y) {
		return Result{x, y, 0, Degenerate}
	}

	// iterations
	xn := o.Pert * x0
	var it int
	for it = 0; math.Abs(y) > tol && it < o.NmaxIt; it++ {
		yn := r.F(xn)
		if o.ShowR {
			io.Pfyel("%6d%23.15e%23.15e%8d\n", it+1, xn, yn, utl.Expon(yn))
		}
		if !finite(yn) {
			return Result{x, y, it + 1, Degenerate}
		}
		if yn == y {
			return Result{xn, yn, it + 1, Degenerate}
		}
		dx, dy := x-xn, y-yn
		x, y = xn, yn
		xn -= yn * dx / dy
	}

	// results
	res = Result{x, y, it, Converged}
	if math.Abs(y) > tol {
		res.Status = MaxIterationsReached
	}
	if o.ShowR {
		io.Pfgrey("  %v after %d iterations\n", res.Status, it)
	}
	return
}

// finite tells whether v is neither NaN nor ±Inf
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
