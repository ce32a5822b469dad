// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "strings"

// Status collects anomalies found while computing a state. The hot path never
// fails: values are always returned and the flags tell what happened on the way
type Status uint8

// status flags
const (
	Converged            Status = 0      // no anomaly
	MaxIterationsReached Status = 1 << 0 // a root finder stopped at NmaxIt
	Degenerate           Status = 1 << 1 // zero secant slope or non-finite residual
	Extrapolated         Status = 1 << 2 // final (ρ, De) lies outside the grid
)

// Has tells whether flag is set
func (o Status) Has(flag Status) bool {
	return o&flag != 0
}

// String returns the names of the flags joined by "|"
func (o Status) String() string {
	if o == Converged {
		return "converged"
	}
	var names []string
	if o.Has(MaxIterationsReached) {
		names = append(names, "max-iterations-reached")
	}
	if o.Has(Degenerate) {
		names = append(names, "degenerate")
	}
	if o.Has(Extrapolated) {
		names = append(names, "extrapolated")
	}
	return strings.Join(names, "|")
}
