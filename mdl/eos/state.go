// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// State holds the thermodynamic state of a fluid
type State struct {
	Rho     float64 // density
	E       float64 // static (internal) energy
	P       float64 // pressure
	T       float64 // temperature
	H       float64 // static enthalpy
	S       float64 // entropy; zero when the model does not compute it
	A2      float64 // speed of sound squared
	Cv      float64 // specific heat at constant volume
	Cp      float64 // specific heat at constant pressure
	DPDrhoE float64 // ∂P/∂ρ|e
	DPDeRho float64 // ∂P/∂e|ρ
	DTDrhoE float64 // ∂T/∂ρ|e
	DTDeRho float64 // ∂T/∂e|ρ
	Status  Status  // anomalies found while computing this state
}

// SoundSpeed returns the speed of sound
func (o State) SoundSpeed() float64 {
	return math.Sqrt(o.A2)
}

// Err returns an error describing the anomalies of this state, if any
func (o State) Err() error {
	if o.Status == Converged {
		return nil
	}
	return chk.Err("state at ρ=%g and e=%g is not reliable: %v", o.Rho, o.E, o.Status)
}
