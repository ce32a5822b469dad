// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "math"

// Saturation holds the coefficients of the saturation energy curve
//   esat(ρ) = c0 + c1・ρ + c2・√ρ + c3・∛ρ
//  Note: ρ ≥ 0 is assumed; negative densities give NaN
type Saturation [4]float64

// Esat returns the saturation energy at density ρ
func (o Saturation) Esat(ρ float64) float64 {
	return o[0] + o[1]*ρ + o[2]*math.Pow(ρ, 0.5) + o[3]*math.Pow(ρ, 1.0/3.0)
}
