// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// Axis holds a uniformly spaced coordinate axis
type Axis struct {
	Min float64 // first node
	Max float64 // last node
	N   int     // number of nodes
}

// Frac returns the fractional index of v; v outside [Min,Max] gives an index outside [0,N-1]
func (o Axis) Frac(v float64) float64 {
	return (v - o.Min) / (o.Max - o.Min) * float64(o.N-1)
}

// Node returns the coordinate of node i
func (o Axis) Node(i int) float64 {
	return o.Min + float64(i)*(o.Max-o.Min)/float64(o.N-1)
}

// Nodes returns the coordinates of all nodes
func (o Axis) Nodes() []float64 {
	return utl.LinSpace(o.Min, o.Max, o.N)
}

// Contains tells whether v is within [Min,Max]
func (o Axis) Contains(v float64) bool {
	return v >= o.Min && v <= o.Max
}

// cell returns the lower node of the cell used for fractional index f.
// Clamping to [0,N-2] turns out-of-range queries into linear extrapolation
func (o Axis) cell(f float64) int {
	i := int(f)
	if i < 0 {
		i = 0
	}
	if i > o.N-2 {
		i = o.N - 2
	}
	return i
}

// Grid implements bilinear interpolation on a regular 2D grid. Data are
// stored with one row per x-node and one column per y-node
type Grid struct {
	X Axis // first coordinate (rows)
	Y Axis // second coordinate (columns)
}

// Eval interpolates z at (x,y). Points outside the grid are extrapolated
// with the slopes of the nearest cell
func (o Grid) Eval(x, y float64, z *mat.Dense) float64 {

	// fractional indices and cell
	ix, iy := o.X.Frac(x), o.Y.Frac(y)
	l, b := o.X.cell(ix), o.Y.cell(iy)
	r, t := l+1, b+1

	// raw data
	raw := z.RawMatrix()
	d, s := raw.Data, raw.Stride

	// along y on the left and right nodes, then along x
	wy := iy - float64(b)
	zl := d[l*s+b] + wy*(d[l*s+t]-d[l*s+b])
	zr := d[r*s+b] + wy*(d[r*s+t]-d[r*s+b])
	return zl + (ix-float64(l))*(zr-zl)
}

// Inside tells whether (x,y) lies within the grid
func (o Grid) Inside(x, y float64) bool {
	return o.X.Contains(x) && o.Y.Contains(y)
}
