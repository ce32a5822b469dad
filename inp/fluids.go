// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of fluid data
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/tabeos/mdl/eos"
)

// TableData holds the tabulated properties of a fluid
type TableData struct {
	Rho   [2]float64           `json:"rho"`   // min and max densities
	De    [2]float64           `json:"de"`    // min and max energy deviations e - esat(ρ)
	Nx    int                  `json:"nx"`    // number of density nodes
	Ny    int                  `json:"ny"`    // number of energy deviation nodes
	Esat  [4]float64           `json:"esat"`  // saturation energy coefficients
	Props map[string][]float64 `json:"props"` // property arrays in [ix*ny+iy] order; e.g. "P", "T", "h"
}

// Fluid holds fluid data
type Fluid struct {

	// input
	Name  string     `json:"name"`  // name of fluid
	Model string     `json:"model"` // name of model; e.g. "table", "idealgas"
	Extra string     `json:"extra"` // extra information about this fluid
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this fluid
	Table *TableData `json:"table"` // tabulated data; required by "table" models

	// derived
	Tab *eos.Table // table built from Table; shared by all models of this fluid
	Eos eos.Model  // model ready to use
}

// FluidsData holds fluids
type FluidsData []*Fluid

// FluidDb implements a database of fluids
type FluidDb struct {
	Fluids FluidsData `json:"fluids"` // all fluids
}

// ReadFluids reads all fluids data from a .eos JSON file
func ReadFluids(dir, fn string) (db *FluidDb, err error) {

	// new database
	db = new(FluidDb)

	// read file
	fnpath := filepath.Join(dir, fn)
	if _, err = os.Stat(fnpath); err != nil {
		return nil, chk.Err("cannot read fluids file %q:\n%v", fnpath, err)
	}
	b := io.ReadFile(fnpath)

	// decode
	err = json.Unmarshal(b, db)
	if err != nil {
		return nil, chk.Err("cannot decode fluids file %q:\n%v", fn, err)
	}

	// alloc/init models
	names := make(map[string]bool)
	for _, f := range db.Fluids {
		if names[f.Name] {
			return nil, chk.Err("fluid named %q is duplicated", f.Name)
		}
		names[f.Name] = true
		if f.Table != nil {
			f.Tab, err = f.Table.Build()
			if err != nil {
				return nil, chk.Err("fluid %q:\n%v", f.Name, err)
			}
		}
		f.Eos, err = f.NewModel()
		if err != nil {
			return nil, err
		}
	}
	return
}

// Build builds a table with the arrays of this data. The arrays are not copied
func (o *TableData) Build() (*eos.Table, error) {
	data := make(map[eos.Prop][]float64)
	for key, z := range o.Props {
		p, ok := eos.PropByKey(key)
		if !ok {
			return nil, chk.Err("property named %q is not available in tables", key)
		}
		data[p] = z
	}
	return eos.NewTable(o.Rho, o.De, o.Nx, o.Ny, eos.Saturation(o.Esat), data)
}

// NewModel allocates and initialises a new model of this fluid. Models of the
// same fluid share the table; each one holds its own state
func (o *Fluid) NewModel() (mdl eos.Model, err error) {
	mdl, err = eos.New(o.Model)
	if err != nil {
		return
	}
	err = mdl.Init(o.Prms, o.Tab)
	if err != nil {
		return nil, chk.Err("cannot initialise model %q of fluid %q:\n%v", o.Model, o.Name, err)
	}
	return
}

// Get returns a fluid
//  Note: returns nil if not found
func (o FluidDb) Get(name string) *Fluid {
	for _, f := range o.Fluids {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// String prints one fluid
func (o *Fluid) String() string {
	l := io.Sf("    {\n      \"name\"  : %q,\n      \"model\" : %q,\n      \"extra\" : %q,\n      \"prms\"  : [", o.Name, o.Model, o.Extra)
	for i, p := range o.Prms {
		if i > 0 {
			l += ","
		}
		l += io.Sf("\n        {\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	l += "\n      ]"
	if o.Table != nil {
		keys := make([]string, 0, len(o.Table.Props))
		for key := range o.Table.Props {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		l += io.Sf(",\n      \"table\" : {\"rho\":%v, \"de\":%v, \"nx\":%d, \"ny\":%d, \"esat\":%v, \"props\":[%s]}",
			o.Table.Rho, o.Table.De, o.Table.Nx, o.Table.Ny, o.Table.Esat, strings.Join(keys, " "))
	}
	return l + "\n    }"
}

// String prints fluids
func (o FluidsData) String() string {
	l := "  \"fluids\" : [\n"
	for i, f := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", f)
	}
	l += "\n  ]"
	return l
}

// String outputs all fluids
func (o FluidDb) String() string {
	return io.Sf("{\n%v\n}", o.Fluids)
}
