// Copyright 2026 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"

	"github.com/goccx/goccx/kwd"
)

// MatData holds one material of a material library file
type MatData struct {
	Name string  `json:"name"` // name of material
	Desc string  `json:"desc"` // description
	E    float64 `json:"E"`    // Young's modulus
	Nu   float64 `json:"nu"`   // Poisson's ratio
	Rho  float64 `json:"rho"`  // density; 0 means unspecified
}

// Keywords builds the keyword group of this material: *MATERIAL followed
// by its property cards
func (o *MatData) Keywords() ([]kwd.Keyword, error) {
	mat, err := kwd.NewMaterial(o.Name)
	if err != nil {
		return nil, err
	}
	ela, err := kwd.NewElastic(o.E, o.Nu)
	if err != nil {
		return nil, err
	}
	kws := []kwd.Keyword{mat, ela}
	if o.Rho > 0 {
		den, err := kwd.NewDensity(o.Rho)
		if err != nil {
			return nil, err
		}
		kws = append(kws, den)
	}
	return kws, nil
}

// MatDb implements a database of materials read from a JSON library file
type MatDb struct {
	Materials []*MatData `json:"materials"` // all materials

	// derived
	byName map[string]*MatData
}

// ReadMat reads a material database from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, err
	}

	// subsets
	mdb.byName = make(map[string]*MatData)
	for _, m := range mdb.Materials {
		if _, ok := mdb.byName[m.Name]; ok {
			return nil, chk.Err("material named %q is defined twice", m.Name)
		}
		mdb.byName[m.Name] = m
	}
	return
}

// Get returns the material with the given name
func (o *MatDb) Get(name string) (*MatData, error) {
	m, ok := o.byName[name]
	if !ok {
		return nil, chk.Err("cannot find material named %q", name)
	}
	return m, nil
}
