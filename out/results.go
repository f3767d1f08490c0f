// Copyright 2026 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the solver result readers and the query layer
// over the parsed result sets
package out

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/io"
)

// Location tells where the values of a result set live
type Location int

// value locations
const (
	Nodal      Location = iota + 1 // one vector per node id
	PerElement                     // one vector per element id
	IntPnt                         // one matrix per element id; rows are integration points
)

// Entity identifies a result quantity. The set of entities is closed:
// unknown names in a report are skipped during parsing
type Entity string

// tabular report entities
const (
	U     Entity = "U"     // displacements
	RF    Entity = "RF"    // reaction forces
	S     Entity = "S"     // stresses
	E     Entity = "E"     // strains
	ME    Entity = "ME"    // mechanical strains
	PEEQ  Entity = "PEEQ"  // equivalent plastic strain
	EVOL  Entity = "EVOL"  // element volumes
	COORD Entity = "COORD" // integration point coordinates
	ENER  Entity = "ENER"  // internal energy density
	ELKE  Entity = "ELKE"  // kinetic energy
	ELSE  Entity = "ELSE"  // internal energy
	CELS  Entity = "CELS"  // contact spring energy
	CSTR  Entity = "CSTR"  // contact stresses
	CDIS  Entity = "CDIS"  // relative contact displacements
)

// structured results file entities
const (
	Disp     Entity = "DISP"     // displacements
	Stress   Entity = "STRESS"   // stresses extrapolated to nodes
	Forc     Entity = "FORC"     // forces
	Contact  Entity = "CONTACT"  // contact results
	ErrEst   Entity = "ERROR"    // stress error estimator
	NdTemp   Entity = "NDTEMP"   // temperatures
	ToStrain Entity = "TOSTRAIN" // total strains
)

// entityLoc maps each entity to its value location
var entityLoc = map[Entity]Location{
	U: Nodal, RF: Nodal,
	S: IntPnt, E: IntPnt, ME: IntPnt, PEEQ: IntPnt, COORD: IntPnt, ENER: IntPnt,
	EVOL: PerElement, ELKE: PerElement, ELSE: PerElement,
	CELS: Nodal, CSTR: Nodal, CDIS: Nodal,
	Disp: Nodal, Stress: Nodal, Forc: Nodal, Contact: Nodal, ErrEst: Nodal,
	NdTemp: Nodal, ToStrain: Nodal,
}

// NotFoundError indicates a value lookup for an id that is not part of a
// result set
type NotFoundError struct {
	Msg string
}

// Error returns the message of this error
func (o *NotFoundError) Error() string { return o.Msg }

// ResultSet holds one parsed block of solver output: the values of one
// entity for one set at one step time. Immutable after parsing
type ResultSet struct {
	Entity     Entity               // result quantity
	Ncomp      int                  // number of components per value
	Time       float64              // step time
	SetName    string               // name of the printed node or element set; may be empty
	Components []string             // component names; len == Ncomp
	Loc        Location             // where the values live
	Vals       map[int][]float64    // id => vector; Loc == Nodal or PerElement
	IpVals     map[int][][]float64  // id => matrix; Loc == IntPnt
}

// Value returns the vector of the given id. Loc must not be IntPnt
func (o *ResultSet) Value(id int) ([]float64, error) {
	v, ok := o.Vals[id]
	if !ok {
		return nil, &NotFoundError{io.Sf("id %d is not part of result set %q", id, string(o.Entity))}
	}
	return v, nil
}

// IpValue returns the integration point matrix of the given id. Loc must
// be IntPnt
func (o *ResultSet) IpValue(id int) ([][]float64, error) {
	v, ok := o.IpVals[id]
	if !ok {
		return nil, &NotFoundError{io.Sf("id %d is not part of result set %q", id, string(o.Entity))}
	}
	return v, nil
}

// ValuesByIds returns one row per requested id, in the requested order.
// A missing id is an error, never a silent gap
func (o *ResultSet) ValuesByIds(ids []int) ([][]float64, error) {
	res := make([][]float64, len(ids))
	for i, id := range ids {
		v, err := o.Value(id)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

// IpValuesByIds returns one matrix per requested id, in the requested order
func (o *ResultSet) IpValuesByIds(ids []int) ([][][]float64, error) {
	res := make([][][]float64, len(ids))
	for i, id := range ids {
		v, err := o.IpValue(id)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

// Ids returns the ids of this result set in ascending order
func (o *ResultSet) Ids() []int {
	ids := make([]int, 0, len(o.Vals)+len(o.IpVals))
	for id := range o.Vals {
		ids = append(ids, id)
	}
	for id := range o.IpVals {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Results holds all result sets parsed from one file, in file order,
// together with the sorted distinct step times. Immutable after parsing
type Results struct {
	Times []float64    // sorted distinct step times
	Sets  []*ResultSet // all result sets in file order
}

// newResults builds a Results from the distinct times and the parsed sets
func newResults(times map[float64]bool, sets []*ResultSet) *Results {
	ts := make([]float64, 0, len(times))
	for t := range times {
		ts = append(ts, t)
	}
	sort.Float64s(ts)
	return &Results{Times: ts, Sets: sets}
}

// SetsByEntity returns all result sets with the given entity, in file
// order. The result is empty if there are none
func (o *Results) SetsByEntity(entity Entity) []*ResultSet {
	var res []*ResultSet
	for _, rs := range o.Sets {
		if rs.Entity == entity {
			res = append(res, rs)
		}
	}
	return res
}

// nearestTime returns the stored step time closest to t. Ties go to the
// earlier time
func (o *Results) nearestTime(t float64) float64 {
	best := o.Times[0]
	for _, st := range o.Times[1:] {
		if math.Abs(st-t) < math.Abs(best-t) {
			best = st
		}
	}
	return best
}

// SetByEntityAndTime returns the result set with the given entity whose
// step time is nearest to time. If the entity has a real and an imaginary
// part, two result sets share that time: imag selects the second one.
// Nil is returned if there is no match, or if imag is requested but only
// the real part is present
func (o *Results) SetByEntityAndTime(entity Entity, time float64, imag bool) *ResultSet {
	if len(o.Times) == 0 {
		return nil
	}
	return o.pick(o.SetsByEntity(entity), o.nearestTime(time), imag)
}

// SetByEntityAndIndex works like SetByEntityAndTime with the time
// selected by index into the sorted distinct step times
func (o *Results) SetByEntityAndIndex(entity Entity, index int, imag bool) *ResultSet {
	if index < 0 || index >= len(o.Times) {
		return nil
	}
	return o.pick(o.SetsByEntity(entity), o.Times[index], imag)
}

// pick filters sets by step time and applies the real/imaginary pairing:
// the first match is the real part, the second the imaginary part
func (o *Results) pick(sets []*ResultSet, time float64, imag bool) *ResultSet {
	var matches []*ResultSet
	for _, rs := range sets {
		if rs.Time == time {
			matches = append(matches, rs)
		}
	}
	if len(matches) == 0 {
		return nil
	}
	if !imag {
		return matches[0]
	}
	if len(matches) == 1 {
		return nil
	}
	return matches[1]
}
