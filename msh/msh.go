// Copyright 2026 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh holds the finite element mesh data consumed by the deck
// assembler: nodes, elements and the registry of named sets and surfaces
package msh

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SetKind distinguishes node sets from element sets
type SetKind int

const (
	NodeSet SetKind = iota + 1 // set of node ids
	ElemSet                    // set of element ids
)

// String returns the name of this kind
func (o SetKind) String() string {
	if o == NodeSet {
		return "NODE"
	}
	return "ELEMENT"
}

// SurfKind distinguishes element-face based surfaces from node based ones
type SurfKind int

const (
	ElFaceSurf SurfKind = iota + 1 // surface made of (element, face) pairs
	NodeSurf                       // surface made of node ids
)

// String returns the name of this kind
func (o SurfKind) String() string {
	if o == ElFaceSurf {
		return "EL_FACE"
	}
	return "NODE"
}

// Set holds a named collection of node or element ids
type Set struct {
	Name string       // unique name; up to 80 characters
	Kind SetKind      // node set or element set
	Dim  int          // dimension of the entities the set was built from
	IDs  map[int]bool // mesh ids; unordered
}

// DeckRef returns the token used to reference this set in a deck data line
func (o *Set) DeckRef() string { return o.Name }

// SortedIDs returns the ids of this set in ascending order
func (o *Set) SortedIDs() []int {
	ids := make([]int, 0, len(o.IDs))
	for id := range o.IDs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Face identifies one face of one element. Num follows the solver's
// face numbering and is therefore 1-based
type Face struct {
	Eid int // element id
	Num int // face number within element
}

// Surface holds a named collection of element faces or nodes derived
// from a node set. Immutable after derivation
type Surface struct {
	Name  string  // unique name; up to 80 characters
	Kind  SurfKind
	Faces []Face // (element, face) pairs; Kind == ElFaceSurf
	Nodes []int  // node ids; Kind == NodeSurf
}

// DeckRef returns the token used to reference this surface in a deck data line
func (o *Surface) DeckRef() string { return o.Name }

// Mesh holds nodes, elements and the set/surface registry
type Mesh struct {
	Ndim   int               // space dimension
	Nodes  map[int][]float64 // node id => coordinates
	Elems  map[int]*Element  // element id => element
	Reg    Registry          // named sets and surfaces
	maxNid int               // highest node id handed out so far
	maxEid int               // highest element id handed out so far
}

// NewMesh returns a new empty mesh
func NewMesh(ndim int) (o *Mesh) {
	o = new(Mesh)
	o.Ndim = ndim
	o.Nodes = make(map[int][]float64)
	o.Elems = make(map[int]*Element)
	o.Reg.sets = make(map[string]*Set)
	o.Reg.surfs = make(map[string]*Surface)
	return
}

// AddNode adds a node with the given coordinates and returns its id
func (o *Mesh) AddNode(x []float64) int {
	o.maxNid++
	c := make([]float64, len(x))
	copy(c, x)
	o.Nodes[o.maxNid] = c
	return o.maxNid
}

// SetNode adds or replaces the node with the given id
func (o *Mesh) SetNode(id int, x []float64) {
	c := make([]float64, len(x))
	copy(c, x)
	o.Nodes[id] = c
	if id > o.maxNid {
		o.maxNid = id
	}
}

// AddElem adds an element and returns its id
func (o *Mesh) AddElem(etype EType, verts []int) (int, error) {
	if _, ok := etypes[etype]; !ok {
		return 0, chk.Err("unknown element type %q", string(etype))
	}
	o.maxEid++
	v := make([]int, len(verts))
	copy(v, verts)
	o.Elems[o.maxEid] = &Element{ID: o.maxEid, Type: etype, Verts: v}
	return o.maxEid, nil
}

// HasNode tells whether a node with the given id exists
func (o *Mesh) HasNode(id int) bool {
	_, ok := o.Nodes[id]
	return ok
}

// HasElem tells whether an element with the given id exists
func (o *Mesh) HasElem(id int) bool {
	_, ok := o.Elems[id]
	return ok
}

// Registry maps unique names to sets and surfaces. Insert order is kept
// so that deck rendering is deterministic
type Registry struct {
	sets      map[string]*Set
	surfs     map[string]*Surface
	setNames  []string
	surfNames []string
}

// NotFoundError indicates a name lookup miss
type NotFoundError struct {
	Msg string
}

// Error returns the message of this error
func (o *NotFoundError) Error() string { return o.Msg }

// DuplicateNameError indicates an insert collision
type DuplicateNameError struct {
	Msg string
}

// Error returns the message of this error
func (o *DuplicateNameError) Error() string { return o.Msg }

// AddSet registers a new set. A name collision fails with DuplicateNameError
func (o *Registry) AddSet(name string, kind SetKind, dim int, ids []int) (*Set, error) {
	if len(name) > 80 {
		return nil, chk.Err("set name can only contain up to 80 characters, got %d", len(name))
	}
	if _, ok := o.sets[name]; ok {
		return nil, &DuplicateNameError{io.Sf("set named %q exists already", name)}
	}
	s := &Set{Name: name, Kind: kind, Dim: dim, IDs: make(map[int]bool)}
	for _, id := range ids {
		s.IDs[id] = true
	}
	o.sets[name] = s
	o.setNames = append(o.setNames, name)
	return s, nil
}

// GetSet returns the set with the given name
func (o *Registry) GetSet(name string) (*Set, error) {
	s, ok := o.sets[name]
	if !ok {
		return nil, &NotFoundError{io.Sf("cannot find set named %q", name)}
	}
	return s, nil
}

// GetNodeSet returns the node set with the given name
func (o *Registry) GetNodeSet(name string) (*Set, error) {
	s, err := o.GetSet(name)
	if err != nil {
		return nil, err
	}
	if s.Kind != NodeSet {
		return nil, &NotFoundError{io.Sf("set named %q is not a node set", name)}
	}
	return s, nil
}

// GetElSet returns the element set with the given name
func (o *Registry) GetElSet(name string) (*Set, error) {
	s, err := o.GetSet(name)
	if err != nil {
		return nil, err
	}
	if s.Kind != ElemSet {
		return nil, &NotFoundError{io.Sf("set named %q is not an element set", name)}
	}
	return s, nil
}

// GetSurf returns the surface with the given name
func (o *Registry) GetSurf(name string) (*Surface, error) {
	s, ok := o.surfs[name]
	if !ok {
		return nil, &NotFoundError{io.Sf("cannot find surface named %q", name)}
	}
	return s, nil
}

// HasSet tells whether a set with the given name is registered
func (o *Registry) HasSet(name string) bool {
	_, ok := o.sets[name]
	return ok
}

// HasSurf tells whether a surface with the given name is registered
func (o *Registry) HasSurf(name string) bool {
	_, ok := o.surfs[name]
	return ok
}

// SetNames returns the registered set names in insertion order
func (o *Registry) SetNames() []string { return o.setNames }

// SurfNames returns the registered surface names in insertion order
func (o *Registry) SurfNames() []string { return o.surfNames }

func (o *Registry) addSurf(s *Surface) error {
	if _, ok := o.surfs[s.Name]; ok {
		return &DuplicateNameError{io.Sf("surface named %q exists already", s.Name)}
	}
	o.surfs[s.Name] = s
	o.surfNames = append(o.surfNames, s.Name)
	return nil
}
