// Copyright 2026 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/io"

	"github.com/goccx/goccx/msh"
)

// Heading holds the deck title
type Heading struct {
	Text string
}

// NewHeading returns a new heading keyword
func NewHeading(text string) *Heading { return &Heading{Text: text} }

// Deck renders this keyword
func (o *Heading) Deck() string {
	return "*HEADING\n" + o.Text + "\n"
}

// bcond is one data line of a boundary keyword
type bcond struct {
	target Target
	first  int
	last   int     // 0 means omitted
	value  float64 // magnitude; NaN means omitted (homogeneous condition)
}

// Boundary holds a boundary condition keyword. Conditions are accumulated
// with AddCondition and render one data line each, in call order
type Boundary struct {
	conds []bcond
}

// NewBoundary returns a boundary keyword with one first condition.
// last == 0 constrains the single degree of freedom first
func NewBoundary(target Target, first, last int) (*Boundary, error) {
	o := new(Boundary)
	if err := o.AddCondition(target, first, last); err != nil {
		return nil, err
	}
	return o, nil
}

// AddCondition appends one homogeneous condition data line
func (o *Boundary) AddCondition(target Target, first, last int) error {
	if first < 1 {
		return valErr("first dof must be greater than 0, got %d", first)
	}
	if last != 0 && last < first {
		return valErr("last dof must be greater than or equal to first dof, got %d", last)
	}
	o.conds = append(o.conds, bcond{target, first, last, math.NaN()})
	return nil
}

// AddDisplacement appends one inhomogeneous condition data line with the
// given prescribed value. Meaningful inside steps only
func (o *Boundary) AddDisplacement(target Target, dof int, value float64) error {
	if dof < 1 {
		return valErr("dof must be greater than 0, got %d", dof)
	}
	o.conds = append(o.conds, bcond{target, dof, dof, value})
	return nil
}

// Deck renders this keyword
func (o *Boundary) Deck() string {
	s := "*BOUNDARY\n"
	for _, c := range o.conds {
		l := c.target.DeckRef() + "," + itos(c.first)
		if c.last > 0 {
			l += "," + itos(c.last)
		}
		if !math.IsNaN(c.value) {
			l += "," + ftos(c.value)
		}
		s += trimLine(l) + "\n"
	}
	return s
}

// CheckRefs verifies the condition targets against the mesh
func (o *Boundary) CheckRefs(m *msh.Mesh) error {
	for _, c := range o.conds {
		if err := checkTarget(m, c.target); err != nil {
			return err
		}
	}
	return nil
}

// Material starts a material definition. Property keywords following it
// (Elastic, Density, ...) belong to it until the next material
type Material struct {
	Name string
}

// NewMaterial returns a new material keyword
func NewMaterial(name string) (*Material, error) {
	if err := checkName("material name", name); err != nil {
		return nil, err
	}
	return &Material{Name: name}, nil
}

// Deck renders this keyword
func (o *Material) Deck() string {
	return io.Sf("*MATERIAL,NAME=%s\n", o.Name)
}

// Elastic holds isotropic elastic material properties
type Elastic struct {
	E  float64 // Young's modulus
	Nu float64 // Poisson's ratio
}

// NewElastic returns a new elastic keyword
func NewElastic(e, nu float64) (*Elastic, error) {
	if e <= 0 {
		return nil, valErr("young's modulus must be greater than 0, got %v", e)
	}
	if nu <= -1 || nu >= 0.5 {
		return nil, valErr("poisson's ratio must be within (-1, 0.5), got %v", nu)
	}
	return &Elastic{E: e, Nu: nu}, nil
}

// Deck renders this keyword
func (o *Elastic) Deck() string {
	return "*ELASTIC\n" + ftos(o.E) + "," + ftos(o.Nu) + "\n"
}

// Density holds the mass density of a material
type Density struct {
	Rho float64
}

// NewDensity returns a new density keyword
func NewDensity(rho float64) (*Density, error) {
	if rho <= 0 {
		return nil, valErr("density must be greater than 0, got %v", rho)
	}
	return &Density{Rho: rho}, nil
}

// Deck renders this keyword
func (o *Density) Deck() string {
	return "*DENSITY\n" + ftos(o.Rho) + "\n"
}

// SolidSection assigns a material to an element set
type SolidSection struct {
	Elset       *msh.Set
	Mat         *Material
	Orientation string // name of orientation; empty means omitted
}

// NewSolidSection returns a new solid section keyword. The set must be an
// element set
func NewSolidSection(elset *msh.Set, mat *Material) (*SolidSection, error) {
	if elset.Kind != msh.ElemSet {
		return nil, valErr("kind of elset must be ELEMENT, got %v", elset.Kind)
	}
	return &SolidSection{Elset: elset, Mat: mat}, nil
}

// Deck renders this keyword
func (o *SolidSection) Deck() string {
	s := io.Sf("*SOLID SECTION,MATERIAL=%s,ELSET=%s", o.Mat.Name, o.Elset.Name)
	if o.Orientation != "" {
		s += ",ORIENTATION=" + o.Orientation
	}
	return s + "\n"
}

// CheckRefs verifies the element set against the mesh
func (o *SolidSection) CheckRefs(m *msh.Mesh) error {
	return checkTarget(m, o.Elset)
}

// RigidBody constrains a set to move as a rigid body with the motion
// described by a reference node and a rotation node
type RigidBody struct {
	Set     *msh.Set
	RefNode Nid
	RotNode Nid // 0 means omitted
}

// NewRigidBody returns a new rigid body keyword. rotNode == 0 omits the
// rotation node
func NewRigidBody(set *msh.Set, refNode, rotNode Nid) (*RigidBody, error) {
	if refNode < 1 {
		return nil, valErr("reference node id must be greater than 0, got %d", int(refNode))
	}
	return &RigidBody{Set: set, RefNode: refNode, RotNode: rotNode}, nil
}

// Deck renders this keyword
func (o *RigidBody) Deck() string {
	opt := "NSET"
	if o.Set.Kind == msh.ElemSet {
		opt = "ELSET"
	}
	s := io.Sf("*RIGID BODY,%s=%s,REF NODE=%d", opt, o.Set.Name, int(o.RefNode))
	if o.RotNode > 0 {
		s += io.Sf(",ROT NODE=%d", int(o.RotNode))
	}
	return s + "\n"
}

// CheckRefs verifies the set and the pilot nodes against the mesh
func (o *RigidBody) CheckRefs(m *msh.Mesh) error {
	if err := checkTarget(m, o.Set); err != nil {
		return err
	}
	if err := checkTarget(m, o.RefNode); err != nil {
		return err
	}
	if o.RotNode > 0 {
		return checkTarget(m, o.RotNode)
	}
	return nil
}

// Coupling couples the degrees of freedom of a surface to a reference
// node, either distributing or kinematic
type Coupling struct {
	Kind    CouplingKind
	RefNode Nid
	Surf    *msh.Surface
	Name    string // constraint name
	First   int
	Last    int // 0 means omitted
}

// NewCoupling returns a new coupling keyword. The surface must be element
// face based
func NewCoupling(kind CouplingKind, refNode Nid, surf *msh.Surface, name string, first, last int) (*Coupling, error) {
	if kind != Distributing && kind != Kinematic {
		return nil, valErr("unknown coupling kind %q", string(kind))
	}
	if surf.Kind != msh.ElFaceSurf {
		return nil, valErr("kind of surface must be EL_FACE, got %v", surf.Kind)
	}
	if err := checkName("constraint name", name); err != nil {
		return nil, err
	}
	if first < 1 {
		return nil, valErr("first dof must be greater than 0, got %d", first)
	}
	if last != 0 && last < first {
		return nil, valErr("last dof must be greater than or equal to first dof, got %d", last)
	}
	return &Coupling{Kind: kind, RefNode: refNode, Surf: surf, Name: name, First: first, Last: last}, nil
}

// Deck renders this keyword
func (o *Coupling) Deck() string {
	s := io.Sf("*COUPLING,REF NODE=%d,SURFACE=%s,CONSTRAINT NAME=%s\n", int(o.RefNode), o.Surf.Name, o.Name)
	s += "*" + string(o.Kind) + "\n"
	l := itos(o.First)
	if o.Last > 0 {
		l += "," + itos(o.Last)
	}
	return s + l + "\n"
}

// CheckRefs verifies the surface and the reference node against the mesh
func (o *Coupling) CheckRefs(m *msh.Mesh) error {
	if err := checkTarget(m, o.Surf); err != nil {
		return err
	}
	return checkTarget(m, o.RefNode)
}

// Amplitude holds a time-amplitude curve referenced by loads and
// boundary conditions
type Amplitude struct {
	Name  string
	Times []float64
	Vals  []float64
}

// NewAmplitude returns a new amplitude keyword. Times must be strictly
// increasing
func NewAmplitude(name string, times, vals []float64) (*Amplitude, error) {
	if err := checkName("amplitude name", name); err != nil {
		return nil, err
	}
	if len(times) == 0 || len(times) != len(vals) {
		return nil, valErr("times and values must be non-empty and of equal length, got %d and %d", len(times), len(vals))
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, valErr("times must be strictly increasing, got %v after %v", times[i], times[i-1])
		}
	}
	return &Amplitude{Name: name, Times: times, Vals: vals}, nil
}

// Deck renders this keyword. Four time-amplitude pairs go on each data line
func (o *Amplitude) Deck() string {
	s := io.Sf("*AMPLITUDE,NAME=%s\n", o.Name)
	var pairs []string
	for i := range o.Times {
		pairs = append(pairs, ftos(o.Times[i])+","+ftos(o.Vals[i]))
		if len(pairs) == 4 {
			s += strings.Join(pairs, ",") + "\n"
			pairs = nil
		}
	}
	if len(pairs) > 0 {
		s += strings.Join(pairs, ",") + "\n"
	}
	return s
}
