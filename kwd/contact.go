// Copyright 2026 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kwd

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/goccx/goccx/msh"
)

// SurfaceInteraction starts a surface interaction definition. Behavior
// keywords following it (SurfaceBehavior, Friction) belong to it
type SurfaceInteraction struct {
	Name string
}

// NewSurfaceInteraction returns a new surface interaction keyword
func NewSurfaceInteraction(name string) (*SurfaceInteraction, error) {
	if err := checkName("interaction name", name); err != nil {
		return nil, err
	}
	return &SurfaceInteraction{Name: name}, nil
}

// Deck renders this keyword
func (o *SurfaceInteraction) Deck() string {
	return io.Sf("*SURFACE INTERACTION,NAME=%s\n", o.Name)
}

// SurfaceBehavior defines the pressure-overclosure relation of a surface
// interaction
type SurfaceBehavior struct {
	Relation Overclosure
	K        float64 // slope; LINEAR
	SigInf   float64 // pressure at infinite overclosure; LINEAR, NaN means omitted
	C0       float64 // distance where contact starts; LINEAR/EXPONENTIAL, NaN means omitted
	P0       float64 // pressure at zero distance; EXPONENTIAL
	Table    [][2]float64 // (overclosure, pressure) pairs; TABULAR
}

// NewSurfaceBehaviorLinear returns a linear pressure-overclosure behavior.
// Pass NaN for sigInf or c0 to leave them to the target defaults
func NewSurfaceBehaviorLinear(k, sigInf, c0 float64) (*SurfaceBehavior, error) {
	if k <= 0 {
		return nil, valErr("slope k must be greater than 0, got %v", k)
	}
	if !math.IsNaN(sigInf) && sigInf <= 0 {
		return nil, valErr("sig_inf must be greater than 0, got %v", sigInf)
	}
	if !math.IsNaN(c0) && c0 <= 0 {
		return nil, valErr("c0 must be greater than 0, got %v", c0)
	}
	return &SurfaceBehavior{Relation: OverclosureLinear, K: k, SigInf: sigInf, C0: c0}, nil
}

// NewSurfaceBehaviorExponential returns an exponential pressure-overclosure
// behavior
func NewSurfaceBehaviorExponential(c0, p0 float64) (*SurfaceBehavior, error) {
	if c0 <= 0 {
		return nil, valErr("c0 must be greater than 0, got %v", c0)
	}
	if p0 <= 0 {
		return nil, valErr("p0 must be greater than 0, got %v", p0)
	}
	return &SurfaceBehavior{Relation: OverclosureExponential, C0: c0, P0: p0}, nil
}

// NewSurfaceBehaviorTabular returns a tabular pressure-overclosure behavior
// from (overclosure, pressure) pairs
func NewSurfaceBehaviorTabular(table [][2]float64) (*SurfaceBehavior, error) {
	if len(table) == 0 {
		return nil, valErr("table must contain at least one pair")
	}
	return &SurfaceBehavior{Relation: OverclosureTabular, Table: table}, nil
}

// Deck renders this keyword
func (o *SurfaceBehavior) Deck() string {
	s := io.Sf("*SURFACE BEHAVIOR,PRESSURE-OVERCLOSURE=%s\n", string(o.Relation))
	switch o.Relation {
	case OverclosureLinear:
		l := ftos(o.K)
		if !math.IsNaN(o.SigInf) {
			l += "," + ftos(o.SigInf)
		} else {
			l += ","
		}
		if !math.IsNaN(o.C0) {
			l += "," + ftos(o.C0)
		}
		s += trimLine(l) + "\n"
	case OverclosureExponential:
		s += ftos(o.C0) + "," + ftos(o.P0) + "\n"
	case OverclosureTabular:
		for _, row := range o.Table {
			s += ftos(row[1]) + "," + ftos(row[0]) + "\n"
		}
	}
	return s
}

// Friction defines the friction behavior of a surface interaction
type Friction struct {
	Mue float64 // friction coefficient
	Lam float64 // stick slope in force per volume
}

// NewFriction returns a new friction keyword. Both parameters must be
// strictly positive
func NewFriction(mue, lam float64) (*Friction, error) {
	if mue <= 0 {
		return nil, valErr("mue must be greater than 0, got %v", mue)
	}
	if lam <= 0 {
		return nil, valErr("lam must be greater than 0, got %v", lam)
	}
	return &Friction{Mue: mue, Lam: lam}, nil
}

// Deck renders this keyword
func (o *Friction) Deck() string {
	return "*FRICTION\n" + ftos(o.Mue) + "," + ftos(o.Lam) + "\n"
}

// ContactPair ties two surfaces together with a surface interaction
type ContactPair struct {
	Inter  *SurfaceInteraction
	Type   ContactType
	Ind    *msh.Surface // independent (master) surface
	Dep    *msh.Surface // dependent (slave) surface
	Adjust float64      // node adjustment distance; NaN means omitted
}

// NewContactPair returns a new contact pair keyword. For surface to
// surface contact both surfaces must be element face based. Pass NaN for
// adjust to omit it
func NewContactPair(inter *SurfaceInteraction, ctype ContactType, ind, dep *msh.Surface, adjust float64) (*ContactPair, error) {
	if ctype != NodeToSurface && ctype != SurfaceToSurface {
		return nil, valErr("unknown contact type %q", string(ctype))
	}
	if ind.Kind != msh.ElFaceSurf {
		return nil, valErr("kind of independent surface must be EL_FACE, got %v", ind.Kind)
	}
	if ctype == SurfaceToSurface && dep.Kind != msh.ElFaceSurf {
		return nil, valErr("kind of dependent surface must be EL_FACE for surface to surface contact, got %v", dep.Kind)
	}
	if !math.IsNaN(adjust) && adjust < 0 {
		return nil, valErr("adjust must not be negative, got %v", adjust)
	}
	return &ContactPair{Inter: inter, Type: ctype, Ind: ind, Dep: dep, Adjust: adjust}, nil
}

// Deck renders this keyword. The dependent surface goes first on the data
// line, as the target format requires
func (o *ContactPair) Deck() string {
	s := io.Sf("*CONTACT PAIR,INTERACTION=%s,TYPE=%s", o.Inter.Name, string(o.Type))
	if !math.IsNaN(o.Adjust) {
		s += ",ADJUST=" + ftos(o.Adjust)
	}
	return s + "\n" + o.Dep.Name + "," + o.Ind.Name + "\n"
}

// CheckRefs verifies both surfaces against the mesh
func (o *ContactPair) CheckRefs(m *msh.Mesh) error {
	if err := checkTarget(m, o.Ind); err != nil {
		return err
	}
	return checkTarget(m, o.Dep)
}

// MakeContact builds the complete keyword stack of one contact
// definition: interaction, behavior, optional friction and the pair.
// fric may be nil for frictionless contact
func MakeContact(name string, ctype ContactType, ind, dep *msh.Surface, behavior *SurfaceBehavior, fric *Friction, adjust float64) ([]Keyword, error) {
	inter, err := NewSurfaceInteraction(name)
	if err != nil {
		return nil, err
	}
	pair, err := NewContactPair(inter, ctype, ind, dep, adjust)
	if err != nil {
		return nil, err
	}
	kws := []Keyword{inter, behavior}
	if fric != nil {
		kws = append(kws, fric)
	}
	return append(kws, pair), nil
}
