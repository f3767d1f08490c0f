// Copyright 2026 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kwd implements the solver keyword objects: validated value
// objects that render themselves to the solver's fixed text format
package kwd

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/goccx/goccx/msh"
)

// Keyword is one directive of the input deck. Deck returns the canonical
// text of the directive: a header line starting with '*' followed by the
// data lines, all terminated by '\n'
type Keyword interface {
	Deck() string
}

// RefChecker is implemented by keywords that reference mesh entities by
// name. The deck assembler calls CheckRefs before rendering
type RefChecker interface {
	CheckRefs(m *msh.Mesh) error
}

// Target is a reference in a data line: either a named set or a single
// node id
type Target interface {
	DeckRef() string
}

// Nid references a mesh node by id
type Nid int

// DeckRef returns the token used to reference this node in a data line
func (o Nid) DeckRef() string { return strconv.Itoa(int(o)) }

// ValidationError indicates that a keyword constraint was violated at
// construction time
type ValidationError struct {
	Msg string
}

// Error returns the message of this error
func (o *ValidationError) Error() string { return o.Msg }

func valErr(msg string, prm ...interface{}) *ValidationError {
	return &ValidationError{io.Sf(msg, prm...)}
}

// checkName enforces the solver's 80 character field width
func checkName(what, name string) error {
	if len(name) > 80 {
		return valErr("%s can only contain up to 80 characters, got %d", what, len(name))
	}
	return nil
}

// checkTarget verifies that a data line target exists in the mesh
func checkTarget(m *msh.Mesh, t Target) error {
	switch r := t.(type) {
	case Nid:
		if !m.HasNode(int(r)) {
			return chk.Err("node %d is not in the mesh", int(r))
		}
	case *msh.Set:
		if !m.Reg.HasSet(r.Name) {
			return chk.Err("set %q is not registered", r.Name)
		}
	case *msh.Surface:
		if !m.Reg.HasSurf(r.Name) {
			return chk.Err("surface %q is not registered", r.Name)
		}
	}
	return nil
}

// ftos formats a float for a deck data line. The shortest representation
// that parses back to the same value is used
func ftos(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// itos formats an integer for a deck data line
func itos(v int) string { return strconv.Itoa(v) }

// trimLine removes trailing blank fields from a data line. Interior blank
// fields are kept because they are positional
func trimLine(l string) string { return strings.TrimRight(l, ",") }

// Solver is the name of a linear equation solver
type Solver string

// available solvers; DefaultSolver leaves the choice to the target program
const (
	DefaultSolver     Solver = ""
	Spooles           Solver = "SPOOLES"
	Pardiso           Solver = "PARDISO"
	Pastix            Solver = "PASTIX"
	IterativeScaling  Solver = "ITERATIVE SCALING"
	IterativeCholesky Solver = "ITERATIVE CHOLESKY"
)

func checkSolver(s Solver) error {
	switch s {
	case DefaultSolver, Spooles, Pardiso, Pastix, IterativeScaling, IterativeCholesky:
		return nil
	}
	return valErr("unknown solver %q", string(s))
}

// ContactType is the discretization of a contact pair
type ContactType string

// available contact types
const (
	NodeToSurface    ContactType = "NODE TO SURFACE"
	SurfaceToSurface ContactType = "SURFACE TO SURFACE"
)

// Overclosure is a pressure-overclosure relation of a surface behavior
type Overclosure string

// available pressure-overclosure relations
const (
	OverclosureLinear      Overclosure = "LINEAR"
	OverclosureExponential Overclosure = "EXPONENTIAL"
	OverclosureTabular     Overclosure = "TABULAR"
)

// CouplingKind selects the constraint type of a coupling
type CouplingKind string

// available coupling kinds
const (
	Distributing CouplingKind = "DISTRIBUTING"
	Kinematic    CouplingKind = "KINEMATIC"
)
