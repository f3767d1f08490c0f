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

// Step owns an ordered sequence of step directives. The order of
// AddKeywords calls is the order of the rendered block. Loads accumulate
// across steps in the target solver, so a later step's load directive
// adds to earlier ones instead of replacing them
type Step struct {
	Nlgeom bool // geometrically nonlinear analysis
	Inc    int  // maximum number of increments; 0 means omitted
	kws    []Keyword
}

// NewStep returns a new step. Geometric nonlinearity is on by default
func NewStep() *Step { return &Step{Nlgeom: true} }

// AddKeywords appends directives to this step in the given order
func (o *Step) AddKeywords(kws ...Keyword) {
	o.kws = append(o.kws, kws...)
}

// Keywords returns the directives of this step in insertion order
func (o *Step) Keywords() []Keyword { return o.kws }

// Deck renders the complete step block
func (o *Step) Deck() string {
	s := "*STEP"
	if o.Nlgeom {
		s += ",NLGEOM"
	}
	if o.Inc > 0 {
		s += io.Sf(",INC=%d", o.Inc)
	}
	s += "\n"
	for _, k := range o.kws {
		s += k.Deck()
	}
	return s + "*END STEP\n"
}

// CheckRefs verifies all directives of this step against the mesh
func (o *Step) CheckRefs(m *msh.Mesh) error {
	for _, k := range o.kws {
		if rc, ok := k.(RefChecker); ok {
			if err := rc.CheckRefs(m); err != nil {
				return err
			}
		}
	}
	return nil
}

// Static defines a static analysis procedure
type Static struct {
	Solver    Solver
	Direct    bool // direct time stepping, no automatic incrementation
	TimeReset bool // total time at end of step matches end of previous step
	InitInc   float64
	Period    float64
	MinInc    float64 // NaN means omitted
	MaxInc    float64 // NaN means omitted
	StartTime float64 // total time at start of step; NaN means omitted
}

// NewStatic returns a static procedure with default incrementation.
// Pass NaN for minInc or maxInc to leave them to the target defaults
func NewStatic(solver Solver, direct bool, initInc, period, minInc, maxInc float64) (*Static, error) {
	if err := checkSolver(solver); err != nil {
		return nil, err
	}
	if initInc <= 0 {
		return nil, valErr("initial increment must be greater than 0, got %v", initInc)
	}
	if period <= 0 {
		return nil, valErr("time period must be greater than 0, got %v", period)
	}
	if !math.IsNaN(minInc) && minInc <= 0 {
		return nil, valErr("minimum increment must be greater than 0, got %v", minInc)
	}
	if !math.IsNaN(maxInc) && maxInc <= 0 {
		return nil, valErr("maximum increment must be greater than 0, got %v", maxInc)
	}
	return &Static{Solver: solver, InitInc: initInc, Period: period, Direct: direct,
		MinInc: minInc, MaxInc: maxInc, StartTime: math.NaN()}, nil
}

// NewStaticDefault returns a static procedure with all options at their
// target defaults
func NewStaticDefault() *Static {
	o, _ := NewStatic(DefaultSolver, false, 1, 1, math.NaN(), math.NaN())
	return o
}

// Deck renders this keyword. Omitted interior fields of the data line are
// written as consecutive commas; trailing blanks are trimmed
func (o *Static) Deck() string {
	s := "*STATIC"
	if o.Solver != DefaultSolver {
		s += ",SOLVER=" + string(o.Solver)
	}
	if o.Direct {
		s += ",DIRECT"
	}
	if o.TimeReset {
		s += ",TIME RESET"
	}
	if !math.IsNaN(o.StartTime) {
		s += ",TOTAL TIME AT START=" + ftos(o.StartTime)
	}
	s += "\n"
	l := ftos(o.InitInc) + "," + ftos(o.Period)
	if !math.IsNaN(o.MinInc) {
		l += "," + ftos(o.MinInc)
	} else {
		l += ","
	}
	if !math.IsNaN(o.MaxInc) {
		l += "," + ftos(o.MaxInc)
	} else {
		l += ","
	}
	return s + trimLine(l) + "\n"
}

// Buckle defines a linear buckling procedure
type Buckle struct {
	Nfactors int     // number of buckling factors to compute
	Accuracy float64 // NaN means omitted
}

// NewBuckle returns a buckling procedure. Pass NaN for accuracy to leave
// it to the target default
func NewBuckle(nfactors int, accuracy float64) (*Buckle, error) {
	if nfactors < 1 {
		return nil, valErr("number of buckling factors must be greater than 0, got %d", nfactors)
	}
	if !math.IsNaN(accuracy) && accuracy <= 0 {
		return nil, valErr("accuracy must be greater than 0, got %v", accuracy)
	}
	return &Buckle{Nfactors: nfactors, Accuracy: accuracy}, nil
}

// Deck renders this keyword
func (o *Buckle) Deck() string {
	l := itos(o.Nfactors)
	if !math.IsNaN(o.Accuracy) {
		l += "," + ftos(o.Accuracy)
	}
	return "*BUCKLE\n" + l + "\n"
}

// cloadRow is one data line of a concentrated load keyword
type cloadRow struct {
	target Target
	dof    int
	mag    float64
}

// Cload holds concentrated forces. Loads are accumulated with AddLoad and
// render one data line each, in call order
type Cload struct {
	Amplitude *Amplitude // optional amplitude reference
	loads     []cloadRow
}

// NewCload returns a concentrated load keyword with one first load
func NewCload(target Target, dof int, mag float64) (*Cload, error) {
	o := new(Cload)
	if err := o.AddLoad(target, dof, mag); err != nil {
		return nil, err
	}
	return o, nil
}

// AddLoad appends one load data line
func (o *Cload) AddLoad(target Target, dof int, mag float64) error {
	if dof < 1 {
		return valErr("dof must be greater than 0, got %d", dof)
	}
	o.loads = append(o.loads, cloadRow{target, dof, mag})
	return nil
}

// Deck renders this keyword
func (o *Cload) Deck() string {
	s := "*CLOAD"
	if o.Amplitude != nil {
		s += ",AMPLITUDE=" + o.Amplitude.Name
	}
	s += "\n"
	for _, l := range o.loads {
		s += l.target.DeckRef() + "," + itos(l.dof) + "," + ftos(l.mag) + "\n"
	}
	return s
}

// CheckRefs verifies the load targets against the mesh
func (o *Cload) CheckRefs(m *msh.Mesh) error {
	for _, l := range o.loads {
		if err := checkTarget(m, l.target); err != nil {
			return err
		}
	}
	return nil
}

// NodeResult is a nodal result request token
type NodeResult string

// nodal result request tokens
const (
	RequestU  NodeResult = "U"  // displacements
	RequestRF NodeResult = "RF" // reaction forces
	RequestNT NodeResult = "NT" // temperatures
)

// ElResult is an element result request token
type ElResult string

// element result request tokens
const (
	RequestS    ElResult = "S"    // stresses
	RequestE    ElResult = "E"    // strains
	RequestME   ElResult = "ME"   // mechanical strains
	RequestPEEQ ElResult = "PEEQ" // equivalent plastic strain
	RequestENER ElResult = "ENER" // internal energy density
	RequestEVOL ElResult = "EVOL" // element volumes
	RequestERR  ElResult = "ERR"  // error estimator
)

// ContactResult is a contact result request token
type ContactResult string

// contact result request tokens
const (
	RequestCDIS ContactResult = "CDIS" // relative contact displacements
	RequestCSTR ContactResult = "CSTR" // contact stresses
	RequestCELS ContactResult = "CELS" // contact spring energy
)

// NodeFile requests nodal results in the structured results file
type NodeFile struct {
	Entities []NodeResult
}

// NewNodeFile returns a new node file request
func NewNodeFile(entities ...NodeResult) (*NodeFile, error) {
	if len(entities) == 0 {
		return nil, valErr("at least one entity must be requested")
	}
	return &NodeFile{Entities: entities}, nil
}

// Deck renders this keyword
func (o *NodeFile) Deck() string {
	return "*NODE FILE\n" + joinTokens(len(o.Entities), func(i int) string { return string(o.Entities[i]) }) + "\n"
}

// ElFile requests element results in the structured results file
type ElFile struct {
	Entities []ElResult
}

// NewElFile returns a new element file request
func NewElFile(entities ...ElResult) (*ElFile, error) {
	if len(entities) == 0 {
		return nil, valErr("at least one entity must be requested")
	}
	return &ElFile{Entities: entities}, nil
}

// Deck renders this keyword
func (o *ElFile) Deck() string {
	return "*EL FILE\n" + joinTokens(len(o.Entities), func(i int) string { return string(o.Entities[i]) }) + "\n"
}

// ContactFile requests contact results in the structured results file
type ContactFile struct {
	Entities []ContactResult
}

// NewContactFile returns a new contact file request
func NewContactFile(entities ...ContactResult) (*ContactFile, error) {
	if len(entities) == 0 {
		return nil, valErr("at least one entity must be requested")
	}
	return &ContactFile{Entities: entities}, nil
}

// Deck renders this keyword
func (o *ContactFile) Deck() string {
	return "*CONTACT FILE\n" + joinTokens(len(o.Entities), func(i int) string { return string(o.Entities[i]) }) + "\n"
}

// NodePrint requests nodal results in the tabular report for a node set
type NodePrint struct {
	Nset      *msh.Set
	Entities  []NodeResult
	Frequency int  // print every n-th increment; 0 means omitted
	Totals    bool // append a totals row
}

// NewNodePrint returns a new node print request. The set must be a node set
func NewNodePrint(nset *msh.Set, entities ...NodeResult) (*NodePrint, error) {
	if nset.Kind != msh.NodeSet {
		return nil, valErr("kind of nset must be NODE, got %v", nset.Kind)
	}
	if len(entities) == 0 {
		return nil, valErr("at least one entity must be requested")
	}
	return &NodePrint{Nset: nset, Entities: entities}, nil
}

// Deck renders this keyword
func (o *NodePrint) Deck() string {
	s := io.Sf("*NODE PRINT,NSET=%s", o.Nset.Name)
	if o.Frequency > 0 {
		s += io.Sf(",FREQUENCY=%d", o.Frequency)
	}
	if o.Totals {
		s += ",TOTALS=YES"
	}
	return s + "\n" + joinTokens(len(o.Entities), func(i int) string { return string(o.Entities[i]) }) + "\n"
}

// CheckRefs verifies the node set against the mesh
func (o *NodePrint) CheckRefs(m *msh.Mesh) error {
	return checkTarget(m, o.Nset)
}

// ElPrint requests element results in the tabular report for an element set
type ElPrint struct {
	Elset     *msh.Set
	Entities  []ElResult
	Frequency int // print every n-th increment; 0 means omitted
}

// NewElPrint returns a new element print request. The set must be an
// element set
func NewElPrint(elset *msh.Set, entities ...ElResult) (*ElPrint, error) {
	if elset.Kind != msh.ElemSet {
		return nil, valErr("kind of elset must be ELEMENT, got %v", elset.Kind)
	}
	if len(entities) == 0 {
		return nil, valErr("at least one entity must be requested")
	}
	return &ElPrint{Elset: elset, Entities: entities}, nil
}

// Deck renders this keyword
func (o *ElPrint) Deck() string {
	s := io.Sf("*EL PRINT,ELSET=%s", o.Elset.Name)
	if o.Frequency > 0 {
		s += io.Sf(",FREQUENCY=%d", o.Frequency)
	}
	return s + "\n" + joinTokens(len(o.Entities), func(i int) string { return string(o.Entities[i]) }) + "\n"
}

// CheckRefs verifies the element set against the mesh
func (o *ElPrint) CheckRefs(m *msh.Mesh) error {
	return checkTarget(m, o.Elset)
}

// ContactPrint requests contact results in the tabular report
type ContactPrint struct {
	Entities []ContactResult
}

// NewContactPrint returns a new contact print request
func NewContactPrint(entities ...ContactResult) (*ContactPrint, error) {
	if len(entities) == 0 {
		return nil, valErr("at least one entity must be requested")
	}
	return &ContactPrint{Entities: entities}, nil
}

// Deck renders this keyword
func (o *ContactPrint) Deck() string {
	return "*CONTACT PRINT\n" + joinTokens(len(o.Entities), func(i int) string { return string(o.Entities[i]) }) + "\n"
}

// joinTokens joins n tokens with commas
func joinTokens(n int, tok func(int) string) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = tok(i)
	}
	return strings.Join(parts, ",")
}
