// Copyright 2026 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input deck assembler: it orders keywords
// and steps into the complete solver input text
package inp

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"

	"github.com/goccx/goccx/kwd"
	"github.com/goccx/goccx/msh"
)

// FormatError indicates that the deck references an undefined name and
// therefore cannot be rendered
type FormatError struct {
	Msg string
}

// Error returns the message of this error
func (o *FormatError) Error() string { return o.Msg }

// Deck assembles mesh, model keywords and steps into the solver input
// text. Keywords and steps are rendered in insertion order
type Deck struct {
	Heading string
	Msh     *msh.Mesh
	kws     []kwd.Keyword
	steps   []*kwd.Step
}

// NewDeck returns a new deck for the given mesh
func NewDeck(heading string, m *msh.Mesh) *Deck {
	return &Deck{Heading: heading, Msh: m}
}

// AddKeywords appends model keywords in the given order
func (o *Deck) AddKeywords(kws ...kwd.Keyword) {
	o.kws = append(o.kws, kws...)
}

// AddSteps appends steps in the given order
func (o *Deck) AddSteps(steps ...*kwd.Step) {
	o.steps = append(o.steps, steps...)
}

// Render returns the complete deck text. It fails with FormatError if
// any keyword references a set, surface or node that is not part of the
// mesh; in that case no partial output is produced
func (o *Deck) Render() (string, error) {

	// fail fast on undefined references
	for _, k := range o.kws {
		if rc, ok := k.(kwd.RefChecker); ok {
			if err := rc.CheckRefs(o.Msh); err != nil {
				return "", &FormatError{io.Sf("cannot render deck: %v", err)}
			}
		}
	}
	for _, s := range o.steps {
		if err := s.CheckRefs(o.Msh); err != nil {
			return "", &FormatError{io.Sf("cannot render deck: %v", err)}
		}
	}

	var b strings.Builder
	if o.Heading != "" {
		b.WriteString("*HEADING\n" + o.Heading + "\n")
	}

	// mesh
	o.renderNodes(&b)
	o.renderElems(&b)
	o.renderSets(&b)
	o.renderSurfs(&b)

	// model keywords
	for _, k := range o.kws {
		b.WriteString(k.Deck())
	}

	// steps
	for _, s := range o.steps {
		b.WriteString(s.Deck())
	}
	return b.String(), nil
}

// WriteFile renders the deck and writes it to the given path
func (o *Deck) WriteFile(path string) error {
	s, err := o.Render()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(s), 0644)
}

// renderNodes writes the *NODE block with ids in ascending order
func (o *Deck) renderNodes(b *strings.Builder) {
	if len(o.Msh.Nodes) == 0 {
		return
	}
	ids := make([]int, 0, len(o.Msh.Nodes))
	for id := range o.Msh.Nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	b.WriteString("*NODE,NSET=NALL\n")
	for _, id := range ids {
		l := strconv.Itoa(id)
		for _, x := range o.Msh.Nodes[id] {
			l += "," + strconv.FormatFloat(x, 'g', -1, 64)
		}
		b.WriteString(l + "\n")
	}
}

// renderElems writes one *ELEMENT block per element type, ids ascending
func (o *Deck) renderElems(b *strings.Builder) {
	byType := make(map[msh.EType][]int)
	for id, e := range o.Msh.Elems {
		byType[e.Type] = append(byType[e.Type], id)
	}
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		ids := byType[msh.EType(t)]
		sort.Ints(ids)
		b.WriteString(io.Sf("*ELEMENT,TYPE=%s,ELSET=EALL\n", t))
		for _, id := range ids {
			l := strconv.Itoa(id)
			for _, v := range o.Msh.Elems[id].Verts {
				l += "," + strconv.Itoa(v)
			}
			b.WriteString(l + "\n")
		}
	}
}

// renderSets writes *NSET and *ELSET blocks in registry insertion order
func (o *Deck) renderSets(b *strings.Builder) {
	for _, name := range o.Msh.Reg.SetNames() {
		s, _ := o.Msh.Reg.GetSet(name)
		if s.Kind == msh.NodeSet {
			b.WriteString(io.Sf("*NSET,NSET=%s\n", name))
		} else {
			b.WriteString(io.Sf("*ELSET,ELSET=%s\n", name))
		}
		writeIDLines(b, s.SortedIDs())
	}
}

// renderSurfs writes *SURFACE blocks in registry insertion order
func (o *Deck) renderSurfs(b *strings.Builder) {
	for _, name := range o.Msh.Reg.SurfNames() {
		s, _ := o.Msh.Reg.GetSurf(name)
		if s.Kind == msh.ElFaceSurf {
			b.WriteString(io.Sf("*SURFACE,NAME=%s,TYPE=ELEMENT\n", name))
			for _, f := range s.Faces {
				b.WriteString(io.Sf("%d,S%d\n", f.Eid, f.Num))
			}
		} else {
			b.WriteString(io.Sf("*SURFACE,NAME=%s,TYPE=NODE\n", name))
			writeIDLines(b, s.Nodes)
		}
	}
}

// writeIDLines writes ids in data lines of up to eight entries
func writeIDLines(b *strings.Builder, ids []int) {
	for i := 0; i < len(ids); i += 8 {
		end := i + 8
		if end > len(ids) {
			end = len(ids)
		}
		parts := make([]string, end-i)
		for j := i; j < end; j++ {
			parts[j-i] = strconv.Itoa(ids[j])
		}
		b.WriteString(strings.Join(parts, ",") + "\n")
	}
}
