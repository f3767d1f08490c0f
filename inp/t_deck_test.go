// Copyright 2026 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/goccx/goccx/kwd"
	"github.com/goccx/goccx/msh"
)

func verbose() {
	chk.Verbose = true
}

// beamMesh builds one hex8 element with a fixed face and a loaded face
func beamMesh(tst *testing.T) (*msh.Mesh, *msh.Set, *msh.Set, *msh.Surface) {
	m := msh.NewMesh(3)
	coords := [][]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	for _, x := range coords {
		m.AddNode(x)
	}
	if _, err := m.AddElem(msh.C3D8, []int{1, 2, 3, 4, 5, 6, 7, 8}); err != nil {
		tst.Fatalf("cannot add element:\n%v", err)
	}
	fix, err := m.Reg.AddSet("FIX", msh.NodeSet, 2, []int{1, 2, 3, 4})
	if err != nil {
		tst.Fatalf("cannot add set:\n%v", err)
	}
	load, err := m.Reg.AddSet("LOAD", msh.NodeSet, 2, []int{5, 6, 7, 8})
	if err != nil {
		tst.Fatalf("cannot add set:\n%v", err)
	}
	if _, err := m.Reg.AddSet("BEAM", msh.ElemSet, 3, []int{1}); err != nil {
		tst.Fatalf("cannot add set:\n%v", err)
	}
	surf, err := m.AddSurfaceFromNodeSet("LOAD_SURF", load, msh.ElFaceSurf)
	if err != nil {
		tst.Fatalf("cannot derive surface:\n%v", err)
	}
	return m, fix, load, surf
}

func Test_deck01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deck01. complete deck in order")

	m, fix, _, _ := beamMesh(tst)
	beam, err := m.Reg.GetElSet("BEAM")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	bnd, err := kwd.NewBoundary(fix, 1, 3)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	mat, err := kwd.NewMaterial("STEEL")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	ela, err := kwd.NewElastic(210000, 0.3)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	sec, err := kwd.NewSolidSection(beam, mat)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	stp := kwd.NewStep()
	cl, err := kwd.NewCload(kwd.Nid(5), 1, -20000)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	nf, err := kwd.NewNodeFile(kwd.RequestU)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	stp.AddKeywords(kwd.NewStaticDefault(), cl, nf)

	dck := NewDeck("Simple beam", m)
	dck.AddKeywords(bnd, mat, ela, sec)
	dck.AddSteps(stp)

	res, err := dck.Render()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pf("%v", res)
	chk.String(tst, res,
		"*HEADING\n"+
			"Simple beam\n"+
			"*NODE,NSET=NALL\n"+
			"1,0,0,0\n"+
			"2,1,0,0\n"+
			"3,1,1,0\n"+
			"4,0,1,0\n"+
			"5,0,0,1\n"+
			"6,1,0,1\n"+
			"7,1,1,1\n"+
			"8,0,1,1\n"+
			"*ELEMENT,TYPE=C3D8,ELSET=EALL\n"+
			"1,1,2,3,4,5,6,7,8\n"+
			"*NSET,NSET=FIX\n"+
			"1,2,3,4\n"+
			"*NSET,NSET=LOAD\n"+
			"5,6,7,8\n"+
			"*ELSET,ELSET=BEAM\n"+
			"1\n"+
			"*SURFACE,NAME=LOAD_SURF,TYPE=ELEMENT\n"+
			"1,S2\n"+
			"*BOUNDARY\n"+
			"FIX,1,3\n"+
			"*MATERIAL,NAME=STEEL\n"+
			"*ELASTIC\n"+
			"210000,0.3\n"+
			"*SOLID SECTION,MATERIAL=STEEL,ELSET=BEAM\n"+
			"*STEP,NLGEOM\n"+
			"*STATIC\n"+
			"1,1\n"+
			"*CLOAD\n"+
			"5,1,-20000\n"+
			"*NODE FILE\n"+
			"U\n"+
			"*END STEP\n")

	// rendering twice gives the same text
	res2, err := dck.Render()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.String(tst, res2, res)
}

func Test_deck02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deck02. undefined references fail fast")

	m, _, _, _ := beamMesh(tst)

	// a set that was never registered
	ghost := &msh.Set{Name: "GHOST", Kind: msh.NodeSet}
	bnd, err := kwd.NewBoundary(ghost, 1, 3)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	dck := NewDeck("", m)
	dck.AddKeywords(bnd)
	_, err = dck.Render()
	if err == nil {
		tst.Errorf("render with unregistered set should have failed\n")
		return
	}
	if _, ok := err.(*FormatError); !ok {
		tst.Errorf("error should be a FormatError, got %T\n", err)
		return
	}

	// a node that is not in the mesh, referenced inside a step
	dck = NewDeck("", m)
	cl, err := kwd.NewCload(kwd.Nid(99), 1, -1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	stp := kwd.NewStep()
	stp.AddKeywords(cl)
	dck.AddSteps(stp)
	_, err = dck.Render()
	if err == nil {
		tst.Errorf("render with unknown node should have failed\n")
		return
	}
	if _, ok := err.(*FormatError); !ok {
		tst.Errorf("error should be a FormatError, got %T\n", err)
		return
	}
}

func Test_deck03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deck03. coupling and contact over derived surfaces")

	m, _, _, surf := beamMesh(tst)
	pilot := kwd.Nid(m.AddNode([]float64{0.5, 0.5, 1}))

	coup, err := kwd.NewCoupling(kwd.Distributing, pilot, surf, "COUP_LOAD", 1, 3)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.String(tst, coup.Deck(),
		"*COUPLING,REF NODE=9,SURFACE=LOAD_SURF,CONSTRAINT NAME=COUP_LOAD\n"+
			"*DISTRIBUTING\n"+
			"1,3\n")

	dck := NewDeck("", m)
	dck.AddKeywords(coup)
	if _, err := dck.Render(); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// couplings need an element face based surface
	nsurf := &msh.Surface{Name: "NS", Kind: msh.NodeSurf}
	_, err = kwd.NewCoupling(kwd.Distributing, pilot, nsurf, "C2", 1, 3)
	if err == nil {
		tst.Errorf("node surface should have failed\n")
		return
	}
	if _, ok := err.(*kwd.ValidationError); !ok {
		tst.Errorf("error should be a ValidationError, got %T\n", err)
		return
	}
}
