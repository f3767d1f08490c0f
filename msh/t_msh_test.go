// Copyright 2026 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	chk.Verbose = true
}

// twoHexMesh builds two stacked hex8 elements sharing the face with
// nodes 5,6,7,8
func twoHexMesh(tst *testing.T) *Mesh {
	m := NewMesh(3)
	coords := [][]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		{0, 0, 2}, {1, 0, 2}, {1, 1, 2}, {0, 1, 2},
	}
	for _, x := range coords {
		m.AddNode(x)
	}
	if _, err := m.AddElem(C3D8, []int{1, 2, 3, 4, 5, 6, 7, 8}); err != nil {
		tst.Fatalf("cannot add element:\n%v", err)
	}
	if _, err := m.AddElem(C3D8, []int{5, 6, 7, 8, 9, 10, 11, 12}); err != nil {
		tst.Fatalf("cannot add element:\n%v", err)
	}
	return m
}

func Test_reg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reg01. registry lookup and collision")

	m := twoHexMesh(tst)
	_, err := m.Reg.AddSet("FIX", NodeSet, 2, []int{1, 2, 3, 4})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	_, err = m.Reg.AddSet("FIX", NodeSet, 2, []int{5, 6})
	if err == nil {
		tst.Errorf("duplicate name should have failed\n")
		return
	}
	if _, ok := err.(*DuplicateNameError); !ok {
		tst.Errorf("error should be a DuplicateNameError, got %T\n", err)
		return
	}

	long := ""
	for i := 0; i < 81; i++ {
		long += "N"
	}
	_, err = m.Reg.AddSet(long, NodeSet, 2, []int{1})
	if err == nil {
		tst.Errorf("81 character set name should have failed\n")
		return
	}

	s, err := m.Reg.GetNodeSet("FIX")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Ints(tst, "FIX ids", s.SortedIDs(), []int{1, 2, 3, 4})

	_, err = m.Reg.GetSet("MISSING")
	if err == nil {
		tst.Errorf("missing name should have failed\n")
		return
	}
	if _, ok := err.(*NotFoundError); !ok {
		tst.Errorf("error should be a NotFoundError, got %T\n", err)
		return
	}

	// kind mismatch is a lookup miss as well
	_, err = m.Reg.GetElSet("FIX")
	if err == nil {
		tst.Errorf("node set via GetElSet should have failed\n")
		return
	}
}

func Test_surf01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surf01. exterior face derivation")

	m := twoHexMesh(tst)
	top, err := m.Reg.AddSet("TOP", NodeSet, 2, []int{9, 10, 11, 12})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	surf, err := m.AddSurfaceFromNodeSet("TOP_SURF", top, ElFaceSurf)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("faces = %v\n", surf.Faces)
	if len(surf.Faces) != 1 {
		tst.Errorf("expected 1 face, got %d\n", len(surf.Faces))
		return
	}
	chk.Ints(tst, "face", []int{surf.Faces[0].Eid, surf.Faces[0].Num}, []int{2, 2})
}

func Test_surf02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surf02. interior faces are excluded")

	m := twoHexMesh(tst)
	mid, err := m.Reg.AddSet("MID", NodeSet, 2, []int{5, 6, 7, 8})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	surf, err := m.AddSurfaceFromNodeSet("MID_SURF", mid, ElFaceSurf)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	// the face shared by both elements is interior
	if len(surf.Faces) != 0 {
		tst.Errorf("expected no faces, got %v\n", surf.Faces)
		return
	}
}

func Test_surf03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surf03. partial face coverage is excluded, not truncated")

	m := twoHexMesh(tst)
	part, err := m.Reg.AddSet("PART", NodeSet, 2, []int{1, 2, 3})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	surf, err := m.AddSurfaceFromNodeSet("PART_SURF", part, ElFaceSurf)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if len(surf.Faces) != 0 {
		tst.Errorf("expected no faces, got %v\n", surf.Faces)
		return
	}
}

func Test_surf04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surf04. node surfaces pass the ids through")

	m := twoHexMesh(tst)
	top, err := m.Reg.AddSet("TOP", NodeSet, 2, []int{11, 9, 12, 10})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	surf, err := m.AddSurfaceFromNodeSet("TOP_NSURF", top, NodeSurf)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Ints(tst, "node ids", surf.Nodes, []int{9, 10, 11, 12})

	// surface names collide like set names do
	_, err = m.AddSurfaceFromNodeSet("TOP_NSURF", top, NodeSurf)
	if err == nil {
		tst.Errorf("duplicate surface name should have failed\n")
		return
	}
	if _, ok := err.(*DuplicateNameError); !ok {
		tst.Errorf("error should be a DuplicateNameError, got %T\n", err)
		return
	}
}

func Test_surf05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surf05. derivation from an element set fails")

	m := twoHexMesh(tst)
	eset, err := m.Reg.AddSet("ELS", ElemSet, 3, []int{1, 2})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	_, err = m.AddSurfaceFromNodeSet("BAD", eset, ElFaceSurf)
	if err == nil {
		tst.Errorf("element set should have failed\n")
		return
	}
}

func Test_elem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elem01. face topology")

	m := twoHexMesh(tst)
	e := m.Elems[1]
	chk.IntAssert(e.Nfaces(), 6)
	chk.Ints(tst, "face 1", e.FaceCorners(1), []int{1, 2, 3, 4})
	chk.Ints(tst, "face 2", e.FaceCorners(2), []int{5, 8, 7, 6})
	chk.Ints(tst, "face 3", e.FaceCorners(3), []int{1, 5, 6, 2})
	chk.Ints(tst, "corners", e.CornerVerts(), []int{1, 2, 3, 4, 5, 6, 7, 8})

	_, err := m.AddElem("C3D99", []int{1, 2, 3})
	if err == nil {
		tst.Errorf("unknown element type should have failed\n")
		return
	}
}
