// Copyright 2026 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// EType is the solver name of an element type
type EType string

// available element types
const (
	C3D4   EType = "C3D4"   // 4-node tetrahedron
	C3D10  EType = "C3D10"  // 10-node tetrahedron
	C3D6   EType = "C3D6"   // 6-node wedge
	C3D15  EType = "C3D15"  // 15-node wedge
	C3D8   EType = "C3D8"   // 8-node hexahedron
	C3D8I  EType = "C3D8I"  // 8-node hexahedron, incompatible modes
	C3D20  EType = "C3D20"  // 20-node hexahedron
	C3D20R EType = "C3D20R" // 20-node hexahedron, reduced integration
)

// etypeData holds per-type topology
type etypeData struct {
	dim      int     // dimension
	ncorner  int     // number of corner nodes
	facemaps [][]int // [nfaces][corner] 0-based local indices, ordered by solver face number
}

// face maps follow the solver's face numbering; indices are local and 0-based
var (
	tetFaces = [][]int{
		{0, 1, 2}, // face 1
		{0, 3, 1}, // face 2
		{1, 3, 2}, // face 3
		{2, 3, 0}, // face 4
	}
	wedFaces = [][]int{
		{0, 1, 2},
		{3, 4, 5},
		{0, 1, 4, 3},
		{1, 2, 5, 4},
		{2, 0, 3, 5},
	}
	hexFaces = [][]int{
		{0, 1, 2, 3},
		{4, 7, 6, 5},
		{0, 4, 5, 1},
		{1, 5, 6, 2},
		{2, 6, 7, 3},
		{3, 7, 4, 0},
	}
)

var etypes = map[EType]etypeData{
	C3D4:   {3, 4, tetFaces},
	C3D10:  {3, 4, tetFaces},
	C3D6:   {3, 6, wedFaces},
	C3D15:  {3, 6, wedFaces},
	C3D8:   {3, 8, hexFaces},
	C3D8I:  {3, 8, hexFaces},
	C3D20:  {3, 8, hexFaces},
	C3D20R: {3, 8, hexFaces},
}

// Element holds one mesh element: id, solver type name and connectivity
type Element struct {
	ID    int   // element id
	Type  EType // solver element type name
	Verts []int // node ids; corners first, then mid-side nodes
}

// Dim returns the dimension of this element
func (o *Element) Dim() int { return etypes[o.Type].dim }

// CornerVerts returns the corner node ids of this element
func (o *Element) CornerVerts() []int {
	return o.Verts[:etypes[o.Type].ncorner]
}

// Nfaces returns the number of faces of this element
func (o *Element) Nfaces() int { return len(etypes[o.Type].facemaps) }

// FaceCorners returns the corner node ids of face number num (1-based)
func (o *Element) FaceCorners(num int) []int {
	m := etypes[o.Type].facemaps[num-1]
	ids := make([]int, len(m))
	for i, l := range m {
		ids[i] = o.Verts[l]
	}
	return ids
}

// faceKey builds a canonical key for a face so that the same geometric
// face seen from two adjacent elements compares equal
func faceKey(corners []int) string {
	c := make([]int, len(corners))
	copy(c, corners)
	sort.Ints(c)
	key := ""
	for _, id := range c {
		key += io.Sf("%d,", id)
	}
	return key
}

// AddSurfaceFromNodeSet derives a surface from a node set and registers it.
//
// For ElFaceSurf kind the result is the minimal collection of exterior
// (element, face) pairs whose corner nodes are all contained in the node
// set. A face shared by two elements is interior and excluded, and a face
// only partially covered by the node set is excluded, not truncated.
// For NodeSurf kind the node ids are passed through unchanged.
func (o *Mesh) AddSurfaceFromNodeSet(name string, nset *Set, kind SurfKind) (*Surface, error) {
	if nset.Kind != NodeSet {
		return nil, chk.Err("surface %q must be derived from a node set, got an element set", name)
	}
	if len(name) > 80 {
		return nil, chk.Err("surface name can only contain up to 80 characters, got %d", len(name))
	}
	for id := range nset.IDs {
		if !o.HasNode(id) {
			return nil, chk.Err("surface %q: node set %q references unknown node %d", name, nset.Name, id)
		}
	}

	surf := &Surface{Name: name, Kind: kind}
	switch kind {

	case NodeSurf:
		surf.Nodes = nset.SortedIDs()

	case ElFaceSurf:
		// count how many elements share each face of the mesh
		shared := make(map[string]int)
		eids := make([]int, 0, len(o.Elems))
		for eid := range o.Elems {
			eids = append(eids, eid)
		}
		sort.Ints(eids)
		for _, eid := range eids {
			e := o.Elems[eid]
			for f := 1; f <= e.Nfaces(); f++ {
				shared[faceKey(e.FaceCorners(f))]++
			}
		}
		// keep exterior faces fully covered by the node set
		for _, eid := range eids {
			e := o.Elems[eid]
			for f := 1; f <= e.Nfaces(); f++ {
				corners := e.FaceCorners(f)
				if shared[faceKey(corners)] > 1 {
					continue // interior face
				}
				all := true
				for _, nid := range corners {
					if !nset.IDs[nid] {
						all = false
						break
					}
				}
				if all {
					surf.Faces = append(surf.Faces, Face{Eid: eid, Num: f})
				}
			}
		}

	default:
		return nil, chk.Err("unknown surface kind %d", kind)
	}

	if err := o.Reg.addSurf(surf); err != nil {
		return nil, err
	}
	return surf, nil
}
