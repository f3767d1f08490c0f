// Copyright 2026 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_matdb01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matdb01. material database")

	mdb, err := ReadMat("data", "materials.mat")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(len(mdb.Materials), 2)

	steel, err := mdb.Get("STEEL")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "E", 1e-15, steel.E, 210000)
	chk.Float64(tst, "nu", 1e-15, steel.Nu, 0.3)

	kws, err := steel.Keywords()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	deck := ""
	for _, k := range kws {
		deck += k.Deck()
	}
	io.Pf("%v", deck)
	chk.String(tst, deck,
		"*MATERIAL,NAME=STEEL\n"+
			"*ELASTIC\n210000,0.3\n"+
			"*DENSITY\n7.85e-09\n")

	// aluminium has no density card
	alu, err := mdb.Get("ALU")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	kws, err = alu.Keywords()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(len(kws), 2)

	_, err = mdb.Get("UNOBTANIUM")
	if err == nil {
		tst.Errorf("missing material should have failed\n")
		return
	}
}

func Test_matdb02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matdb02. missing library file")

	// a missing file must come back as an error, not a panic
	_, err := ReadMat("data", "nosuchfile.mat")
	if err == nil {
		tst.Errorf("reading a missing file should have failed\n")
		return
	}
	io.Pforan("err = %v\n", err)
}
