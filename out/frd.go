// Copyright 2026 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bufio"
	goio "io"
	"os"
	"strconv"
	"strings"
)

// frdEntities maps the block names of the structured results file to
// entities. Unknown names skip their block
var frdEntities = map[string]Entity{
	"DISP":     Disp,
	"STRESS":   Stress,
	"FORC":     Forc,
	"CONTACT":  Contact,
	"ERROR":    ErrEst,
	"NDTEMP":   NdTemp,
	"TOSTRAIN": ToStrain,
}

// frdBlock accumulates the value lines of one open result block
type frdBlock struct {
	entity Entity
	time   float64
	comps  []string
	rows   map[int][]float64
	lastID int // target of continuation lines
}

// finalize freezes the accumulated rows into a ResultSet. The component
// count is recomputed from the data because computed components announced
// in the block header (e.g. ALL) are not stored in the value lines
func (o *frdBlock) finalize() *ResultSet {
	rs := &ResultSet{
		Entity: o.entity,
		Time:   o.time,
		Loc:    Nodal,
		Vals:   o.rows,
	}
	for _, row := range o.rows {
		rs.Ncomp = len(row)
		break
	}
	if len(o.comps) >= rs.Ncomp {
		rs.Components = o.comps[:rs.Ncomp]
	} else {
		rs.Components = o.comps
	}
	return rs
}

// ReadFrd reads a structured results file
func ReadFrd(path string) (*Results, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseFrd(f)
}

// ParseFrd parses the structured ASCII results format. Step blocks start
// with a 100C record carrying the step time, followed by one -4 record
// per result quantity, -5 records naming the components, and fixed-field
// -1 value lines (10 character id, 12 character values) with optional -2
// continuation lines. The produced collection has the same shape as the
// tabular reader's, so the query layer is format-agnostic
func ParseFrd(r goio.Reader) (*Results, error) {

	times := make(map[float64]bool)
	var sets []*ResultSet
	var open *frdBlock
	stepTime := 0.0

	finish := func() {
		if open != nil && len(open.rows) > 0 {
			sets = append(sets, open.finalize())
		}
		open = nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		raw := scanner.Text()
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}

		switch {

		case strings.HasPrefix(fields[0], "100C"):
			// step record; the time is the first float token
			finish()
			for _, f := range fields[1:] {
				if t, err := strconv.ParseFloat(f, 64); err == nil && strings.ContainsAny(f, ".Ee") {
					stepTime = t
					break
				}
			}

		case fields[0] == "-4":
			finish()
			if len(fields) < 2 {
				continue
			}
			entity, ok := frdEntities[fields[1]]
			if !ok {
				continue // unknown block; value lines are ignored
			}
			times[stepTime] = true
			open = &frdBlock{entity: entity, time: stepTime, rows: make(map[int][]float64)}

		case fields[0] == "-5":
			if open != nil && len(fields) > 1 {
				open.comps = append(open.comps, fields[1])
			}

		case fields[0] == "-1" || strings.HasPrefix(raw, " -1"):
			if open == nil {
				continue
			}
			id, vals, err := parseFrdValues(raw)
			if err != nil {
				continue // geometry blocks share the -1 marker
			}
			open.rows[id] = vals
			open.lastID = id

		case fields[0] == "-2" || strings.HasPrefix(raw, " -2"):
			if open == nil || open.lastID == 0 {
				// continuation without a preceding value line
				continue
			}
			vals, err := parseFrdChunks(raw, 3)
			if err != nil {
				continue
			}
			open.rows[open.lastID] = append(open.rows[open.lastID], vals...)

		case fields[0] == "-3":
			finish()

		case fields[0] == "9999":
			finish()
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	finish()
	return newResults(times, sets), nil
}

// parseFrdValues splits one fixed-field value line: 3 characters of line
// marker, 10 characters of node id, then 12 character value fields which
// may touch without separating blanks
func parseFrdValues(raw string) (id int, vals []float64, err error) {
	if len(raw) < 13 {
		return 0, nil, strconv.ErrSyntax
	}
	id, err = strconv.Atoi(strings.TrimSpace(raw[3:13]))
	if err != nil {
		return 0, nil, err
	}
	vals, err = parseFrdChunks(raw, 13)
	if err != nil {
		return 0, nil, err
	}
	return id, vals, nil
}

// parseFrdChunks reads consecutive 12 character value fields starting at
// the given offset. Continuation lines carry no id, so their values start
// right after the 3 character line marker
func parseFrdChunks(raw string, start int) (vals []float64, err error) {
	for pos := start; pos+12 <= len(raw); pos += 12 {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw[pos:pos+12]), 64)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	if len(vals) == 0 {
		return nil, strconv.ErrSyntax
	}
	return vals, nil
}
