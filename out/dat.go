// Copyright 2026 The Goccx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bufio"
	goio "io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// datEntities maps the quantity names appearing in tabular report headers
// to entities. Lookup is case-insensitive; singular forms are accepted
var datEntities = map[string]Entity{
	"displacements":                  U,
	"displacement":                   U,
	"forces":                         RF,
	"force":                          RF,
	"stresses":                       S,
	"stress":                         S,
	"strains":                        E,
	"strain":                         E,
	"mechanical strains":             ME,
	"equivalent plastic strain":      PEEQ,
	"volume":                         EVOL,
	"total volume":                   EVOL,
	"global coordinates":             COORD,
	"internal energy density":        ENER,
	"kinetic energy":                 ELKE,
	"internal energy":                ELSE,
	"contact spring energy":          CELS,
	"contact stress":                 CSTR,
	"contact stresses":               CSTR,
	"relative contact displacement":  CDIS,
	"relative contact displacements": CDIS,
}

// headerError marks a line that looked like a result header but does not
// follow the header grammar. Only this error class is recovered by
// skipping; anything else aborts the parse
type headerError struct {
	msg string
}

func (o *headerError) Error() string { return o.msg }

var parenRe = regexp.MustCompile(`\((.*?)\)`)

// datHeader holds the parsed pieces of one report header line
type datHeader struct {
	entity  Entity
	setName string
	time    float64
	comps   []string
}

// parseDatHeader parses one header line of the tabular report. The
// quantity name ends at the first parenthesis or the word "for"; the set
// name sits between the words "set" and "and" (or "at"); the step time is
// the last token; component names are the comma-separated tokens inside
// parentheses, concatenated over the whole line
func parseDatHeader(fields []string) (*datHeader, error) {
	if fields[0] == "total" {
		return nil, &headerError{"totals row"}
	}

	// step time: last token
	time, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return nil, &headerError{"header has no trailing time"}
	}

	// set name: between "set" and "and"/"at"
	iend := -1
	for i, f := range fields {
		if f == "and" || f == "at" {
			iend = i
			break
		}
	}
	if iend < 0 {
		return nil, &headerError{"header has no time marker"}
	}
	setName := ""
	for i, f := range fields {
		if f == "set" && i < iend {
			setName = strings.Join(fields[i+1:iend], " ")
			break
		}
	}

	// quantity name: up to the first parenthesis or "for"
	name := ""
	for i, f := range fields {
		if strings.HasPrefix(f, "(") || f == "for" {
			name = strings.Join(fields[:i], " ")
			break
		}
	}
	entity, ok := datEntities[strings.ToLower(name)]
	if !ok {
		return nil, &headerError{"unknown quantity " + strconv.Quote(name)}
	}

	// component names from all parenthesised groups
	groups := parenRe.FindAllStringSubmatch(strings.Join(fields, " "), -1)
	var comps []string
	for _, g := range groups {
		for _, c := range strings.Split(g[1], ",") {
			comps = append(comps, strings.TrimSpace(c))
		}
	}

	return &datHeader{entity: entity, setName: setName, time: time, comps: comps}, nil
}

// datBlock accumulates the data lines of one open result set
type datBlock struct {
	hdr  *datHeader
	loc  Location
	rows map[int][][]float64
}

// finalize freezes the accumulated rows into a ResultSet. Component count
// and value shape are recomputed from the data, never taken from the
// header
func (o *datBlock) finalize() *ResultSet {
	rs := &ResultSet{
		Entity:  o.hdr.entity,
		Time:    o.hdr.time,
		SetName: o.hdr.setName,
		Loc:     o.loc,
	}
	ncomp := 0
	if o.loc == IntPnt {
		rs.IpVals = make(map[int][][]float64, len(o.rows))
		for id, rows := range o.rows {
			rs.IpVals[id] = rows
			ncomp = len(rows[0])
		}
	} else {
		rs.Vals = make(map[int][]float64, len(o.rows))
		for id, rows := range o.rows {
			rs.Vals[id] = rows[0]
			ncomp = len(rows[0])
		}
	}
	rs.Ncomp = ncomp
	if len(o.hdr.comps) >= ncomp {
		rs.Components = o.hdr.comps[len(o.hdr.comps)-ncomp:]
	} else {
		rs.Components = o.hdr.comps
	}
	return rs
}

// addRow parses one numeric data line into the buffer
func (o *datBlock) addRow(fields []string) error {
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return chk.Err("cannot parse id from data line token %q", fields[0])
	}
	start := 1
	if o.loc == IntPnt {
		// second column is the integration point number
		if len(fields) < 3 {
			return chk.Err("integration point data line needs at least 3 tokens, got %d", len(fields))
		}
		start = 2
	}
	row := make([]float64, len(fields)-start)
	for i, f := range fields[start:] {
		row[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return chk.Err("cannot parse value from data line token %q", f)
		}
	}
	o.rows[id] = append(o.rows[id], row)
	return nil
}

// ReadDat reads a tabular report file
func ReadDat(path string) (*Results, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseDat(f)
}

// ParseDat parses a tabular report in a single streaming pass. A
// non-numeric leading token marks a header line; numeric lines accumulate
// into the open result set. Malformed headers and unknown quantities skip
// their block; they never abort the parse
func ParseDat(r goio.Reader) (*Results, error) {

	times := make(map[float64]bool)
	var sets []*ResultSet
	var open *datBlock

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if !isNumeric(fields[0]) {

			// finish the open result set
			if open != nil {
				if len(open.rows) > 0 {
					sets = append(sets, open.finalize())
				}
				open = nil
			}

			// try to open a new one
			hdr, err := parseDatHeader(fields)
			if err != nil {
				if _, ok := err.(*headerError); ok {
					continue // unrelated report text
				}
				return nil, err
			}
			times[hdr.time] = true
			open = &datBlock{hdr: hdr, loc: entityLoc[hdr.entity], rows: make(map[int][][]float64)}
			continue
		}

		if open == nil {
			continue
		}
		if err := open.addRow(fields); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// finish the last result set
	if open != nil && len(open.rows) > 0 {
		sets = append(sets, open.finalize())
	}
	return newResults(times, sets), nil
}

// isNumeric tells whether a token parses as a float
func isNumeric(tok string) bool {
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}
