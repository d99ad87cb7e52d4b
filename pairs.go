/*
 * pairs.go, part of pairdist.
 *
 * Copyright 2026 The pairdist authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package pairdist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultPairFile is the pair file used when none is given.
const DefaultPairFile = "atom_pairs.txt"

// Pair is an ordered pair of atom IDs.
type Pair [2]int

// Name returns the name of the pair as used in column headers, i.e. "12_40".
func (P Pair) Name() string {
	return strconv.Itoa(P[0]) + "_" + strconv.Itoa(P[1])
}

// Pairs is an ordered set of pairs.
type Pairs []Pair

// IDs returns the set of all atom IDs referred to by any of the pairs.
func (P Pairs) IDs() map[int]bool {
	ids := make(map[int]bool, 2*len(P))
	for _, p := range P {
		ids[p[0]] = true
		ids[p[1]] = true
	}
	return ids
}

// Names returns the names of the pairs, in order.
func (P Pairs) Names() []string {
	ret := make([]string, len(P))
	for i, p := range P {
		ret[i] = p.Name()
	}
	return ret
}

// PairReport collects the pairs read from one or more pair files,
// without duplicates and in the order they were first found, plus
// the lines that had to be skipped.
type PairReport struct {
	Pairs    Pairs
	Warnings []MalformedPairLine
	seen     map[Pair]bool
}

func (R *PairReport) add(p Pair) {
	if R.seen == nil {
		R.seen = make(map[Pair]bool)
	}
	if R.seen[p] {
		return
	}
	R.seen[p] = true
	R.Pairs = append(R.Pairs, p)
}

// LoadPairs reads the pairs in each of the given files, in order.
// Malformed lines don't stop the reading, they are reported in the
// Warnings field of the returned report. A file that can't be opened or
// read gives an error.
func LoadPairs(sources []string) (*PairReport, error) {
	report := new(PairReport)
	for _, name := range sources {
		f, err := os.Open(name)
		if err != nil {
			return nil, &IOError{Op: "open", Path: name, Err: err, deco: []string{"LoadPairs"}}
		}
		err = ReadPairs(f, name, report)
		f.Close()
		if err != nil {
			return nil, errDecorate(err, "LoadPairs")
		}
	}
	return report, nil
}

// ReadPairs reads pairs from r, one per line in the form "id0,id1", and
// adds them to report. name is used only for the warnings and errors.
// Blank lines are ignored.
func ReadPairs(r io.Reader, name string, report *PairReport) error {
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}
		p, reason := parsePair(text)
		if reason != "" {
			report.Warnings = append(report.Warnings, MalformedPairLine{File: name, Line: line, Text: text, Reason: reason})
			continue
		}
		report.add(p)
	}
	if err := s.Err(); err != nil {
		return &IOError{Op: "read", Path: name, Err: err, deco: []string{"ReadPairs"}}
	}
	return nil
}

// parsePair returns the pair in the line, or, if the line is malformed,
// the reason why.
func parsePair(text string) (Pair, string) {
	var p Pair
	fields := strings.Split(text, ",")
	if len(fields) != 2 {
		return p, fmt.Sprintf("expected 2 comma-separated fields, found %d", len(fields))
	}
	for i, v := range fields {
		id, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return p, fmt.Sprintf("%q is not an integer", strings.TrimSpace(v))
		}
		if id <= 0 {
			return p, fmt.Sprintf("atom IDs must be positive, found %d", id)
		}
		p[i] = id
	}
	return p, ""
}
