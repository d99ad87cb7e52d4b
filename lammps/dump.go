/*
 * dump.go, part of pairdist.
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

package lammps

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/rmera/pairdist"
)

const (
	itemPrefix  = "ITEM:"
	itemStep    = "TIMESTEP"
	itemNatoms  = "NUMBER OF ATOMS"
	itemBox     = "BOX BOUNDS"
	itemAtoms   = "ATOMS"
	boxLines    = 3
	coordFields = 3
)

// Option modifies the way a dump file is read.
type Option func(*Dump)

// IDColumn sets the (0-based) column of the atom rows that contains the
// atom ID. The default is 0.
func IDColumn(col int) Option {
	return func(D *Dump) {
		if col >= 0 {
			D.idcol = col
		}
	}
}

// Logger makes the reader report each timestep it reads to l.
func Logger(l *log.Logger) Option {
	return func(D *Dump) {
		D.logger = l
	}
}

// Dump is a LAMMPS dump file open for reading.
type Dump struct {
	f        *os.File //nil if the reader was not opened from a file
	dec      io.ReadCloser
	r        *bufio.Reader
	filename string
	ids      map[int]bool
	idcol    int
	line     int //last line read
	natoms   int //atoms declared in the last timestep read
	frames   int
	readable bool
	logger   *log.Logger
}

// New opens the LAMMPS dump file name for reading. Only atoms with IDs
// in ids will be kept from each frame. The file is decompressed on the fly
// if its name ends in .gz, .zst, .zstd or .bz2.
func New(name string, ids map[int]bool, opts ...Option) (*Dump, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &pairdist.IOError{Op: "open", Path: name, Err: err}
	}
	dec, err := pairdist.NewDecompressor(name, bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, &Error{fmt.Sprintf("%s: %v", UnableToOpen, err), name, 0, []string{"New"}, true}
	}
	D := NewReader(dec, name, ids, opts...)
	D.f = f
	D.dec = dec
	return D, nil
}

// NewReader returns a Dump reading from r, which should not be
// compressed. name is used only to report errors. Close does not
// close r.
func NewReader(r io.Reader, name string, ids map[int]bool, opts ...Option) *Dump {
	D := new(Dump)
	D.r = bufio.NewReader(r)
	D.filename = name
	D.ids = ids
	for _, o := range opts {
		o(D)
	}
	D.readable = true
	return D
}

// Readable returns true if the handle is readable (if it is possible to call Next on it)
func (D *Dump) Readable() bool {
	return D.readable
}

// FileName returns the name of the dump file.
func (D *Dump) FileName() string {
	return D.filename
}

// Len returns the number of atoms declared in the last timestep read, or
// 0 if no timestep has been read.
func (D *Dump) Len() int {
	return D.natoms
}

// Frames returns the number of timesteps read so far.
func (D *Dump) Frames() int {
	return D.frames
}

// Close closes the file, and marks the object as unreadable. It can be called
// more than once.
func (D *Dump) Close() {
	if D.dec != nil {
		D.dec.Close()
		D.dec = nil
	}
	if D.f != nil {
		D.f.Close()
		D.f = nil
	}
	D.readable = false
}

// Next reads the next timestep of the dump file into F, which is reset
// first. Only the atoms with IDs in the set given to the constructor are put
// in F. If F is nil, the timestep is read and checked, but discarded.
// When there are no more timesteps, Next closes the file and returns an error
// implementing pairdist.LastFrameError. Any other error means the file is
// corrupted, truncated or unreadable.
func (D *Dump) Next(F *pairdist.Frame) error {
	if !D.readable {
		return &Error{TrajUnIniRead, D.filename, 0, []string{"Next"}, true}
	}
	found, err := D.scan()
	if err != nil {
		return err
	}
	if !found {
		D.Close()
		return newlastFrameError(D.filename, "Next")
	}
	step, natoms, err := D.header()
	if err != nil {
		return err
	}
	D.natoms = natoms
	if F != nil {
		F.Reset(step)
	}
	kept, err := D.atoms(F, natoms)
	if err != nil {
		return err
	}
	D.frames++
	if D.logger != nil {
		D.logger.Printf("%s: timestep %d (%d atoms, %d kept)", D.filename, step, natoms, kept)
	}
	return nil
}

// scan skips lines until the start of a timestep block. It returns false
// if the file ends first. After a block, the next non-blank line must be
// an item, otherwise the block had more rows than it declared.
func (D *Dump) scan() (bool, error) {
	afterBlock := D.frames > 0
	for {
		l, err := D.readLine()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		item, ok := itemName(l)
		if !ok {
			if afterBlock && strings.TrimSpace(l) != "" {
				return false, D.lineError(fmt.Sprintf("%s: more rows than the %d declared", WrongAtomCount, D.natoms), "scan")
			}
			continue
		}
		afterBlock = false
		if item == itemStep {
			return true, nil
		}
	}
}

// header reads the part of a block between the TIMESTEP item and
// the first atom row. It returns the timestep and the number of atoms.
func (D *Dump) header() (int, int, error) {
	l, err := D.mustReadLine("the timestep value")
	if err != nil {
		return 0, 0, err
	}
	step, err := strconv.Atoi(strings.TrimSpace(l))
	if err != nil {
		return 0, 0, D.lineError(fmt.Sprintf("%s: can't read timestep from %q", WrongFormat, strings.TrimSpace(l)), "header")
	}
	natoms := -1
	for {
		l, err := D.mustReadLine(fmt.Sprintf("the atoms of timestep %d", step))
		if err != nil {
			return 0, 0, err
		}
		item, ok := itemName(l)
		if !ok {
			continue //contents of an item we don't care about
		}
		switch {
		case item == itemStep:
			return 0, 0, D.lineError(fmt.Sprintf("%s an ATOMS section (timestep %d)", MissingHeader, step), "header")
		case item == itemNatoms:
			l, err := D.mustReadLine(fmt.Sprintf("the number of atoms of timestep %d", step))
			if err != nil {
				return 0, 0, err
			}
			natoms, err = strconv.Atoi(strings.TrimSpace(l))
			if err != nil || natoms < 0 {
				return 0, 0, D.lineError(fmt.Sprintf("%s: can't read number of atoms from %q", WrongFormat, strings.TrimSpace(l)), "header")
			}
		case strings.HasPrefix(item, itemBox):
			for i := 0; i < boxLines; i++ {
				if _, err := D.mustReadLine(fmt.Sprintf("the box of timestep %d", step)); err != nil {
					return 0, 0, err
				}
			}
		case item == itemAtoms || strings.HasPrefix(item, itemAtoms+" "):
			if natoms < 0 {
				return 0, 0, D.lineError(fmt.Sprintf("%s a NUMBER OF ATOMS section before its ATOMS section (timestep %d)", MissingHeader, step), "header")
			}
			return step, natoms, nil
		}
	}
}

// atoms reads exactly natoms rows, putting those of the atoms of interest
// in F, if F is not nil. It returns how many atoms were kept.
func (D *Dump) atoms(F *pairdist.Frame, natoms int) (int, error) {
	kept := 0
	coords := make([]float64, coordFields)
	for i := 0; i < natoms; i++ {
		l, err := D.readLine()
		if err == io.EOF {
			return kept, D.lineError(fmt.Sprintf("%s: %s (%d of %d rows read)", Truncated, WrongAtomCount, i, natoms), "atoms")
		}
		if err != nil {
			return kept, err
		}
		fields := strings.Fields(l)
		if len(fields) > 0 && fields[0] == itemPrefix {
			return kept, D.lineError(fmt.Sprintf("%s: %d rows declared, found %d", WrongAtomCount, natoms, i), "atoms")
		}
		if len(fields) < D.idcol+1 || len(fields) < coordFields+1 {
			return kept, D.lineError(fmt.Sprintf("%s: too few fields in atom row %q", WrongFormat, strings.TrimSpace(l)), "atoms")
		}
		id, err := strconv.Atoi(fields[D.idcol])
		if err != nil {
			return kept, D.lineError(fmt.Sprintf("%s: can't read atom ID from %q", WrongFormat, fields[D.idcol]), "atoms")
		}
		if F == nil || !D.ids[id] {
			continue
		}
		for j, v := range fields[len(fields)-coordFields:] {
			coords[j], err = strconv.ParseFloat(v, 64)
			if err != nil {
				return kept, D.lineError(fmt.Sprintf("%s: can't read coordinate %q of atom %d", WrongFormat, v, id), "atoms")
			}
		}
		if err := F.Add(id, coords, fields); err != nil {
			return kept, D.lineError(fmt.Sprintf("%s: %v", DuplicatedAtom, err), "atoms")
		}
		kept++
	}
	return kept, nil
}

// readLine returns the next line without its line ending. The last line
// of the file doesn't need to end in a newline. It returns io.EOF only
// when there is nothing left to read.
func (D *Dump) readLine() (string, error) {
	l, err := D.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && l != "") {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", &Error{fmt.Sprintf("%s: %v", ReadError, err), D.filename, D.line + 1, []string{"readLine"}, true}
	}
	D.line++
	return strings.TrimRight(l, "\r\n"), nil
}

// mustReadLine is readLine, but the end of the file is a truncation error.
// what describes what was expected.
func (D *Dump) mustReadLine(what string) (string, error) {
	l, err := D.readLine()
	if err == io.EOF {
		return "", D.lineError(fmt.Sprintf("%s: expected %s", Truncated, what), "header")
	}
	return l, err
}

func (D *Dump) lineError(msg string, caller string) *Error {
	return &Error{msg, D.filename, D.line, []string{caller, "Next"}, true}
}

// itemName returns the name of the item in an "ITEM:" line, and
// whether the line was an item line at all.
func itemName(l string) (string, bool) {
	t := strings.TrimSpace(l)
	if !strings.HasPrefix(t, itemPrefix) {
		return "", false
	}
	return strings.TrimSpace(t[len(itemPrefix):]), true
}
