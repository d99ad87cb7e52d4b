/*
 * errors.go, part of pairdist.
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
	"fmt"

	"github.com/rmera/pairdist"
)

// Error is the general structure for LAMMPS dump errors. It fullfills pairdist.Error and pairdist.TrajError
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int    //0 if the error is not tied to a line
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("LAMMPS dump file %s error at line %d: %s", err.filename, err.line, err.message)
	}
	return fmt.Sprintf("LAMMPS dump file %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file to which the failing trajectory was associated
func (err *Error) FileName() string { return err.filename }

// Line returns the line of the file where the error was found, or 0.
func (err *Error) Line() int { return err.line }

// Message returns the error message without the file information.
func (err *Error) Message() string { return err.message }

// Format returns the format of the file (always "LAMMPS dump") associated to the error
func (err *Error) Format() string { return "LAMMPS dump" }

// Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

const (
	TrajUnIniRead  = "Traj object uninitialized to read"
	ReadError      = "Error reading file"
	UnableToOpen   = "Unable to open file"
	Truncated      = "File ends in the middle of a timestep block"
	MissingHeader  = "Timestep block without"
	WrongFormat    = "Wrong format in the dump file"
	WrongAtomCount = "Fewer atom rows than declared"
	DuplicatedAtom = "Atom appears more than once in a timestep"
)

// lastFrameError implements pairdist.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

// NormalLastFrameTermination does nothing
func (E *lastFrameError) NormalLastFrameTermination() {}

func (E *lastFrameError) FileName() string { return E.fileName }

func (E *lastFrameError) Error() string { return "EOF" }

func (E *lastFrameError) Critical() bool { return false }

func (E *lastFrameError) Format() string { return "LAMMPS dump" }

func (E *lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}

var (
	_ pairdist.TrajError      = &Error{}
	_ pairdist.LastFrameError = &lastFrameError{}
)
