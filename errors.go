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

package pairdist

import (
	"fmt"
	"strings"
)

// MissingAtomError is returned when a requested pair refers to an atom
// that is not present in one timestep of a trajectory.
type MissingAtomError struct {
	File string
	Step int
	Atom int
	deco []string
}

func (E *MissingAtomError) Error() string {
	return fmt.Sprintf("Couldn't find an atom in file %s for timestep %d: %d", E.File, E.Step, E.Atom)
}

// Decorate adds information to the error
func (E *MissingAtomError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// Critical is always true. A missing atom means a corrupted or truncated trajectory.
func (E *MissingAtomError) Critical() bool { return true }

// IOError is returned when a file can't be opened, read or written.
// It wraps the underlying error.
type IOError struct {
	Op   string //"open", "read", "write"...
	Path string
	Err  error
	deco []string
}

func (E *IOError) Error() string {
	return fmt.Sprintf("unable to %s %s: %v", E.Op, E.Path, E.Err)
}

func (E *IOError) Unwrap() error { return E.Err }

// Decorate adds information to the error
func (E *IOError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func (E *IOError) Critical() bool { return true }

// MalformedPairLine describes a line of a pair file that could not be
// read as a pair of atom IDs. It is a warning: the line is skipped.
type MalformedPairLine struct {
	File   string
	Line   int //1-based
	Text   string
	Reason string
}

func (M MalformedPairLine) Error() string {
	return fmt.Sprintf("Skipping pair %q from file %s, line %d: %s", M.Text, M.File, M.Line, M.Reason)
}

// Trace returns the decoration of err, joined, if err implements Error,
// or the empty string otherwise.
func Trace(err error) string {
	e, ok := err.(Error)
	if !ok {
		return ""
	}
	return strings.Join(e.Decorate(""), " <- ")
}

// errDecorate decorates err with the caller's name, if err implements
// Error, and returns it.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
	}
	return err
}
