/*
 * frame.go, part of pairdist.
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

	v3 "github.com/rmera/pairdist/v3"
)

// Frame holds the atoms kept from one timestep of a trajectory: their IDs, in
// the order they were read, their cartesian coordinates, and the raw fields
// of each atom's row. A Frame can be reused for successive timesteps.
type Frame struct {
	Step   int
	ids    []int
	index  map[int]int //atom ID -> row in coords
	coords *v3.Matrix
	rows   [][]string
}

// NewFrame returns an empty frame with room for capacity atoms. The frame
// grows if more atoms are added.
func NewFrame(capacity int) *Frame {
	if capacity < 1 {
		capacity = 1
	}
	F := new(Frame)
	F.ids = make([]int, 0, capacity)
	F.index = make(map[int]int, capacity)
	F.coords = v3.Zeros(capacity)
	F.rows = make([][]string, 0, capacity)
	return F
}

// Reset empties the frame and sets its timestep.
func (F *Frame) Reset(step int) {
	F.Step = step
	F.ids = F.ids[:0]
	F.rows = F.rows[:0]
	clear(F.index)
}

// Add puts a new atom in the frame. coords must contain the x, y and z
// coordinates. fields is kept as given, not copied.
// It is an error to add the same atom twice to a frame.
func (F *Frame) Add(id int, coords []float64, fields []string) error {
	if _, ok := F.index[id]; ok {
		return fmt.Errorf("atom %d appears more than once in timestep %d", id, F.Step)
	}
	n := len(F.ids)
	if n >= F.coords.NVecs() {
		F.grow()
	}
	F.coords.SetVec(n, coords)
	F.index[id] = n
	F.ids = append(F.ids, id)
	F.rows = append(F.rows, fields)
	return nil
}

func (F *Frame) grow() {
	n := F.coords.NVecs()
	bigger := v3.Zeros(2 * n)
	bigger.View(n).Copy(F.coords)
	F.coords = bigger
}

// Len returns the number of atoms in the frame.
func (F *Frame) Len() int {
	return len(F.ids)
}

// Index returns the row of the atom with the given ID in the coordinates
// matrix, and whether the atom is present at all.
func (F *Frame) Index(id int) (int, bool) {
	i, ok := F.index[id]
	return i, ok
}

// IDs returns the atom IDs in the frame, in reading order. The slice
// should not be modified.
func (F *Frame) IDs() []int {
	return F.ids
}

// Coords returns a view of the coordinates of the atoms in the frame,
// one row per atom, or nil if the frame is empty.
func (F *Frame) Coords() *v3.Matrix {
	if len(F.ids) == 0 {
		return nil
	}
	return F.coords.View(len(F.ids))
}

// Row returns the raw fields read for the atom, or nil if the atom is
// not in the frame.
func (F *Frame) Row(id int) []string {
	i, ok := F.index[id]
	if !ok {
		return nil
	}
	return F.rows[i]
}
