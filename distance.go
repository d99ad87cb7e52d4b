/*
 * distance.go, part of pairdist.
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
	"errors"
	"fmt"
	"log"
)

// Distances reads every frame of the trajectory t and returns a table with
// the distance between the atoms of each pair at each timestep.
// If an atom of any pair is missing from a timestep, it returns a
// *MissingAtomError. Any error from the trajectory, other than the one
// marking its end, is returned as well. In both cases no table is returned.
// Distances does not close t.
func Distances(t Traj, pairs Pairs) (*Table, error) {
	if !t.Readable() {
		return nil, fmt.Errorf("trajectory %s is not readable", t.FileName())
	}
	table := NewTable(pairs)
	frame := NewFrame(len(pairs.IDs()))
	var last LastFrameError
	for {
		err := t.Next(frame)
		if err != nil {
			if errors.As(err, &last) {
				break
			}
			return nil, errDecorate(err, "Distances")
		}
		row, merr := frameDistances(frame, pairs)
		if merr != nil {
			merr.File = t.FileName()
			merr.Decorate("Distances")
			return nil, merr
		}
		if table.Set(frame.Step, row) {
			log.Printf("Timestep %d appears more than once in %s. The last one will be used", frame.Step, t.FileName())
		}
	}
	return table, nil
}

// frameDistances returns the distance for each pair, in order, in the frame F.
func frameDistances(F *Frame, pairs Pairs) ([]float64, *MissingAtomError) {
	row := make([]float64, len(pairs))
	for k, p := range pairs {
		i, ok := F.Index(p[0])
		if !ok {
			return nil, &MissingAtomError{Step: F.Step, Atom: p[0]}
		}
		j, ok := F.Index(p[1])
		if !ok {
			return nil, &MissingAtomError{Step: F.Step, Atom: p[1]}
		}
		//F.coords can have more rows than atoms, but i and j are always in range.
		row[k] = F.coords.Dist(i, j)
	}
	return row, nil
}
