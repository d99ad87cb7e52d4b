/*
 * table.go, part of pairdist.
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

import "math"

// Table holds the distances for a fixed set of pairs at each timestep.
// Timesteps are kept in the order they were first set, pairs in the
// order given to NewTable.
type Table struct {
	pairs     Pairs
	pairindex map[Pair]int
	steps     []int
	stepindex map[int]int
	rows      [][]float64
}

// NewTable returns an empty table for the given pairs. The pairs
// should not contain duplicates.
func NewTable(pairs Pairs) *Table {
	T := new(Table)
	T.pairs = append(Pairs(nil), pairs...)
	T.pairindex = make(map[Pair]int, len(pairs))
	for i, p := range pairs {
		T.pairindex[p] = i
	}
	T.stepindex = make(map[int]int)
	return T
}

// Set stores the distances in row, one per pair in the table, for the
// timestep step. If the timestep is already in the table, its values are
// replaced but its position is kept, and Set returns true.
// Set panics if row doesn't have one element per pair.
func (T *Table) Set(step int, row []float64) bool {
	if len(row) != len(T.pairs) {
		panic("pairdist.Table.Set: row doesn't match the number of pairs")
	}
	if i, ok := T.stepindex[step]; ok {
		T.rows[i] = row
		return true
	}
	T.stepindex[step] = len(T.steps)
	T.steps = append(T.steps, step)
	T.rows = append(T.rows, row)
	return false
}

// Len returns the number of timesteps in the table.
func (T *Table) Len() int {
	return len(T.steps)
}

// Pairs returns a copy of the pairs in the table.
func (T *Table) Pairs() Pairs {
	return append(Pairs(nil), T.pairs...)
}

// Steps returns a copy of the timesteps in the table, in order.
func (T *Table) Steps() []int {
	return append([]int(nil), T.steps...)
}

// Row returns the distances for the given timestep, one per pair. The
// slice should not be modified.
func (T *Table) Row(step int) ([]float64, bool) {
	i, ok := T.stepindex[step]
	if !ok {
		return nil, false
	}
	return T.rows[i], true
}

// At returns the distance for pair p at the given timestep.
func (T *Table) At(step int, p Pair) (float64, bool) {
	i, ok := T.stepindex[step]
	if !ok {
		return 0, false
	}
	j, ok := T.pairindex[p]
	if !ok {
		return 0, false
	}
	return T.rows[i][j], true
}

// Series returns a new slice with the distances for pair p at every
// timestep, in order.
func (T *Table) Series(p Pair) ([]float64, bool) {
	j, ok := T.pairindex[p]
	if !ok {
		return nil, false
	}
	ret := make([]float64, len(T.rows))
	for i, r := range T.rows {
		ret[i] = r[j]
	}
	return ret, true
}

// Range returns the smallest and largest distance in the table. For an
// empty table it returns NaN, NaN.
func (T *Table) Range() (float64, float64) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, r := range T.rows {
		for _, v := range r {
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
	}
	if math.IsInf(min, 1) {
		return math.NaN(), math.NaN()
	}
	return min, max
}
