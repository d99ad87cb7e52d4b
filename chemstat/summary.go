/*
 * summary.go, part of pairdist.
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

// Package chemstat contains simple statistics over the time series
// obtained from a trajectory.
package chemstat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary contains the basic descriptors of a series of values.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64 //sample standard deviation, NaN if N<2
	Min    float64
	Max    float64
}

func (S Summary) String() string {
	return fmt.Sprintf("N: %d Mean: %.6f StdDev: %.6f Min: %.6f Max: %.6f", S.N, S.Mean, S.StdDev, S.Min, S.Max)
}

// Summarize returns the summary of the values in series. For an empty
// series all the descriptors but N are NaN.
func Summarize(series []float64) Summary {
	S := Summary{N: len(series)}
	if S.N == 0 {
		S.Mean, S.StdDev, S.Min, S.Max = math.NaN(), math.NaN(), math.NaN(), math.NaN()
		return S
	}
	S.Min = floats.Min(series)
	S.Max = floats.Max(series)
	if S.N < 2 {
		S.Mean = series[0]
		S.StdDev = math.NaN()
		return S
	}
	S.Mean, S.StdDev = stat.MeanStdDev(series, nil)
	return S
}
