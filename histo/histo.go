/*
 * histo.go, part of pairdist.
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

// Package histo builds histograms of the distances along a trajectory.
package histo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Dividers returns bins+1 evenly spaced dividers going from min to max.
// If max is not larger than min, the range is widened so all the data
// falls in the single value's bins.
func Dividers(min, max float64, bins int) []float64 {
	if bins < 1 {
		bins = 1
	}
	if max <= min {
		max = min + 1
	}
	d := make([]float64, bins+1)
	floats.Span(d, min, max)
	return d
}

// Data is a histogram.
type Data struct {
	name       string
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

type jsonData struct {
	Name       string    `json:"name"`
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonData{
		Name:       D.name,
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a jsonData
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	D.name = a.Name
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

// Name returns the name of the histogram
func (D *Data) Name() string {
	return D.name
}

// String prints a -hopefully- pretty string representation of
// the histogram. The representation uses 3 lines of text.
func (D *Data) String() string {
	ret := fmt.Sprintf("Name: %s, Normalized: %v, TotalData: %d\n", D.name, D.normalized, D.total)
	d := make([]string, 0, len(D.dividers)-1)
	h := make([]string, 0, len(D.dividers)-1)
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

// NewData returns a new histogram from the dividers and rawdata given.
// rawdata can be nil. In that case, an empty histogram is created.
// rawdata is sorted in place.
func NewData(name string, dividers []float64, rawdata []float64) *Data {
	if len(dividers) < 2 {
		panic("pairdist/histo.NewData: at least 2 dividers are needed")
	}
	d := new(Data)
	d.name = name
	//copied so nobody can change it from outside
	d.dividers = append([]float64(nil), dividers...)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(rawdata)
	}
	return d
}

// AddData adds the given data point(s) to the histogram. Values outside the
// dividers are counted in the total, but not in any bin. The last divider
// belongs to the last bin.
func (D *Data) AddData(point ...float64) {
	var norma bool
	if D.normalized {
		norma = true
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		if v == D.dividers[last] {
			D.histo[last-1]++
			continue
		}
		for j, w := range D.dividers[:last] {
			if w <= v && v < D.dividers[j+1] {
				D.histo[j]++
				break
			}
		}
	}
	D.total += len(point)
	//if it was normalized, we should return it to that state
	if norma {
		D.Normalize()
	}
}

// Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

// Normalize normalizes the histogram
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

// UnNormalize un-normalizes the histogram
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	D.normalized = false
	if normalize {
		n = 1 / float64(D.total)
		D.normalized = true
	}
	floats.Scale(n, D.histo)
}

// Dividers returns a copy of the dividers of the histogram
func (D *Data) Dividers() []float64 {
	return append([]float64(nil), D.dividers...)
}

// View returns the bins of the histogram. Changes to the slice
// change the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

// Total returns the number of data points given to the histogram.
func (D *Data) Total() int {
	return D.total
}

// Sum returns the sum of all bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

// ReHisto discards the current counts and builds the histogram again from
// rawdata, which is sorted in place.
func (D *Data) ReHisto(rawdata []float64) {
	sort.Float64s(rawdata)
	D.total = len(rawdata)
	//stat.Histogram panics instead of omitting the values that are off limits
	//so they are removed here before the call.
	last := D.dividers[len(D.dividers)-1]
	maxi := sort.Search(len(rawdata), func(i int) bool { return rawdata[i] > last })
	mini := sort.SearchFloat64s(rawdata, D.dividers[0])
	rawdata = rawdata[mini:maxi]
	//stat.Histogram takes the last divider as exclusive.
	ntop := 0
	for len(rawdata) > 0 && rawdata[len(rawdata)-1] == last {
		rawdata = rawdata[:len(rawdata)-1]
		ntop++
	}
	D.histo = stat.Histogram(D.histo, D.dividers, rawdata, nil)
	D.histo[len(D.histo)-1] += float64(ntop)
	D.normalized = false
}
