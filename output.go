/*
 * output.go, part of pairdist.
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
	"encoding/csv"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rmera/pairdist/chemstat"
	"github.com/rmera/pairdist/histo"
)

const (
	DefaultPrefix = "pairs_"
	DefaultExt    = ".csv"
	//Decimal places used for distances in the output.
	Precision = 6
)

// OutputName returns the name of an output file for the given dump file:
// the dump's directory, prefix, the dump's base name without its
// compression suffix and extension, and ext.
func OutputName(dump, prefix, ext string) string {
	base := filepath.Base(TrimCompression(dump))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(dump), prefix+base+ext)
}

func formatDist(d float64) string {
	return strconv.FormatFloat(d, 'f', Precision, 64)
}

// WriteCSV writes the table to w. The first row is "timestep" followed by
// the names of the pairs. Each other row contains a timestep and its
// distances, with Precision decimal places. delim is the field
// separator, 0 means a comma.
func WriteCSV(w io.Writer, T *Table, delim rune) error {
	cw := csv.NewWriter(w)
	if delim != 0 {
		cw.Comma = delim
	}
	if err := cw.Write(append([]string{"timestep"}, T.pairs.Names()...)); err != nil {
		return err
	}
	rec := make([]string, len(T.pairs)+1)
	for i, step := range T.steps {
		rec[0] = strconv.Itoa(step)
		for j, d := range T.rows[i] {
			rec[j+1] = formatDist(d)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummary writes, for each pair in the table, the number of
// timesteps and the mean, sample standard deviation, minimum and maximum
// of its distance.
func WriteSummary(w io.Writer, T *Table, delim rune) error {
	cw := csv.NewWriter(w)
	if delim != 0 {
		cw.Comma = delim
	}
	if err := cw.Write([]string{"pair", "n", "mean", "stddev", "min", "max"}); err != nil {
		return err
	}
	for _, p := range T.pairs {
		series, _ := T.Series(p)
		S := chemstat.Summarize(series)
		rec := []string{p.Name(), strconv.Itoa(S.N), formatDist(S.Mean), formatDist(S.StdDev), formatDist(S.Min), formatDist(S.Max)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAutocorrelations writes, for each pair in the table, the
// normalized autocorrelation of its distance series. The first column is
// the lag, in frames, the rest are named after the pairs. Pairs whose
// distance never changes have no autocorrelation, and get NaN values.
func WriteAutocorrelations(w io.Writer, T *Table, delim rune) error {
	cw := csv.NewWriter(w)
	if delim != 0 {
		cw.Comma = delim
	}
	if err := cw.Write(append([]string{"lag"}, T.pairs.Names()...)); err != nil {
		return err
	}
	corrs := make([][]float64, len(T.pairs))
	for j, p := range T.pairs {
		series, _ := T.Series(p)
		c, err := chemstat.AutoCorrelation(series)
		if err != nil {
			c = make([]float64, len(series))
			for i := range c {
				c[i] = math.NaN()
			}
		}
		corrs[j] = c
	}
	rec := make([]string, len(T.pairs)+1)
	for lag := 0; lag < T.Len(); lag++ {
		rec[0] = strconv.Itoa(lag)
		for j, c := range corrs {
			rec[j+1] = formatDist(c[lag])
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteHistograms writes one JSON histogram per pair, one per line. All the
// histograms have the same bins, spanning all the distances in the table.
func WriteHistograms(w io.Writer, T *Table, bins int) error {
	min, max := T.Range()
	if math.IsNaN(min) {
		min, max = 0, 1
	}
	dividers := histo.Dividers(min, max, bins)
	enc := json.NewEncoder(w)
	for _, p := range T.pairs {
		series, _ := T.Series(p)
		if err := enc.Encode(histo.NewData(p.Name(), dividers, series)); err != nil {
			return err
		}
	}
	return nil
}

// WriteAtomic creates the file name, and uses fill to write its contents,
// compressed if the name ends in .gz or .zst. The contents are written
// to a temporary file in the same directory, which replaces name only
// if everything went well. Otherwise the temporary file is removed and
// any previous file with the same name is left untouched.
func WriteAtomic(name string, fill func(w io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*.tmp")
	if err != nil {
		return &IOError{Op: "create", Path: name, Err: err, deco: []string{"WriteAtomic"}}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	bw := bufio.NewWriter(tmp)
	cw, err := NewCompressor(name, bw)
	if err != nil {
		return &IOError{Op: "write", Path: name, Err: err, deco: []string{"WriteAtomic"}}
	}
	if err = fill(cw); err != nil {
		cw.Close()
		return &IOError{Op: "write", Path: name, Err: err, deco: []string{"WriteAtomic"}}
	}
	if err = cw.Close(); err != nil {
		return &IOError{Op: "write", Path: name, Err: err, deco: []string{"WriteAtomic"}}
	}
	if err = bw.Flush(); err != nil {
		return &IOError{Op: "write", Path: name, Err: err, deco: []string{"WriteAtomic"}}
	}
	//CreateTemp makes files only readable by the owner.
	if err = tmp.Chmod(0o644); err != nil {
		return &IOError{Op: "chmod", Path: name, Err: err, deco: []string{"WriteAtomic"}}
	}
	if err = tmp.Close(); err != nil {
		return &IOError{Op: "write", Path: name, Err: err, deco: []string{"WriteAtomic"}}
	}
	if err = os.Rename(tmp.Name(), name); err != nil {
		return &IOError{Op: "rename", Path: name, Err: err, deco: []string{"WriteAtomic"}}
	}
	return nil
}

// WriteFile writes the table in CSV format to the file name. See WriteCSV
// and WriteAtomic.
func WriteFile(name string, T *Table, delim rune) error {
	err := WriteAtomic(name, func(w io.Writer) error { return WriteCSV(w, T, delim) })
	return errDecorate(err, "WriteFile")
}
