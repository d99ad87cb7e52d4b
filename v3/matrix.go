/*
 * matrix.go, part of pairdist.
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const cols int = 3

// Matrix is a set of vectors in 3D space. Within the package a "vector" is a
// row, i.e. the cartesian coordinates of one point.
type Matrix struct {
	*mat.Dense
}

// Dense2Matrix wraps a gonum Dense with 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != cols {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
// The slice is used as backing storage, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	rows := l / cols
	if l%cols != 0 || l == 0 {
		return nil, &Error{fmt.Sprintf("Input slice length %d not a positive multiple of %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

// NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != cols {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// VecView returns a view of the ith vector of F.
// Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, cols).(*mat.Dense)
	return &Matrix{r}
}

// View returns a view of the first n vectors of F.
func (F *Matrix) View(n int) *Matrix {
	if n > F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	r := F.Dense.Slice(0, n, 0, cols).(*mat.Dense)
	return &Matrix{r}
}

// SetVec copies the 3 coordinates in c into the ith vector of F.
func (F *Matrix) SetVec(i int, c []float64) {
	if len(c) != cols {
		panic(ErrShape)
	}
	F.SetRow(i, c)
}

// Vec returns the coordinates of the ith vector. The returned slice shares
// storage with F.
func (F *Matrix) Vec(i int) []float64 {
	return F.RawRowView(i)
}

// Dist returns the euclidean distance between the ith and jth vectors of F.
// Dist(i,j)==Dist(j,i).
func (F *Matrix) Dist(i, j int) float64 {
	n := F.NVecs()
	if i >= n || j >= n || i < 0 || j < 0 {
		panic(ErrIndexOutOfRange)
	}
	return floats.Distance(F.RawRowView(i), F.RawRowView(j), 2)
}

func (F *Matrix) String() string {
	if F == nil {
		return "<nil>"
	}
	r := F.NVecs()
	v := make([]string, 0, r)
	for i := 0; i < r; i++ {
		c := F.RawRowView(i)
		v = append(v, fmt.Sprintf("%8.3f %8.3f %8.3f", c[0], c[1], c[2]))
	}
	return strings.Join(v, "\n")
}

// errorInt is the same as pairdist.Error but avoids a circular import.
type errorInt interface {
	Error() string
	Critical() bool
	Decorate(string) []string
}

// Error is the error type returned by this package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	return err.message
}

// Decorate adds dec to the decoration slice of the error and returns the
// resulting slice. An empty dec just returns the current value.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

var _ errorInt = &Error{}

// PanicMsg is a message used for panics. It satisfies the error interface,
// but for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("pairdist/v3: A Matrix should have 3 columns")
	ErrShape           = PanicMsg("pairdist/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("pairdist/v3: index out of range")
)
