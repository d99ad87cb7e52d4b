package chemstat

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func cmplxMulConj(dst, b []complex128) {
	if len(dst) != len(b) {
		panic(fmt.Sprintf("complex conjugate multiplication of slices: Both slices should have the same len %d, %d", len(dst), len(b)))
	}
	for i, v := range b {
		dst[i] *= cmplx.Conj(v)
	}
}

// centeredPad returns the values in c minus their mean, as complex
// numbers, followed by as many zeros, and the sum of squares of the
// centered values.
func centeredPad(c []float64) ([]complex128, float64) {
	mean := stat.Mean(c, nil)
	pad := make([]complex128, 2*len(c))
	var ss float64
	for i, v := range c {
		pad[i] = complex(v-mean, 0)
		ss += (v - mean) * (v - mean)
	}
	return pad, ss
}

// CrossCorrelation returns the normalized cross-correlation of the series
// c1 and c2 for lags from 0 to len(c1)-1:
//
//	r[k] = sum_t (c1[t+k]-mean1)*(c2[t]-mean2) / sqrt(sum (c1-mean1)^2 * sum (c2-mean2)^2)
//
// The series must have the same length. It is computed with FFTs over
// the zero-padded series, so lags don't wrap around.
// A series with no variation has no correlation, and gives an error.
func CrossCorrelation(c1, c2 []float64) ([]float64, error) {
	if len(c1) != len(c2) {
		return nil, fmt.Errorf("chemstat.CrossCorrelation: series of different length %d, %d", len(c1), len(c2))
	}
	if len(c1) == 0 {
		return nil, fmt.Errorf("chemstat.CrossCorrelation: empty series")
	}
	c1pad, ss1 := centeredPad(c1)
	c2pad, ss2 := centeredPad(c2)
	norm := math.Sqrt(ss1 * ss2)
	if norm == 0 {
		return nil, fmt.Errorf("chemstat.CrossCorrelation: constant series")
	}
	f := fourier.NewCmplxFFT(len(c1pad))
	f.Coefficients(c1pad, c1pad)
	f.Coefficients(c2pad, c2pad)
	cmplxMulConj(c1pad, c2pad)
	f.Sequence(c1pad, c1pad)
	ret := make([]float64, len(c1))
	for i := range ret {
		ret[i] = real(c1pad[i])
	}
	//the inverse transform is not normalized
	floats.Scale(1/(float64(len(c1pad))*norm), ret)
	return ret, nil
}

// AutoCorrelation returns the normalized autocorrelation of the series c
// for lags from 0 to len(c)-1. See CrossCorrelation.
func AutoCorrelation(c []float64) ([]float64, error) {
	return CrossCorrelation(c, c)
}
