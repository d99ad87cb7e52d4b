package chemstat

import (
	"math"
	"testing"
)

// directCorr computes the same as CrossCorrelation, term by term.
func directCorr(c1, c2 []float64) []float64 {
	var m1, m2 float64
	for i := range c1 {
		m1 += c1[i] / float64(len(c1))
		m2 += c2[i] / float64(len(c2))
	}
	var ss1, ss2 float64
	for i := range c1 {
		ss1 += (c1[i] - m1) * (c1[i] - m1)
		ss2 += (c2[i] - m2) * (c2[i] - m2)
	}
	ret := make([]float64, len(c1))
	for k := range ret {
		for t := 0; t+k < len(c1); t++ {
			ret[k] += (c1[t+k] - m1) * (c2[t] - m2)
		}
		ret[k] /= math.Sqrt(ss1 * ss2)
	}
	return ret
}

func compare(Te *testing.T, name string, want, got []float64) {
	Te.Helper()
	if len(want) != len(got) {
		Te.Fatalf("%s: expected %d lags, got %d", name, len(want), len(got))
	}
	for i := range want {
		if math.Abs(want[i]-got[i]) > 1e-9 {
			Te.Errorf("%s: lag %d: expected %f, got %f", name, i, want[i], got[i])
		}
	}
}

func TestAutoCorrelation(Te *testing.T) {
	r, err := AutoCorrelation([]float64{1, -1, 1, -1})
	if err != nil {
		Te.Fatal(err)
	}
	compare(Te, "alternating", []float64{1, -0.75, 0.5, -0.25}, r)

	series := make([]float64, 37)
	for i := range series {
		series[i] = 3 + math.Sin(float64(i)/4) + 0.1*float64(i%5)
	}
	r, err = AutoCorrelation(series)
	if err != nil {
		Te.Fatal(err)
	}
	compare(Te, "sine", directCorr(series, series), r)
}

func TestCrossCorrelation(Te *testing.T) {
	c1 := []float64{2.1, 2.5, 3.0, 2.2, 1.9, 2.8, 3.3, 2.0, 2.4}
	c2 := []float64{1.0, 1.4, 0.9, 1.8, 1.1, 0.7, 1.5, 1.6, 1.2}
	r, err := CrossCorrelation(c1, c2)
	if err != nil {
		Te.Fatal(err)
	}
	compare(Te, "cross", directCorr(c1, c2), r)
}

func TestCorrelationErrors(Te *testing.T) {
	if _, err := AutoCorrelation([]float64{1, 1, 1}); err == nil {
		Te.Errorf("a constant series should give an error")
	}
	if _, err := AutoCorrelation(nil); err == nil {
		Te.Errorf("an empty series should give an error")
	}
	if _, err := CrossCorrelation([]float64{1, 2}, []float64{1, 2, 3}); err == nil {
		Te.Errorf("series of different lengths should give an error")
	}
}
