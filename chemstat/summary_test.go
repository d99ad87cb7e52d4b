package chemstat

import (
	"math"
	"testing"
)

func TestSummarize(Te *testing.T) {
	S := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if S.N != 8 || S.Mean != 5 || S.Min != 2 || S.Max != 9 {
		Te.Errorf("unexpected summary %s", S)
	}
	//sample standard deviation of the series above
	if math.Abs(S.StdDev-2.138089935299395) > 1e-12 {
		Te.Errorf("unexpected standard deviation %f", S.StdDev)
	}
}

func TestSummarizeShort(Te *testing.T) {
	S := Summarize(nil)
	if S.N != 0 || !math.IsNaN(S.Mean) || !math.IsNaN(S.Max) {
		Te.Errorf("unexpected summary for an empty series %s", S)
	}
	S = Summarize([]float64{1.5})
	if S.Mean != 1.5 || S.Min != 1.5 || S.Max != 1.5 || !math.IsNaN(S.StdDev) {
		Te.Errorf("unexpected summary for a single value %s", S)
	}
}
