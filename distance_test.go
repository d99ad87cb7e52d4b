package pairdist

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type testAtom struct {
	id int
	c  []float64
}

type testFrame struct {
	step  int
	atoms []testAtom
}

// sliceTraj is a Traj that hands out the frames in a slice.
type sliceTraj struct {
	name   string
	frames []testFrame
	i      int
	closed bool
	err    error //returned instead of the frame at position fail
	fail   int
}

func (S *sliceTraj) Readable() bool   { return !S.closed }
func (S *sliceTraj) FileName() string { return S.name }
func (S *sliceTraj) Close()           { S.closed = true }

func (S *sliceTraj) Next(F *Frame) error {
	if S.err != nil && S.i == S.fail {
		return S.err
	}
	if S.i >= len(S.frames) {
		return &testLastFrame{}
	}
	f := S.frames[S.i]
	S.i++
	F.Reset(f.step)
	for _, a := range f.atoms {
		if err := F.Add(a.id, a.c, nil); err != nil {
			return err
		}
	}
	return nil
}

type testLastFrame struct{}

func (*testLastFrame) Error() string               { return "EOF" }
func (*testLastFrame) Decorate(string) []string    { return nil }
func (*testLastFrame) Critical() bool              { return false }
func (*testLastFrame) FileName() string            { return "" }
func (*testLastFrame) Format() string              { return "test" }
func (*testLastFrame) NormalLastFrameTermination() {}

func TestDistanceFiveAngstrom(Te *testing.T) {
	traj := &sliceTraj{name: "345.dump", frames: []testFrame{
		{0, []testAtom{{1, []float64{0, 0, 0}}, {2, []float64{3, 4, 0}}}},
	}}
	T, err := Distances(traj, Pairs{{1, 2}})
	if err != nil {
		Te.Fatal(err)
	}
	d, ok := T.At(0, Pair{1, 2})
	if !ok || formatDist(d) != "5.000000" {
		Te.Errorf("expected a distance of 5.000000, got %f (%v)", d, ok)
	}
}

func TestDistanceSymmetry(Te *testing.T) {
	traj := &sliceTraj{name: "sym.dump", frames: []testFrame{
		{1, []testAtom{{1, []float64{0.1, -2.3, 7.77}}, {2, []float64{-3.2, 4.1, 0.5}}, {3, []float64{1e-3, 2e3, -5}}}},
		{2, []testAtom{{3, []float64{0, 0, 0}}, {2, []float64{1, 1, 1}}, {1, []float64{-1, 0.5, 9}}}},
	}}
	pairs := Pairs{{1, 2}, {2, 1}, {1, 3}, {3, 1}, {2, 3}, {3, 2}}
	T, err := Distances(traj, pairs)
	if err != nil {
		Te.Fatal(err)
	}
	for _, step := range T.Steps() {
		for _, p := range pairs {
			ab, _ := T.At(step, p)
			ba, _ := T.At(step, Pair{p[1], p[0]})
			if math.Abs(ab-ba) > 1e-12 || ab < 0 {
				Te.Errorf("timestep %d: distance(%d,%d)=%f but distance(%d,%d)=%f", step, p[0], p[1], ab, p[1], p[0], ba)
			}
		}
	}
}

func TestMissingAtom(Te *testing.T) {
	traj := &sliceTraj{name: "broken.dump", frames: []testFrame{
		{0, []testAtom{{1, []float64{0, 0, 0}}, {2, []float64{3, 4, 0}}}},
		{100, []testAtom{{1, []float64{0, 0, 0}}}},
		{200, []testAtom{{1, []float64{0, 0, 0}}, {2, []float64{3, 4, 0}}}},
	}}
	T, err := Distances(traj, Pairs{{1, 2}})
	if T != nil {
		Te.Errorf("no table should be returned after a missing atom")
	}
	var merr *MissingAtomError
	if !errors.As(err, &merr) {
		Te.Fatalf("expected a MissingAtomError, got %v", err)
	}
	if merr.Step != 100 || merr.Atom != 2 || merr.File != "broken.dump" {
		Te.Errorf("unexpected error %v", merr)
	}
	want := "Couldn't find an atom in file broken.dump for timestep 100: 2"
	if merr.Error() != want {
		Te.Errorf("expected message %q, got %q", want, merr.Error())
	}
}

func TestTrajError(Te *testing.T) {
	bad := errors.New("corrupted")
	traj := &sliceTraj{name: "bad.dump", err: bad, fail: 1, frames: []testFrame{
		{0, []testAtom{{1, []float64{0, 0, 0}}, {2, []float64{3, 4, 0}}}},
		{1, []testAtom{{1, []float64{0, 0, 0}}, {2, []float64{3, 4, 0}}}},
	}}
	T, err := Distances(traj, Pairs{{1, 2}})
	if T != nil || !errors.Is(err, bad) {
		Te.Errorf("expected the trajectory's error, got %v", err)
	}
	traj = &sliceTraj{name: "closed.dump", closed: true}
	if _, err := Distances(traj, Pairs{{1, 2}}); err == nil {
		Te.Errorf("an unreadable trajectory should give an error")
	}
}

// Timesteps go in file order, pairs in the requested order.
func TestDistanceOrder(Te *testing.T) {
	atoms := []testAtom{{5, []float64{0, 0, 0}}, {1, []float64{0, 0, 1}}, {9, []float64{0, 2, 0}}}
	traj := &sliceTraj{name: "order.dump", frames: []testFrame{
		{300, atoms}, {100, atoms}, {200, atoms}, {100, []testAtom{{5, []float64{0, 0, 0}}, {1, []float64{0, 0, 3}}, {9, []float64{0, 2, 0}}}},
	}}
	pairs := Pairs{{9, 5}, {1, 5}, {1, 9}}
	T, err := Distances(traj, pairs)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([]int{300, 100, 200}, T.Steps()); diff != "" {
		Te.Errorf("unexpected timestep order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(pairs, T.Pairs()); diff != "" {
		Te.Errorf("unexpected pair order (-want +got):\n%s", diff)
	}
	//the repeated timestep keeps its place but takes the last values
	row, _ := T.Row(100)
	if diff := cmp.Diff([]float64{2, 3, math.Sqrt(13)}, row, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		Te.Errorf("unexpected row (-want +got):\n%s", diff)
	}
	series, ok := T.Series(Pair{1, 5})
	if !ok {
		Te.Fatal("pair (1,5) should be in the table")
	}
	if diff := cmp.Diff([]float64{1, 3, 1}, series); diff != "" {
		Te.Errorf("unexpected series (-want +got):\n%s", diff)
	}
	if _, ok := T.Series(Pair{5, 1}); ok {
		Te.Errorf("pairs are ordered, (5,1) was not requested")
	}
}

func TestNoPairs(Te *testing.T) {
	traj := &sliceTraj{name: "nopairs.dump", frames: []testFrame{{0, nil}, {10, nil}}}
	T, err := Distances(traj, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if T.Len() != 2 || len(T.Pairs()) != 0 {
		Te.Errorf("expected 2 empty rows, got %d rows, %d pairs", T.Len(), len(T.Pairs()))
	}
}
