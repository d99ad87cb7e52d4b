package pairdist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeTestFile(Te *testing.T, dir, name, contents string) string {
	Te.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		Te.Fatal(err)
	}
	return path
}

func TestLoadPairs(Te *testing.T) {
	dir := Te.TempDir()
	a := writeTestFile(Te, dir, "a.txt", "12,40\n3,4\n\n12,40\n7,1\n")
	b := writeTestFile(Te, dir, "b.txt", "3,4\n 9 , 2 \n7,1\n1,7\n")
	report, err := LoadPairs([]string{a, b})
	if err != nil {
		Te.Fatal(err)
	}
	want := Pairs{{12, 40}, {3, 4}, {7, 1}, {9, 2}, {1, 7}}
	if diff := cmp.Diff(want, report.Pairs); diff != "" {
		Te.Errorf("unexpected pairs (-want +got):\n%s", diff)
	}
	if len(report.Warnings) != 0 {
		Te.Errorf("expected no warnings, got %v", report.Warnings)
	}
	wantIDs := map[int]bool{12: true, 40: true, 3: true, 4: true, 7: true, 1: true, 9: true, 2: true}
	if diff := cmp.Diff(wantIDs, report.Pairs.IDs()); diff != "" {
		Te.Errorf("unexpected atom IDs (-want +got):\n%s", diff)
	}
}

func TestMalformedPairs(Te *testing.T) {
	report := new(PairReport)
	in := "1,2\nabc,2\n3,4,5\n6\n-1,3\n0,2\n5,6\n"
	if err := ReadPairs(strings.NewReader(in), "pairs.txt", report); err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(Pairs{{1, 2}, {5, 6}}, report.Pairs); diff != "" {
		Te.Errorf("unexpected pairs (-want +got):\n%s", diff)
	}
	lines := make([]int, 0, len(report.Warnings))
	for _, w := range report.Warnings {
		lines = append(lines, w.Line)
		if w.File != "pairs.txt" {
			Te.Errorf("warning should name the file: %v", w)
		}
	}
	if diff := cmp.Diff([]int{2, 3, 4, 5, 6}, lines); diff != "" {
		Te.Errorf("unexpected warning lines (-want +got):\n%s", diff)
	}
	if !strings.Contains(report.Warnings[0].Error(), "abc,2") {
		Te.Errorf("warning should quote the offending line: %v", report.Warnings[0])
	}
}

func TestLoadPairsEmpty(Te *testing.T) {
	dir := Te.TempDir()
	a := writeTestFile(Te, dir, "empty.txt", "")
	report, err := LoadPairs([]string{a})
	if err != nil {
		Te.Fatal(err)
	}
	if len(report.Pairs) != 0 || len(report.Pairs.IDs()) != 0 {
		Te.Errorf("expected no pairs, got %v", report.Pairs)
	}
}

func TestLoadPairsMissingFile(Te *testing.T) {
	_, err := LoadPairs([]string{filepath.Join(Te.TempDir(), "nothere.txt")})
	var ioerr *IOError
	if !errors.As(err, &ioerr) {
		Te.Fatalf("expected an IOError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		Te.Errorf("IOError should wrap the cause: %v", err)
	}
	if Trace(err) != "LoadPairs" {
		Te.Errorf("unexpected trace %q", Trace(err))
	}
}

func TestPairName(Te *testing.T) {
	if n := (Pair{12, 3}).Name(); n != "12_3" {
		Te.Errorf("unexpected name %s", n)
	}
	if diff := cmp.Diff([]string{"1_2", "2_1"}, Pairs{{1, 2}, {2, 1}}.Names()); diff != "" {
		Te.Errorf("unexpected names (-want +got):\n%s", diff)
	}
}
