package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, EnvPrefix) {
			t.Setenv(strings.SplitN(kv, "=", 2)[0], "")
			os.Unsetenv(strings.SplitN(kv, "=", 2)[0])
		}
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		PairFiles: []string{"atom_pairs.txt"},
		Prefix:    "pairs_",
		Ext:       ".csv",
		Delimiter: ",",
		Bins:      DefaultBins,
		PlotTitle: "Atom pair distances",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("unexpected defaults (-want +got):\n%s", diff)
	}
}

// flags > env > file > defaults
func TestPrecedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	yml := filepath.Join(dir, "pairdist.yaml")
	contents := "prefix: y_\nbins: 5\ndelimiter: \";\"\nid_column: 2\npair_files:\n  - a.txt\n  - b.txt\n"
	if err := os.WriteFile(yml, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PAIRDIST_BINS", "7")
	t.Setenv("PAIRDIST_ID_COLUMN", "3")
	t.Setenv("PAIRDIST_PAIR_FILES", "c.txt,d.txt")

	fs := NewFlagSet("pairdist")
	if err := fs.Parse([]string{"-c", yml, "--delimiter=tab", "-p", "e.txt", "-p", "f.txt", "-v", "run.dump"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("", fs)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		PairFiles: []string{"e.txt", "f.txt"}, //flag
		Prefix:    "y_",                       //file
		Ext:       ".csv",                     //default
		Delimiter: "tab",                      //flag
		IDColumn:  3,                          //env
		Bins:      7,                          //env
		PlotTitle: "Atom pair distances",
		Verbose:   true,
		File:      yml,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}
	if d, _ := cfg.Delim(); d != '\t' {
		t.Errorf("expected a tab delimiter, got %q", d)
	}
	if diff := cmp.Diff([]string{"run.dump"}, fs.Args()); diff != "" {
		t.Errorf("unexpected arguments (-want +got):\n%s", diff)
	}

	//without the flags, the environment wins over the file
	cfg, err = Load(yml, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"c.txt", "d.txt"}, cfg.PairFiles); diff != "" {
		t.Errorf("unexpected pair files (-want +got):\n%s", diff)
	}
	if cfg.Delimiter != ";" {
		t.Errorf("expected the delimiter from the file, got %q", cfg.Delimiter)
	}
}

// Pair file names can contain commas.
func TestPairFileComma(t *testing.T) {
	clearEnv(t)
	fs := NewFlagSet("pairdist")
	if err := fs.Parse([]string{"-p", "a,b.txt", "--pair_files", "c.txt"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("", fs)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a,b.txt", "c.txt"}, cfg.PairFiles); diff != "" {
		t.Errorf("unexpected pair files (-want +got):\n%s", diff)
	}
}

// A config file in the working directory is ignored unless asked for.
func TestNoImplicitConfig(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pairdist.yaml"), []byte("prefix: y_\nbins: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	cfg, err := Load("", NewFlagSet("pairdist"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.File != "" || cfg.Prefix != "pairs_" || cfg.Bins != DefaultBins {
		t.Errorf("pairdist.yaml should not be read without --config: %+v", cfg)
	}
	cfg, err = Load("pairdist.yaml", nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prefix != "y_" || cfg.Bins != 5 {
		t.Errorf("the explicit config file was not read: %+v", cfg)
	}
}

func TestInvalid(t *testing.T) {
	clearEnv(t)
	cases := map[string][]string{
		"bins":      {"--bins", "0"},
		"id_column": {"--id_column=-1"},
		"delimiter": {"--delimiter", "ab"},
		"quote":     {"--delimiter", `"`},
	}
	for name, args := range cases {
		fs := NewFlagSet("pairdist")
		if err := fs.Parse(args); err != nil {
			t.Fatal(err)
		}
		if _, err := Load("", fs); err == nil {
			t.Errorf("%s: expected a validation error", name)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil {
		t.Errorf("a missing config file should give an error")
	}
}
