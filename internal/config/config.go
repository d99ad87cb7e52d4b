// Package config loads the settings of the pairdist command from defaults,
// a YAML file, PAIRDIST_ environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/rmera/pairdist"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "PAIRDIST_"

// DefaultBins is the number of bins used for histograms.
const DefaultBins = 20

// Config holds the settings of a run.
type Config struct {
	PairFiles []string `koanf:"pair_files"`
	Out       string   `koanf:"out"` //overrides the name built from the dump file
	Prefix    string   `koanf:"prefix"`
	Ext       string   `koanf:"ext"`
	Delimiter string   `koanf:"delimiter"`
	IDColumn  int      `koanf:"id_column"`
	Summary   string   `koanf:"summary"`
	Autocorr  string   `koanf:"autocorr"`
	Histo     string   `koanf:"histo"`
	Bins      int      `koanf:"bins"`
	Plot      string   `koanf:"plot"`
	PlotTitle string   `koanf:"plot_title"`
	Verbose   bool     `koanf:"verbose"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

// Defaults returns the default value of every setting.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"pair_files": []string{pairdist.DefaultPairFile},
		"out":        "",
		"prefix":     pairdist.DefaultPrefix,
		"ext":        pairdist.DefaultExt,
		"delimiter":  ",",
		"id_column":  0,
		"summary":    "",
		"autocorr":   "",
		"histo":      "",
		"bins":       DefaultBins,
		"plot":       "",
		"plot_title": "Atom pair distances",
		"verbose":    false,
	}
}

// NewFlagSet returns the command line flags understood by Load.
func NewFlagSet(name string) *pflag.FlagSet {
	d := Defaults()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.StringP("config", "c", "", "YAML configuration file")
	fs.StringArrayP("pair_files", "p", d["pair_files"].([]string), "file with one \"id0,id1\" atom pair per line. Can be repeated")
	fs.StringP("out", "o", "", "output file. By default it is built from the dump file name, --prefix and --ext")
	fs.String("prefix", d["prefix"].(string), "prefix for the output file name")
	fs.String("ext", d["ext"].(string), "extension for the output file name. Add .gz or .zst to compress the output")
	fs.String("delimiter", d["delimiter"].(string), "field delimiter for the output, a single character or \"tab\"")
	fs.Int("id_column", d["id_column"].(int), "0-based column of the atom ID in the dump file rows")
	fs.String("summary", "", "also write per-pair statistics to this file")
	fs.String("autocorr", "", "also write the autocorrelation of each pair's distance to this file")
	fs.String("histo", "", "also write per-pair distance histograms, in JSON, to this file")
	fs.Int("bins", d["bins"].(int), "number of bins for the histograms")
	fs.String("plot", "", "also plot the distances to this file (png, svg, pdf...)")
	fs.String("plot_title", d["plot_title"].(string), "title of the plot")
	fs.BoolP("verbose", "v", false, "report progress")
	return fs
}

// Load builds the configuration. Precedence, from highest to lowest:
// flags that were explicitly set, environment variables, the config file,
// defaults. flags can be nil. A config file is read only if cfgFile or the
// --config flag names one.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if cfgFile == "" && flags != nil {
		cfgFile, _ = flags.GetString("config")
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}
	//PAIRDIST_PAIR_FILES -> pair_files, a comma-separated list.
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if key == "pair_files" {
			return key, strings.Split(value, ",")
		}
		return key, value
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return f.Name, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = cfgFile
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the settings make sense together.
func (C *Config) Validate() error {
	var errs []error
	if len(C.PairFiles) == 0 {
		errs = append(errs, errors.New("at least one pair file is needed"))
	}
	if C.IDColumn < 0 {
		errs = append(errs, fmt.Errorf("id_column must not be negative, got %d", C.IDColumn))
	}
	if C.Bins < 1 {
		errs = append(errs, fmt.Errorf("bins must be positive, got %d", C.Bins))
	}
	if _, err := C.Delim(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Delim returns the output delimiter as a rune.
func (C *Config) Delim() (rune, error) {
	switch C.Delimiter {
	case "tab", `\t`:
		return '\t', nil
	case "":
		return ',', nil
	}
	r, size := utf8.DecodeRuneInString(C.Delimiter)
	if size != len(C.Delimiter) || r == utf8.RuneError || r == '\r' || r == '\n' || r == '"' {
		return 0, fmt.Errorf("invalid delimiter %q: a single character other than a quote or newline is needed", C.Delimiter)
	}
	return r, nil
}
