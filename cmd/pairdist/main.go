/*
 * main.go, part of pairdist.
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

// pairdist writes the distance between pairs of atoms at each timestep of a
// LAMMPS dump file.
//
// Usage:
//
//	pairdist [flags] DUMPFILE
//
// The pairs are read from atom_pairs.txt unless one or more --pair_files
// are given. The distances go to pairs_<dump name>.csv, next to the dump
// file, unless --out is given.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rmera/pairdist"
	"github.com/rmera/pairdist/internal/config"
	"github.com/spf13/pflag"
)

// Exit codes.
const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

func main() {
	os.Exit(Main(os.Args[1:], os.Stderr))
}

// painter returns a Sprintf-like function that colors its output, but only
// if w is a terminal.
func painter(w io.Writer, attr color.Attribute) func(format string, a ...interface{}) string {
	c := color.New(attr)
	c.DisableColor()
	if f, ok := w.(*os.File); ok && os.Getenv("NO_COLOR") == "" {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			c.EnableColor()
		}
	}
	return c.SprintfFunc()
}

// Main runs the program with the given arguments, and returns its exit
// status. Messages go to stderr.
func Main(args []string, stderr io.Writer) int {
	red := painter(stderr, color.FgRed)
	fs := config.NewFlagSet("pairdist")
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: pairdist [flags] DUMPFILE\n\n%s", fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		//pflag prints the usage by itself on --help.
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, red("pairdist: %v", err))
		fs.Usage()
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, red("pairdist: exactly one dump file is needed, got %d", fs.NArg()))
		fs.Usage()
		return exitUsage
	}
	cfg, err := config.Load("", fs)
	if err != nil {
		fmt.Fprintln(stderr, red("pairdist: %v", err))
		return exitUsage
	}
	if err := Run(cfg, fs.Arg(0), stderr); err != nil {
		fmt.Fprintln(stderr, red("pairdist: %v", err))
		if trace := pairdist.Trace(err); trace != "" && cfg.Verbose {
			fmt.Fprintln(stderr, red("pairdist: in %s", trace))
		}
		return exitFatal
	}
	return exitOK
}
