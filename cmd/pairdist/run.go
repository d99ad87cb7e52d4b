/*
 * run.go, part of pairdist.
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

package main

import (
	"io"
	"log"
	"strings"

	"github.com/fatih/color"
	"github.com/rmera/pairdist"
	"github.com/rmera/pairdist/chemplot"
	"github.com/rmera/pairdist/internal/config"
	"github.com/rmera/pairdist/lammps"
)

// distanceFile opens the dump file name, and returns the distances for
// pairs along it. The file is closed before returning.
func distanceFile(name string, pairs pairdist.Pairs, opts ...lammps.Option) (*pairdist.Table, error) {
	traj, err := lammps.New(name, pairs.IDs(), opts...)
	if err != nil {
		return nil, err
	}
	defer traj.Close()
	return pairdist.Distances(traj, pairs)
}

// Run computes the distances for the dump file according to cfg, and
// writes the requested outputs. Warnings and progress go to logw.
func Run(cfg *config.Config, dump string, logw io.Writer) error {
	logger := log.New(logw, "pairdist: ", 0)
	yellow := painter(logw, color.FgYellow)
	delim, err := cfg.Delim()
	if err != nil {
		return err
	}
	report, err := pairdist.LoadPairs(cfg.PairFiles)
	if err != nil {
		return err
	}
	for _, w := range report.Warnings {
		logger.Print(yellow("%v", w))
	}
	if len(report.Pairs) == 0 {
		logger.Print(yellow("No atom pairs found in %s, the output will have no distance columns", strings.Join(cfg.PairFiles, ", ")))
	}
	var opts []lammps.Option
	opts = append(opts, lammps.IDColumn(cfg.IDColumn))
	if cfg.Verbose {
		opts = append(opts, lammps.Logger(logger))
	}
	table, err := distanceFile(dump, report.Pairs, opts...)
	if err != nil {
		return err
	}
	//The distances file goes last, so a failed run never leaves it behind.
	if cfg.Summary != "" {
		err := pairdist.WriteAtomic(cfg.Summary, func(w io.Writer) error { return pairdist.WriteSummary(w, table, delim) })
		if err != nil {
			return err
		}
	}
	if cfg.Autocorr != "" {
		err := pairdist.WriteAtomic(cfg.Autocorr, func(w io.Writer) error { return pairdist.WriteAutocorrelations(w, table, delim) })
		if err != nil {
			return err
		}
	}
	if cfg.Histo != "" {
		err := pairdist.WriteAtomic(cfg.Histo, func(w io.Writer) error { return pairdist.WriteHistograms(w, table, cfg.Bins) })
		if err != nil {
			return err
		}
	}
	if cfg.Plot != "" {
		if err := chemplot.DistancePlot(table, cfg.PlotTitle, cfg.Plot); err != nil {
			return err
		}
	}
	out := cfg.Out
	if out == "" {
		out = pairdist.OutputName(dump, cfg.Prefix, cfg.Ext)
	}
	if err := pairdist.WriteFile(out, table, delim); err != nil {
		return err
	}
	if cfg.Verbose {
		logger.Printf("%d timesteps, %d pairs written to %s", table.Len(), len(report.Pairs), out)
	}
	return nil
}
