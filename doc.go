/*
 * doc.go, part of pairdist.
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

/*
Package pairdist follows the distances between pairs of atoms along a
molecular dynamics trajectory.

	**pairdist Capabilities**

    Reads pairs of atom IDs from one or more pair files, one "id0,id1" pair
	per line. Duplicated pairs are dropped, the first one found is kept in
	place. Malformed lines are skipped and reported as warnings.

    Reads LAMMPS dump files (plain, gzip, zstd or bzip2 compressed) with the
	lammps sub-package, keeping only the atoms that appear in some pair.

    Computes, for each timestep, the distance between the atoms of each
	pair. A pair whose atom is missing from any timestep stops the
	calculation with an error naming the file, timestep and atom.

    Writes the distances as a CSV table, one row per timestep in the order
	of the dump file, one column per pair in the order they were requested.

    Summarizes the distance of each pair (mean, standard deviation, range)
	and computes its autocorrelation (chemstat sub-package), builds
	histograms (histo sub-package) and plots the distances along the
	trajectory (chemplot sub-package).

A minimal program:

	report, err := pairdist.LoadPairs([]string{"atom_pairs.txt"})
	//handle err, check report.Warnings
	traj, err := lammps.New("run.dump", report.Pairs.IDs())
	//handle err
	defer traj.Close()
	table, err := pairdist.Distances(traj, report.Pairs)
	//handle err
	err = pairdist.WriteFile(pairdist.OutputName("run.dump", pairdist.DefaultPrefix, pairdist.DefaultExt), table, ',')
*/
package pairdist
