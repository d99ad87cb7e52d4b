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
Package lammps reads LAMMPS text dump files, frame by frame, keeping only
the atoms the caller is interested in.

A dump file is a sequence of blocks, one per timestep:

	ITEM: TIMESTEP
	100
	ITEM: NUMBER OF ATOMS
	3
	ITEM: BOX BOUNDS pp pp pp
	-10.0 10.0
	-10.0 10.0
	-10.0 10.0
	ITEM: ATOMS id mol type q x y z
	1 1 1 -0.83 0.000 0.000 0.000
	2 1 2 0.415 3.000 4.000 0.000
	3 1 2 0.415 1.000 0.000 0.000

The atom ID is read from a fixed column (the first one by default) and the
last three columns of each row are taken as the x, y and z coordinates.
Other ITEM sections (UNITS, TIME...) are ignored. Every block must declare
its number of atoms before its ATOMS section, and must contain exactly
that many rows. Files ending in .gz, .zst/.zstd or .bz2 are decompressed
on the fly.
*/
package lammps
