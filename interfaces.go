/*
 * interfaces.go, part of pairdist.
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

package pairdist

// Traj is an interface for any trajectory object that can hand out, one
// after the other, the frames of a file.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//Next reads the next frame into output, which is reset first. It returns
	//a LastFrameError once the trajectory has no more frames.
	Next(output *Frame) error

	//FileName returns the name of the file the frames come from
	FileName() string

	//Close releases the underlying file. The trajectory can't be read after
	//this call.
	Close()
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	//Decorate adds the name of a function in the calling stack, plus, optionally, relevant information in the
	//form "FunctionName: Extra info". If given an empty string, it just returns the current decoration.
	Decorate(string) []string
}

// TrajError is the interface for errors in trajectories
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. last frame) so  they can be
// filtered in a typeswitch or with errors.As.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}
