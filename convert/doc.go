// This file is part of Hexpack.
//
// Hexpack is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hexpack is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hexpack.  If not, see <https://www.gnu.org/licenses/>.

// Package convert ties the hexfile, blocks and fwimage packages together at
// the level of files. All file access goes through an afero.Fs so that the
// conversion can be run against the real filesystem or an in-memory one.
//
// A conversion either produces a complete image or no image at all. If
// anything goes wrong after the output file has been created, the output file
// is removed before the error is returned.
package convert
