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

// Package hexfile decodes Intel HEX text into records. Decode() handles a
// single line and the Reader type handles a stream of lines.
//
// Decoding is permissive. Lines that do not begin with the start code (a
// colon) are skipped and record types other than Data and Extended Linear
// Address are decoded but marked as Ignored. The checksum field at the end of
// each line is never examined and an End Of File record does not stop the
// Reader.
//
// A line that is too short for its declared byte count, or that contains
// non-hex characters in a field it does use, results in a MalformedRecord
// error.
package hexfile
