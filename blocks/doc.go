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

// Package blocks folds a stream of Intel HEX records into contiguous blocks of
// memory.
//
// Blocks are kept in the order they are discovered, which is not necessarily
// the order of their addresses. A new block is started whenever a Data record
// does not continue from the end of the current block. No attempt is made to
// merge a record with any block other than the current one.
//
// The upper 16 bits of the address, as set by Extended Linear Address
// records, is state held by the Assembler. It persists until the next Extended
// Linear Address record changes it. An Extended Linear Address record does not
// by itself end the current block, so one that restates the current upper
// address has no effect on the block structure.
//
// A Data record with an empty payload is treated like any other. If it does
// not continue the current block it opens a new, empty, block. Empty blocks
// are kept and appear in the image with a length of zero.
package blocks
