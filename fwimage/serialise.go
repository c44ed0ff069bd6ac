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

package fwimage

import (
	"encoding/binary"
	"io"

	"github.com/jetsetilly/hexpack/blocks"
	"github.com/jetsetilly/hexpack/curated"
)

// HeaderLen is the length of the header that precedes every block except the
// first.
const HeaderLen = 8

// WriteBlocks writes the blocks to the io.Writer in the order they appear in
// the list. Returns the number of bytes written.
func WriteBlocks(w io.Writer, blks []blocks.Block) (int64, error) {
	var n int64
	var hdr [HeaderLen]byte

	for i, b := range blks {
		if i > 0 {
			binary.LittleEndian.PutUint32(hdr[0:4], b.Start)
			binary.LittleEndian.PutUint32(hdr[4:8], b.Len())
			m, err := w.Write(hdr[:])
			n += int64(m)
			if err != nil {
				return n, curated.Errorf(WriteFailure, err)
			}
		}

		m, err := w.Write(b.Data)
		n += int64(m)
		if err != nil {
			return n, curated.Errorf(WriteFailure, err)
		}
	}

	return n, nil
}

// SerialisedLen returns the number of bytes WriteBlocks() will write for the
// list of blocks.
func SerialisedLen(blks []blocks.Block) int64 {
	var n int64
	for i, b := range blks {
		if i > 0 {
			n += HeaderLen
		}
		n += int64(b.Len())
	}
	return n
}
