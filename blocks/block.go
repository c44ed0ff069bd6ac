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

package blocks

import (
	"fmt"
)

// Block is a contiguous run of memory.
type Block struct {
	Start uint32
	Data  []byte
}

// Len returns the number of bytes in the block.
func (b Block) Len() uint32 {
	return uint32(len(b.Data))
}

// End returns the address immediately after the last byte of the block. This
// is the address a Data record must have to extend the block. A block that
// reaches the top of the 32-bit address space ends at 1<<32 and so can never
// be extended.
func (b Block) End() uint64 {
	return uint64(b.Start) + uint64(b.Len())
}

func (b Block) String() string {
	return fmt.Sprintf("%#08x-%#08x (%d bytes)", b.Start, b.End(), b.Len())
}
