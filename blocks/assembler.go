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
	"io"

	"github.com/jetsetilly/hexpack/hexfile"
	"github.com/jetsetilly/hexpack/logger"
)

// Assembler folds hexfile records into a list of blocks.
type Assembler struct {
	// the block currently being appended to. nil until the first Data record
	current *Block

	// upper 16 bits of the address of Data records
	high uint16

	// closed blocks in discovery order
	blocks []Block
}

// NewAssembler is the preferred method of initialisation for the Assembler type.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// HighAddress returns the upper 16 bits of address most recently set by an
// Extended Linear Address record.
func (asm *Assembler) HighAddress() uint16 {
	return asm.high
}

// Fold a single record into the block list.
func (asm *Assembler) Fold(rec hexfile.Record) {
	switch rec.Kind {
	case hexfile.ExtendedLinearAddress:
		asm.high = rec.HighAddress()

	case hexfile.Data:
		addr := uint32(asm.high)<<16 | uint32(rec.Offset)

		if asm.current == nil || uint64(addr) != asm.current.End() {
			asm.closeCurrent()
			asm.current = &Block{Start: addr}
			logger.Logf(logger.Allow, "blocks", "line %d: new block at %#08x", rec.Line, addr)
		}

		if len(rec.Payload) == 0 {
			logger.Logf(logger.Allow, "blocks", "line %d: empty data record", rec.Line)
		}

		asm.current.Data = append(asm.current.Data, rec.Payload...)

	case hexfile.Skip:
		// not a record

	case hexfile.Ignored:
		// record type has no meaning for block assembly
	}
}

func (asm *Assembler) closeCurrent() {
	if asm.current == nil {
		return
	}
	asm.blocks = append(asm.blocks, *asm.current)
	asm.current = nil
}

// Close any open block and return the list of blocks in the order they were
// discovered. It is safe to call Close() more than once and to continue
// folding records after a call to Close(), although a subsequent Data record
// will always start a new block.
func (asm *Assembler) Close() []Block {
	asm.closeCurrent()
	return asm.blocks
}

// Assemble reads Intel HEX from the io.Reader and returns the list of blocks.
func Assemble(r io.Reader) ([]Block, error) {
	rd := hexfile.NewReader(r)
	asm := NewAssembler()

	for {
		rec, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		asm.Fold(rec)
	}

	blks := asm.Close()
	logger.Logf(logger.Allow, "blocks", "%d blocks from %d lines", len(blks), rd.Line())

	return blks, nil
}
