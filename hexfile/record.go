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

package hexfile

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/jetsetilly/hexpack/curated"
)

// StartCode is the first character of every Intel HEX record.
const StartCode = ':'

// number of hex characters in the byte count, address and record type fields
const headerChars = 8

// Record types as they appear on the wire.
const (
	TypeData                   byte = 0x00
	TypeEndOfFile              byte = 0x01
	TypeExtendedSegmentAddress byte = 0x02
	TypeStartSegmentAddress    byte = 0x03
	TypeExtendedLinearAddress  byte = 0x04
	TypeStartLinearAddress     byte = 0x05
)

var typeNames = map[byte]string{
	TypeData:                   "Data",
	TypeEndOfFile:              "End Of File",
	TypeExtendedSegmentAddress: "Extended Segment Address",
	TypeStartSegmentAddress:    "Start Segment Address",
	TypeExtendedLinearAddress:  "Extended Linear Address",
	TypeStartLinearAddress:     "Start Linear Address",
}

// TypeName returns a readable name for the wire record type.
func TypeName(typ byte) string {
	if s, ok := typeNames[typ]; ok {
		return s
	}
	return fmt.Sprintf("Unknown (%#02x)", typ)
}

// Kind says what, if anything, should be done with a decoded line.
type Kind int

// List of valid Kind values.
const (
	// the line did not begin with the start code
	Skip Kind = iota

	// raw bytes at a 16-bit offset
	Data

	// the upper 16 bits of the address of subsequent Data records
	ExtendedLinearAddress

	// any other record type. the record has been decoded but has no meaning
	Ignored
)

func (k Kind) String() string {
	switch k {
	case Skip:
		return "skip"
	case Data:
		return "data"
	case ExtendedLinearAddress:
		return "extended linear address"
	case Ignored:
		return "ignored"
	}
	return "unknown"
}

// Record is a single decoded line of Intel HEX.
type Record struct {
	Kind Kind

	// the record type field as found on the line. zero for Skip records
	Type byte

	// the 16-bit address field
	Offset uint16

	// data bytes. the number of bytes is given by the byte count field
	Payload []byte

	// line number in the source. numbering starts at one
	Line int
}

func (r Record) String() string {
	if r.Kind == Skip {
		return fmt.Sprintf("line %d: skipped", r.Line)
	}
	return fmt.Sprintf("line %d: %s record at %#04x (%d bytes)", r.Line, TypeName(r.Type), r.Offset, len(r.Payload))
}

// HighAddress returns the upper 16 bits of address carried by an
// ExtendedLinearAddress record. The value is the first two bytes of the
// payload in big-endian order. Decode() guarantees that ExtendedLinearAddress
// records have at least two payload bytes.
func (r Record) HighAddress() uint16 {
	if len(r.Payload) < 2 {
		return 0
	}
	return binary.BigEndian.Uint16(r.Payload[:2])
}

// Decode a single line of Intel HEX. The lineNum argument is used for the
// Line field of the record and in error messages.
func Decode(line string, lineNum int) (Record, error) {
	line = strings.TrimSpace(line)

	if len(line) == 0 || line[0] != StartCode {
		return Record{Kind: Skip, Line: lineNum}, nil
	}

	body := line[1:]
	if len(body) < headerChars {
		return Record{}, curated.Errorf(MalformedRecord, lineNum,
			fmt.Sprintf("record header needs %d characters, found %d", headerChars, len(body)))
	}

	hdr, err := hex.DecodeString(body[:headerChars])
	if err != nil {
		return Record{}, curated.Errorf(MalformedRecord, lineNum, err)
	}

	n := int(hdr[0])
	rec := Record{
		Type:   hdr[3],
		Offset: binary.BigEndian.Uint16(hdr[1:3]),
		Line:   lineNum,
	}

	end := headerChars + n*2
	if len(body) < end {
		return Record{}, curated.Errorf(MalformedRecord, lineNum,
			fmt.Sprintf("byte count is %d but line only has %d data characters", n, len(body)-headerChars))
	}

	rec.Payload, err = hex.DecodeString(body[headerChars:end])
	if err != nil {
		return Record{}, curated.Errorf(MalformedRecord, lineNum, err)
	}

	switch rec.Type {
	case TypeData:
		rec.Kind = Data
	case TypeExtendedLinearAddress:
		if len(rec.Payload) < 2 {
			return Record{}, curated.Errorf(MalformedRecord, lineNum,
				fmt.Sprintf("extended linear address record has %d bytes, requires 2", len(rec.Payload)))
		}
		rec.Kind = ExtendedLinearAddress
	default:
		rec.Kind = Ignored
	}

	return rec, nil
}
