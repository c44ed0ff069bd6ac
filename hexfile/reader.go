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
	"bufio"
	"io"

	"github.com/jetsetilly/hexpack/curated"
	"github.com/jetsetilly/hexpack/logger"
)

// the longest possible record is well under 1k but lines that are skipped can
// be any length
const maxLineLength = 1 << 20

// Reader decodes records from a stream of Intel HEX text.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader is the preferred method of initialisation for the Reader type.
func NewReader(r io.Reader) *Reader {
	rd := &Reader{
		scanner: bufio.NewScanner(r),
	}
	rd.scanner.Buffer(make([]byte, 0, 1024), maxLineLength)
	return rd
}

// Line returns the number of the most recently read line.
func (rd *Reader) Line() int {
	return rd.line
}

// Next returns the next record in the stream. Lines that do not begin with the
// start code are passed over and are never returned. Returns io.EOF when the
// stream has been exhausted.
func (rd *Reader) Next() (Record, error) {
	for rd.scanner.Scan() {
		rd.line++

		rec, err := Decode(rd.scanner.Text(), rd.line)
		if err != nil {
			return Record{}, err
		}

		switch rec.Kind {
		case Skip:
			continue
		case Ignored:
			logger.Logf(logger.Allow, "hexfile", "line %d: ignoring %s record", rec.Line, TypeName(rec.Type))
		}

		return rec, nil
	}

	if err := rd.scanner.Err(); err != nil {
		return Record{}, curated.Errorf(ReadFailure, rd.line+1, err)
	}

	return Record{}, io.EOF
}
