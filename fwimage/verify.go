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
	"crypto/sha256"

	"github.com/jetsetilly/hexpack/curated"
)

// Verify checks the integrity of a complete image. The digest must match the
// data that precedes it and the trailer padding must be zero.
//
// Block boundaries cannot be recovered from an image (the first block has no
// header) so the checksum is not recalculated. The checksum found in the
// trailer is returned in the Summary.
func Verify(data []byte) (Summary, error) {
	var s Summary

	if len(data) < TrailerLen+DigestLen {
		return s, curated.Errorf(ErrTruncated, len(data))
	}

	body := data[:len(data)-DigestLen]
	copy(s.Digest[:], data[len(body):])
	s.Size = int64(len(data))

	if sha256.Sum256(body) != s.Digest {
		return s, curated.Errorf(ErrDigestMismatch)
	}

	trailer := body[len(body)-TrailerLen:]
	for i, v := range trailer[:PaddingLen] {
		if v != 0x00 {
			return s, curated.Errorf(ErrPadding, len(body)-TrailerLen+i)
		}
	}
	s.Checksum = trailer[PaddingLen]

	return s, nil
}
