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
	"fmt"
	"hash"
	"io"

	"github.com/jetsetilly/hexpack/blocks"
	"github.com/jetsetilly/hexpack/curated"
	"github.com/jetsetilly/hexpack/logger"
)

// Trailer and digest sizes.
const (
	PaddingLen = 15
	TrailerLen = PaddingLen + 1
	DigestLen  = sha256.Size
)

// Trailer returns the checksum trailer: PaddingLen zero bytes followed by the
// checksum.
func Trailer(checksum byte) [TrailerLen]byte {
	var t [TrailerLen]byte
	t[PaddingLen] = checksum
	return t
}

// ExpectedLen returns the length of the image that Build() will create for
// the list of blocks.
func ExpectedLen(blks []blocks.Block) int64 {
	return SerialisedLen(blks) + TrailerLen + DigestLen
}

// Summary of a built or verified image.
type Summary struct {
	Checksum byte
	Digest   [DigestLen]byte
	Size     int64
}

func (s Summary) String() string {
	return fmt.Sprintf("%d bytes, checksum %#02x, sha256 %x", s.Size, s.Checksum, s.Digest)
}

// Build writes the complete image for the list of blocks to the io.Writer:
// the serialised blocks, the checksum trailer and the digest.
//
// The digest is computed as the image is written so the io.Writer does not
// need to support reading back.
func Build(w io.Writer, blks []blocks.Block) (Summary, error) {
	var s Summary

	h := sha256.New()
	mw := io.MultiWriter(w, h)

	n, err := WriteBlocks(mw, blks)
	s.Size += n
	if err != nil {
		return s, err
	}

	s.Checksum = Checksum(blks)
	t := Trailer(s.Checksum)
	m, err := mw.Write(t[:])
	s.Size += int64(m)
	if err != nil {
		return s, curated.Errorf(WriteFailure, err)
	}

	s.Digest = sum(h)
	m, err = w.Write(s.Digest[:])
	s.Size += int64(m)
	if err != nil {
		return s, curated.Errorf(WriteFailure, err)
	}

	logger.Logf(logger.Allow, "fwimage", "%d blocks: %s", len(blks), s)

	return s, nil
}

func sum(h hash.Hash) [DigestLen]byte {
	var d [DigestLen]byte
	copy(d[:], h.Sum(nil))
	return d
}
