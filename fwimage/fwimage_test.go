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

package fwimage_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math/rand"
	"testing"

	"github.com/jetsetilly/hexpack/blocks"
	"github.com/jetsetilly/hexpack/curated"
	"github.com/jetsetilly/hexpack/fwimage"
	"github.com/jetsetilly/hexpack/test"
)

// the blocks assembled from:
//
//	:02000004000000FA
//	:04000000DEADBEEF
//	:02002000CAFEF1
var example = []blocks.Block{
	{Start: 0x0000, Data: []byte{0xde, 0xad, 0xbe, 0xef}},
	{Start: 0x0020, Data: []byte{0xca, 0xfe}},
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	test.DemandSuccess(t, err)
	return b
}

func TestExampleImage(t *testing.T) {
	var w bytes.Buffer
	s, err := fwimage.Build(&w, example)
	test.DemandSuccess(t, err)

	expected := mustHex(t, "deadbeef"+"20000000"+"02000000"+"cafe"+
		"000000000000000000000000000000"+"db"+
		"28c393aa3ab307d0f8c67b961776df11b8ed0096f49efd4daa74e6fdc2be01de")

	test.ExpectBytes(t, w.Bytes(), expected)
	test.ExpectEquality(t, s.Checksum, byte(0xef^0xca^0xfe))
	test.ExpectEquality(t, s.Size, int64(len(expected)))
	test.ExpectBytes(t, s.Digest[:], expected[len(expected)-fwimage.DigestLen:])
}

func TestWriteBlocks(t *testing.T) {
	var w bytes.Buffer
	n, err := fwimage.WriteBlocks(&w, example)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, int64(14))
	test.ExpectEquality(t, fwimage.SerialisedLen(example), int64(14))
	test.ExpectBytes(t, w.Bytes(), mustHex(t, "deadbeef2000000002000000cafe"))

	// a single block is written without a header
	w.Reset()
	_, err = fwimage.WriteBlocks(&w, example[:1])
	test.DemandSuccess(t, err)
	test.ExpectBytes(t, w.Bytes(), mustHex(t, "deadbeef"))

	// header fields are little-endian
	w.Reset()
	_, err = fwimage.WriteBlocks(&w, []blocks.Block{
		{Start: 0, Data: []byte{0x00}},
		{Start: 0x08001234, Data: make([]byte, 0x0102)},
	})
	test.DemandSuccess(t, err)
	test.ExpectBytes(t, w.Bytes()[1:9], mustHex(t, "3412000802010000"))
}

func TestEmptyBlock(t *testing.T) {
	// an empty block is written as a header with a length of zero
	blks := []blocks.Block{
		{Start: 0x0000, Data: []byte{0xde, 0xad, 0xbe, 0xef}},
		{Start: 0x0100},
		{Start: 0x0004, Data: []byte{0x01, 0x02, 0x03, 0x04}},
	}

	var w bytes.Buffer
	s, err := fwimage.Build(&w, blks)
	test.DemandSuccess(t, err)

	body := mustHex(t, "deadbeef"+"00010000"+"00000000"+"04000000"+"04000000"+"01020304"+
		"000000000000000000000000000000"+"eb")
	d := sha256.Sum256(body)

	test.ExpectBytes(t, w.Bytes(), append(body, d[:]...))
	test.ExpectEquality(t, s.Checksum, byte(0xeb))
	test.ExpectEquality(t, fwimage.ExpectedLen(blks), int64(len(body)+fwimage.DigestLen))
}

func TestNoBlocks(t *testing.T) {
	var w bytes.Buffer
	s, err := fwimage.Build(&w, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Checksum, fwimage.ChecksumMagic)
	test.ExpectEquality(t, w.Len(), fwimage.TrailerLen+fwimage.DigestLen)
	test.ExpectBytes(t, w.Bytes()[fwimage.TrailerLen:],
		mustHex(t, "986052c03af0294df1a522f507de9941720062b624b596ca26efa6ddcde3cd97"))
}

func randomBlocks(rnd *rand.Rand) []blocks.Block {
	blks := make([]blocks.Block, 1+rnd.Intn(8))
	for i := range blks {
		blks[i].Start = rnd.Uint32()
		blks[i].Data = make([]byte, 1+rnd.Intn(300))
		rnd.Read(blks[i].Data)
	}
	return blks
}

func TestLength(t *testing.T) {
	rnd := rand.New(rand.NewSource(2600))
	for i := 0; i < 50; i++ {
		blks := randomBlocks(rnd)

		var expected int64
		for j, b := range blks {
			expected += int64(len(b.Data))
			if j > 0 {
				expected += 8
			}
		}
		expected += 16 + 32

		var w bytes.Buffer
		s, err := fwimage.Build(&w, blks)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, int64(w.Len()), expected, i)
		test.ExpectEquality(t, s.Size, expected, i)
		test.ExpectEquality(t, fwimage.ExpectedLen(blks), expected, i)
	}
}

func TestDigestSelfConsistency(t *testing.T) {
	rnd := rand.New(rand.NewSource(6502))
	for i := 0; i < 50; i++ {
		var w bytes.Buffer
		_, err := fwimage.Build(&w, randomBlocks(rnd))
		test.DemandSuccess(t, err)

		img := w.Bytes()
		d := sha256.Sum256(img[:len(img)-32])
		test.ExpectBytes(t, d[:], img[len(img)-32:], i)
	}
}

func TestChecksum(t *testing.T) {
	test.ExpectEquality(t, fwimage.Checksum(example), byte(0xdb))

	// the first block is never part of the checksum
	alt := []blocks.Block{
		{Start: 0x1000, Data: []byte{0x01, 0x02, 0x03}},
		example[1],
	}
	test.ExpectEquality(t, fwimage.Checksum(alt), fwimage.Checksum(example))
	test.ExpectEquality(t, fwimage.Checksum(example[:1]), fwimage.ChecksumMagic)

	// nor are the block headers
	moved := []blocks.Block{example[0], {Start: 0x4000, Data: example[1].Data}}
	test.ExpectEquality(t, fwimage.Checksum(moved), fwimage.Checksum(example))
}

func TestChecksumPermutation(t *testing.T) {
	rnd := rand.New(rand.NewSource(1977))
	for i := 0; i < 50; i++ {
		blks := randomBlocks(rnd)
		cs := fwimage.Checksum(blks)

		// reordering bytes within a block does not change the checksum
		for _, b := range blks {
			rnd.Shuffle(len(b.Data), func(x, y int) {
				b.Data[x], b.Data[y] = b.Data[y], b.Data[x]
			})
		}
		test.ExpectEquality(t, fwimage.Checksum(blks), cs, i)

		// changing any byte in a block other than the first does
		if len(blks) > 1 {
			b := blks[1+rnd.Intn(len(blks)-1)]
			b.Data[rnd.Intn(len(b.Data))] ^= byte(1 + rnd.Intn(255))
			test.ExpectInequality(t, fwimage.Checksum(blks), cs, i)
		}
	}
}

func TestVerify(t *testing.T) {
	var w bytes.Buffer
	built, err := fwimage.Build(&w, example)
	test.DemandSuccess(t, err)

	s, err := fwimage.Verify(w.Bytes())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s, built)

	// a change anywhere in the image is detected
	img := bytes.Clone(w.Bytes())
	img[1] ^= 0xff
	_, err = fwimage.Verify(img)
	test.ExpectSuccess(t, curated.Is(err, fwimage.ErrDigestMismatch))

	img = bytes.Clone(w.Bytes())
	img[len(img)-1] ^= 0xff
	_, err = fwimage.Verify(img)
	test.ExpectSuccess(t, curated.Is(err, fwimage.ErrDigestMismatch))

	// truncated images are rejected
	_, err = fwimage.Verify(w.Bytes()[:fwimage.TrailerLen+fwimage.DigestLen-1])
	test.ExpectSuccess(t, curated.Is(err, fwimage.ErrTruncated))
	_, err = fwimage.Verify(nil)
	test.ExpectSuccess(t, curated.Is(err, fwimage.ErrTruncated))
}

func TestVerifyPadding(t *testing.T) {
	// an image with a consistent digest but non-zero padding
	body := append(mustHex(t, "deadbeef"), make([]byte, fwimage.TrailerLen)...)
	body[4+3] = 0x01
	d := sha256.Sum256(body)
	img := append(body, d[:]...)

	_, err := fwimage.Verify(img)
	test.ExpectSuccess(t, curated.Is(err, fwimage.ErrPadding))
	test.ExpectEquality(t, err.Error(), "fwimage: non-zero padding at offset 7")
}

type failingWriter struct {
	remaining int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.remaining {
		n := w.remaining
		w.remaining = 0
		return n, errors.New("disk full")
	}
	w.remaining -= len(p)
	return len(p), nil
}

func TestWriteFailure(t *testing.T) {
	// failures at every stage of the build
	for _, limit := range []int{0, 5, 14, 20, 40} {
		_, err := fwimage.Build(&failingWriter{remaining: limit}, example)
		test.ExpectSuccess(t, curated.Is(err, fwimage.WriteFailure), limit)
	}
}
