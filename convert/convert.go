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

package convert

import (
	"bufio"
	"bytes"

	"github.com/spf13/afero"

	"github.com/jetsetilly/hexpack/blocks"
	"github.com/jetsetilly/hexpack/curated"
	"github.com/jetsetilly/hexpack/fwimage"
	"github.com/jetsetilly/hexpack/logger"
)

// Sentinal error patterns. Use with curated.Is() and curated.Has().
const (
	IOFailure   = "io failure: %s: %v"
	ParseError  = "convert: %s: %v"
	ErrMismatch = "convert: image does not match %s: first difference at offset %d"
)

// Converter performs file level conversions.
type Converter struct {
	Fs afero.Fs
}

// NewConverter is the preferred method of initialisation for the Converter
// type. If fs is nil then the operating system's filesystem is used.
func NewConverter(fs afero.Fs) *Converter {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Converter{Fs: fs}
}

// Result of a successful conversion.
type Result struct {
	Blocks  []blocks.Block
	Summary fwimage.Summary
}

// Load the hex file and return the list of blocks.
func (c *Converter) Load(hexPath string) ([]blocks.Block, error) {
	f, err := c.Fs.Open(hexPath)
	if err != nil {
		return nil, curated.Errorf(IOFailure, hexPath, err)
	}
	defer f.Close()

	blks, err := blocks.Assemble(f)
	if err != nil {
		return nil, curated.Errorf(ParseError, hexPath, err)
	}

	return blks, nil
}

// Convert the hex file to an image. Any existing file at outPath is
// overwritten.
func (c *Converter) Convert(hexPath string, outPath string) (Result, error) {
	var r Result
	var err error

	r.Blocks, err = c.Load(hexPath)
	if err != nil {
		return r, err
	}

	out, err := c.Fs.Create(outPath)
	if err != nil {
		return r, curated.Errorf(IOFailure, outPath, err)
	}

	r.Summary, err = write(out, r.Blocks)
	if err != nil {
		if rerr := c.Fs.Remove(outPath); rerr != nil {
			logger.Logf(logger.Allow, "convert", "could not remove partial image: %v", rerr)
		}
		return r, curated.Errorf(IOFailure, outPath, err)
	}

	logger.Logf(logger.Allow, "convert", "%s -> %s: %s", hexPath, outPath, r.Summary)

	return r, nil
}

// write image to file. the file is closed on all paths
func write(out afero.File, blks []blocks.Block) (fwimage.Summary, error) {
	w := bufio.NewWriter(out)

	s, err := fwimage.Build(w, blks)
	if err != nil {
		_ = out.Close()
		return s, err
	}

	if err := w.Flush(); err != nil {
		_ = out.Close()
		return s, err
	}

	if err := out.Close(); err != nil {
		return s, err
	}

	return s, nil
}

// Verify the integrity of an existing image file.
func (c *Converter) Verify(imagePath string) (fwimage.Summary, error) {
	data, err := afero.ReadFile(c.Fs, imagePath)
	if err != nil {
		return fwimage.Summary{}, curated.Errorf(IOFailure, imagePath, err)
	}

	s, err := fwimage.Verify(data)
	if err != nil {
		return s, curated.Errorf(ParseError, imagePath, err)
	}

	return s, nil
}

// Compare an existing image file with the image that would be created from the
// hex file. The image file is also verified.
func (c *Converter) Compare(hexPath string, imagePath string) (fwimage.Summary, error) {
	s, err := c.Verify(imagePath)
	if err != nil {
		return s, err
	}

	blks, err := c.Load(hexPath)
	if err != nil {
		return s, err
	}

	var expected bytes.Buffer
	if _, err := fwimage.Build(&expected, blks); err != nil {
		return s, err
	}

	data, err := afero.ReadFile(c.Fs, imagePath)
	if err != nil {
		return s, curated.Errorf(IOFailure, imagePath, err)
	}

	if d := firstDifference(data, expected.Bytes()); d >= 0 {
		return s, curated.Errorf(ErrMismatch, hexPath, d)
	}

	return s, nil
}

// returns -1 if a and b are equal
func firstDifference(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}
