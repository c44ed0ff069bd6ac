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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies a curated error. Packages that want callers
// to be able to test for a specific failure export the pattern as a string
// constant. For example, the hexfile package exports:
//
//	const MalformedRecord = "malformed record: line %d: %v"
//
// and a caller can then test for it with the Is() function:
//
//	_, err := hexfile.Decode(":0", 1)
//	if curated.Is(err, hexfile.MalformedRecord) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain:
//
//	err := curated.Errorf("convert: %v", hexfileErr)
//	curated.Has(err, hexfile.MalformedRecord) // true
//	curated.Is(err, hexfile.MalformedRecord)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. We can think of the difference as being between
// 'expected' and 'unexpected' errors.
//
// The Error() implementation normalises the error chain by removing duplicate
// adjacent parts. Parts are separated by the sub-string ": " as suggested on
// p239 of "The Go Programming Language" (Donovan, Kernighan). So wrapping an
// error with the same prefix it already carries:
//
//	curated.Errorf("convert: %v", curated.Errorf("convert: no input"))
//
// results in the message:
//
//	convert: no input
//
// Curated errors also implement Unwrap() so that the standard errors.Is() and
// errors.As() functions can see errors placed in the values list (for
// example, an *fs.PathError from the os package).
package curated
