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

// Package fwimage serialises a list of blocks into a firmware image.
//
// The layout of an image is:
//
//	[block 0 data]
//	[block 1 start:u32-le][block 1 length:u32-le][block 1 data]
//	...
//	[block N start:u32-le][block N length:u32-le][block N data]
//	[0x00 * 15][checksum:u8]
//	[sha256 digest:32 bytes]
//
// The first block has no header. It is the bootstrap region of the image and
// its address is implied by the consumer. Subsequent blocks carry their own
// address and length.
//
// The checksum is an XOR of every data byte of every block except the first,
// seeded with ChecksumMagic. Block headers are never part of the checksum.
//
// The digest covers everything that precedes it, including the checksum
// trailer.
package fwimage
