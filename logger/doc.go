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

// Package logger is the central log for hexpack. Log entries are made up of a
// tag and a detail string. The tag is usually the name of the package making
// the entry, for example:
//
//	logger.Logf(logger.Allow, "blocks", "new block at %#08x", addr)
//
// Identical consecutive entries are collapsed into a single entry with a
// repeat count. The number of entries kept is bounded; older entries are
// dropped as new entries are added.
//
// Entries are not printed unless SetEcho() has been called with a non-nil
// io.Writer. The Colorizer type can be used to wrap the echo writer when it is
// connected to a terminal.
package logger
