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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("CONVERT", "INFO", "VERIFY")
//	_, _ = md.Parse()
//
// The first sub-mode in the list is the default. If the first non-flag
// argument does not name a sub-mode then the default sub-mode is selected and
// the argument is left in place for the next call to Parse(). This is how
// hexpack accepts both of these forms:
//
//	hexpack CONVERT firmware.hex firmware.bin
//	hexpack firmware.hex firmware.bin
//
// Once the mode has been decided, NewMode() starts a new set of flags for that
// mode and Parse() is called again:
//
//	switch md.Mode() {
//	case "CONVERT":
//		md.NewMode()
//		log := md.AddBool("log", false, "echo log to stderr")
//		p, err := md.Parse()
//		if err != nil || p != modalflag.ParseContinue {
//			return err
//		}
//		convert(md.RemainingArgs(), *log)
//	}
//
// Sub-mode comparisons are case insensitive.
package modalflag
