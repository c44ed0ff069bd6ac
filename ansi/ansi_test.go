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

package ansi_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/hexpack/ansi"
	"github.com/jetsetilly/hexpack/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[31m")

	s, err = ansi.ColorBuild("red", "bold", true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91;1m")

	s, err = ansi.ColorBuild("", "", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, ansi.NormalPen)

	_, err = ansi.ColorBuild("ochre", "", false)
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, ansi.DimPens["red"], "\033[31m")
	test.ExpectEquality(t, ansi.Pens["cyan"], "\033[96m")
	test.ExpectEquality(t, ansi.PenStyles["bold"], "\033[1m")
}

func TestIsTerminal(t *testing.T) {
	test.ExpectFailure(t, ansi.IsTerminal(nil))

	// a regular file is never a terminal
	f, err := os.CreateTemp(t.TempDir(), "ansi")
	test.DemandSuccess(t, err)
	defer f.Close()
	test.ExpectFailure(t, ansi.IsTerminal(f))
}
