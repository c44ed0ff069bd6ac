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

// Package ansi defines ANSI control codes for the pens used when echoing
// the log to a terminal. The IsTerminal() function says whether a file is
// connected to a terminal and therefore whether the pens should be used at all.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
)

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// ansi attribute.
const (
	attrBold      = 1
	attrUnderline = 4
)

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

var colors = []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	for _, c := range colors {
		Pens[c], _ = ColorBuild(c, "", true)
		DimPens[c], _ = ColorBuild(c, "", false)
	}

	PenStyles["bold"], _ = ColorBuild("", "bold", false)
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// color and attribute.
func ColorBuild(pen, attribute string, brightPen bool) (string, error) {
	var codes []string

	if pen != "" {
		penType := targetPen
		if brightPen {
			penType = targetBrightPen
		}

		var col int
		switch strings.ToUpper(pen) {
		case "RED":
			col = colRed
		case "GREEN":
			col = colGreen
		case "YELLOW":
			col = colYellow
		case "BLUE":
			col = colBlue
		case "MAGENTA":
			col = colMagenta
		case "CYAN":
			col = colCyan
		case "WHITE":
			col = colWhite
		default:
			return "", fmt.Errorf("ansi: unknown pen (%s)", pen)
		}
		codes = append(codes, fmt.Sprintf("%d%d", penType, col))
	}

	switch strings.ToUpper(attribute) {
	case "":
	case "BOLD":
		codes = append(codes, fmt.Sprintf("%d", attrBold))
	case "UNDERLINE":
		codes = append(codes, fmt.Sprintf("%d", attrUnderline))
	default:
		return "", fmt.Errorf("ansi: unknown attribute (%s)", attribute)
	}

	if len(codes) == 0 {
		return NormalPen, nil
	}

	return fmt.Sprintf("\033[%sm", strings.Join(codes, ";")), nil
}
