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

//go:build !statsview
// +build !statsview

package statsview

import (
	"io"

	"github.com/jetsetilly/hexpack/curated"
)

// NotAvailable is the error pattern returned by Launch() when the statsview
// build tag has not been used.
const NotAvailable = "statsview: not available in this build (use -tags statsview)"

// Launch is a stub when the statsview build tag is not present.
func Launch(_ io.Writer) error {
	return curated.Errorf(NotAvailable)
}

// Available returns false when the statsview build tag is not present.
func Available() bool {
	return false
}
