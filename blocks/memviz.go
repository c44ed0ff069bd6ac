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

package blocks

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Visualise writes a Graphviz (dot) description of the block list to the
// io.Writer. Useful for inspecting how a hex file has been split into blocks:
//
//	dot -Tsvg blocks.dot > blocks.svg
func Visualise(w io.Writer, blks []Block) {
	memviz.Map(w, &blks)
}
