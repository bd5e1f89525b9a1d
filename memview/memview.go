// This file is part of Copperview.
//
// Copperview is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Copperview is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Copperview.  If not, see <https://www.gnu.org/licenses/>.

// Package memview visualises the composition graph. The View, its chain
// of ViewPorts and everything hanging off them is walked into a graphviz
// dot description, which is a quick way of seeing what a composition
// actually references when a display is not coming out as expected.
package memview

import (
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/copperview/copperview/view"
)

// Dump writes the dot description of the graph rooted at the View.
func Dump(w io.Writer, v *view.View) {
	memviz.Map(w, v)
}

// DumpFile writes the dot description to the named file. Render it with
// the dot tool:
//
//	dot -Tsvg -o view.svg <filename>
func DumpFile(filename string, v *view.View) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	Dump(f, v)

	return nil
}
