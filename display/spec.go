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

package display

// Spec defines the geometry and timing of a display standard.
type Spec struct {
	ID string

	// visible raster geometry in lores pixels
	Width  int
	Height int

	RefreshRate float32
}

// The two display standards of the original hardware.
var (
	SpecPAL  = Spec{ID: "PAL", Width: 320, Height: 256, RefreshRate: 50.0}
	SpecNTSC = Spec{ID: "NTSC", Width: 320, Height: 200, RefreshRate: 60.0}
)

// SpecFromID returns the Spec for the named standard. Unrecognised names
// fall back to PAL.
func SpecFromID(id string) Spec {
	switch id {
	case "NTSC", "ntsc":
		return SpecNTSC
	}
	return SpecPAL
}
