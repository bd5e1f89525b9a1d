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

// Package colormap maps logical pen indices to hardware colour values for
// one composition region. A colour value is an RGB4 word: four bits per
// component in the low twelve bits, the form the colour registers take.
//
// A ColorMap can be shared by any number of ViewPorts. Sharing carries a
// documented caller obligation rather than a lock: do not mutate a shared
// ColorMap while a ViewPort referencing it is mid-compile or mid-display.
// The Update() function makes the mutation window explicit; prefer it over
// ad hoc SetEntry() calls when the map is shared.
package colormap

import (
	"github.com/copperview/copperview/curated"
)

// Sentinal error messages for the colormap package.
const (
	IndexOutOfRange = "colormap: pen %d out of range (count of %d)"
)

// ColorMap is a table of hardware colour values indexed by pen number. Pen
// zero is by convention the background colour.
type ColorMap struct {
	Flags uint8
	Type  uint8

	table []uint16

	// per-plane transparency bookkeeping. carried for the genlock path,
	// never interpreted by the composer
	TransparencyBits  []uint16
	TransparencyPlane uint8
}

// GetColorMap allocates a ColorMap with the given number of entries, all
// initialised to colour zero (black).
func GetColorMap(count int) *ColorMap {
	return &ColorMap{
		table: make([]uint16, count),
	}
}

// Count returns the number of entries in the map.
func (cm *ColorMap) Count() int {
	return len(cm.table)
}

// RGB4 packs three 4-bit components into a hardware colour value.
func RGB4(r uint8, g uint8, b uint8) uint16 {
	return uint16(r&0x0f)<<8 | uint16(g&0x0f)<<4 | uint16(b&0x0f)
}

// RGB8 expands a hardware colour value to 8-bit components.
func RGB8(v uint16) (r uint8, g uint8, b uint8) {
	// replicate each nibble into both halves of the byte so that 0x0f
	// expands to 0xff and 0x00 to 0x00
	r = uint8(v>>8&0x0f) * 0x11
	g = uint8(v>>4&0x0f) * 0x11
	b = uint8(v&0x0f) * 0x11
	return r, g, b
}

// SetEntry sets one pen to a hardware colour value. Fails with
// IndexOutOfRange when the pen number is not covered by the map.
func (cm *ColorMap) SetEntry(pen int, value uint16) error {
	if pen < 0 || pen >= len(cm.table) {
		return curated.Errorf(IndexOutOfRange, pen, len(cm.table))
	}
	cm.table[pen] = value
	return nil
}

// SetRGB4 sets one pen from individual 4-bit components.
func (cm *ColorMap) SetRGB4(pen int, r uint8, g uint8, b uint8) error {
	return cm.SetEntry(pen, RGB4(r, g, b))
}

// Lookup returns the hardware colour value for a pen. Fails with
// IndexOutOfRange when the pen number is not covered by the map.
func (cm *ColorMap) Lookup(pen int) (uint16, error) {
	if pen < 0 || pen >= len(cm.table) {
		return 0, curated.Errorf(IndexOutOfRange, pen, len(cm.table))
	}
	return cm.table[pen], nil
}

// LoadRGB4 copies hardware colour values into the map starting at pen
// zero. Values beyond the size of the map fail with IndexOutOfRange and
// nothing is copied.
func (cm *ColorMap) LoadRGB4(values []uint16) error {
	if len(values) > len(cm.table) {
		return curated.Errorf(IndexOutOfRange, len(values)-1, len(cm.table))
	}
	copy(cm.table, values)
	return nil
}

// Update runs fn inside an explicit mutation window. For a shared
// ColorMap this is the pattern callers should use: it marks exactly where
// the obligations described in the package documentation apply.
func (cm *ColorMap) Update(fn func(*ColorMap)) {
	fn(cm)
}
