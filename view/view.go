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

package view

import (
	"github.com/copperview/copperview/colormap"
	"github.com/copperview/copperview/copper"
	"github.com/copperview/copperview/raster"
)

// ViewPort is one rectangular composition region of a frame: a vertical
// band with its own bitplanes, colours and copper programming. ViewPorts
// chain through the Next field in top-to-bottom scan order.
type ViewPort struct {
	Next *ViewPort

	// colours for this viewport. nil means the composer supplies the
	// default table
	ColorMap *colormap.ColorMap

	// the three compiled instruction chains. filled in by MakeVPort()
	DspIns *copper.Chain
	SprIns *copper.Chain
	ClrIns *copper.Chain

	// caller supplied instructions, merged after the compiled chains
	UCopIns *copper.UserChain

	// geometry of the band within the frame
	DWidth   int
	DHeight  int
	DxOffset int
	DyOffset int

	// display mode bits, chipregs.Lace and friends
	Modes uint16

	SpritePriorities uint8
	ExtendedModes    uint8

	// the bitmap (or, for dual playfield, bitmaps) composed into this
	// band
	RasInfo *raster.RasInfo
}

// Hidden returns true when the viewport is flagged out of the composition.
func (vp *ViewPort) Hidden() bool {
	return vp.Modes&vpHide == vpHide
}

// View is the full-frame aggregate: the chain of ViewPorts plus the two
// executable programs produced by MrgCop(). The short frame program is
// populated only for an interlaced View; otherwise only the long frame
// program is meaningful.
type View struct {
	ViewPorts *ViewPort

	LOFCprList *copper.CprList
	SHFCprList *copper.CprList

	// whole-frame positioning adjustments, consumed by the display
	// driver rather than the merge
	DxOffset int
	DyOffset int

	Modes uint16
}

// AddViewPort appends a viewport to the end of the chain. Chain order is
// scan order; the caller appends top band first.
func (v *View) AddViewPort(vp *ViewPort) {
	if v.ViewPorts == nil {
		v.ViewPorts = vp
		return
	}

	p := v.ViewPorts
	for p.Next != nil {
		p = p.Next
	}
	p.Next = vp
}

// each calls fn for every viewport in chain order.
func (v *View) each(fn func(*ViewPort) error) error {
	for vp := v.ViewPorts; vp != nil; vp = vp.Next {
		if err := fn(vp); err != nil {
			return err
		}
	}
	return nil
}
