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
	"github.com/copperview/copperview/chipregs"
	"github.com/copperview/copperview/copper"
	"github.com/copperview/copperview/curated"
	"github.com/copperview/copperview/logger"
	"github.com/copperview/copperview/memory"
	"github.com/copperview/copperview/raster"
)

// Sentinal error messages for the view package.
const (
	OverlappingViewports = "view: overlapping viewports (rows %d to %d and %d to %d)"
	NoRasInfo            = "view: viewport has no rasinfo/bitmap"
	Unaddressable        = "view: bitplane not addressable by display DMA: %v"
	Compilation          = "view: %v"
)

const vpHide = chipregs.VPHide

// mode bits that transfer directly from a viewport's Modes field into its
// BPLCON0 register value. the view.h mode bits were chosen to line up with
// the register, which this mask preserves
const bplcon0Modes = chipregs.Hires | chipregs.HAM | chipregs.DualPF |
	chipregs.ExtraHalfBrite | chipregs.GenlockAudio | chipregs.GenlockVideo | chipregs.Lace

// colour enable bit of BPLCON0. always set by the composer
const bplcon0Color = 0x0200

// the default colour table used when a viewport has no ColorMap. the first
// four entries are the conventional system colours
var defaultColors = []uint16{0x005a, 0x0fff, 0x0000, 0x0f80}

// Composer compiles ViewPort chains and merges them into a View's
// executable frame programs.
//
// The address provider is needed because bitplane pointers are programmed
// into the copper instructions by address: every plane of every composed
// BitMap must have been allocated from the provider.
type Composer struct {
	addr memory.Addresser
}

// NewComposer is the preferred method of initialisation for the Composer
// type.
func NewComposer(addr memory.Addresser) *Composer {
	return &Composer{addr: addr}
}

// MakeVPort compiles the display, sprite and clear chains for one
// viewport. The viewport's existing chains are replaced only on success;
// any failure leaves the viewport exactly as it was.
//
// The vertical component of the compiled wait instructions is frame
// relative to the viewport band; the band's DyOffset is applied as the
// bias of every chain, so a later vertical move of the viewport only needs
// SetVerticalBias, not recompilation.
func (c *Composer) MakeVPort(v *View, vp *ViewPort) error {
	if vp.RasInfo == nil || vp.RasInfo.BitMap == nil {
		return curated.Errorf(NoRasInfo)
	}

	bm := vp.RasInfo.BitMap
	if err := bm.Validate(); err != nil {
		return curated.Errorf(Compilation, err)
	}

	dsp, err := c.compileDisplay(v, vp, bm)
	if err != nil {
		return err
	}

	spr, err := c.compileSprites(vp)
	if err != nil {
		return err
	}

	clr, err := c.compileClear(vp)
	if err != nil {
		return err
	}

	// reposition every chain into the viewport's band
	dsp.SetVerticalBias(vp.DyOffset)
	if spr != nil {
		spr.SetVerticalBias(vp.DyOffset)
	}
	clr.SetVerticalBias(vp.DyOffset)

	vp.DspIns = dsp
	vp.SprIns = spr
	vp.ClrIns = clr

	return nil
}

// compileDisplay builds the chain that programs colours, display control
// and bitplane fetch for one band.
func (c *Composer) compileDisplay(v *View, vp *ViewPort, bm *raster.BitMap) (*copper.Chain, error) {
	dsp := copper.NewChain(0, 0)

	// all programming happens at the top of the band, before the first
	// visible line
	if err := dsp.Wait(0, 0); err != nil {
		return nil, curated.Errorf(Compilation, err)
	}

	if err := c.compileColors(dsp, vp, bm); err != nil {
		return nil, err
	}

	con0 := uint16(bm.Depth)<<12 | vp.Modes&bplcon0Modes | bplcon0Color
	if err := dsp.Move(chipregs.BPLCON0, con0); err != nil {
		return nil, curated.Errorf(Compilation, err)
	}

	if err := c.compileWindow(dsp, vp); err != nil {
		return nil, err
	}

	lace := v.Modes&chipregs.Lace == chipregs.Lace

	// the modulo skips the part of each bitmap row not covered by the
	// viewport width. each field of an interlaced display shows every
	// other bitmap row, so the fetch skips a further full row per line
	modulo := bm.BytesPerRow - raster.RowBytes(vp.DWidth)
	if lace {
		modulo += bm.BytesPerRow
	}
	if err := dsp.Move(chipregs.BPL1MOD, uint16(modulo)); err != nil {
		return nil, curated.Errorf(Compilation, err)
	}
	if err := dsp.Move(chipregs.BPL2MOD, uint16(modulo)); err != nil {
		return nil, curated.Errorf(Compilation, err)
	}

	// plane pointers. scroll offsets move the fetch start within the
	// bitmap
	for p := 0; p < bm.Depth; p++ {
		base, err := c.addr.AddressOf(bm.Planes[p])
		if err != nil {
			return nil, curated.Errorf(Unaddressable, err)
		}
		base += uint32(vp.RasInfo.RyOffset*bm.BytesPerRow + vp.RasInfo.RxOffset/8)

		if lace {
			// the short field starts one bitmap row down. route a
			// pointer pair to each field program
			if err := appendPlanePtr(dsp, p, base, copper.LongFrameOnly); err != nil {
				return nil, err
			}
			if err := appendPlanePtr(dsp, p, base+uint32(bm.BytesPerRow), copper.ShortFrameOnly); err != nil {
				return nil, err
			}
		} else {
			if err := appendPlanePtr(dsp, p, base, copper.BothFrames); err != nil {
				return nil, err
			}
		}
	}

	return dsp, nil
}

// hardware positions of the first visible line and pixel. the display
// window registers count from the start of the vertical and horizontal
// blanking periods
const (
	diwVStart = 0x2c
	diwHStart = 0x81
)

// compileWindow emits the display window and bitplane data fetch registers
// for a band. The values follow the hardware conventions for a lores
// display: the fetch starts at 0x38 and stops eight cycles short of the
// last word of the row.
func (c *Composer) compileWindow(dsp *copper.Chain, vp *ViewPort) error {
	vstart := diwVStart + vp.DyOffset
	hstart := diwHStart + vp.DxOffset
	vstop := vstart + vp.DHeight
	hstop := hstart + vp.DWidth

	if err := dsp.Move(chipregs.DIWSTRT, uint16(vstart&0xff)<<8|uint16(hstart&0xff)); err != nil {
		return curated.Errorf(Compilation, err)
	}
	if err := dsp.Move(chipregs.DIWSTOP, uint16(vstop&0xff)<<8|uint16(hstop&0xff)); err != nil {
		return curated.Errorf(Compilation, err)
	}

	if err := dsp.Move(chipregs.DDFSTRT, 0x0038); err != nil {
		return curated.Errorf(Compilation, err)
	}
	if err := dsp.Move(chipregs.DDFSTOP, uint16(0x0038+8*(vp.DWidth/16-1))); err != nil {
		return curated.Errorf(Compilation, err)
	}

	return nil
}

func appendPlanePtr(dsp *copper.Chain, plane int, addr uint32, tag copper.FrameTag) error {
	hi := copper.MoveIns(chipregs.BPLPTH(plane), uint16(addr>>16))
	hi.Tag = tag
	if err := dsp.Append(hi); err != nil {
		return curated.Errorf(Compilation, err)
	}

	lo := copper.MoveIns(chipregs.BPLPTL(plane), uint16(addr))
	lo.Tag = tag
	if err := dsp.Append(lo); err != nil {
		return curated.Errorf(Compilation, err)
	}

	return nil
}

// compileColors emits the colour register moves for a band. with no
// attached ColorMap a default table sized to the bitmap depth is used.
func (c *Composer) compileColors(dsp *copper.Chain, vp *ViewPort, bm *raster.BitMap) error {
	numPens := 1 << bm.Depth
	if numPens > chipregs.MaxColors {
		numPens = chipregs.MaxColors
	}

	for pen := 0; pen < numPens; pen++ {
		var value uint16

		if vp.ColorMap != nil {
			if pen >= vp.ColorMap.Count() {
				break
			}
			v, err := vp.ColorMap.Lookup(pen)
			if err != nil {
				return curated.Errorf(Compilation, err)
			}
			value = v
		} else {
			if pen < len(defaultColors) {
				value = defaultColors[pen]
			}
		}

		if err := dsp.Move(chipregs.COLOR(pen), value); err != nil {
			return curated.Errorf(Compilation, err)
		}
	}

	return nil
}

// compileSprites builds the sprite DMA chain for a band. Without the
// Sprites mode bit there is no chain at all. The pointers are programmed
// null; a sprite policy layer replaces them through the user chain.
func (c *Composer) compileSprites(vp *ViewPort) (*copper.Chain, error) {
	if vp.Modes&chipregs.Sprites == 0 {
		return nil, nil
	}

	spr := copper.NewChain(0, 0)

	if err := spr.Wait(0, 0); err != nil {
		return nil, curated.Errorf(Compilation, err)
	}

	for s := 0; s < chipregs.NumSprites; s++ {
		if err := spr.Move(chipregs.SPRPTH(s), 0); err != nil {
			return nil, curated.Errorf(Compilation, err)
		}
		if err := spr.Move(chipregs.SPRPTL(s), 0); err != nil {
			return nil, curated.Errorf(Compilation, err)
		}
	}

	return spr, nil
}

// compileClear builds the chain that blanks the gap after a band: once the
// beam passes the band's last line the background colour goes black, so
// the space between bands never shows a stale colour.
func (c *Composer) compileClear(vp *ViewPort) (*copper.Chain, error) {
	clr := copper.NewChain(0, 0)

	if err := clr.Wait(vp.DHeight, 0); err != nil {
		return nil, curated.Errorf(Compilation, err)
	}
	if err := clr.Move(chipregs.COLOR(0), 0x0000); err != nil {
		return nil, curated.Errorf(Compilation, err)
	}

	return clr, nil
}

// MrgCop merges the compiled chains of every visible viewport, in chain
// order, into the View's executable frame programs. For an interlaced
// View both the long and short frame programs are produced; otherwise the
// short frame program is nil.
//
// Viewport bands must not overlap vertically; overlapping bands fail with
// OverlappingViewports before any merging happens. On any failure the
// View's existing programs are left untouched.
func (c *Composer) MrgCop(v *View) error {
	if err := c.checkOverlap(v); err != nil {
		return err
	}

	var chains []*copper.Chain
	visible := 0
	_ = v.each(func(vp *ViewPort) error {
		if vp.Hidden() {
			return nil
		}
		visible++
		chains = append(chains, vp.DspIns, vp.SprIns)

		// user instructions go before the band-end clear so a wait inside
		// the band executes inside the band
		if vp.UCopIns != nil {
			chains = append(chains, vp.UCopIns.Chain())
		}
		chains = append(chains, vp.ClrIns)
		return nil
	})

	if v.Modes&chipregs.Lace == chipregs.Lace {
		long, short, err := copper.MergeDualFrame(chains)
		if err != nil {
			return err
		}
		v.LOFCprList = long
		v.SHFCprList = short
	} else {
		long, err := copper.Merge(chains)
		if err != nil {
			return err
		}
		v.LOFCprList = long
		v.SHFCprList = nil
	}

	logger.Logf("view", "merged %d viewports into %d instructions", visible, v.LOFCprList.Count())

	return nil
}

// checkOverlap validates that the vertical bands of the visible viewports
// do not intersect. Band order within the chain is not checked; order is
// the caller's contract with the merge.
func (c *Composer) checkOverlap(v *View) error {
	type band struct {
		top, bot int
	}
	var bands []band

	return v.each(func(vp *ViewPort) error {
		if vp.Hidden() {
			return nil
		}

		b := band{top: vp.DyOffset, bot: vp.DyOffset + vp.DHeight}
		for _, o := range bands {
			if b.top < o.bot && o.top < b.bot {
				return curated.Errorf(OverlappingViewports, o.top, o.bot-1, b.top, b.bot-1)
			}
		}
		bands = append(bands, b)

		return nil
	})
}
