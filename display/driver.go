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

import (
	"github.com/copperview/copperview/chipregs"
	"github.com/copperview/copperview/copper"
	"github.com/copperview/copperview/view"
)

// number of 16 bit registers in the custom register address space
const numRegs = 0x200 / 2

// Driver executes compiled frame programs against a software register
// file and renders the resulting raster. It is the stand-in for the
// display hardware: the copper stepping through the program as the beam
// descends, and the bitplane DMA fetching pixel data from chip memory.
//
// Execution granularity is one scanline. All instructions waiting for a
// line execute before any pixel of that line is fetched; the horizontal
// beam position of a wait is ignored.
type Driver struct {
	spec  Spec
	swap  *view.FrameSwap
	arena []byte
	rend  Renderer

	regs [numRegs]uint16

	frameNum   int
	shortField bool
}

// NewDriver is the preferred method of initialisation for the Driver
// type. The arena is the chip memory bitplane pointers resolve into; it
// must be the same provider the frame programs were compiled against.
func NewDriver(spec Spec, swap *view.FrameSwap, arena []byte, rend Renderer) *Driver {
	return &Driver{
		spec:  spec,
		swap:  swap,
		arena: arena,
		rend:  rend,
	}
}

// RunFrame renders one complete frame. The frame boundary is where the
// pending program pair becomes active; with nothing yet active the frame
// is rendered black.
//
// For an interlaced program pair the driver alternates between the long
// and short field on successive calls.
func (drv *Driver) RunFrame() error {
	drv.swap.VerticalRetrace()
	pair := drv.swap.Active()

	var prg *copper.CprList
	var dy int

	if pair != nil {
		prg = pair.Long
		if pair.Modes&chipregs.Lace == chipregs.Lace {
			if drv.shortField {
				prg = pair.Short
			}
			drv.shortField = !drv.shortField
		} else {
			drv.shortField = false
		}
		dy = pair.DyOffset
	}

	// the register file does not survive the vertical blank. every frame
	// starts clean and is wholly described by its program
	for i := range drv.regs {
		drv.regs[i] = 0
	}

	if err := drv.rend.NewFrame(drv.frameNum); err != nil {
		return err
	}
	drv.frameNum++

	pc := 0
	for y := 0; y < drv.spec.Height; y++ {
		if err := drv.rend.NewScanline(y); err != nil {
			return err
		}

		// step the copper up to the current line
		for prg != nil && pc < prg.Count() {
			ins := prg.Decode(pc)

			if ins.Opcode == copper.WaitOp {
				if ins.VPos+dy > y {
					break
				}
			} else {
				drv.regs[ins.DestAddr>>1] = ins.DestData
			}

			pc++
		}

		if err := drv.scanline(y); err != nil {
			return err
		}
	}

	return nil
}

// scanline fetches and renders the pixels of one line from the current
// register state.
func (drv *Driver) scanline(y int) error {
	depth := int(drv.regs[chipregs.BPLCON0>>1]>>12) & 0x7

	// fetch the line from every active plane, eight pixels per byte
	var row [chipregs.MaxPlanes][]byte
	fetch := drv.spec.Width / 8

	for p := 0; p < depth; p++ {
		ptr := uint32(drv.regs[chipregs.BPLPTH(p)>>1])<<16 | uint32(drv.regs[chipregs.BPLPTL(p)>>1])
		row[p] = drv.planeRow(ptr, fetch)

		// advance the pointer by the fetch plus the plane's modulo, ready
		// for the next line
		mod := int(int16(drv.regs[chipregs.BPL1MOD>>1]))
		if p%2 == 1 {
			mod = int(int16(drv.regs[chipregs.BPL2MOD>>1]))
		}
		ptr += uint32(fetch + mod)
		drv.regs[chipregs.BPLPTH(p)>>1] = uint16(ptr >> 16)
		drv.regs[chipregs.BPLPTL(p)>>1] = uint16(ptr)
	}

	for x := 0; x < drv.spec.Width; x++ {
		pen := 0
		for p := 0; p < depth; p++ {
			if row[p][x/8]&(0x80>>(x%8)) != 0 {
				pen |= 1 << p
			}
		}

		// pens beyond the colour register file wrap, as the hardware does
		r, g, b := rgb(drv.regs[chipregs.COLOR(pen%chipregs.MaxColors)>>1])
		if err := drv.rend.SetPixel(x, y, r, g, b); err != nil {
			return err
		}
	}

	return nil
}

// planeRow reads one line of plane data from the arena. A pointer running
// off the end of chip memory fetches zeroes rather than faulting.
func (drv *Driver) planeRow(ptr uint32, fetch int) []byte {
	off := int(ptr)
	if off >= 0 && off+fetch <= len(drv.arena) {
		return drv.arena[off : off+fetch]
	}

	row := make([]byte, fetch)
	for i := 0; i < fetch; i++ {
		if off+i >= 0 && off+i < len(drv.arena) {
			row[i] = drv.arena[off+i]
		}
	}
	return row
}

// rgb expands a 12 bit hardware colour to 24 bits, each nibble doubled.
func rgb(v uint16) (uint8, uint8, uint8) {
	return uint8(v>>8&0xf) * 0x11, uint8(v>>4&0xf) * 0x11, uint8(v&0xf) * 0x11
}

// End releases the renderer. The driver must not be used after End().
func (drv *Driver) End() error {
	return drv.rend.EndRendering()
}
