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

// Package chipregs names the custom chip registers that copper programs
// write to and the display mode bits carried by Views and ViewPorts. The
// addresses are word registers in the custom chip address space; a copper
// move instruction pairs one of these with an immediate data word.
package chipregs

// Register is the address of a custom chip word register.
type Register = uint16

// Display window and data fetch registers.
const (
	DIWSTRT Register = 0x08e
	DIWSTOP Register = 0x090
	DDFSTRT Register = 0x092
	DDFSTOP Register = 0x094
)

// Bitplane control and modulo registers. BPL1MOD is the row modulo for the
// odd numbered planes, BPL2MOD for the even numbered.
const (
	BPLCON0 Register = 0x100
	BPLCON1 Register = 0x102
	BPLCON2 Register = 0x104
	BPL1MOD Register = 0x108
	BPL2MOD Register = 0x10a
)

// base addresses for the register blocks addressed through the functions
// below
const (
	bplPtrBase Register = 0x0e0
	sprPtrBase Register = 0x120
	colorBase  Register = 0x180
)

// NumSprites is the number of hardware sprite channels.
const NumSprites = 8

// MaxPlanes is the maximum bitplane depth the display can be programmed
// with.
const MaxPlanes = 8

// MaxColors is the number of colour registers.
const MaxColors = 32

// BPLPTH returns the high pointer register for the numbered bitplane.
// Planes are numbered from zero.
func BPLPTH(plane int) Register {
	return bplPtrBase + Register(plane)*4
}

// BPLPTL returns the low pointer register for the numbered bitplane.
func BPLPTL(plane int) Register {
	return bplPtrBase + Register(plane)*4 + 2
}

// SPRPTH returns the high pointer register for the numbered sprite channel.
func SPRPTH(sprite int) Register {
	return sprPtrBase + Register(sprite)*4
}

// SPRPTL returns the low pointer register for the numbered sprite channel.
func SPRPTL(sprite int) Register {
	return sprPtrBase + Register(sprite)*4 + 2
}

// COLOR returns the colour register for the numbered pen.
func COLOR(pen int) Register {
	return colorBase + Register(pen)*2
}

// Mode bits for View and ViewPort Modes fields.
const (
	GenlockVideo   uint16 = 0x0002
	Lace           uint16 = 0x0004
	SuperHires     uint16 = 0x0020
	PFBA           uint16 = 0x0040
	ExtraHalfBrite uint16 = 0x0080
	GenlockAudio   uint16 = 0x0100
	DualPF         uint16 = 0x0400
	HAM            uint16 = 0x0800
	ExtendedMode   uint16 = 0x1000
	VPHide         uint16 = 0x2000
	Sprites        uint16 = 0x4000
	Hires          uint16 = 0x8000
)

// MaxInstructionsPerFrame is the practical limit on the number of copper
// instructions that can execute in one frame. It is the default budget for
// a copper chain.
const MaxInstructionsPerFrame = 4096
