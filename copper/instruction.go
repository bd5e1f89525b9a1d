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

package copper

import "fmt"

// Opcode selects the operation of an Instruction.
type Opcode int

// List of valid Opcode values. The original encoding overlapped the move
// and wait fields in a union and had a third opcode to continue at the next
// block; block continuation is structural here (CopList.Next) so only the
// two real operations remain.
const (
	MoveOp Opcode = iota
	WaitOp
)

func (op Opcode) String() string {
	switch op {
	case MoveOp:
		return "move"
	case WaitOp:
		return "wait"
	}
	return "illegal"
}

// FrameTag routes an instruction during a dual frame merge. Untagged
// instructions appear in both the long frame and short frame programs.
type FrameTag int

// List of valid FrameTag values.
const (
	BothFrames FrameTag = iota
	LongFrameOnly
	ShortFrameOnly
)

// EndOfFrame is a wait row beyond any real scan position. A wait for this
// row marks the end of a built chain; the merge drops it rather than
// encoding a wait that never completes.
const EndOfFrame = 10000

// Instruction is one operation in a copper program. It is a sum type in
// all but syntax: the Opcode field selects which of the two field groups
// is meaningful.
type Instruction struct {
	Opcode Opcode
	Tag    FrameTag

	// instruction was injected from a user chain
	User bool

	// move operation: write DestData to the chip register at DestAddr
	DestAddr uint16
	DestData uint16

	// wait operation: stall until the beam reaches the position. VPos is
	// frame relative until merge time, when the block's DyOffset is added
	VPos int
	HPos int
}

// MoveIns creates a move instruction.
func MoveIns(addr uint16, data uint16) Instruction {
	return Instruction{Opcode: MoveOp, DestAddr: addr, DestData: data}
}

// WaitIns creates a wait instruction.
func WaitIns(v int, h int) Instruction {
	return Instruction{Opcode: WaitOp, VPos: v, HPos: h}
}

func (ins Instruction) String() string {
	switch ins.Opcode {
	case MoveOp:
		return fmt.Sprintf("move %04x,#%04x", ins.DestAddr, ins.DestData)
	case WaitOp:
		return fmt.Sprintf("wait %d,%d", ins.VPos, ins.HPos)
	}
	return "illegal"
}
