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

// CprList is the flattened, executable form of one or more chains: the
// contiguous words a display driver fetches, plus the instruction count.
// Every instruction is two words. The program is delimited by its count;
// there is no terminator word, and end-of-frame waits in the input chains
// are dropped by the merge.
//
// A CprList is immutable once produced by a merge. Compilation always
// builds a new CprList; it never edits one that a driver might be reading.
type CprList struct {
	words []uint16
	count int
}

// Words returns the encoded program. The slice must be treated as read
// only.
func (c *CprList) Words() []uint16 {
	return c.words
}

// Count returns the number of instructions in the program.
func (c *CprList) Count() int {
	return c.count
}

// IsEmpty returns true for a zero length program. An empty program is
// legal: it is a no-op frame.
func (c *CprList) IsEmpty() bool {
	return c.count == 0
}

// word encoding of an instruction pair. moves have bit 0 of the first word
// clear; waits have it set. the second word of a wait is the position mask
// and is always 0xfffe in programs this package produces
const (
	waitMarker uint16 = 0x0001
	waitSecond uint16 = 0xfffe
)

// encode appends the instruction, biased by the block's DyOffset, to the
// word stream.
func (c *CprList) encode(ins Instruction, bias int) {
	switch ins.Opcode {
	case MoveOp:
		c.words = append(c.words, ins.DestAddr&0x01fe, ins.DestData)

	case WaitOp:
		v := ins.VPos + bias
		if v < 0 {
			v = 0
		}
		if v > 0xff {
			// the encoded row is eight bits. rows beyond that saturate,
			// which is exact for any display of up to 256 rows
			v = 0xff
		}
		c.words = append(c.words, uint16(v)<<8|uint16(ins.HPos)&0x00fe|waitMarker, waitSecond)
	}
	c.count++
}

// DecodedInstruction is the result of decoding one instruction pair from a
// CprList. It is used by display drivers walking the program.
type DecodedInstruction struct {
	Opcode   Opcode
	DestAddr uint16
	DestData uint16
	VPos     int
	HPos     int
}

// Decode returns the instruction at the numbered position in the program.
// The words are self-contained so any driver can do this without reference
// to the chains the program was merged from.
func (c *CprList) Decode(n int) DecodedInstruction {
	w1 := c.words[n*2]
	w2 := c.words[n*2+1]

	if w1&waitMarker == waitMarker {
		return DecodedInstruction{
			Opcode: WaitOp,
			VPos:   int(w1 >> 8),
			HPos:   int(w1 & 0x00fe),
		}
	}

	return DecodedInstruction{
		Opcode:   MoveOp,
		DestAddr: w1,
		DestData: w2,
	}
}
