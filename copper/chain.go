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

import (
	"github.com/copperview/copperview/chipregs"
	"github.com/copperview/copperview/curated"
)

// Sentinal error messages for the copper package.
const (
	CapacityExceeded      = "copper: capacity exceeded (budget of %d instructions)"
	UnorderedInstructions = "copper: unordered instructions (wait for %d,%d follows wait for %d,%d)"
)

// DefaultBlockSize is the number of instructions in one CopList block when
// no other size is given.
const DefaultBlockSize = 32

// CopList is one bounded block of a copper program. Blocks chain through
// the Next field; the Chain type manages the chaining and is the intended
// way of building a program.
type CopList struct {
	Next *CopList

	// instructions in the block. len(Ins) is the original Count field and
	// cap(Ins) the original MaxCount
	Ins []Instruction

	// DyOffset is added to the row of every wait instruction in this
	// block when the chain is flattened
	DyOffset int
}

// Count returns the number of instructions in this block alone.
func (l *CopList) Count() int {
	return len(l.Ins)
}

// Chain is a growable copper program: a linked list of CopList blocks with
// an append cursor and a whole-chain instruction budget.
type Chain struct {
	first *CopList
	cur   *CopList

	blockSize int
	budget    int
	count     int
}

// NewChain is the preferred method of initialisation for the Chain type.
// Non-positive arguments select DefaultBlockSize and the hardware frame
// budget respectively.
func NewChain(blockSize int, budget int) *Chain {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	if budget <= 0 {
		budget = chipregs.MaxInstructionsPerFrame
	}
	return &Chain{
		blockSize: blockSize,
		budget:    budget,
	}
}

// Append adds an instruction to the chain, growing a new block when the
// current block is full. Fails with CapacityExceeded when the whole-chain
// budget is exhausted; the size of an individual block is never the reason
// for failure.
func (c *Chain) Append(ins Instruction) error {
	if c.count >= c.budget {
		return curated.Errorf(CapacityExceeded, c.budget)
	}

	if c.first == nil {
		c.first = &CopList{Ins: make([]Instruction, 0, c.blockSize)}
		c.cur = c.first
	}

	if len(c.cur.Ins) == cap(c.cur.Ins) {
		n := &CopList{
			Ins: make([]Instruction, 0, c.blockSize),

			// a new block continues at the bias of the block before it
			DyOffset: c.cur.DyOffset,
		}
		c.cur.Next = n
		c.cur = n
	}

	c.cur.Ins = append(c.cur.Ins, ins)
	c.count++

	return nil
}

// Move appends a move instruction for both frames.
func (c *Chain) Move(addr uint16, data uint16) error {
	return c.Append(MoveIns(addr, data))
}

// Wait appends a wait instruction for both frames.
func (c *Chain) Wait(v int, h int) error {
	return c.Append(WaitIns(v, h))
}

// Len returns the number of instructions across all blocks of the chain.
func (c *Chain) Len() int {
	return c.count
}

// Budget returns the whole-chain instruction budget.
func (c *Chain) Budget() int {
	return c.budget
}

// First returns the head block of the chain, or nil for an empty chain.
func (c *Chain) First() *CopList {
	return c.first
}

// SetVerticalBias adds delta to the vertical bias of every block in the
// chain. The bias is applied to wait rows at merge time, so a compiled
// chain can be repositioned without rebuilding it.
func (c *Chain) SetVerticalBias(delta int) {
	for l := c.first; l != nil; l = l.Next {
		l.DyOffset += delta
	}
}

// each calls fn for every instruction in the chain along with the bias of
// the block holding it.
func (c *Chain) each(fn func(ins Instruction, bias int) error) error {
	for l := c.first; l != nil; l = l.Next {
		for i := range l.Ins {
			if err := fn(l.Ins[i], l.DyOffset); err != nil {
				return err
			}
		}
	}
	return nil
}
