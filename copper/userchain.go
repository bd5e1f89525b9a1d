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

// UserChain is a caller supplied copper program attached to a ViewPort. It
// is merged after the compiled chains for that ViewPort, letting a caller
// inject register writes the composer knows nothing about.
//
// UserChains can themselves be chained through the Next field. The head
// block of the underlying chain never changes once the first instruction
// has been added, so a re-entrant caller can keep a reference to the
// history of the program while continuing to append at the cursor.
type UserChain struct {
	Next *UserChain

	chain *Chain
}

// NewUserChain is the preferred method of initialisation for the UserChain
// type.
func NewUserChain() *UserChain {
	return &UserChain{
		chain: NewChain(0, 0),
	}
}

// CWait appends a wait instruction to the user program.
func (u *UserChain) CWait(v int, h int) error {
	ins := WaitIns(v, h)
	ins.User = true
	return u.chain.Append(ins)
}

// CMove appends a move instruction to the user program.
func (u *UserChain) CMove(addr uint16, data uint16) error {
	ins := MoveIns(addr, data)
	ins.User = true
	return u.chain.Append(ins)
}

// CEnd terminates the user program with a wait for a position the beam
// never reaches. The terminator marks the end of the built program; it is
// dropped by the merge, which delimits its output by instruction count.
func (u *UserChain) CEnd() error {
	ins := WaitIns(EndOfFrame, 0)
	ins.User = true
	return u.chain.Append(ins)
}

// Chain returns the underlying chain for merging.
func (u *UserChain) Chain() *Chain {
	return u.chain
}

// FirstCopList returns the immutable head block of the user program, or
// nil if nothing has been added yet.
func (u *UserChain) FirstCopList() *CopList {
	return u.chain.First()
}
