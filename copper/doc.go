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

// Package copper models the display coprocessor's instruction lists. The
// coprocessor executes a program in lock-step with the video beam; the
// program is a sequence of just two operations: move an immediate data word
// into a chip register, and wait until the beam reaches a scan position.
//
// Programs are built with the Chain type, a linked sequence of bounded
// CopList blocks. A chain grows block by block and fails only when the
// whole-chain instruction budget is exhausted. A block carries a vertical
// bias (DyOffset) that is added to the row of every wait instruction when
// the chain is flattened, which is how a ViewPort is repositioned without
// recompiling its chains.
//
// Merge() flattens one or more chains, in the caller's order, into a
// CprList: the contiguous word program the display hardware actually
// executes. MergeDualFrame() produces the two programs needed by an
// interlaced display; instructions tagged LongFrameOnly or ShortFrameOnly
// are routed to a single output while untagged instructions appear in both.
//
// The caller's chain order must correspond to top-to-bottom scan order.
// The merge functions validate that wait positions are monotonically
// non-decreasing within each chain, and only validate: nothing is ever
// sorted on the caller's behalf.
package copper
