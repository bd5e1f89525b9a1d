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
	"github.com/copperview/copperview/curated"
)

// merger holds the options for one merge operation.
type merger struct {
	validate bool
}

// MergeOption modifies how the merge functions work.
type MergeOption func(*merger)

// WithoutValidation disables the wait-order check. The caller is taking
// responsibility for scan order.
func WithoutValidation() MergeOption {
	return func(m *merger) {
		m.validate = false
	}
}

// validateChain checks that the wait positions in a chain, after each
// block's bias is applied, never move backwards. The position pair is
// compared row first. Nothing is reordered; an out of order chain is a
// caller error.
func validateChain(c *Chain) error {
	lastV := -1
	lastH := -1

	return c.each(func(ins Instruction, bias int) error {
		if ins.Opcode != WaitOp {
			return nil
		}

		v := ins.VPos + bias
		if v >= EndOfFrame {
			// end-of-frame waits are dropped by the merge and so have no
			// place in the order
			return nil
		}
		if v < lastV || (v == lastV && ins.HPos < lastH) {
			return curated.Errorf(UnorderedInstructions, v, ins.HPos, lastV, lastH)
		}
		lastV = v
		lastH = ins.HPos

		return nil
	})
}

// Merge flattens the chains, in the order given, into a single executable
// program. The order must correspond to top-to-bottom scan order; wait
// order is validated per chain unless WithoutValidation is used. Frame
// tags are ignored; use MergeDualFrame() for an interlaced display.
//
// Nil chains are skipped. Merging no chains, or only empty chains, yields
// an empty program.
func Merge(chains []*Chain, opts ...MergeOption) (*CprList, error) {
	m := merger{validate: true}
	for _, opt := range opts {
		opt(&m)
	}

	out := &CprList{}

	for _, c := range chains {
		if c == nil {
			continue
		}

		if m.validate {
			if err := validateChain(c); err != nil {
				return nil, err
			}
		}

		_ = c.each(func(ins Instruction, bias int) error {
			if isTerminator(ins, bias) {
				return nil
			}
			out.encode(ins, bias)
			return nil
		})
	}

	return out, nil
}

// isTerminator identifies an end-of-frame wait. A terminator marks where
// building of a chain stopped, nothing more: the merged program is
// delimited by its instruction count, so merging a terminator verbatim
// would plant a false end mid-program and stop a driver before the chains
// merged after it.
func isTerminator(ins Instruction, bias int) bool {
	return ins.Opcode == WaitOp && ins.VPos+bias >= EndOfFrame
}

// MergeDualFrame is like Merge() but produces the two programs of an
// interlaced display. An instruction tagged LongFrameOnly appears only in
// the first returned program, ShortFrameOnly only in the second, and an
// untagged instruction in both.
func MergeDualFrame(chains []*Chain, opts ...MergeOption) (*CprList, *CprList, error) {
	m := merger{validate: true}
	for _, opt := range opts {
		opt(&m)
	}

	long := &CprList{}
	short := &CprList{}

	for _, c := range chains {
		if c == nil {
			continue
		}

		if m.validate {
			if err := validateChain(c); err != nil {
				return nil, nil, err
			}
		}

		_ = c.each(func(ins Instruction, bias int) error {
			if isTerminator(ins, bias) {
				return nil
			}
			switch ins.Tag {
			case LongFrameOnly:
				long.encode(ins, bias)
			case ShortFrameOnly:
				short.encode(ins, bias)
			default:
				long.encode(ins, bias)
				short.encode(ins, bias)
			}
			return nil
		})
	}

	return long, short, nil
}
