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

package memory

import (
	"github.com/copperview/copperview/curated"
)

// span describes a free region of the pool arena.
type span struct {
	off  int
	size int
}

// Pool is a bounded arena allocator standing in for chip RAM. It implements
// both the Allocator and Addresser interfaces: the address of a buffer is
// its offset in the arena, which makes the arena directly usable as the
// memory a display driver fetches bitplane data from.
type Pool struct {
	arena []byte

	// free spans in ascending offset order, coalesced on release
	free []span

	// allocations keyed by the address of the first byte of the returned
	// buffer. value is the rounded size actually reserved
	allocs map[*byte]span
}

// NewPool is the preferred method of initialisation for the Pool type. The
// pool size is rounded up to a multiple of BlockSize.
func NewPool(size int) *Pool {
	size = roundUp(size)
	p := &Pool{
		arena:  make([]byte, size),
		free:   []span{{off: 0, size: size}},
		allocs: make(map[*byte]span),
	}
	return p
}

func roundUp(size int) int {
	return (size + BlockSize - 1) &^ (BlockSize - 1)
}

// Allocate returns a buffer of the requested size from the pool arena. The
// Clear and Reverse flags are honoured; the remaining flags are
// requirements the pool satisfies trivially, every byte of the arena being
// DMA addressable.
//
// Fails with OutOfMemory when no free span can hold the rounded size.
func (p *Pool) Allocate(size int, flags Flags) ([]byte, error) {
	if size <= 0 {
		return nil, curated.Errorf(BadSize, size)
	}

	rsize := roundUp(size)

	for i := range p.free {
		// take the highest suitable span when allocating top-down
		f := i
		if flags&Reverse == Reverse {
			f = len(p.free) - 1 - i
		}

		if p.free[f].size < rsize {
			continue
		}

		var off int
		if flags&Reverse == Reverse {
			// carve from the top of the span
			off = p.free[f].off + p.free[f].size - rsize
			p.free[f].size -= rsize
		} else {
			// carve from the bottom of the span
			off = p.free[f].off
			p.free[f].off += rsize
			p.free[f].size -= rsize
		}

		if p.free[f].size == 0 {
			p.free = append(p.free[:f], p.free[f+1:]...)
		}

		buf := p.arena[off : off+size : off+rsize]

		if flags&Clear == Clear {
			for i := range buf {
				buf[i] = 0
			}
		}

		p.allocs[&buf[0]] = span{off: off, size: rsize}

		return buf, nil
	}

	return nil, curated.Errorf(OutOfMemory, size)
}

// Release returns a buffer to the pool.
//
// Precondition: the buffer came from a previous Allocate() call on this
// pool and has not been released already. releasing anything else is
// undefined and must be guarded by the caller.
func (p *Pool) Release(buf []byte) {
	if len(buf) == 0 {
		return
	}

	s, ok := p.allocs[&buf[0]]
	if !ok {
		return
	}
	delete(p.allocs, &buf[0])

	// insert the span in offset order
	i := 0
	for i < len(p.free) && p.free[i].off < s.off {
		i++
	}
	p.free = append(p.free, span{})
	copy(p.free[i+1:], p.free[i:])
	p.free[i] = s

	// coalesce with the following span
	if i+1 < len(p.free) && p.free[i].off+p.free[i].size == p.free[i+1].off {
		p.free[i].size += p.free[i+1].size
		p.free = append(p.free[:i+1], p.free[i+2:]...)
	}

	// coalesce with the preceding span
	if i > 0 && p.free[i-1].off+p.free[i-1].size == p.free[i].off {
		p.free[i-1].size += p.free[i].size
		p.free = append(p.free[:i], p.free[i+1:]...)
	}
}

// AddressOf returns the arena offset of a buffer previously returned by
// Allocate(). Fails with NotResident for any other buffer.
func (p *Pool) AddressOf(buf []byte) (uint32, error) {
	if len(buf) == 0 {
		return 0, curated.Errorf(NotResident)
	}

	s, ok := p.allocs[&buf[0]]
	if !ok {
		return 0, curated.Errorf(NotResident)
	}

	return uint32(s.off), nil
}

// Arena exposes the whole pool as a single byte slice. A display driver
// reads bitplane data through this, using the addresses handed out by
// AddressOf().
func (p *Pool) Arena() []byte {
	return p.arena
}

// Available returns the amount of free memory in the pool. With the
// Largest flag the size of the largest single free chunk is returned
// instead of the total.
func (p *Pool) Available(flags Flags) int {
	total := 0
	largest := 0
	for _, f := range p.free {
		total += f.size
		if f.size > largest {
			largest = f.size
		}
	}

	if flags&Largest == Largest {
		return largest
	}
	return total
}
