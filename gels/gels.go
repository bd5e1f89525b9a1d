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

package gels

import (
	"github.com/copperview/copperview/chipregs"
)

// VSprite is one movable display object. VSprites live in the list managed
// by a GelsInfo, ordered by vertical then horizontal position, which is
// the front-to-back order the hardware wants them considered in.
type VSprite struct {
	// list links. maintained by GelsInfo; do not write directly
	next *VSprite
	prev *VSprite

	Flags uint16

	Y int
	X int

	Height int
	Width  int
	Depth  int

	// collision classes: MeMask is what this sprite is, HitMask is what
	// it collides with
	MeMask  uint16
	HitMask uint16

	// sprite image words and the three colours of a hardware sprite
	ImageData []uint16
	SprColors []uint16

	PlanePick  uint8
	PlaneOnOff uint8
}

// Next returns the following VSprite in the list, or nil at the tail
// sentinel.
func (vs *VSprite) Next() *VSprite {
	return vs.next
}

// Prev returns the preceding VSprite in the list, or nil at the head
// sentinel.
func (vs *VSprite) Prev() *VSprite {
	return vs.prev
}

// CollisionHandler is the collision policy callback. The sprite list is
// guaranteed to be consistent and traversable whenever a handler runs.
type CollisionHandler func(a *VSprite, b *VSprite)

// GelsInfo is the bookkeeping structure for the sprite list attached to a
// ViewPort. The list runs between two sentinel VSprites so insertion and
// removal never special-case the ends.
type GelsInfo struct {
	// mask of hardware sprite channels reserved away from this list
	SprRsrvd uint8

	Flags uint8

	head *VSprite
	tail *VSprite

	// per channel, the first line at which the channel is free again
	nextLine [chipregs.NumSprites]int

	// per channel, the colours last loaded for it. a sprite whose
	// colours are already loaded can share the channel's palette
	lastColor [chipregs.NumSprites][]uint16

	collHandler CollisionHandler

	// cached bounding box over all sprites in the list. recomputed on
	// every list mutation
	TopMost    int
	BottomMost int
	LeftMost   int
	RightMost  int
}

// InitGels initialises a GelsInfo with its two sentinel VSprites. The
// sentinels sit at impossible vertical positions so every real sprite
// sorts between them.
func InitGels(head *VSprite, tail *VSprite, gi *GelsInfo) {
	head.Y = -32768
	head.X = -32768
	tail.Y = 32767
	tail.X = 32767

	head.next = tail
	head.prev = nil
	tail.prev = head
	tail.next = nil

	gi.head = head
	gi.tail = tail

	gi.recompute()
}

// FirstVSprite returns the first real sprite in the list, or nil when the
// list is empty.
func (gi *GelsInfo) FirstVSprite() *VSprite {
	if gi.head.next == gi.tail {
		return nil
	}
	return gi.head.next
}

// Count returns the number of real sprites in the list.
func (gi *GelsInfo) Count() int {
	ct := 0
	for vs := gi.head.next; vs != gi.tail; vs = vs.next {
		ct++
	}
	return ct
}

// AddVSprite inserts a sprite into the list at its sorted position:
// vertical position first, horizontal position breaking ties. The cached
// bounding box and channel availability are recomputed.
//
// Precondition: the sprite is not currently in any list.
func (gi *GelsInfo) AddVSprite(vs *VSprite) {
	p := gi.head.next
	for p != gi.tail && (p.Y < vs.Y || (p.Y == vs.Y && p.X <= vs.X)) {
		p = p.next
	}

	// insert before p
	vs.next = p
	vs.prev = p.prev
	p.prev.next = vs
	p.prev = vs

	gi.recompute()
}

// RemVSprite removes a sprite from the list and recomputes the cached
// bounding box and channel availability.
//
// Precondition: the sprite is a member of this list. the sentinels cannot
// be removed.
func (gi *GelsInfo) RemVSprite(vs *VSprite) {
	vs.prev.next = vs.next
	vs.next.prev = vs.prev
	vs.next = nil
	vs.prev = nil

	gi.recompute()
}

// recompute rebuilds the cached bounding box and the per-channel
// availability bookkeeping from the current list.
func (gi *GelsInfo) recompute() {
	gi.TopMost = 0
	gi.BottomMost = 0
	gi.LeftMost = 0
	gi.RightMost = 0

	for ch := range gi.nextLine {
		gi.nextLine[ch] = 0
		gi.lastColor[ch] = nil
	}

	first := true
	for vs := gi.head.next; vs != gi.tail; vs = vs.next {
		if first {
			gi.TopMost = vs.Y
			gi.BottomMost = vs.Y + vs.Height - 1
			gi.LeftMost = vs.X
			gi.RightMost = vs.X + vs.Width - 1
			first = false
		} else {
			if vs.Y < gi.TopMost {
				gi.TopMost = vs.Y
			}
			if vs.Y+vs.Height-1 > gi.BottomMost {
				gi.BottomMost = vs.Y + vs.Height - 1
			}
			if vs.X < gi.LeftMost {
				gi.LeftMost = vs.X
			}
			if vs.X+vs.Width-1 > gi.RightMost {
				gi.RightMost = vs.X + vs.Width - 1
			}
		}

		gi.assignChannel(vs)
	}
}

// assignChannel finds a free hardware channel for the sprite. the list is
// walked in Y order so a greedy first-fit is correct: a channel is free
// once the beam has passed the previous occupant
func (gi *GelsInfo) assignChannel(vs *VSprite) {
	for ch := 0; ch < chipregs.NumSprites; ch++ {
		if gi.SprRsrvd&(1<<ch) != 0 {
			continue
		}
		if gi.nextLine[ch] <= vs.Y {
			gi.nextLine[ch] = vs.Y + vs.Height
			gi.lastColor[ch] = vs.SprColors
			return
		}
	}
	// no channel free on the sprite's first line. the sprite is still in
	// the list; display of it is degraded, not an error
}

// NextLine returns the first free line for a hardware sprite channel.
func (gi *GelsInfo) NextLine(channel int) int {
	return gi.nextLine[channel]
}

// LastColor returns the colours last assigned to a hardware sprite
// channel, or nil if the channel is unused.
func (gi *GelsInfo) LastColor(channel int) []uint16 {
	return gi.lastColor[channel]
}

// SetCollision registers the collision policy callback.
func (gi *GelsInfo) SetCollision(fn CollisionHandler) {
	gi.collHandler = fn
}

// Collide invokes the registered collision handler for a pair of sprites.
// The geometry of the collision is the policy layer's business; the only
// guarantee made here is that the list is consistent when the handler
// runs.
func (gi *GelsInfo) Collide(a *VSprite, b *VSprite) {
	if gi.collHandler == nil {
		return
	}
	gi.collHandler(a, b)
}

// DoCollision walks the list and invokes the handler for every pair of
// sprites whose bounding boxes overlap and whose collision masks select
// each other.
func (gi *GelsInfo) DoCollision() {
	for a := gi.head.next; a != gi.tail; a = a.next {
		for b := a.next; b != gi.tail; b = b.next {
			if b.Y > a.Y+a.Height-1 {
				// the list is Y ordered: nothing further down can
				// overlap a
				break
			}
			if a.HitMask&b.MeMask == 0 && b.HitMask&a.MeMask == 0 {
				continue
			}
			if a.X+a.Width-1 < b.X || b.X+b.Width-1 < a.X {
				continue
			}
			gi.Collide(a, b)
		}
	}
}
