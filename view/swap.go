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

package view

import (
	"sync"
	"sync/atomic"

	"github.com/copperview/copperview/copper"
)

// FramePair is the unit of handoff to a display driver: the long frame
// program and, for an interlaced display, the short frame program. Both
// programs are immutable once the pair is constructed.
type FramePair struct {
	Long  *copper.CprList
	Short *copper.CprList

	// whole frame positioning and mode bits copied from the View at the
	// moment of staging
	DxOffset int
	DyOffset int
	Modes    uint16
}

// FrameSwap is the single concurrency point of the display model. A
// display driver reads the active FramePair on every scan pass; the
// compiler side stages a newly merged pair at any time. The two never
// share a mutable buffer: activation is one atomic pointer replacement,
// performed only when the driver signals the vertical retrace, so a
// half-updated program is never observable.
type FrameSwap struct {
	active atomic.Pointer[FramePair]

	crit    sync.Mutex
	pending *FramePair
}

// LoadView stages a View's compiled programs as the pending frame pair.
// The pair does not become active until the next VerticalRetrace() call.
// Staging again before the retrace simply replaces the pending pair.
func (s *FrameSwap) LoadView(v *View) {
	p := &FramePair{
		Long:     v.LOFCprList,
		Short:    v.SHFCprList,
		DxOffset: v.DxOffset,
		DyOffset: v.DyOffset,
		Modes:    v.Modes,
	}

	s.crit.Lock()
	s.pending = p
	s.crit.Unlock()
}

// VerticalRetrace publishes the pending frame pair, if there is one, as
// the active pair. The display driver calls this at the frame boundary,
// between scan passes.
func (s *FrameSwap) VerticalRetrace() {
	s.crit.Lock()
	p := s.pending
	s.pending = nil
	s.crit.Unlock()

	if p != nil {
		s.active.Store(p)
	}
}

// Active returns the frame pair the display driver should execute. It is
// nil until the first staged pair has been published by a retrace.
func (s *FrameSwap) Active() *FramePair {
	return s.active.Load()
}
