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

package view_test

import (
	"testing"

	"github.com/copperview/copperview/chipregs"
	"github.com/copperview/copperview/colormap"
	"github.com/copperview/copperview/copper"
	"github.com/copperview/copperview/curated"
	"github.com/copperview/copperview/memory"
	"github.com/copperview/copperview/raster"
	"github.com/copperview/copperview/test"
	"github.com/copperview/copperview/view"
)

func newBitMap(t *testing.T, pool *memory.Pool, depth int, width int, height int) *raster.BitMap {
	t.Helper()

	bm := &raster.BitMap{}
	if err := raster.InitBitMap(bm, depth, width, height); err != nil {
		t.Fatal(err)
	}
	if err := bm.AttachPlanes(pool); err != nil {
		t.Fatal(err)
	}
	return bm
}

func newViewPort(t *testing.T, pool *memory.Pool, top int, height int) *view.ViewPort {
	t.Helper()

	return &view.ViewPort{
		DWidth:   320,
		DHeight:  height,
		DyOffset: top,
		RasInfo:  &raster.RasInfo{BitMap: newBitMap(t, pool, 1, 320, height)},
	}
}

func TestEmptyView(t *testing.T) {
	pool := memory.NewPool(256 * 1024)
	cmp := view.NewComposer(pool)

	// a view with no viewports compiles to a no-op frame
	v := &view.View{}
	test.ExpectSuccess(t, cmp.MrgCop(v))
	test.ExpectSuccess(t, v.LOFCprList.IsEmpty())
	test.ExpectSuccess(t, v.SHFCprList == nil)

	// the same but interlaced: both programs exist and both are empty
	v = &view.View{Modes: chipregs.Lace}
	test.ExpectSuccess(t, cmp.MrgCop(v))
	test.ExpectSuccess(t, v.LOFCprList.IsEmpty())
	test.ExpectSuccess(t, v.SHFCprList.IsEmpty())
}

func TestBandedComposition(t *testing.T) {
	pool := memory.NewPool(256 * 1024)
	cmp := view.NewComposer(pool)

	v := &view.View{}
	a := newViewPort(t, pool, 0, 100)
	b := newViewPort(t, pool, 100, 100)
	v.AddViewPort(a)
	v.AddViewPort(b)

	test.ExpectSuccess(t, cmp.MakeVPort(v, a))
	test.ExpectSuccess(t, cmp.MakeVPort(v, b))
	test.ExpectSuccess(t, cmp.MrgCop(v))

	// each depth-1 viewport compiles to a display chain of 12 (wait, two
	// colours, control, display window and fetch, two modulos, one
	// pointer pair) and a clear chain of 2
	test.ExpectEquality(t, a.DspIns.Len(), 12)
	test.ExpectEquality(t, a.ClrIns.Len(), 2)
	test.ExpectEquality(t, v.LOFCprList.Count(), 28)

	// band order means the second viewport's programming waits for row
	// 100 onwards
	ins := v.LOFCprList.Decode(14)
	test.ExpectEquality(t, ins.Opcode, copper.WaitOp)
	test.ExpectEquality(t, ins.VPos, 100)
}

func TestOverlappingViewports(t *testing.T) {
	pool := memory.NewPool(256 * 1024)
	cmp := view.NewComposer(pool)

	v := &view.View{}
	a := newViewPort(t, pool, 0, 100)
	b := newViewPort(t, pool, 50, 100)
	v.AddViewPort(a)
	v.AddViewPort(b)

	test.ExpectSuccess(t, cmp.MakeVPort(v, a))
	test.ExpectSuccess(t, cmp.MakeVPort(v, b))

	// bands [0,100) and [50,150) intersect
	err := cmp.MrgCop(v)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, view.OverlappingViewports))

	// the failed merge left no programs behind
	test.ExpectSuccess(t, v.LOFCprList == nil)
}

func TestFailedMergeKeepsOldProgram(t *testing.T) {
	pool := memory.NewPool(256 * 1024)
	cmp := view.NewComposer(pool)

	v := &view.View{}
	a := newViewPort(t, pool, 0, 100)
	v.AddViewPort(a)
	test.ExpectSuccess(t, cmp.MakeVPort(v, a))
	test.ExpectSuccess(t, cmp.MrgCop(v))

	good := v.LOFCprList
	test.ExpectSuccess(t, good != nil)

	// introduce an overlapping band and fail a recompile
	b := newViewPort(t, pool, 50, 100)
	v.AddViewPort(b)
	test.ExpectSuccess(t, cmp.MakeVPort(v, b))
	test.ExpectFailure(t, cmp.MrgCop(v))

	// the previously merged program is untouched
	test.ExpectEquality(t, v.LOFCprList, good)
}

func TestHiddenViewPort(t *testing.T) {
	pool := memory.NewPool(256 * 1024)
	cmp := view.NewComposer(pool)

	v := &view.View{}
	a := newViewPort(t, pool, 0, 100)
	b := newViewPort(t, pool, 100, 100)
	b.Modes |= chipregs.VPHide
	v.AddViewPort(a)
	v.AddViewPort(b)

	test.ExpectSuccess(t, cmp.MakeVPort(v, a))
	test.ExpectSuccess(t, cmp.MakeVPort(v, b))
	test.ExpectSuccess(t, cmp.MrgCop(v))

	// only the visible viewport contributes instructions
	test.ExpectEquality(t, v.LOFCprList.Count(), 14)
}

func TestDefaultColorTable(t *testing.T) {
	pool := memory.NewPool(256 * 1024)
	cmp := view.NewComposer(pool)

	v := &view.View{}
	a := newViewPort(t, pool, 0, 100)
	v.AddViewPort(a)
	test.ExpectSuccess(t, cmp.MakeVPort(v, a))
	test.ExpectSuccess(t, cmp.MrgCop(v))

	// with no ColorMap the composer supplies the conventional system
	// colours. instruction 0 is the band wait, 1 and 2 the two pens of a
	// depth-1 display
	ins := v.LOFCprList.Decode(1)
	test.ExpectEquality(t, ins.DestAddr, chipregs.COLOR(0))
	test.ExpectEquality(t, ins.DestData, uint16(0x005a))
	ins = v.LOFCprList.Decode(2)
	test.ExpectEquality(t, ins.DestData, uint16(0x0fff))
}

func TestAttachedColorMap(t *testing.T) {
	pool := memory.NewPool(256 * 1024)
	cmp := view.NewComposer(pool)

	cm := colormap.GetColorMap(2)
	test.ExpectSuccess(t, cm.SetEntry(0, 0x0123))
	test.ExpectSuccess(t, cm.SetEntry(1, 0x0456))

	v := &view.View{}
	a := newViewPort(t, pool, 0, 100)
	a.ColorMap = cm
	v.AddViewPort(a)
	test.ExpectSuccess(t, cmp.MakeVPort(v, a))
	test.ExpectSuccess(t, cmp.MrgCop(v))

	test.ExpectEquality(t, v.LOFCprList.Decode(1).DestData, uint16(0x0123))
	test.ExpectEquality(t, v.LOFCprList.Decode(2).DestData, uint16(0x0456))
}

func TestInterlace(t *testing.T) {
	pool := memory.NewPool(256 * 1024)
	cmp := view.NewComposer(pool)

	v := &view.View{Modes: chipregs.Lace}
	a := newViewPort(t, pool, 0, 200)
	v.AddViewPort(a)

	test.ExpectSuccess(t, cmp.MakeVPort(v, a))
	test.ExpectSuccess(t, cmp.MrgCop(v))

	// both field programs exist and are the same length: the plane
	// pointer pair is routed once to each
	test.ExpectSuccess(t, v.SHFCprList != nil)
	test.ExpectEquality(t, v.LOFCprList.Count(), v.SHFCprList.Count())

	// the short field fetches one bitmap row further down
	bm := a.RasInfo.BitMap
	n := v.LOFCprList.Count()
	lofPtr := v.LOFCprList.Decode(n - 3)
	shfPtr := v.SHFCprList.Decode(n - 3)
	test.ExpectEquality(t, lofPtr.DestAddr, shfPtr.DestAddr)
	test.ExpectEquality(t, shfPtr.DestData-lofPtr.DestData, uint16(bm.BytesPerRow))
}

func TestUserChainInjection(t *testing.T) {
	pool := memory.NewPool(256 * 1024)
	cmp := view.NewComposer(pool)

	v := &view.View{}
	a := newViewPort(t, pool, 0, 100)
	a.UCopIns = copper.NewUserChain()
	test.ExpectSuccess(t, a.UCopIns.CWait(50, 0))
	test.ExpectSuccess(t, a.UCopIns.CMove(chipregs.COLOR(0), 0x0f00))
	test.ExpectSuccess(t, a.UCopIns.CEnd())
	v.AddViewPort(a)

	test.ExpectSuccess(t, cmp.MakeVPort(v, a))
	test.ExpectSuccess(t, cmp.MrgCop(v))

	// user instructions merge after the display chain but before the
	// band-end clear. the user program's terminator is dropped, so the
	// merge is 12 display, 2 user and 2 clear instructions
	test.ExpectEquality(t, v.LOFCprList.Count(), 16)
	ins := v.LOFCprList.Decode(12)
	test.ExpectEquality(t, ins.Opcode, copper.WaitOp)
	test.ExpectEquality(t, ins.VPos, 50)

	// nothing in the merged program encodes as a wait the beam cannot
	// reach
	for i := 0; i < v.LOFCprList.Count(); i++ {
		d := v.LOFCprList.Decode(i)
		if d.Opcode == copper.WaitOp {
			test.ExpectInequality(t, d.VPos, 0xff)
		}
	}
}

func TestMakeVPortFailure(t *testing.T) {
	pool := memory.NewPool(256 * 1024)
	cmp := view.NewComposer(pool)

	v := &view.View{}
	vp := &view.ViewPort{DWidth: 320, DHeight: 100}

	// no rasinfo at all
	err := cmp.MakeVPort(v, vp)
	test.ExpectSuccess(t, curated.Is(err, view.NoRasInfo))

	// a plane that did not come from the address provider
	bm := &raster.BitMap{}
	test.ExpectSuccess(t, raster.InitBitMap(bm, 1, 320, 100))
	bm.Planes[0] = make([]byte, bm.BytesPerRow*bm.Rows)
	vp.RasInfo = &raster.RasInfo{BitMap: bm}

	err = cmp.MakeVPort(v, vp)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, view.Unaddressable))

	// failure never left partial chains on the viewport
	test.ExpectSuccess(t, vp.DspIns == nil)
	test.ExpectSuccess(t, vp.ClrIns == nil)
}

func TestFrameSwap(t *testing.T) {
	pool := memory.NewPool(256 * 1024)
	cmp := view.NewComposer(pool)

	v := &view.View{}
	a := newViewPort(t, pool, 0, 100)
	v.AddViewPort(a)
	test.ExpectSuccess(t, cmp.MakeVPort(v, a))
	test.ExpectSuccess(t, cmp.MrgCop(v))

	s := &view.FrameSwap{}
	test.ExpectSuccess(t, s.Active() == nil)

	// staging does not activate
	s.LoadView(v)
	test.ExpectSuccess(t, s.Active() == nil)

	// the retrace does
	s.VerticalRetrace()
	active := s.Active()
	test.ExpectSuccess(t, active != nil)
	test.ExpectEquality(t, active.Long, v.LOFCprList)

	// a retrace with nothing pending changes nothing
	s.VerticalRetrace()
	test.ExpectEquality(t, s.Active(), active)
}
