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

package raster_test

import (
	"testing"

	"github.com/copperview/copperview/curated"
	"github.com/copperview/copperview/memory"
	"github.com/copperview/copperview/raster"
	"github.com/copperview/copperview/test"
)

func TestRowBytes(t *testing.T) {
	// rows are word aligned
	test.ExpectEquality(t, raster.RowBytes(320), 40)
	test.ExpectEquality(t, raster.RowBytes(321), 42)
	test.ExpectEquality(t, raster.RowBytes(1), 2)
	test.ExpectEquality(t, raster.RowBytes(16), 2)
	test.ExpectEquality(t, raster.RowBytes(17), 4)
}

func TestInitBitMap(t *testing.T) {
	bm := &raster.BitMap{}
	test.ExpectSuccess(t, raster.InitBitMap(bm, 3, 320, 200))
	test.ExpectEquality(t, bm.BytesPerRow, 40)
	test.ExpectEquality(t, bm.Rows, 200)
	test.ExpectEquality(t, bm.Depth, 3)

	// more planes than the hardware has
	err := raster.InitBitMap(bm, 9, 320, 200)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, raster.TooDeep))

	test.ExpectFailure(t, raster.InitBitMap(bm, 1, 0, 200))
	test.ExpectFailure(t, raster.InitBitMap(bm, 1, 320, -1))
}

func TestAttachPlanes(t *testing.T) {
	pool := memory.NewPool(64 * 1024)

	bm := &raster.BitMap{}
	test.ExpectSuccess(t, raster.InitBitMap(bm, 2, 320, 50))
	test.ExpectSuccess(t, bm.AttachPlanes(pool))
	test.ExpectSuccess(t, bm.Validate())
	test.ExpectEquality(t, len(bm.Planes[0]), 40*50)
	test.ExpectEquality(t, len(bm.Planes[1]), 40*50)
	test.ExpectSuccess(t, bm.Planes[2] == nil)

	bm.ReleasePlanes(pool)
	test.ExpectEquality(t, pool.Available(memory.Any), 64*1024)
}

func TestAttachPlanesRollback(t *testing.T) {
	// room for one plane of this geometry but not two
	pool := memory.NewPool(3000)

	bm := &raster.BitMap{}
	test.ExpectSuccess(t, raster.InitBitMap(bm, 2, 320, 50))
	test.ExpectFailure(t, bm.AttachPlanes(pool))

	// the partial allocation was rolled back
	test.ExpectSuccess(t, bm.Planes[0] == nil)
	test.ExpectEquality(t, pool.Available(memory.Any), 3000)
}

func TestValidateShortPlane(t *testing.T) {
	bm := &raster.BitMap{}
	test.ExpectSuccess(t, raster.InitBitMap(bm, 1, 320, 50))
	bm.Planes[0] = make([]byte, 100)

	err := bm.Validate()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, raster.ShortPlane))
}

func TestPixels(t *testing.T) {
	pool := memory.NewPool(64 * 1024)

	bm := &raster.BitMap{}
	test.ExpectSuccess(t, raster.InitBitMap(bm, 3, 64, 32))
	test.ExpectSuccess(t, bm.AttachPlanes(pool))

	// pen values distribute across the planes and read back combined
	bm.SetPixel(0, 0, 5)
	bm.SetPixel(17, 3, 7)
	bm.SetPixel(63, 31, 1)
	test.ExpectEquality(t, bm.Pixel(0, 0), 5)
	test.ExpectEquality(t, bm.Pixel(17, 3), 7)
	test.ExpectEquality(t, bm.Pixel(63, 31), 1)
	test.ExpectEquality(t, bm.Pixel(1, 0), 0)

	// overwriting clears plane bits the new pen does not set
	bm.SetPixel(0, 0, 2)
	test.ExpectEquality(t, bm.Pixel(0, 0), 2)

	// out of range coordinates are ignored rather than panicking
	bm.SetPixel(-1, 0, 7)
	bm.SetPixel(0, 32, 7)
	test.ExpectEquality(t, bm.Pixel(-1, 0), 0)
	test.ExpectEquality(t, bm.Pixel(0, 32), 0)
}

func TestInitRastPort(t *testing.T) {
	rp := &raster.RastPort{}
	raster.InitRastPort(rp)

	test.ExpectEquality(t, rp.Mask, uint8(0xff))
	test.ExpectEquality(t, rp.FgPen, int8(-1))
	test.ExpectEquality(t, rp.DrawMode, raster.JAM2)
	test.ExpectEquality(t, rp.LinePtrn, uint16(0xffff))
	test.ExpectEquality(t, rp.Minterms[0], uint8(0xca))

	bm := &raster.BitMap{}
	test.ExpectSuccess(t, raster.InitBitMap(bm, 1, 320, 200))
	rp.Bind(bm)
	test.ExpectEquality(t, rp.BitMap, bm)
}
