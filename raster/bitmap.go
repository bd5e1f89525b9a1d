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

package raster

import (
	"github.com/copperview/copperview/chipregs"
	"github.com/copperview/copperview/curated"
	"github.com/copperview/copperview/memory"
)

// Sentinal error messages for the raster package.
const (
	TooDeep       = "raster: bitmap depth of %d exceeds %d planes"
	ShortPlane    = "raster: plane %d is %d bytes, need %d"
	BadDimensions = "raster: bad raster dimensions (%dx%d)"
)

// BitMap describes a bitplane pixel surface: up to eight independently
// addressed monochrome planes of identical geometry. The colour index of a
// pixel is the combination of the corresponding bit from every plane, low
// plane first.
type BitMap struct {
	BytesPerRow int
	Rows        int
	Flags       uint8
	Depth       int
	Planes      [chipregs.MaxPlanes][]byte
}

// RowBytes returns the word aligned row size for a raster width in pixels.
func RowBytes(width int) int {
	return ((width + 15) / 16) * 2
}

// InitBitMap initialises the geometry of a BitMap. The plane buffers are
// attached separately, either directly or with AttachPlanes(). Fails with
// TooDeep for a depth beyond the plane limit.
func InitBitMap(bm *BitMap, depth int, width int, height int) error {
	if depth < 0 || depth > chipregs.MaxPlanes {
		return curated.Errorf(TooDeep, depth, chipregs.MaxPlanes)
	}
	if width <= 0 || height <= 0 {
		return curated.Errorf(BadDimensions, width, height)
	}

	bm.BytesPerRow = RowBytes(width)
	bm.Rows = height
	bm.Depth = depth

	return nil
}

// AllocRaster allocates one plane buffer for the given raster geometry.
// The buffer comes from the provider as chip addressable, zeroed memory.
func AllocRaster(alloc memory.Allocator, width int, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(BadDimensions, width, height)
	}
	return alloc.Allocate(RowBytes(width)*height, memory.Chip|memory.Clear)
}

// FreeRaster returns a plane buffer to the provider.
func FreeRaster(alloc memory.Allocator, plane []byte) {
	alloc.Release(plane)
}

// AttachPlanes allocates and attaches plane buffers for every plane of the
// BitMap's depth. On failure nothing is attached and already allocated
// planes are returned to the provider.
func (bm *BitMap) AttachPlanes(alloc memory.Allocator) error {
	var planes [chipregs.MaxPlanes][]byte

	for p := 0; p < bm.Depth; p++ {
		buf, err := alloc.Allocate(bm.BytesPerRow*bm.Rows, memory.Chip|memory.Clear)
		if err != nil {
			for q := 0; q < p; q++ {
				alloc.Release(planes[q])
			}
			return curated.Errorf("bitmap: %v", err)
		}
		planes[p] = buf
	}

	bm.Planes = planes

	return nil
}

// ReleasePlanes returns every attached plane to the provider.
func (bm *BitMap) ReleasePlanes(alloc memory.Allocator) {
	for p := 0; p < bm.Depth; p++ {
		if bm.Planes[p] != nil {
			alloc.Release(bm.Planes[p])
			bm.Planes[p] = nil
		}
	}
}

// Validate checks the BitMap invariants: depth within the plane limit and
// every attached plane large enough for the geometry.
func (bm *BitMap) Validate() error {
	if bm.Depth < 0 || bm.Depth > chipregs.MaxPlanes {
		return curated.Errorf(TooDeep, bm.Depth, chipregs.MaxPlanes)
	}

	need := bm.BytesPerRow * bm.Rows
	for p := 0; p < bm.Depth; p++ {
		if len(bm.Planes[p]) < need {
			return curated.Errorf(ShortPlane, p, len(bm.Planes[p]), need)
		}
	}

	return nil
}

// SetPixel sets or clears the bit for a pixel in every plane such that the
// combined planes read back as the pen value. It is a convenience for
// building test images; real drawing belongs to a rasterization layer
// outside this model.
func (bm *BitMap) SetPixel(x int, y int, pen int) {
	if x < 0 || y < 0 || y >= bm.Rows || x >= bm.BytesPerRow*8 {
		return
	}

	off := y*bm.BytesPerRow + x/8
	bit := byte(0x80 >> (x % 8))

	for p := 0; p < bm.Depth; p++ {
		if pen&(1<<p) != 0 {
			bm.Planes[p][off] |= bit
		} else {
			bm.Planes[p][off] &^= bit
		}
	}
}

// Pixel reads the pen value of a pixel from the combined planes.
func (bm *BitMap) Pixel(x int, y int) int {
	if x < 0 || y < 0 || y >= bm.Rows || x >= bm.BytesPerRow*8 {
		return 0
	}

	off := y*bm.BytesPerRow + x/8
	bit := byte(0x80 >> (x % 8))

	pen := 0
	for p := 0; p < bm.Depth; p++ {
		if bm.Planes[p][off]&bit != 0 {
			pen |= 1 << p
		}
	}
	return pen
}

// RasInfo binds a BitMap into a ViewPort with scroll offsets. The Next
// field chains a second RasInfo for the dual playfield mode.
type RasInfo struct {
	Next     *RasInfo
	BitMap   *BitMap
	RxOffset int
	RyOffset int
}
