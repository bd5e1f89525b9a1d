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
	"github.com/copperview/copperview/gels"
)

// Drawing modes for the RastPort DrawMode field.
const (
	JAM1       uint8 = 0 // jam the foreground pen into the raster
	JAM2       uint8 = 1 // jam foreground and background pens
	Complement uint8 = 2 // XOR bits into the raster
	InversVid  uint8 = 4 // inverse video modifier
)

// Flag bits for the RastPort Flags field.
const (
	FrstDot uint16 = 0x01 // draw the first dot of a line
	OneDot  uint16 = 0x02 // one dot mode for lines
	DBuffer uint16 = 0x04 // raster is double buffered
)

// TmpRas is the transient work raster a rasterization layer scribbles on
// during area fill and flood fill.
type TmpRas struct {
	Buf  []byte
	Size int
}

// InitTmpRas initialises a TmpRas with a work buffer.
func InitTmpRas(t *TmpRas, buf []byte) *TmpRas {
	t.Buf = buf
	t.Size = len(buf)
	return t
}

// AreaInfo collects polygon vertices for area fill. Two coordinate words
// and one flag byte are stored per vertex.
type AreaInfo struct {
	VctrTbl []int16
	FlagTbl []byte

	Count    int
	MaxCount int

	FirstX int
	FirstY int
}

// InitArea initialises an AreaInfo for the given maximum vertex count.
func InitArea(ai *AreaInfo, maxVectors int) {
	ai.VctrTbl = make([]int16, maxVectors*2)
	ai.FlagTbl = make([]byte, maxVectors)
	ai.Count = 0
	ai.MaxCount = maxVectors
}

// RastPort is a drawing context bound to one BitMap. It references, and
// never owns, the structures a rasterization layer needs: the referenced
// structures must outlive the RastPort and must not be mutated while a
// drawing session is in progress.
//
// Only the shape is modelled. The drawing operations themselves, including
// the per-plane minterm combination the Minterms table parameterises, are
// a rasterization concern outside this model.
type RastPort struct {
	BitMap   *BitMap
	TmpRas   *TmpRas
	AreaInfo *AreaInfo
	GelsInfo *gels.GelsInfo

	// areafill pattern, 2^AreaPtSz words
	AreaPtrn []uint16
	AreaPtSz uint8

	Mask     uint8
	FgPen    int8
	BgPen    int8
	AOlPen   int8
	DrawMode uint8
	Flags    uint16

	// 16 bits of texture for line drawing
	LinePtrn uint16

	// current pen position
	CpX int
	CpY int

	// opaque per-plane boolean combination table
	Minterms [8]uint8

	PenWidth  int
	PenHeight int
}

// InitRastPort initialises a RastPort to the conventional defaults: write
// to all planes, JAM2 drawing, solid lines.
func InitRastPort(rp *RastPort) {
	*rp = RastPort{
		Mask:     0xff,
		FgPen:    -1,
		DrawMode: JAM2,
		LinePtrn: 0xffff,
	}

	// the first entry of the minterm table encodes a straight copy; the
	// rest are left for the rasterization layer
	rp.Minterms[0] = 0xca
}

// Bind attaches a BitMap to the RastPort. The RastPort holds the reference
// for its lifetime but never mutates the BitMap itself.
func (rp *RastPort) Bind(bm *BitMap) {
	rp.BitMap = bm
}
