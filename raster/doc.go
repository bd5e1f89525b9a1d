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

// Package raster describes bitplane pixel surfaces and the drawing context
// bound to them. BitMap is the surface itself; TmpRas and AreaInfo are the
// transient buffers a scan conversion layer uses; RastPort aggregates
// references to all of them with pen and mode state.
//
// The package carries the data these structures describe and validates
// their invariants. It implements no drawing beyond the single pixel
// accessors on BitMap, which exist for building test images. Line and
// area algorithms belong to an external rasterization layer.
package raster
