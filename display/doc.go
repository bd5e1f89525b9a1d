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

// Package display executes compiled frame programs and produces pixels.
//
// The Driver plays the part of the display hardware: once per frame it
// takes the active program pair from the view.FrameSwap, steps the
// program down the raster a scanline at a time, and fetches bitplane
// data through the pointers the program wrote. Pixels go to a Renderer,
// which is whatever the caller wants to do with them: an SDL window, an
// image encoder, a test harness.
//
// The driver is deliberately ignorant of ViewPorts, BitMaps and chains.
// Its entire input is the flattened word program and chip memory, which
// keeps the compiler honest: anything the composer gets wrong shows up
// on screen, not in a shared data structure.
package display
