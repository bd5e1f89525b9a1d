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

package display

// Renderer implementations present the pixels the Driver produces. The
// Driver calls NewFrame() at the top of every frame, NewScanline() at the
// start of every line and SetPixel() for every visible pixel, in scan
// order.
//
// Renderer functions are called from the Driver's goroutine. An
// implementation that hands off to another goroutine (an OS window, for
// instance) is responsible for its own synchronisation.
type Renderer interface {
	NewFrame(frameNum int) error
	NewScanline(scanline int) error
	SetPixel(x int, y int, red uint8, green uint8, blue uint8) error

	// EndRendering is called once, when the driver is finished with the
	// renderer for good.
	EndRendering() error
}
