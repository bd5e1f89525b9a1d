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

// Package sdl is the SDL presentation of the display: an OS window with a
// streaming texture the driver's pixels are written into. It implements
// the display.Renderer interface.
package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/copperview/copperview/display"
)

// the number of bytes required for each screen pixel
// 4 == red + green + blue + alpha
const scrDepth int32 = 4

// Window presents driver output in an SDL window. Pixels accumulate in a
// backing array; the array is streamed to the texture and presented when
// the next frame begins, so a frame only ever appears complete.
type Window struct {
	spec display.Spec

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width  int32
	height int32

	pixels []byte

	limiter *fpsLimiter
}

// NewWindow is the preferred method of initialisation for the Window
// type. The scale argument is the size of a display pixel in OS window
// pixels.
func NewWindow(spec display.Spec, scale float32) (*Window, error) {
	var err error

	win := &Window{
		spec:   spec,
		width:  int32(spec.Width),
		height: int32(spec.Height),
	}

	if err = sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}

	win.window, err = sdl.CreateWindow("Copperview",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(float32(win.width)*scale), int32(float32(win.height)*scale),
		uint32(sdl.WINDOW_SHOWN)|uint32(sdl.WINDOW_OPENGL))
	if err != nil {
		return nil, err
	}

	win.renderer, err = sdl.CreateRenderer(win.window, -1,
		uint32(sdl.RENDERER_ACCELERATED)|uint32(sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return nil, err
	}

	if err = win.renderer.SetScale(scale, scale); err != nil {
		return nil, err
	}

	win.texture, err = win.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), win.width, win.height)
	if err != nil {
		return nil, err
	}

	win.pixels = make([]byte, win.width*win.height*scrDepth)
	win.limiter = newFPSLimiter(spec.RefreshRate)

	return win, nil
}

// NewFrame implements the display.Renderer interface. The previous
// frame's pixels are presented and the backing array cleared for the new
// frame.
func (win *Window) NewFrame(frameNum int) error {
	if err := win.update(); err != nil {
		return err
	}

	for i := range win.pixels {
		win.pixels[i] = 0
	}

	return nil
}

// NewScanline implements the display.Renderer interface.
func (win *Window) NewScanline(scanline int) error {
	return nil
}

// SetPixel implements the display.Renderer interface.
func (win *Window) SetPixel(x int, y int, red uint8, green uint8, blue uint8) error {
	i := (int32(y)*win.width + int32(x)) * scrDepth
	if i >= 0 && i < int32(len(win.pixels))-scrDepth {
		win.pixels[i] = red
		win.pixels[i+1] = green
		win.pixels[i+2] = blue
		win.pixels[i+3] = 255
	}
	return nil
}

// EndRendering implements the display.Renderer interface. The window and
// the SDL resources behind it are destroyed.
func (win *Window) EndRendering() error {
	win.texture.Destroy()
	win.renderer.Destroy()
	return win.window.Destroy()
}

// update streams the pixel array to the window.
func (win *Window) update() error {
	win.limiter.wait()

	win.renderer.SetDrawColor(0, 0, 0, 255)
	if err := win.renderer.Clear(); err != nil {
		return err
	}

	if err := win.texture.Update(nil, win.pixels, int(win.width*scrDepth)); err != nil {
		return err
	}
	if err := win.renderer.Copy(win.texture, nil, nil); err != nil {
		return err
	}

	win.renderer.Present()

	return nil
}

// ServiceEvents pumps the SDL event queue. It returns false when the
// window has been asked to close. It must be called from the same
// goroutine as NewWindow().
func (win *Window) ServiceEvents() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				return false
			}
		}
	}
	return true
}
