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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/copperview/copperview/chipregs"
	"github.com/copperview/copperview/colormap"
	"github.com/copperview/copperview/copper"
	"github.com/copperview/copperview/display"
	"github.com/copperview/copperview/display/sdl"
	"github.com/copperview/copperview/gels"
	"github.com/copperview/copperview/logger"
	"github.com/copperview/copperview/memory"
	"github.com/copperview/copperview/memview"
	"github.com/copperview/copperview/raster"
	"github.com/copperview/copperview/statsview"
	"github.com/copperview/copperview/version"
	"github.com/copperview/copperview/view"
)

// amount of chip memory given to the demo composition
const chipMemory = 512 * 1024

// nullRenderer discards pixels. used for headless runs, where the point
// is the compilation and execution, not the picture.
type nullRenderer struct{}

func (nullRenderer) NewFrame(frameNum int) error    { return nil }
func (nullRenderer) NewScanline(scanline int) error { return nil }
func (nullRenderer) SetPixel(x int, y int, red uint8, green uint8, blue uint8) error {
	return nil
}
func (nullRenderer) EndRendering() error { return nil }

func main() {
	specID := flag.String("spec", "PAL", "display standard: PAL or NTSC")
	frames := flag.Int("frames", 500, "number of frames to run (0 means until the window closes)")
	scale := flag.Float64("scale", 2.0, "window scaling")
	headless := flag.Bool("headless", false, "run without a window")
	dump := flag.String("dump", "", "write a graphviz dot file of the composition and exit")
	stats := flag.Bool("statsview", false, "run stats server")
	verbose := flag.Bool("log", false, "echo log to stderr")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		vers, rev, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, vers)
		if !release {
			fmt.Printf("  %s\n", rev)
		}
		return
	}

	if *verbose {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	if err := run(*specID, *frames, float32(*scale), *headless, *dump); err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}

func run(specID string, frames int, scale float32, headless bool, dump string) error {
	spec := display.SpecFromID(specID)
	pool := memory.NewPool(chipMemory)
	cmp := view.NewComposer(pool)

	scene, err := buildScene(spec, pool)
	if err != nil {
		return err
	}

	if err := compile(cmp, scene); err != nil {
		return err
	}

	if dump != "" {
		return memview.DumpFile(dump, scene.view)
	}

	var rend display.Renderer
	var win *sdl.Window

	if headless {
		rend = nullRenderer{}
	} else {
		win, err = sdl.NewWindow(spec, scale)
		if err != nil {
			return err
		}
		rend = win
	}

	swap := &view.FrameSwap{}
	swap.LoadView(scene.view)

	drv := display.NewDriver(spec, swap, pool.Arena(), rend)

	for n := 0; frames == 0 || n < frames; n++ {
		if win != nil && !win.ServiceEvents() {
			break
		}

		scene.animate(n)
		if err := compile(cmp, scene); err != nil {
			return err
		}
		swap.LoadView(scene.view)

		if err := drv.RunFrame(); err != nil {
			return err
		}
	}

	return drv.End()
}

// compile recompiles every viewport and merges the frame programs.
func compile(cmp *view.Composer, s *scene) error {
	for vp := s.view.ViewPorts; vp != nil; vp = vp.Next {
		if err := cmp.MakeVPort(s.view, vp); err != nil {
			return err
		}
	}
	return cmp.MrgCop(s.view)
}

// scene is the demo composition: a two colour playfield over a status
// band with copper raster bars, plus a pair of virtual sprites bouncing
// around the playfield.
type scene struct {
	view *view.View

	playfield *view.ViewPort
	status    *view.ViewPort

	rp *raster.RastPort
	gi *gels.GelsInfo
	a  *gels.VSprite
	b  *gels.VSprite

	// sprite velocities
	avx, avy int
	bvx, bvy int
}

func buildScene(spec display.Spec, pool *memory.Pool) (*scene, error) {
	s := &scene{view: &view.View{}}

	statusHeight := 48
	playHeight := spec.Height - statusHeight - 8

	// the playfield band
	bm := &raster.BitMap{}
	if err := raster.InitBitMap(bm, 2, spec.Width, playHeight); err != nil {
		return nil, err
	}
	if err := bm.AttachPlanes(pool); err != nil {
		return nil, err
	}

	cm := colormap.GetColorMap(4)
	_ = cm.SetRGB4(0, 0, 0, 6)
	_ = cm.SetRGB4(1, 15, 15, 15)
	_ = cm.SetRGB4(2, 15, 8, 0)
	_ = cm.SetRGB4(3, 0, 15, 8)

	s.playfield = &view.ViewPort{
		DWidth:   spec.Width,
		DHeight:  playHeight,
		ColorMap: cm,
		Modes:    chipregs.Sprites,
		RasInfo:  &raster.RasInfo{BitMap: bm},
	}
	s.view.AddViewPort(s.playfield)

	// border and a diagonal weave for the playfield
	for x := 0; x < spec.Width; x++ {
		bm.SetPixel(x, 0, 1)
		bm.SetPixel(x, playHeight-1, 1)
		if (x/16)%2 == 0 {
			bm.SetPixel(x, x%playHeight, 2)
		}
	}
	for y := 0; y < playHeight; y++ {
		bm.SetPixel(0, y, 1)
		bm.SetPixel(spec.Width-1, y, 1)
	}

	// drawing context with a gels list attached. the sprites are virtual:
	// the animation draws them into the playfield bitmap each frame
	s.rp = &raster.RastPort{}
	raster.InitRastPort(s.rp)
	s.rp.Bind(bm)

	s.gi = &gels.GelsInfo{}
	head := &gels.VSprite{}
	tail := &gels.VSprite{}
	gels.InitGels(head, tail, s.gi)
	s.rp.GelsInfo = s.gi

	s.a = &gels.VSprite{X: 40, Y: 30, Width: 16, Height: 8, Depth: 1, MeMask: 1, HitMask: 1}
	s.b = &gels.VSprite{X: 200, Y: 100, Width: 16, Height: 8, Depth: 1, MeMask: 1, HitMask: 1}
	s.gi.AddVSprite(s.a)
	s.gi.AddVSprite(s.b)
	s.avx, s.avy = 2, 1
	s.bvx, s.bvy = -1, 2

	s.gi.SetCollision(func(a *gels.VSprite, b *gels.VSprite) {
		logger.Logf("demo", "sprites collided at %d,%d", a.X, a.Y)
	})

	// the status band. a single plane and a user copper list painting
	// raster bars over it
	sbm := &raster.BitMap{}
	if err := raster.InitBitMap(sbm, 1, spec.Width, statusHeight); err != nil {
		return nil, err
	}
	if err := sbm.AttachPlanes(pool); err != nil {
		return nil, err
	}

	scm := colormap.GetColorMap(2)
	_ = scm.SetRGB4(0, 0, 0, 0)
	_ = scm.SetRGB4(1, 15, 15, 0)

	s.status = &view.ViewPort{
		DWidth:   spec.Width,
		DHeight:  statusHeight,
		DyOffset: playHeight + 8,
		ColorMap: scm,
		RasInfo:  &raster.RasInfo{BitMap: sbm},
	}
	s.view.AddViewPort(s.status)

	for x := 8; x < spec.Width-8; x += 2 {
		sbm.SetPixel(x, statusHeight/2, 1)
	}

	return s, nil
}

// animate advances the demo by one frame: the sprites bounce around the
// playfield and the raster bars cycle.
func (s *scene) animate(frame int) {
	bm := s.rp.BitMap

	drawSprite(bm, s.a, 0)
	drawSprite(bm, s.b, 0)

	bounce(s.a, &s.avx, &s.avy, bm)
	bounce(s.b, &s.bvx, &s.bvy, bm)

	// re-sort the gels list for the new positions and test for overlap
	s.gi.RemVSprite(s.a)
	s.gi.RemVSprite(s.b)
	s.gi.AddVSprite(s.a)
	s.gi.AddVSprite(s.b)
	s.gi.DoCollision()

	drawSprite(bm, s.a, 3)
	drawSprite(bm, s.b, 3)

	// cycling raster bars through the status band. user chain waits are
	// frame absolute, not band relative
	uc := copper.NewUserChain()
	for i := 0; i < 6; i++ {
		_ = uc.CWait(s.status.DyOffset+i*8, 0)
		_ = uc.CMove(chipregs.COLOR(0), barColor(frame, i))
	}
	_ = uc.CEnd()
	s.status.UCopIns = uc
}

func bounce(vs *gels.VSprite, vx *int, vy *int, bm *raster.BitMap) {
	vs.X += *vx
	vs.Y += *vy

	if vs.X <= 1 || vs.X+vs.Width >= bm.BytesPerRow*8-1 {
		*vx = -*vx
	}
	if vs.Y <= 1 || vs.Y+vs.Height >= bm.Rows-1 {
		*vy = -*vy
	}
}

func drawSprite(bm *raster.BitMap, vs *gels.VSprite, pen int) {
	for y := 0; y < vs.Height; y++ {
		for x := 0; x < vs.Width; x++ {
			bm.SetPixel(vs.X+x, vs.Y+y, pen)
		}
	}
}

func barColor(frame int, bar int) uint16 {
	g := uint8((frame/4 + bar*3) % 16)
	return colormap.RGB4(0, g, 15-g)
}
