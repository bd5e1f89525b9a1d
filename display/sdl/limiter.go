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

package sdl

import (
	"time"
)

// fpsLimiter paces frame presentation to the display standard's refresh
// rate.
type fpsLimiter struct {
	secondsPerFrame time.Duration

	tick chan bool
}

func newFPSLimiter(framesPerSecond float32) *fpsLimiter {
	lim := &fpsLimiter{
		secondsPerFrame: time.Duration(float64(time.Second) / float64(framesPerSecond)),
		tick:            make(chan bool),
	}

	// run ticker concurrently, adjusting for the time the frame itself
	// took
	go func() {
		adjusted := lim.secondsPerFrame
		t := time.Now()
		for {
			time.Sleep(adjusted)
			nt := time.Now()
			lim.tick <- true
			adjusted -= nt.Sub(t) - lim.secondsPerFrame
			t = nt
		}
	}()

	return lim
}

func (lim *fpsLimiter) wait() {
	<-lim.tick
}
