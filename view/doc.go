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

// Package view composes frames. A ViewPort is one vertical band of the
// display with its own bitplanes, colours and copper programming; a View
// is the ordered chain of ViewPorts plus the merged programs the display
// hardware executes.
//
// The lifecycle is the original system's: populate a ViewPort, MakeVPort()
// it, link it into a View, MrgCop() the View, then hand the result to the
// display driver through a FrameSwap. The driver only ever sees complete,
// immutable programs; the swap to a newly compiled frame happens at the
// vertical retrace and nowhere else.
package view
