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

// Package gels manages the list of movable display objects attached to a
// ViewPort. The name is historical: graphics elements, "gels", covering
// hardware sprites and software objects alike.
//
// A GelsInfo owns a doubly linked list of VSprites held between two
// sentinel nodes and kept sorted by vertical then horizontal position.
// Every mutation recomputes two cached summaries: the bounding box over
// all listed sprites, and the per hardware-channel availability used to
// multiplex more than eight sprites onto eight channels.
//
// Collision detection is policy, not mechanism: the package finds
// candidate pairs by bounding box and mask but what a collision means is
// decided by the registered CollisionHandler.
package gels
