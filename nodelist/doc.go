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

// Package nodelist implements the intrusive doubly linked list that the
// rest of the display model is built on. Structures that want to live in a
// list embed a Node and the list operations work on that Node directly, so
// insertion and removal never allocate.
//
// The original system implemented this with a three-pointer header in which
// the head and tail sentinels overlap. That trick is a memory-layout
// artifact; the behaviour is a plain terminated doubly linked list with
// priority-ordered insertion, which is what this package provides.
//
// Note the documented preconditions on AddHead, AddTail, Enqueue and
// Remove. Membership bookkeeping is the caller's responsibility, as it was
// in the original system.
package nodelist
