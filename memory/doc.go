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

// Package memory defines the allocation boundary of the display model. The
// model itself never implements an allocator; it asks an Allocator for
// buffers qualified with semantic flags (chip addressable, zeroed, taken
// from the top of the pool) and propagates OutOfMemory unchanged.
//
// The Pool type is a working provider: a bounded arena in which a buffer's
// address is its offset. It exists so that the package's own tests, and any
// display driver that wants to fetch bitplane data by address, have
// something real to work against. It is not a general purpose allocator.
package memory
