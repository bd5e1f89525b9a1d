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

package memory

// Flags qualify an allocation request. They are semantic hints in the style
// of the original system's memory requirements.
type Flags uint32

// List of allocation flags. Any is the zero value and means any memory will
// do.
const (
	Any    Flags = 0x00000000
	Public Flags = 0x00000001

	// memory that the display DMA can address
	Chip Flags = 0x00000002

	// memory that only the processor can address
	Fast Flags = 0x00000004

	// memory that survives a reset
	Local Flags = 0x00000100

	// DMA addressable within 24 bits
	DMA24 Flags = 0x00000200

	// zero the buffer before returning it
	Clear Flags = 0x00010000

	// allocate from the top of the pool downwards
	Reverse Flags = 0x00040000
)

// Flags accepted by the Available() function.
const (
	// return the size of the largest free chunk rather than the total
	Largest Flags = 0x00020000
)

// BlockSize is the alignment of every allocation. Sizes are rounded up to
// a multiple of this.
const BlockSize = 8

// Allocator is the memory provider interface the display model requires.
// The model never allocates raw buffers itself; raster and demo code
// request them through an Allocator.
type Allocator interface {
	// Allocate returns a buffer of at least the requested size. the
	// returned slice has length equal to the requested size
	Allocate(size int, flags Flags) ([]byte, error)

	// Release returns a buffer to the provider. the buffer must have come
	// from a previous Allocate() call on the same provider
	Release(buf []byte)
}

// Addresser is implemented by providers whose buffers have stable numeric
// addresses. The copper compiler needs addresses for anything the display
// DMA fetches, bitplanes in particular.
type Addresser interface {
	// AddressOf returns the address of a buffer previously returned by
	// the provider
	AddressOf(buf []byte) (uint32, error)
}

// Sentinal error messages for the memory package.
const (
	OutOfMemory = "memory: out of memory (%d bytes requested)"
	BadSize     = "memory: bad allocation size (%d)"
	NotResident = "memory: buffer is not resident in the pool"
)
