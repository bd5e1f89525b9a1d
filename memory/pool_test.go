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

package memory_test

import (
	"testing"

	"github.com/copperview/copperview/curated"
	"github.com/copperview/copperview/memory"
	"github.com/copperview/copperview/test"
)

func TestAllocate(t *testing.T) {
	p := memory.NewPool(256)

	a, err := p.Allocate(100, memory.Chip)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(a), 100)

	addr, err := p.AddressOf(a)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, addr, uint32(0))

	// sizes round to BlockSize so the second buffer starts at 104
	b, err := p.Allocate(10, memory.Chip)
	test.ExpectSuccess(t, err)
	addr, err = p.AddressOf(b)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, addr, uint32(104))
}

func TestOutOfMemory(t *testing.T) {
	p := memory.NewPool(64)

	_, err := p.Allocate(64, memory.Any)
	test.ExpectSuccess(t, err)

	_, err = p.Allocate(8, memory.Any)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfMemory))

	_, err = p.Allocate(0, memory.Any)
	test.ExpectSuccess(t, curated.Is(err, memory.BadSize))
}

func TestReverse(t *testing.T) {
	p := memory.NewPool(256)

	a, err := p.Allocate(16, memory.Chip|memory.Reverse)
	test.ExpectSuccess(t, err)

	addr, err := p.AddressOf(a)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, addr, uint32(240))
}

func TestClear(t *testing.T) {
	p := memory.NewPool(64)

	a, _ := p.Allocate(32, memory.Any)
	for i := range a {
		a[i] = 0xff
	}
	p.Release(a)

	b, err := p.Allocate(32, memory.Any|memory.Clear)
	test.ExpectSuccess(t, err)
	for i := range b {
		test.ExpectEquality(t, b[i], byte(0))
	}
}

func TestReleaseCoalescing(t *testing.T) {
	p := memory.NewPool(96)

	a, _ := p.Allocate(32, memory.Any)
	b, _ := p.Allocate(32, memory.Any)
	c, _ := p.Allocate(32, memory.Any)

	test.ExpectEquality(t, p.Available(memory.Any), 0)

	// release out of order; spans must coalesce back into one
	p.Release(a)
	p.Release(c)
	test.ExpectEquality(t, p.Available(memory.Any), 64)
	test.ExpectEquality(t, p.Available(memory.Largest), 32)

	p.Release(b)
	test.ExpectEquality(t, p.Available(memory.Any), 96)
	test.ExpectEquality(t, p.Available(memory.Largest), 96)

	// the whole arena is allocatable again
	d, err := p.Allocate(96, memory.Any)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(d), 96)
}

func TestAddressOfUnknown(t *testing.T) {
	p := memory.NewPool(64)

	_, err := p.AddressOf([]byte{1, 2, 3})
	test.ExpectSuccess(t, curated.Is(err, memory.NotResident))
}
