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

// Package test contains helper functions to remove common boilerplate in
// test functions. Tests are more convenient to write and easier to read
// when the only arguments are the values being tested.
//
// ExpectEquality() and ExpectInequality() compare two values of the same
// comparable type. ExpectSuccess() and ExpectFailure() check a bool or an
// error for the obvious condition:
//
//	err := chain.Move(addr, data)
//	test.ExpectSuccess(t, err)
package test
