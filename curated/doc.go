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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like Errorf() in the fmt
// package, but the pattern doubles as the identity of the error. Packages
// declare their error patterns as Sentinel consts:
//
//	const CapacityExceeded = "copper: capacity exceeded (limit of %d)"
//
//	return curated.Errorf(CapacityExceeded, c.budget)
//
// The Is() function checks whether an error was created from a specific
// pattern. The Has() function is similar but checks the whole error chain,
// which is useful when a curated error has been wrapped in another curated
// error:
//
//	err := curated.Errorf("compilation failed: %v",
//		curated.Errorf(CapacityExceeded, 100))
//
//	curated.Is(err, CapacityExceeded)   // false
//	curated.Has(err, CapacityExceeded)  // true
//
// The IsAny() function answers whether the error is curated at all.
// Uncurated errors are those from outside the project; they should be
// treated as unexpected.
//
// The Error() function normalises the message chain by removing duplicate
// adjacent parts, where parts are separated by the sub-string ": ". This
// means errors can be wrapped at every level of a call chain without the
// final message repeating itself.
package curated
