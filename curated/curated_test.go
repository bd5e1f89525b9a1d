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

package curated_test

import (
	"testing"

	"github.com/copperview/copperview/curated"
	"github.com/copperview/copperview/test"
)

const testPattern = "test error: %s"

func TestIs(t *testing.T) {
	err := curated.Errorf(testPattern, "detail")

	test.ExpectSuccess(t, curated.IsAny(err))
	test.ExpectSuccess(t, curated.Is(err, testPattern))
	test.ExpectFailure(t, curated.Is(err, "some other pattern"))
	test.ExpectEquality(t, err.Error(), "test error: detail")
}

func TestHas(t *testing.T) {
	inner := curated.Errorf(testPattern, "detail")
	outer := curated.Errorf("outer: %v", inner)

	test.ExpectFailure(t, curated.Is(outer, testPattern))
	test.ExpectSuccess(t, curated.Has(outer, testPattern))
	test.ExpectSuccess(t, curated.Has(outer, "outer: %v"))
}

func TestDeduplication(t *testing.T) {
	inner := curated.Errorf("compile error: %s", "bad instruction")
	outer := curated.Errorf("compile error: %v", inner)

	// adjacent duplicate parts are removed from the message
	test.ExpectEquality(t, outer.Error(), "compile error: bad instruction")
}

func TestUncurated(t *testing.T) {
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}
