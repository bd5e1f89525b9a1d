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

package logger_test

import (
	"strings"
	"testing"

	"github.com/copperview/copperview/logger"
	"github.com/copperview/copperview/test"
)

func TestCentral(t *testing.T) {
	logger.Clear()
	logger.Log("test", "hello")

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "test: hello\n")
}

func TestRepeatFolding(t *testing.T) {
	logger.Clear()
	logger.Log("test", "hello")
	logger.Log("test", "hello")
	logger.Log("test", "hello")

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "test: hello (repeat x3)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()
	logger.Log("test", "one")
	logger.Log("test", "two")
	logger.Log("test", "three")

	s := &strings.Builder{}
	logger.Tail(s, 2)
	test.ExpectEquality(t, s.String(), "test: two\ntest: three\n")
}
