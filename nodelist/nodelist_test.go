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

package nodelist_test

import (
	"strings"
	"testing"

	"github.com/copperview/copperview/nodelist"
	"github.com/copperview/copperview/test"
)

// names returns the node names in list order, which is enough to check the
// linked structure in both directions.
func names(l *nodelist.List) string {
	s := strings.Builder{}
	for n := l.Head(); n != nil; n = n.Succ {
		s.WriteString(n.Name)
	}

	// walking backwards must visit the same nodes
	r := strings.Builder{}
	for n := l.Tail(); n != nil; n = n.Pred {
		r.WriteString(n.Name)
	}

	f := s.String()
	b := r.String()
	if len(f) != len(b) {
		return "***broken links***"
	}
	for i := range f {
		if f[i] != b[len(b)-1-i] {
			return "***broken links***"
		}
	}

	return f
}

func TestAddRemove(t *testing.T) {
	l := nodelist.NewList(0)
	test.ExpectSuccess(t, l.IsEmpty())

	a := &nodelist.Node{Name: "a"}
	b := &nodelist.Node{Name: "b"}
	c := &nodelist.Node{Name: "c"}

	l.AddTail(a)
	l.AddTail(b)
	l.AddHead(c)
	test.ExpectEquality(t, names(l), "cab")
	test.ExpectEquality(t, l.Len(), 3)
	test.ExpectFailure(t, l.IsEmpty())

	// removal from the middle, head and tail
	l.Remove(a)
	test.ExpectEquality(t, names(l), "cb")
	l.Remove(c)
	test.ExpectEquality(t, names(l), "b")
	l.Remove(b)
	test.ExpectSuccess(t, l.IsEmpty())
	test.ExpectEquality(t, l.Len(), 0)
}

func TestEnqueue(t *testing.T) {
	l := nodelist.NewList(0)

	l.Enqueue(&nodelist.Node{Name: "m", Pri: 0})
	l.Enqueue(&nodelist.Node{Name: "h", Pri: 10})
	l.Enqueue(&nodelist.Node{Name: "l", Pri: -10})
	test.ExpectEquality(t, names(l), "hml")
}

func TestEnqueueStability(t *testing.T) {
	l := nodelist.NewList(0)

	// equal priorities keep insertion order
	l.Enqueue(&nodelist.Node{Name: "a", Pri: 5})
	l.Enqueue(&nodelist.Node{Name: "b", Pri: 5})
	l.Enqueue(&nodelist.Node{Name: "c", Pri: 5})
	test.ExpectEquality(t, names(l), "abc")

	l.Enqueue(&nodelist.Node{Name: "x", Pri: 6})
	l.Enqueue(&nodelist.Node{Name: "y", Pri: 4})
	test.ExpectEquality(t, names(l), "xabcy")
}

func TestReinsertion(t *testing.T) {
	l := nodelist.NewList(0)

	a := &nodelist.Node{Name: "a", Pri: 1}
	b := &nodelist.Node{Name: "b", Pri: 2}
	l.Enqueue(a)
	l.Enqueue(b)
	test.ExpectEquality(t, names(l), "ba")

	// a node can move between lists once removed
	m := nodelist.NewList(0)
	l.Remove(b)
	m.AddTail(b)
	test.ExpectEquality(t, names(l), "a")
	test.ExpectEquality(t, names(m), "b")
}
