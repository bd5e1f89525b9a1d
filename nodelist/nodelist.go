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

package nodelist

// Node is the link block embedded at the head of every structure that can
// be held in a List. Succ and Pred are maintained by the List operations
// and should not be written directly.
type Node struct {
	Succ *Node
	Pred *Node

	// Type identifies the owning structure. values are defined by the
	// structures themselves, not by this package
	Type uint8

	// Pri is the sort key used by Enqueue(). higher values sort towards
	// the head of the list
	Pri int8

	Name string
}

// List is a doubly linked list of Nodes. A node belongs to at most one list
// at a time; the list that holds a node owns it until the node is removed.
//
// The zero value is an empty list ready for use.
type List struct {
	head *Node
	tail *Node

	// Type of the nodes this list is expected to hold
	Type uint8
}

// NewList is the preferred method of initialisation for the List type.
func NewList(listType uint8) *List {
	return &List{Type: listType}
}

// IsEmpty returns true if the list holds no nodes.
func (l *List) IsEmpty() bool {
	return l.head == nil
}

// Head returns the first node in the list, or nil if the list is empty.
func (l *List) Head() *Node {
	return l.head
}

// Tail returns the last node in the list, or nil if the list is empty.
func (l *List) Tail() *Node {
	return l.tail
}

// Len counts the nodes in the list.
func (l *List) Len() int {
	ct := 0
	for n := l.head; n != nil; n = n.Succ {
		ct++
	}
	return ct
}

// AddHead inserts the node at the head of the list.
//
// Precondition: the node is not currently a member of any list.
func (l *List) AddHead(n *Node) {
	n.Pred = nil
	n.Succ = l.head
	if l.head != nil {
		l.head.Pred = n
	} else {
		l.tail = n
	}
	l.head = n
}

// AddTail inserts the node at the tail of the list.
//
// Precondition: the node is not currently a member of any list.
func (l *List) AddTail(n *Node) {
	n.Succ = nil
	n.Pred = l.tail
	if l.tail != nil {
		l.tail.Succ = n
	} else {
		l.head = n
	}
	l.tail = n
}

// Enqueue inserts the node before the first node whose priority is strictly
// lower. Among nodes of equal priority the new node is placed after the
// existing ones, keeping insertion order stable.
//
// Precondition: the node is not currently a member of any list. the list
// must already be in priority order, which is always true if Enqueue() is
// the only insertion function used.
func (l *List) Enqueue(n *Node) {
	p := l.head
	for p != nil && p.Pri >= n.Pri {
		p = p.Succ
	}

	if p == nil {
		l.AddTail(n)
		return
	}

	// insert before p
	n.Succ = p
	n.Pred = p.Pred
	if p.Pred != nil {
		p.Pred.Succ = n
	} else {
		l.head = n
	}
	p.Pred = n
}

// Remove unlinks the node from the list in O(1).
//
// Precondition: the node is a member of this list. removing a node that is
// in a different list, or in no list at all, corrupts both lists. the
// caller must guarantee membership; there is no runtime check.
func (l *List) Remove(n *Node) {
	if n.Pred != nil {
		n.Pred.Succ = n.Succ
	} else {
		l.head = n.Succ
	}

	if n.Succ != nil {
		n.Succ.Pred = n.Pred
	} else {
		l.tail = n.Pred
	}

	n.Succ = nil
	n.Pred = nil
}
