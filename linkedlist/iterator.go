package linkedlist

import (
	"github.com/amp-labs/amp-sequences/element"
	"github.com/amp-labs/amp-sequences/errors"
)

// Iterator is a forward cursor over a List. It starts Unstarted (index -1);
// Next positions it on successive nodes, and advancing past the last node
// auto-rewinds the cursor back to Unstarted while reporting
// ErrIndexOutOfRange. There is no persistent exhausted state: the next call
// to Next starts over from the head.
//
// The iterator borrows the list and the current node; it owns neither.
// Mutating the list while the iterator is positioned leaves the cursor's
// position semantics unspecified - rewind after structural changes.
type Iterator struct {
	list  *List
	node  *node
	index int
}

// Iterator creates an Unstarted cursor over the list.
func (l *List) Iterator() *Iterator {
	return &Iterator{
		list:  l,
		node:  nil,
		index: -1,
	}
}

// Next advances the cursor. From Unstarted it moves to the head; from the
// last node it auto-rewinds to Unstarted and returns ErrIndexOutOfRange.
// On an empty list Next stays Unstarted and returns ErrIndexOutOfRange.
func (it *Iterator) Next() error {
	if it == nil {
		return errors.ErrInvalidParams
	}

	if it.list == nil {
		return errors.ErrNilReference
	}

	switch {
	case it.node == nil:
		if it.list.head == nil {
			return errors.ErrIndexOutOfRange
		}

		it.node = it.list.head
		it.index = 0
	case it.node.next == nil:
		it.node = nil
		it.index = -1

		return errors.ErrIndexOutOfRange
	default:
		it.node = it.node.next
		it.index++
	}

	return nil
}

// Rewind forces the cursor back to Unstarted from any state.
func (it *Iterator) Rewind() {
	if it == nil {
		return
	}

	it.node = nil
	it.index = -1
}

// Index returns the cursor's current index, or -1 when Unstarted.
func (it *Iterator) Index() int {
	if it == nil {
		return -1
	}

	return it.index
}

// Element returns a borrowed reference to the element under the cursor, or
// nil when Unstarted. The list retains ownership; callers that need to keep
// the element must Clone it.
func (it *Iterator) Element() *element.Element {
	if it == nil || it.node == nil {
		return nil
	}

	return it.node.element
}
