package arraylist

import (
	"github.com/amp-labs/amp-sequences/element"
	"github.com/amp-labs/amp-sequences/errors"
)

// Iterator is a forward cursor over a List. It starts Unstarted (index -1);
// Next positions it on successive elements, and advancing past the last
// element auto-rewinds the cursor back to Unstarted while reporting
// ErrIndexOutOfRange. There is no persistent exhausted state: the next call
// to Next starts over from the first element.
//
// The iterator borrows the list and the current element; it owns neither.
// Mutating the list while the iterator is positioned leaves the cursor's
// index semantics unspecified - rewind after structural changes.
type Iterator struct {
	list    *List
	index   int
	element *element.Element
}

// Iterator creates an Unstarted cursor over the list.
func (l *List) Iterator() *Iterator {
	return &Iterator{
		list:    l,
		index:   -1,
		element: nil,
	}
}

// Next advances the cursor. From Unstarted it moves to index 0; from the
// last element it auto-rewinds to Unstarted and returns ErrIndexOutOfRange.
// On an empty list Next stays Unstarted and returns ErrIndexOutOfRange.
func (it *Iterator) Next() error {
	if it == nil {
		return errors.ErrInvalidParams
	}

	if it.list == nil {
		return errors.ErrNilReference
	}

	switch {
	case it.index == -1:
		if it.list.size == 0 {
			return errors.ErrIndexOutOfRange
		}

		it.index = 0
		it.element = it.list.items[0]
	case it.index+1 >= it.list.size:
		it.index = -1
		it.element = nil

		return errors.ErrIndexOutOfRange
	default:
		it.index++
		it.element = it.list.items[it.index]
	}

	return nil
}

// Rewind forces the cursor back to Unstarted from any state.
func (it *Iterator) Rewind() {
	if it == nil {
		return
	}

	it.index = -1
	it.element = nil
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
	if it == nil {
		return nil
	}

	return it.element
}
