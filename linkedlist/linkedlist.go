// Package linkedlist provides a singly linked ordered sequence of type-erased
// byte payloads. Prepending and appending are O(1) thanks to a tracked tail
// node; any indexed access walks the chain and costs O(index).
//
// The list owns every element it stores: values are deep-copied on the way in
// and deep-copied on the way out, so callers never alias internal storage.
// Ordering and sorting behavior are pluggable at construction time through a
// compare.Comparator and a Sorter.
//
// Lists are not safe for concurrent use.
package linkedlist

import (
	"fmt"
	"strings"

	"github.com/amp-labs/amp-sequences/compare"
	"github.com/amp-labs/amp-sequences/element"
	"github.com/amp-labs/amp-sequences/errors"
)

// node is one link in the chain. It owns its element; next is nil only for
// the tail node.
type node struct {
	element *element.Element
	next    *node
}

// List is a singly linked ordered sequence of elements.
//
// Invariant: size == 0 exactly when head and tail are both nil; walking next
// from head size-1 times reaches tail; tail.next is always nil.
type List struct {
	head       *node
	tail       *node
	size       int
	comparator compare.Comparator
	sorter     Sorter
	logger     logger
}

// New creates an empty List. Behavior is customized with options:
// WithComparator, WithSorter and WithLogger.
func New(opts ...Option) *List {
	conf := applyOptions(opts)

	return &List{
		comparator: conf.comparator,
		sorter:     conf.sorter,
		logger:     newLogger(conf.logger),
	}
}

// Size returns the number of elements in the list.
func (l *List) Size() int {
	if l == nil {
		return 0
	}

	return l.size
}

// Comparator returns the list's active comparator. Custom Sorter
// implementations should order elements through CompareAt instead.
func (l *List) Comparator() compare.Comparator {
	if l == nil {
		return nil
	}

	return l.comparator
}

// Get returns a deep copy of the element at the given index. The caller owns
// the returned element. The index must satisfy 0 <= index < size.
func (l *List) Get(index int) (*element.Element, error) {
	if l == nil {
		return nil, errors.ErrNilReference
	}

	n, err := l.nodeAt(index)
	if err != nil {
		return nil, err
	}

	return n.element.Clone(), nil
}

// Set replaces the payload at the given index with a deep copy of value,
// reallocating the node's buffer only if the size changed. A zero-length
// value is rejected with ErrInvalidParams. The index must satisfy
// 0 <= index < size.
func (l *List) Set(index int, value []byte) error {
	if l == nil {
		return errors.ErrNilReference
	}

	n, err := l.nodeAt(index)
	if err != nil {
		return err
	}

	if len(value) == 0 {
		return fmt.Errorf("%w: cannot set a zero-length value", errors.ErrInvalidParams)
	}

	return n.element.Set(value)
}

// Prepend inserts a deep copy of value before the head.
func (l *List) Prepend(value []byte) error {
	if l == nil {
		return errors.ErrNilReference
	}

	n := &node{element: element.New(value), next: l.head}

	l.head = n

	if l.tail == nil {
		l.tail = n
	}

	l.size++

	return nil
}

// Append inserts a deep copy of value after the tail.
func (l *List) Append(value []byte) error {
	if l == nil {
		return errors.ErrNilReference
	}

	n := &node{element: element.New(value)}

	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		l.tail = n
	}

	l.size++

	return nil
}

// Insert places a deep copy of value at the given index, pushing later nodes
// one position down the chain. The index must satisfy 0 <= index <= size.
func (l *List) Insert(index int, value []byte) error {
	if l == nil {
		return errors.ErrNilReference
	}

	if index < 0 || index > l.size {
		return fmt.Errorf("%w: insert index %d with size %d", errors.ErrIndexOutOfRange, index, l.size)
	}

	switch {
	case index == 0:
		return l.Prepend(value)
	case index == l.size:
		return l.Append(value)
	}

	previous, err := l.nodeAt(index - 1)
	if err != nil {
		return err
	}

	previous.next = &node{element: element.New(value), next: previous.next}
	l.size++

	return nil
}

// Remove destroys the element at the given index, relinking around its node.
// The index must satisfy 0 <= index < size.
func (l *List) Remove(index int) error {
	if l == nil {
		return errors.ErrNilReference
	}

	_, err := l.unlink(index)

	return err
}

// Pop returns a deep copy of the element at the given index and removes it,
// atomically from the caller's perspective.
func (l *List) Pop(index int) (*element.Element, error) {
	if l == nil {
		return nil, errors.ErrNilReference
	}

	removed, err := l.unlink(index)
	if err != nil {
		return nil, err
	}

	return removed.element.Clone(), nil
}

// Clear destroys every node. The list is left empty but keeps its
// comparator, sorter and logger.
func (l *List) Clear() error {
	if l == nil {
		return errors.ErrNilReference
	}

	l.logger.debug("clearing list", "size", l.size)

	l.head = nil
	l.tail = nil
	l.size = 0

	return nil
}

// Clone returns an independent List with every element deep-copied. The
// clone shares no nodes with the original and carries the same comparator,
// sorter and logger.
func (l *List) Clone() (*List, error) {
	if l == nil {
		return nil, errors.ErrNilReference
	}

	clone := &List{
		comparator: l.comparator,
		sorter:     l.sorter,
		logger:     l.logger.fork(),
	}

	for n := l.head; n != nil; n = n.next {
		clone.appendNode(&node{element: n.element.Clone()})
	}

	return clone, nil
}

// Join produces a new List holding deep copies of the receiver's elements
// followed by deep copies of other's elements. Its size is exactly the sum
// of the input sizes and it carries the receiver's comparator, sorter and
// logger. Neither input is modified.
func (l *List) Join(other *List) (*List, error) {
	if l == nil || other == nil {
		return nil, errors.ErrNilReference
	}

	joined := &List{
		comparator: l.comparator,
		sorter:     l.sorter,
		logger:     l.logger.fork(),
	}

	for n := l.head; n != nil; n = n.next {
		joined.appendNode(&node{element: n.element.Clone()})
	}

	for n := other.head; n != nil; n = n.next {
		joined.appendNode(&node{element: n.element.Clone()})
	}

	return joined, nil
}

// Resize changes the number of elements. Growing appends blank (absent)
// nodes; shrinking truncates the chain after the new last node. A negative
// size is rejected with ErrInvalidParams.
func (l *List) Resize(size int) error {
	if l == nil {
		return errors.ErrNilReference
	}

	if size < 0 {
		return fmt.Errorf("%w: size %d is negative", errors.ErrInvalidParams, size)
	}

	switch {
	case size == l.size:
		return nil
	case size == 0:
		return l.Clear()
	}

	l.logger.debug("resizing list", "from", l.size, "to", size)

	if size > l.size {
		for i := l.size; i < size; i++ {
			l.appendNode(&node{element: element.Blank()})
		}

		return nil
	}

	last, err := l.nodeAt(size - 1)
	if err != nil {
		return err
	}

	last.next = nil
	l.tail = last
	l.size = size

	return nil
}

// Reverse reverses the chain in place with a pointer-reversal walk; head and
// tail trade roles.
func (l *List) Reverse() error {
	if l == nil {
		return errors.ErrNilReference
	}

	if l.head == nil {
		return nil
	}

	var previous *node

	current := l.head

	for current != nil {
		next := current.next
		current.next = previous
		previous = current
		current = next
	}

	l.tail = l.head
	l.head = previous

	return nil
}

// Includes reports whether the list contains an element equal to value under
// the list's comparator. Elements whose stored size differs from the query
// size are skipped without comparison.
func (l *List) Includes(value []byte) (bool, error) {
	if l == nil {
		return false, errors.ErrNilReference
	}

	querySize := uint64(len(value))

	for n := l.head; n != nil; n = n.next {
		if n.element.Size() != querySize {
			continue
		}

		if n.element.CompareBytes(value, l.comparator) == 0 {
			return true, nil
		}
	}

	return false, nil
}

// FindFirst returns the index of the first element equal to value under the
// list's comparator, walking forward from start. Elements whose stored size
// differs from the query size are skipped. A start index outside [0, size)
// is rejected with ErrIndexOutOfRange; a zero-length value with
// ErrInvalidParams. Returns -1 and ErrElementNotFound when no element
// matches.
func (l *List) FindFirst(value []byte, start int) (int, error) {
	if l == nil {
		return -1, errors.ErrNilReference
	}

	if start < 0 || start >= l.size {
		return -1, fmt.Errorf("%w: start index %d with size %d", errors.ErrIndexOutOfRange, start, l.size)
	}

	if len(value) == 0 {
		return -1, fmt.Errorf("%w: cannot search for a zero-length value", errors.ErrInvalidParams)
	}

	querySize := uint64(len(value))
	index := 0

	for n := l.head; n != nil; n = n.next {
		if index < start || n.element.Size() != querySize {
			index++

			continue
		}

		if n.element.CompareBytes(value, l.comparator) == 0 {
			return index, nil
		}

		index++
	}

	return -1, errors.ErrElementNotFound
}

// FindLast returns the index of the last element equal to value under the
// list's comparator, walking from start to the end of the chain. Elements
// whose stored size differs from the query size are skipped. A start index
// outside [0, size) is rejected with ErrIndexOutOfRange; a zero-length value
// with ErrInvalidParams. Returns -1 and ErrElementNotFound when no element
// matches.
func (l *List) FindLast(value []byte, start int) (int, error) {
	if l == nil {
		return -1, errors.ErrNilReference
	}

	if start < 0 || start >= l.size {
		return -1, fmt.Errorf("%w: start index %d with size %d", errors.ErrIndexOutOfRange, start, l.size)
	}

	if len(value) == 0 {
		return -1, fmt.Errorf("%w: cannot search for a zero-length value", errors.ErrInvalidParams)
	}

	querySize := uint64(len(value))
	found := -1
	index := 0

	for n := l.head; n != nil; n = n.next {
		if index < start || n.element.Size() != querySize {
			index++

			continue
		}

		if n.element.CompareBytes(value, l.comparator) == 0 {
			found = index
		}

		index++
	}

	if found == -1 {
		return -1, errors.ErrElementNotFound
	}

	return found, nil
}

// Sort reorders the chain using the list's sort strategy and comparator.
// Lists of size 0 or 1 are already sorted and left untouched.
func (l *List) Sort(ascending bool) error {
	if l == nil {
		return errors.ErrNilReference
	}

	if l.size <= 1 {
		return nil
	}

	l.logger.debug("sorting list", "size", l.size, "ascending", ascending)

	return l.sorter.Sort(l, ascending)
}

// Swap exchanges the nodes at the two indices by relinking their
// predecessors and successors, updating head and tail when an endpoint is
// involved. The payloads themselves are not copied. Both indices must
// satisfy 0 <= index < size. Swapping an index with itself is a no-op.
func (l *List) Swap(i, j int) error {
	if l == nil {
		return errors.ErrNilReference
	}

	if i < 0 || i >= l.size {
		return fmt.Errorf("%w: swap index %d with size %d", errors.ErrIndexOutOfRange, i, l.size)
	}

	if j < 0 || j >= l.size {
		return fmt.Errorf("%w: swap index %d with size %d", errors.ErrIndexOutOfRange, j, l.size)
	}

	if i == j {
		return nil
	}

	var firstPrevious *node

	first := l.head
	for k := 0; k < i; k++ {
		firstPrevious = first
		first = first.next
	}

	var secondPrevious *node

	second := l.head
	for k := 0; k < j; k++ {
		secondPrevious = second
		second = second.next
	}

	if firstPrevious != nil {
		firstPrevious.next = second
	} else {
		l.head = second
	}

	if secondPrevious != nil {
		secondPrevious.next = first
	} else {
		l.head = first
	}

	// This exchange is correct even when the nodes are adjacent: the
	// transient self-link created above is resolved here.
	first.next, second.next = second.next, first.next

	if first == l.tail {
		l.tail = second
	} else if second == l.tail {
		l.tail = first
	}

	return nil
}

// CompareAt orders the elements at the two indices using the list's
// comparator. It exists for Sorter implementations outside this package.
func (l *List) CompareAt(i, j int) (int, error) {
	if l == nil {
		return 0, errors.ErrNilReference
	}

	first, err := l.nodeAt(i)
	if err != nil {
		return 0, err
	}

	second, err := l.nodeAt(j)
	if err != nil {
		return 0, err
	}

	return first.element.Compare(second.element, l.comparator), nil
}

// Validate checks the list's structural invariants and returns every
// violation found, joined into a single error. A nil return means the list
// is well-formed.
func (l *List) Validate() error {
	if l == nil {
		return errors.ErrNilReference
	}

	var problems errors.Collection

	if l.size < 0 {
		problems.Add(fmt.Errorf("size %d is negative", l.size))
	}

	if (l.size == 0) != (l.head == nil) || (l.size == 0) != (l.tail == nil) {
		problems.Add(fmt.Errorf("size %d disagrees with head/tail emptiness", l.size))
	}

	walked := 0

	var last *node

	for n := l.head; n != nil; n = n.next {
		if n.element == nil {
			problems.Add(fmt.Errorf("node %d holds no element", walked))
		}

		last = n
		walked++

		if walked > l.size {
			problems.Add(fmt.Errorf("chain is longer than size %d", l.size))

			break
		}
	}

	if walked < l.size {
		problems.Add(fmt.Errorf("chain of %d nodes is shorter than size %d", walked, l.size))
	}

	if last != nil && last != l.tail {
		problems.Add(fmt.Errorf("tail does not reference the last node"))
	}

	if l.comparator == nil {
		problems.Add(fmt.Errorf("comparator is nil"))
	}

	if l.sorter == nil {
		problems.Add(fmt.Errorf("sorter is nil"))
	}

	return problems.GetError()
}

// String returns a short rendering of the list for logs and debugging.
func (l *List) String() string {
	if l == nil {
		return "LinkedList(nil)"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "LinkedList(size=%d)[", l.size)

	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteString(", ")
		}

		b.WriteString(n.element.String())
	}

	b.WriteString("]")

	return b.String()
}

// nodeAt walks the chain to the node at index. The index must satisfy
// 0 <= index < size.
func (l *List) nodeAt(index int) (*node, error) {
	if index < 0 || index >= l.size {
		return nil, fmt.Errorf("%w: index %d with size %d", errors.ErrIndexOutOfRange, index, l.size)
	}

	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}

	return n, nil
}

// appendNode links an already-built node after the tail. The node's next
// must be nil.
func (l *List) appendNode(n *node) {
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		l.tail = n
	}

	l.size++
}

// unlink removes the node at index from the chain and returns it, fixing up
// head, tail and size.
func (l *List) unlink(index int) (*node, error) {
	if index < 0 || index >= l.size {
		return nil, fmt.Errorf("%w: index %d with size %d", errors.ErrIndexOutOfRange, index, l.size)
	}

	if index == 0 {
		removed := l.head

		l.head = removed.next
		removed.next = nil

		if l.head == nil {
			l.tail = nil
		}

		l.size--

		return removed, nil
	}

	previous, err := l.nodeAt(index - 1)
	if err != nil {
		return nil, err
	}

	removed := previous.next
	previous.next = removed.next
	removed.next = nil

	if removed == l.tail {
		l.tail = previous
	}

	l.size--

	return removed, nil
}
