// Package arraylist provides a resizable, array-backed ordered sequence of
// type-erased byte payloads. Appending is amortized O(1), indexed access is
// O(1), and insertion or removal anywhere else is O(n) due to shifting.
//
// The list owns every element it stores: values are deep-copied on the way in
// and deep-copied on the way out, so callers never alias internal storage.
// Ordering and sorting behavior are pluggable at construction time through a
// compare.Comparator and a Sorter.
//
// Lists are not safe for concurrent use.
package arraylist

import (
	"fmt"
	"math"
	"strings"

	"github.com/amp-labs/amp-sequences/compare"
	"github.com/amp-labs/amp-sequences/element"
	"github.com/amp-labs/amp-sequences/errors"
)

// DefaultCapacity is the backing capacity used when New is given a
// capacity below 1.
const DefaultCapacity = 8

// List is a growable ordered sequence of optional elements.
//
// Slots [0, size) hold the logical contents of the list; slots
// [size, capacity) are unused and empty. The capacity doubles whenever an
// insertion finds the list full.
type List struct {
	size       int
	items      []*element.Element // len(items) == capacity
	comparator compare.Comparator
	sorter     Sorter
	logger     logger
}

// New creates a List with the given initial capacity. A capacity below 1
// falls back to DefaultCapacity. Behavior is customized with options:
// WithComparator, WithSorter and WithLogger.
func New(capacity int, opts ...Option) *List {
	conf := applyOptions(opts)

	if capacity < 1 {
		capacity = DefaultCapacity
	}

	return &List{
		size:       0,
		items:      make([]*element.Element, capacity),
		comparator: conf.comparator,
		sorter:     conf.sorter,
		logger:     newLogger(conf.logger),
	}
}

// Size returns the number of logically present elements.
func (l *List) Size() int {
	if l == nil {
		return 0
	}

	return l.size
}

// Capacity returns the number of allocated slots.
func (l *List) Capacity() int {
	if l == nil {
		return 0
	}

	return len(l.items)
}

// Comparator returns the list's active comparator. Custom Sorter
// implementations should order elements through CompareAt instead.
func (l *List) Comparator() compare.Comparator {
	if l == nil {
		return nil
	}

	return l.comparator
}

// Resize changes the backing capacity. Shrinking below the current size
// destroys the elements beyond the new capacity and clamps the size.
// A capacity below 1 is rejected with ErrInvalidParams.
func (l *List) Resize(capacity int) error {
	if l == nil {
		return errors.ErrNilReference
	}

	if capacity < 1 {
		return fmt.Errorf("%w: capacity %d is below 1", errors.ErrInvalidParams, capacity)
	}

	if capacity == len(l.items) {
		return nil
	}

	l.logger.debug("resizing list", "from", len(l.items), "to", capacity)

	items := make([]*element.Element, capacity)
	copy(items, l.items)

	l.items = items

	if l.size > capacity {
		l.size = capacity
	}

	return nil
}

// Prepend inserts a deep copy of value at index 0, shifting every element
// one slot to the right. The capacity doubles if the list is full.
func (l *List) Prepend(value []byte) error {
	if l == nil {
		return errors.ErrNilReference
	}

	if err := l.growIfFull(); err != nil {
		return err
	}

	copy(l.items[1:l.size+1], l.items[:l.size])

	l.items[0] = element.New(value)
	l.size++

	return nil
}

// Append inserts a deep copy of value after the last element. The capacity
// doubles if the list is full.
func (l *List) Append(value []byte) error {
	if l == nil {
		return errors.ErrNilReference
	}

	if err := l.growIfFull(); err != nil {
		return err
	}

	l.items[l.size] = element.New(value)
	l.size++

	return nil
}

// Insert places a deep copy of value at the given index, shifting later
// elements to the right. The index must satisfy 0 <= index <= size.
func (l *List) Insert(index int, value []byte) error {
	if l == nil {
		return errors.ErrNilReference
	}

	if index < 0 || index > l.size {
		return fmt.Errorf("%w: insert index %d with size %d", errors.ErrIndexOutOfRange, index, l.size)
	}

	if err := l.growIfFull(); err != nil {
		return err
	}

	copy(l.items[index+1:l.size+1], l.items[index:l.size])

	l.items[index] = element.New(value)
	l.size++

	return nil
}

// Get returns a deep copy of the element at the given index. The caller owns
// the returned element. The index must satisfy 0 <= index < size.
func (l *List) Get(index int) (*element.Element, error) {
	if l == nil {
		return nil, errors.ErrNilReference
	}

	if index < 0 || index >= l.size {
		return nil, fmt.Errorf("%w: get index %d with size %d", errors.ErrIndexOutOfRange, index, l.size)
	}

	if l.items[index] == nil {
		return nil, fmt.Errorf("%w: slot %d holds no element", errors.ErrInvalidParams, index)
	}

	return l.items[index].Clone(), nil
}

// Set replaces the payload at the given index with a deep copy of value,
// reallocating the slot's buffer only if the size changed. A zero-length
// value is rejected with ErrInvalidParams. The index must satisfy
// 0 <= index < size.
func (l *List) Set(index int, value []byte) error {
	if l == nil {
		return errors.ErrNilReference
	}

	if index < 0 || index >= l.size {
		return fmt.Errorf("%w: set index %d with size %d", errors.ErrIndexOutOfRange, index, l.size)
	}

	if len(value) == 0 {
		return fmt.Errorf("%w: cannot set a zero-length value", errors.ErrInvalidParams)
	}

	if l.items[index] == nil {
		l.items[index] = element.New(value)

		return nil
	}

	return l.items[index].Set(value)
}

// Remove destroys the element at the given index and shifts later elements
// left. The bound check is capacity-relative, not size-relative: indices in
// [size, capacity) pass the check but fail with ErrInvalidParams because the
// slot holds no element. This quirk is part of the documented contract.
func (l *List) Remove(index int) error {
	if l == nil {
		return errors.ErrNilReference
	}

	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: remove index %d with capacity %d", errors.ErrIndexOutOfRange, index, len(l.items))
	}

	if l.items[index] == nil {
		return fmt.Errorf("%w: slot %d holds no element", errors.ErrInvalidParams, index)
	}

	l.shiftOut(index)

	return nil
}

// Pop returns a deep copy of the element at the given index and removes it,
// atomically from the caller's perspective. The bound check is
// capacity-relative, matching Remove.
func (l *List) Pop(index int) (*element.Element, error) {
	if l == nil {
		return nil, errors.ErrNilReference
	}

	if index < 0 || index >= len(l.items) {
		return nil, fmt.Errorf("%w: pop index %d with capacity %d", errors.ErrIndexOutOfRange, index, len(l.items))
	}

	if l.items[index] == nil {
		return nil, fmt.Errorf("%w: slot %d holds no element", errors.ErrInvalidParams, index)
	}

	popped := l.items[index].Clone()

	l.shiftOut(index)

	return popped, nil
}

// Reverse reverses the order of the elements in place, swapping from both
// ends toward the middle.
func (l *List) Reverse() error {
	if l == nil {
		return errors.ErrNilReference
	}

	for left, right := 0, l.size-1; left < right; left, right = left+1, right-1 {
		l.items[left], l.items[right] = l.items[right], l.items[left]
	}

	return nil
}

// Clone returns an independent List with every element deep-copied. The
// clone shares no storage with the original and carries the same comparator,
// sorter and logger.
func (l *List) Clone() (*List, error) {
	if l == nil {
		return nil, errors.ErrNilReference
	}

	clone := &List{
		size:       l.size,
		items:      make([]*element.Element, len(l.items)),
		comparator: l.comparator,
		sorter:     l.sorter,
		logger:     l.logger.fork(),
	}

	for i := 0; i < l.size; i++ {
		clone.items[i] = l.items[i].Clone()
	}

	return clone, nil
}

// Clear destroys every element and resets the size to 0. The capacity is
// unchanged.
func (l *List) Clear() error {
	if l == nil {
		return errors.ErrNilReference
	}

	l.logger.debug("clearing list", "size", l.size)

	for i := 0; i < l.size; i++ {
		l.items[i] = nil
	}

	l.size = 0

	return nil
}

// Join produces a new List holding deep copies of the receiver's elements
// followed by deep copies of other's elements. Its size is exactly the sum
// of the input sizes and it carries the receiver's comparator, sorter and
// logger. Neither input is modified.
func (l *List) Join(other *List) (*List, error) {
	if l == nil || other == nil {
		return nil, errors.ErrNilReference
	}

	total := l.size + other.size

	capacity := total
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	joined := &List{
		size:       total,
		items:      make([]*element.Element, capacity),
		comparator: l.comparator,
		sorter:     l.sorter,
		logger:     l.logger.fork(),
	}

	at := 0

	for i := 0; i < l.size; i++ {
		joined.items[at] = l.items[i].Clone()
		at++
	}

	for i := 0; i < other.size; i++ {
		joined.items[at] = other.items[i].Clone()
		at++
	}

	return joined, nil
}

// Includes reports whether the list contains an element equal to value under
// the list's comparator. Elements whose stored size differs from the query
// size are skipped without comparison.
func (l *List) Includes(value []byte) (bool, error) {
	if l == nil {
		return false, errors.ErrNilReference
	}

	querySize := uint64(len(value))

	for i := 0; i < l.size; i++ {
		if l.items[i].Size() != querySize {
			continue
		}

		if l.items[i].CompareBytes(value, l.comparator) == 0 {
			return true, nil
		}
	}

	return false, nil
}

// FindFirst returns the index of the first element equal to value under the
// list's comparator, scanning forward from start. Elements whose stored size
// differs from the query size are skipped. A start index outside [0, size)
// or a zero-length value is rejected with ErrInvalidParams. Returns -1 and
// ErrElementNotFound when no element matches.
func (l *List) FindFirst(value []byte, start int) (int, error) {
	if l == nil {
		return -1, errors.ErrNilReference
	}

	if start < 0 || start >= l.size {
		return -1, fmt.Errorf("%w: start index %d with size %d", errors.ErrInvalidParams, start, l.size)
	}

	if len(value) == 0 {
		return -1, fmt.Errorf("%w: cannot search for a zero-length value", errors.ErrInvalidParams)
	}

	querySize := uint64(len(value))

	for i := start; i < l.size; i++ {
		if l.items[i].Size() != querySize {
			continue
		}

		if l.items[i].CompareBytes(value, l.comparator) == 0 {
			return i, nil
		}
	}

	return -1, errors.ErrElementNotFound
}

// FindLast returns the index of the last element equal to value under the
// list's comparator, scanning from start to the end of the list. Elements
// whose stored size differs from the query size are skipped. A start index
// outside [0, size) is rejected with ErrIndexOutOfRange (unlike FindFirst,
// preserving each operation's original bound contract); a zero-length value
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

	for i := start; i < l.size; i++ {
		if l.items[i].Size() != querySize {
			continue
		}

		if l.items[i].CompareBytes(value, l.comparator) == 0 {
			found = i
		}
	}

	if found == -1 {
		return -1, errors.ErrElementNotFound
	}

	return found, nil
}

// Sort reorders the elements using the list's sort strategy and comparator.
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

// Fill populates every unused capacity slot with a deep copy of value and
// sets the size to the capacity.
func (l *List) Fill(value []byte) error {
	if l == nil {
		return errors.ErrNilReference
	}

	for i := l.size; i < len(l.items); i++ {
		l.items[i] = element.New(value)
	}

	l.size = len(l.items)

	return nil
}

// Swap exchanges the elements at the two indices. Both indices must satisfy
// 0 <= index < size. Swapping an index with itself is a no-op.
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

	l.items[i], l.items[j] = l.items[j], l.items[i]

	return nil
}

// CompareAt orders the elements at the two indices using the list's
// comparator. It exists for Sorter implementations outside this package.
func (l *List) CompareAt(i, j int) (int, error) {
	if l == nil {
		return 0, errors.ErrNilReference
	}

	if i < 0 || i >= l.size {
		return 0, fmt.Errorf("%w: compare index %d with size %d", errors.ErrIndexOutOfRange, i, l.size)
	}

	if j < 0 || j >= l.size {
		return 0, fmt.Errorf("%w: compare index %d with size %d", errors.ErrIndexOutOfRange, j, l.size)
	}

	return l.items[i].Compare(l.items[j], l.comparator), nil
}

// Validate checks the list's structural invariants and returns every
// violation found, joined into a single error. A nil return means the list
// is well-formed.
func (l *List) Validate() error {
	if l == nil {
		return errors.ErrNilReference
	}

	var problems errors.Collection

	if l.size < 0 || l.size > len(l.items) {
		problems.Add(fmt.Errorf("size %d outside [0, %d]", l.size, len(l.items)))
	}

	for i := 0; i < l.size && i < len(l.items); i++ {
		if l.items[i] == nil {
			problems.Add(fmt.Errorf("populated slot %d holds no element", i))
		}
	}

	for i := l.size; i >= 0 && i < len(l.items); i++ {
		if l.items[i] != nil {
			problems.Add(fmt.Errorf("unused slot %d holds an element", i))
		}
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
		return "ArrayList(nil)"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "ArrayList(size=%d, cap=%d)[", l.size, len(l.items))

	for i := 0; i < l.size; i++ {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(l.items[i].String())
	}

	b.WriteString("]")

	return b.String()
}

// growIfFull doubles the capacity when every slot is occupied.
func (l *List) growIfFull() error {
	if l.size < len(l.items) {
		return nil
	}

	if len(l.items) > math.MaxInt/2 {
		return fmt.Errorf("%w: cannot double capacity %d", errors.ErrAllocationFailure, len(l.items))
	}

	return l.Resize(len(l.items) * 2)
}

// shiftOut drops the element at index and left-shifts the rest of the
// populated prefix. Bounds are the caller's responsibility.
func (l *List) shiftOut(index int) {
	copy(l.items[index:l.size-1], l.items[index+1:l.size])

	l.items[l.size-1] = nil
	l.size--
}
