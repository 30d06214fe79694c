package linkedlist

import (
	"github.com/amp-labs/amp-sequences/errors"
)

// Sorter is a replaceable sort strategy for a List. Implementations must
// reorder the list's elements in the requested direction using the list's
// comparator, which they can reach through Swap, CompareAt and Size.
type Sorter interface {
	Sort(list *List, ascending bool) error
}

// MergeSorter is the default Sorter: a recursive merge sort specialized for
// singly linked chains. It relinks nodes in place without copying payloads
// and threads the new tail pointer back up through every recursion level,
// since finding the tail by traversal would cost O(n) per merge.
//
// On ties the merge takes the first half's node, and splitting preserves
// relative order within each half, so the sort is stable.
type MergeSorter struct{}

var _ Sorter = MergeSorter{}

// Sort implements Sorter.
func (s MergeSorter) Sort(list *List, ascending bool) error {
	if list == nil {
		return errors.ErrNilReference
	}

	list.head, list.tail = s.mergeSort(list, list.head, ascending)

	return nil
}

// mergeSort sorts the chain starting at head and returns its new head and
// tail.
func (s MergeSorter) mergeSort(list *List, head *node, ascending bool) (*node, *node) {
	if head == nil || head.next == nil {
		return head, head
	}

	firstHalf, secondHalf := s.split(head)

	firstHalf, _ = s.mergeSort(list, firstHalf, ascending)
	secondHalf, _ = s.mergeSort(list, secondHalf, ascending)

	return s.merge(list, firstHalf, secondHalf, ascending)
}

// split divides the chain into halves of sizes ceil(n/2) and floor(n/2)
// using a slow cursor and a double-stepping fast cursor, severing the link
// between them.
func (s MergeSorter) split(head *node) (*node, *node) {
	slow := head
	fast := head.next

	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	secondHalf := slow.next
	slow.next = nil

	return head, secondHalf
}

// merge interleaves two sorted chains into one, returning its head and tail.
// Ties go to the first half, which is what makes the sort stable.
func (s MergeSorter) merge(list *List, firstHalf, secondHalf *node, ascending bool) (*node, *node) {
	if firstHalf == nil {
		return secondHalf, lastNode(secondHalf)
	}

	if secondHalf == nil {
		return firstHalf, lastNode(firstHalf)
	}

	var head, last *node

	for firstHalf != nil && secondHalf != nil {
		order := firstHalf.element.Compare(secondHalf.element, list.comparator)

		takeFirst := order <= 0
		if !ascending {
			takeFirst = order >= 0
		}

		var taken *node

		if takeFirst {
			taken = firstHalf
			firstHalf = firstHalf.next
		} else {
			taken = secondHalf
			secondHalf = secondHalf.next
		}

		if head == nil {
			head = taken
		} else {
			last.next = taken
		}

		last = taken
	}

	rest := firstHalf
	if rest == nil {
		rest = secondHalf
	}

	last.next = rest

	return head, lastNode(last)
}

func lastNode(n *node) *node {
	for n != nil && n.next != nil {
		n = n.next
	}

	return n
}
