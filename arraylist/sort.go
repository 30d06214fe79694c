package arraylist

import (
	"github.com/amp-labs/amp-sequences/assert"
	"github.com/amp-labs/amp-sequences/errors"
)

// Sorter is a replaceable sort strategy for a List. Implementations must
// reorder the list's elements in the requested direction using the list's
// comparator, which they can reach through Swap, CompareAt and Size.
type Sorter interface {
	Sort(list *List, ascending bool) error
}

// QuickSorter is the default Sorter: an in-place median-of-three quicksort.
// Equal elements are kept on the left-hand side of the pivot, which makes
// the sort non-stable.
type QuickSorter struct{}

var _ Sorter = QuickSorter{}

// Sort implements Sorter.
func (s QuickSorter) Sort(list *List, ascending bool) error {
	if list == nil {
		return errors.ErrNilReference
	}

	return s.quicksort(list, 0, list.Size()-1, ascending)
}

func (s QuickSorter) quicksort(list *List, low, high int, ascending bool) error {
	if low >= high {
		return nil
	}

	if high == low+1 {
		return s.orderPair(list, low, high, ascending)
	}

	pivot, err := s.partition(list, low, high, ascending)
	if err != nil {
		return err
	}

	if err := s.quicksort(list, low, pivot-1, ascending); err != nil {
		return err
	}

	return s.quicksort(list, pivot+1, high, ascending)
}

// partition reorders [low, high] around a median-of-three pivot and returns
// the pivot's final index. The low, mid and high elements are first ordered
// among themselves, then the median is parked at high-1 to serve as the
// pivot while [low, high-2] is partitioned around its value.
func (s QuickSorter) partition(list *List, low, high int, ascending bool) (int, error) {
	assert.True(high-low+1 >= 3, "partition of %d elements", high-low+1)

	mid := low + (high-low)/2

	if err := s.orderPair(list, low, mid, ascending); err != nil {
		return 0, err
	}

	if err := s.orderPair(list, low, high, ascending); err != nil {
		return 0, err
	}

	if err := s.orderPair(list, mid, high, ascending); err != nil {
		return 0, err
	}

	if err := list.Swap(mid, high-1); err != nil {
		return 0, err
	}

	pivot := high - 1
	boundary := low - 1

	for j := low; j <= high-2; j++ {
		order, err := list.CompareAt(j, pivot)
		if err != nil {
			return 0, err
		}

		keepLeft := order <= 0
		if !ascending {
			keepLeft = order >= 0
		}

		if keepLeft {
			boundary++

			if err := list.Swap(boundary, j); err != nil {
				return 0, err
			}
		}
	}

	if err := list.Swap(boundary+1, pivot); err != nil {
		return 0, err
	}

	return boundary + 1, nil
}

// orderPair swaps the elements at the two indices if they are out of order
// for the requested direction.
func (s QuickSorter) orderPair(list *List, i, j int, ascending bool) error {
	order, err := list.CompareAt(i, j)
	if err != nil {
		return err
	}

	misordered := order > 0
	if !ascending {
		misordered = order < 0
	}

	if misordered {
		return list.Swap(i, j)
	}

	return nil
}
