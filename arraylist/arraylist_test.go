package arraylist

import (
	"encoding/binary"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-sequences/compare"
	"github.com/amp-labs/amp-sequences/errors"
)

// u32 renders an integer as a fixed 4-byte big-endian blob, so byte-wise
// ordering matches numeric ordering.
func u32(v uint32) []byte {
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, v)

	return out
}

func appendAll(t *testing.T, l *List, values ...[]byte) {
	t.Helper()

	for _, v := range values {
		require.NoError(t, l.Append(v))
	}
}

// contents collects deep copies of the list's payloads in order.
func contents(t *testing.T, l *List) [][]byte {
	t.Helper()

	out := make([][]byte, 0, l.Size())

	for i := 0; i < l.Size(); i++ {
		e, err := l.Get(i)
		require.NoError(t, err)

		out = append(out, e.Bytes())
	}

	return out
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("honors the requested capacity", func(t *testing.T) {
		t.Parallel()

		l := New(3)

		assert.Equal(t, 0, l.Size())
		assert.Equal(t, 3, l.Capacity())
	})

	t.Run("capacity below 1 falls back to the default", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, DefaultCapacity, New(0).Capacity())
		assert.Equal(t, DefaultCapacity, New(-5).Capacity())
	})

	t.Run("default comparator is byte-wise", func(t *testing.T) {
		t.Parallel()

		l := New(0)

		assert.IsType(t, compare.Bytewise{}, l.Comparator())
	})
}

func TestAppend(t *testing.T) {
	t.Parallel()

	t.Run("grows size by one and lands at the end", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(10), u32(20))

		require.Equal(t, 2, l.Size())

		last, err := l.Get(l.Size() - 1)
		require.NoError(t, err)
		assert.Equal(t, u32(20), last.Bytes())
	})

	t.Run("doubles capacity when full", func(t *testing.T) {
		t.Parallel()

		l := New(2)

		appendAll(t, l, u32(1), u32(2), u32(3))

		assert.Equal(t, 3, l.Size())
		assert.Equal(t, 4, l.Capacity())
		assert.Equal(t, [][]byte{u32(1), u32(2), u32(3)}, contents(t, l))
	})

	t.Run("nil list", func(t *testing.T) {
		t.Parallel()

		var l *List

		require.ErrorIs(t, l.Append(u32(1)), errors.ErrNilReference)
	})
}

func TestPrepend(t *testing.T) {
	t.Parallel()

	l := New(2)

	appendAll(t, l, u32(2), u32(3))
	require.NoError(t, l.Prepend(u32(1)))

	assert.Equal(t, [][]byte{u32(1), u32(2), u32(3)}, contents(t, l))
	assert.Equal(t, 4, l.Capacity())
}

func TestInsert(t *testing.T) {
	t.Parallel()

	t.Run("inserts mid-list and shifts", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1), u32(3))
		require.NoError(t, l.Insert(1, u32(2)))

		assert.Equal(t, [][]byte{u32(1), u32(2), u32(3)}, contents(t, l))
	})

	t.Run("index equal to size appends", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1))
		require.NoError(t, l.Insert(1, u32(2)))

		assert.Equal(t, [][]byte{u32(1), u32(2)}, contents(t, l))
	})

	t.Run("rejects out-of-range indices", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		require.ErrorIs(t, l.Insert(-1, u32(1)), errors.ErrIndexOutOfRange)
		require.ErrorIs(t, l.Insert(1, u32(1)), errors.ErrIndexOutOfRange)
	})
}

func TestGet(t *testing.T) {
	t.Parallel()

	t.Run("returns an independent deep copy", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(7))

		first, err := l.Get(0)
		require.NoError(t, err)
		require.NoError(t, first.Set([]byte{9, 9, 9, 9}))

		again, err := l.Get(0)
		require.NoError(t, err)
		assert.Equal(t, u32(7), again.Bytes())
	})

	t.Run("bound check is size-relative", func(t *testing.T) {
		t.Parallel()

		l := New(8)

		appendAll(t, l, u32(1))

		_, err := l.Get(1)
		require.ErrorIs(t, err, errors.ErrIndexOutOfRange)

		_, err = l.Get(-1)
		require.ErrorIs(t, err, errors.ErrIndexOutOfRange)
	})

	t.Run("nil list", func(t *testing.T) {
		t.Parallel()

		var l *List

		_, err := l.Get(0)
		require.ErrorIs(t, err, errors.ErrNilReference)
	})
}

func TestSet(t *testing.T) {
	t.Parallel()

	t.Run("replaces the payload in place", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1), u32(2))
		require.NoError(t, l.Set(1, u32(9)))

		assert.Equal(t, [][]byte{u32(1), u32(9)}, contents(t, l))
	})

	t.Run("accepts size changes", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1))
		require.NoError(t, l.Set(0, []byte{1, 2}))

		e, err := l.Get(0)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), e.Size())
	})

	t.Run("rejects zero-length values", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1))

		require.ErrorIs(t, l.Set(0, nil), errors.ErrInvalidParams)
		require.ErrorIs(t, l.Set(0, []byte{}), errors.ErrInvalidParams)
	})

	t.Run("rejects out-of-range indices", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		require.ErrorIs(t, l.Set(0, u32(1)), errors.ErrIndexOutOfRange)
	})
}

func TestRemove(t *testing.T) {
	t.Parallel()

	t.Run("removes and left-shifts", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1), u32(2), u32(3))
		require.NoError(t, l.Remove(1))

		assert.Equal(t, [][]byte{u32(1), u32(3)}, contents(t, l))
	})

	t.Run("removing the last valid index shrinks the list", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1), u32(2))
		require.NoError(t, l.Remove(l.Size()-1))

		assert.Equal(t, 1, l.Size())

		_, err := l.Get(l.Size())
		require.ErrorIs(t, err, errors.ErrIndexOutOfRange)
	})

	t.Run("bound check is capacity-relative", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1))

		// Indices in [size, capacity) pass the bound check but the slot is
		// empty, so the operation reports invalid parameters instead.
		require.ErrorIs(t, l.Remove(2), errors.ErrInvalidParams)

		// Indices at or beyond the capacity fail the bound check proper.
		require.ErrorIs(t, l.Remove(4), errors.ErrIndexOutOfRange)
		require.ErrorIs(t, l.Remove(-1), errors.ErrIndexOutOfRange)
	})
}

func TestPop(t *testing.T) {
	t.Parallel()

	t.Run("returns a copy and removes the original", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1), u32(2), u32(3))

		popped, err := l.Pop(1)
		require.NoError(t, err)

		assert.Equal(t, u32(2), popped.Bytes())
		assert.Equal(t, [][]byte{u32(1), u32(3)}, contents(t, l))
	})

	t.Run("popped element is independent of the list", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1), u32(2))

		popped, err := l.Pop(0)
		require.NoError(t, err)
		require.NoError(t, popped.Set(u32(99)))

		assert.Equal(t, [][]byte{u32(2)}, contents(t, l))
	})

	t.Run("bound check is capacity-relative", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1))

		_, err := l.Pop(3)
		require.ErrorIs(t, err, errors.ErrInvalidParams)

		_, err = l.Pop(4)
		require.ErrorIs(t, err, errors.ErrIndexOutOfRange)
	})
}

func TestReverse(t *testing.T) {
	t.Parallel()

	t.Run("odd length", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1), u32(2), u32(3))
		require.NoError(t, l.Reverse())

		assert.Equal(t, [][]byte{u32(3), u32(2), u32(1)}, contents(t, l))
	})

	t.Run("even length", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1), u32(2), u32(3), u32(4))
		require.NoError(t, l.Reverse())

		assert.Equal(t, [][]byte{u32(4), u32(3), u32(2), u32(1)}, contents(t, l))
	})

	t.Run("empty list is a no-op", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, New(4).Reverse())
	})
}

func TestClone(t *testing.T) {
	t.Parallel()

	t.Run("deep copies every element", func(t *testing.T) {
		t.Parallel()

		original := New(4)

		appendAll(t, original, u32(1), u32(2))

		clone, err := original.Clone()
		require.NoError(t, err)

		require.NoError(t, clone.Set(0, u32(99)))
		require.NoError(t, clone.Append(u32(3)))

		assert.Equal(t, [][]byte{u32(1), u32(2)}, contents(t, original))
		assert.Equal(t, [][]byte{u32(99), u32(2), u32(3)}, contents(t, clone))
	})

	t.Run("preserves size and capacity", func(t *testing.T) {
		t.Parallel()

		original := New(6)

		appendAll(t, original, u32(1))

		clone, err := original.Clone()
		require.NoError(t, err)

		assert.Equal(t, 1, clone.Size())
		assert.Equal(t, 6, clone.Capacity())
		require.NoError(t, clone.Validate())
	})
}

func TestClear(t *testing.T) {
	t.Parallel()

	l := New(4)

	appendAll(t, l, u32(1), u32(2))
	require.NoError(t, l.Clear())

	assert.Equal(t, 0, l.Size())
	assert.Equal(t, 4, l.Capacity())
	require.NoError(t, l.Validate())
}

func TestJoin(t *testing.T) {
	t.Parallel()

	t.Run("concatenates in order with exact size", func(t *testing.T) {
		t.Parallel()

		a := New(4)
		b := New(4)

		appendAll(t, a, u32(1), u32(2))
		appendAll(t, b, u32(3))

		joined, err := a.Join(b)
		require.NoError(t, err)

		assert.Equal(t, 3, joined.Size())
		assert.Equal(t, [][]byte{u32(1), u32(2), u32(3)}, contents(t, joined))
	})

	t.Run("joined list never aliases its inputs", func(t *testing.T) {
		t.Parallel()

		a := New(4)
		b := New(4)

		appendAll(t, a, u32(1))
		appendAll(t, b, u32(2))

		joined, err := a.Join(b)
		require.NoError(t, err)

		require.NoError(t, joined.Set(0, u32(77)))
		require.NoError(t, joined.Set(1, u32(88)))

		assert.Equal(t, [][]byte{u32(1)}, contents(t, a))
		assert.Equal(t, [][]byte{u32(2)}, contents(t, b))
	})

	t.Run("joining two empty lists yields an empty list", func(t *testing.T) {
		t.Parallel()

		joined, err := New(4).Join(New(4))
		require.NoError(t, err)

		assert.Equal(t, 0, joined.Size())
		require.NoError(t, joined.Validate())
	})

	t.Run("nil input", func(t *testing.T) {
		t.Parallel()

		_, err := New(4).Join(nil)
		require.ErrorIs(t, err, errors.ErrNilReference)
	})
}

func TestSearching(t *testing.T) {
	t.Parallel()

	t.Run("Includes", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1), u32(2))

		found, err := l.Includes(u32(2))
		require.NoError(t, err)
		assert.True(t, found)

		found, err = l.Includes(u32(9))
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Includes skips size mismatches", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		// One byte of 0x01 versus four bytes starting with 0x01.
		appendAll(t, l, []byte{1})

		found, err := l.Includes([]byte{1, 0, 0, 0})
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("FindFirst honors the start index", func(t *testing.T) {
		t.Parallel()

		l := New(8)

		appendAll(t, l, u32(5), u32(3), u32(5))

		idx, err := l.FindFirst(u32(5), 0)
		require.NoError(t, err)
		assert.Equal(t, 0, idx)

		idx, err = l.FindFirst(u32(5), 1)
		require.NoError(t, err)
		assert.Equal(t, 2, idx)
	})

	t.Run("FindFirst rejects bad start indices as invalid params", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1))

		idx, err := l.FindFirst(u32(1), 1)
		require.ErrorIs(t, err, errors.ErrInvalidParams)
		assert.Equal(t, -1, idx)

		idx, err = l.FindFirst(u32(1), -1)
		require.ErrorIs(t, err, errors.ErrInvalidParams)
		assert.Equal(t, -1, idx)
	})

	t.Run("FindLast rejects bad start indices as out of range", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1))

		idx, err := l.FindLast(u32(1), 1)
		require.ErrorIs(t, err, errors.ErrIndexOutOfRange)
		assert.Equal(t, -1, idx)
	})

	t.Run("misses report ErrElementNotFound", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1))

		idx, err := l.FindFirst(u32(9), 0)
		require.ErrorIs(t, err, errors.ErrElementNotFound)
		assert.Equal(t, -1, idx)

		idx, err = l.FindLast(u32(9), 0)
		require.ErrorIs(t, err, errors.ErrElementNotFound)
		assert.Equal(t, -1, idx)
	})

	t.Run("zero-length queries are invalid", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1))

		_, err := l.FindFirst(nil, 0)
		require.ErrorIs(t, err, errors.ErrInvalidParams)

		_, err = l.FindLast(nil, 0)
		require.ErrorIs(t, err, errors.ErrInvalidParams)
	})
}

func TestSort(t *testing.T) {
	t.Parallel()

	t.Run("sorts ascending with duplicates", func(t *testing.T) {
		t.Parallel()

		l := New(8, WithLogger(slogt.New(t)))

		appendAll(t, l, u32(5), u32(3), u32(5), u32(1))
		require.NoError(t, l.Sort(true))

		assert.Equal(t, [][]byte{u32(1), u32(3), u32(5), u32(5)}, contents(t, l))

		idx, err := l.FindFirst(u32(5), 0)
		require.NoError(t, err)
		assert.Equal(t, 2, idx)

		idx, err = l.FindLast(u32(5), 0)
		require.NoError(t, err)
		assert.Equal(t, 3, idx)
	})

	t.Run("descending is the exact reverse of ascending", func(t *testing.T) {
		t.Parallel()

		values := [][]byte{u32(4), u32(1), u32(7), u32(1), u32(9), u32(3), u32(3), u32(8)}

		l := New(8)

		appendAll(t, l, values...)

		require.NoError(t, l.Sort(true))
		ascending := contents(t, l)

		require.NoError(t, l.Sort(false))
		descending := contents(t, l)

		for i := range ascending {
			assert.Equal(t, ascending[i], descending[len(descending)-1-i])
		}
	})

	t.Run("two elements", func(t *testing.T) {
		t.Parallel()

		l := New(2)

		appendAll(t, l, u32(2), u32(1))
		require.NoError(t, l.Sort(true))

		assert.Equal(t, [][]byte{u32(1), u32(2)}, contents(t, l))
	})

	t.Run("adversarial small permutations", func(t *testing.T) {
		t.Parallel()

		// Shapes that punish quicksorts with broken small-partition handling.
		inputs := [][]uint32{
			{2, 1, 4, 3},
			{4, 3, 2, 1},
			{1, 2, 3, 4},
			{3, 1, 2},
			{5, 4, 3, 2, 1, 9, 8, 7, 6},
		}

		for _, input := range inputs {
			l := New(0)

			for _, v := range input {
				require.NoError(t, l.Append(u32(v)))
			}

			require.NoError(t, l.Sort(true))

			got := contents(t, l)
			for i := 1; i < len(got); i++ {
				assert.LessOrEqual(t, string(got[i-1]), string(got[i]),
					"input %v not sorted at position %d", input, i)
			}
		}
	})

	t.Run("empty and single-element lists are no-ops", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, New(4).Sort(true))

		l := New(4)

		appendAll(t, l, u32(1))
		require.NoError(t, l.Sort(false))

		assert.Equal(t, [][]byte{u32(1)}, contents(t, l))
	})

	t.Run("custom comparator drives the ordering", func(t *testing.T) {
		t.Parallel()

		// Order by the last byte only.
		lastByte := compare.Func(func(a, b []byte) int {
			return int(a[len(a)-1]) - int(b[len(b)-1])
		})

		l := New(4, WithComparator(lastByte))

		appendAll(t, l, []byte{9, 3}, []byte{0, 1}, []byte{5, 2})
		require.NoError(t, l.Sort(true))

		assert.Equal(t, [][]byte{{0, 1}, {5, 2}, {9, 3}}, contents(t, l))
	})

	t.Run("custom sorter replaces the strategy", func(t *testing.T) {
		t.Parallel()

		sorter := &recordingSorter{}

		l := New(4, WithSorter(sorter))

		appendAll(t, l, u32(2), u32(1))
		require.NoError(t, l.Sort(true))

		assert.Equal(t, 1, sorter.calls)
		assert.Equal(t, [][]byte{u32(1), u32(2)}, contents(t, l))
	})
}

// recordingSorter counts invocations and delegates to a selection sort built
// purely on the exported strategy surface.
type recordingSorter struct {
	calls int
}

func (s *recordingSorter) Sort(list *List, ascending bool) error {
	s.calls++

	for i := 0; i < list.Size(); i++ {
		best := i

		for j := i + 1; j < list.Size(); j++ {
			order, err := list.CompareAt(j, best)
			if err != nil {
				return err
			}

			if (ascending && order < 0) || (!ascending && order > 0) {
				best = j
			}
		}

		if err := list.Swap(i, best); err != nil {
			return err
		}
	}

	return nil
}

func TestFill(t *testing.T) {
	t.Parallel()

	l := New(4)

	appendAll(t, l, u32(1))
	require.NoError(t, l.Fill(u32(7)))

	assert.Equal(t, 4, l.Size())
	assert.Equal(t, [][]byte{u32(1), u32(7), u32(7), u32(7)}, contents(t, l))
	require.NoError(t, l.Validate())
}

func TestSwap(t *testing.T) {
	t.Parallel()

	t.Run("exchanges two slots", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1), u32(2), u32(3))
		require.NoError(t, l.Swap(0, 2))

		assert.Equal(t, [][]byte{u32(3), u32(2), u32(1)}, contents(t, l))
	})

	t.Run("self-swap is a no-op", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1))
		require.NoError(t, l.Swap(0, 0))

		assert.Equal(t, [][]byte{u32(1)}, contents(t, l))
	})

	t.Run("bound checks are size-relative", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1))

		require.ErrorIs(t, l.Swap(0, 1), errors.ErrIndexOutOfRange)
		require.ErrorIs(t, l.Swap(1, 0), errors.ErrIndexOutOfRange)
	})
}

func TestResize(t *testing.T) {
	t.Parallel()

	t.Run("shrinking clamps the size", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1), u32(2), u32(3))
		require.NoError(t, l.Resize(2))

		assert.Equal(t, 2, l.Size())
		assert.Equal(t, 2, l.Capacity())
		assert.Equal(t, [][]byte{u32(1), u32(2)}, contents(t, l))
		require.NoError(t, l.Validate())
	})

	t.Run("growing preserves contents", func(t *testing.T) {
		t.Parallel()

		l := New(2)

		appendAll(t, l, u32(1), u32(2))
		require.NoError(t, l.Resize(10))

		assert.Equal(t, 10, l.Capacity())
		assert.Equal(t, [][]byte{u32(1), u32(2)}, contents(t, l))
	})

	t.Run("rejects capacities below 1", func(t *testing.T) {
		t.Parallel()

		require.ErrorIs(t, New(4).Resize(0), errors.ErrInvalidParams)
	})
}

func TestIterator(t *testing.T) {
	t.Parallel()

	t.Run("walks the list and auto-rewinds", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1), u32(2))

		it := l.Iterator()
		assert.Equal(t, -1, it.Index())
		assert.Nil(t, it.Element())

		require.NoError(t, it.Next())
		assert.Equal(t, 0, it.Index())
		assert.Equal(t, u32(1), it.Element().Bytes())

		require.NoError(t, it.Next())
		assert.Equal(t, 1, it.Index())
		assert.Equal(t, u32(2), it.Element().Bytes())

		// Advancing past the end rewinds instead of parking on a terminal
		// state.
		require.ErrorIs(t, it.Next(), errors.ErrIndexOutOfRange)
		assert.Equal(t, -1, it.Index())
		assert.Nil(t, it.Element())

		// The next call starts over from the first element.
		require.NoError(t, it.Next())
		assert.Equal(t, 0, it.Index())
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()

		it := New(4).Iterator()

		require.ErrorIs(t, it.Next(), errors.ErrIndexOutOfRange)
		assert.Equal(t, -1, it.Index())
	})

	t.Run("rewind forces unstarted from any state", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1), u32(2))

		it := l.Iterator()
		require.NoError(t, it.Next())

		it.Rewind()

		assert.Equal(t, -1, it.Index())
		assert.Nil(t, it.Element())
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("well-formed lists pass", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1), u32(2))

		require.NoError(t, l.Validate())
	})

	t.Run("corrupted lists report every violation", func(t *testing.T) {
		t.Parallel()

		l := New(4)

		appendAll(t, l, u32(1))

		// Simulate corruption: a populated slot outside the logical size.
		l.items[2] = l.items[0]
		l.items[0] = nil

		err := l.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "slot")
	})
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var l *List

	assert.Equal(t, 0, l.Size())
	assert.Equal(t, 0, l.Capacity())
	require.ErrorIs(t, l.Resize(4), errors.ErrNilReference)
	require.ErrorIs(t, l.Prepend(u32(1)), errors.ErrNilReference)
	require.ErrorIs(t, l.Insert(0, u32(1)), errors.ErrNilReference)
	require.ErrorIs(t, l.Set(0, u32(1)), errors.ErrNilReference)
	require.ErrorIs(t, l.Remove(0), errors.ErrNilReference)
	require.ErrorIs(t, l.Reverse(), errors.ErrNilReference)
	require.ErrorIs(t, l.Clear(), errors.ErrNilReference)
	require.ErrorIs(t, l.Sort(true), errors.ErrNilReference)
	require.ErrorIs(t, l.Fill(u32(1)), errors.ErrNilReference)
	require.ErrorIs(t, l.Swap(0, 1), errors.ErrNilReference)
	require.ErrorIs(t, l.Validate(), errors.ErrNilReference)

	_, err := l.Pop(0)
	require.ErrorIs(t, err, errors.ErrNilReference)

	_, err = l.Clone()
	require.ErrorIs(t, err, errors.ErrNilReference)

	_, err = l.Includes(u32(1))
	require.ErrorIs(t, err, errors.ErrNilReference)

	_, err = l.FindFirst(u32(1), 0)
	require.ErrorIs(t, err, errors.ErrNilReference)

	_, err = l.FindLast(u32(1), 0)
	require.ErrorIs(t, err, errors.ErrNilReference)

	_, err = l.CompareAt(0, 1)
	require.ErrorIs(t, err, errors.ErrNilReference)

	assert.Equal(t, "ArrayList(nil)", l.String())
}
