// Package element defines the unit of storage shared by the sequence
// containers: a size-tagged, exclusively owned byte payload. A payload may be
// absent, which is a distinct valid state (a null placeholder) rather than an
// error; absence is modeled with an explicit optional value, never a nil
// slice handed to callers.
//
// Elements never share storage. Construction and cloning deep-copy the bytes,
// and accessors hand out copies, so mutating anything a caller receives can
// never change what a container holds.
package element

import (
	"fmt"
	"hash"

	"github.com/amp-labs/amp-sequences/compare"
	"github.com/amp-labs/amp-sequences/errors"
	"github.com/amp-labs/amp-sequences/hashing"
	"github.com/amp-labs/amp-sequences/optional"
)

// Element is a size-tagged owned byte buffer, or an explicit absence.
// The zero Element is blank (absent payload, size 0).
type Element struct {
	size  uint64
	value optional.Value[[]byte]
}

var _ hashing.Hashable = (*Element)(nil)

// New creates an Element owning a deep copy of the given bytes.
// A nil value produces a blank Element.
func New(value []byte) *Element {
	if value == nil {
		return Blank()
	}

	owned := make([]byte, len(value))
	copy(owned, value)

	return &Element{
		size:  uint64(len(owned)),
		value: optional.Some(owned),
	}
}

// Blank creates an Element with an absent payload and size 0.
func Blank() *Element {
	return &Element{
		size:  0,
		value: optional.None[[]byte](),
	}
}

// Size returns the length in bytes of the stored payload.
func (e *Element) Size() uint64 {
	return e.size
}

// Present returns true if the Element holds a payload.
func (e *Element) Present() bool {
	return e.value.NonEmpty()
}

// Absent returns true if the Element holds no payload.
func (e *Element) Absent() bool {
	return e.value.Empty()
}

// Bytes returns a copy of the stored payload, or nil if the payload is
// absent. The returned slice is owned by the caller; mutating it never
// affects the Element.
func (e *Element) Bytes() []byte {
	raw, ok := e.value.Get()
	if !ok {
		return nil
	}

	out := make([]byte, len(raw))
	copy(out, raw)

	return out
}

// Value returns the stored payload as an optional, copying the bytes so the
// caller cannot alias internal storage.
func (e *Element) Value() optional.Value[[]byte] {
	return optional.Map(e.value, func(raw []byte) []byte {
		out := make([]byte, len(raw))
		copy(out, raw)

		return out
	})
}

// Set replaces the payload with a deep copy of the given bytes, reusing the
// existing buffer when the size is unchanged and reallocating otherwise.
// A zero-length value is rejected with ErrInvalidParams.
func (e *Element) Set(value []byte) error {
	if len(value) == 0 {
		return fmt.Errorf("%w: cannot set a zero-length value", errors.ErrInvalidParams)
	}

	newSize := uint64(len(value))

	buf, ok := e.value.Get()
	if !ok || e.size != newSize {
		buf = make([]byte, newSize)
	}

	copy(buf, value)

	e.size = newSize
	e.value = optional.Some(buf)

	return nil
}

// Clone returns an independent deep copy of the Element.
func (e *Element) Clone() *Element {
	clone := &Element{
		size: e.size,
		value: optional.Map(e.value, func(raw []byte) []byte {
			out := make([]byte, len(raw))
			copy(out, raw)

			return out
		}),
	}

	return clone
}

// Equals reports whether two Elements hold byte-wise identical payloads.
// Two blank Elements are equal; a blank Element never equals a present one.
func (e *Element) Equals(other *Element) bool {
	if other == nil {
		return false
	}

	if e.size != other.size {
		return false
	}

	return e.Compare(other, compare.Bytewise{}) == 0
}

// Compare orders this Element against another using the given comparator.
// The comparator sees the raw payloads, with absence passed through as nil.
func (e *Element) Compare(other *Element, cmp compare.Comparator) int {
	return cmp.Compare(e.raw(), other.raw())
}

// CompareBytes orders the Element's payload against the given bytes using
// the given comparator.
func (e *Element) CompareBytes(value []byte, cmp compare.Comparator) int {
	return cmp.Compare(e.raw(), value)
}

// Fingerprint returns a fast 64-bit hash of the payload, usable for cheap
// change detection. Blank Elements all share one fingerprint.
func (e *Element) Fingerprint() uint64 {
	return hashing.Fingerprint(e.raw())
}

// UpdateHash implements hashing.Hashable by writing the payload into the
// hash. A blank Element contributes nothing.
func (e *Element) UpdateHash(h hash.Hash) error {
	raw := e.raw()
	if raw == nil {
		return nil
	}

	_, err := h.Write(raw)

	return err
}

// String returns a short description of the Element for logs and debugging.
func (e *Element) String() string {
	if e.Absent() {
		return "Element(absent)"
	}

	return fmt.Sprintf("Element(%d bytes, fp=%016x)", e.size, e.Fingerprint())
}

// raw returns the internal payload without copying, or nil when absent.
// For use by the comparison paths only; the slice must not escape.
func (e *Element) raw() []byte {
	raw, ok := e.value.Get()
	if !ok {
		return nil
	}

	return raw
}
