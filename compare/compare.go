// Package compare provides the pluggable three-way ordering used by the
// sequence containers. A store is given a Comparator at construction time and
// consults it for sorting and searching; Bytewise is the default.
package compare

import "bytes"

// Comparator is a three-way ordering over two same-sized payloads.
// Compare returns a negative value if a orders before b, zero if they are
// equal, and a positive value if a orders after b. An absent payload is
// represented as a nil slice and must order before any present payload;
// two absent payloads are equal.
type Comparator interface {
	Compare(a, b []byte) int
}

// Func adapts an ordinary function to the Comparator interface.
type Func func(a, b []byte) int

// Compare calls f(a, b).
func (f Func) Compare(a, b []byte) int {
	return f(a, b)
}

// Bytewise is the default Comparator: lexicographic byte-wise ordering with
// absent payloads ordering before present ones.
type Bytewise struct{}

var _ Comparator = Bytewise{}

// Compare implements Comparator.
func (Bytewise) Compare(a, b []byte) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	return bytes.Compare(a, b)
}
