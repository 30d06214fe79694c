// Package errors defines the closed error taxonomy shared by the sequence
// containers, plus a small utility for accumulating multiple errors.
// Every container operation reports failures through one of these sentinels
// (possibly wrapped with additional context), so callers can dispatch on
// errors.Is without parsing messages.
package errors

import "errors"

var (
	// ErrNilReference is returned when the store (or a required input store)
	// argument itself is absent.
	ErrNilReference = errors.New("nil reference")

	// ErrIndexOutOfRange is returned when an index argument falls outside the
	// valid bound for the operation. Bounds differ between size-relative and
	// capacity-relative checks; each operation documents which one it uses.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrElementNotFound is returned by search operations that found no
	// matching element.
	ErrElementNotFound = errors.New("element not found")

	// ErrInvalidParams is returned when an argument violates a precondition
	// not covered by the other sentinels, such as a zero-length value or a
	// non-positive capacity.
	ErrInvalidParams = errors.New("invalid parameters")

	// ErrAllocationFailure is returned when backing storage could not be
	// grown, for example when doubling the capacity would overflow. Custom
	// sort strategies may also use it to abort on resource exhaustion.
	ErrAllocationFailure = errors.New("allocation failure")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
