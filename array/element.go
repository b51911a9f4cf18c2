package array

import (
	"fmt"
	"slices"

	"github.com/arloliu/ragged/dtype"
	"github.com/arloliu/ragged/internal/hash"
)

// Element wraps one materialized element to give it an identity: a total
// order, an equality and a hash over its full content.
//
// Ordering is lexicographic over the values, with a proper prefix ordered
// before the longer element. Floats compare like cmp.Compare: NaN sorts
// before every number and equals NaN, and -0 equals +0. A missing element
// sorts after every non-missing element and ties with other missing elements,
// but is never Equal to anything.
type Element[T dtype.Numeric] struct {
	values []T
}

// NewElement wraps values. A nil or empty slice wraps the missing element.
func NewElement[T dtype.Numeric](values []T) Element[T] {
	if len(values) == 0 {
		return Element[T]{}
	}

	return Element[T]{values: values}
}

// MissingElement returns the missing element.
func MissingElement[T dtype.Numeric]() Element[T] {
	return Element[T]{}
}

// ElementOf wraps element i of r.
func (r *Ragged[T]) ElementOf(i int) Element[T] {
	values, _ := r.At(i)
	return Element[T]{values: values}
}

// IsMissing reports whether e is the missing element.
func (e Element[T]) IsMissing() bool {
	return e.values == nil
}

// Values returns the wrapped values, nil when missing.
func (e Element[T]) Values() []T {
	return e.values
}

// Compare returns -1, 0 or +1 as e sorts before, with or after other.
func (e Element[T]) Compare(other Element[T]) int {
	return compareValues(e.values, other.values)
}

// Less reports whether e sorts strictly before other.
func (e Element[T]) Less(other Element[T]) bool {
	return e.Compare(other) < 0
}

// Equal reports whether e and other hold the same values.
// A missing element is not equal to anything, including another missing element.
func (e Element[T]) Equal(other Element[T]) bool {
	if e.values == nil || other.values == nil {
		return false
	}

	return slices.Compare(e.values, other.values) == 0
}

// Hash returns the content hash of e. Equal elements hash equal, and every
// missing element shares the same hash.
func (e Element[T]) Hash() uint64 {
	return hash.Values(e.values)
}

// String implements fmt.Stringer.
func (e Element[T]) String() string {
	if e.values == nil {
		return missingText
	}

	return fmt.Sprintf("ragged_element(%v)", e.values)
}

// compareValues orders two element payloads; nil is the missing element and
// sorts last.
func compareValues[T dtype.Numeric](a, b []T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return slices.Compare(a, b)
	}
}
