package array

import (
	"github.com/arloliu/ragged/dtype"
	"github.com/arloliu/ragged/internal/dedup"
	"github.com/arloliu/ragged/internal/hash"
)

// Unique returns the distinct elements of r in first-occurrence order.
//
// Elements are distinct under Element identity. All missing elements form a
// single class: the result holds one missing element, at the position of the
// first missing input, when r has any.
func (r *Ragged[T]) Unique() *Ragged[T] {
	tracker := dedup.NewTracker(r.Len())
	for i := range r.Len() {
		values := r.element(i)
		tracker.Track(hash.Values(values), i, func(first int) bool {
			return sameElement(r.element(first), values)
		})
	}

	return r.gather(tracker.Firsts(), nil)
}

// Factorize encodes r as codes into a container of distinct elements.
//
// codes[i] is the position of element i within uniques, or -1 when element i
// is missing. uniques holds no missing element and keeps first-occurrence
// order. FromFactorized reverses the encoding.
func (r *Ragged[T]) Factorize() (codes []int, uniques *Ragged[T]) {
	codes = make([]int, r.Len())
	tracker := dedup.NewTracker(r.Len())
	for i := range r.Len() {
		values := r.element(i)
		if values == nil {
			codes[i] = -1
			continue
		}

		codes[i], _ = tracker.Track(hash.Values(values), i, func(first int) bool {
			return sameElement(r.element(first), values)
		})
	}

	return codes, r.gather(tracker.Firsts(), nil)
}

// FromFactorized rebuilds a container from Factorize output. Code -1 yields a
// missing element.
func FromFactorized[T dtype.Numeric](codes []int, uniques *Ragged[T]) (*Ragged[T], error) {
	return uniques.Take(codes, WithFill[T](nil))
}

// Equals reports whether r and other hold the same elements at every position.
// Unlike Element.Equal, two missing elements at the same position match.
func (r *Ragged[T]) Equals(other *Ragged[T]) bool {
	if other == nil || r.Len() != other.Len() {
		return false
	}

	for i := range r.Len() {
		if !sameElement(r.element(i), other.element(i)) {
			return false
		}
	}

	return true
}

// sameElement is identity for deduplication: missing matches missing.
func sameElement[T dtype.Numeric](a, b []T) bool {
	return compareValues(a, b) == 0
}
