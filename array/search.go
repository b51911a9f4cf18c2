package array

import (
	"slices"
	"sort"
)

// Side selects which insertion point SearchSorted reports for ties.
type Side uint8

const (
	// SideLeft reports the first position i with element i >= query.
	SideLeft Side = iota
	// SideRight reports the first position i with element i > query.
	SideRight
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// compareAt orders element i of r against a query payload without
// materializing an Element.
func (r *Ragged[T]) compareAt(i int, query []T) int {
	return compareValues(r.element(i), query)
}

// SearchSorted returns the position at which query would be inserted to keep
// r sorted, assuming r is already sorted by Element order.
//
// A nil or empty query is the missing element, which sorts after every
// non-missing element.
func (r *Ragged[T]) SearchSorted(query []T, side Side) int {
	if len(query) == 0 {
		query = nil
	}

	if side == SideRight {
		return sort.Search(r.Len(), func(i int) bool { return r.compareAt(i, query) > 0 })
	}

	return sort.Search(r.Len(), func(i int) bool { return r.compareAt(i, query) >= 0 })
}

// SearchSortedMany runs SearchSorted for every element of queries.
func (r *Ragged[T]) SearchSortedMany(queries *Ragged[T], side Side) []int {
	out := make([]int, queries.Len())
	for i := range out {
		out[i] = r.SearchSorted(queries.element(i), side)
	}

	return out
}

// ArgSort returns the positions of r in Element order. Ties keep their
// original relative order.
func (r *Ragged[T]) ArgSort() []int {
	order := make([]int, r.Len())
	for i := range order {
		order[i] = i
	}

	slices.SortStableFunc(order, func(a, b int) int {
		return compareValues(r.element(a), r.element(b))
	})

	return order
}

// IsSorted reports whether the elements of r are in non-decreasing Element order.
func (r *Ragged[T]) IsSorted() bool {
	for i := 1; i < r.Len(); i++ {
		if compareValues(r.element(i-1), r.element(i)) > 0 {
			return false
		}
	}

	return true
}

// Sorted returns the elements of r in Element order.
func (r *Ragged[T]) Sorted() *Ragged[T] {
	return r.gather(r.ArgSort(), nil)
}
