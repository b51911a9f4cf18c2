// Package array implements the ragged array container.
//
// A Ragged[T] is a sequence of N logical elements, each a variable-length
// one-dimensional slice of T or missing. All element values are packed into a
// single values buffer; an offsets buffer of N unsigned integers records where
// every element starts:
//
//	elements: [[1 2] [3] <missing> [4 5 6]]
//	values:   [1 2 3 4 5 6]
//	offsets:  [0 2 3 3]
//
// Element i spans values[offsets[i]:offsets[i+1]], the last element runs to
// the end of the values buffer. An element with an empty span is missing;
// missing and zero-length elements are the same thing.
//
// # Construction
//
// Three entry points build a container:
//
//	r := array.FromSlices([][]int64{{1, 2}, {3}, nil, {4, 5, 6}})
//	r, err := array.FromBuffers([]uint8{0, 2, 3, 3}, []int64{1, 2, 3, 4, 5, 6})
//	dup := array.FromRagged(r)
//
// FromSlices picks the narrowest offsets width (8, 16, 32 or 64 bits) that can
// address the values buffer. FromBuffers wraps the supplied buffers without
// copying, after checking that no offset exceeds the values length. FromAny
// builds a type-erased Column from heterogeneous input and infers the common
// numeric kind.
//
// # Immutability
//
// Every operation derives a new container; no method mutates its receiver.
// A shallow Copy shares both buffers with its source, and slices returned by
// At, Get and Values alias the values buffer. Callers must not write through
// them. Concurrent readers need no locking.
//
// # Missing values
//
// Missing elements are reported as a nil slice with ok == false by At, and as a
// nil slice by Get. Element wraps an element for ordering, equality and
// hashing; a missing Element is never Equal to anything, yet Unique collapses
// all missing elements into a single missing entry.
package array
