package array

import (
	"fmt"

	"github.com/arloliu/ragged/dtype"
	"github.com/arloliu/ragged/errs"
	"golang.org/x/exp/constraints"
)

// maxReportedOffsets caps how many offending offsets an invariant error lists.
const maxReportedOffsets = 10

// FromSlices builds a container from a sequence of elements.
//
// A nil or empty inner slice is a missing element. The values are copied into
// a single buffer and the offsets buffer uses the narrowest unsigned width
// able to address it.
func FromSlices[T dtype.Numeric](elements [][]T) *Ragged[T] {
	return build(len(elements), func(i int) []T { return elements[i] })
}

// FromBuffers wraps an offsets/values pair without copying.
//
// The offsets width is kept as supplied. Every offset must be at most
// len(values); otherwise FromBuffers fails with errs.ErrInvariantViolation
// listing the first offending offsets. Offsets need not be non-decreasing.
//
// The container takes ownership of both slices; callers must not modify them
// afterwards.
func FromBuffers[T dtype.Numeric, O constraints.Unsigned](offsets []O, values []T) (*Ragged[T], error) {
	limit := uint64(len(values))

	var invalid []uint64
	count := 0
	for _, off := range offsets {
		if uint64(off) > limit {
			if len(invalid) < maxReportedOffsets {
				invalid = append(invalid, uint64(off))
			}
			count++
		}
	}

	if count > 0 {
		return nil, fmt.Errorf("%w: offsets must not exceed the values length (%d); %d invalid, including %v",
			errs.ErrInvariantViolation, len(values), count, invalid)
	}

	if offsets == nil {
		offsets = []O{}
	}

	return &Ragged[T]{offsets: offsetSlice[O](offsets), values: values}, nil
}

// FromRagged returns a deep copy of src.
func FromRagged[T dtype.Numeric](src *Ragged[T]) *Ragged[T] {
	return src.Clone()
}

// build encodes n elements produced by elem into fresh buffers.
//
// elem is called twice per position: once to size the values buffer and once
// to copy. It must return the same slice both times; nil or empty means missing.
// Every derivation in this package funnels through build, so it is the single
// place the container invariants are established.
func build[T dtype.Numeric](n int, elem func(i int) []T) *Ragged[T] {
	total := 0
	for i := range n {
		total += len(elem(i))
	}

	offsets := makeOffsets(dtype.NarrowestOffsetWidth(uint64(total)), n) //nolint:gosec // total is non-negative
	values := make([]T, total)

	next := 0
	for i := range n {
		offsets.set(i, uint64(next)) //nolint:gosec
		next += copy(values[next:], elem(i))
	}

	return &Ragged[T]{offsets: offsets, values: values}
}

// gather builds a container whose element i is element src[i] of r, or fill
// when src[i] is negative.
func (r *Ragged[T]) gather(src []int, fill []T) *Ragged[T] {
	return build(len(src), func(i int) []T {
		if src[i] < 0 {
			return fill
		}

		return r.element(src[i])
	})
}

// Empty returns a container with no elements.
func Empty[T dtype.Numeric]() *Ragged[T] {
	return &Ragged[T]{offsets: offsetSlice[uint8]{}, values: []T{}}
}
