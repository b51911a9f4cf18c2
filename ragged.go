// Package ragged provides a compact container for ragged arrays: sequences
// whose elements are variable-length numeric slices, or missing.
//
// Instead of allocating every element separately, a ragged array packs all
// element values into one contiguous values buffer and records, per element,
// the offset where its values begin. This is the CSR (compressed sparse row)
// layout applied to a general variable-length column.
//
// # Core Features
//
//   - Two flat buffers per array; the offsets width (8/16/32/64 bits) is the
//     narrowest one able to address the values
//   - Element access by position, Python-style slice, boolean mask or gather list
//   - Missing-value semantics: detection, value/forward/backward fill, shift
//   - Take with fill, concatenation, sorted search, uniqueness and factorization
//   - Element identity with a total order and an xxHash64 content hash
//   - Type-erased Column view and a tag registry for host runtimes
//
// # Basic Usage
//
//	r := ragged.New([][]int64{{1, 2}, {3}, nil, {4, 5, 6}})
//
//	r.Values()     // [1 2 3 4 5 6]
//	r.Offsets()    // [0 2 3 3]
//	r.IsMissing()  // [false false true false]
//
//	third, ok := r.At(2) // nil, false: element 2 is missing
//
//	filled, err := r.FillMissing(array.FillWithValue([]int64{9}))
//	taken, err := r.Take([]int{3, 1, -1})
//
// # Host Runtimes
//
// A host that routes columns by type tag registers the ragged factory once at
// startup, or uses the ready-made DefaultRegistry:
//
//	col, err := ragged.DefaultRegistry().Construct(dtype.Name, []any{[]float32{1.5}, nil})
//
// # Package Structure
//
// This package provides thin wrappers around the array package, which holds
// the container and all of its operations. The dtype package describes value
// kinds and offsets widths, and the registry package maps type tags to
// factories.
package ragged

import (
	"sync"

	"github.com/arloliu/ragged/array"
	"github.com/arloliu/ragged/dtype"
	"github.com/arloliu/ragged/registry"
	"golang.org/x/exp/constraints"
)

// New builds a ragged array from a sequence of elements. A nil or empty
// element is missing.
//
// Example:
//
//	r := ragged.New([][]float64{{0.5, 1.5}, nil, {2}})
func New[T dtype.Numeric](elements [][]T) *array.Ragged[T] {
	return array.FromSlices(elements)
}

// NewFromBuffers wraps an existing offsets/values pair without copying.
//
// Returns an error wrapping errs.ErrInvariantViolation when an offset exceeds
// the values length.
//
// Example:
//
//	r, err := ragged.NewFromBuffers([]uint16{0, 2, 3, 3}, []int32{1, 2, 3, 4, 5, 6})
func NewFromBuffers[T dtype.Numeric, O constraints.Unsigned](offsets []O, values []T) (*array.Ragged[T], error) {
	return array.FromBuffers(offsets, values)
}

// NewFromAny builds a type-erased column from heterogeneous elements, inferring
// the common numeric kind unless array.WithKind is given.
//
// Example:
//
//	col, err := ragged.NewFromAny([]any{[]int8{1}, []uint8{200}, nil})
//	col.Kind() // dtype.KindInt16
func NewFromAny(elements []any, opts ...array.BuildOption) (array.Column, error) {
	return array.FromAny(elements, opts...)
}

// Concat joins ragged arrays end to end.
func Concat[T dtype.Numeric](parts ...*array.Ragged[T]) *array.Ragged[T] {
	return array.Concat(parts...)
}

// ConstructArrayType returns the factory a host runtime uses to build ragged
// columns from element-by-element input.
func ConstructArrayType() registry.Factory {
	return array.FromAny
}

var (
	defaultRegistry     *registry.Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns a process-wide registry holding the ragged factory
// under dtype.Name. It is initialized on first use.
func DefaultRegistry() *registry.Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = registry.New()
		// registering into a fresh registry cannot collide
		_ = defaultRegistry.Register(dtype.Name, ConstructArrayType())
	})

	return defaultRegistry
}
