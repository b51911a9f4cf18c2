package array

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/arloliu/ragged/dtype"
	"github.com/arloliu/ragged/errs"
)

const missingText = "<missing>"

// IsMissing reports, per element, whether its values range is empty.
func (r *Ragged[T]) IsMissing() []bool {
	out := make([]bool, r.Len())
	for i := range out {
		start, stop := r.span(i)
		out[i] = start == stop
	}

	return out
}

// IsMissingAt reports whether element i is missing. It panics when i is
// outside [-Len, Len).
func (r *Ragged[T]) IsMissingAt(i int) bool {
	_, ok := r.At(i)
	return !ok
}

// HasMissing reports whether any element is missing.
func (r *Ragged[T]) HasMissing() bool {
	for i := range r.Len() {
		if start, stop := r.span(i); start == stop {
			return true
		}
	}

	return false
}

// MissingBitmap returns the positions of the missing elements.
func (r *Ragged[T]) MissingBitmap() *roaring.Bitmap {
	bm := roaring.New()
	for i := range r.Len() {
		if start, stop := r.span(i); start == stop {
			bm.Add(uint32(i)) //nolint:gosec // positions beyond uint32 are not addressable by the bitmap
		}
	}

	return bm
}

// FillStrategy decides how FillMissing replaces missing elements. It is
// exactly one of FillWithValue, FillWithSequence, FillWithArray, FillForward
// or FillBackward.
type FillStrategy[T dtype.Numeric] interface {
	fill(r *Ragged[T], missing *roaring.Bitmap) (*Ragged[T], error)
}

type valueFill[T dtype.Numeric] struct{ value []T }

type sequenceFill[T dtype.Numeric] struct{ values [][]T }

type arrayFill[T dtype.Numeric] struct{ other *Ragged[T] }

type padFill[T dtype.Numeric] struct {
	limit    int
	backward bool
}

// FillWithValue replaces every missing element with value. A nil value keeps
// them missing.
func FillWithValue[T dtype.Numeric](value []T) FillStrategy[T] {
	return valueFill[T]{value: value}
}

// FillWithSequence replaces missing element i with values[i]. values must
// have one entry per element; entries at non-missing positions are ignored.
func FillWithSequence[T dtype.Numeric](values [][]T) FillStrategy[T] {
	return sequenceFill[T]{values: values}
}

// FillWithArray replaces missing element i with element i of other, which
// must have the same length.
func FillWithArray[T dtype.Numeric](other *Ragged[T]) FillStrategy[T] {
	return arrayFill[T]{other: other}
}

// FillForward replaces each missing element with the nearest preceding
// non-missing element. A positive limit caps the number of consecutive
// missing elements filled in each gap; zero or less means no cap.
func FillForward[T dtype.Numeric](limit int) FillStrategy[T] {
	return padFill[T]{limit: limit}
}

// FillBackward is the mirror of FillForward, propagating the nearest
// following non-missing element.
func FillBackward[T dtype.Numeric](limit int) FillStrategy[T] {
	return padFill[T]{limit: limit, backward: true}
}

// FillMissing returns a copy of r with missing elements replaced according to
// strategy. Non-missing elements are never changed.
//
// When no element is missing the result is a deep copy and the strategy is not
// consulted. A nil strategy fails with errs.ErrConfiguration.
func (r *Ragged[T]) FillMissing(strategy FillStrategy[T]) (*Ragged[T], error) {
	if strategy == nil {
		return nil, fmt.Errorf("%w: a fill strategy is required", errs.ErrConfiguration)
	}

	missing := r.MissingBitmap()
	if missing.IsEmpty() {
		return r.Clone(), nil
	}

	return strategy.fill(r, missing)
}

func (f valueFill[T]) fill(r *Ragged[T], missing *roaring.Bitmap) (*Ragged[T], error) {
	return build(r.Len(), func(i int) []T {
		if missing.Contains(uint32(i)) { //nolint:gosec
			return f.value
		}

		return r.element(i)
	}), nil
}

func (f sequenceFill[T]) fill(r *Ragged[T], missing *roaring.Bitmap) (*Ragged[T], error) {
	if len(f.values) != r.Len() {
		return nil, fmt.Errorf("%w: fill sequence has %d entries, expected %d",
			errs.ErrLengthMismatch, len(f.values), r.Len())
	}

	return build(r.Len(), func(i int) []T {
		if missing.Contains(uint32(i)) { //nolint:gosec
			return f.values[i]
		}

		return r.element(i)
	}), nil
}

func (f arrayFill[T]) fill(r *Ragged[T], missing *roaring.Bitmap) (*Ragged[T], error) {
	if f.other == nil {
		return nil, fmt.Errorf("%w: nil fill array", errs.ErrConfiguration)
	}
	if f.other.Len() != r.Len() {
		return nil, fmt.Errorf("%w: fill array has %d elements, expected %d",
			errs.ErrLengthMismatch, f.other.Len(), r.Len())
	}

	return build(r.Len(), func(i int) []T {
		if missing.Contains(uint32(i)) { //nolint:gosec
			return f.other.element(i)
		}

		return r.element(i)
	}), nil
}

func (f padFill[T]) fill(r *Ragged[T], missing *roaring.Bitmap) (*Ragged[T], error) {
	n := r.Len()
	src := make([]int, n)

	last, run := -1, 0
	for step := range n {
		i := step
		if f.backward {
			i = n - 1 - step
		}

		if !missing.Contains(uint32(i)) { //nolint:gosec
			src[i] = i
			last, run = i, 0

			continue
		}

		if last >= 0 && (f.limit <= 0 || run < f.limit) {
			src[i] = last
			run++
		} else {
			src[i] = -1
		}
	}

	return r.gather(src, nil), nil
}

// Shift moves every element by periods positions, toward higher positions
// when periods is positive. The min(|periods|, Len) vacated positions hold
// fill, or are missing when fill is nil.
//
// Shifting by zero, or shifting an empty container, returns a deep copy.
func (r *Ragged[T]) Shift(periods int, fill []T) *Ragged[T] {
	n := r.Len()
	if n == 0 || periods == 0 {
		return r.Clone()
	}

	k := min(abs(periods), n)
	src := make([]int, n)
	for i := range src {
		switch {
		case periods > 0 && i < k:
			src[i] = -1
		case periods > 0:
			src[i] = i - k
		case i >= n-k:
			src[i] = -1
		default:
			src[i] = i + k
		}
	}

	return r.gather(src, fill)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
