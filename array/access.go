package array

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/arloliu/ragged/dtype"
	"github.com/arloliu/ragged/errs"
	"github.com/arloliu/ragged/internal/pool"
)

// Selector chooses elements of a container. It is one of Position, Range,
// Mask or Indices.
type Selector interface {
	selector()
}

// Position selects a single element. Negative positions count from the end.
type Position int

// Open marks an omitted Range bound.
const Open = math.MinInt

// Range selects positions start, start+step, ... up to but excluding stop,
// with the clamping and negative-index rules of a Python slice. Use Open for
// an omitted bound; a zero Step means 1.
type Range struct {
	Start int
	Stop  int
	Step  int
}

// Mask selects the positions whose flag is true. It must have one flag per element.
type Mask []bool

// Indices selects positions in the listed order, repeats allowed. Negative
// positions count from the end.
type Indices []int

func (Position) selector() {}
func (Range) selector()    {}
func (Mask) selector()     {}
func (Indices) selector()  {}

// Selection is the outcome of Select: a single element for a Position
// selector and a new container for every other selector.
type Selection[T dtype.Numeric] struct {
	array   *Ragged[T]
	element []T
	single  bool
}

// IsElement reports whether the selection holds a single element.
func (s Selection[T]) IsElement() bool {
	return s.single
}

// Element returns the selected element; ok is false when it is missing or the
// selection holds a container.
func (s Selection[T]) Element() (values []T, ok bool) {
	return s.element, s.single && s.element != nil
}

// Array returns the selected container, or nil for a single-element selection.
func (s Selection[T]) Array() *Ragged[T] {
	return s.array
}

// Select resolves sel against r. The receiver is never modified.
func (r *Ragged[T]) Select(sel Selector) (Selection[T], error) {
	switch sel := sel.(type) {
	case Position:
		values, err := r.Get(int(sel))
		if err != nil {
			return Selection[T]{}, err
		}

		return Selection[T]{element: values, single: true}, nil
	case Range:
		return Selection[T]{array: r.Slice(sel.Start, sel.Stop, sel.Step)}, nil
	case Mask:
		arr, err := r.Filter(sel)
		return Selection[T]{array: arr}, err
	case Indices:
		arr, err := r.Take(sel)
		return Selection[T]{array: arr}, err
	case nil:
		return Selection[T]{}, fmt.Errorf("%w: nil selector", errs.ErrConfiguration)
	default:
		return Selection[T]{}, fmt.Errorf("%w: unknown selector %T", errs.ErrConfiguration, sel)
	}
}

// Slice returns the elements selected by the Python-style slice start:stop:step.
// Bounds may be negative or Open; a zero step means 1.
func (r *Ragged[T]) Slice(start, stop, step int) *Ragged[T] {
	if step == 0 {
		step = 1
	}

	first, last := resolveRange(r.Len(), start, stop, step)

	count := 0
	if step > 0 && last > first {
		count = (last - first + step - 1) / step
	} else if step < 0 && first > last {
		count = (first - last - step - 1) / -step
	}

	src, cleanup := pool.GetIntSlice(count)
	defer cleanup()

	for i, pos := 0, first; i < count; i, pos = i+1, pos+step {
		src = append(src, pos)
	}

	return r.gather(src, nil)
}

// resolveRange clamps slice bounds onto a sequence of length n following
// Python's slice.indices.
func resolveRange(n, start, stop, step int) (int, int) {
	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}

	clamp := func(v, def int) int {
		switch {
		case v == Open:
			return def
		case v < 0:
			return max(v+n, lower)
		default:
			return min(v, upper)
		}
	}

	if step > 0 {
		return clamp(start, lower), clamp(stop, upper)
	}

	return clamp(start, upper), clamp(stop, lower)
}

// Filter returns the elements whose mask flag is true, in order.
// The mask length must equal Len, otherwise errs.ErrLengthMismatch.
func (r *Ragged[T]) Filter(mask []bool) (*Ragged[T], error) {
	if len(mask) != r.Len() {
		return nil, fmt.Errorf("%w: mask has %d entries, expected %d", errs.ErrLengthMismatch, len(mask), r.Len())
	}

	src, cleanup := pool.GetIntSlice(len(mask))
	defer cleanup()

	for i, keep := range mask {
		if keep {
			src = append(src, i)
		}
	}

	return r.gather(src, nil), nil
}

// MaskFromBitmap returns a Mask of n flags set at the positions in bm.
// Positions at or beyond n are ignored.
func MaskFromBitmap(bm *roaring.Bitmap, n int) Mask {
	mask := make(Mask, n)
	it := bm.Iterator()
	for it.HasNext() {
		pos := int(it.Next())
		if pos >= n {
			break
		}
		mask[pos] = true
	}

	return mask
}
