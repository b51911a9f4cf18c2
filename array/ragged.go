package array

import (
	"fmt"
	"iter"
	"strings"

	"github.com/arloliu/ragged/dtype"
	"github.com/arloliu/ragged/errs"
)

// Ragged is an immutable sequence of variable-length numeric elements stored
// as one values buffer plus an offsets buffer.
type Ragged[T dtype.Numeric] struct {
	offsets offsetBuffer
	values  []T
}

// Len returns the number of logical elements.
//
// It always equals the length of the offsets buffer and is independent of the
// values buffer length.
func (r *Ragged[T]) Len() int {
	return r.offsets.Len()
}

// Kind returns the numeric kind of the values buffer.
func (r *Ragged[T]) Kind() dtype.Kind {
	return dtype.KindOf[T]()
}

// Type returns the column type descriptor.
func (r *Ragged[T]) Type() dtype.Ragged {
	return dtype.Ragged{}
}

// OffsetWidth returns the bit width of the offsets buffer.
func (r *Ragged[T]) OffsetWidth() dtype.OffsetWidth {
	return r.offsets.Width()
}

// Values returns the values buffer. The slice aliases the container and must not be modified.
func (r *Ragged[T]) Values() []T {
	return r.values
}

// Offsets returns a copy of the offsets buffer widened to uint64.
func (r *Ragged[T]) Offsets() []uint64 {
	out := make([]uint64, r.offsets.Len())
	for i := range out {
		out[i] = r.offsets.At(i)
	}

	return out
}

// NBytes returns the number of bytes held by the values and offsets buffers.
func (r *Ragged[T]) NBytes() int {
	return len(r.values)*r.Kind().Size() + r.offsets.Len()*r.offsets.Width().Size()
}

// span returns the half-open values range of element i, which must be in [0, Len).
//
// Offsets are not required to be non-decreasing; a span whose stop precedes
// its start is empty.
func (r *Ragged[T]) span(i int) (start, stop int) {
	start = int(r.offsets.At(i)) //nolint:gosec // bounded by len(values) at construction
	if i+1 < r.offsets.Len() {
		stop = int(r.offsets.At(i + 1)) //nolint:gosec
	} else {
		stop = len(r.values)
	}

	if stop < start {
		stop = start
	}

	return start, stop
}

// element returns the values of element i, or nil when it is missing.
// The returned slice has its capacity clipped so appends never reach the
// values of the next element.
func (r *Ragged[T]) element(i int) []T {
	start, stop := r.span(i)
	if start == stop {
		return nil
	}

	return r.values[start:stop:stop]
}

// normalize maps a possibly negative position onto [0, Len).
func (r *Ragged[T]) normalize(i int) (int, bool) {
	n := r.Len()
	if i < -n || i >= n {
		return 0, false
	}
	if i < 0 {
		i += n
	}

	return i, true
}

// At returns element i. Negative positions count from the end.
//
// ok is false when the element is missing. At panics when i is outside
// [-Len, Len), like indexing a slice; use Get for an error instead.
func (r *Ragged[T]) At(i int) (values []T, ok bool) {
	pos, inRange := r.normalize(i)
	if !inRange {
		panic(fmt.Sprintf("ragged: index %d out of range [%d, %d)", i, -r.Len(), r.Len()))
	}

	values = r.element(pos)

	return values, values != nil
}

// Get returns element i, or a nil slice when the element is missing.
// Negative positions count from the end. Positions outside [-Len, Len) fail
// with errs.ErrOutOfBounds.
func (r *Ragged[T]) Get(i int) ([]T, error) {
	pos, ok := r.normalize(i)
	if !ok {
		return nil, fmt.Errorf("%w: %d is out of bounds for length %d", errs.ErrOutOfBounds, i, r.Len())
	}

	return r.element(pos), nil
}

// ElementAt returns element i as an any holding a []T, or nil when the element is missing.
func (r *Ragged[T]) ElementAt(i int) (any, error) {
	values, err := r.Get(i)
	if err != nil || values == nil {
		return nil, err
	}

	return values, nil
}

// Lengths returns the length of every element; missing elements have length zero.
func (r *Ragged[T]) Lengths() []int {
	out := make([]int, r.Len())
	for i := range out {
		start, stop := r.span(i)
		out[i] = stop - start
	}

	return out
}

// All returns an iterator over the positions and values of every element.
// Missing elements yield a nil slice.
func (r *Ragged[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i := range r.Len() {
			if !yield(i, r.element(i)) {
				return
			}
		}
	}
}

// Copy returns a copy of the container. A shallow copy shares both buffers
// with r; a deep copy owns private copies.
func (r *Ragged[T]) Copy(deep bool) *Ragged[T] {
	if deep {
		return r.Clone()
	}

	return &Ragged[T]{offsets: r.offsets, values: r.values}
}

// Clone returns a deep copy of the container.
func (r *Ragged[T]) Clone() *Ragged[T] {
	values := make([]T, len(r.values))
	copy(values, r.values)

	return &Ragged[T]{offsets: r.offsets.clone(), values: values}
}

// String formats the container as its elements, e.g. "[[1 2] [3] <missing>]".
func (r *Ragged[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range r.Len() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if values := r.element(i); values != nil {
			fmt.Fprint(&sb, values)
		} else {
			sb.WriteString(missingText)
		}
	}
	sb.WriteByte(']')

	return sb.String()
}
