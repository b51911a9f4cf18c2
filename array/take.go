package array

import (
	"fmt"

	"github.com/arloliu/ragged/dtype"
	"github.com/arloliu/ragged/errs"
	"github.com/arloliu/ragged/internal/options"
)

// maxReportedIndices caps how many invalid indices a take error lists.
const maxReportedIndices = 9

type takeConfig[T dtype.Numeric] struct {
	allowFill bool
	fill      []T
}

// TakeOption configures Take.
type TakeOption[T dtype.Numeric] = options.Option[*takeConfig[T]]

// WithFill switches Take to fill mode: index -1 produces fill (missing when
// fill is nil) and any other negative index is rejected.
func WithFill[T dtype.Numeric](fill []T) TakeOption[T] {
	return options.NoError(func(c *takeConfig[T]) {
		c.allowFill = true
		c.fill = fill
	})
}

// Take returns the elements at indices, in order.
//
// By default negative indices count from the end, indices outside
// [-Len, Len) fail with errs.ErrOutOfBounds and a non-empty take from an
// empty container fails with errs.ErrEmptySource.
//
// With WithFill, -1 marks a fill position and other negative indices fail with
// errs.ErrInvalidIndex; non-negative indices must be below Len.
func (r *Ragged[T]) Take(indices []int, opts ...TakeOption[T]) (*Ragged[T], error) {
	cfg := &takeConfig[T]{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	n := r.Len()
	src := make([]int, len(indices))

	if cfg.allowFill {
		var invalid []int
		for _, idx := range indices {
			if idx < -1 {
				invalid = append(invalid, idx)
			}
		}
		if len(invalid) > 0 {
			return nil, fmt.Errorf("%w: %v", errs.ErrInvalidIndex, invalid[:min(len(invalid), maxReportedIndices)])
		}

		for i, idx := range indices {
			if idx >= n {
				return nil, fmt.Errorf("%w: %d is out of bounds for length %d", errs.ErrOutOfBounds, idx, n)
			}
			src[i] = idx
		}

		return r.gather(src, cfg.fill), nil
	}

	if n == 0 && len(indices) > 0 {
		return nil, errs.ErrEmptySource
	}

	for i, idx := range indices {
		pos, ok := r.normalize(idx)
		if !ok {
			return nil, fmt.Errorf("%w: %d is out of bounds for length %d", errs.ErrOutOfBounds, idx, n)
		}
		src[i] = pos
	}

	return r.gather(src, nil), nil
}
