package array

import "github.com/arloliu/ragged/dtype"

// Concat joins containers end to end.
//
// The values buffers are concatenated in order and every source's offsets are
// rebased by the total values length of the sources before it. The result's
// offsets width is the widest source width, widened further when the combined
// values length needs it. Nil sources are skipped.
//
// Sources whose first offset is not zero, or that hold values without any
// element, cannot be spliced without changing the span of the preceding
// element; such inputs are re-encoded element by element instead.
func Concat[T dtype.Numeric](parts ...*Ragged[T]) *Ragged[T] {
	live := make([]*Ragged[T], 0, len(parts))
	totalValues, totalLen := 0, 0
	width := dtype.OffsetWidth8
	spliceable := true
	for _, p := range parts {
		if p == nil {
			continue
		}
		live = append(live, p)
		totalValues += len(p.values)
		totalLen += p.Len()
		width = max(width, p.offsets.Width())

		if (p.Len() == 0 && len(p.values) > 0) || (p.Len() > 0 && p.offsets.At(0) != 0) {
			spliceable = false
		}
	}

	if !spliceable {
		return concatElements(live, totalLen)
	}

	width = max(width, dtype.NarrowestOffsetWidth(uint64(totalValues))) //nolint:gosec
	values := make([]T, 0, totalValues)
	offsets := makeOffsets(width, totalLen)

	pos := 0
	for _, p := range live {
		base := uint64(len(values))
		for i := range p.Len() {
			offsets.set(pos, p.offsets.At(i)+base)
			pos++
		}
		values = append(values, p.values...)
	}

	return &Ragged[T]{offsets: offsets, values: values}
}

// concatElements re-encodes the elements of parts in order.
func concatElements[T dtype.Numeric](parts []*Ragged[T], total int) *Ragged[T] {
	owner := make([]*Ragged[T], 0, total)
	local := make([]int, 0, total)
	for _, p := range parts {
		for i := range p.Len() {
			owner = append(owner, p)
			local = append(local, i)
		}
	}

	return build(total, func(i int) []T {
		return owner[i].element(local[i])
	})
}
