package array

import (
	"unsafe"

	"github.com/arloliu/ragged/dtype"
	"golang.org/x/exp/constraints"
)

// offsetBuffer is an offsets buffer of any unsigned width.
//
// The width is picked at runtime from the values length, so the container
// holds its offsets behind this interface while the values element type stays
// a type parameter.
type offsetBuffer interface {
	Len() int
	At(i int) uint64
	Width() dtype.OffsetWidth
	set(i int, v uint64)
	clone() offsetBuffer
}

// offsetSlice implements offsetBuffer for one unsigned type.
type offsetSlice[O constraints.Unsigned] []O

var (
	_ offsetBuffer = offsetSlice[uint8](nil)
	_ offsetBuffer = offsetSlice[uint64](nil)
)

func (s offsetSlice[O]) Len() int {
	return len(s)
}

func (s offsetSlice[O]) At(i int) uint64 {
	return uint64(s[i])
}

func (s offsetSlice[O]) Width() dtype.OffsetWidth {
	var zero O
	return dtype.OffsetWidth(unsafe.Sizeof(zero) * 8)
}

func (s offsetSlice[O]) set(i int, v uint64) {
	s[i] = O(v)
}

func (s offsetSlice[O]) clone() offsetBuffer {
	dup := make(offsetSlice[O], len(s))
	copy(dup, s)

	return dup
}

// makeOffsets allocates a zeroed offsets buffer of n entries and the given width.
func makeOffsets(width dtype.OffsetWidth, n int) offsetBuffer {
	switch width {
	case dtype.OffsetWidth8:
		return make(offsetSlice[uint8], n)
	case dtype.OffsetWidth16:
		return make(offsetSlice[uint16], n)
	case dtype.OffsetWidth32:
		return make(offsetSlice[uint32], n)
	default:
		return make(offsetSlice[uint64], n)
	}
}
