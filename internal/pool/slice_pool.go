package pool

import "sync"

var intSlicePool = sync.Pool{
	New: func() any { return &[]int{} },
}

// GetIntSlice retrieves an int slice of length zero and capacity of at least
// capHint from the pool.
//
// The caller appends positions to the returned slice and must call the
// returned cleanup function once it no longer references the slice:
//
//	positions, cleanup := pool.GetIntSlice(n)
//	defer cleanup()
//	positions = append(positions, 3, 1, 4)
//
// Appends that outgrow capHint reallocate; the pool keeps the original
// backing array.
func GetIntSlice(capHint int) ([]int, func()) {
	ptr, _ := intSlicePool.Get().(*[]int)
	slice := (*ptr)[:0]

	if cap(slice) < capHint {
		slice = make([]int, 0, capHint)
		*ptr = slice
	}

	return slice, func() { intSlicePool.Put(ptr) }
}
