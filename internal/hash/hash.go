// Package hash computes content identities of ragged array elements.
package hash

import (
	"github.com/arloliu/ragged/dtype"
	"github.com/arloliu/ragged/endian"
	"github.com/arloliu/ragged/internal/pool"
	"github.com/cespare/xxhash/v2"
)

// Missing is the hash shared by every missing element. It equals the hash of
// an empty value sequence, since zero-length elements are missing.
var Missing = xxhash.Sum64(nil)

// Values computes the xxHash64 of the little-endian byte image of values.
//
// Two slices hash equal iff their byte images are identical, which for floats
// means -0 and +0 share a hash and all NaNs share a hash.
func Values[T dtype.Numeric](values []T) uint64 {
	if len(values) == 0 {
		return Missing
	}

	bb := pool.GetHashBuffer()
	bb.B = endian.AppendValues(endian.GetLittleEndianEngine(), bb.B, values)
	sum := xxhash.Sum64(bb.B)
	pool.PutHashBuffer(bb)

	return sum
}
