package dtype

import "math"

// OffsetWidth is the bit width of the unsigned integers in an offsets buffer.
type OffsetWidth uint8

const (
	OffsetWidth8  OffsetWidth = 8  // OffsetWidth8 stores offsets as uint8.
	OffsetWidth16 OffsetWidth = 16 // OffsetWidth16 stores offsets as uint16.
	OffsetWidth32 OffsetWidth = 32 // OffsetWidth32 stores offsets as uint32.
	OffsetWidth64 OffsetWidth = 64 // OffsetWidth64 stores offsets as uint64.
)

// offsetWidths lists the candidate widths from narrowest to widest.
var offsetWidths = [...]OffsetWidth{OffsetWidth8, OffsetWidth16, OffsetWidth32, OffsetWidth64}

// String returns the Go name of the unsigned type backing the width.
func (w OffsetWidth) String() string {
	switch w {
	case OffsetWidth8:
		return "uint8"
	case OffsetWidth16:
		return "uint16"
	case OffsetWidth32:
		return "uint32"
	case OffsetWidth64:
		return "uint64"
	default:
		return "unknown"
	}
}

// Max returns the largest offset representable with width w.
func (w OffsetWidth) Max() uint64 {
	switch w {
	case OffsetWidth8:
		return math.MaxUint8
	case OffsetWidth16:
		return math.MaxUint16
	case OffsetWidth32:
		return math.MaxUint32
	default:
		return math.MaxUint64
	}
}

// Size returns the number of bytes one offset of width w occupies.
func (w OffsetWidth) Size() int {
	return int(w) / 8
}

// NarrowestOffsetWidth returns the narrowest width, trying 8, 16, 32 and 64
// bits in that order, able to represent n.
func NarrowestOffsetWidth(n uint64) OffsetWidth {
	for _, w := range offsetWidths {
		if n <= w.Max() {
			return w
		}
	}

	return OffsetWidth64
}
