// Package endian lays numeric values out as bytes in a fixed byte order.
//
// Element identity hashing needs a canonical byte image of an element's values
// that does not depend on the host's native byte order, so two processes on
// different architectures produce the same hash for the same element.
//
// # Basic Usage
//
//	engine := endian.GetLittleEndianEngine()
//	buf = endian.AppendValues(engine, buf[:0], []int16{1, -2, 3})
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"math"

	"github.com/arloliu/ragged/dtype"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// AppendValues appends the byte image of values to dst and returns the extended slice.
//
// Every value occupies exactly dtype.KindOf[T]().Size() bytes. Integers are
// written as two's complement, floats as their IEEE 754 bit pattern, so equal
// slices always produce equal byte images.
//
// Floats are canonicalized before encoding: -0 is written as +0 and every NaN
// as the same quiet NaN, matching the numeric equality used by element identity.
func AppendValues[T dtype.Numeric](engine EndianEngine, dst []byte, values []T) []byte {
	kind := dtype.KindOf[T]()
	if need := len(values) * kind.Size(); cap(dst)-len(dst) < need {
		grown := make([]byte, len(dst), len(dst)+need)
		copy(grown, dst)
		dst = grown
	}

	switch kind { //nolint:exhaustive
	case dtype.KindInt8, dtype.KindUint8:
		for _, v := range values {
			dst = append(dst, uint8(int64(v)))
		}
	case dtype.KindInt16, dtype.KindUint16:
		for _, v := range values {
			dst = engine.AppendUint16(dst, uint16(int64(v)))
		}
	case dtype.KindInt32, dtype.KindUint32:
		for _, v := range values {
			dst = engine.AppendUint32(dst, uint32(int64(v)))
		}
	case dtype.KindInt64:
		for _, v := range values {
			dst = engine.AppendUint64(dst, uint64(int64(v)))
		}
	case dtype.KindUint64:
		for _, v := range values {
			dst = engine.AppendUint64(dst, uint64(v))
		}
	case dtype.KindFloat32:
		for _, v := range values {
			dst = engine.AppendUint32(dst, float32Bits(float32(v)))
		}
	case dtype.KindFloat64:
		for _, v := range values {
			dst = engine.AppendUint64(dst, float64Bits(float64(v)))
		}
	}

	return dst
}

func float32Bits(f float32) uint32 {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(float64(f)):
		return 0x7fc00000
	default:
		return math.Float32bits(f)
	}
}

func float64Bits(f float64) uint64 {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(f):
		return 0x7ff8000000000000
	default:
		return math.Float64bits(f)
	}
}
