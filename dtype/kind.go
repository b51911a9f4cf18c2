package dtype

import (
	"fmt"
	"reflect"

	"github.com/arloliu/ragged/errs"
	"golang.org/x/exp/constraints"
)

// Numeric is the set of element types a ragged array can hold.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Kind identifies the numeric element type of a values buffer.
type Kind uint8

const (
	KindInvalid Kind = iota // KindInvalid is the zero Kind.
	KindInt8                // KindInt8 represents int8 values.
	KindInt16               // KindInt16 represents int16 values.
	KindInt32               // KindInt32 represents int32 values.
	KindInt64               // KindInt64 represents int64 values.
	KindUint8               // KindUint8 represents uint8 values.
	KindUint16              // KindUint16 represents uint16 values.
	KindUint32              // KindUint32 represents uint32 values.
	KindUint64              // KindUint64 represents uint64 values.
	KindFloat32             // KindFloat32 represents float32 values.
	KindFloat64             // KindFloat64 represents float64 values.
	kindCount
)

// DefaultKind is used when no element carries type information, e.g. for an
// empty or all-missing input.
const DefaultKind = KindFloat64

var kindNames = [kindCount]string{
	KindInvalid: "invalid",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

var kindBits = [kindCount]int{
	KindInt8:    8,
	KindInt16:   16,
	KindInt32:   32,
	KindInt64:   64,
	KindUint8:   8,
	KindUint16:  16,
	KindUint32:  32,
	KindUint64:  64,
	KindFloat32: 32,
	KindFloat64: 64,
}

// String returns the lower-case Go name of the kind.
func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}

	return kindNames[k]
}

// Valid reports whether k names a numeric kind.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < kindCount
}

// Bits returns the width of one value of kind k in bits, or 0 for an invalid kind.
func (k Kind) Bits() int {
	if !k.Valid() {
		return 0
	}

	return kindBits[k]
}

// Size returns the width of one value of kind k in bytes.
func (k Kind) Size() int {
	return k.Bits() / 8
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool {
	return k >= KindInt8 && k <= KindInt64
}

// IsUnsigned reports whether k is an unsigned integer kind.
func (k Kind) IsUnsigned() bool {
	return k >= KindUint8 && k <= KindUint64
}

// ParseKind returns the kind named by s, e.g. "int32" or "float64".
func ParseKind(s string) (Kind, error) {
	for k := KindInt8; k < kindCount; k++ {
		if kindNames[k] == s {
			return k, nil
		}
	}

	return KindInvalid, fmt.Errorf("%w: unknown numeric kind %q", errs.ErrTypeParse, s)
}

// KindOf returns the kind of the type parameter T.
//
// Named types resolve to the kind of their underlying type. The platform-sized
// int, uint and uintptr map to the kind of their actual width.
func KindOf[T Numeric]() Kind {
	typ := reflect.TypeFor[T]()
	switch typ.Kind() { //nolint:exhaustive
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Int:
		if typ.Size() == 4 {
			return KindInt32
		}

		return KindInt64
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Uint, reflect.Uintptr:
		if typ.Size() == 4 {
			return KindUint32
		}

		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	default:
		return KindInvalid
	}
}

// Promote returns the smallest kind that can represent values of both a and b.
//
// Integers of the same signedness promote to the wider width. A signed and an
// unsigned integer promote to a signed kind wide enough for both, or to
// float64 when the unsigned side is 64 bits wide. Mixing integers with
// float32 keeps float32 for integers up to 16 bits and otherwise promotes to
// float64. An invalid operand yields the other operand.
func Promote(a, b Kind) Kind {
	switch {
	case !a.Valid():
		return b
	case !b.Valid():
		return a
	case a == b:
		return a
	}

	if a.IsFloat() || b.IsFloat() {
		if a == KindFloat64 || b == KindFloat64 {
			return KindFloat64
		}
		// exactly one float32 plus either float32 or an integer
		other := a
		if a == KindFloat32 {
			other = b
		}
		if other.IsFloat() || other.Bits() <= 16 {
			return KindFloat32
		}

		return KindFloat64
	}

	if a.IsSigned() == b.IsSigned() {
		if a.Bits() >= b.Bits() {
			return a
		}

		return b
	}

	signed, unsigned := a, b
	if b.IsSigned() {
		signed, unsigned = b, a
	}
	if unsigned.Bits() < signed.Bits() {
		return signed
	}

	switch unsigned.Bits() {
	case 8:
		return KindInt16
	case 16:
		return KindInt32
	case 32:
		return KindInt64
	default:
		return KindFloat64
	}
}

// Result folds Promote over kinds. With no valid kind it returns DefaultKind.
func Result(kinds ...Kind) Kind {
	res := KindInvalid
	for _, k := range kinds {
		res = Promote(res, k)
	}
	if !res.Valid() {
		return DefaultKind
	}

	return res
}
