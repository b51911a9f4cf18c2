package array

import (
	"fmt"
	"math"

	"github.com/arloliu/ragged/dtype"
	"github.com/arloliu/ragged/errs"
	"github.com/arloliu/ragged/internal/options"
)

// Column is the type-erased view of a Ragged container that a host runtime
// works with when it does not know the values kind statically.
type Column interface {
	// Len returns the number of logical elements.
	Len() int
	// Kind returns the numeric kind of the values buffer.
	Kind() dtype.Kind
	// Type returns the column type descriptor.
	Type() dtype.Ragged
	// ElementAt returns element i as a []T held in an any, or nil when missing.
	ElementAt(i int) (any, error)
	// IsMissing reports, per element, whether it is missing.
	IsMissing() []bool
	// NBytes returns the memory held by the buffers.
	NBytes() int
	// AsKind converts the values to another numeric kind.
	AsKind(k dtype.Kind) (Column, error)
	// String formats the elements.
	String() string
}

var (
	_ Column = (*Ragged[float64])(nil)
	_ Column = (*Ragged[uint8])(nil)
)

// Missing is an explicit missing element for FromAny input.
var Missing = missingValue{}

type missingValue struct{}

func (missingValue) String() string {
	return missingText
}

type buildConfig struct {
	kind dtype.Kind
}

// BuildOption configures FromAny.
type BuildOption = options.Option[*buildConfig]

// WithKind forces the values kind instead of inferring it from the input.
func WithKind(k dtype.Kind) BuildOption {
	return options.New(func(c *buildConfig) error {
		if !k.Valid() {
			return fmt.Errorf("%w: invalid kind %s", errs.ErrConfiguration, k)
		}
		c.kind = k

		return nil
	})
}

// FromAny builds a Column from heterogeneous elements.
//
// Each element is a numeric slice ([]int8 … []float64, []int, []uint) or a
// missing value: nil, Missing, or a scalar float NaN. Unless WithKind is
// given, the values kind is the common kind of all non-missing elements
// (see dtype.Result); an empty or all-missing input yields float64.
// Any other element fails with errs.ErrUnsupportedType.
func FromAny(elements []any, opts ...BuildOption) (Column, error) {
	cfg := &buildConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	kinds := make([]dtype.Kind, 0, len(elements))
	for i, e := range elements {
		k, err := kindOfElement(e)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		kinds = append(kinds, k)
	}

	kind := cfg.kind
	if !kind.Valid() {
		kind = dtype.Result(kinds...)
	}

	switch kind { //nolint:exhaustive
	case dtype.KindInt8:
		return fromAny[int8](elements), nil
	case dtype.KindInt16:
		return fromAny[int16](elements), nil
	case dtype.KindInt32:
		return fromAny[int32](elements), nil
	case dtype.KindInt64:
		return fromAny[int64](elements), nil
	case dtype.KindUint8:
		return fromAny[uint8](elements), nil
	case dtype.KindUint16:
		return fromAny[uint16](elements), nil
	case dtype.KindUint32:
		return fromAny[uint32](elements), nil
	case dtype.KindUint64:
		return fromAny[uint64](elements), nil
	case dtype.KindFloat32:
		return fromAny[float32](elements), nil
	default:
		return fromAny[float64](elements), nil
	}
}

// kindOfElement classifies one FromAny input; missing elements report KindInvalid.
func kindOfElement(e any) (dtype.Kind, error) {
	switch v := e.(type) {
	case nil, missingValue:
		return dtype.KindInvalid, nil
	case float64:
		if math.IsNaN(v) {
			return dtype.KindInvalid, nil
		}
	case float32:
		if math.IsNaN(float64(v)) {
			return dtype.KindInvalid, nil
		}
	case []int8:
		return sliceKind(v)
	case []int16:
		return sliceKind(v)
	case []int32:
		return sliceKind(v)
	case []int64:
		return sliceKind(v)
	case []int:
		return sliceKind(v)
	case []uint8:
		return sliceKind(v)
	case []uint16:
		return sliceKind(v)
	case []uint32:
		return sliceKind(v)
	case []uint64:
		return sliceKind(v)
	case []uint:
		return sliceKind(v)
	case []float32:
		return sliceKind(v)
	case []float64:
		return sliceKind(v)
	}

	return dtype.KindInvalid, fmt.Errorf("%w: %T", errs.ErrUnsupportedType, e)
}

// sliceKind reports the kind of a typed slice; a nil slice is missing and
// carries no type information, an empty one still does.
func sliceKind[T dtype.Numeric](values []T) (dtype.Kind, error) {
	if values == nil {
		return dtype.KindInvalid, nil
	}

	return dtype.KindOf[T](), nil
}

func fromAny[T dtype.Numeric](elements []any) *Ragged[T] {
	converted := make([][]T, len(elements))
	for i, e := range elements {
		converted[i] = anyToValues[T](e)
	}

	return FromSlices(converted)
}

// anyToValues converts a classified FromAny element to []T; missing yields nil.
func anyToValues[T dtype.Numeric](e any) []T {
	switch v := e.(type) {
	case []T:
		return v
	case []int8:
		return convertValues[T](v)
	case []int16:
		return convertValues[T](v)
	case []int32:
		return convertValues[T](v)
	case []int64:
		return convertValues[T](v)
	case []int:
		return convertValues[T](v)
	case []uint8:
		return convertValues[T](v)
	case []uint16:
		return convertValues[T](v)
	case []uint32:
		return convertValues[T](v)
	case []uint64:
		return convertValues[T](v)
	case []uint:
		return convertValues[T](v)
	case []float32:
		return convertValues[T](v)
	case []float64:
		return convertValues[T](v)
	default:
		return nil
	}
}
