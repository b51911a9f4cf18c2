package array

import (
	"fmt"

	"github.com/arloliu/ragged/dtype"
	"github.com/arloliu/ragged/errs"
)

// ExtensionFactory builds another column type from materialized elements.
// A nil entry in elements is a missing element.
type ExtensionFactory[T dtype.Numeric] interface {
	FromSequence(elements [][]T) (any, error)
}

// ExtensionFactoryFunc adapts a function to ExtensionFactory.
type ExtensionFactoryFunc[T dtype.Numeric] func(elements [][]T) (any, error)

// FromSequence implements ExtensionFactory.
func (f ExtensionFactoryFunc[T]) FromSequence(elements [][]T) (any, error) {
	return f(elements)
}

// AsRagged casts r to its own type: r itself, or a deep copy when copy is true.
func (r *Ragged[T]) AsRagged(copy bool) *Ragged[T] {
	if copy {
		return r.Clone()
	}

	return r
}

// AsExtension casts r to another column type by handing its materialized
// elements to factory.
func (r *Ragged[T]) AsExtension(factory ExtensionFactory[T]) (any, error) {
	if factory == nil {
		return nil, fmt.Errorf("%w: nil extension factory", errs.ErrConfiguration)
	}

	return factory.FromSequence(r.ToSlices())
}

// ToSlices materializes every element into a fresh slice; missing elements are nil.
func (r *Ragged[T]) ToSlices() [][]T {
	out := make([][]T, r.Len())
	for i := range out {
		if values := r.element(i); values != nil {
			out[i] = append([]T(nil), values...)
		}
	}

	return out
}

// ConvertSlices materializes every element of r converted to U; missing elements are nil.
// Conversions follow Go's numeric conversion rules.
func ConvertSlices[U, T dtype.Numeric](r *Ragged[T]) [][]U {
	out := make([][]U, r.Len())
	for i := range out {
		if values := r.element(i); values != nil {
			out[i] = convertValues[U](values)
		}
	}

	return out
}

// Convert returns a container with every value converted to U. Element
// boundaries and the offsets buffer are preserved.
func Convert[U, T dtype.Numeric](r *Ragged[T]) *Ragged[U] {
	return &Ragged[U]{offsets: r.offsets.clone(), values: convertValues[U](r.values)}
}

func convertValues[U, T dtype.Numeric](values []T) []U {
	out := make([]U, len(values))
	for i, v := range values {
		out[i] = U(v)
	}

	return out
}

// AsKind returns r converted to the numeric kind k as a Column. Converting to
// r's own kind returns a deep copy.
func (r *Ragged[T]) AsKind(k dtype.Kind) (Column, error) {
	switch k {
	case dtype.KindInt8:
		return Convert[int8](r), nil
	case dtype.KindInt16:
		return Convert[int16](r), nil
	case dtype.KindInt32:
		return Convert[int32](r), nil
	case dtype.KindInt64:
		return Convert[int64](r), nil
	case dtype.KindUint8:
		return Convert[uint8](r), nil
	case dtype.KindUint16:
		return Convert[uint16](r), nil
	case dtype.KindUint32:
		return Convert[uint32](r), nil
	case dtype.KindUint64:
		return Convert[uint64](r), nil
	case dtype.KindFloat32:
		return Convert[float32](r), nil
	case dtype.KindFloat64:
		return Convert[float64](r), nil
	default:
		return nil, fmt.Errorf("%w: cannot cast to kind %s", errs.ErrUnsupportedType, k)
	}
}
