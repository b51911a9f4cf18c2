// Package dtype describes the element types of a ragged array.
//
// A ragged array stores two flat buffers: a values buffer whose element type is
// one of the numeric kinds listed here, and an offsets buffer whose element
// type is an unsigned integer of one of four widths. This package names those
// types, picks the narrowest offset width for a given values length, promotes
// mixed input kinds to a common kind, and exposes the "ragged" type tag that a
// host runtime uses to route column operations.
//
// # Kinds
//
// Kind identifies a numeric element type:
//
//	dtype.KindOf[float32]()            // dtype.KindFloat32
//	dtype.Result(dtype.KindInt8, dtype.KindUint8) // dtype.KindInt16
//
// # Offset widths
//
//	dtype.NarrowestOffsetWidth(300)    // dtype.OffsetWidth16
//
// # Type tag
//
//	t, err := dtype.ConstructFromString("ragged")
//	_, err = dtype.ConstructFromString("ragged2") // errs.ErrTypeParse
package dtype
