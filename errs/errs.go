// Package errs defines the sentinel errors returned by the ragged packages.
//
// Every error returned by this module wraps exactly one of these sentinels, so
// callers can classify failures with errors.Is:
//
//	r, err := array.FromBuffers(offsets, values)
//	if errors.Is(err, errs.ErrInvariantViolation) {
//	    // malformed offsets/values pair
//	}
//
// All of them describe a caller contract violation. None is transient and
// retrying the same call always fails the same way.
package errs

import "errors"

var (
	// ErrInvariantViolation is returned when a raw offsets/values pair breaks
	// the container invariants, e.g. an offset exceeds the values length.
	ErrInvariantViolation = errors.New("ragged: invariant violation")

	// ErrOutOfBounds is returned when a position or take index falls outside [-N, N).
	ErrOutOfBounds = errors.New("ragged: index out of bounds")

	// ErrEmptySource is returned when a non-empty take is attempted against an empty container.
	ErrEmptySource = errors.New("ragged: cannot do a non-empty take from an empty container")

	// ErrInvalidIndex is returned when take with fill enabled receives a negative index other than -1.
	ErrInvalidIndex = errors.New("ragged: invalid index for take with fill")

	// ErrConfiguration is returned when mutually exclusive arguments are combined
	// or a required choice is missing.
	ErrConfiguration = errors.New("ragged: invalid configuration")

	// ErrTypeParse is returned when a type tag does not name a known type.
	ErrTypeParse = errors.New("ragged: cannot parse type")

	// ErrLengthMismatch is returned when an argument must have the same length as the container.
	ErrLengthMismatch = errors.New("ragged: length mismatch")

	// ErrUnsupportedType is returned when an input element is not a numeric slice or a missing value.
	ErrUnsupportedType = errors.New("ragged: unsupported element type")

	// ErrAlreadyRegistered is returned when a type tag is registered twice.
	ErrAlreadyRegistered = errors.New("ragged: type tag already registered")
)
