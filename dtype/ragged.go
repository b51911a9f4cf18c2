package dtype

import (
	"fmt"

	"github.com/arloliu/ragged/errs"
)

// Name is the stable type tag a host runtime uses to route column operations
// to ragged arrays.
const Name = "ragged"

// Ragged is the type descriptor of a ragged array column.
//
// The descriptor carries no parameters: the numeric kind of the values buffer
// is a property of each array, not of the column type.
type Ragged struct{}

// Name returns the type tag.
func (Ragged) Name() string {
	return Name
}

// String implements fmt.Stringer.
func (Ragged) String() string {
	return Name
}

// ConstructFromString parses a type tag back into a descriptor.
// Any tag other than Name fails with errs.ErrTypeParse.
func ConstructFromString(s string) (Ragged, error) {
	if s != Name {
		return Ragged{}, fmt.Errorf("%w: cannot construct a %q type from %q", errs.ErrTypeParse, Name, s)
	}

	return Ragged{}, nil
}
