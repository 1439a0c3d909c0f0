package optref

import (
	"github.com/pkg/errors"

	"github.com/muir/optref/optional"
)

// ErrEmptyAccess is reported by checked accessors (Value, MustValue)
// that observe an empty view. It is the same sentinel that
// optional.Value reports, so code handling one handles both. Match
// it with errors.Is.
var ErrEmptyAccess = optional.ErrEmpty

type conversionError struct {
	cause error
}

// ConversionError annotates an error as a rejected view or value
// conversion (illegal direction, unrelated types). These rejections
// are properties of the types involved, never of runtime state.
func ConversionError(err error) error {
	if err == nil {
		return nil
	}
	return conversionError{
		cause: errors.WithStack(err),
	}
}

func (c conversionError) Error() string { return c.cause.Error() }
func (c conversionError) Unwrap() error { return c.cause }
func (c conversionError) Cause() error  { return c.cause }
func (c conversionError) Is(err error) bool {
	_, ok := err.(conversionError)
	return ok
}
func IsConversionError(err error) bool {
	var c conversionError
	return errors.Is(err, c)
}
