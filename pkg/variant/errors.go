package variant

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned when a value does not fit the target type.
	ErrOverflow = errors.New("value was either too large or too small")
	// ErrInvalidCast is returned when no conversion between two types exists.
	ErrInvalidCast = errors.New("invalid cast")
	// ErrArgument is returned when two variants of incompatible types are
	// ordered.
	ErrArgument = errors.New("invalid argument")
	// ErrIncomparable is returned when ordering Object variants.
	ErrIncomparable = errors.New("objects are not ordered")
	// ErrFormat is returned for unsupported format strings.
	ErrFormat = errors.New("invalid format string")
)

// ConvertError describes a failed conversion between two types.
type ConvertError struct {
	From Tag
	// To is the name of the target type; it is a Tag name for all the
	// conversions the extenders implement, and a Go type name for ToType.
	To  string
	Err error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s: %v", e.From, e.To, e.Err)
}

func (e *ConvertError) Unwrap() error { return e.Err }

// CompareError describes an attempt to order two variants whose types cannot
// be ordered against each other.
type CompareError struct {
	Left, Right Tag
}

func (e *CompareError) Error() string {
	return fmt.Sprintf("invalid argument: cannot compare %s with %s", e.Left, e.Right)
}

func (e *CompareError) Is(target error) bool { return target == ErrArgument }

func overflow(from, to Tag) error {
	return &ConvertError{from, to.String(), ErrOverflow}
}

func invalidCast(from, to Tag) error {
	return &ConvertError{from, to.String(), ErrInvalidCast}
}

func formatError(format string) error {
	return fmt.Errorf("%w: %q", ErrFormat, format)
}
