package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrType is matched by every *TypeError through errors.Is.
	ErrType = errors.New("type error")
	// ErrRange is matched by every *RangeError through errors.Is.
	ErrRange = errors.New("range error")
)

// TypeError reports a value whose shape is not accepted by the column type.
type TypeError struct {
	Type   Type
	Column string
	Value  any
	Reason string
}

func (e *TypeError) Error() string {
	if e.Type == Unsupported && e.Column == "" && e.Reason != "" {
		return fmt.Sprintf("unexpected %T: %s", e.Value, e.Reason)
	}

	msg := fmt.Sprintf("cannot bind %T to %s", e.Value, e.Type)
	if e.Column != "" {
		msg = fmt.Sprintf("cannot bind %T to %s column %q", e.Value, e.Type, e.Column)
	}

	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}

func (*TypeError) Is(target error) bool {
	return target == ErrType
}

// RangeError reports a value of an accepted shape whose magnitude is outside the column's domain.
type RangeError struct {
	Type   Type
	Column string
	Value  any
}

func (e *RangeError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%v is out of range for %s column %q", e.Value, e.Type, e.Column)
	}

	return fmt.Sprintf("%v is out of range for %s", e.Value, e.Type)
}

func (*RangeError) Is(target error) bool {
	return target == ErrRange
}

// WithColumn returns err annotated with the column name when it is a codec error.
func WithColumn(err error, column string) error {
	var (
		te *TypeError
		re *RangeError
	)

	switch {
	case errors.As(err, &te):
		c := *te
		c.Column = column

		return &c
	case errors.As(err, &re):
		c := *re
		c.Column = column

		return &c
	default:
		return err
	}
}
