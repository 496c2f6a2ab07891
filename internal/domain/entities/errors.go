package entities

import (
	"errors"
	"fmt"
)

// ErrInvalidField is matched by errors.Is for every *InvalidFieldError.
var ErrInvalidField = errors.New("invalid field value")

// InvalidFieldError is returned when a persisted document carries a value
// outside the allowed set for one of its typed fields.
type InvalidFieldError struct {
	Entity string
	Field  string
	Value  string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s.%s: invalid value %q", e.Entity, e.Field, e.Value)
}

func (e *InvalidFieldError) Is(target error) bool {
	return target == ErrInvalidField
}
