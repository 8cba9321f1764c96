package risk

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrDivisionByZero matches every *DivisionByZeroError via errors.Is.
	ErrDivisionByZero = errors.New("division by zero")
)

// ValidationError reports an input that violates a calculation precondition.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DivisionByZeroError is returned when the entry/stop distance collapses to zero.
type DivisionByZeroError struct {
	Op string
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s: entry and stop loss distance is zero", e.Op)
}

func (e *DivisionByZeroError) Is(target error) bool {
	return target == ErrDivisionByZero
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}
