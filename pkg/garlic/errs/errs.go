package errs

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyValue    = errors.New("value is empty")
	ErrCannotCoerce  = errors.New("value cannot be coerced")
	ErrNotAnInteger  = errors.New("value is not an integer")
	ErrMinimumValue  = errors.New("value is below the minimum")
	ErrMaximumValue  = errors.New("value is above the maximum")
	ErrMinimumLength = errors.New("value is shorter than the minimum length")
	ErrMaximumLength = errors.New("value is longer than the maximum length")
	ErrInvalidEmail  = errors.New("value is not a valid email address")

	// ErrInvalidBounds marks a misconfigured call (minimum above maximum, NaN bound).
	// Checkers propagate it instead of reporting false.
	ErrInvalidBounds = errors.New("invalid bounds")

	// ErrInvalidArgument is returned for arguments that fail a precondition.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ValidationError ties a sentinel to the operation and the rejected value.
type ValidationError struct {
	Op    string
	Value any
	Err   error
}

func New(op string, value any, err error) *ValidationError {
	return &ValidationError{Op: op, Value: value, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v (value %#v)", e.Op, e.Err, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsConfiguration reports errors caused by the caller's options rather than the value.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrInvalidBounds)
}
