package rop

import (
	"fmt"

	"github.com/secureworks/errors"
)

var (
	// ErrInvalidState is reported when a result is used in a way its state
	// does not allow, e.g. GetOk on a failed result.
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidArgument is reported when a result is constructed in
	// violation of its invariants, e.g. a success without a payload.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrRecovered marks errors built from non-error panic values.
	ErrRecovered = errors.New("recovered panic")
)

// UsageError describes a misuse of a result. It is raised by panicking.
type UsageError struct {
	Op    string
	State State
	Err   error
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return fmt.Sprintf("rop %s on %s result: %v", e.Op, e.State, e.Err)
}

// Unwrap implements error unwrapping.
func (e *UsageError) Unwrap() error {
	return e.Err
}

func invalidState(op string, s State) *UsageError {
	return &UsageError{Op: op, State: s, Err: ErrInvalidState}
}

func invalidArgument(op string, s State, reason string) *UsageError {
	err := &UsageError{Op: op, State: s, Err: fmt.Errorf("%w: %s", ErrInvalidArgument, reason)}
	logger().Errorf("%v", err)
	return err
}
