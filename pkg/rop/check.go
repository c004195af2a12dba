package rop

import (
	"fmt"

	"github.com/secureworks/errors"
)

// Check returns r unchanged when it succeeded. Otherwise it records the
// caller in the carried error's history and panics with that error.
//
// The first escalation of an error wraps it in a *TracedError; later ones
// raise the carried error as is. Code recovering the panic should match the
// domain error with errors.Is or errors.As rather than a type assertion on
// the recovered value.
func Check[R Checkable](r R) R {
	if r.Succeeded() {
		return r
	}
	panic(escalate("Check", r.State(), r.Err(), r.captureSite(), 2))
}

// CheckAt is Check recording the frame skip levels above its caller. It
// serves helpers that escalate on behalf of their own caller.
func CheckAt[R Checkable](r R, skip int) R {
	if r.Succeeded() {
		return r
	}
	panic(escalate("Check", r.State(), r.Err(), r.captureSite(), skip+2))
}

// EscalateAt is the non-panicking form of CheckAt.
func EscalateAt(r Checkable, skip int) error {
	if r.Succeeded() {
		return nil
	}
	return escalate("Escalate", r.State(), r.Err(), r.captureSite(), skip+2)
}

// escalate records the frame skip levels above itself and returns the error
// to raise.
func escalate(op string, s State, err error, site errors.Frame, skip int) error {
	if err == nil {
		panic(invalidState(op, s))
	}

	at := errors.CallerAt(skip)
	te, created := traceOf(err, site, at)
	te.push(at)

	logger().Debugf("rop: escalating %q from %s result, history depth %d", err.Error(), s, len(te.frames))

	if created {
		return te
	}
	return err
}

// Catch recovers a panic and stores it in out as a failed Outcome. It must be
// deferred directly:
//
//	defer rop.Catch(&out)
func Catch(out *Outcome) {
	if r := recover(); r != nil {
		*out = newOutcome(StateError, recovered(r), nil)
	}
}

// CatchResult is Catch for payload-carrying results.
func CatchResult[T any](out *Result[T]) {
	if r := recover(); r != nil {
		var zero T
		*out = newResult(StateError, zero, false, recovered(r), nil)
	}
}

// recovered converts a panic value into an error. Errors already carrying a
// history pass through; anything else gets the stack from the panicking
// function down. It must be called directly by Catch or CatchResult.
func recovered(r interface{}) error {
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%w: %v", ErrRecovered, r)
	}

	var te *TracedError
	if errors.As(err, &te) {
		return err
	}

	logger().Warningf("rop: recovered panic: %v", err)
	return errors.WithFrames(err, panicFrames(errors.CallStackAt(2)))
}
