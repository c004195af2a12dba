package rop

import (
	"time"

	"github.com/google/uuid"
	"github.com/secureworks/errors"
)

// Outcome is the signal-only result of an operation: success, partial
// success with a mild error, or failure with the error that caused it.
// The zero value is empty and neither succeeded nor carrying an error.
type Outcome struct {
	id        uuid.UUID
	createdAt time.Time
	state     State
	err       error
	site      errors.Frame
}

func newOutcome(s State, err error, site errors.Frame) Outcome {
	return Outcome{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		state:     s,
		err:       err,
		site:      site,
	}
}

// capture records the frame skip levels above itself, if enabled.
func capture(s State, skip int) errors.Frame {
	if s == StateSuccess || !settings().captureOrigin {
		return nil
	}
	return errors.CallerAt(skip)
}

// Ok returns a successful Outcome.
func Ok() Outcome {
	return newOutcome(StateSuccess, nil, nil)
}

// PartialOk returns a successful Outcome degraded by a mild error.
func PartialOk(err error) Outcome {
	if IsNil(err) {
		panic(invalidArgument("PartialOk", StatePartialSuccess, "error is nil"))
	}
	return newOutcome(StatePartialSuccess, err, capture(StatePartialSuccess, 2))
}

// Failure returns a failed Outcome carrying err.
func Failure(err error) Outcome {
	if IsNil(err) {
		panic(invalidArgument("Failure", StateError, "error is nil"))
	}
	return newOutcome(StateError, err, capture(StateError, 2))
}

// FromErr converts a caught error into a failed Outcome. It is equivalent to
// Failure.
func FromErr(err error) Outcome {
	if IsNil(err) {
		panic(invalidArgument("FromErr", StateError, "error is nil"))
	}
	return newOutcome(StateError, err, capture(StateError, 2))
}

// OutcomeOf adapts the error of a plain Go call: nil is a success, anything
// else a failure.
func OutcomeOf(err error) Outcome {
	if IsNil(err) {
		return Ok()
	}
	return newOutcome(StateError, err, capture(StateError, 2))
}

func (o Outcome) State() State {
	return o.state
}

// Succeeded reports a full or partial success.
func (o Outcome) Succeeded() bool {
	return o.state.Succeeded()
}

// SucceededPartially reports a partial success.
func (o Outcome) SucceededPartially() bool {
	return o.state == StatePartialSuccess
}

func (o Outcome) IsEmpty() bool {
	return o.state == stateEmpty
}

// Message returns the message of the carried error or an empty string.
func (o Outcome) Message() string {
	if o.err == nil {
		return ""
	}
	return o.err.Error()
}

// GetError returns the carried error. It panics with ErrInvalidState when
// the Outcome carries none.
func (o Outcome) GetError() error {
	if o.err == nil {
		panic(invalidState("GetError", o.state))
	}
	return o.err
}

// Err returns the carried error or nil.
func (o Outcome) Err() error {
	return o.err
}

func (o Outcome) Id() uuid.UUID {
	return o.id
}

// CreatedAt time creation (UTC)
func (o Outcome) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome) String() string {
	return describe(o.state, o.err)
}

func (o Outcome) captureSite() errors.Frame {
	return o.site
}

// Check returns o unchanged when it succeeded. Otherwise it records the
// caller in the carried error's history and panics with that error.
func (o Outcome) Check() Outcome {
	if o.Succeeded() {
		return o
	}
	panic(escalate("Check", o.state, o.err, o.site, 2))
}

// Escalate returns nil when o succeeded. Otherwise it records the caller in
// the carried error's history and returns that error.
func (o Outcome) Escalate() error {
	if o.Succeeded() {
		return nil
	}
	return escalate("Escalate", o.state, o.err, o.site, 2)
}

func describe(s State, err error) string {
	if err == nil {
		return s.String()
	}
	return s.String() + ": " + err.Error()
}
