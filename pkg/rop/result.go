package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/secureworks/errors"
)

// Result is the payload-carrying variant of Outcome. A succeeded Result
// always holds a non-nil payload; a failed one never holds a payload.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	site      errors.Frame
	state     State
	hasResult bool
}

func newResult[T any](s State, r T, hasResult bool, err error, site errors.Frame) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		result:    r,
		err:       err,
		site:      site,
		state:     s,
		hasResult: hasResult,
	}
}

// Success returns a successful Result holding r. It panics with
// ErrInvalidArgument when r is nil.
func Success[T any](r T) Result[T] {
	if IsNil(r) {
		panic(invalidArgument("Success", StateSuccess, fmt.Sprintf("payload %T is nil", r)))
	}
	return newResult(StateSuccess, r, true, nil, nil)
}

// PartialSuccess returns a successful Result holding r and degraded by the
// mild error err.
func PartialSuccess[T any](r T, err error) Result[T] {
	if IsNil(r) {
		panic(invalidArgument("PartialSuccess", StatePartialSuccess, fmt.Sprintf("payload %T is nil", r)))
	}
	if IsNil(err) {
		panic(invalidArgument("PartialSuccess", StatePartialSuccess, "error is nil"))
	}
	return newResult(StatePartialSuccess, r, true, err, capture(StatePartialSuccess, 2))
}

// Fail returns a failed Result carrying err.
func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		panic(invalidArgument("Fail", StateError, "error is nil"))
	}
	var zero T
	return newResult(StateError, zero, false, err, capture(StateError, 2))
}

// FailAt is Fail recording the frame skip levels above its caller as the
// capture site, for helpers that fail on behalf of their own caller.
func FailAt[T any](err error, skip int) Result[T] {
	if IsNil(err) {
		panic(invalidArgument("FailAt", StateError, "error is nil"))
	}
	var zero T
	return newResult(StateError, zero, false, err, capture(StateError, skip+2))
}

// FromPayload wraps a bare value. It is equivalent to Success.
func FromPayload[T any](r T) Result[T] {
	if IsNil(r) {
		panic(invalidArgument("FromPayload", StateSuccess, fmt.Sprintf("payload %T is nil", r)))
	}
	return newResult(StateSuccess, r, true, nil, nil)
}

// FromError wraps a caught error. It is equivalent to Fail.
func FromError[T any](err error) Result[T] {
	if IsNil(err) {
		panic(invalidArgument("FromError", StateError, "error is nil"))
	}
	var zero T
	return newResult(StateError, zero, false, err, capture(StateError, 2))
}

// From adapts a (value, error) pair returned by a plain Go call.
func From[T any](r T, err error) Result[T] {
	if !IsNil(err) {
		var zero T
		return newResult(StateError, zero, false, err, capture(StateError, 2))
	}
	if IsNil(r) {
		panic(invalidArgument("From", StateSuccess, fmt.Sprintf("payload %T is nil", r)))
	}
	return newResult(StateSuccess, r, true, nil, nil)
}

// FailFrom re-types a failed Result, keeping its error, identity and
// capture site.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.state != StateError {
		panic(invalidState("FailFrom", from.state))
	}
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.err,
		site:      from.site,
		state:     from.state,
	}
}

func (r Result[T]) State() State {
	return r.state
}

// Succeeded reports a full or partial success.
func (r Result[T]) Succeeded() bool {
	return r.state.Succeeded()
}

// SucceededPartially reports a partial success.
func (r Result[T]) SucceededPartially() bool {
	return r.state == StatePartialSuccess
}

// IsSuccess is an alias of Succeeded.
func (r Result[T]) IsSuccess() bool {
	return r.Succeeded()
}

// IsFailure reports a failed Result.
func (r Result[T]) IsFailure() bool {
	return r.state == StateError
}

func (r Result[T]) IsEmpty() bool {
	return r.state == stateEmpty
}

func (r Result[T]) HasResult() bool {
	return r.hasResult
}

// Message returns the message of the carried error or an empty string.
func (r Result[T]) Message() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}

// GetOk returns the payload. It panics with ErrInvalidState unless the
// Result succeeded.
func (r Result[T]) GetOk() T {
	if !r.state.Succeeded() {
		panic(invalidState("GetOk", r.state))
	}
	if !r.hasResult {
		panic(&UsageError{Op: "GetOk", State: r.state, Err: fmt.Errorf("%w: payload for Result[%T] was not set", ErrInvalidState, r.result)})
	}
	return r.result
}

// GetError returns the carried error. It panics with ErrInvalidState when
// the Result carries none.
func (r Result[T]) GetError() error {
	if r.err == nil {
		panic(invalidState("GetError", r.state))
	}
	return r.err
}

// Result returns the payload, or the zero value when there is none.
func (r Result[T]) Result() T {
	return r.result
}

// Err returns the carried error or nil. A partial success reports its mild
// error.
func (r Result[T]) Err() error {
	return r.err
}

// Get returns the payload of a succeeded Result, or the carried error
// otherwise. The mild error of a partial success is not reported.
func (r Result[T]) Get() (T, error) {
	if r.state.Succeeded() {
		return r.result, nil
	}
	if r.err == nil {
		var zero T
		return zero, invalidState("Get", r.state)
	}
	return r.result, r.err
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Outcome drops the payload.
func (r Result[T]) Outcome() Outcome {
	return Outcome{
		id:        r.id,
		createdAt: r.createdAt,
		state:     r.state,
		err:       r.err,
		site:      r.site,
	}
}

func (r Result[T]) String() string {
	if r.state.Succeeded() {
		return describe(r.state, r.err) + fmt.Sprintf(" (%v)", r.result)
	}
	return describe(r.state, r.err)
}

func (r Result[T]) captureSite() errors.Frame {
	return r.site
}

// Check returns r unchanged when it succeeded. Otherwise it records the
// caller in the carried error's history and panics with that error.
func (r Result[T]) Check() Result[T] {
	if r.Succeeded() {
		return r
	}
	panic(escalate("Check", r.state, r.err, r.site, 2))
}

// Escalate returns nil when r succeeded. Otherwise it records the caller in
// the carried error's history and returns that error.
func (r Result[T]) Escalate() error {
	if r.Succeeded() {
		return nil
	}
	return escalate("Escalate", r.state, r.err, r.site, 2)
}
