package rop

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/secureworks/errors"
)

// TracedError wraps an escalated error together with the frames it passed
// through, capture site first. Each escalation appends one frame in place,
// so a TracedError must not be escalated concurrently. A layer that
// escalates the same error more than once in a row is recorded once.
type TracedError struct {
	id     uuid.UUID
	err    error
	frames errors.Frames
}

// Error implements the error interface.
func (e *TracedError) Error() string {
	return e.err.Error()
}

// Unwrap implements error unwrapping.
func (e *TracedError) Unwrap() error {
	return e.err
}

// ID identifies the escalation history.
func (e *TracedError) ID() uuid.UUID {
	return e.id
}

// Frames returns a copy of the recorded history.
func (e *TracedError) Frames() errors.Frames {
	out := make(errors.Frames, len(e.frames))
	copy(out, e.frames)
	return out
}

// Format prints the message for %s and %v, and the message followed by every
// recorded frame for %+v.
func (e *TracedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Error())
			for _, fr := range e.frames {
				fn, file, line := fr.Location()
				_, _ = fmt.Fprintf(s, "\n%s\n\t%s:%d", fn, file, line)
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

func (e *TracedError) push(fr errors.Frame) {
	if n := len(e.frames); n > 0 && funcName(e.frames[n-1]) == funcName(fr) {
		return
	}
	e.frames = append(e.frames, fr)

	limit := settings().historyLimit
	if limit <= 0 || len(e.frames) <= limit {
		return
	}
	if limit == 1 {
		e.frames = e.frames[:1]
		return
	}
	drop := len(e.frames) - limit
	e.frames = append(e.frames[:1], e.frames[1+drop:]...)
}

// traceOf finds the history attached to err or starts a new one seeded with
// the frames err already carries and the frame the result was built at.
// Carried stacks are cut at the escalating frame at, so only the layers
// below it are seeded.
func traceOf(err error, origin, at errors.Frame) (*TracedError, bool) {
	var te *TracedError
	if errors.As(err, &te) {
		return te, false
	}

	te = &TracedError{id: uuid.New(), err: err}
	for _, fr := range below(errors.FramesFrom(err), at) {
		te.push(fr)
	}
	if origin != nil {
		te.push(origin)
	}
	return te, true
}

// below returns the frames of ff that precede the first call of at's
// function. ff is returned whole when at is not on it.
func below(ff errors.Frames, at errors.Frame) errors.Frames {
	fn := funcName(at)
	for i, fr := range ff {
		if funcName(fr) == fn {
			return ff[:i]
		}
	}
	return ff
}

// panicFrames drops the runtime frames that lead a stack taken while
// unwinding a panic, so the panicking function comes first.
func panicFrames(ff errors.Frames) errors.Frames {
	for len(ff) > 0 && isRuntime(funcName(ff[0])) {
		ff = ff[1:]
	}
	return ff
}

func isRuntime(fn string) bool {
	return strings.HasPrefix(fn, "runtime.") || strings.HasPrefix(fn, "internal/")
}

func funcName(fr errors.Frame) string {
	if fr == nil {
		return ""
	}
	fn, _, _ := fr.Location()
	return fn
}

// History returns the frames recorded for err, capture site first. Errors
// that were never escalated report the frames attached by the errors
// package, if any.
func History(err error) errors.Frames {
	var te *TracedError
	if errors.As(err, &te) {
		return te.Frames()
	}
	return errors.FramesFrom(err)
}
