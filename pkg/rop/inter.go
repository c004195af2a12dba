package rop

import (
	"time"

	"github.com/google/uuid"
	"github.com/secureworks/errors"
)

// Signal is implemented by every result: it reports how the operation ended.
type Signal interface {
	State() State
	// Succeeded returns true for a full or partial success
	Succeeded() bool
	// SucceededPartially returns true for a partial success
	SucceededPartially() bool
	// Message returns the carried error's message or ""
	Message() string
	// Err returns the carried error or nil
	Err() error
}

// Identified exposes the metadata every result carries.
type Identified interface {
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// ResultProvider defines an interface for results holding a payload.
type ResultProvider[T any] interface {
	Signal
	// GetOk returns the payload or panics
	GetOk() T
	// Get returns the payload or the carried error
	Get() (T, error)
}

// Checkable is satisfied by Outcome and Result[T] only.
type Checkable interface {
	Signal
	captureSite() errors.Frame
}

var (
	_ Checkable           = Outcome{}
	_ Checkable           = Result[int]{}
	_ Identified          = Outcome{}
	_ ResultProvider[int] = Result[int]{}
)
