package rop

// State classifies the outcome of an operation.
type State uint8

const (
	stateEmpty State = iota
	// StateSuccess is a full success without an error.
	StateSuccess
	// StatePartialSuccess is a usable success carrying a mild error.
	StatePartialSuccess
	// StateError is a failure carrying the error that caused it.
	StateError
)

func (s State) String() string {
	switch s {
	case stateEmpty:
		return "empty"
	case StateSuccess:
		return "success"
	case StatePartialSuccess:
		return "partial success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Succeeded reports whether the state allows the caller to continue.
func (s State) Succeeded() bool {
	return s == StateSuccess || s == StatePartialSuccess
}
