package snapshot

import "fmt"

type Reason string

const (
	Malformed        Reason = "malformed"
	MissingField     Reason = "missing_field"
	InvalidField     Reason = "invalid_field"
	GridSizeMismatch Reason = "grid_size_mismatch"
	InvalidSlot      Reason = "invalid_slot"
)

// DecodeError reports why a raw observation could not be turned into a World.
// A failed decode never yields a partial World.
type DecodeError struct {
	Reason Reason
	Detail string
	Err    error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("decode observation: %s", e.Reason)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }
