package lifecycle

import (
	"errors"

	"missionloop.ai/internal/engine"
	"missionloop.ai/internal/protocol"
)

// Class categorizes a mission-start failure.
type Class string

const (
	ClassWarmingUp           Class = "warming_up"           // engine not ready yet
	ClassInsufficientClients Class = "insufficient_clients" // not enough engine clients available
	ClassPrimaryNotFound     Class = "primary_not_found"    // dependent started before the primary
	ClassFatal               Class = "fatal"
)

// Capped reports whether failures of this class count toward the attempt cap.
func (c Class) Capped() bool {
	return c == ClassInsufficientClients || c == ClassPrimaryNotFound
}

// Classify maps a start error to its class. A missing primary is only
// retryable for dependent roles; for role 0 it is fatal.
func Classify(err error, role int) Class {
	var se *engine.StartError
	if !errors.As(err, &se) {
		return ClassFatal
	}
	switch se.Code {
	case protocol.ErrServerWarmingUp:
		return ClassWarmingUp
	case protocol.ErrInsufficientClients:
		return ClassInsufficientClients
	case protocol.ErrServerNotFound:
		if role > 0 {
			return ClassPrimaryNotFound
		}
		return ClassFatal
	default:
		return ClassFatal
	}
}
