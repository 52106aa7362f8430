// Package engine is the client side of the link to a running engine
// instance: starting a mission, peeking at mission status, collecting the
// latest observation and sending commands.
package engine

import (
	"context"
	"encoding/json"
	"fmt"
)

// Mission is what a connection needs to start its part of a shared mission.
// Descriptor is opaque and passed through unmodified.
type Mission struct {
	ExperimentID string
	Role         int
	Roles        int
	Descriptor   []byte
}

// Status is a non-consuming view of a connection's state.
type Status struct {
	MissionBegun   bool
	MissionRunning bool
	// ObservationsSinceLastPoll counts observations received since the last
	// call to Poll.
	ObservationsSinceLastPoll int
	// Errors reported by the engine and not yet collected by Poll.
	Errors []string
}

// WorldState is what Poll hands back: the status at the time of the call and
// the most recent raw observation record, if any.
type WorldState struct {
	Status
	Seq         uint64
	Observation json.RawMessage
}

// Commander sends single-line commands to an engine.
type Commander interface {
	SendCommand(cmd string) error
}

// Connection is one client link into an engine instance. Peek never blocks
// and never consumes anything; Poll consumes pending observations and errors.
type Connection interface {
	Commander
	Name() string
	StartMission(ctx context.Context, m Mission) error
	Peek() Status
	Poll() WorldState
	Close() error
}

// StartError is a mission-start refusal reported by the engine, carrying one
// of the protocol.Err* codes.
type StartError struct {
	Code    string
	Message string
}

func (e *StartError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("start mission: %s", e.Code)
	}
	return fmt.Sprintf("start mission: %s: %s", e.Code, e.Message)
}
