package lifecycle

import (
	"fmt"
	"strings"
	"time"
)

// StartupError is a start failure that will not be retried further: either
// a fatal class or a capped class that ran out of attempts.
type StartupError struct {
	Agent    string
	Class    Class
	Attempts int
	Err      error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("start %s: %s after %d attempt(s): %v", e.Agent, e.Class, e.Attempts, e.Err)
}

func (e *StartupError) Unwrap() error { return e.Err }

// ProtocolError reports engine errors surfaced while waiting for missions to
// begin.
type ProtocolError struct {
	Agent    string
	Messages []string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("engine %s reported errors: %s", e.Agent, strings.Join(e.Messages, "; "))
}

// BarrierTimeoutError reports connections that did not reach a barrier in
// time.
type BarrierTimeoutError struct {
	Phase   string
	Waiting []string
	Timeout time.Duration
}

func (e *BarrierTimeoutError) Error() string {
	return fmt.Sprintf("%s: timed out after %s waiting for %s", e.Phase, e.Timeout, strings.Join(e.Waiting, ", "))
}
