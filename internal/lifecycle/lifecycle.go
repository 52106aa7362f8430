// Package lifecycle tracks each engine connection from mission start to
// mission end: starting under a retry policy, waiting for every connection
// to begin, and answering whether a connection is still active.
package lifecycle

import (
	"sync"

	"missionloop.ai/internal/engine"
)

type State uint8

const (
	NotStarted State = iota
	Starting
	Running
	Ended
	// Failed is absorbing; it is only reached from Starting.
	Failed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Ended:
		return "ended"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Conn is a connection together with its role in the shared mission and its
// lifecycle state.
type Conn struct {
	engine.Connection
	role int

	mu    sync.Mutex
	state State
}

func Track(c engine.Connection, role int) *Conn {
	return &Conn{Connection: c, role: role}
}

func (c *Conn) Role() int { return c.role }

func (c *Conn) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Conn) transition(to State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Failed || c.state == Ended {
		return
	}
	c.state = to
}

// IsActive peeks at the connection and reports whether it is Running with
// the engine still reporting the mission as running. A running connection
// whose mission has stopped moves to Ended.
func (c *Conn) IsActive() bool {
	st := c.Peek()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Running && !st.MissionRunning {
		c.state = Ended
	}
	return c.state == Running
}
