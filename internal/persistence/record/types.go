// Package record stores a session as compressed JSON lines: one header, one
// line per tick, one footer.
package record

import (
	"time"

	"missionloop.ai/internal/geom"
	"missionloop.ai/internal/snapshot"
)

const (
	TypeHeader = "session_begin"
	TypeTick   = "tick"
	TypeFooter = "session_end"
)

type AgentInfo struct {
	Name            string                   `json:"name"`
	Role            int                      `json:"role"`
	ObservableRange snapshot.ObservableRange `json:"observable_range"`
}

type SessionHeader struct {
	Type           string      `json:"type"`
	SessionID      string      `json:"session_id"`
	StartedAt      time.Time   `json:"started_at"`
	Scenario       string      `json:"scenario,omitempty"`
	TickIntervalMs int         `json:"tick_interval_ms"`
	CatalogDigest  string      `json:"catalog_digest"`
	Agents         []AgentInfo `json:"agents"`
}

// AgentTick is what one agent saw and did in one tick.
type AgentTick struct {
	Name         string        `json:"name"`
	Seq          uint64        `json:"seq"`
	Observations int           `json:"observations"`
	DecodeError  string        `json:"decode_error,omitempty"`
	Position     geom.Vector   `json:"position"`
	POV          geom.Rotation `json:"pov"`
	Entities     int           `json:"entities"`
	Commands     []string      `json:"commands,omitempty"`
	EngineErrors []string      `json:"engine_errors,omitempty"`
}

type TickRecord struct {
	Type      string      `json:"type"`
	SessionID string      `json:"session_id"`
	Tick      uint64      `json:"tick"`
	At        time.Time   `json:"at"`
	Agents    []AgentTick `json:"agents"`
}

type SessionFooter struct {
	Type         string    `json:"type"`
	SessionID    string    `json:"session_id"`
	EndedAt      time.Time `json:"ended_at"`
	Ticks        uint64    `json:"ticks"`
	DecodeErrors int       `json:"decode_errors"`
	Error        string    `json:"error,omitempty"`
}
