package protocol

import "encoding/json"

// HELLO (client -> engine)
type HelloMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	AgentName       string `json:"agent_name"`
}

// WELCOME (engine -> client)
type WelcomeMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	ClientID        string `json:"client_id"`
	TickRateHz      int    `json:"tick_rate_hz"`
}

// START_MISSION (client -> engine). Mission is the opaque descriptor; the
// engine link never inspects it.
type StartMissionMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	ReqID           string `json:"req_id"`
	ExperimentID    string `json:"experiment_id"`
	Role            int    `json:"role"`
	Roles           int    `json:"roles"`
	Mission         string `json:"mission"`
}

// START_RESULT (engine -> client)
type StartResultMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	ReqID           string `json:"req_id"`
	OK              bool   `json:"ok"`
	Code            string `json:"code,omitempty"`
	Message         string `json:"message,omitempty"`
}

// STATUS (engine -> client), pushed whenever mission state changes.
type StatusMsg struct {
	Type            string   `json:"type"`
	ProtocolVersion string   `json:"protocol_version"`
	MissionBegun    bool     `json:"mission_begun"`
	MissionRunning  bool     `json:"mission_running"`
	Errors          []string `json:"errors,omitempty"`
}

// OBS (engine -> client)
type ObsMsg struct {
	Type            string          `json:"type"`
	ProtocolVersion string          `json:"protocol_version"`
	Seq             uint64          `json:"seq"`
	Observation     json.RawMessage `json:"observation"`
}

// CMD (client -> engine). Command is a single-line text token such as
// "turn 0.5" or "hotbar.1 1".
type CmdMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Command         string `json:"command"`
}
