// Package protocol defines the JSON messages exchanged between a client
// connection and an engine endpoint, and the shape of the raw per-tick
// observation record the engine embeds in OBS messages.
package protocol

import "encoding/json"

const Version = "1.0"

// Message types.
const (
	TypeHello        = "HELLO"
	TypeWelcome      = "WELCOME"
	TypeStartMission = "START_MISSION"
	TypeStartResult  = "START_RESULT"
	TypeStatus       = "STATUS"
	TypeObs          = "OBS"
	TypeCmd          = "CMD"
)

// BaseMessage lets us route unknown JSON messages by type.
type BaseMessage struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version,omitempty"`
}

func DecodeBase(b []byte) (BaseMessage, error) {
	var m BaseMessage
	err := json.Unmarshal(b, &m)
	return m, err
}

// IsSupportedVersion accepts an empty version for messages from older peers
// that did not stamp one.
func IsSupportedVersion(v string) bool {
	return v == "" || v == Version
}
