package model

import "time"

// WebSocket event types
const (
	WSEventConnection = "connection"
	WSEventMessage    = "message"
)

// WSInbound is one frame received from a duplex client
type WSInbound struct {
	Message string `json:"message"`
	Model   string `json:"model,omitempty"`
}

// WSEvent is one frame sent to a duplex client. Type is either
// WSEventConnection (the handshake acknowledgement) or WSEventMessage
// (a generated reply).
type WSEvent struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	ClientID  string    `json:"client_id,omitempty"`
	Model     string    `json:"model,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
