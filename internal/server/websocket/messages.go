package websocket

import (
	"encoding/json"
	"time"
)

// MessageType identifies the type of WebSocket message.
type MessageType string

const (
	// Server -> Client
	TypeScreenSnapshot MessageType = "screen.snapshot"
	TypeToastAdded     MessageType = "toast.added"
	TypeToastRemoved   MessageType = "toast.removed"
	TypePong           MessageType = "pong"
	TypeError          MessageType = "error"

	// Client -> Server
	TypePing    MessageType = "ping"
	TypeRefresh MessageType = "refresh"
	TypeSelect  MessageType = "select"
)

// Message is the envelope of every frame.
type Message struct {
	Type      MessageType     `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// NewMessage creates a message stamped with the current time.
func NewMessage(msgType MessageType, payload any) (Message, error) {
	m := Message{Type: msgType, Timestamp: time.Now().UTC()}
	if payload == nil {
		return m, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	m.Payload = raw
	return m, nil
}

// JSON serializes the message.
func (m Message) JSON() ([]byte, error) {
	return json.Marshal(m)
}

// SnapshotPayload carries one screen snapshot.
type SnapshotPayload struct {
	Screen    string    `json:"screen"`
	Seq       uint64    `json:"seq"`
	State     string    `json:"state"`
	UpdatedAt time.Time `json:"updatedAt"`
	Error     string    `json:"error,omitempty"`
	Data      any       `json:"data"`
	Selected  string    `json:"selected,omitempty"`
}

// SelectPayload asks the live map to select a flight. An empty id clears
// the selection.
type SelectPayload struct {
	FlightID string `json:"flightId"`
}

// ErrorPayload reports a rejected client command.
type ErrorPayload struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	OriginalType string `json:"original_type,omitempty"`
}
