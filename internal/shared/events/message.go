package events

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Message is the canonical on-ledger wire shape for one bag status event.
// Field names match the JSON appended to the topic; keep them stable, the
// ledger is append-only and old records never get rewritten.
type Message struct {
	BagID      string          `json:"bagId"`
	Status     string          `json:"status"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	ReportedBy string          `json:"reportedBy"`
	Ts         int64           `json:"ts"`
}

var ErrMalformedMessage = errors.New("malformed ledger message")

// Time converts the client-stamped epoch-millisecond timestamp.
func (m Message) Time() time.Time {
	return time.UnixMilli(m.Ts).UTC()
}

// Encode produces the UTF-8 JSON text appended to the ledger, without
// transport framing.
func (m Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// DecodeJSON parses an unframed ledger payload. A message without a bagId is
// structurally invalid and callers are expected to drop it, not fail a batch.
func DecodeJSON(raw []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return Message{}, ErrMalformedMessage
	}
	if strings.TrimSpace(msg.BagID) == "" {
		return Message{}, ErrMalformedMessage
	}
	return msg, nil
}

// DecodeTransport reverses the mirror transport framing (base64 over the
// read API) and then parses the JSON text.
func DecodeTransport(encoded string) (Message, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Message{}, ErrMalformedMessage
	}
	return DecodeJSON(raw)
}
