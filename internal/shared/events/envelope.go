package events

import "time"

// Envelope is the shared event shape relayed to downstream consumers.
// Align fields with the repository canonical event contract.
type Envelope struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	SourceService string    `json:"source_service"`
	OccurredAtUTC time.Time `json:"occurred_at_utc"`
	EntityType    string    `json:"entity_type"`
	EntityID      string    `json:"entity_id"`
	Payload       Message   `json:"payload"`
}

// EventTypeStatusReported is emitted once per newly observed ledger record.
const EventTypeStatusReported = "bag.status_reported"
