package entities

import "time"

// EventSummary is the display projection of one ledger record: enough for a
// tile (bag id, status, tooltip fields), nothing else.
type EventSummary struct {
	BagID      string
	Status     string
	ReportedBy string
	Ts         int64

	// Tooltip fields, present only when the representative record is the
	// bag's CREATED event.
	BloodType  string
	Volume     int
	ExpiryDate *time.Time
}

func (e EventSummary) Time() time.Time {
	return time.UnixMilli(e.Ts).UTC()
}
