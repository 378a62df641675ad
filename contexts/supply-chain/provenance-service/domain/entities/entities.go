package entities

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Status is the closed set of lifecycle states a unit can report.
type Status string

const (
	StatusCreated    Status = "CREATED"
	StatusInTransit  Status = "IN_TRANSIT"
	StatusTested     Status = "TESTED"
	StatusReady      Status = "READY"
	StatusReceived   Status = "RECEIVED"
	StatusTransfused Status = "TRANSFUSED"
	StatusExpired    Status = "EXPIRED"
	StatusDiscarded  Status = "DISCARDED"
)

var knownStatuses = map[Status]struct{}{
	StatusCreated:    {},
	StatusInTransit:  {},
	StatusTested:     {},
	StatusReady:      {},
	StatusReceived:   {},
	StatusTransfused: {},
	StatusExpired:    {},
	StatusDiscarded:  {},
}

func (s Status) Known() bool {
	_, ok := knownStatuses[s]
	return ok
}

// HospitalFinalization reports whether the transition belongs to the hospital
// leg of the chain and is therefore gated on the assigned hospital identity.
func (s Status) HospitalFinalization() bool {
	switch s {
	case StatusReceived, StatusTested, StatusReady, StatusTransfused, StatusExpired, StatusDiscarded:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are expected after s.
// Terminal is a display concept; the ledger accepts appends regardless.
func (s Status) Terminal() bool {
	switch s {
	case StatusTransfused, StatusExpired, StatusDiscarded:
		return true
	}
	return false
}

type UnitAttributes struct {
	Leukoreduced bool `json:"leukoreduced"`
	Irradiated   bool `json:"irradiated"`
	CMVNegative  bool `json:"cmvNegative"`
}

// CreationDetails is the payload shape carried by a CREATED record: the full
// unit description fixed at registration time.
type CreationDetails struct {
	ComponentType      string         `json:"componentType"`
	AdditiveSolution   string         `json:"additiveSolution"`
	StorageTempRange   string         `json:"storageTempRange"`
	DonationType       string         `json:"donationType"`
	BloodType          string         `json:"bloodType"`
	Volume             int            `json:"volume"`
	CollectionDate     time.Time      `json:"collectionDate"`
	ExpiryDate         time.Time      `json:"expiryDate"`
	AssignedCourierID  string         `json:"assignedCourierId"`
	AssignedHospitalID string         `json:"assignedHospitalId"`
	CollectionSiteID   string         `json:"collectionSiteId,omitempty"`
	Attributes         UnitAttributes `json:"attributes"`
}

// UpdateDetails is the payload shape carried by every non-CREATED record.
type UpdateDetails struct {
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// EventRecord is one immutable, decoded status change for a bag. The payload
// union is resolved at decode time: Creation is set iff Status is CREATED.
type EventRecord struct {
	BagID      string
	Status     Status
	ReportedBy string
	Ts         int64
	Creation   *CreationDetails
	Update     UpdateDetails
}

func (e EventRecord) Time() time.Time {
	return time.UnixMilli(e.Ts).UTC()
}

// PayloadJSON re-encodes the resolved payload union.
func (e EventRecord) PayloadJSON() ([]byte, error) {
	if e.Status == StatusCreated {
		return json.Marshal(e.Creation)
	}
	return json.Marshal(e.Update)
}

// Fingerprint identifies a record across refetches of the same ledger window.
// ts is client-stamped, so the reporter is part of the key.
func (e EventRecord) Fingerprint() string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d|%s", e.BagID, e.Status, e.Ts, e.ReportedBy)))
	return hex.EncodeToString(sum[:])
}

// NewRecord validates and resolves one decoded ledger message into an
// EventRecord. Records that fail here are dropped by adapters, never raised.
func NewRecord(bagID string, status string, reportedBy string, ts int64, payload []byte) (EventRecord, error) {
	bagID = strings.TrimSpace(bagID)
	if bagID == "" {
		return EventRecord{}, fmt.Errorf("event record requires a bagId")
	}
	st := Status(status)
	if !st.Known() {
		return EventRecord{}, fmt.Errorf("unknown status %q", status)
	}

	record := EventRecord{
		BagID:      bagID,
		Status:     st,
		ReportedBy: strings.TrimSpace(reportedBy),
		Ts:         ts,
	}
	if st == StatusCreated {
		var creation CreationDetails
		if len(payload) == 0 {
			return EventRecord{}, fmt.Errorf("CREATED record requires a creation payload")
		}
		if err := json.Unmarshal(payload, &creation); err != nil {
			return EventRecord{}, fmt.Errorf("decode creation payload: %w", err)
		}
		record.Creation = &creation
		return record, nil
	}
	if len(payload) > 0 {
		// Contextual fields are best-effort; an unreadable payload does not
		// invalidate the status transition itself.
		_ = json.Unmarshal(payload, &record.Update)
	}
	return record, nil
}

// BagView is the derived lifecycle of one unit. It has no storage of its own
// and is recomputed from the bag's event set on every query.
type BagView struct {
	BagID         string
	Creation      *EventRecord
	CurrentStatus Status
	History       []EventRecord

	// DuplicateCreation marks a data-integrity anomaly: more than one CREATED
	// record observed for the bag. The earliest one wins deterministically.
	DuplicateCreation bool
}
