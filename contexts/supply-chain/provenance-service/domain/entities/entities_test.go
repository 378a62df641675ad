package entities

import "testing"

func TestNewRecordResolvesPayloadUnion(t *testing.T) {
	creation := []byte(`{"componentType":"RBC","bloodType":"O-","volume":450,"assignedCourierId":"0.0.2001","assignedHospitalId":"0.0.3001"}`)
	record, err := NewRecord("BAG-001", "CREATED", "0.0.1001", 1000, creation)
	if err != nil {
		t.Fatalf("valid CREATED record rejected: %v", err)
	}
	if record.Creation == nil || record.Creation.ComponentType != "RBC" {
		t.Fatalf("creation payload not resolved: %+v", record.Creation)
	}

	record, err = NewRecord("BAG-001", "IN_TRANSIT", "0.0.2001", 2000, []byte(`{"location":"Departed site"}`))
	if err != nil {
		t.Fatalf("valid IN_TRANSIT record rejected: %v", err)
	}
	if record.Creation != nil {
		t.Fatalf("non-CREATED record must not carry creation details")
	}
	if record.Update.Location != "Departed site" {
		t.Fatalf("update payload not resolved: %+v", record.Update)
	}
}

func TestNewRecordValidation(t *testing.T) {
	if _, err := NewRecord("", "CREATED", "0.0.1001", 1000, []byte(`{}`)); err == nil {
		t.Fatalf("missing bagId should be rejected")
	}
	if _, err := NewRecord("BAG-001", "TELEPORTED", "0.0.1001", 1000, nil); err == nil {
		t.Fatalf("unknown status should be rejected")
	}
	if _, err := NewRecord("BAG-001", "CREATED", "0.0.1001", 1000, nil); err == nil {
		t.Fatalf("CREATED without a payload should be rejected")
	}
	if _, err := NewRecord("BAG-001", "CREATED", "0.0.1001", 1000, []byte(`not json`)); err == nil {
		t.Fatalf("CREATED with an unreadable payload should be rejected")
	}
}

func TestNewRecordToleratesUnreadableUpdatePayload(t *testing.T) {
	record, err := NewRecord("BAG-001", "RECEIVED", "0.0.3001", 3000, []byte(`not json`))
	if err != nil {
		t.Fatalf("unreadable update payload should not invalidate the transition: %v", err)
	}
	if record.Update.Location != "" || record.Update.Notes != "" {
		t.Fatalf("unreadable payload should leave update fields empty")
	}
}

func TestFingerprintDistinguishesReporters(t *testing.T) {
	a := EventRecord{BagID: "BAG-001", Status: StatusReceived, ReportedBy: "0.0.3001", Ts: 1000}
	b := a
	b.ReportedBy = "0.0.3002"
	if a.Fingerprint() == b.Fingerprint() {
		t.Fatalf("records from different reporters must not collide")
	}
	if a.Fingerprint() != a.Fingerprint() {
		t.Fatalf("fingerprint must be deterministic")
	}
}
