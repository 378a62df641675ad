package mirror

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "hemotrace/contexts/supply-chain/provenance-service/domain/errors"
	"hemotrace/internal/shared/events"
)

func frame(t *testing.T, msg events.Message) map[string]any {
	t.Helper()
	text, err := msg.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return map[string]any{
		"message":             base64.StdEncoding.EncodeToString(text),
		"consensus_timestamp": "1700000000.000000001",
		"sequence_number":     1,
	}
}

func mirrorServer(t *testing.T, messages []map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("order") != "desc" {
			t.Errorf("expected order=desc, got %q", r.URL.Query().Get("order"))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"messages": messages})
	}))
}

func TestRecentEventsDropsMalformedMessages(t *testing.T) {
	creationPayload := json.RawMessage(`{"componentType":"RBC","bloodType":"O-","volume":450,"assignedCourierId":"0.0.2001","assignedHospitalId":"0.0.3001"}`)
	messages := []map[string]any{
		frame(t, events.Message{BagID: "BAG-001", Status: "RECEIVED", ReportedBy: "0.0.3001", Ts: 3000}),
		{
			"message":             base64.StdEncoding.EncodeToString([]byte("not json at all")),
			"consensus_timestamp": "1700000000.000000002",
			"sequence_number":     2,
		},
		frame(t, events.Message{BagID: "BAG-001", Status: "TELEPORTED", ReportedBy: "0.0.3001", Ts: 2500}),
		frame(t, events.Message{BagID: "BAG-002", Status: "IN_TRANSIT", ReportedBy: "0.0.2001", Ts: 2000}),
		frame(t, events.Message{BagID: "BAG-001", Status: "CREATED", Payload: creationPayload, ReportedBy: "0.0.1001", Ts: 1000}),
	}
	server := mirrorServer(t, messages)
	defer server.Close()

	client := NewClient(server.URL, "0.0.5005", nil)
	records, err := client.RecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent events: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("decoded %d records, want 3 (malformed dropped silently)", len(records))
	}
}

func TestEventsByBagFiltersClientSide(t *testing.T) {
	creationPayload := json.RawMessage(`{"componentType":"RBC","bloodType":"O-","volume":450,"assignedCourierId":"0.0.2001","assignedHospitalId":"0.0.3001"}`)
	messages := []map[string]any{
		frame(t, events.Message{BagID: "BAG-002", Status: "IN_TRANSIT", ReportedBy: "0.0.2001", Ts: 2000}),
		frame(t, events.Message{BagID: "BAG-001", Status: "CREATED", Payload: creationPayload, ReportedBy: "0.0.1001", Ts: 1000}),
	}
	server := mirrorServer(t, messages)
	defer server.Close()

	client := NewClient(server.URL, "0.0.5005", nil)
	records, err := client.EventsByBag(context.Background(), "BAG-001")
	if err != nil {
		t.Fatalf("events by bag: %v", err)
	}
	if len(records) != 1 || records[0].BagID != "BAG-001" {
		t.Fatalf("filter failed: %+v", records)
	}
}

func TestRecentEventsSurfacesTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "0.0.5005", nil)
	if _, err := client.RecentEvents(context.Background(), 10); !errors.Is(err, domainerrors.ErrMirrorUnavailable) {
		t.Fatalf("got %v, want ErrMirrorUnavailable", err)
	}
}
