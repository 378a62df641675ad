package mirror

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hemotrace/internal/shared/events"
)

func frame(t *testing.T, msg events.Message) map[string]any {
	t.Helper()
	text, err := msg.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return map[string]any{"message": base64.StdEncoding.EncodeToString(text)}
}

func TestRecentEventsProjectsTooltipFields(t *testing.T) {
	creationPayload := json.RawMessage(`{"componentType":"RBC","bloodType":"AB+","volume":450,"expiryDate":"2026-04-12T09:00:00Z"}`)
	messages := []map[string]any{
		frame(t, events.Message{BagID: "BAG-002", Status: "IN_TRANSIT", ReportedBy: "0.0.2001", Ts: 2000}),
		{"message": "%%% not base64"},
		frame(t, events.Message{BagID: "BAG-001", Status: "CREATED", Payload: creationPayload, ReportedBy: "0.0.1001", Ts: 1000}),
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"messages": messages})
	}))
	defer server.Close()

	summaries, err := NewClient(server.URL, "0.0.5005", nil).RecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent events: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("decoded %d summaries, want 2 (undecodable dropped)", len(summaries))
	}

	created := summaries[1]
	if created.BloodType != "AB+" || created.Volume != 450 {
		t.Fatalf("tooltip fields not projected: %+v", created)
	}
	if created.ExpiryDate == nil || created.ExpiryDate.Year() != 2026 {
		t.Fatalf("expiry not projected: %+v", created.ExpiryDate)
	}

	transit := summaries[0]
	if transit.BloodType != "" || transit.ExpiryDate != nil {
		t.Fatalf("non-CREATED summaries must not carry tooltip fields: %+v", transit)
	}
}
