package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	walletsession "hemotrace/contexts/identity-access/wallet-session"
	walletentities "hemotrace/contexts/identity-access/wallet-session/domain/entities"
	mosaicdashboard "hemotrace/contexts/supply-chain/mosaic-dashboard"
	provenanceservice "hemotrace/contexts/supply-chain/provenance-service"
)

func newTestServer() *Server {
	wallet := walletsession.NewInMemoryModule(nil,
		walletentities.Account{AccountID: "0.0.1001", Balance: 10},
		walletentities.Account{AccountID: "0.0.2001", Balance: 10},
		walletentities.Account{AccountID: "0.0.3001", Balance: 10},
		walletentities.Account{AccountID: "0.0.9999", Balance: 10},
	)
	return New(wallet, provenanceservice.NewInMemoryModule(nil), mosaicdashboard.NewInMemoryModule(nil), nil, "")
}

func do(t *testing.T, s *Server, method string, path string, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	s.Handler().ServeHTTP(recorder, req)
	return recorder
}

func connect(t *testing.T, s *Server, accountID string) string {
	t.Helper()
	resp := do(t, s, http.MethodPost, "/v1/wallet/connect", "", map[string]string{"account_id": accountID})
	if resp.Code != http.StatusOK {
		t.Fatalf("connect %s: status %d: %s", accountID, resp.Code, resp.Body.String())
	}
	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode connect response: %v", err)
	}
	return body.Data.Token
}

func TestLifecycleOverHTTP(t *testing.T) {
	server := newTestServer()

	registerBody := map[string]any{
		"bag_id":               "BAG-001",
		"component_type":       "RBC",
		"donation_type":        "VOLUNTARY",
		"blood_type":           "O-",
		"volume":               450,
		"assigned_courier_id":  "0.0.2001",
		"assigned_hospital_id": "0.0.3001",
	}

	if resp := do(t, server, http.MethodPost, "/v1/bags", "", registerBody); resp.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated register: status %d, want 401", resp.Code)
	}

	registrar := connect(t, server, "0.0.1001")
	if resp := do(t, server, http.MethodPost, "/v1/bags", registrar, registerBody); resp.Code != http.StatusOK {
		t.Fatalf("register: status %d: %s", resp.Code, resp.Body.String())
	}

	stranger := connect(t, server, "0.0.9999")
	transitBody := map[string]string{"preset_event": "Departed collection site"}
	if resp := do(t, server, http.MethodPost, "/v1/bags/BAG-001/transit", stranger, transitBody); resp.Code != http.StatusForbidden {
		t.Fatalf("stranger transit: status %d, want 403", resp.Code)
	}

	courier := connect(t, server, "0.0.2001")
	if resp := do(t, server, http.MethodPost, "/v1/bags/BAG-001/transit", courier, transitBody); resp.Code != http.StatusOK {
		t.Fatalf("courier transit: status %d: %s", resp.Code, resp.Body.String())
	}

	hospital := connect(t, server, "0.0.3001")
	finalizeBody := map[string]string{"status": "RECEIVED", "notes": "intake desk 2"}
	if resp := do(t, server, http.MethodPost, "/v1/bags/BAG-001/status", hospital, finalizeBody); resp.Code != http.StatusOK {
		t.Fatalf("hospital receive: status %d: %s", resp.Code, resp.Body.String())
	}

	resp := do(t, server, http.MethodGet, "/v1/bags/BAG-001", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("get bag: status %d: %s", resp.Code, resp.Body.String())
	}
	var bag struct {
		Data struct {
			CurrentStatus string `json:"current_status"`
			History       []struct {
				Status string `json:"status"`
			} `json:"history"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &bag); err != nil {
		t.Fatalf("decode bag: %v", err)
	}
	if bag.Data.CurrentStatus != "RECEIVED" {
		t.Fatalf("current status = %s, want RECEIVED", bag.Data.CurrentStatus)
	}
	if len(bag.Data.History) != 3 {
		t.Fatalf("history length = %d, want 3", len(bag.Data.History))
	}
}

func TestErrorMapping(t *testing.T) {
	server := newTestServer()

	if resp := do(t, server, http.MethodGet, "/v1/bags/BAG-404", "", nil); resp.Code != http.StatusNotFound {
		t.Fatalf("unknown bag: status %d, want 404", resp.Code)
	}
	if resp := do(t, server, http.MethodPost, "/v1/wallet/connect", "", map[string]string{"account_id": "0.0.404"}); resp.Code != http.StatusNotFound {
		t.Fatalf("unknown account: status %d, want 404", resp.Code)
	}
	if resp := do(t, server, http.MethodGet, "/v1/mosaic?policy=newest", "", nil); resp.Code != http.StatusBadRequest {
		t.Fatalf("bad policy: status %d, want 400", resp.Code)
	}
	if resp := do(t, server, http.MethodGet, "/v1/mosaic?rows=abc", "", nil); resp.Code != http.StatusBadRequest {
		t.Fatalf("non-integer rows: status %d, want 400", resp.Code)
	}
	if resp := do(t, server, http.MethodGet, "/v1/activity", "", nil); resp.Code != http.StatusOK {
		t.Fatalf("activity: status %d, want 200", resp.Code)
	}
}

func TestAuthorizationPreviewEndpoint(t *testing.T) {
	server := newTestServer()

	registrar := connect(t, server, "0.0.1001")
	registerBody := map[string]any{
		"bag_id":               "BAG-001",
		"component_type":       "RBC",
		"donation_type":        "VOLUNTARY",
		"blood_type":           "O-",
		"volume":               450,
		"assigned_courier_id":  "0.0.2001",
		"assigned_hospital_id": "0.0.3001",
	}
	if resp := do(t, server, http.MethodPost, "/v1/bags", registrar, registerBody); resp.Code != http.StatusOK {
		t.Fatalf("register: status %d: %s", resp.Code, resp.Body.String())
	}

	if resp := do(t, server, http.MethodGet, "/v1/bags/BAG-001/authorization", "", nil); resp.Code != http.StatusBadRequest {
		t.Fatalf("missing status param: status %d, want 400", resp.Code)
	}

	resp := do(t, server, http.MethodGet, "/v1/bags/BAG-001/authorization?status=IN_TRANSIT&identity=0.0.2001", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("preview: status %d: %s", resp.Code, resp.Body.String())
	}
	var preview struct {
		Data struct {
			Allowed          bool   `json:"allowed"`
			RequiredIdentity string `json:"required_identity"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &preview); err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	if !preview.Data.Allowed {
		t.Fatalf("assigned courier should preview as allowed")
	}

	// The session identity is the default subject when none is passed.
	courier := connect(t, server, "0.0.2001")
	resp = do(t, server, http.MethodGet, "/v1/bags/BAG-001/authorization?status=IN_TRANSIT", courier, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("preview with session: status %d: %s", resp.Code, resp.Body.String())
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &preview); err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	if !preview.Data.Allowed {
		t.Fatalf("session identity should be used when no identity param is given")
	}
}
