package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "hemotrace/contexts/identity-access/wallet-session/domain/errors"
)

func TestLookupConvertsTinybars(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/accounts/0.0.1001" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"account": "0.0.1001",
			"balance": map[string]any{"balance": 4250000000},
		})
	}))
	defer server.Close()

	account, err := NewDirectory(server.URL).Lookup(context.Background(), "0.0.1001")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if account.AccountID != "0.0.1001" {
		t.Fatalf("account id = %s", account.AccountID)
	}
	if account.Balance != 42.5 {
		t.Fatalf("balance = %v, want 42.5", account.Balance)
	}
}

func TestLookupNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := NewDirectory(server.URL).Lookup(context.Background(), "0.0.9999"); !errors.Is(err, domainerrors.ErrAccountNotFound) {
		t.Fatalf("got %v, want ErrAccountNotFound", err)
	}
}

func TestLookupDirectoryUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	if _, err := NewDirectory(server.URL).Lookup(context.Background(), "0.0.1001"); !errors.Is(err, domainerrors.ErrDirectoryUnavailable) {
		t.Fatalf("got %v, want ErrDirectoryUnavailable", err)
	}
}
