package entities

import "time"

// Account is a ledger account as reported by the public mirror.
type Account struct {
	AccountID string
	Balance   float64
}

// Session is an authenticated wallet connection. The token carries the
// account id; every write endpoint resolves it back to the identity.
type Session struct {
	Token     string
	AccountID string
	Balance   float64
	ExpiresAt time.Time
}
