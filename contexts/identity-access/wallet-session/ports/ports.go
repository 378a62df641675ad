package ports

import (
	"context"
	"time"

	"hemotrace/contexts/identity-access/wallet-session/domain/entities"
)

// AccountDirectory answers whether an account exists on the ledger and what
// its balance is.
type AccountDirectory interface {
	Lookup(ctx context.Context, accountID string) (entities.Account, error)
}

// TokenIssuer mints and verifies session tokens for a connected account.
type TokenIssuer interface {
	Issue(accountID string, now time.Time) (token string, expiresAt time.Time, err error)
	Verify(token string, now time.Time) (accountID string, err error)
}

type Clock interface {
	Now() time.Time
}
