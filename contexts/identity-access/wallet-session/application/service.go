package application

import (
	"context"
	"log/slog"
	"strings"

	"hemotrace/contexts/identity-access/wallet-session/domain/entities"
	domainerrors "hemotrace/contexts/identity-access/wallet-session/domain/errors"
	"hemotrace/contexts/identity-access/wallet-session/ports"
)

type Service struct {
	Directory ports.AccountDirectory
	Issuer    ports.TokenIssuer
	Clock     ports.Clock
	Logger    *slog.Logger
}

// Connect verifies the account against the ledger directory and mints a
// session token bound to it. There is no password: possession of a funded
// account id is the identity model here, matching the wallet flow.
func (s Service) Connect(ctx context.Context, accountID string) (entities.Session, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return entities.Session{}, domainerrors.ErrAccountRequired
	}

	account, err := s.Directory.Lookup(ctx, accountID)
	if err != nil {
		return entities.Session{}, err
	}

	now := s.Clock.Now()
	token, expiresAt, err := s.Issuer.Issue(account.AccountID, now)
	if err != nil {
		return entities.Session{}, err
	}

	s.logger().Info("wallet connected",
		"event", "wallet_connected",
		"module", "identity-access/wallet-session",
		"layer", "application",
		"account_id", account.AccountID,
	)

	return entities.Session{
		Token:     token,
		AccountID: account.AccountID,
		Balance:   account.Balance,
		ExpiresAt: expiresAt,
	}, nil
}

// Resolve maps a bearer token back to the account identity it was issued to.
func (s Service) Resolve(_ context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", domainerrors.ErrInvalidSession
	}
	return s.Issuer.Verify(token, s.Clock.Now())
}

func (s Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
