package application

import (
	"context"
	"errors"
	"testing"
	"time"

	jwtadapter "hemotrace/contexts/identity-access/wallet-session/adapters/jwt"
	"hemotrace/contexts/identity-access/wallet-session/adapters/memory"
	"hemotrace/contexts/identity-access/wallet-session/domain/entities"
	domainerrors "hemotrace/contexts/identity-access/wallet-session/domain/errors"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func newTestService(now time.Time) Service {
	return Service{
		Directory: memory.NewDirectory(entities.Account{AccountID: "0.0.1001", Balance: 42.5}),
		Issuer:    jwtadapter.NewIssuer("test-secret", time.Hour),
		Clock:     fixedClock{now: now},
	}
}

func TestConnectAndResolve(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	service := newTestService(now)
	ctx := context.Background()

	session, err := service.Connect(ctx, "0.0.1001")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if session.Token == "" {
		t.Fatalf("session token missing")
	}
	if session.Balance != 42.5 {
		t.Fatalf("balance = %v, want 42.5", session.Balance)
	}
	if !session.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("expiry = %s, want now+1h", session.ExpiresAt)
	}

	identity, err := service.Resolve(ctx, session.Token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if identity != "0.0.1001" {
		t.Fatalf("resolved identity = %s", identity)
	}
}

func TestConnectValidation(t *testing.T) {
	service := newTestService(time.Now())
	ctx := context.Background()

	if _, err := service.Connect(ctx, "  "); !errors.Is(err, domainerrors.ErrAccountRequired) {
		t.Fatalf("blank account: got %v, want ErrAccountRequired", err)
	}
	if _, err := service.Connect(ctx, "0.0.9999"); !errors.Is(err, domainerrors.ErrAccountNotFound) {
		t.Fatalf("unknown account: got %v, want ErrAccountNotFound", err)
	}
}

func TestResolveRejectsBadTokens(t *testing.T) {
	service := newTestService(time.Now())
	ctx := context.Background()

	if _, err := service.Resolve(ctx, ""); !errors.Is(err, domainerrors.ErrInvalidSession) {
		t.Fatalf("empty token: got %v, want ErrInvalidSession", err)
	}
	if _, err := service.Resolve(ctx, "not.a.token"); !errors.Is(err, domainerrors.ErrInvalidSession) {
		t.Fatalf("garbage token: got %v, want ErrInvalidSession", err)
	}
}

func TestResolveRejectsExpiredToken(t *testing.T) {
	issued := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	service := newTestService(issued)

	session, err := service.Connect(context.Background(), "0.0.1001")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	later := newTestService(issued.Add(2 * time.Hour))
	later.Issuer = service.Issuer
	if _, err := later.Resolve(context.Background(), session.Token); !errors.Is(err, domainerrors.ErrInvalidSession) {
		t.Fatalf("expired token: got %v, want ErrInvalidSession", err)
	}
}
