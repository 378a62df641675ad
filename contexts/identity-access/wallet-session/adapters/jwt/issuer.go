package jwtadapter

import (
	"fmt"
	"time"

	domainerrors "hemotrace/contexts/identity-access/wallet-session/domain/errors"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTTL = 12 * time.Hour

// Issuer mints HS256 session tokens with the account id as subject.
type Issuer struct {
	Secret []byte
	TTL    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) Issuer {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return Issuer{Secret: []byte(secret), TTL: ttl}
}

func (i Issuer) Issue(accountID string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.ttl())
	claims := jwt.RegisteredClaims{
		Subject:   accountID,
		Issuer:    "hemotrace",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return token, expiresAt, nil
}

func (i Issuer) Verify(raw string, now time.Time) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	var claims jwt.RegisteredClaims
	_, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return i.Secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainerrors.ErrInvalidSession, err)
	}
	if claims.Subject == "" {
		return "", domainerrors.ErrInvalidSession
	}
	return claims.Subject, nil
}

func (i Issuer) ttl() time.Duration {
	if i.TTL > 0 {
		return i.TTL
	}
	return defaultTTL
}
