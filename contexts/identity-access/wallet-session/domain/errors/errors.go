package errors

import "errors"

var (
	ErrAccountRequired      = errors.New("account id is required")
	ErrAccountNotFound      = errors.New("account not found on the ledger")
	ErrDirectoryUnavailable = errors.New("account directory unavailable")
	ErrInvalidSession       = errors.New("session token is invalid or expired")
)
