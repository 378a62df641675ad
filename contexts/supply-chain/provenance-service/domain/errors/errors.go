package errors

import "errors"

var (
	ErrBagNotFound       = errors.New("no registration event exists for this bag")
	ErrNotConnected      = errors.New("acting identity is required")
	ErrNotAuthorized     = errors.New("identity is not authorized for this transition")
	ErrInvalidInput      = errors.New("bag command input is invalid")
	ErrDuplicateBag      = errors.New("a registration event already exists for this bag")
	ErrMirrorUnavailable = errors.New("ledger read endpoint unavailable")
	ErrLedgerRejected    = errors.New("ledger did not confirm the append")
)
