package errors

import "errors"

var (
	ErrUnknownPolicy     = errors.New("unknown deduplication policy")
	ErrInvalidGrid       = errors.New("grid dimensions are invalid")
	ErrSourceUnavailable = errors.New("event source unavailable")
)
