package types

import "errors"

// Store operation errors.
var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidID         = errors.New("invalid record ID")
	ErrUnknownCollection = errors.New("unknown collection")
)
