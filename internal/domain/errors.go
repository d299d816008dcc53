package domain

import "errors"

// Error kinds. Every service error wraps exactly one of them.
var (
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrIntegrity    = errors.New("integrity violation")
	ErrExternal     = errors.New("external dependency error")
)
