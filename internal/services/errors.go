package services

import "errors"

// Sentinel errors handlers translate into HTTP statuses.
var (
	ErrBadCreds  = errors.New("invalid email or password")
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")
	ErrInvalid   = errors.New("invalid input")
)
