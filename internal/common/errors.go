// Package common defines sentinel errors and small helpers shared by the
// server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound  = errors.New("not found")
	ErrPersistence = errors.New("persistence error")
	ErrTimeout     = errors.New("storage operation timed out")

	// Service-level errors.
	ErrorInternal         = errors.New("internal error")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrValidation         = errors.New("validation error")

	// Auth gate errors.
	ErrUnauthenticated = errors.New("not authenticated")
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")
)
