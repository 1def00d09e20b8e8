// Package common defines sentinel errors shared by the client core and the
// portal. Callers should match them with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Gateway errors.
	ErrorUnavailable  = errors.New("remote service unavailable")
	ErrorUnauthorized = errors.New("unauthorized")

	// Session errors.
	ErrMissingCredentials = errors.New("callsign and password are required")
	ErrInvalidCredentials = errors.New("invalid callsign or password")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// Validation errors.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrUnknownFlight       = errors.New("unknown flight")

	// Token inspection.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
