// Package common defines shared constants and sentinel errors used across
// the authkit packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrorNotFound = errors.New("not found")

	// Input validation errors.
	ErrInvalidInput     = errors.New("invalid input")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrWeakPassword     = errors.New("weak password")

	// Credential errors.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token lifecycle errors.
	ErrTokenMissing = errors.New("token missing")
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")

	// Access-policy denial.
	ErrUnauthorized = errors.New("unauthorized")

	// Persistence collaborator failed or timed out.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
