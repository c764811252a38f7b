// Package common defines shared constants and sentinel errors used across
// the service layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal           = errors.New("internal error")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// Auth errors (bad signature or expired token, deliberately conflated).
	ErrInvalidToken = errors.New("invalid token")
)
