// Package users declares the repository contract for account rows in
// persistent storage.
package users

import (
	"context"

	"github.com/dkarklins/fitauth/internal/server/models"
)

// Repository defines operations over the users table.
type Repository interface {
	// Create inserts a new account row. The caller supplies the id and the
	// already-hashed password.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail looks up a user by email for credential verification.
	// Implementations return a not-found error when the email is absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetProfile returns the reduced projection (no password hash) for userID.
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)

	// UpdateProfile overwrites all five profile columns for userID. Nil
	// fields are written as NULL, not left unchanged. Returns the number of
	// rows affected.
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (int64, error)

	// Delete removes the account row and returns the number of rows affected.
	Delete(ctx context.Context, userID string) (int64, error)
}
