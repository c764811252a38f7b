// Package refreshtokens declares the repository contract for persisted
// refresh-token records, the server-side half of the dual-token scheme.
package refreshtokens

import (
	"context"
	"time"
)

// Repository defines operations for persisting and revoking refresh tokens.
type Repository interface {
	// Create stores a new refresh token for userID with an expiry of
	// now+validity. Records are never deduplicated; a user may hold several
	// live sessions.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Delete removes the record matching the exact token string and returns
	// the number of rows affected. Zero means the token was never persisted
	// or is already revoked.
	Delete(ctx context.Context, token string) (int64, error)

	// DeleteForUser removes the record only when both token and owning user
	// match, and returns the number of rows affected. Used during account
	// deletion so a token collision cannot revoke another user's session.
	DeleteForUser(ctx context.Context, userID string, token string) (int64, error)
}
