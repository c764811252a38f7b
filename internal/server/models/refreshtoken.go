package models

import "time"

// RefreshToken is a persisted refresh-token record. A user may hold several
// live records at once; revocation deletes the row.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
