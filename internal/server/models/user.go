// Package models defines server-side data models persisted in the database.
package models

import (
	"database/sql"
	"time"
)

// User is an account row. PasswordHash is a bcrypt hash and must never leave
// the service layer; Profile is the outward projection.
//
// All profile columns except the identifier are nullable: a profile update
// overwrites the full row, and omitted fields are stored as NULL.
type User struct {
	ID           string
	Image        sql.NullString
	FullName     sql.NullString
	Email        sql.NullString
	PasswordHash string
	Contact      sql.NullString
	Gender       sql.NullString
	CreatedAt    time.Time
}

// Profile is the reduced user view returned to clients. It deliberately
// excludes the password hash.
type Profile struct {
	UserID   string  `json:"user_id"`
	Image    *string `json:"image"`
	FullName *string `json:"fullname"`
	Email    *string `json:"email"`
	Contact  *string `json:"contact"`
	Gender   *string `json:"gender"`
}

// ProfileUpdate carries the five overwritable profile columns. Nil fields are
// written as NULL, not skipped.
type ProfileUpdate struct {
	Image    *string
	FullName *string
	Email    *string
	Contact  *string
	Gender   *string
}

// Empty reports whether no field is supplied at all.
func (p ProfileUpdate) Empty() bool {
	return p.Image == nil && p.FullName == nil && p.Email == nil && p.Contact == nil && p.Gender == nil
}
