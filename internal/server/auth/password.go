package auth

import (
	"errors"

	"github.com/dkarklins/fitauth/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is a design constant, not a tunable. Matches the work factor
// the stored hashes were produced with.
const bcryptCost = 10

// HashPassword generates a salted bcrypt hash of password. Hashing the same
// password twice yields different outputs.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword validates the given cleartext password against a stored hash.
// A wrong password returns common.ErrInvalidCredentials; any other error
// means the stored hash is malformed.
func CheckPassword(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return common.ErrInvalidCredentials
		}
		return err
	}
	return nil
}
