package helpers

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyCredential is returned when a password or hash argument is empty.
var ErrEmptyCredential = errors.New("password is required")

const bcryptCost = 10

// HashPassword hashes the plain text password using bcrypt with a fixed
// cost factor of 10.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyCredential
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword compares a bcrypt hash with a plain password. Both arguments
// must be non-empty; a mismatch returns false, never an error.
func CheckPassword(plain, hash string) (bool, error) {
	if plain == "" || hash == "" {
		return false, ErrEmptyCredential
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil, nil
}
