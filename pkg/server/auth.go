package server

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the cost factor for bcrypt hashing
// Higher values are more secure but slower (range: 4-31, recommended: 10-12)
const BcryptCost = 12

// HashPassword hashes a plaintext password using bcrypt.
// Useful for producing a hashed shared secret to pass on the command line
// instead of the plaintext one.
func HashPassword(password string) (string, error) {
	// bcrypt has a 72-byte input limit
	if len(password) > 72 {
		return "", bcrypt.ErrPasswordTooLong
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// VerifyPassword compares a plaintext password with a hashed password.
// Returns nil if the password matches.
func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// IsBcryptHash reports whether the configured secret looks like a bcrypt
// digest, in which case PASS arguments are verified against it instead of
// compared directly.
func IsBcryptHash(secret string) bool {
	return strings.HasPrefix(secret, "$2a$") ||
		strings.HasPrefix(secret, "$2b$") ||
		strings.HasPrefix(secret, "$2y$")
}
