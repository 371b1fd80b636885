// internal/pkg/auth/password.go
package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// VerifyPassword checks a supplied password against the configured
// credential. The credential may be a bcrypt hash (recommended for
// production, see scripts/generate_password.go) or a plain value for
// local development.
func VerifyPassword(supplied, configured string) error {
	if strings.HasPrefix(configured, "$2a$") || strings.HasPrefix(configured, "$2b$") || strings.HasPrefix(configured, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(supplied))
	}

	if subtle.ConstantTimeCompare([]byte(supplied), []byte(configured)) != 1 {
		return fmt.Errorf("invalid credentials")
	}
	return nil
}
