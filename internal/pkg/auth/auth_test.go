// internal/pkg/auth/auth_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kidsstorytime/storefront-backend/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "storefront"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTokenExpiry = time.Hour
	return cfg
}

func TestAdminTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateAdminToken("admin")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.True(t, claims.IsAdmin)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager(testConfig()).GenerateAdminToken("admin")
	require.NoError(t, err)

	other := testConfig()
	other.JWT.Secret = "another-secret"
	_, err = NewJWTManager(other).ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc", ExtractTokenFromHeader("Bearer abc"))
	assert.Equal(t, "", ExtractTokenFromHeader("abc"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("kidsstory2025")
	require.NoError(t, err)

	assert.NoError(t, VerifyPassword("kidsstory2025", hash))
	assert.Error(t, VerifyPassword("wrong", hash))

	// Plain credentials are accepted for local development.
	assert.NoError(t, VerifyPassword("kidsstory2025", "kidsstory2025"))
	assert.Error(t, VerifyPassword("wrong", "kidsstory2025"))
}
