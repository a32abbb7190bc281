package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/aidnetlk/aidnet/internal/config"
)

func testAuthConfig() appConfig.AuthConfig {
	return appConfig.AuthConfig{
		JWTSecret:         "test-secret",
		TokenTTL:          time.Hour,
		ResetTokenTTL:     time.Hour,
		MinPasswordLength: 6,
	}
}

func TestTokenManager(t *testing.T) {
	t.Run("issue and verify round trip", func(t *testing.T) {
		m := NewTokenManager(testAuthConfig())

		token, err := m.Issue(42, "owner@example.org")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := m.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.AccountID)
		assert.Equal(t, "owner@example.org", claims.Email)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		m := NewTokenManager(testAuthConfig())

		_, err := m.Verify("not.a.token")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		m := NewTokenManager(testAuthConfig())
		other := NewTokenManager(appConfig.AuthConfig{JWTSecret: "different", TokenTTL: time.Hour})

		token, err := other.Issue(1, "a@b.co")
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.TokenTTL = -time.Minute
		m := NewTokenManager(cfg)

		token, err := m.Issue(1, "a@b.co")
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("", "s3cret-pass"))
}
