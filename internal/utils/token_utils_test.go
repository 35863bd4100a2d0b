package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestGenerateAndParseJWT(t *testing.T) {
	token, expiresAt, err := GenerateJWT("user-123", testSecret, 24*time.Hour, "fin-api")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := ParseAndValidateJWT(token, testSecret, "fin-api")
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "fin-api", claims.Issuer)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	valid, _, err := GenerateJWT("user-123", testSecret, time.Hour, "fin-api")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := ParseAndValidateJWT(valid, "another-secret", "fin-api")
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := ParseAndValidateJWT(valid, testSecret, "someone-else")
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("expired", func(t *testing.T) {
		expired, _, err := GenerateJWT("user-123", testSecret, -time.Minute, "fin-api")
		require.NoError(t, err)
		_, err = ParseAndValidateJWT(expired, testSecret, "fin-api")
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseAndValidateJWT("not.a.token", testSecret, "fin-api")
		assert.Error(t, err)
	})

	t.Run("empty subject", func(t *testing.T) {
		noSubject, _, err := GenerateJWT("", testSecret, time.Hour, "fin-api")
		require.NoError(t, err)
		_, err = ParseAndValidateJWT(noSubject, testSecret, "fin-api")
		assert.Error(t, err)
	})
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", hash)
	assert.True(t, CheckPasswordHash("123456", hash))
	assert.False(t, CheckPasswordHash("1234567", hash))
}
