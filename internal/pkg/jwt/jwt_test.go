package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	svc := NewJWTService("test-secret-key", "1h")

	tokenString, expiresAt, err := svc.GenerateToken("intern-123", "intern")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	// Fixed 1h expiry
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	decoded, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	id, ok := decoded.Get("id")
	require.True(t, ok)
	assert.Equal(t, "intern-123", id)

	role, ok := decoded.Get("role")
	require.True(t, ok)
	assert.Equal(t, "intern", role)

	tokenType, ok := decoded.Get("type")
	require.True(t, ok)
	assert.Equal(t, "access", tokenType)
}

func TestGenerateTokenInvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret-key", "not-a-duration")

	_, _, err := svc.GenerateToken("intern-123", "intern")
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewJWTService("test-secret-key", "-2m")

	tokenString, _, err := svc.GenerateToken("intern-123", "intern")
	require.NoError(t, err)

	_, err = svc.JWTAuth().Decode(tokenString)
	assert.Error(t, err)
}
