package auth

import (
	"testing"
	"time"

	"game-watchlist-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute, 7*24*time.Hour)
	user := &models.User{ID: 1, Username: "ana", Admin: true}

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "ana", claims.Username)
	assert.True(t, claims.Admin)
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute, 7*24*time.Hour)
	user := &models.User{ID: 1, Username: "ana"}

	refresh, err := svc.GenerateRefreshToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)

	claims, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute, 7*24*time.Hour)
	user := &models.User{ID: 1, Username: "ana"}

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestWrongSecretIsRejected(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute, 7*24*time.Hour)
	other := NewTokenService("other-secret", 30*time.Minute, 7*24*time.Hour)
	user := &models.User{ID: 1, Username: "ana"}

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestPasswordHashAndVerify(t *testing.T) {
	hashed, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hashed)

	assert.NoError(t, VerifyPassword(hashed, "secret123"))
	assert.Error(t, VerifyPassword(hashed, "wrong"))
}
