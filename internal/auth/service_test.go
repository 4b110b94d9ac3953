package auth_test

import (
	"testing"
	"time"

	"game-watchlist-backend/internal/auth"
	"game-watchlist-backend/internal/database/models"
	apperrors "game-watchlist-backend/internal/errors"
	"game-watchlist-backend/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthService(t *testing.T) (*auth.AuthService, *auth.TokenService, *mocks.MockUserRepositoryInterface) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)
	tokens := auth.NewTokenService("test-secret", 30*time.Minute, 7*24*time.Hour)
	return auth.NewAuthService(users, tokens), tokens, users
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, tokens, users := newAuthService(t)

	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	users.EXPECT().GetByUsername("ana").Return(&models.User{ID: 1, Username: "ana", Password: hashed}, nil)

	pair, err := svc.Login("ana", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "bearer", pair.TokenType)

	claims, err := tokens.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.Username)

	_, err = tokens.ValidateRefreshToken(pair.RefreshToken)
	assert.NoError(t, err)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _, users := newAuthService(t)
	users.EXPECT().GetByUsername("ghost").Return(nil, nil)

	_, err := svc.Login("ghost", "whatever")

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, users := newAuthService(t)

	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	users.EXPECT().GetByUsername("ana").Return(&models.User{ID: 1, Username: "ana", Password: hashed}, nil)

	_, err = svc.Login("ana", "wrong")

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	svc, tokens, users := newAuthService(t)

	refresh, err := tokens.GenerateRefreshToken(&models.User{ID: 1, Username: "ana"})
	require.NoError(t, err)
	users.EXPECT().GetByID(uint(1)).Return(&models.User{ID: 1, Username: "ana", Admin: true}, nil)

	token, err := svc.Refresh(refresh)

	require.NoError(t, err)
	claims, err := tokens.ValidateAccessToken(token.AccessToken)
	require.NoError(t, err)
	// The admin flag comes from the current database row, not the old token.
	assert.True(t, claims.Admin)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, tokens, _ := newAuthService(t)

	access, err := tokens.GenerateAccessToken(&models.User{ID: 1, Username: "ana"})
	require.NoError(t, err)

	_, err = svc.Refresh(access)

	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

func TestRefreshRejectsDeletedUser(t *testing.T) {
	svc, tokens, users := newAuthService(t)

	refresh, err := tokens.GenerateRefreshToken(&models.User{ID: 1, Username: "ana"})
	require.NoError(t, err)
	users.EXPECT().GetByID(uint(1)).Return(nil, nil)

	_, err = svc.Refresh(refresh)

	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}
