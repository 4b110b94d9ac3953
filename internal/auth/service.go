package auth

import (
	"fmt"

	apperrors "game-watchlist-backend/internal/errors"
	"game-watchlist-backend/internal/repository"
)

// AuthService authenticates users and issues token pairs.
type AuthService struct {
	users  repository.UserRepositoryInterface
	tokens *TokenService
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepositoryInterface, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// TokenPair is the login response body.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// AccessToken is the refresh response body.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login verifies credentials and returns an access/refresh token pair
func (s *AuthService) Login(username, password string) (*TokenPair, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := VerifyPassword(user.Password, password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"}, nil
}

// Refresh exchanges a valid refresh token for a new access token
func (s *AuthService) Refresh(refreshToken string) (*AccessToken, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	// Re-read the user so a revoked account or changed admin flag takes
	// effect at refresh time.
	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	access, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	return &AccessToken{AccessToken: access, TokenType: "bearer"}, nil
}
