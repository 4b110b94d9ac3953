package service

import (
	"errors"
	"fmt"
	"time"

	"game-watchlist-backend/internal/auth"
	"game-watchlist-backend/internal/database/models"
	apperrors "game-watchlist-backend/internal/errors"
	"game-watchlist-backend/internal/repository"

	"gorm.io/gorm"
)

// CreateUserRequest is the body for user registration
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateUserRequest carries the mutable account fields. Nil fields are left
// unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse is a paginated list of accounts
type UserListResponse struct {
	Users  []UserResponse `json:"users"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// UserService implements account management
type UserService struct {
	users repository.UserRepositoryInterface
}

var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(users repository.UserRepositoryInterface) *UserService {
	return &UserService{users: users}
}

func toUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Admin:     u.Admin,
		CreatedAt: u.CreatedAt,
	}
}

// Create registers a new account with a hashed password
func (s *UserService) Create(req *CreateUserRequest) (*UserResponse, error) {
	existing, err := s.users.GetByUsernameOrEmail(req.Username, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}
	if err := s.users.Create(user); err != nil {
		// The pre-check races with concurrent registrations; the unique
		// indexes are the source of truth.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toUserResponse(user), nil
}

// GetByID returns a single account
func (s *UserService) GetByID(id uint) (*UserResponse, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// GetAll lists accounts with optional username/email substring filters
func (s *UserService) GetAll(username, email string, limit, offset int) (*UserListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	users, total, err := s.users.GetAll(username, email, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	resp := &UserListResponse{
		Users:  make([]UserResponse, 0, len(users)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for i := range users {
		resp.Users = append(resp.Users, *toUserResponse(&users[i]))
	}
	return resp, nil
}

// Update modifies an account. Only the owner or an admin may update it.
func (s *UserService) Update(actorID uint, actorAdmin bool, id uint, req *UpdateUserRequest) (*UserResponse, error) {
	if actorID != id && !actorAdmin {
		return nil, apperrors.ErrNotEnoughPermissions
	}

	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
	}

	if err := s.users.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return toUserResponse(user), nil
}

// Delete removes an account. Only the owner or an admin may delete it.
func (s *UserService) Delete(actorID uint, actorAdmin bool, id uint) error {
	if actorID != id && !actorAdmin {
		return apperrors.ErrNotEnoughPermissions
	}

	user, err := s.users.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}

	if err := s.users.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// Promote grants the admin flag. Promoting an admin is an error.
func (s *UserService) Promote(id uint) (*UserResponse, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	if user.Admin {
		return nil, apperrors.ErrAlreadyAdmin
	}

	user.Admin = true
	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return toUserResponse(user), nil
}

// Demote revokes the admin flag. Demoting a regular user is an error.
func (s *UserService) Demote(id uint) (*UserResponse, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	if !user.Admin {
		return nil, apperrors.ErrNotAdmin
	}

	user.Admin = false
	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return toUserResponse(user), nil
}
