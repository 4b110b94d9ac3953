package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in this watchlist"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// UpstreamError represents a failure of the external game catalog. Auth
// failures surface as service-unavailable, query failures as bad-gateway;
// neither is retried.
type UpstreamError struct {
	Op      string // "authenticate", "search" or "get"
	Status  int    // upstream HTTP status, 0 when the call never completed
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("catalog %s failed with status %d: %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("catalog %s failed: %s", e.Op, e.Message)
}

// Is enables errors.Is() comparison for UpstreamError by operation
func (e *UpstreamError) Is(target error) bool {
	t, ok := target.(*UpstreamError)
	if !ok {
		return false
	}
	return t.Op == "" || e.Op == t.Op
}

// Entity Not Found Errors
var (
	ErrUserNotFound        = &NotFoundError{Entity: "user"}
	ErrGameNotFound        = &NotFoundError{Entity: "game"}
	ErrWatchlistNotFound   = &NotFoundError{Entity: "watchlist"}
	ErrReviewNotFound      = &NotFoundError{Entity: "review"}
	ErrCatalogGameNotFound = &NotFoundError{Entity: "catalog game"}
)

// Already Exists Errors
var (
	ErrUserExists             = &AlreadyExistsError{Entity: "user", Context: "with this username or email"}
	ErrReviewExists           = &AlreadyExistsError{Entity: "review", Context: "for this user and game"}
	ErrGameAlreadyInWatchlist = &AlreadyExistsError{Entity: "game", Context: "in this watchlist"}
)

// Upstream Errors
var (
	ErrCatalogAuthFailed  = &UpstreamError{Op: "authenticate"}
	ErrCatalogUnavailable = &UpstreamError{}
)

// Business Logic Errors
var (
	ErrAlreadyAdmin         = errors.New("user is already an admin")
	ErrNotAdmin             = errors.New("user is not an admin")
	ErrInvalidCredentials   = &AuthenticationError{Message: "incorrect username or password"}
	ErrInvalidRefreshToken  = &AuthenticationError{Message: "invalid refresh token"}
	ErrNotEnoughPermissions = &AuthorizationError{Message: "not enough permissions"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewUpstreamError creates a new UpstreamError for a catalog operation
func NewUpstreamError(op string, status int, message string) error {
	return &UpstreamError{Op: op, Status: status, Message: message}
}
