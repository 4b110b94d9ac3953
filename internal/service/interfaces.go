package service

import (
	"context"

	"game-watchlist-backend/internal/database/models"
	"game-watchlist-backend/internal/igdb"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CatalogClientInterface is the external game catalog surface used by the
// services. The real implementation talks to IGDB.
type CatalogClientInterface interface {
	Search(ctx context.Context, query string, limit, offset int) ([]igdb.GameResult, error)
	GetByID(ctx context.Context, id int64) (*igdb.Game, error)
}

// UserServiceInterface defines account management operations
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*UserResponse, error)
	GetByID(id uint) (*UserResponse, error)
	GetAll(username, email string, limit, offset int) (*UserListResponse, error)
	Update(actorID uint, actorAdmin bool, id uint, req *UpdateUserRequest) (*UserResponse, error)
	Delete(actorID uint, actorAdmin bool, id uint) error
	Promote(id uint) (*UserResponse, error)
	Demote(id uint) (*UserResponse, error)
}

// CatalogServiceInterface defines catalog search and detail operations
type CatalogServiceInterface interface {
	Search(ctx context.Context, query string, limit, offset int) ([]igdb.GameResult, error)
	GetGame(ctx context.Context, id int64) (*igdb.GameResult, error)
}

// IngestionServiceInterface reconciles an external catalog record into the
// local database.
type IngestionServiceInterface interface {
	Ingest(ctx context.Context, record *igdb.Game) (*models.Game, error)
}

// WatchlistServiceInterface defines watchlist operations
type WatchlistServiceInterface interface {
	Create(userID uint, req *CreateWatchlistRequest) (*WatchlistResponse, error)
	GetForUser(userID uint) ([]WatchlistResponse, error)
	GetDetails(actorID uint, actorAdmin bool, id uint) (*WatchlistDetailResponse, error)
	AddGame(ctx context.Context, actorID uint, actorAdmin bool, watchlistID uint, catalogGameID int64) (*WatchlistDetailResponse, error)
}

// ReviewServiceInterface defines review operations
type ReviewServiceInterface interface {
	Create(userID uint, req *CreateReviewRequest) (*ReviewResponse, error)
	GetForGame(gameID uint) (*GameReviewsResponse, error)
	GetForUser(userID uint) ([]UserReviewResponse, error)
	Update(actorID uint, id uint, req *UpdateReviewRequest) (*ReviewResponse, error)
	Delete(actorID uint, actorAdmin bool, id uint) error
}
