package repository

import (
	"time"

	"game-watchlist-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// Lookup methods return (nil, nil) when no row matches; only storage
// failures produce an error. Find-or-create callers rely on this.

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByUsernameOrEmail(username, email string) (*models.User, error)
	GetAll(username, email string, limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uint) error
}

// GameRepositoryInterface defines the interface for game repository operations,
// including the game↔genre and game↔platform association rows.
type GameRepositoryInterface interface {
	Create(game *models.Game) error
	GetByID(id uint) (*models.Game, error)
	GetByTitle(title string) (*models.Game, error)
	GetWithDetails(id uint) (*models.Game, error)
	HasGenre(gameID, genreID uint) (bool, error)
	LinkGenre(gameID, genreID uint) error
	HasPlatform(gameID, platformID uint) (bool, error)
	LinkPlatform(gameID, platformID uint, releaseDate *time.Time) error
}

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	GetByName(name string) (*models.Company, error)
}

// GenreRepositoryInterface defines the interface for genre repository operations
type GenreRepositoryInterface interface {
	Create(genre *models.Genre) error
	GetByName(name string) (*models.Genre, error)
}

// PlatformRepositoryInterface defines the interface for platform repository operations
type PlatformRepositoryInterface interface {
	Create(platform *models.Platform) error
	GetByName(name string) (*models.Platform, error)
}

// DLCRepositoryInterface defines the interface for DLC repository operations
type DLCRepositoryInterface interface {
	Create(dlc *models.DLC) error
	GetByGameAndName(gameID uint, name string) (*models.DLC, error)
}

// WatchlistRepositoryInterface defines the interface for watchlist repository operations
type WatchlistRepositoryInterface interface {
	Create(watchlist *models.Watchlist) error
	GetByID(id uint) (*models.Watchlist, error)
	GetByUserID(userID uint) ([]models.Watchlist, error)
	GetWithGames(id uint) (*models.Watchlist, error)
	AddGame(watchlistID, gameID uint) error
}

// ReviewRepositoryInterface defines the interface for review repository operations
type ReviewRepositoryInterface interface {
	Create(review *models.Review) error
	GetByID(id uint) (*models.Review, error)
	GetByUserAndGame(userID, gameID uint) (*models.Review, error)
	GetByGame(gameID uint) ([]models.Review, error)
	GetByUser(userID uint) ([]models.Review, error)
	Update(review *models.Review) error
	Delete(id uint) error
}

// Registry bundles the repositories that take part in one ingestion
// transaction. Inside UnitOfWork.Do every repository is bound to the same
// underlying transaction.
type Registry struct {
	Games     GameRepositoryInterface
	Companies CompanyRepositoryInterface
	Genres    GenreRepositoryInterface
	Platforms PlatformRepositoryInterface
	DLCs      DLCRepositoryInterface
}

// UnitOfWorkInterface runs a function atomically: any error rolls back every
// row written inside fn.
type UnitOfWorkInterface interface {
	Do(fn func(r *Registry) error) error
}
