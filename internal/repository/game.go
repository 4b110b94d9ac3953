package repository

import (
	"errors"
	"time"

	"game-watchlist-backend/internal/database/models"

	"gorm.io/gorm"
)

// GameRepository handles database operations for games and their
// genre/platform association rows.
type GameRepository struct {
	db *gorm.DB
}

// Ensure GameRepository implements GameRepositoryInterface
var _ GameRepositoryInterface = (*GameRepository)(nil)

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// Create inserts a new game
func (r *GameRepository) Create(game *models.Game) error {
	return r.db.Create(game).Error
}

// GetByID retrieves a game by id
func (r *GameRepository) GetByID(id uint) (*models.Game, error) {
	var game models.Game
	if err := r.db.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

// GetByTitle retrieves a game by exact title, the business key used for
// catalog reconciliation.
func (r *GameRepository) GetByTitle(title string) (*models.Game, error) {
	var game models.Game
	if err := r.db.First(&game, "title = ?", title).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

// GetWithDetails retrieves a game with companies, genres, platforms and DLCs
func (r *GameRepository) GetWithDetails(id uint) (*models.Game, error) {
	var game models.Game
	err := r.db.
		Preload("Developer").
		Preload("Publisher").
		Preload("Genres").
		Preload("PlatformLinks.Platform").
		Preload("DLCs").
		First(&game, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

// HasGenre reports whether the game↔genre association row exists
func (r *GameRepository) HasGenre(gameID, genreID uint) (bool, error) {
	var count int64
	err := r.db.Table("jogo_genero").
		Where("game_id = ? AND genre_id = ?", gameID, genreID).
		Count(&count).Error
	return count > 0, err
}

// LinkGenre creates the game↔genre association row
func (r *GameRepository) LinkGenre(gameID, genreID uint) error {
	return r.db.Exec("INSERT INTO jogo_genero (game_id, genre_id) VALUES (?, ?)", gameID, genreID).Error
}

// HasPlatform reports whether the game↔platform association row exists
func (r *GameRepository) HasPlatform(gameID, platformID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.GamePlatform{}).
		Where("game_id = ? AND platform_id = ?", gameID, platformID).
		Count(&count).Error
	return count > 0, err
}

// LinkPlatform creates the game↔platform association row with its release date
func (r *GameRepository) LinkPlatform(gameID, platformID uint, releaseDate *time.Time) error {
	link := models.GamePlatform{
		GameID:      gameID,
		PlatformID:  platformID,
		ReleaseDate: releaseDate,
	}
	return r.db.Create(&link).Error
}
