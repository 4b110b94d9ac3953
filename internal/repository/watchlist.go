package repository

import (
	"errors"

	"game-watchlist-backend/internal/database/models"

	"gorm.io/gorm"
)

// WatchlistRepository handles database operations for watchlists
type WatchlistRepository struct {
	db *gorm.DB
}

// Ensure WatchlistRepository implements WatchlistRepositoryInterface
var _ WatchlistRepositoryInterface = (*WatchlistRepository)(nil)

// NewWatchlistRepository creates a new watchlist repository
func NewWatchlistRepository(db *gorm.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// Create inserts a new watchlist
func (r *WatchlistRepository) Create(watchlist *models.Watchlist) error {
	return r.db.Create(watchlist).Error
}

// GetByID retrieves a watchlist with its game rows (no nested game details)
func (r *WatchlistRepository) GetByID(id uint) (*models.Watchlist, error) {
	var watchlist models.Watchlist
	if err := r.db.Preload("Games").First(&watchlist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &watchlist, nil
}

// GetByUserID retrieves all watchlists owned by the user with their game rows
func (r *WatchlistRepository) GetByUserID(userID uint) ([]models.Watchlist, error) {
	var watchlists []models.Watchlist
	if err := r.db.Preload("Games").Where("user_id = ?", userID).Order("id ASC").Find(&watchlists).Error; err != nil {
		return nil, err
	}
	return watchlists, nil
}

// GetWithGames retrieves a watchlist with fully nested game details
func (r *WatchlistRepository) GetWithGames(id uint) (*models.Watchlist, error) {
	var watchlist models.Watchlist
	err := r.db.
		Preload("Games.Developer").
		Preload("Games.Publisher").
		Preload("Games.Genres").
		Preload("Games.PlatformLinks.Platform").
		Preload("Games.DLCs").
		First(&watchlist, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &watchlist, nil
}

// AddGame creates the watchlist↔game association row
func (r *WatchlistRepository) AddGame(watchlistID, gameID uint) error {
	return r.db.Exec("INSERT INTO watchlist_jogo (watchlist_id, game_id) VALUES (?, ?)", watchlistID, gameID).Error
}
