package repository

import (
	"errors"

	"game-watchlist-backend/internal/database/models"

	"gorm.io/gorm"
)

// DLCRepository handles database operations for DLCs
type DLCRepository struct {
	db *gorm.DB
}

// Ensure DLCRepository implements DLCRepositoryInterface
var _ DLCRepositoryInterface = (*DLCRepository)(nil)

// NewDLCRepository creates a new DLC repository
func NewDLCRepository(db *gorm.DB) *DLCRepository {
	return &DLCRepository{db: db}
}

// Create inserts a new DLC row
func (r *DLCRepository) Create(dlc *models.DLC) error {
	return r.db.Create(dlc).Error
}

// GetByGameAndName retrieves a DLC by its owning game and exact name
func (r *DLCRepository) GetByGameAndName(gameID uint, name string) (*models.DLC, error) {
	var dlc models.DLC
	if err := r.db.First(&dlc, "game_id = ? AND name = ?", gameID, name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dlc, nil
}
