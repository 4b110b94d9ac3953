package repository

import (
	"errors"

	"game-watchlist-backend/internal/database/models"

	"gorm.io/gorm"
)

// PlatformRepository handles database operations for platforms
type PlatformRepository struct {
	db *gorm.DB
}

// Ensure PlatformRepository implements PlatformRepositoryInterface
var _ PlatformRepositoryInterface = (*PlatformRepository)(nil)

// NewPlatformRepository creates a new platform repository
func NewPlatformRepository(db *gorm.DB) *PlatformRepository {
	return &PlatformRepository{db: db}
}

// Create inserts a new platform
func (r *PlatformRepository) Create(platform *models.Platform) error {
	return r.db.Create(platform).Error
}

// GetByName retrieves a platform by exact name
func (r *PlatformRepository) GetByName(name string) (*models.Platform, error) {
	var platform models.Platform
	if err := r.db.First(&platform, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &platform, nil
}
