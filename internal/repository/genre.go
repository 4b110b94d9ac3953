package repository

import (
	"errors"

	"game-watchlist-backend/internal/database/models"

	"gorm.io/gorm"
)

// GenreRepository handles database operations for genres
type GenreRepository struct {
	db *gorm.DB
}

// Ensure GenreRepository implements GenreRepositoryInterface
var _ GenreRepositoryInterface = (*GenreRepository)(nil)

// NewGenreRepository creates a new genre repository
func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// Create inserts a new genre
func (r *GenreRepository) Create(genre *models.Genre) error {
	return r.db.Create(genre).Error
}

// GetByName retrieves a genre by exact name
func (r *GenreRepository) GetByName(name string) (*models.Genre, error) {
	var genre models.Genre
	if err := r.db.First(&genre, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &genre, nil
}
