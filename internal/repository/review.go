package repository

import (
	"errors"

	"game-watchlist-backend/internal/database/models"

	"gorm.io/gorm"
)

// ReviewRepository handles database operations for reviews
type ReviewRepository struct {
	db *gorm.DB
}

// Ensure ReviewRepository implements ReviewRepositoryInterface
var _ ReviewRepositoryInterface = (*ReviewRepository)(nil)

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a new review. The composite unique index on (user, game)
// turns concurrent duplicates into gorm.ErrDuplicatedKey.
func (r *ReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// GetByID retrieves a review by id
func (r *ReviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// GetByUserAndGame retrieves the single review a user wrote for a game
func (r *ReviewRepository) GetByUserAndGame(userID, gameID uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, "user_id = ? AND game_id = ?", userID, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// GetByGame retrieves all reviews for a game with their authors
func (r *ReviewRepository) GetByGame(gameID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("User").
		Where("game_id = ?", gameID).
		Order("id ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetByUser retrieves all reviews authored by the user with their games
func (r *ReviewRepository) GetByUser(userID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("Game").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Update saves all fields of the review
func (r *ReviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

// Delete removes a review permanently
func (r *ReviewRepository) Delete(id uint) error {
	return r.db.Delete(&models.Review{}, id).Error
}
