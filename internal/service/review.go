package service

import (
	"errors"
	"fmt"
	"time"

	"game-watchlist-backend/internal/database/models"
	apperrors "game-watchlist-backend/internal/errors"
	"game-watchlist-backend/internal/repository"

	"gorm.io/gorm"
)

// CreateReviewRequest is the body for review submission. Rating is a 0-10
// scale with one fractional digit of meaning.
type CreateReviewRequest struct {
	GameID  uint    `json:"game_id" binding:"required"`
	Rating  float64 `json:"rating" binding:"min=0,max=10"`
	Comment *string `json:"comment" binding:"omitempty,max=1000"`
}

// UpdateReviewRequest carries the mutable review fields. Nil fields are left
// unchanged.
type UpdateReviewRequest struct {
	Rating  *float64 `json:"rating" binding:"omitempty,min=0,max=10"`
	Comment *string  `json:"comment" binding:"omitempty,max=1000"`
}

// ReviewResponse is one review as returned to the author
type ReviewResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	GameID    uint      `json:"game_id"`
	Rating    float64   `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// GameReviewEntry is one review inside a game's review list, with the author
// expanded.
type GameReviewEntry struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Rating    float64   `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// GameReviewsResponse is every review of one game plus the mean rating.
// AverageRating is null when the game has no reviews.
type GameReviewsResponse struct {
	GameID        uint              `json:"game_id"`
	AverageRating *float64          `json:"average_rating"`
	Reviews       []GameReviewEntry `json:"reviews"`
}

// UserReviewResponse is one review inside a user's review list, with the game
// expanded.
type UserReviewResponse struct {
	ID        uint      `json:"id"`
	GameID    uint      `json:"game_id"`
	GameTitle string    `json:"game_title"`
	Rating    float64   `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewService implements review management
type ReviewService struct {
	reviews repository.ReviewRepositoryInterface
	games   repository.GameRepositoryInterface
}

var _ ReviewServiceInterface = (*ReviewService)(nil)

// NewReviewService creates a new review service
func NewReviewService(reviews repository.ReviewRepositoryInterface, games repository.GameRepositoryInterface) *ReviewService {
	return &ReviewService{reviews: reviews, games: games}
}

func toReviewResponse(r *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		GameID:    r.GameID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

// Create submits a review. A user may review a given game only once.
func (s *ReviewService) Create(userID uint, req *CreateReviewRequest) (*ReviewResponse, error) {
	game, err := s.games.GetByID(req.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	if game == nil {
		return nil, apperrors.ErrGameNotFound
	}

	existing, err := s.reviews.GetByUserAndGame(userID, req.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrReviewExists
	}

	review := &models.Review{
		UserID:  userID,
		GameID:  req.GameID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := s.reviews.Create(review); err != nil {
		// The pre-check races with concurrent submissions; the composite
		// unique index is the source of truth.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrReviewExists
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return toReviewResponse(review), nil
}

// GetForGame lists every review of a game together with the mean rating
func (s *ReviewService) GetForGame(gameID uint) (*GameReviewsResponse, error) {
	game, err := s.games.GetByID(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	if game == nil {
		return nil, apperrors.ErrGameNotFound
	}

	reviews, err := s.reviews.GetByGame(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	resp := &GameReviewsResponse{
		GameID:  gameID,
		Reviews: make([]GameReviewEntry, 0, len(reviews)),
	}
	var sum float64
	for i := range reviews {
		review := &reviews[i]
		entry := GameReviewEntry{
			ID:        review.ID,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		}
		if review.User != nil {
			entry.Username = review.User.Username
		}
		resp.Reviews = append(resp.Reviews, entry)
		sum += review.Rating
	}
	if len(reviews) > 0 {
		avg := sum / float64(len(reviews))
		resp.AverageRating = &avg
	}
	return resp, nil
}

// GetForUser lists every review written by a user
func (s *ReviewService) GetForUser(userID uint) ([]UserReviewResponse, error) {
	reviews, err := s.reviews.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	resp := make([]UserReviewResponse, 0, len(reviews))
	for i := range reviews {
		review := &reviews[i]
		entry := UserReviewResponse{
			ID:        review.ID,
			GameID:    review.GameID,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		}
		if review.Game != nil {
			entry.GameTitle = review.Game.Title
		}
		resp = append(resp, entry)
	}
	return resp, nil
}

// Update modifies a review. Only the author may update it.
func (s *ReviewService) Update(actorID uint, id uint, req *UpdateReviewRequest) (*ReviewResponse, error) {
	review, err := s.reviews.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if review == nil {
		return nil, apperrors.ErrReviewNotFound
	}
	if review.UserID != actorID {
		return nil, apperrors.ErrNotEnoughPermissions
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = req.Comment
	}
	if err := s.reviews.Update(review); err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return toReviewResponse(review), nil
}

// Delete removes a review. The author or an admin may delete it.
func (s *ReviewService) Delete(actorID uint, actorAdmin bool, id uint) error {
	review, err := s.reviews.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to get review: %w", err)
	}
	if review == nil {
		return apperrors.ErrReviewNotFound
	}
	if review.UserID != actorID && !actorAdmin {
		return apperrors.ErrNotEnoughPermissions
	}

	if err := s.reviews.Delete(id); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}
