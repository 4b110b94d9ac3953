package testutils

import (
	"fmt"
	"time"

	"game-watchlist-backend/internal/database/models"
)

// UserFactory provides methods to create test User data
type UserFactory struct {
	counter int
}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The bcrypt hash below is
// for the password "secret123".
func (f *UserFactory) Create() *models.User {
	f.counter++
	return &models.User{
		Username: fmt.Sprintf("testuser%d", f.counter),
		Email:    fmt.Sprintf("testuser%d@example.com", f.counter),
		Password: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
	}
}

// WithUsername sets a custom username and matching email
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	user.Email = username + "@example.com"
	return user
}

// Admin creates a test user with the admin flag set
func (f *UserFactory) Admin() *models.User {
	user := f.Create()
	user.Admin = true
	return user
}

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct {
	counter int
}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with default values
func (f *CompanyFactory) Create() *models.Company {
	f.counter++
	country := "Estados Unidos"
	founded := time.Date(1991, 1, 1, 0, 0, 0, 0, time.UTC)
	return &models.Company{
		Name:      fmt.Sprintf("Test Studio %d", f.counter),
		Role:      models.CompanyRoleDeveloper,
		Country:   &country,
		Market:    "EUA",
		FoundedAt: &founded,
	}
}

// GameFactory provides methods to create test Game data
type GameFactory struct {
	counter int
}

// NewGameFactory creates a new GameFactory
func NewGameFactory() *GameFactory {
	return &GameFactory{}
}

// Create creates a test Game with default values
func (f *GameFactory) Create() *models.Game {
	f.counter++
	score := 85
	return &models.Game{
		Title:       fmt.Sprintf("Test Game %d", f.counter),
		Description: "A test game.",
		CriticScore: &score,
	}
}

// WithTitle sets a custom title for the game
func (f *GameFactory) WithTitle(title string) *models.Game {
	game := f.Create()
	game.Title = title
	return game
}

// WatchlistFactory provides methods to create test Watchlist data
type WatchlistFactory struct {
	counter int
}

// NewWatchlistFactory creates a new WatchlistFactory
func NewWatchlistFactory() *WatchlistFactory {
	return &WatchlistFactory{}
}

// Create creates a test Watchlist owned by the given user
func (f *WatchlistFactory) Create(userID uint) *models.Watchlist {
	f.counter++
	return &models.Watchlist{
		UserID: userID,
		Name:   fmt.Sprintf("Test Watchlist %d", f.counter),
	}
}

// ReviewFactory provides methods to create test Review data
type ReviewFactory struct{}

// NewReviewFactory creates a new ReviewFactory
func NewReviewFactory() *ReviewFactory {
	return &ReviewFactory{}
}

// Create creates a test Review linking the given user and game
func (f *ReviewFactory) Create(userID, gameID uint) *models.Review {
	comment := "A solid experience."
	return &models.Review{
		UserID:  userID,
		GameID:  gameID,
		Rating:  8.5,
		Comment: &comment,
	}
}
