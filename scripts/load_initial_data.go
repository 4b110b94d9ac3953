package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"game-watchlist-backend/internal/auth"
	"game-watchlist-backend/internal/config"
	"game-watchlist-backend/internal/database"
	"game-watchlist-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Admin    bool   `yaml:"admin"`
}

type CompanyData struct {
	Name      string `yaml:"name"`
	Role      string `yaml:"role"`
	Country   string `yaml:"country,omitempty"`
	Market    string `yaml:"market"`
	FoundedAt string `yaml:"founded_at,omitempty"`
}

type GameData struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	CriticScore *int           `yaml:"critic_score,omitempty"`
	Developer   string         `yaml:"developer,omitempty"`
	Publisher   string         `yaml:"publisher,omitempty"`
	Genres      []string       `yaml:"genres,omitempty"`
	Platforms   []PlatformData `yaml:"platforms,omitempty"`
	DLCs        []DLCData      `yaml:"dlcs,omitempty"`
}

type PlatformData struct {
	Name        string `yaml:"name"`
	ReleaseDate string `yaml:"release_date,omitempty"`
}

type DLCData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type WatchlistData struct {
	Name     string   `yaml:"name"`
	Username string   `yaml:"username"`
	Games    []string `yaml:"games,omitempty"`
}

type ReviewData struct {
	Username string  `yaml:"username"`
	Game     string  `yaml:"game"`
	Rating   float64 `yaml:"rating"`
	Comment  string  `yaml:"comment,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type CompaniesFile struct {
	Companies []CompanyData `yaml:"companies"`
}

type GamesFile struct {
	Games []GameData `yaml:"games"`
}

type WatchlistsFile struct {
	Watchlists []WatchlistData `yaml:"watchlists"`
}

type ReviewsFile struct {
	Reviews []ReviewData `yaml:"reviews"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress SQL and "record not found" noise during loading
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var usersFile UsersFile
	if err := loadYAMLFile(filepath.Join(dataDir, "users.yaml"), &usersFile); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	var companiesFile CompaniesFile
	if err := loadYAMLFile(filepath.Join(dataDir, "companies.yaml"), &companiesFile); err != nil {
		return fmt.Errorf("failed to load companies: %w", err)
	}

	var gamesFile GamesFile
	if err := loadYAMLFile(filepath.Join(dataDir, "games.yaml"), &gamesFile); err != nil {
		return fmt.Errorf("failed to load games: %w", err)
	}

	var watchlistsFile WatchlistsFile
	if err := loadYAMLFile(filepath.Join(dataDir, "watchlists.yaml"), &watchlistsFile); err != nil {
		return fmt.Errorf("failed to load watchlists: %w", err)
	}

	var reviewsFile ReviewsFile
	if err := loadYAMLFile(filepath.Join(dataDir, "reviews.yaml"), &reviewsFile); err != nil {
		return fmt.Errorf("failed to load reviews: %w", err)
	}

	// Create users first
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range usersFile.Users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Username, err)
		}
		userMap[userData.Username] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(usersFile.Users))

	// Create companies
	companyMap := make(map[string]*models.Company)
	companyCreated := 0
	for _, companyData := range companiesFile.Companies {
		company, created, err := createCompany(db, companyData)
		if err != nil {
			return fmt.Errorf("failed to create company %s: %w", companyData.Name, err)
		}
		companyMap[companyData.Name] = company
		if created {
			companyCreated++
		}
	}
	log.Printf("📋 Companies: %d created, %d total", companyCreated, len(companiesFile.Companies))

	// Create games with their genres, platforms and DLCs
	gameMap := make(map[string]*models.Game)
	gameCreated := 0
	for _, gameData := range gamesFile.Games {
		game, created, err := createGame(db, gameData, companyMap)
		if err != nil {
			return fmt.Errorf("failed to create game %s: %w", gameData.Title, err)
		}
		gameMap[gameData.Title] = game
		if created {
			gameCreated++
		}
	}
	log.Printf("📋 Games: %d created, %d total", gameCreated, len(gamesFile.Games))

	// Create watchlists
	watchlistCreated := 0
	for _, watchlistData := range watchlistsFile.Watchlists {
		created, err := createWatchlist(db, watchlistData, userMap, gameMap)
		if err != nil {
			return fmt.Errorf("failed to create watchlist %s: %w", watchlistData.Name, err)
		}
		if created {
			watchlistCreated++
		}
	}
	log.Printf("📋 Watchlists: %d created, %d total", watchlistCreated, len(watchlistsFile.Watchlists))

	// Create reviews
	reviewCreated := 0
	for _, reviewData := range reviewsFile.Reviews {
		created, err := createReview(db, reviewData, userMap, gameMap)
		if err != nil {
			return fmt.Errorf("failed to create review by %s: %w", reviewData.Username, err)
		}
		if created {
			reviewCreated++
		}
	}
	log.Printf("📋 Reviews: %d created, %d total", reviewCreated, len(reviewsFile.Reviews))

	return nil
}

func loadYAMLFile(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, target)
}

func createUser(db *gorm.DB, data UserData) (*models.User, bool, error) {
	var existing models.User
	err := db.First(&existing, "username = ?", data.Username).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	hashed, err := auth.HashPassword(data.Password)
	if err != nil {
		return nil, false, err
	}
	user := &models.User{
		Username: data.Username,
		Email:    data.Email,
		Password: hashed,
		Admin:    data.Admin,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func createCompany(db *gorm.DB, data CompanyData) (*models.Company, bool, error) {
	var existing models.Company
	err := db.First(&existing, "name = ?", data.Name).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	company := &models.Company{
		Name:   data.Name,
		Role:   models.CompanyRole(data.Role),
		Market: data.Market,
	}
	if data.Country != "" {
		company.Country = &data.Country
	}
	if data.FoundedAt != "" {
		founded, err := time.Parse("2006-01-02", data.FoundedAt)
		if err != nil {
			return nil, false, fmt.Errorf("invalid founded_at %q: %w", data.FoundedAt, err)
		}
		company.FoundedAt = &founded
	}
	if err := db.Create(company).Error; err != nil {
		return nil, false, err
	}
	return company, true, nil
}

func createGame(db *gorm.DB, data GameData, companyMap map[string]*models.Company) (*models.Game, bool, error) {
	var existing models.Game
	err := db.First(&existing, "title = ?", data.Title).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	game := &models.Game{
		Title:       data.Title,
		Description: data.Description,
		CriticScore: data.CriticScore,
	}
	if developer, ok := companyMap[data.Developer]; ok {
		game.DeveloperID = &developer.ID
	}
	if publisher, ok := companyMap[data.Publisher]; ok {
		game.PublisherID = &publisher.ID
	}
	if err := db.Create(game).Error; err != nil {
		return nil, false, err
	}

	for _, genreName := range data.Genres {
		genre, err := findOrCreateGenre(db, genreName)
		if err != nil {
			return nil, false, err
		}
		link := "INSERT INTO jogo_genero (game_id, genre_id) VALUES (?, ?) ON CONFLICT DO NOTHING"
		if err := db.Exec(link, game.ID, genre.ID).Error; err != nil {
			return nil, false, err
		}
	}

	for _, platformData := range data.Platforms {
		platform, err := findOrCreatePlatform(db, platformData.Name)
		if err != nil {
			return nil, false, err
		}
		gamePlatform := &models.GamePlatform{GameID: game.ID, PlatformID: platform.ID}
		if platformData.ReleaseDate != "" {
			released, err := time.Parse("2006-01-02", platformData.ReleaseDate)
			if err != nil {
				return nil, false, fmt.Errorf("invalid release_date %q: %w", platformData.ReleaseDate, err)
			}
			gamePlatform.ReleaseDate = &released
		}
		if err := db.Create(gamePlatform).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, false, err
		}
	}

	for _, dlcData := range data.DLCs {
		dlc := &models.DLC{GameID: game.ID, Name: dlcData.Name, Description: dlcData.Description}
		if err := db.Create(dlc).Error; err != nil {
			return nil, false, err
		}
	}

	return game, true, nil
}

func findOrCreateGenre(db *gorm.DB, name string) (*models.Genre, error) {
	var genre models.Genre
	err := db.First(&genre, "name = ?", name).Error
	if err == nil {
		return &genre, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	genre = models.Genre{Name: name}
	if err := db.Create(&genre).Error; err != nil {
		return nil, err
	}
	return &genre, nil
}

func findOrCreatePlatform(db *gorm.DB, name string) (*models.Platform, error) {
	var platform models.Platform
	err := db.First(&platform, "name = ?", name).Error
	if err == nil {
		return &platform, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	platform = models.Platform{Name: name}
	if err := db.Create(&platform).Error; err != nil {
		return nil, err
	}
	return &platform, nil
}

func createWatchlist(db *gorm.DB, data WatchlistData, userMap map[string]*models.User, gameMap map[string]*models.Game) (bool, error) {
	owner, ok := userMap[data.Username]
	if !ok {
		return false, fmt.Errorf("unknown user %q", data.Username)
	}

	var existing models.Watchlist
	err := db.First(&existing, "user_id = ? AND name = ?", owner.ID, data.Name).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	watchlist := &models.Watchlist{UserID: owner.ID, Name: data.Name}
	if err := db.Create(watchlist).Error; err != nil {
		return false, err
	}

	for _, title := range data.Games {
		game, ok := gameMap[title]
		if !ok {
			return false, fmt.Errorf("unknown game %q", title)
		}
		link := "INSERT INTO watchlist_jogo (watchlist_id, game_id) VALUES (?, ?) ON CONFLICT DO NOTHING"
		if err := db.Exec(link, watchlist.ID, game.ID).Error; err != nil {
			return false, err
		}
	}
	return true, nil
}

func createReview(db *gorm.DB, data ReviewData, userMap map[string]*models.User, gameMap map[string]*models.Game) (bool, error) {
	author, ok := userMap[data.Username]
	if !ok {
		return false, fmt.Errorf("unknown user %q", data.Username)
	}
	game, ok := gameMap[data.Game]
	if !ok {
		return false, fmt.Errorf("unknown game %q", data.Game)
	}

	var existing models.Review
	err := db.First(&existing, "user_id = ? AND game_id = ?", author.ID, game.ID).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	review := &models.Review{UserID: author.ID, GameID: game.ID, Rating: data.Rating}
	if data.Comment != "" {
		review.Comment = &data.Comment
	}
	if err := db.Create(review).Error; err != nil {
		return false, err
	}
	return true, nil
}
