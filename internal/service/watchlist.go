package service

import (
	"context"
	"fmt"
	"time"

	"game-watchlist-backend/internal/database/models"
	apperrors "game-watchlist-backend/internal/errors"
	"game-watchlist-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// CreateWatchlistRequest is the body for watchlist creation
type CreateWatchlistRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// WatchlistResponse is the summary view of a watchlist
type WatchlistResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name"`
	GameCount int       `json:"game_count"`
	CreatedAt time.Time `json:"created_at"`
}

// WatchlistDetailResponse is a watchlist with its fully expanded games
type WatchlistDetailResponse struct {
	ID        uint           `json:"id"`
	UserID    uint           `json:"user_id"`
	Name      string         `json:"name"`
	Games     []GameResponse `json:"games"`
	CreatedAt time.Time      `json:"created_at"`
}

// CompanyResponse is the developer/publisher view inside a game
type CompanyResponse struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Country   *string    `json:"country"`
	Market    string     `json:"market"`
	FoundedAt *time.Time `json:"founded_at"`
}

// GenreResponse is a genre entry inside a game
type GenreResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// PlatformResponse is a platform entry inside a game, with the release date
// recorded on the association.
type PlatformResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	ReleaseDate *time.Time `json:"release_date"`
}

// DLCResponse is a DLC entry inside a game
type DLCResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// GameResponse is the expanded view of a locally stored game
type GameResponse struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	CriticScore *int               `json:"critic_score"`
	Developer   *CompanyResponse   `json:"developer"`
	Publisher   *CompanyResponse   `json:"publisher"`
	Genres      []GenreResponse    `json:"genres"`
	Platforms   []PlatformResponse `json:"platforms"`
	DLCs        []DLCResponse      `json:"dlcs"`
}

func toCompanyResponse(c *models.Company) *CompanyResponse {
	if c == nil {
		return nil
	}
	return &CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Country:   c.Country,
		Market:    c.Market,
		FoundedAt: c.FoundedAt,
	}
}

func toGameResponse(g *models.Game) GameResponse {
	resp := GameResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		CriticScore: g.CriticScore,
		Developer:   toCompanyResponse(g.Developer),
		Publisher:   toCompanyResponse(g.Publisher),
		Genres:      make([]GenreResponse, 0, len(g.Genres)),
		Platforms:   make([]PlatformResponse, 0, len(g.PlatformLinks)),
		DLCs:        make([]DLCResponse, 0, len(g.DLCs)),
	}
	for _, genre := range g.Genres {
		resp.Genres = append(resp.Genres, GenreResponse{ID: genre.ID, Name: genre.Name})
	}
	for _, link := range g.PlatformLinks {
		resp.Platforms = append(resp.Platforms, PlatformResponse{
			ID:          link.PlatformID,
			Name:        link.Platform.Name,
			ReleaseDate: link.ReleaseDate,
		})
	}
	for _, dlc := range g.DLCs {
		resp.DLCs = append(resp.DLCs, DLCResponse{ID: dlc.ID, Name: dlc.Name, Description: dlc.Description})
	}
	return resp
}

// WatchlistService implements watchlist management, including the add-game
// orchestration across catalog lookup and ingestion.
type WatchlistService struct {
	watchlists repository.WatchlistRepositoryInterface
	games      repository.GameRepositoryInterface
	catalog    CatalogClientInterface
	ingestion  IngestionServiceInterface
	log        *logrus.Logger
}

var _ WatchlistServiceInterface = (*WatchlistService)(nil)

// NewWatchlistService creates a new watchlist service
func NewWatchlistService(
	watchlists repository.WatchlistRepositoryInterface,
	games repository.GameRepositoryInterface,
	catalog CatalogClientInterface,
	ingestion IngestionServiceInterface,
	log *logrus.Logger,
) *WatchlistService {
	return &WatchlistService{
		watchlists: watchlists,
		games:      games,
		catalog:    catalog,
		ingestion:  ingestion,
		log:        log,
	}
}

// Create creates an empty watchlist owned by the user
func (s *WatchlistService) Create(userID uint, req *CreateWatchlistRequest) (*WatchlistResponse, error) {
	watchlist := &models.Watchlist{
		UserID: userID,
		Name:   req.Name,
	}
	if err := s.watchlists.Create(watchlist); err != nil {
		return nil, fmt.Errorf("failed to create watchlist: %w", err)
	}
	return &WatchlistResponse{
		ID:        watchlist.ID,
		UserID:    watchlist.UserID,
		Name:      watchlist.Name,
		CreatedAt: watchlist.CreatedAt,
	}, nil
}

// GetForUser lists the user's watchlists with game counts
func (s *WatchlistService) GetForUser(userID uint) ([]WatchlistResponse, error) {
	watchlists, err := s.watchlists.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlists: %w", err)
	}

	resp := make([]WatchlistResponse, 0, len(watchlists))
	for i := range watchlists {
		resp = append(resp, WatchlistResponse{
			ID:        watchlists[i].ID,
			UserID:    watchlists[i].UserID,
			Name:      watchlists[i].Name,
			GameCount: len(watchlists[i].Games),
			CreatedAt: watchlists[i].CreatedAt,
		})
	}
	return resp, nil
}

// GetDetails returns a watchlist with expanded games. Only the owner or an
// admin may read it.
func (s *WatchlistService) GetDetails(actorID uint, actorAdmin bool, id uint) (*WatchlistDetailResponse, error) {
	watchlist, err := s.watchlists.GetWithGames(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get watchlist: %w", err)
	}
	if watchlist == nil {
		return nil, apperrors.ErrWatchlistNotFound
	}
	if watchlist.UserID != actorID && !actorAdmin {
		return nil, apperrors.ErrNotEnoughPermissions
	}
	return toWatchlistDetail(watchlist), nil
}

func toWatchlistDetail(watchlist *models.Watchlist) *WatchlistDetailResponse {
	resp := &WatchlistDetailResponse{
		ID:        watchlist.ID,
		UserID:    watchlist.UserID,
		Name:      watchlist.Name,
		Games:     make([]GameResponse, 0, len(watchlist.Games)),
		CreatedAt: watchlist.CreatedAt,
	}
	for i := range watchlist.Games {
		resp.Games = append(resp.Games, toGameResponse(&watchlist.Games[i]))
	}
	return resp
}

// AddGame fetches a catalog record, reconciles it into the local database and
// links the resulting game to the watchlist.
func (s *WatchlistService) AddGame(ctx context.Context, actorID uint, actorAdmin bool, watchlistID uint, catalogGameID int64) (*WatchlistDetailResponse, error) {
	watchlist, err := s.watchlists.GetByID(watchlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get watchlist: %w", err)
	}
	if watchlist == nil {
		return nil, apperrors.ErrWatchlistNotFound
	}
	if watchlist.UserID != actorID && !actorAdmin {
		return nil, apperrors.ErrNotEnoughPermissions
	}

	record, err := s.catalog.GetByID(ctx, catalogGameID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperrors.ErrCatalogGameNotFound
	}

	game, err := s.ingestion.Ingest(ctx, record)
	if err != nil {
		return nil, err
	}

	for _, linked := range watchlist.Games {
		if linked.ID == game.ID {
			return nil, apperrors.ErrGameAlreadyInWatchlist
		}
	}

	if err := s.watchlists.AddGame(watchlist.ID, game.ID); err != nil {
		return nil, fmt.Errorf("failed to add game to watchlist: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"watchlist_id": watchlist.ID,
		"game_id":      game.ID,
	}).Info("added game to watchlist")

	updated, err := s.watchlists.GetWithGames(watchlist.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload watchlist: %w", err)
	}
	return toWatchlistDetail(updated), nil
}
