package service

import (
	"context"
	"fmt"
	"time"

	"game-watchlist-backend/internal/database/models"
	"game-watchlist-backend/internal/igdb"
	"game-watchlist-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// IngestionService reconciles raw catalog records into local rows. The whole
// reconciliation of one record runs in a single transaction, so a failure
// partway through leaves no orphaned companies, genres or platforms.
type IngestionService struct {
	uow repository.UnitOfWorkInterface
	log *logrus.Logger
}

var _ IngestionServiceInterface = (*IngestionService)(nil)

// NewIngestionService creates a new ingestion service
func NewIngestionService(uow repository.UnitOfWorkInterface, log *logrus.Logger) *IngestionService {
	return &IngestionService{uow: uow, log: log}
}

// Ingest finds or creates the local game for a catalog record, together with
// its companies, genres, platforms and DLCs. Matching is by exact title: an
// existing game is reused and only its core row is left untouched; the
// association steps still run against the record, so a re-ingest picks up
// genres, platforms and DLCs the catalog has added since.
func (s *IngestionService) Ingest(ctx context.Context, record *igdb.Game) (*models.Game, error) {
	var game *models.Game

	err := s.uow.Do(func(r *repository.Registry) error {
		existing, err := r.Games.GetByTitle(record.Name)
		if err != nil {
			return fmt.Errorf("failed to look up game by title: %w", err)
		}
		if existing != nil {
			game = existing
		} else {
			developer, err := s.resolveCompany(r, record, companyPickDeveloper)
			if err != nil {
				return err
			}
			publisher, err := s.resolveCompany(r, record, companyPickPublisher)
			if err != nil {
				return err
			}

			game = &models.Game{
				Title:       record.Name,
				Description: record.Summary,
				CriticScore: truncateScore(record.AggregatedRating),
			}
			if developer != nil {
				game.DeveloperID = &developer.ID
			}
			if publisher != nil {
				game.PublisherID = &publisher.ID
			}
			if err := r.Games.Create(game); err != nil {
				return fmt.Errorf("failed to create game: %w", err)
			}
		}

		if err := s.linkGenres(r, game.ID, record.Genres); err != nil {
			return err
		}
		if err := s.linkPlatforms(r, game.ID, record); err != nil {
			return err
		}
		if err := s.createDLCs(r, game.ID, record.DLCs); err != nil {
			return err
		}

		if existing == nil {
			s.log.WithFields(logrus.Fields{
				"game_id": game.ID,
				"title":   game.Title,
			}).Info("ingested catalog game")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

type companyPick int

const (
	companyPickDeveloper companyPick = iota
	companyPickPublisher
)

// resolveCompany finds or creates the company for the first involved-company
// entry flagged with the requested role. Later entries with the same flag are
// ignored.
func (s *IngestionService) resolveCompany(r *repository.Registry, record *igdb.Game, pick companyPick) (*models.Company, error) {
	for _, involved := range record.InvolvedCompanies {
		if pick == companyPickDeveloper && !involved.Developer {
			continue
		}
		if pick == companyPickPublisher && !involved.Publisher {
			continue
		}
		if involved.Company.Name == "" {
			continue
		}

		existing, err := r.Companies.GetByName(involved.Company.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to look up company: %w", err)
		}
		if existing != nil {
			return existing, nil
		}

		role := models.CompanyRoleDeveloper
		if pick == companyPickPublisher {
			role = models.CompanyRolePublisher
		}
		country, market := igdb.CountryMarket(involved.Company.Country)
		company := &models.Company{
			Name:    involved.Company.Name,
			Role:    role,
			Country: country,
			Market:  market,
		}
		if involved.Company.StartDate != nil {
			founded := time.Unix(*involved.Company.StartDate, 0).UTC()
			company.FoundedAt = &founded
		}
		if err := r.Companies.Create(company); err != nil {
			return nil, fmt.Errorf("failed to create company: %w", err)
		}
		return company, nil
	}
	return nil, nil
}

func (s *IngestionService) linkGenres(r *repository.Registry, gameID uint, genres []igdb.Named) error {
	for _, named := range genres {
		if named.Name == "" {
			continue
		}
		genre, err := r.Genres.GetByName(named.Name)
		if err != nil {
			return fmt.Errorf("failed to look up genre: %w", err)
		}
		if genre == nil {
			genre = &models.Genre{Name: named.Name}
			if err := r.Genres.Create(genre); err != nil {
				return fmt.Errorf("failed to create genre: %w", err)
			}
		}

		linked, err := r.Games.HasGenre(gameID, genre.ID)
		if err != nil {
			return fmt.Errorf("failed to check genre link: %w", err)
		}
		if !linked {
			if err := r.Games.LinkGenre(gameID, genre.ID); err != nil {
				return fmt.Errorf("failed to link genre: %w", err)
			}
		}
	}
	return nil
}

// linkPlatforms associates every platform of the record with the game. The
// catalog only exposes one first-release date per game, so every platform
// link shares it.
func (s *IngestionService) linkPlatforms(r *repository.Registry, gameID uint, record *igdb.Game) error {
	var releaseDate *time.Time
	if record.FirstReleaseDate > 0 {
		released := time.Unix(record.FirstReleaseDate, 0).UTC()
		releaseDate = &released
	}

	for _, named := range record.Platforms {
		if named.Name == "" {
			continue
		}
		platform, err := r.Platforms.GetByName(named.Name)
		if err != nil {
			return fmt.Errorf("failed to look up platform: %w", err)
		}
		if platform == nil {
			platform = &models.Platform{Name: named.Name}
			if err := r.Platforms.Create(platform); err != nil {
				return fmt.Errorf("failed to create platform: %w", err)
			}
		}

		linked, err := r.Games.HasPlatform(gameID, platform.ID)
		if err != nil {
			return fmt.Errorf("failed to check platform link: %w", err)
		}
		if !linked {
			if err := r.Games.LinkPlatform(gameID, platform.ID, releaseDate); err != nil {
				return fmt.Errorf("failed to link platform: %w", err)
			}
		}
	}
	return nil
}

func (s *IngestionService) createDLCs(r *repository.Registry, gameID uint, dlcs []igdb.DLC) error {
	for _, entry := range dlcs {
		if entry.Name == "" {
			continue
		}
		existing, err := r.DLCs.GetByGameAndName(gameID, entry.Name)
		if err != nil {
			return fmt.Errorf("failed to look up dlc: %w", err)
		}
		if existing != nil {
			continue
		}
		dlc := &models.DLC{
			GameID:      gameID,
			Name:        entry.Name,
			Description: entry.Summary,
		}
		if err := r.DLCs.Create(dlc); err != nil {
			return fmt.Errorf("failed to create dlc: %w", err)
		}
	}
	return nil
}

// truncateScore converts the catalog's aggregated rating to a whole-number
// critic score. A zero or missing rating stores NULL, not zero.
func truncateScore(rating float64) *int {
	if rating <= 0 {
		return nil
	}
	score := int(rating)
	return &score
}
