package service

import (
	"context"
	"fmt"

	"game-watchlist-backend/internal/cache"
	apperrors "game-watchlist-backend/internal/errors"
	"game-watchlist-backend/internal/igdb"

	"github.com/sirupsen/logrus"
)

// CatalogService exposes read-only search and detail lookups against the
// external catalog, with an optional read-through cache in front.
type CatalogService struct {
	client CatalogClientInterface
	cache  *cache.Cache
	log    *logrus.Logger
}

var _ CatalogServiceInterface = (*CatalogService)(nil)

// NewCatalogService creates a new catalog service
func NewCatalogService(client CatalogClientInterface, c *cache.Cache, log *logrus.Logger) *CatalogService {
	return &CatalogService{client: client, cache: c, log: log}
}

// Search returns normalized catalog results for a free-text query
func (s *CatalogService) Search(ctx context.Context, query string, limit, offset int) ([]igdb.GameResult, error) {
	key := fmt.Sprintf("catalog:search:%s:%d:%d", query, limit, offset)

	var cached []igdb.GameResult
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.log.WithError(err).Warn("catalog cache read failed")
	} else if hit {
		return cached, nil
	}

	results, err := s.client.Search(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, results); err != nil {
		s.log.WithError(err).Warn("catalog cache write failed")
	}
	return results, nil
}

// GetGame returns the normalized detail view of one catalog record
func (s *CatalogService) GetGame(ctx context.Context, id int64) (*igdb.GameResult, error) {
	key := fmt.Sprintf("catalog:game:%d", id)

	var cached igdb.GameResult
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.log.WithError(err).Warn("catalog cache read failed")
	} else if hit {
		return &cached, nil
	}

	record, err := s.client.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperrors.ErrCatalogGameNotFound
	}

	result := igdb.Normalize(record)
	if err := s.cache.Set(ctx, key, result); err != nil {
		s.log.WithError(err).Warn("catalog cache write failed")
	}
	return &result, nil
}
