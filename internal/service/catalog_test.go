package service_test

import (
	"context"
	"testing"

	apperrors "game-watchlist-backend/internal/errors"
	"game-watchlist-backend/internal/igdb"
	"game-watchlist-backend/internal/mocks"
	"game-watchlist-backend/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCatalogService(t *testing.T) (*service.CatalogService, *mocks.MockCatalogClientInterface) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockCatalogClientInterface(ctrl)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	// nil cache is a valid no-op cache
	return service.NewCatalogService(client, nil, log), client
}

func TestCatalogSearchPassesThrough(t *testing.T) {
	svc, client := newCatalogService(t)
	expected := []igdb.GameResult{{ID: 1, Name: "Hades"}}
	client.EXPECT().Search(gomock.Any(), "hades", 10, 0).Return(expected, nil)

	results, err := svc.Search(context.Background(), "hades", 10, 0)

	require.NoError(t, err)
	assert.Equal(t, expected, results)
}

func TestCatalogGetGameNormalizes(t *testing.T) {
	svc, client := newCatalogService(t)
	client.EXPECT().GetByID(gomock.Any(), int64(42)).Return(&igdb.Game{
		ID:    42,
		Name:  "Hollow Knight",
		Cover: &igdb.Image{URL: "//img/t_thumb/c1.jpg"},
	}, nil)

	result, err := svc.GetGame(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "https://img/t_cover_big/c1.jpg", result.CoverURL)
}

func TestCatalogGetGameNotFound(t *testing.T) {
	svc, client := newCatalogService(t)
	client.EXPECT().GetByID(gomock.Any(), int64(999)).Return(nil, nil)

	_, err := svc.GetGame(context.Background(), 999)

	assert.ErrorIs(t, err, apperrors.ErrCatalogGameNotFound)
}

func TestCatalogGetGameUpstreamFailure(t *testing.T) {
	svc, client := newCatalogService(t)
	client.EXPECT().GetByID(gomock.Any(), int64(42)).
		Return(nil, apperrors.NewUpstreamError("get", 502, "bad gateway"))

	_, err := svc.GetGame(context.Background(), 42)

	assert.True(t, apperrors.IsUpstream(err))
}
