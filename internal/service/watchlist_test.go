package service_test

import (
	"context"
	"errors"
	"testing"

	"game-watchlist-backend/internal/database/models"
	apperrors "game-watchlist-backend/internal/errors"
	"game-watchlist-backend/internal/igdb"
	"game-watchlist-backend/internal/mocks"
	"game-watchlist-backend/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// WatchlistServiceTestSuite defines the test suite for WatchlistService
type WatchlistServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockWatchlists *mocks.MockWatchlistRepositoryInterface
	mockGames      *mocks.MockGameRepositoryInterface
	mockCatalog    *mocks.MockCatalogClientInterface
	mockIngestion  *mocks.MockIngestionServiceInterface
	svc            *service.WatchlistService
}

// SetupTest sets up the test suite
func (suite *WatchlistServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockWatchlists = mocks.NewMockWatchlistRepositoryInterface(suite.ctrl)
	suite.mockGames = mocks.NewMockGameRepositoryInterface(suite.ctrl)
	suite.mockCatalog = mocks.NewMockCatalogClientInterface(suite.ctrl)
	suite.mockIngestion = mocks.NewMockIngestionServiceInterface(suite.ctrl)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	suite.svc = service.NewWatchlistService(suite.mockWatchlists, suite.mockGames, suite.mockCatalog, suite.mockIngestion, log)
}

// TearDownTest cleans up after each test
func (suite *WatchlistServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WatchlistServiceTestSuite) TestCreateWatchlist() {
	suite.mockWatchlists.EXPECT().Create(gomock.Any()).DoAndReturn(func(w *models.Watchlist) error {
		suite.Equal(uint(1), w.UserID)
		suite.Equal("Backlog", w.Name)
		w.ID = 10
		return nil
	})

	resp, err := suite.svc.Create(1, &service.CreateWatchlistRequest{Name: "Backlog"})

	suite.NoError(err)
	suite.Equal(uint(10), resp.ID)
	suite.Equal(uint(1), resp.UserID)
}

func (suite *WatchlistServiceTestSuite) TestGetDetailsNotFound() {
	suite.mockWatchlists.EXPECT().GetWithGames(uint(99)).Return(nil, nil)

	_, err := suite.svc.GetDetails(1, false, 99)

	suite.ErrorIs(err, apperrors.ErrWatchlistNotFound)
}

func (suite *WatchlistServiceTestSuite) TestGetDetailsForbiddenForOtherUser() {
	suite.mockWatchlists.EXPECT().GetWithGames(uint(10)).Return(&models.Watchlist{ID: 10, UserID: 2}, nil)

	_, err := suite.svc.GetDetails(1, false, 10)

	suite.True(apperrors.IsAuthorization(err))
}

func (suite *WatchlistServiceTestSuite) TestGetDetailsAllowedForAdmin() {
	suite.mockWatchlists.EXPECT().GetWithGames(uint(10)).Return(&models.Watchlist{ID: 10, UserID: 2, Name: "Backlog"}, nil)

	resp, err := suite.svc.GetDetails(1, true, 10)

	suite.NoError(err)
	suite.Equal(uint(10), resp.ID)
}

func (suite *WatchlistServiceTestSuite) TestAddGameWatchlistNotFound() {
	suite.mockWatchlists.EXPECT().GetByID(uint(99)).Return(nil, nil)

	_, err := suite.svc.AddGame(context.Background(), 1, false, 99, 1905)

	suite.ErrorIs(err, apperrors.ErrWatchlistNotFound)
}

func (suite *WatchlistServiceTestSuite) TestAddGameForbiddenForOtherUser() {
	suite.mockWatchlists.EXPECT().GetByID(uint(10)).Return(&models.Watchlist{ID: 10, UserID: 2}, nil)

	_, err := suite.svc.AddGame(context.Background(), 1, false, 10, 1905)

	suite.True(apperrors.IsAuthorization(err))
}

func (suite *WatchlistServiceTestSuite) TestAddGameCatalogRecordMissing() {
	suite.mockWatchlists.EXPECT().GetByID(uint(10)).Return(&models.Watchlist{ID: 10, UserID: 1}, nil)
	suite.mockCatalog.EXPECT().GetByID(gomock.Any(), int64(424242)).Return(nil, nil)

	_, err := suite.svc.AddGame(context.Background(), 1, false, 10, 424242)

	suite.ErrorIs(err, apperrors.ErrCatalogGameNotFound)
}

func (suite *WatchlistServiceTestSuite) TestAddGameCatalogFailurePropagates() {
	suite.mockWatchlists.EXPECT().GetByID(uint(10)).Return(&models.Watchlist{ID: 10, UserID: 1}, nil)
	suite.mockCatalog.EXPECT().GetByID(gomock.Any(), int64(1905)).
		Return(nil, apperrors.NewUpstreamError("get", 500, "boom"))

	_, err := suite.svc.AddGame(context.Background(), 1, false, 10, 1905)

	suite.True(apperrors.IsUpstream(err))
}

func (suite *WatchlistServiceTestSuite) TestAddGameAlreadyLinked() {
	watchlist := &models.Watchlist{
		ID:     10,
		UserID: 1,
		Games:  []models.Game{{ID: 7, Title: "Fortnite"}},
	}
	record := &igdb.Game{ID: 1905, Name: "Fortnite"}

	suite.mockWatchlists.EXPECT().GetByID(uint(10)).Return(watchlist, nil)
	suite.mockCatalog.EXPECT().GetByID(gomock.Any(), int64(1905)).Return(record, nil)
	suite.mockIngestion.EXPECT().Ingest(gomock.Any(), record).Return(&models.Game{ID: 7, Title: "Fortnite"}, nil)

	_, err := suite.svc.AddGame(context.Background(), 1, false, 10, 1905)

	suite.ErrorIs(err, apperrors.ErrGameAlreadyInWatchlist)
}

func (suite *WatchlistServiceTestSuite) TestAddGameHappyPath() {
	record := &igdb.Game{ID: 1905, Name: "Fortnite"}
	game := &models.Game{ID: 7, Title: "Fortnite"}

	suite.mockWatchlists.EXPECT().GetByID(uint(10)).Return(&models.Watchlist{ID: 10, UserID: 1}, nil)
	suite.mockCatalog.EXPECT().GetByID(gomock.Any(), int64(1905)).Return(record, nil)
	suite.mockIngestion.EXPECT().Ingest(gomock.Any(), record).Return(game, nil)
	suite.mockWatchlists.EXPECT().AddGame(uint(10), uint(7)).Return(nil)
	suite.mockWatchlists.EXPECT().GetWithGames(uint(10)).Return(&models.Watchlist{
		ID:     10,
		UserID: 1,
		Name:   "Backlog",
		Games:  []models.Game{*game},
	}, nil)

	resp, err := suite.svc.AddGame(context.Background(), 1, false, 10, 1905)

	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.Require().Len(resp.Games, 1)
	suite.Equal("Fortnite", resp.Games[0].Title)
}

func (suite *WatchlistServiceTestSuite) TestAddGameLinkFailure() {
	record := &igdb.Game{ID: 1905, Name: "Fortnite"}

	suite.mockWatchlists.EXPECT().GetByID(uint(10)).Return(&models.Watchlist{ID: 10, UserID: 1}, nil)
	suite.mockCatalog.EXPECT().GetByID(gomock.Any(), int64(1905)).Return(record, nil)
	suite.mockIngestion.EXPECT().Ingest(gomock.Any(), record).Return(&models.Game{ID: 7}, nil)
	suite.mockWatchlists.EXPECT().AddGame(uint(10), uint(7)).Return(errors.New("insert failed"))

	_, err := suite.svc.AddGame(context.Background(), 1, false, 10, 1905)

	suite.Error(err)
}

func TestWatchlistServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WatchlistServiceTestSuite))
}
