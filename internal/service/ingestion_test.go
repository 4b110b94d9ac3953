package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"game-watchlist-backend/internal/database/models"
	"game-watchlist-backend/internal/igdb"
	"game-watchlist-backend/internal/mocks"
	"game-watchlist-backend/internal/repository"
	"game-watchlist-backend/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var errStorage = errors.New("storage failure")

// IngestionServiceTestSuite defines the test suite for IngestionService
type IngestionServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockGames     *mocks.MockGameRepositoryInterface
	mockCompanies *mocks.MockCompanyRepositoryInterface
	mockGenres    *mocks.MockGenreRepositoryInterface
	mockPlatforms *mocks.MockPlatformRepositoryInterface
	mockDLCs      *mocks.MockDLCRepositoryInterface
	mockUow       *mocks.MockUnitOfWorkInterface
	svc           *service.IngestionService
}

// SetupTest sets up the test suite
func (suite *IngestionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGames = mocks.NewMockGameRepositoryInterface(suite.ctrl)
	suite.mockCompanies = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.mockGenres = mocks.NewMockGenreRepositoryInterface(suite.ctrl)
	suite.mockPlatforms = mocks.NewMockPlatformRepositoryInterface(suite.ctrl)
	suite.mockDLCs = mocks.NewMockDLCRepositoryInterface(suite.ctrl)
	suite.mockUow = mocks.NewMockUnitOfWorkInterface(suite.ctrl)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	suite.svc = service.NewIngestionService(suite.mockUow, log)

	// Run the unit-of-work body against the mocked registry.
	suite.mockUow.EXPECT().Do(gomock.Any()).DoAndReturn(func(fn func(*repository.Registry) error) error {
		return fn(&repository.Registry{
			Games:     suite.mockGames,
			Companies: suite.mockCompanies,
			Genres:    suite.mockGenres,
			Platforms: suite.mockPlatforms,
			DLCs:      suite.mockDLCs,
		})
	}).AnyTimes()
}

// TearDownTest cleans up after each test
func (suite *IngestionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *IngestionServiceTestSuite) TestExistingGameCoreRowIsNotRecreated() {
	existing := &models.Game{ID: 3, Title: "Hades"}
	suite.mockGames.EXPECT().GetByTitle("Hades").Return(existing, nil)

	game, err := suite.svc.Ingest(context.Background(), &igdb.Game{ID: 119388, Name: "Hades"})

	suite.NoError(err)
	suite.Equal(existing, game)
}

func (suite *IngestionServiceTestSuite) TestReingestLinksNewAssociations() {
	existing := &models.Game{ID: 3, Title: "Hades"}
	record := &igdb.Game{
		ID:               119388,
		Name:             "Hades",
		FirstReleaseDate: 1600300800,
		Genres:           []igdb.Named{{ID: 4, Name: "Roguelike"}},
		Platforms:        []igdb.Named{{ID: 6, Name: "Nintendo Switch"}},
		DLCs:             []igdb.DLC{{Name: "Cross-save Pack"}},
	}

	suite.mockGames.EXPECT().GetByTitle("Hades").Return(existing, nil)

	suite.mockGenres.EXPECT().GetByName("Roguelike").Return(nil, nil)
	suite.mockGenres.EXPECT().Create(gomock.Any()).DoAndReturn(func(g *models.Genre) error {
		g.ID = 14
		return nil
	})
	suite.mockGames.EXPECT().HasGenre(uint(3), uint(14)).Return(false, nil)
	suite.mockGames.EXPECT().LinkGenre(uint(3), uint(14)).Return(nil)

	suite.mockPlatforms.EXPECT().GetByName("Nintendo Switch").Return(&models.Platform{ID: 22, Name: "Nintendo Switch"}, nil)
	suite.mockGames.EXPECT().HasPlatform(uint(3), uint(22)).Return(false, nil)
	suite.mockGames.EXPECT().LinkPlatform(uint(3), uint(22), gomock.Any()).Return(nil)

	suite.mockDLCs.EXPECT().GetByGameAndName(uint(3), "Cross-save Pack").Return(nil, nil)
	suite.mockDLCs.EXPECT().Create(gomock.Any()).DoAndReturn(func(d *models.DLC) error {
		suite.Equal(uint(3), d.GameID)
		return nil
	})

	game, err := suite.svc.Ingest(context.Background(), record)

	suite.NoError(err)
	suite.Equal(existing, game)
}

func (suite *IngestionServiceTestSuite) TestCreatesGameWithCompaniesGenresPlatformsAndDLCs() {
	usCode := 840
	startDate := int64(662688000) // 1991-01-01
	record := &igdb.Game{
		ID:               1905,
		Name:             "Fortnite",
		Summary:          "A battle royale.",
		AggregatedRating: 78.9,
		FirstReleaseDate: 1500940800,
		Genres:           []igdb.Named{{ID: 5, Name: "Shooter"}},
		Platforms:        []igdb.Named{{ID: 6, Name: "PC (Microsoft Windows)"}},
		InvolvedCompanies: []igdb.InvolvedCompany{
			{Company: igdb.CompanyInfo{Name: "Epic Games", Country: &usCode, StartDate: &startDate}, Developer: true, Publisher: true},
		},
		DLCs: []igdb.DLC{{Name: "Save the World", Summary: "Co-op campaign."}},
	}

	suite.mockGames.EXPECT().GetByTitle("Fortnite").Return(nil, nil)

	// Developer lookup creates the company; publisher lookup then reuses it.
	suite.mockCompanies.EXPECT().GetByName("Epic Games").Return(nil, nil)
	suite.mockCompanies.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.Company) error {
		suite.Equal("Epic Games", c.Name)
		suite.Equal(models.CompanyRoleDeveloper, c.Role)
		suite.Require().NotNil(c.Country)
		suite.Equal("Estados Unidos", *c.Country)
		suite.Equal("EUA", c.Market)
		suite.Require().NotNil(c.FoundedAt)
		suite.Equal(1991, c.FoundedAt.Year())
		c.ID = 11
		return nil
	})
	suite.mockCompanies.EXPECT().GetByName("Epic Games").Return(&models.Company{ID: 11, Name: "Epic Games"}, nil)

	suite.mockGames.EXPECT().Create(gomock.Any()).DoAndReturn(func(g *models.Game) error {
		suite.Equal("Fortnite", g.Title)
		suite.Equal("A battle royale.", g.Description)
		suite.Require().NotNil(g.CriticScore)
		suite.Equal(78, *g.CriticScore)
		suite.Require().NotNil(g.DeveloperID)
		suite.Equal(uint(11), *g.DeveloperID)
		suite.Require().NotNil(g.PublisherID)
		suite.Equal(uint(11), *g.PublisherID)
		g.ID = 7
		return nil
	})

	suite.mockGenres.EXPECT().GetByName("Shooter").Return(nil, nil)
	suite.mockGenres.EXPECT().Create(gomock.Any()).DoAndReturn(func(g *models.Genre) error {
		g.ID = 21
		return nil
	})
	suite.mockGames.EXPECT().HasGenre(uint(7), uint(21)).Return(false, nil)
	suite.mockGames.EXPECT().LinkGenre(uint(7), uint(21)).Return(nil)

	suite.mockPlatforms.EXPECT().GetByName("PC (Microsoft Windows)").Return(nil, nil)
	suite.mockPlatforms.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Platform) error {
		p.ID = 31
		return nil
	})
	suite.mockGames.EXPECT().HasPlatform(uint(7), uint(31)).Return(false, nil)
	suite.mockGames.EXPECT().LinkPlatform(uint(7), uint(31), gomock.Any()).DoAndReturn(
		func(_, _ uint, releaseDate *time.Time) error {
			suite.Require().NotNil(releaseDate)
			suite.Equal(time.Unix(1500940800, 0).UTC(), *releaseDate)
			return nil
		})

	suite.mockDLCs.EXPECT().GetByGameAndName(uint(7), "Save the World").Return(nil, nil)
	suite.mockDLCs.EXPECT().Create(gomock.Any()).DoAndReturn(func(d *models.DLC) error {
		suite.Equal(uint(7), d.GameID)
		suite.Equal("Co-op campaign.", d.Description)
		return nil
	})

	game, err := suite.svc.Ingest(context.Background(), record)

	suite.NoError(err)
	suite.Require().NotNil(game)
	suite.Equal(uint(7), game.ID)
}

func (suite *IngestionServiceTestSuite) TestFirstDeveloperWins() {
	record := &igdb.Game{
		Name: "Multi Studio Game",
		InvolvedCompanies: []igdb.InvolvedCompany{
			{Company: igdb.CompanyInfo{Name: "First Studio"}, Developer: true},
			{Company: igdb.CompanyInfo{Name: "Second Studio"}, Developer: true},
		},
	}

	suite.mockGames.EXPECT().GetByTitle("Multi Studio Game").Return(nil, nil)
	suite.mockCompanies.EXPECT().GetByName("First Studio").Return(&models.Company{ID: 1, Name: "First Studio"}, nil)
	suite.mockGames.EXPECT().Create(gomock.Any()).DoAndReturn(func(g *models.Game) error {
		suite.Require().NotNil(g.DeveloperID)
		suite.Equal(uint(1), *g.DeveloperID)
		suite.Nil(g.PublisherID)
		g.ID = 9
		return nil
	})

	_, err := suite.svc.Ingest(context.Background(), record)
	suite.NoError(err)
}

func (suite *IngestionServiceTestSuite) TestZeroRatingStoresNoScore() {
	record := &igdb.Game{Name: "Unrated Game"}

	suite.mockGames.EXPECT().GetByTitle("Unrated Game").Return(nil, nil)
	suite.mockGames.EXPECT().Create(gomock.Any()).DoAndReturn(func(g *models.Game) error {
		suite.Nil(g.CriticScore)
		g.ID = 4
		return nil
	})

	_, err := suite.svc.Ingest(context.Background(), record)
	suite.NoError(err)
}

func (suite *IngestionServiceTestSuite) TestExistingAssociationsAreNotDuplicated() {
	record := &igdb.Game{
		Name:   "Linked Game",
		Genres: []igdb.Named{{ID: 1, Name: "Adventure"}},
		DLCs:   []igdb.DLC{{Name: "Old DLC"}},
	}

	suite.mockGames.EXPECT().GetByTitle("Linked Game").Return(nil, nil)
	suite.mockGames.EXPECT().Create(gomock.Any()).DoAndReturn(func(g *models.Game) error {
		g.ID = 5
		return nil
	})
	suite.mockGenres.EXPECT().GetByName("Adventure").Return(&models.Genre{ID: 2, Name: "Adventure"}, nil)
	suite.mockGames.EXPECT().HasGenre(uint(5), uint(2)).Return(true, nil)
	suite.mockDLCs.EXPECT().GetByGameAndName(uint(5), "Old DLC").Return(&models.DLC{ID: 8, GameID: 5, Name: "Old DLC"}, nil)

	_, err := suite.svc.Ingest(context.Background(), record)
	suite.NoError(err)
}

func (suite *IngestionServiceTestSuite) TestRepositoryFailureAbortsIngestion() {
	suite.mockGames.EXPECT().GetByTitle("Broken Game").Return(nil, nil)
	suite.mockGames.EXPECT().Create(gomock.Any()).Return(errStorage)

	_, err := suite.svc.Ingest(context.Background(), &igdb.Game{Name: "Broken Game"})
	suite.Error(err)
}

func TestIngestionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IngestionServiceTestSuite))
}
