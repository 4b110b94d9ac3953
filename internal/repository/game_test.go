//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"game-watchlist-backend/internal/database/models"
	"game-watchlist-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// GameRepositoryTestSuite tests the GameRepository against real Postgres
type GameRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *GameRepository
	genres        *GenreRepository
	platforms     *PlatformRepository
	games         *testutils.GameFactory
}

// SetupSuite runs before all tests in the suite
func (suite *GameRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewGameRepository(suite.baseTestSuite.DB)
	suite.genres = NewGenreRepository(suite.baseTestSuite.DB)
	suite.platforms = NewPlatformRepository(suite.baseTestSuite.DB)
	suite.games = testutils.NewGameFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *GameRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *GameRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *GameRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *GameRepositoryTestSuite) TestGetByTitle() {
	game := suite.games.WithTitle("Hollow Knight")
	suite.NoError(suite.repo.Create(game))

	found, err := suite.repo.GetByTitle("Hollow Knight")
	suite.NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(game.ID, found.ID)

	missing, err := suite.repo.GetByTitle("No Such Game")
	suite.NoError(err)
	suite.Nil(missing)
}

func (suite *GameRepositoryTestSuite) TestGenreLinks() {
	game := suite.games.Create()
	suite.NoError(suite.repo.Create(game))
	genre := &models.Genre{Name: "Metroidvania"}
	suite.NoError(suite.genres.Create(genre))

	linked, err := suite.repo.HasGenre(game.ID, genre.ID)
	suite.NoError(err)
	suite.False(linked)

	suite.NoError(suite.repo.LinkGenre(game.ID, genre.ID))

	linked, err = suite.repo.HasGenre(game.ID, genre.ID)
	suite.NoError(err)
	suite.True(linked)
}

func (suite *GameRepositoryTestSuite) TestPlatformLinkCarriesReleaseDate() {
	game := suite.games.Create()
	suite.NoError(suite.repo.Create(game))
	platform := &models.Platform{Name: "Nintendo Switch"}
	suite.NoError(suite.platforms.Create(platform))

	released := time.Date(2017, 3, 3, 0, 0, 0, 0, time.UTC)
	suite.NoError(suite.repo.LinkPlatform(game.ID, platform.ID, &released))

	linked, err := suite.repo.HasPlatform(game.ID, platform.ID)
	suite.NoError(err)
	suite.True(linked)

	detailed, err := suite.repo.GetWithDetails(game.ID)
	suite.NoError(err)
	suite.Require().NotNil(detailed)
	suite.Require().Len(detailed.PlatformLinks, 1)
	suite.Equal("Nintendo Switch", detailed.PlatformLinks[0].Platform.Name)
	suite.Require().NotNil(detailed.PlatformLinks[0].ReleaseDate)
	suite.Equal(2017, detailed.PlatformLinks[0].ReleaseDate.Year())
}

func TestGameRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GameRepositoryTestSuite))
}
