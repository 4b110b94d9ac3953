//go:build integration
// +build integration

package repository

import (
	"testing"

	"game-watchlist-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// WatchlistRepositoryTestSuite tests the WatchlistRepository against real Postgres
type WatchlistRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *WatchlistRepository
	usersRepo     *UserRepository
	gamesRepo     *GameRepository
	users         *testutils.UserFactory
	games         *testutils.GameFactory
	watchlists    *testutils.WatchlistFactory
}

func (suite *WatchlistRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewWatchlistRepository(suite.baseTestSuite.DB)
	suite.usersRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.gamesRepo = NewGameRepository(suite.baseTestSuite.DB)
	suite.users = testutils.NewUserFactory()
	suite.games = testutils.NewGameFactory()
	suite.watchlists = testutils.NewWatchlistFactory()
}

func (suite *WatchlistRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *WatchlistRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *WatchlistRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *WatchlistRepositoryTestSuite) createOwner() uint {
	user := suite.users.Create()
	suite.Require().NoError(suite.usersRepo.Create(user))
	return user.ID
}

func (suite *WatchlistRepositoryTestSuite) TestGetByIDNotFound() {
	found, err := suite.repo.GetByID(9999)
	suite.NoError(err)
	suite.Nil(found)
}

func (suite *WatchlistRepositoryTestSuite) TestGetByUserIDOnlyReturnsOwnLists() {
	owner := suite.createOwner()
	other := suite.createOwner()

	suite.NoError(suite.repo.Create(suite.watchlists.Create(owner)))
	suite.NoError(suite.repo.Create(suite.watchlists.Create(owner)))
	suite.NoError(suite.repo.Create(suite.watchlists.Create(other)))

	lists, err := suite.repo.GetByUserID(owner)
	suite.NoError(err)
	suite.Len(lists, 2)
	for _, list := range lists {
		suite.Equal(owner, list.UserID)
	}
}

func (suite *WatchlistRepositoryTestSuite) TestAddGameAndReload() {
	owner := suite.createOwner()
	watchlist := suite.watchlists.Create(owner)
	suite.Require().NoError(suite.repo.Create(watchlist))

	game := suite.games.WithTitle("Celeste")
	suite.Require().NoError(suite.gamesRepo.Create(game))

	suite.NoError(suite.repo.AddGame(watchlist.ID, game.ID))

	reloaded, err := suite.repo.GetByID(watchlist.ID)
	suite.NoError(err)
	suite.Require().NotNil(reloaded)
	suite.Require().Len(reloaded.Games, 1)
	suite.Equal("Celeste", reloaded.Games[0].Title)
}

func (suite *WatchlistRepositoryTestSuite) TestGetWithGamesPreloadsDetails() {
	owner := suite.createOwner()
	watchlist := suite.watchlists.Create(owner)
	suite.Require().NoError(suite.repo.Create(watchlist))

	companies := NewCompanyRepository(suite.baseTestSuite.DB)
	developer := testutils.NewCompanyFactory().Create()
	suite.Require().NoError(companies.Create(developer))

	game := suite.games.Create()
	game.DeveloperID = &developer.ID
	suite.Require().NoError(suite.gamesRepo.Create(game))
	suite.Require().NoError(suite.repo.AddGame(watchlist.ID, game.ID))

	detailed, err := suite.repo.GetWithGames(watchlist.ID)
	suite.NoError(err)
	suite.Require().NotNil(detailed)
	suite.Require().Len(detailed.Games, 1)
	suite.Require().NotNil(detailed.Games[0].Developer)
	suite.Equal(developer.Name, detailed.Games[0].Developer.Name)
}

func TestWatchlistRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WatchlistRepositoryTestSuite))
}
