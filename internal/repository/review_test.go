//go:build integration
// +build integration

package repository

import (
	"testing"

	"game-watchlist-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ReviewRepositoryTestSuite tests the ReviewRepository against real Postgres
type ReviewRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ReviewRepository
	usersRepo     *UserRepository
	gamesRepo     *GameRepository
	users         *testutils.UserFactory
	games         *testutils.GameFactory
	reviews       *testutils.ReviewFactory
}

func (suite *ReviewRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewReviewRepository(suite.baseTestSuite.DB)
	suite.usersRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.gamesRepo = NewGameRepository(suite.baseTestSuite.DB)
	suite.users = testutils.NewUserFactory()
	suite.games = testutils.NewGameFactory()
	suite.reviews = testutils.NewReviewFactory()
}

func (suite *ReviewRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ReviewRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *ReviewRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ReviewRepositoryTestSuite) createUserAndGame() (uint, uint) {
	user := suite.users.Create()
	suite.Require().NoError(suite.usersRepo.Create(user))
	game := suite.games.Create()
	suite.Require().NoError(suite.gamesRepo.Create(game))
	return user.ID, game.ID
}

func (suite *ReviewRepositoryTestSuite) TestGetByUserAndGame() {
	userID, gameID := suite.createUserAndGame()
	review := suite.reviews.Create(userID, gameID)
	suite.Require().NoError(suite.repo.Create(review))

	found, err := suite.repo.GetByUserAndGame(userID, gameID)
	suite.NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(review.ID, found.ID)

	missing, err := suite.repo.GetByUserAndGame(userID, gameID+1)
	suite.NoError(err)
	suite.Nil(missing)
}

func (suite *ReviewRepositoryTestSuite) TestDuplicateReviewIsRejectedByIndex() {
	userID, gameID := suite.createUserAndGame()
	suite.Require().NoError(suite.repo.Create(suite.reviews.Create(userID, gameID)))

	err := suite.repo.Create(suite.reviews.Create(userID, gameID))
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (suite *ReviewRepositoryTestSuite) TestGetByGamePreloadsAuthors() {
	userID, gameID := suite.createUserAndGame()
	other := suite.users.Create()
	suite.Require().NoError(suite.usersRepo.Create(other))

	suite.Require().NoError(suite.repo.Create(suite.reviews.Create(userID, gameID)))
	suite.Require().NoError(suite.repo.Create(suite.reviews.Create(other.ID, gameID)))

	reviews, err := suite.repo.GetByGame(gameID)
	suite.NoError(err)
	suite.Require().Len(reviews, 2)
	suite.NotEmpty(reviews[0].User.Username)
	suite.NotEmpty(reviews[1].User.Username)
}

func (suite *ReviewRepositoryTestSuite) TestGetByUserPreloadsGames() {
	userID, gameID := suite.createUserAndGame()
	suite.Require().NoError(suite.repo.Create(suite.reviews.Create(userID, gameID)))

	reviews, err := suite.repo.GetByUser(userID)
	suite.NoError(err)
	suite.Require().Len(reviews, 1)
	suite.NotEmpty(reviews[0].Game.Title)
}

func TestReviewRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewRepositoryTestSuite))
}
