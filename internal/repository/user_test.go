//go:build integration
// +build integration

package repository

import (
	"testing"

	"game-watchlist-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository against real Postgres
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	users         *testutils.UserFactory
}

func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.users = testutils.NewUserFactory()
}

func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserRepositoryTestSuite) TestGetByUsernameOrEmail() {
	user := suite.users.WithUsername("alice")
	suite.Require().NoError(suite.repo.Create(user))

	byUsername, err := suite.repo.GetByUsernameOrEmail("alice", "someone@else.com")
	suite.NoError(err)
	suite.Require().NotNil(byUsername)
	suite.Equal(user.ID, byUsername.ID)

	byEmail, err := suite.repo.GetByUsernameOrEmail("someoneelse", "alice@example.com")
	suite.NoError(err)
	suite.Require().NotNil(byEmail)
	suite.Equal(user.ID, byEmail.ID)

	missing, err := suite.repo.GetByUsernameOrEmail("nobody", "nobody@example.com")
	suite.NoError(err)
	suite.Nil(missing)
}

func (suite *UserRepositoryTestSuite) TestDuplicateUsernameIsRejectedByIndex() {
	suite.Require().NoError(suite.repo.Create(suite.users.WithUsername("bob")))

	dup := suite.users.WithUsername("bob")
	dup.Email = "different@example.com"
	err := suite.repo.Create(dup)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (suite *UserRepositoryTestSuite) TestGetAllFiltersAndPaginates() {
	suite.Require().NoError(suite.repo.Create(suite.users.WithUsername("carol")))
	suite.Require().NoError(suite.repo.Create(suite.users.WithUsername("caroline")))
	suite.Require().NoError(suite.repo.Create(suite.users.WithUsername("dave")))

	filtered, total, err := suite.repo.GetAll("carol", "", 100, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(filtered, 2)

	paged, total, err := suite.repo.GetAll("", "", 2, 1)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(paged, 2)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
