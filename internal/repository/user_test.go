//go:build integration
// +build integration

package repository

import (
	"testing"

	"recipeshare-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
	suite.NotZero(user.CreatedAt)
}

// TestCreateDuplicateEmail tests the unique index on email
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	first := suite.factories.User.WithEmail("alice@test.com")
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.User.WithEmail("alice@test.com")
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.True(IsUniqueViolation(err))
}

// TestCreateDuplicateUsername tests the unique index on username
func (suite *UserRepositoryTestSuite) TestCreateDuplicateUsername() {
	first := suite.factories.User.WithUsername("alice")
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.User.WithUsername("alice")
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.True(IsUniqueViolation(err))
}

// TestGetByEmail tests the login lookup
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.WithEmail("alice@test.com")
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail("alice@test.com")
	suite.NoError(err)
	suite.Equal(user.ID, found.ID)

	_, err = suite.repo.GetByEmail("nobody@test.com")
	suite.Error(err)
}

// TestGetAllOrdersByUsername tests the listing order
func (suite *UserRepositoryTestSuite) TestGetAllOrdersByUsername() {
	suite.NoError(suite.repo.Create(suite.factories.User.WithUsername("zoe")))
	suite.NoError(suite.repo.Create(suite.factories.User.WithUsername("adam")))

	users, total, err := suite.repo.GetAll(10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Equal("adam", users[0].Username)
	suite.Equal("zoe", users[1].Username)
}

// TestGetFollowing tests the subscription join with pagination
func (suite *UserRepositoryTestSuite) TestGetFollowing() {
	follower := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(follower))

	first := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(first))
	second := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(second))
	stranger := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(stranger))

	followRepo := NewFollowRepository(suite.baseTestSuite.DB)
	suite.NoError(followRepo.Create(suite.factories.Follow.For(follower.ID, first.ID)))
	suite.NoError(followRepo.Create(suite.factories.Follow.For(follower.ID, second.ID)))

	users, total, err := suite.repo.GetFollowing(follower.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(users, 2)

	ids := []uuid.UUID{users[0].ID, users[1].ID}
	suite.Contains(ids, first.ID)
	suite.Contains(ids, second.ID)
	suite.NotContains(ids, stranger.ID)
}

// TestUpdate tests persisting a changed password hash
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	user.PasswordHash = "new-hash"
	suite.NoError(suite.repo.Update(user))

	found, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal("new-hash", found.PasswordHash)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
