package service_test

import (
	"testing"

	"recipeshare-backend/internal/database/models"
	apperrors "recipeshare-backend/internal/errors"
	"recipeshare-backend/internal/mocks"
	"recipeshare-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// FollowServiceTestSuite defines the test suite for FollowService
type FollowServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockFollowRepo   *mocks.MockFollowRepositoryInterface
	mockUserRepo     *mocks.MockUserRepositoryInterface
	mockRecipeRepo   *mocks.MockRecipeRepositoryInterface
	mockFavoriteRepo *mocks.MockFavoriteRepositoryInterface
	mockCartRepo     *mocks.MockShoppingCartRepositoryInterface
	followService    *service.FollowService
}

// SetupTest sets up the test suite
func (suite *FollowServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockFollowRepo = mocks.NewMockFollowRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockRecipeRepo = mocks.NewMockRecipeRepositoryInterface(suite.ctrl)
	suite.mockFavoriteRepo = mocks.NewMockFavoriteRepositoryInterface(suite.ctrl)
	suite.mockCartRepo = mocks.NewMockShoppingCartRepositoryInterface(suite.ctrl)

	annotator := service.NewAnnotator(
		suite.mockFavoriteRepo,
		suite.mockCartRepo,
		suite.mockFollowRepo,
		suite.mockRecipeRepo,
	)
	suite.followService = service.NewFollowService(
		suite.mockFollowRepo,
		suite.mockUserRepo,
		suite.mockRecipeRepo,
		annotator,
	)
}

// TearDownTest cleans up after each test
func (suite *FollowServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FollowServiceTestSuite) author(id uuid.UUID) *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		Email:     "author@test.com",
		Username:  "author",
		FirstName: "Alice",
		LastName:  "Author",
	}
}

// TestSubscribe tests following an author
func (suite *FollowServiceTestSuite) TestSubscribe() {
	followerID := uuid.New()
	authorID := uuid.New()

	suite.mockUserRepo.EXPECT().
		GetByID(authorID).
		Return(suite.author(authorID), nil).
		Times(1)

	suite.mockFollowRepo.EXPECT().
		Exists(followerID, authorID).
		Return(false, nil).
		Times(1)

	suite.mockFollowRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(follow *models.Follow) error {
			assert.Equal(suite.T(), followerID, follow.FollowerID)
			assert.Equal(suite.T(), authorID, follow.FollowingID)
			return nil
		}).
		Times(1)

	suite.mockRecipeRepo.EXPECT().
		CountByAuthors([]uuid.UUID{authorID}).
		Return(map[uuid.UUID]int64{authorID: 2}, nil).
		Times(1)

	suite.mockRecipeRepo.EXPECT().
		ListByAuthors([]uuid.UUID{authorID}).
		Return([]models.Recipe{
			{BaseModel: models.BaseModel{ID: uuid.New()}, AuthorID: authorID, Name: "Newest"},
			{BaseModel: models.BaseModel{ID: uuid.New()}, AuthorID: authorID, Name: "Older"},
		}, nil).
		Times(1)

	response, err := suite.followService.Subscribe(followerID, authorID, 1)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.True(suite.T(), response.IsSubscribed)
	assert.Equal(suite.T(), int64(2), response.RecipesCount)
	// recipes_limit trims the previews, not the count
	assert.Len(suite.T(), response.Recipes, 1)
	assert.Equal(suite.T(), "Newest", response.Recipes[0].Name)
}

// TestSubscribeSelf tests that following yourself is rejected before any
// state is consulted. No expectations are registered, so any repository
// call fails the test.
func (suite *FollowServiceTestSuite) TestSubscribeSelf() {
	userID := uuid.New()

	response, err := suite.followService.Subscribe(userID, userID, 0)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSelfFollow)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestSubscribeUnknownUser tests following a missing user
func (suite *FollowServiceTestSuite) TestSubscribeUnknownUser() {
	suite.mockUserRepo.EXPECT().
		GetByID(gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.followService.Subscribe(uuid.New(), uuid.New(), 0)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestSubscribeDuplicate tests that following twice fails as already exists
func (suite *FollowServiceTestSuite) TestSubscribeDuplicate() {
	followerID := uuid.New()
	authorID := uuid.New()

	suite.mockUserRepo.EXPECT().
		GetByID(authorID).
		Return(suite.author(authorID), nil).
		Times(1)

	suite.mockFollowRepo.EXPECT().
		Exists(followerID, authorID).
		Return(true, nil).
		Times(1)

	response, err := suite.followService.Subscribe(followerID, authorID, 0)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrFollowExists)
}

// TestUnsubscribeSelf tests that the self check wins even before the user
// lookup on unsubscribe
func (suite *FollowServiceTestSuite) TestUnsubscribeSelf() {
	userID := uuid.New()

	err := suite.followService.Unsubscribe(userID, userID)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSelfFollow)
}

// TestUnsubscribeAbsent tests that unfollowing someone you never followed
// fails as not found
func (suite *FollowServiceTestSuite) TestUnsubscribeAbsent() {
	followerID := uuid.New()
	authorID := uuid.New()

	suite.mockUserRepo.EXPECT().
		GetByID(authorID).
		Return(suite.author(authorID), nil).
		Times(1)

	suite.mockFollowRepo.EXPECT().
		Exists(followerID, authorID).
		Return(false, nil).
		Times(1)

	err := suite.followService.Unsubscribe(followerID, authorID)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrFollowNotFound)
}

// TestUnsubscribe tests unfollowing an author
func (suite *FollowServiceTestSuite) TestUnsubscribe() {
	followerID := uuid.New()
	authorID := uuid.New()

	suite.mockUserRepo.EXPECT().
		GetByID(authorID).
		Return(suite.author(authorID), nil).
		Times(1)

	suite.mockFollowRepo.EXPECT().
		Exists(followerID, authorID).
		Return(true, nil).
		Times(1)

	suite.mockFollowRepo.EXPECT().
		Delete(followerID, authorID).
		Return(nil).
		Times(1)

	err := suite.followService.Unsubscribe(followerID, authorID)

	assert.NoError(suite.T(), err)
}

// TestFollowServiceTestSuite runs the test suite
func TestFollowServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FollowServiceTestSuite))
}
