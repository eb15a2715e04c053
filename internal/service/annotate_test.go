package service_test

import (
	"testing"

	"recipeshare-backend/internal/mocks"
	"recipeshare-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AnnotatorTestSuite defines the test suite for Annotator
type AnnotatorTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockFavoriteRepo *mocks.MockFavoriteRepositoryInterface
	mockCartRepo     *mocks.MockShoppingCartRepositoryInterface
	mockFollowRepo   *mocks.MockFollowRepositoryInterface
	mockRecipeRepo   *mocks.MockRecipeRepositoryInterface
	annotator        *service.Annotator
}

// SetupTest sets up the test suite
func (suite *AnnotatorTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockFavoriteRepo = mocks.NewMockFavoriteRepositoryInterface(suite.ctrl)
	suite.mockCartRepo = mocks.NewMockShoppingCartRepositoryInterface(suite.ctrl)
	suite.mockFollowRepo = mocks.NewMockFollowRepositoryInterface(suite.ctrl)
	suite.mockRecipeRepo = mocks.NewMockRecipeRepositoryInterface(suite.ctrl)

	suite.annotator = service.NewAnnotator(
		suite.mockFavoriteRepo,
		suite.mockCartRepo,
		suite.mockFollowRepo,
		suite.mockRecipeRepo,
	)
}

// TearDownTest cleans up after each test
func (suite *AnnotatorTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRecipeFlagsAnonymous tests that the anonymous viewer gets all-false
// flags without touching the repositories. No expectations are registered,
// so any repository call fails the test.
func (suite *AnnotatorTestSuite) TestRecipeFlagsAnonymous() {
	recipeIDs := []uuid.UUID{uuid.New(), uuid.New()}

	flags, err := suite.annotator.RecipeFlags(service.AnonymousViewer(), recipeIDs)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), flags)
	assert.Empty(suite.T(), flags.Favorited)
	assert.Empty(suite.T(), flags.InCart)
	for _, id := range recipeIDs {
		assert.False(suite.T(), flags.Favorited[id])
		assert.False(suite.T(), flags.InCart[id])
	}
}

// TestRecipeFlagsAuthenticated tests batched flag loading for a signed-in viewer
func (suite *AnnotatorTestSuite) TestRecipeFlagsAuthenticated() {
	viewerID := uuid.New()
	recipe1 := uuid.New()
	recipe2 := uuid.New()
	recipeIDs := []uuid.UUID{recipe1, recipe2}

	suite.mockFavoriteRepo.EXPECT().
		RecipeIDSet(viewerID, recipeIDs).
		Return(map[uuid.UUID]bool{recipe1: true}, nil).
		Times(1)

	suite.mockCartRepo.EXPECT().
		RecipeIDSet(viewerID, recipeIDs).
		Return(map[uuid.UUID]bool{recipe2: true}, nil).
		Times(1)

	flags, err := suite.annotator.RecipeFlags(service.UserViewer(viewerID), recipeIDs)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), flags.Favorited[recipe1])
	assert.False(suite.T(), flags.Favorited[recipe2])
	assert.False(suite.T(), flags.InCart[recipe1])
	assert.True(suite.T(), flags.InCart[recipe2])
}

// TestRecipeFlagsEmptyPage tests that an empty page costs zero queries even
// for a signed-in viewer
func (suite *AnnotatorTestSuite) TestRecipeFlagsEmptyPage() {
	flags, err := suite.annotator.RecipeFlags(service.UserViewer(uuid.New()), nil)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), flags.Favorited)
	assert.Empty(suite.T(), flags.InCart)
}

// TestSubscribedSetAnonymous tests that the anonymous viewer is subscribed
// to nobody and no repository is consulted
func (suite *AnnotatorTestSuite) TestSubscribedSetAnonymous() {
	userIDs := []uuid.UUID{uuid.New(), uuid.New()}

	subscribed, err := suite.annotator.SubscribedSet(service.AnonymousViewer(), userIDs)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), subscribed)
	for _, id := range userIDs {
		assert.False(suite.T(), subscribed[id])
	}
}

// TestSubscribedSetAuthenticated tests subscription flags for a signed-in viewer
func (suite *AnnotatorTestSuite) TestSubscribedSetAuthenticated() {
	viewerID := uuid.New()
	author1 := uuid.New()
	author2 := uuid.New()
	userIDs := []uuid.UUID{author1, author2}

	suite.mockFollowRepo.EXPECT().
		FollowingIDSet(viewerID, userIDs).
		Return(map[uuid.UUID]bool{author2: true}, nil).
		Times(1)

	subscribed, err := suite.annotator.SubscribedSet(service.UserViewer(viewerID), userIDs)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), subscribed[author1])
	assert.True(suite.T(), subscribed[author2])
}

// TestRecipeCounts tests that recipe counts run regardless of viewer
func (suite *AnnotatorTestSuite) TestRecipeCounts() {
	author := uuid.New()
	userIDs := []uuid.UUID{author}

	suite.mockRecipeRepo.EXPECT().
		CountByAuthors(userIDs).
		Return(map[uuid.UUID]int64{author: 3}, nil).
		Times(1)

	counts, err := suite.annotator.RecipeCounts(userIDs)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), counts[author])
}

// TestAnnotatorTestSuite runs the test suite
func TestAnnotatorTestSuite(t *testing.T) {
	suite.Run(t, new(AnnotatorTestSuite))
}
