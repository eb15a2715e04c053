package service_test

import (
	"testing"

	"recipeshare-backend/internal/database/models"
	apperrors "recipeshare-backend/internal/errors"
	"recipeshare-backend/internal/mocks"
	"recipeshare-backend/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// FavoriteServiceTestSuite defines the test suite for FavoriteService
type FavoriteServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockFavoriteRepo *mocks.MockFavoriteRepositoryInterface
	mockRecipeRepo   *mocks.MockRecipeRepositoryInterface
	favoriteService  *service.FavoriteService
}

// SetupTest sets up the test suite
func (suite *FavoriteServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockFavoriteRepo = mocks.NewMockFavoriteRepositoryInterface(suite.ctrl)
	suite.mockRecipeRepo = mocks.NewMockRecipeRepositoryInterface(suite.ctrl)
	suite.favoriteService = service.NewFavoriteService(suite.mockFavoriteRepo, suite.mockRecipeRepo)
}

// TearDownTest cleans up after each test
func (suite *FavoriteServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FavoriteServiceTestSuite) recipe(recipeID uuid.UUID) *models.Recipe {
	return &models.Recipe{
		BaseModel:   models.BaseModel{ID: recipeID},
		AuthorID:    uuid.New(),
		Name:        "Pancakes",
		Image:       "recipes/images/pancakes.png",
		CookingTime: 20,
	}
}

// TestAdd tests favoriting a recipe
func (suite *FavoriteServiceTestSuite) TestAdd() {
	userID := uuid.New()
	recipeID := uuid.New()

	suite.mockRecipeRepo.EXPECT().
		GetByID(recipeID).
		Return(suite.recipe(recipeID), nil).
		Times(1)

	suite.mockFavoriteRepo.EXPECT().
		Exists(userID, recipeID).
		Return(false, nil).
		Times(1)

	suite.mockFavoriteRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(favorite *models.Favorite) error {
			assert.Equal(suite.T(), userID, favorite.UserID)
			assert.Equal(suite.T(), recipeID, favorite.RecipeID)
			return nil
		}).
		Times(1)

	preview, err := suite.favoriteService.Add(userID, recipeID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), preview)
	assert.Equal(suite.T(), recipeID, preview.ID)
	assert.Equal(suite.T(), "Pancakes", preview.Name)
}

// TestAddRecipeNotFound tests favoriting a missing recipe
func (suite *FavoriteServiceTestSuite) TestAddRecipeNotFound() {
	suite.mockRecipeRepo.EXPECT().
		GetByID(gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	preview, err := suite.favoriteService.Add(uuid.New(), uuid.New())

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), preview)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRecipeNotFound)
}

// TestAddDuplicate tests that favoriting twice fails as already exists
func (suite *FavoriteServiceTestSuite) TestAddDuplicate() {
	userID := uuid.New()
	recipeID := uuid.New()

	suite.mockRecipeRepo.EXPECT().
		GetByID(recipeID).
		Return(suite.recipe(recipeID), nil).
		Times(1)

	suite.mockFavoriteRepo.EXPECT().
		Exists(userID, recipeID).
		Return(true, nil).
		Times(1)

	preview, err := suite.favoriteService.Add(userID, recipeID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), preview)
	assert.ErrorIs(suite.T(), err, apperrors.ErrFavoriteExists)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

// TestAddLosesInsertRace tests that a concurrent insert surfacing as a
// unique violation is reported as already exists, not a server fault
func (suite *FavoriteServiceTestSuite) TestAddLosesInsertRace() {
	userID := uuid.New()
	recipeID := uuid.New()

	suite.mockRecipeRepo.EXPECT().
		GetByID(recipeID).
		Return(suite.recipe(recipeID), nil).
		Times(1)

	suite.mockFavoriteRepo.EXPECT().
		Exists(userID, recipeID).
		Return(false, nil).
		Times(1)

	suite.mockFavoriteRepo.EXPECT().
		Create(gomock.Any()).
		Return(&pgconn.PgError{Code: "23505"}).
		Times(1)

	preview, err := suite.favoriteService.Add(userID, recipeID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), preview)
	assert.ErrorIs(suite.T(), err, apperrors.ErrFavoriteExists)
}

// TestRemove tests unfavoriting a recipe
func (suite *FavoriteServiceTestSuite) TestRemove() {
	userID := uuid.New()
	recipeID := uuid.New()

	suite.mockRecipeRepo.EXPECT().
		GetByID(recipeID).
		Return(suite.recipe(recipeID), nil).
		Times(1)

	suite.mockFavoriteRepo.EXPECT().
		Exists(userID, recipeID).
		Return(true, nil).
		Times(1)

	suite.mockFavoriteRepo.EXPECT().
		Delete(userID, recipeID).
		Return(nil).
		Times(1)

	err := suite.favoriteService.Remove(userID, recipeID)

	assert.NoError(suite.T(), err)
}

// TestRemoveAbsent tests that removing a favorite that is not there fails
// as not found
func (suite *FavoriteServiceTestSuite) TestRemoveAbsent() {
	userID := uuid.New()
	recipeID := uuid.New()

	suite.mockRecipeRepo.EXPECT().
		GetByID(recipeID).
		Return(suite.recipe(recipeID), nil).
		Times(1)

	suite.mockFavoriteRepo.EXPECT().
		Exists(userID, recipeID).
		Return(false, nil).
		Times(1)

	err := suite.favoriteService.Remove(userID, recipeID)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrFavoriteNotFound)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestFavoriteServiceTestSuite runs the test suite
func TestFavoriteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FavoriteServiceTestSuite))
}
