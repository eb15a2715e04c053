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

// CatalogServiceTestSuite tests the tag and ingredient catalog services
type CatalogServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockTagRepo        *mocks.MockTagRepositoryInterface
	mockIngredientRepo *mocks.MockIngredientRepositoryInterface
	tagService         *service.TagService
	ingredientService  *service.IngredientService
}

// SetupTest sets up the test suite
func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTagRepo = mocks.NewMockTagRepositoryInterface(suite.ctrl)
	suite.mockIngredientRepo = mocks.NewMockIngredientRepositoryInterface(suite.ctrl)
	suite.tagService = service.NewTagService(suite.mockTagRepo)
	suite.ingredientService = service.NewIngredientService(suite.mockIngredientRepo)
}

// TearDownTest cleans up after each test
func (suite *CatalogServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetAllTags tests listing the tag catalog
func (suite *CatalogServiceTestSuite) TestGetAllTags() {
	tags := []models.Tag{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Dinner", Color: "#8775D2", Slug: "dinner"},
	}

	suite.mockTagRepo.EXPECT().GetAll().Return(tags, nil).Times(1)

	responses, err := suite.tagService.GetAll()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
	assert.Equal(suite.T(), "breakfast", responses[0].Slug)
	assert.Equal(suite.T(), "#8775D2", responses[1].Color)
}

// TestGetTagByIDNotFound tests the missing tag translation
func (suite *CatalogServiceTestSuite) TestGetTagByIDNotFound() {
	tagID := uuid.New()

	suite.mockTagRepo.EXPECT().GetByID(tagID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.tagService.GetByID(tagID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTagNotFound)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestGetAllIngredientsPrefix tests that the prefix and paging reach the repository
func (suite *CatalogServiceTestSuite) TestGetAllIngredientsPrefix() {
	ingredients := []models.Ingredient{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "flour", MeasurementUnit: "g"},
	}

	suite.mockIngredientRepo.EXPECT().
		GetAll("fl", 20, 20).
		Return(ingredients, int64(21), nil).
		Times(1)

	response, err := suite.ingredientService.GetAll("fl", 2, 20)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(21), response.Total)
	assert.Equal(suite.T(), 2, response.Page)
	assert.Len(suite.T(), response.Ingredients, 1)
	assert.Equal(suite.T(), "flour", response.Ingredients[0].Name)
}

// TestDeleteIngredientInUse tests that a referenced catalog entry is kept
func (suite *CatalogServiceTestSuite) TestDeleteIngredientInUse() {
	ingredientID := uuid.New()
	ingredient := &models.Ingredient{
		BaseModel:       models.BaseModel{ID: ingredientID},
		Name:            "flour",
		MeasurementUnit: "g",
	}

	suite.mockIngredientRepo.EXPECT().GetByID(ingredientID).Return(ingredient, nil).Times(1)
	suite.mockIngredientRepo.EXPECT().CountRecipeReferences(ingredientID).Return(int64(3), nil).Times(1)

	err := suite.ingredientService.Delete(ingredientID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrIngredientInUse)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestDeleteIngredient tests removing an unreferenced catalog entry
func (suite *CatalogServiceTestSuite) TestDeleteIngredient() {
	ingredientID := uuid.New()
	ingredient := &models.Ingredient{
		BaseModel:       models.BaseModel{ID: ingredientID},
		Name:            "flour",
		MeasurementUnit: "g",
	}

	suite.mockIngredientRepo.EXPECT().GetByID(ingredientID).Return(ingredient, nil).Times(1)
	suite.mockIngredientRepo.EXPECT().CountRecipeReferences(ingredientID).Return(int64(0), nil).Times(1)
	suite.mockIngredientRepo.EXPECT().Delete(ingredientID).Return(nil).Times(1)

	err := suite.ingredientService.Delete(ingredientID)

	assert.NoError(suite.T(), err)
}

// TestDeleteIngredientNotFound tests the missing ingredient translation
func (suite *CatalogServiceTestSuite) TestDeleteIngredientNotFound() {
	ingredientID := uuid.New()

	suite.mockIngredientRepo.EXPECT().GetByID(ingredientID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.ingredientService.Delete(ingredientID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrIngredientNotFound)
}

// TestCatalogServiceTestSuite runs the test suite
func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
