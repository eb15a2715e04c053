package service_test

import (
	"testing"

	"recipeshare-backend/internal/database/models"
	apperrors "recipeshare-backend/internal/errors"
	"recipeshare-backend/internal/mocks"
	"recipeshare-backend/internal/repository"
	"recipeshare-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// RecipeServiceTestSuite defines the test suite for RecipeService
type RecipeServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRecipeRepo     *mocks.MockRecipeRepositoryInterface
	mockTagRepo        *mocks.MockTagRepositoryInterface
	mockIngredientRepo *mocks.MockIngredientRepositoryInterface
	mockFavoriteRepo   *mocks.MockFavoriteRepositoryInterface
	mockCartRepo       *mocks.MockShoppingCartRepositoryInterface
	mockFollowRepo     *mocks.MockFollowRepositoryInterface
	recipeService      *service.RecipeService
	validator          *validator.Validate
}

// SetupTest sets up the test suite
func (suite *RecipeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRecipeRepo = mocks.NewMockRecipeRepositoryInterface(suite.ctrl)
	suite.mockTagRepo = mocks.NewMockTagRepositoryInterface(suite.ctrl)
	suite.mockIngredientRepo = mocks.NewMockIngredientRepositoryInterface(suite.ctrl)
	suite.mockFavoriteRepo = mocks.NewMockFavoriteRepositoryInterface(suite.ctrl)
	suite.mockCartRepo = mocks.NewMockShoppingCartRepositoryInterface(suite.ctrl)
	suite.mockFollowRepo = mocks.NewMockFollowRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	annotator := service.NewAnnotator(
		suite.mockFavoriteRepo,
		suite.mockCartRepo,
		suite.mockFollowRepo,
		suite.mockRecipeRepo,
	)
	suite.recipeService = service.NewRecipeService(
		suite.mockRecipeRepo,
		suite.mockTagRepo,
		suite.mockIngredientRepo,
		annotator,
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *RecipeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RecipeServiceTestSuite) validCreateRequest(tagID, ingredientID uuid.UUID) *service.CreateRecipeRequest {
	return &service.CreateRecipeRequest{
		Name:        "Pancakes",
		Image:       "recipes/images/pancakes.png",
		Text:        "Mix and fry",
		CookingTime: 20,
		Tags:        []uuid.UUID{tagID},
		Ingredients: []service.RecipeIngredientInput{
			{ID: ingredientID, Amount: 200},
		},
	}
}

// TestCreateRecipe tests the happy path of creating a recipe
func (suite *RecipeServiceTestSuite) TestCreateRecipe() {
	authorID := uuid.New()
	tagID := uuid.New()
	ingredientID := uuid.New()
	recipeID := uuid.New()
	req := suite.validCreateRequest(tagID, ingredientID)

	suite.mockRecipeRepo.EXPECT().
		ExistsByAuthorAndName(authorID, req.Name).
		Return(false, nil).
		Times(1)

	suite.mockTagRepo.EXPECT().
		GetByIDs(req.Tags).
		Return([]models.Tag{{BaseModel: models.BaseModel{ID: tagID}, Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"}}, nil).
		Times(1)

	suite.mockIngredientRepo.EXPECT().
		GetByIDs([]uuid.UUID{ingredientID}).
		Return([]models.Ingredient{{BaseModel: models.BaseModel{ID: ingredientID}, Name: "flour", MeasurementUnit: "g"}}, nil).
		Times(1)

	suite.mockRecipeRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(recipe *models.Recipe) error {
			assert.Equal(suite.T(), authorID, recipe.AuthorID)
			assert.Len(suite.T(), recipe.Tags, 1)
			assert.Len(suite.T(), recipe.Ingredients, 1)
			recipe.ID = recipeID
			return nil
		}).
		Times(1)

	stored := &models.Recipe{
		BaseModel:   models.BaseModel{ID: recipeID},
		AuthorID:    authorID,
		Name:        req.Name,
		Image:       req.Image,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Author:      models.User{BaseModel: models.BaseModel{ID: authorID}, Username: "author"},
	}
	suite.mockRecipeRepo.EXPECT().
		GetByID(recipeID).
		Return(stored, nil).
		Times(1)

	// Author reads their own creation back, so viewer flags are loaded
	suite.mockFavoriteRepo.EXPECT().
		RecipeIDSet(authorID, []uuid.UUID{recipeID}).
		Return(map[uuid.UUID]bool{}, nil).
		Times(1)
	suite.mockCartRepo.EXPECT().
		RecipeIDSet(authorID, []uuid.UUID{recipeID}).
		Return(map[uuid.UUID]bool{}, nil).
		Times(1)
	suite.mockFollowRepo.EXPECT().
		FollowingIDSet(authorID, []uuid.UUID{authorID}).
		Return(map[uuid.UUID]bool{}, nil).
		Times(1)

	response, err := suite.recipeService.Create(authorID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), recipeID, response.ID)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.False(suite.T(), response.IsFavorited)
	assert.False(suite.T(), response.IsInShoppingCart)
}

// TestCreateRecipeDuplicateName tests that a duplicate (author, name) pair
// wins over every other defect in the payload and nothing is persisted
func (suite *RecipeServiceTestSuite) TestCreateRecipeDuplicateName() {
	authorID := uuid.New()
	ingredientID := uuid.New()
	req := suite.validCreateRequest(uuid.New(), ingredientID)
	// The payload also repeats an ingredient; the conflict must still win
	req.Ingredients = append(req.Ingredients, service.RecipeIngredientInput{ID: ingredientID, Amount: 50})

	suite.mockRecipeRepo.EXPECT().
		ExistsByAuthorAndName(authorID, req.Name).
		Return(true, nil).
		Times(1)

	response, err := suite.recipeService.Create(authorID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRecipeNameExists)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

// TestCreateRecipeRepeatedIngredient tests that a repeated ingredient is
// rejected before anything is resolved or persisted
func (suite *RecipeServiceTestSuite) TestCreateRecipeRepeatedIngredient() {
	authorID := uuid.New()
	ingredientID := uuid.New()
	req := suite.validCreateRequest(uuid.New(), ingredientID)
	req.Ingredients = append(req.Ingredients, service.RecipeIngredientInput{ID: ingredientID, Amount: 50})

	suite.mockRecipeRepo.EXPECT().
		ExistsByAuthorAndName(authorID, req.Name).
		Return(false, nil).
		Times(1)

	response, err := suite.recipeService.Create(authorID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "repeat")
}

// TestCreateRecipeAmountTooSmall tests that a zero amount is rejected
func (suite *RecipeServiceTestSuite) TestCreateRecipeAmountTooSmall() {
	authorID := uuid.New()
	req := suite.validCreateRequest(uuid.New(), uuid.New())
	req.Ingredients[0].Amount = 0

	suite.mockRecipeRepo.EXPECT().
		ExistsByAuthorAndName(authorID, req.Name).
		Return(false, nil).
		Times(1)

	response, err := suite.recipeService.Create(authorID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "amount")
}

// TestCreateRecipeCookingTimeTooSmall tests that a zero cooking time is rejected
func (suite *RecipeServiceTestSuite) TestCreateRecipeCookingTimeTooSmall() {
	authorID := uuid.New()
	req := suite.validCreateRequest(uuid.New(), uuid.New())
	req.CookingTime = 0

	suite.mockRecipeRepo.EXPECT().
		ExistsByAuthorAndName(authorID, req.Name).
		Return(false, nil).
		Times(1)

	response, err := suite.recipeService.Create(authorID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "cooking time")
}

// TestCreateRecipeUnknownTag tests that an unknown tag ID fails as not found
func (suite *RecipeServiceTestSuite) TestCreateRecipeUnknownTag() {
	authorID := uuid.New()
	req := suite.validCreateRequest(uuid.New(), uuid.New())

	suite.mockRecipeRepo.EXPECT().
		ExistsByAuthorAndName(authorID, req.Name).
		Return(false, nil).
		Times(1)

	suite.mockTagRepo.EXPECT().
		GetByIDs(req.Tags).
		Return([]models.Tag{}, nil).
		Times(1)

	response, err := suite.recipeService.Create(authorID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTagNotFound)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestCreateRecipeUnknownIngredient tests that an unknown ingredient ID fails
// as not found
func (suite *RecipeServiceTestSuite) TestCreateRecipeUnknownIngredient() {
	authorID := uuid.New()
	tagID := uuid.New()
	req := suite.validCreateRequest(tagID, uuid.New())

	suite.mockRecipeRepo.EXPECT().
		ExistsByAuthorAndName(authorID, req.Name).
		Return(false, nil).
		Times(1)

	suite.mockTagRepo.EXPECT().
		GetByIDs(req.Tags).
		Return([]models.Tag{{BaseModel: models.BaseModel{ID: tagID}}}, nil).
		Times(1)

	suite.mockIngredientRepo.EXPECT().
		GetByIDs(gomock.Any()).
		Return([]models.Ingredient{}, nil).
		Times(1)

	response, err := suite.recipeService.Create(authorID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrIngredientNotFound)
}

// TestGetByIDNotFound tests fetching a missing recipe
func (suite *RecipeServiceTestSuite) TestGetByIDNotFound() {
	recipeID := uuid.New()

	suite.mockRecipeRepo.EXPECT().
		GetByID(recipeID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.recipeService.GetByID(service.AnonymousViewer(), recipeID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRecipeNotFound)
}

// TestListAnonymousIgnoresMembershipFilters tests that is_favorited and
// is_in_shopping_cart are dropped for the anonymous viewer instead of
// leaking another user's state
func (suite *RecipeServiceTestSuite) TestListAnonymousIgnoresMembershipFilters() {
	suite.mockRecipeRepo.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(filter repository.RecipeListFilter) ([]models.Recipe, int64, error) {
			assert.Nil(suite.T(), filter.FavoritedBy)
			assert.Nil(suite.T(), filter.InCartOf)
			return []models.Recipe{}, 0, nil
		}).
		Times(1)

	response, err := suite.recipeService.List(service.AnonymousViewer(), &service.RecipeListQuery{
		IsFavorited:      true,
		IsInShoppingCart: true,
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Empty(suite.T(), response.Recipes)
	assert.Equal(suite.T(), int64(0), response.Total)
}

// TestListAuthenticatedAppliesMembershipFilters tests that a signed-in
// viewer's membership filters scope to their own rows
func (suite *RecipeServiceTestSuite) TestListAuthenticatedAppliesMembershipFilters() {
	viewerID := uuid.New()

	suite.mockRecipeRepo.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(filter repository.RecipeListFilter) ([]models.Recipe, int64, error) {
			if assert.NotNil(suite.T(), filter.FavoritedBy) {
				assert.Equal(suite.T(), viewerID, *filter.FavoritedBy)
			}
			assert.Nil(suite.T(), filter.InCartOf)
			return []models.Recipe{}, 0, nil
		}).
		Times(1)

	response, err := suite.recipeService.List(service.UserViewer(viewerID), &service.RecipeListQuery{
		IsFavorited: true,
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestUpdateRecipeNotOwner tests that a non-author update is refused before
// the payload is even validated
func (suite *RecipeServiceTestSuite) TestUpdateRecipeNotOwner() {
	userID := uuid.New()
	recipeID := uuid.New()
	badCookingTime := 0

	suite.mockRecipeRepo.EXPECT().
		GetByID(recipeID).
		Return(&models.Recipe{
			BaseModel: models.BaseModel{ID: recipeID},
			AuthorID:  uuid.New(),
		}, nil).
		Times(1)

	response, err := suite.recipeService.Update(userID, recipeID, &service.UpdateRecipeRequest{
		CookingTime: &badCookingTime,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestUpdateRecipeReplacesSets tests that a present tags or ingredients key
// replaces the full set
func (suite *RecipeServiceTestSuite) TestUpdateRecipeReplacesSets() {
	userID := uuid.New()
	recipeID := uuid.New()
	tagID := uuid.New()
	ingredientID := uuid.New()

	existing := &models.Recipe{
		BaseModel:   models.BaseModel{ID: recipeID},
		AuthorID:    userID,
		Name:        "Pancakes",
		Text:        "Mix and fry",
		CookingTime: 20,
		Author:      models.User{BaseModel: models.BaseModel{ID: userID}},
	}
	suite.mockRecipeRepo.EXPECT().
		GetByID(recipeID).
		Return(existing, nil).
		Times(2) // once before the write, once to format the response

	suite.mockTagRepo.EXPECT().
		GetByIDs([]uuid.UUID{tagID}).
		Return([]models.Tag{{BaseModel: models.BaseModel{ID: tagID}}}, nil).
		Times(1)

	suite.mockIngredientRepo.EXPECT().
		GetByIDs([]uuid.UUID{ingredientID}).
		Return([]models.Ingredient{{BaseModel: models.BaseModel{ID: ingredientID}}}, nil).
		Times(1)

	suite.mockRecipeRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(recipe *models.Recipe, ingredients []models.RecipeIngredient, tags []models.Tag) error {
			assert.Equal(suite.T(), "Waffles", recipe.Name)
			assert.Len(suite.T(), ingredients, 1)
			assert.Equal(suite.T(), ingredientID, ingredients[0].IngredientID)
			assert.Equal(suite.T(), 150, ingredients[0].Amount)
			assert.Len(suite.T(), tags, 1)
			return nil
		}).
		Times(1)

	suite.mockFavoriteRepo.EXPECT().
		RecipeIDSet(userID, []uuid.UUID{recipeID}).
		Return(map[uuid.UUID]bool{}, nil).
		Times(1)
	suite.mockCartRepo.EXPECT().
		RecipeIDSet(userID, []uuid.UUID{recipeID}).
		Return(map[uuid.UUID]bool{}, nil).
		Times(1)
	suite.mockFollowRepo.EXPECT().
		FollowingIDSet(userID, []uuid.UUID{userID}).
		Return(map[uuid.UUID]bool{}, nil).
		Times(1)

	name := "Waffles"
	response, err := suite.recipeService.Update(userID, recipeID, &service.UpdateRecipeRequest{
		Name: &name,
		Tags: []uuid.UUID{tagID},
		Ingredients: []service.RecipeIngredientInput{
			{ID: ingredientID, Amount: 150},
		},
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestDeleteRecipeNotOwner tests that a non-author delete is refused
func (suite *RecipeServiceTestSuite) TestDeleteRecipeNotOwner() {
	recipeID := uuid.New()

	suite.mockRecipeRepo.EXPECT().
		GetByID(recipeID).
		Return(&models.Recipe{
			BaseModel: models.BaseModel{ID: recipeID},
			AuthorID:  uuid.New(),
		}, nil).
		Times(1)

	err := suite.recipeService.Delete(uuid.New(), recipeID)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestDeleteRecipe tests the happy path of deleting a recipe
func (suite *RecipeServiceTestSuite) TestDeleteRecipe() {
	userID := uuid.New()
	recipeID := uuid.New()

	suite.mockRecipeRepo.EXPECT().
		GetByID(recipeID).
		Return(&models.Recipe{
			BaseModel: models.BaseModel{ID: recipeID},
			AuthorID:  userID,
		}, nil).
		Times(1)

	suite.mockRecipeRepo.EXPECT().
		Delete(recipeID).
		Return(nil).
		Times(1)

	err := suite.recipeService.Delete(userID, recipeID)

	assert.NoError(suite.T(), err)
}

// TestRecipeServiceTestSuite runs the test suite
func TestRecipeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeServiceTestSuite))
}
