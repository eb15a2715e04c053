package handlers

import (
	"net/http"
	"testing"

	apperrors "recipeshare-backend/internal/errors"
	"recipeshare-backend/internal/mocks"
	"recipeshare-backend/internal/service"
	"recipeshare-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TogglesHandlerTestSuite defines the test suite for the favorite and
// shopping cart handlers
type TogglesHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockFavoriteService *mocks.MockFavoriteServiceInterface
	mockCartService     *mocks.MockShoppingCartServiceInterface
	httpSuite           *testutils.HTTPTestSuite
	userID              uuid.UUID
}

// SetupTest sets up the test suite
func (suite *TogglesHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockFavoriteService = mocks.NewMockFavoriteServiceInterface(suite.ctrl)
	suite.mockCartService = mocks.NewMockShoppingCartServiceInterface(suite.ctrl)
	suite.userID = uuid.New()

	favoriteHandler := NewFavoriteHandler(suite.mockFavoriteService)
	cartHandler := NewShoppingCartHandler(suite.mockCartService)

	suite.httpSuite = testutils.SetupHTTPTest()

	api := suite.httpSuite.Router.Group("/api")
	recipes := api.Group("/recipes")
	{
		recipes.POST("/:id/favorite", identityMiddleware(suite.userID), favoriteHandler.Add)
		recipes.DELETE("/:id/favorite", identityMiddleware(suite.userID), favoriteHandler.Remove)
		recipes.POST("/:id/anonymous_favorite", favoriteHandler.Add)
		recipes.POST("/:id/shopping_cart", identityMiddleware(suite.userID), cartHandler.Add)
		recipes.DELETE("/:id/shopping_cart", identityMiddleware(suite.userID), cartHandler.Remove)
	}
}

// TearDownTest cleans up after each test
func (suite *TogglesHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestAddFavorite tests the created favorite response
func (suite *TogglesHandlerTestSuite) TestAddFavorite() {
	recipeID := uuid.New()
	preview := &service.RecipePreviewResponse{
		ID:          recipeID,
		Name:        "Pancakes",
		CookingTime: 20,
	}

	suite.mockFavoriteService.EXPECT().
		Add(suite.userID, recipeID).
		Return(preview, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/recipes/"+recipeID.String()+"/favorite", nil)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "Pancakes")
}

// TestAddFavoriteInvalidID tests that a malformed recipe ID is 400
func (suite *TogglesHandlerTestSuite) TestAddFavoriteInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/recipes/not-a-uuid/favorite", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid recipe ID")
}

// TestAddFavoriteUnauthenticated tests that the toggle requires identity
func (suite *TogglesHandlerTestSuite) TestAddFavoriteUnauthenticated() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/recipes/"+uuid.New().String()+"/anonymous_favorite", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestAddFavoriteDuplicate tests that a repeated add is 409
func (suite *TogglesHandlerTestSuite) TestAddFavoriteDuplicate() {
	recipeID := uuid.New()

	suite.mockFavoriteService.EXPECT().
		Add(suite.userID, recipeID).
		Return(nil, apperrors.ErrFavoriteExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/recipes/"+recipeID.String()+"/favorite", nil)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestRemoveFavorite tests the no-content remove path
func (suite *TogglesHandlerTestSuite) TestRemoveFavorite() {
	recipeID := uuid.New()

	suite.mockFavoriteService.EXPECT().
		Remove(suite.userID, recipeID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/recipes/"+recipeID.String()+"/favorite", nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestRemoveFavoriteAbsent tests that removing a missing favorite is 404
func (suite *TogglesHandlerTestSuite) TestRemoveFavoriteAbsent() {
	recipeID := uuid.New()

	suite.mockFavoriteService.EXPECT().
		Remove(suite.userID, recipeID).
		Return(apperrors.ErrFavoriteNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/recipes/"+recipeID.String()+"/favorite", nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestAddToCart tests the created cart entry response
func (suite *TogglesHandlerTestSuite) TestAddToCart() {
	recipeID := uuid.New()
	preview := &service.RecipePreviewResponse{
		ID:          recipeID,
		Name:        "Borscht",
		CookingTime: 90,
	}

	suite.mockCartService.EXPECT().
		Add(suite.userID, recipeID).
		Return(preview, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/recipes/"+recipeID.String()+"/shopping_cart", nil)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "Borscht")
}

// TestAddToCartRecipeNotFound tests that an unknown recipe is 404
func (suite *TogglesHandlerTestSuite) TestAddToCartRecipeNotFound() {
	recipeID := uuid.New()

	suite.mockCartService.EXPECT().
		Add(suite.userID, recipeID).
		Return(nil, apperrors.ErrRecipeNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/recipes/"+recipeID.String()+"/shopping_cart", nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestRemoveFromCartAbsent tests that removing a missing cart entry is 404
func (suite *TogglesHandlerTestSuite) TestRemoveFromCartAbsent() {
	recipeID := uuid.New()

	suite.mockCartService.EXPECT().
		Remove(suite.userID, recipeID).
		Return(apperrors.ErrCartEntryNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/recipes/"+recipeID.String()+"/shopping_cart", nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestTogglesHandlerTestSuite runs the test suite
func TestTogglesHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TogglesHandlerTestSuite))
}
