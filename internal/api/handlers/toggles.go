package handlers

import (
	"net/http"

	"recipeshare-backend/internal/auth"
	"recipeshare-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FavoriteHandler handles HTTP requests for the favorite toggle
type FavoriteHandler struct {
	favoriteService service.FavoriteServiceInterface
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favoriteService service.FavoriteServiceInterface) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

// Add favorites a recipe
// @Summary Favorite a recipe
// @Description Add a recipe to the user's favorites
// @Tags favorites
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Success 201 {object} service.RecipePreviewResponse "Successfully favorited"
// @Failure 400 {object} ErrorResponse "Invalid recipe ID"
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Failure 409 {object} ErrorResponse "Already favorited"
// @Security BearerAuth
// @Router /recipes/{id}/favorite [post]
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	preview, err := h.favoriteService.Add(userID, recipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, preview)
}

// Remove unfavorites a recipe
// @Summary Unfavorite a recipe
// @Description Remove a recipe from the user's favorites
// @Tags favorites
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Success 204 "Successfully unfavorited"
// @Failure 400 {object} ErrorResponse "Invalid recipe ID"
// @Failure 404 {object} ErrorResponse "Recipe or favorite not found"
// @Security BearerAuth
// @Router /recipes/{id}/favorite [delete]
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	if err := h.favoriteService.Remove(userID, recipeID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ShoppingCartHandler handles HTTP requests for the shopping cart toggle
type ShoppingCartHandler struct {
	cartService service.ShoppingCartServiceInterface
}

// NewShoppingCartHandler creates a new shopping cart handler
func NewShoppingCartHandler(cartService service.ShoppingCartServiceInterface) *ShoppingCartHandler {
	return &ShoppingCartHandler{
		cartService: cartService,
	}
}

// Add puts a recipe into the cart
// @Summary Add a recipe to the cart
// @Description Queue a recipe for the shopping list
// @Tags shopping-cart
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Success 201 {object} service.RecipePreviewResponse "Successfully added to cart"
// @Failure 400 {object} ErrorResponse "Invalid recipe ID"
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Failure 409 {object} ErrorResponse "Already in cart"
// @Security BearerAuth
// @Router /recipes/{id}/shopping_cart [post]
func (h *ShoppingCartHandler) Add(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	preview, err := h.cartService.Add(userID, recipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, preview)
}

// Remove takes a recipe out of the cart
// @Summary Remove a recipe from the cart
// @Description Remove a recipe from the shopping list queue
// @Tags shopping-cart
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Success 204 "Successfully removed from cart"
// @Failure 400 {object} ErrorResponse "Invalid recipe ID"
// @Failure 404 {object} ErrorResponse "Recipe or cart entry not found"
// @Security BearerAuth
// @Router /recipes/{id}/shopping_cart [delete]
func (h *ShoppingCartHandler) Remove(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	if err := h.cartService.Remove(userID, recipeID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
