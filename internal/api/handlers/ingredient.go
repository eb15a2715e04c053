package handlers

import (
	"net/http"
	"strconv"

	"recipeshare-backend/internal/auth"
	"recipeshare-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IngredientHandler handles HTTP requests for ingredients
type IngredientHandler struct {
	ingredientService service.IngredientServiceInterface
}

// NewIngredientHandler creates a new ingredient handler
func NewIngredientHandler(ingredientService service.IngredientServiceInterface) *IngredientHandler {
	return &IngredientHandler{
		ingredientService: ingredientService,
	}
}

// List retrieves ingredients, optionally filtered by name prefix
// @Summary List ingredients
// @Description Get catalog ingredients with pagination and optional name prefix search
// @Tags ingredients
// @Accept json
// @Produce json
// @Param name query string false "Name prefix"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(1000)
// @Success 200 {object} service.IngredientListResponse "Successfully retrieved ingredients"
// @Router /ingredients [get]
func (h *IngredientHandler) List(c *gin.Context) {
	name := c.Query("name")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "1000"))

	ingredients, err := h.ingredientService.GetAll(name, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ingredients)
}

// Get retrieves an ingredient by ID
// @Summary Get ingredient by ID
// @Description Get a specific catalog ingredient by its UUID
// @Tags ingredients
// @Accept json
// @Produce json
// @Param id path string true "Ingredient ID (UUID)"
// @Success 200 {object} service.IngredientResponse "Successfully retrieved ingredient"
// @Failure 400 {object} ErrorResponse "Invalid ingredient ID"
// @Failure 404 {object} ErrorResponse "Ingredient not found"
// @Router /ingredients/{id} [get]
func (h *IngredientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ingredient ID"})
		return
	}

	ingredient, err := h.ingredientService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ingredient)
}

// Delete removes a catalog ingredient
// @Summary Delete ingredient
// @Description Remove a catalog ingredient that no recipe references
// @Tags ingredients
// @Accept json
// @Produce json
// @Param id path string true "Ingredient ID (UUID)"
// @Success 204 "Successfully deleted"
// @Failure 400 {object} ErrorResponse "Invalid ingredient ID or ingredient still referenced"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Ingredient not found"
// @Security BearerAuth
// @Router /ingredients/{id} [delete]
func (h *IngredientHandler) Delete(c *gin.Context) {
	if _, ok := auth.GetUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ingredient ID"})
		return
	}

	if err := h.ingredientService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
