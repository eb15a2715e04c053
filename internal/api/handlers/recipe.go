package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"recipeshare-backend/internal/auth"
	"recipeshare-backend/internal/render"
	"recipeshare-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RecipeHandler handles HTTP requests for recipes and the shopping list export
type RecipeHandler struct {
	recipeService       service.RecipeServiceInterface
	shoppingListService service.ShoppingListServiceInterface
	shoppingListTitle   string
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(
	recipeService service.RecipeServiceInterface,
	shoppingListService service.ShoppingListServiceInterface,
	shoppingListTitle string,
) *RecipeHandler {
	return &RecipeHandler{
		recipeService:       recipeService,
		shoppingListService: shoppingListService,
		shoppingListTitle:   shoppingListTitle,
	}
}

// List retrieves recipes newest first
// @Summary List recipes
// @Description Get recipes with pagination, newest first. Filters: author, tags (repeatable slug, match any), is_favorited, is_in_shopping_cart. Membership filters apply only to authenticated viewers.
// @Tags recipes
// @Accept json
// @Produce json
// @Param author query string false "Author ID (UUID)"
// @Param tags query []string false "Tag slugs" collectionFormat(multi)
// @Param is_favorited query bool false "Only favorited recipes"
// @Param is_in_shopping_cart query bool false "Only recipes in the cart"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} service.RecipeListResponse "Successfully retrieved recipes"
// @Failure 400 {object} ErrorResponse "Invalid author ID"
// @Router /recipes [get]
func (h *RecipeHandler) List(c *gin.Context) {
	query := service.RecipeListQuery{
		TagSlugs:         c.QueryArray("tags"),
		IsFavorited:      c.Query("is_favorited") == "1" || c.Query("is_favorited") == "true",
		IsInShoppingCart: c.Query("is_in_shopping_cart") == "1" || c.Query("is_in_shopping_cart") == "true",
	}
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PageSize, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	if authorStr := c.Query("author"); authorStr != "" {
		authorID, err := uuid.Parse(authorStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid author ID"})
			return
		}
		query.Author = &authorID
	}

	recipes, err := h.recipeService.List(viewerFromContext(c), &query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// Create creates a new recipe
// @Summary Create a recipe
// @Description Create a recipe with its ingredients and tags in one transaction
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body service.CreateRecipeRequest true "Recipe data"
// @Success 201 {object} service.RecipeResponse "Successfully created recipe"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Referenced tag or ingredient not found"
// @Failure 409 {object} ErrorResponse "Recipe name already used by this author"
// @Security BearerAuth
// @Router /recipes [post]
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// Get retrieves a recipe by ID
// @Summary Get recipe by ID
// @Description Get a specific recipe by its UUID, annotated for the viewer
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Success 200 {object} service.RecipeResponse "Successfully retrieved recipe"
// @Failure 400 {object} ErrorResponse "Invalid recipe ID"
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Router /recipes/{id} [get]
func (h *RecipeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	recipe, err := h.recipeService.GetByID(viewerFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// Update applies an owner-only partial update
// @Summary Update a recipe
// @Description Update recipe fields; a present tags or ingredients key replaces the full set
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Param recipe body service.UpdateRecipeRequest true "Fields to update"
// @Success 200 {object} service.RecipeResponse "Successfully updated recipe"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Not the recipe author"
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Security BearerAuth
// @Router /recipes/{id} [patch]
func (h *RecipeHandler) Update(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	var req service.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.Update(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// Delete removes a recipe
// @Summary Delete a recipe
// @Description Delete a recipe, owner-only
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Success 204 "Successfully deleted recipe"
// @Failure 400 {object} ErrorResponse "Invalid recipe ID"
// @Failure 403 {object} ErrorResponse "Not the recipe author"
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Security BearerAuth
// @Router /recipes/{id} [delete]
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	if err := h.recipeService.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DownloadShoppingCart exports the consolidated shopping list
// @Summary Download the shopping list
// @Description Download the consolidated ingredients of every recipe in the cart as PDF (default) or plain text. An empty cart yields a header-only document.
// @Tags recipes
// @Accept json
// @Produce application/pdf
// @Param format query string false "Document format" Enums(pdf, txt) default(pdf)
// @Success 200 {file} file "Shopping list document"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /recipes/download_shopping_cart [get]
func (h *RecipeHandler) DownloadShoppingCart(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	items, err := h.shoppingListService.Build(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	renderer := render.ForFormat(c.Query("format"))
	document, err := renderer.Render(h.shoppingListTitle, items)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("shopping_list.%s", renderer.Extension())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, renderer.ContentType(), document)
}
