package service

import (
	"errors"
	"fmt"
	"time"

	apperrors "recipeshare-backend/internal/errors"

	"recipeshare-backend/internal/database/models"
	"recipeshare-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeService provides recipe business logic: ordered validation,
// transactional writes and viewer-scoped reads
type RecipeService struct {
	recipeRepo     repository.RecipeRepositoryInterface
	tagRepo        repository.TagRepositoryInterface
	ingredientRepo repository.IngredientRepositoryInterface
	annotator      *Annotator
	validator      *validator.Validate
}

// Ensure RecipeService implements RecipeServiceInterface
var _ RecipeServiceInterface = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService
func NewRecipeService(
	recipeRepo repository.RecipeRepositoryInterface,
	tagRepo repository.TagRepositoryInterface,
	ingredientRepo repository.IngredientRepositoryInterface,
	annotator *Annotator,
	validator *validator.Validate,
) *RecipeService {
	return &RecipeService{
		recipeRepo:     recipeRepo,
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
		annotator:      annotator,
		validator:      validator,
	}
}

// RecipeIngredientInput is one (ingredient, amount) pair in a write payload
type RecipeIngredientInput struct {
	ID     uuid.UUID `json:"id" validate:"required"`
	Amount int       `json:"amount" validate:"required"`
}

// CreateRecipeRequest represents the payload for creating a recipe
type CreateRecipeRequest struct {
	Name        string                  `json:"name" validate:"required,max=200"`
	Image       string                  `json:"image" validate:"max=500"`
	Text        string                  `json:"text" validate:"required"`
	CookingTime int                     `json:"cooking_time" validate:"required"`
	Tags        []uuid.UUID             `json:"tags" validate:"required,min=1"`
	Ingredients []RecipeIngredientInput `json:"ingredients" validate:"required,min=1"`
}

// UpdateRecipeRequest represents the payload for updating a recipe.
// Nil fields are left untouched; a non-nil Tags or Ingredients slice
// replaces the full set.
type UpdateRecipeRequest struct {
	Name        *string                 `json:"name" validate:"omitempty,max=200"`
	Image       *string                 `json:"image" validate:"omitempty,max=500"`
	Text        *string                 `json:"text"`
	CookingTime *int                    `json:"cooking_time"`
	Tags        []uuid.UUID             `json:"tags"`
	Ingredients []RecipeIngredientInput `json:"ingredients"`
}

// RecipeIngredientResponse is one ingredient line of a recipe response
type RecipeIngredientResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MeasurementUnit string    `json:"measurement_unit"`
	Amount          int       `json:"amount"`
}

// RecipeResponse represents a single recipe in API responses
type RecipeResponse struct {
	ID               uuid.UUID                  `json:"id"`
	Tags             []TagResponse              `json:"tags"`
	Author           UserResponse               `json:"author"`
	Ingredients      []RecipeIngredientResponse `json:"ingredients"`
	IsFavorited      bool                       `json:"is_favorited"`
	IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
	Name             string                     `json:"name"`
	Image            string                     `json:"image"`
	Text             string                     `json:"text"`
	CookingTime      int                        `json:"cooking_time"`
	PubDate          time.Time                  `json:"pub_date"`
}

// RecipePreviewResponse is the short recipe form used by toggle responses
// and subscription listings
type RecipePreviewResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	CookingTime int       `json:"cooking_time"`
}

// RecipeListQuery narrows the recipe listing. The membership filters apply
// only to authenticated viewers.
type RecipeListQuery struct {
	Author           *uuid.UUID
	TagSlugs         []string
	IsFavorited      bool
	IsInShoppingCart bool
	Page             int
	PageSize         int
}

// RecipeListResponse represents a paginated list of recipes
type RecipeListResponse struct {
	Recipes  []RecipeResponse `json:"recipes"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create validates and persists a new recipe for the author. Either every
// row lands or none do.
func (s *RecipeService) Create(authorID uuid.UUID, req *CreateRecipeRequest) (*RecipeResponse, error) {
	exists, err := s.recipeRepo.ExistsByAuthorAndName(authorID, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check recipe name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrRecipeNameExists
	}

	if err := validateRecipePayload(req.Ingredients, req.CookingTime); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	tags, err := s.resolveTags(req.Tags)
	if err != nil {
		return nil, err
	}
	items, err := s.resolveIngredients(req.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Image:       req.Image,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Tags:        tags,
		Ingredients: items,
	}
	if err := s.recipeRepo.Create(&recipe); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrRecipeNameExists
		}
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	return s.GetByID(UserViewer(authorID), recipe.ID)
}

// GetByID retrieves a recipe as seen by the viewer
func (s *RecipeService) GetByID(viewer Viewer, id uuid.UUID) (*RecipeResponse, error) {
	recipe, err := s.recipeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	responses, err := s.annotate(viewer, []models.Recipe{*recipe})
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// List retrieves recipes newest first as seen by the viewer
func (s *RecipeService) List(viewer Viewer, query *RecipeListQuery) (*RecipeListResponse, error) {
	page := query.Page
	pageSize := query.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	filter := repository.RecipeListFilter{
		AuthorID: query.Author,
		TagSlugs: query.TagSlugs,
		Limit:    pageSize,
		Offset:   (page - 1) * pageSize,
	}
	// Membership filters are meaningless for the anonymous viewer
	if viewer.Authenticated {
		if query.IsFavorited {
			id := viewer.ID
			filter.FavoritedBy = &id
		}
		if query.IsInShoppingCart {
			id := viewer.ID
			filter.InCartOf = &id
		}
	}

	recipes, total, err := s.recipeRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	responses, err := s.annotate(viewer, recipes)
	if err != nil {
		return nil, err
	}

	return &RecipeListResponse{
		Recipes:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies an owner-only partial update. A present tags or
// ingredients key replaces the full set atomically.
func (s *RecipeService) Update(userID, recipeID uuid.UUID, req *UpdateRecipeRequest) (*RecipeResponse, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if recipe.AuthorID != userID {
		return nil, apperrors.ErrNotRecipeAuthor
	}

	cookingTime := recipe.CookingTime
	if req.CookingTime != nil {
		cookingTime = *req.CookingTime
	}
	if err := validateRecipePayload(req.Ingredients, cookingTime); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	var tags []models.Tag
	if req.Tags != nil {
		if tags, err = s.resolveTags(req.Tags); err != nil {
			return nil, err
		}
	}
	var items []models.RecipeIngredient
	if req.Ingredients != nil {
		if items, err = s.resolveIngredients(req.Ingredients); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		recipe.Name = *req.Name
	}
	if req.Image != nil {
		recipe.Image = *req.Image
	}
	if req.Text != nil {
		recipe.Text = *req.Text
	}
	recipe.CookingTime = cookingTime

	if err := s.recipeRepo.Update(recipe, items, tags); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrRecipeNameExists
		}
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	return s.GetByID(UserViewer(userID), recipeID)
}

// Delete removes a recipe, owner-only
func (s *RecipeService) Delete(userID, recipeID uuid.UUID) error {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecipeNotFound
		}
		return fmt.Errorf("failed to get recipe: %w", err)
	}
	if recipe.AuthorID != userID {
		return apperrors.ErrNotRecipeAuthor
	}

	if err := s.recipeRepo.Delete(recipeID); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}

// validateRecipePayload enforces the write invariants shared by create and
// update: no repeated ingredients, every amount at least 1, cooking time at
// least 1. Nil ingredients (update leaving the set untouched) skips the
// ingredient checks.
func validateRecipePayload(ingredients []RecipeIngredientInput, cookingTime int) error {
	if ingredients != nil {
		if len(ingredients) == 0 {
			return apperrors.NewValidationError("ingredients", "at least one ingredient is required")
		}
		seen := make(map[uuid.UUID]bool, len(ingredients))
		for _, item := range ingredients {
			if seen[item.ID] {
				return apperrors.NewValidationError("ingredients", "ingredients must not repeat")
			}
			seen[item.ID] = true
		}
		for _, item := range ingredients {
			if item.Amount < 1 {
				return apperrors.NewValidationError("ingredients", "amount must be at least 1")
			}
		}
	}
	if cookingTime < 1 {
		return apperrors.NewValidationError("cooking_time", "cooking time must be at least 1")
	}
	return nil
}

// resolveTags loads the referenced tags, failing when any ID is unknown
func (s *RecipeService) resolveTags(ids []uuid.UUID) ([]models.Tag, error) {
	tags, err := s.tagRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	if len(tags) != len(ids) {
		return nil, apperrors.ErrTagNotFound
	}
	return tags, nil
}

// resolveIngredients loads the referenced ingredients and builds recipe
// ingredient rows, failing when any ID is unknown
func (s *RecipeService) resolveIngredients(inputs []RecipeIngredientInput) ([]models.RecipeIngredient, error) {
	ids := make([]uuid.UUID, len(inputs))
	for i, item := range inputs {
		ids[i] = item.ID
	}
	found, err := s.ingredientRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredients: %w", err)
	}
	if len(found) != len(inputs) {
		return nil, apperrors.ErrIngredientNotFound
	}

	items := make([]models.RecipeIngredient, len(inputs))
	for i, item := range inputs {
		items[i] = models.RecipeIngredient{
			IngredientID: item.ID,
			Amount:       item.Amount,
		}
	}
	return items, nil
}

// annotate formats a page of recipes with viewer flags using one batched
// query per flag family
func (s *RecipeService) annotate(viewer Viewer, recipes []models.Recipe) ([]RecipeResponse, error) {
	recipeIDs := make([]uuid.UUID, len(recipes))
	authorIDs := make([]uuid.UUID, 0, len(recipes))
	seenAuthors := make(map[uuid.UUID]bool)
	for i, r := range recipes {
		recipeIDs[i] = r.ID
		if !seenAuthors[r.AuthorID] {
			seenAuthors[r.AuthorID] = true
			authorIDs = append(authorIDs, r.AuthorID)
		}
	}

	flags, err := s.annotator.RecipeFlags(viewer, recipeIDs)
	if err != nil {
		return nil, err
	}
	subscribed, err := s.annotator.SubscribedSet(viewer, authorIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]RecipeResponse, len(recipes))
	for i := range recipes {
		responses[i] = toRecipeResponse(&recipes[i], flags, subscribed)
	}
	return responses, nil
}

// toRecipeResponse converts a Recipe model to API response
func toRecipeResponse(recipe *models.Recipe, flags *RecipeFlags, subscribed map[uuid.UUID]bool) RecipeResponse {
	tags := make([]TagResponse, len(recipe.Tags))
	for i, t := range recipe.Tags {
		tags[i] = toTagResponse(&t)
	}

	ingredients := make([]RecipeIngredientResponse, len(recipe.Ingredients))
	for i, item := range recipe.Ingredients {
		ingredients[i] = RecipeIngredientResponse{
			ID:              item.IngredientID,
			Name:            item.Ingredient.Name,
			MeasurementUnit: item.Ingredient.MeasurementUnit,
			Amount:          item.Amount,
		}
	}

	return RecipeResponse{
		ID:               recipe.ID,
		Tags:             tags,
		Author:           toUserResponse(&recipe.Author, subscribed[recipe.AuthorID]),
		Ingredients:      ingredients,
		IsFavorited:      flags.Favorited[recipe.ID],
		IsInShoppingCart: flags.InCart[recipe.ID],
		Name:             recipe.Name,
		Image:            recipe.Image,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
		PubDate:          recipe.PubDate,
	}
}

// toRecipePreviewResponse converts a Recipe model to the short form
func toRecipePreviewResponse(recipe *models.Recipe) RecipePreviewResponse {
	return RecipePreviewResponse{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}
}
