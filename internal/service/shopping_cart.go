package service

import (
	"errors"
	"fmt"

	apperrors "recipeshare-backend/internal/errors"

	"recipeshare-backend/internal/database/models"
	"recipeshare-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShoppingCartService provides the shopping cart toggle
type ShoppingCartService struct {
	cartRepo   repository.ShoppingCartRepositoryInterface
	recipeRepo repository.RecipeRepositoryInterface
}

// Ensure ShoppingCartService implements ShoppingCartServiceInterface
var _ ShoppingCartServiceInterface = (*ShoppingCartService)(nil)

// NewShoppingCartService creates a new ShoppingCartService
func NewShoppingCartService(
	cartRepo repository.ShoppingCartRepositoryInterface,
	recipeRepo repository.RecipeRepositoryInterface,
) *ShoppingCartService {
	return &ShoppingCartService{
		cartRepo:   cartRepo,
		recipeRepo: recipeRepo,
	}
}

// Add puts a recipe into the user's cart
func (s *ShoppingCartService) Add(userID, recipeID uuid.UUID) (*RecipePreviewResponse, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	exists, err := s.cartRepo.Exists(userID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check cart entry: %w", err)
	}
	if exists {
		return nil, apperrors.ErrCartEntryExists
	}

	entry := models.ShoppingCartEntry{UserID: userID, RecipeID: recipeID}
	if err := s.cartRepo.Create(&entry); err != nil {
		// Concurrent add lost the race on the pair constraint
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrCartEntryExists
		}
		return nil, fmt.Errorf("failed to create cart entry: %w", err)
	}

	resp := toRecipePreviewResponse(recipe)
	return &resp, nil
}

// Remove takes a recipe out of the user's cart
func (s *ShoppingCartService) Remove(userID, recipeID uuid.UUID) error {
	if _, err := s.recipeRepo.GetByID(recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecipeNotFound
		}
		return fmt.Errorf("failed to get recipe: %w", err)
	}

	exists, err := s.cartRepo.Exists(userID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to check cart entry: %w", err)
	}
	if !exists {
		return apperrors.ErrCartEntryNotFound
	}

	if err := s.cartRepo.Delete(userID, recipeID); err != nil {
		return fmt.Errorf("failed to delete cart entry: %w", err)
	}
	return nil
}
