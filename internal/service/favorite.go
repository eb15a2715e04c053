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

// FavoriteService provides the favorite toggle: add fails on a duplicate,
// remove fails when nothing is there
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepositoryInterface
	recipeRepo   repository.RecipeRepositoryInterface
}

// Ensure FavoriteService implements FavoriteServiceInterface
var _ FavoriteServiceInterface = (*FavoriteService)(nil)

// NewFavoriteService creates a new FavoriteService
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepositoryInterface,
	recipeRepo repository.RecipeRepositoryInterface,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		recipeRepo:   recipeRepo,
	}
}

// Add favorites a recipe for the user
func (s *FavoriteService) Add(userID, recipeID uuid.UUID) (*RecipePreviewResponse, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	exists, err := s.favoriteRepo.Exists(userID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check favorite: %w", err)
	}
	if exists {
		return nil, apperrors.ErrFavoriteExists
	}

	favorite := models.Favorite{UserID: userID, RecipeID: recipeID}
	if err := s.favoriteRepo.Create(&favorite); err != nil {
		// Concurrent add lost the race on the pair constraint
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrFavoriteExists
		}
		return nil, fmt.Errorf("failed to create favorite: %w", err)
	}

	resp := toRecipePreviewResponse(recipe)
	return &resp, nil
}

// Remove unfavorites a recipe for the user
func (s *FavoriteService) Remove(userID, recipeID uuid.UUID) error {
	if _, err := s.recipeRepo.GetByID(recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecipeNotFound
		}
		return fmt.Errorf("failed to get recipe: %w", err)
	}

	exists, err := s.favoriteRepo.Exists(userID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to check favorite: %w", err)
	}
	if !exists {
		return apperrors.ErrFavoriteNotFound
	}

	if err := s.favoriteRepo.Delete(userID, recipeID); err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return nil
}
