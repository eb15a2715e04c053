package repository

import (
	"recipeshare-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FavoriteRepository handles database operations for favorites
type FavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create creates a new favorite
func (r *FavoriteRepository) Create(favorite *models.Favorite) error {
	return r.db.Create(favorite).Error
}

// Delete removes a favorite
func (r *FavoriteRepository) Delete(userID, recipeID uuid.UUID) error {
	return r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.Favorite{}).Error
}

// Exists checks if a favorite exists
func (r *FavoriteRepository) Exists(userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).Where("user_id = ? AND recipe_id = ?", userID, recipeID).Count(&count).Error
	return count > 0, err
}

// RecipeIDSet returns which of the given recipes the user has favorited,
// in one batched query
func (r *FavoriteRepository) RecipeIDSet(userID uuid.UUID, recipeIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	set := make(map[uuid.UUID]bool)
	if len(recipeIDs) == 0 {
		return set, nil
	}

	var ids []uuid.UUID
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
