package repository

import (
	"recipeshare-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShoppingCartRepository handles database operations for shopping cart entries
type ShoppingCartRepository struct {
	db *gorm.DB
}

// NewShoppingCartRepository creates a new shopping cart repository
func NewShoppingCartRepository(db *gorm.DB) *ShoppingCartRepository {
	return &ShoppingCartRepository{db: db}
}

// Create creates a new shopping cart entry
func (r *ShoppingCartRepository) Create(entry *models.ShoppingCartEntry) error {
	return r.db.Create(entry).Error
}

// Delete removes a shopping cart entry
func (r *ShoppingCartRepository) Delete(userID, recipeID uuid.UUID) error {
	return r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.ShoppingCartEntry{}).Error
}

// Exists checks if a shopping cart entry exists
func (r *ShoppingCartRepository) Exists(userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ShoppingCartEntry{}).Where("user_id = ? AND recipe_id = ?", userID, recipeID).Count(&count).Error
	return count > 0, err
}

// RecipeIDSet returns which of the given recipes are in the user's cart,
// in one batched query
func (r *ShoppingCartRepository) RecipeIDSet(userID uuid.UUID, recipeIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	set := make(map[uuid.UUID]bool)
	if len(recipeIDs) == 0 {
		return set, nil
	}

	var ids []uuid.UUID
	err := r.db.Model(&models.ShoppingCartEntry{}).
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

// IngredientRows returns the flat (name, unit, amount) rows of every
// ingredient of every recipe in the user's cart, in one join query.
// Consolidation happens in the service layer.
func (r *ShoppingCartRepository) IngredientRows(userID uuid.UUID) ([]CartIngredientRow, error) {
	var rows []CartIngredientRow
	err := r.db.Model(&models.RecipeIngredient{}).
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, recipe_ingredients.amount AS amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_cart_entries ON shopping_cart_entries.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_cart_entries.user_id = ?", userID).
		Scan(&rows).Error
	return rows, err
}
