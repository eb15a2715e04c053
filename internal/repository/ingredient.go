package repository

import (
	"recipeshare-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngredientRepository handles database operations for ingredients
type IngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// Create creates a new ingredient
func (r *IngredientRepository) Create(ingredient *models.Ingredient) error {
	return r.db.Create(ingredient).Error
}

// GetAll retrieves ingredients with pagination, optionally filtered by a
// case-insensitive name prefix
func (r *IngredientRepository) GetAll(namePrefix string, limit, offset int) ([]models.Ingredient, int64, error) {
	var ingredients []models.Ingredient
	var total int64

	query := r.db.Model(&models.Ingredient{})
	if namePrefix != "" {
		query = query.Where("name ILIKE ?", namePrefix+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name, measurement_unit").Limit(limit).Offset(offset).Find(&ingredients).Error
	return ingredients, total, err
}

// GetByID retrieves an ingredient by ID
func (r *IngredientRepository) GetByID(id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.First(&ingredient, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// GetByIDs retrieves ingredients matching the given IDs
func (r *IngredientRepository) GetByIDs(ids []uuid.UUID) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&ingredients).Error
	return ingredients, err
}

// CountRecipeReferences counts the recipe ingredient rows referencing an ingredient
func (r *IngredientRepository) CountRecipeReferences(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.RecipeIngredient{}).Where("ingredient_id = ?", id).Count(&count).Error
	return count, err
}

// Delete removes an ingredient
func (r *IngredientRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Ingredient{}, "id = ?", id).Error
}
