package models

import (
	"github.com/google/uuid"
)

// RecipeIngredient links a recipe to a catalog ingredient with a quantity.
// A recipe lists each ingredient at most once. The ingredient side is
// RESTRICT so catalog entries referenced by recipes cannot be deleted.
type RecipeIngredient struct {
	BaseModel
	RecipeID     uuid.UUID `json:"recipe_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_recipe_ingredient" validate:"required"`
	IngredientID uuid.UUID `json:"ingredient_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_recipe_ingredient" validate:"required"`
	Amount       int       `json:"amount" gorm:"not null" validate:"required,min=1"`

	// Relationships
	Recipe     Recipe     `json:"recipe,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Ingredient Ingredient `json:"ingredient,omitempty" gorm:"foreignKey:IngredientID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for RecipeIngredient
func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
