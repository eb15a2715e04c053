package models

import (
	"github.com/google/uuid"
)

// Favorite marks a recipe as favorited by a user. One row per (user, recipe).
type Favorite struct {
	BaseModel
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_favorites_user_recipe" validate:"required"`
	RecipeID uuid.UUID `json:"recipe_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_favorites_user_recipe" validate:"required"`

	// Relationships
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe Recipe `json:"recipe,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Favorite
func (Favorite) TableName() string {
	return "favorites"
}
