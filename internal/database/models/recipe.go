package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is an authored dish. An author cannot publish two recipes with the
// same name; pub_date is stamped once at creation and never updated.
type Recipe struct {
	BaseModel
	AuthorID    uuid.UUID `json:"author_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_recipes_author_name" validate:"required"`
	Name        string    `json:"name" gorm:"not null;size:200;uniqueIndex:idx_recipes_author_name" validate:"required,max=200"`
	Image       string    `json:"image" gorm:"size:500"`
	Text        string    `json:"text" gorm:"type:text;not null" validate:"required"`
	CookingTime int       `json:"cooking_time" gorm:"not null" validate:"required,min=1"`
	PubDate     time.Time `json:"pub_date" gorm:"not null;index:idx_recipes_pub_date,sort:desc"`

	// Relationships
	Author      User               `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Tags        []Tag              `json:"tags,omitempty" gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE"`
	Ingredients []RecipeIngredient `json:"ingredients,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Recipe
func (Recipe) TableName() string {
	return "recipes"
}

// BeforeCreate stamps pub_date once; it is never touched on update.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if err := r.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if r.PubDate.IsZero() {
		r.PubDate = time.Now().UTC()
	}
	return nil
}
