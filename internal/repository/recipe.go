package repository

import (
	"recipeshare-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeRepository handles database operations for recipes
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create persists a recipe together with its ingredient rows and tag links
// in one transaction. Tag and catalog ingredient rows themselves are never
// touched, only the join rows.
func (r *RecipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Tags.*", "Ingredients.Ingredient", "Author").Create(recipe).Error
	})
}

// Update persists changed recipe fields and, when the ingredients or tags
// slice is non-nil, replaces the full set inside the same transaction.
// A nil slice leaves that association untouched.
func (r *RecipeRepository) Update(recipe *models.Recipe, ingredients []models.RecipeIngredient, tags []models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(recipe).
			Select("name", "image", "text", "cooking_time").
			Updates(recipe).Error
		if err != nil {
			return err
		}

		if ingredients != nil {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
				return err
			}
			for i := range ingredients {
				ingredients[i].RecipeID = recipe.ID
			}
			if len(ingredients) > 0 {
				if err := tx.Omit("Ingredient", "Recipe").Create(&ingredients).Error; err != nil {
					return err
				}
			}
		}

		if tags != nil {
			if err := tx.Model(recipe).Omit("Tags.*").Association("Tags").Replace(&tags); err != nil {
				return err
			}
		}

		return nil
	})
}

// GetByID retrieves a recipe with its author, tags and ingredients
func (r *RecipeRepository) GetByID(id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		First(&recipe, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ExistsByAuthorAndName checks whether an author already has a recipe with this name
func (r *RecipeRepository) ExistsByAuthorAndName(authorID uuid.UUID, name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Recipe{}).Where("author_id = ? AND name = ?", authorID, name).Count(&count).Error
	return count > 0, err
}

// List retrieves recipes newest first, narrowed by the filter, with pagination
func (r *RecipeRepository) List(filter RecipeListFilter) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	var total int64

	query := r.db.Model(&models.Recipe{})

	if filter.AuthorID != nil {
		query = query.Where("recipes.author_id = ?", *filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		tagged := r.db.Model(&models.Tag{}).
			Select("recipe_tags.recipe_id").
			Joins("JOIN recipe_tags ON recipe_tags.tag_id = tags.id").
			Where("tags.slug IN ?", filter.TagSlugs)
		query = query.Where("recipes.id IN (?)", tagged)
	}
	if filter.FavoritedBy != nil {
		favorited := r.db.Model(&models.Favorite{}).
			Select("recipe_id").
			Where("user_id = ?", *filter.FavoritedBy)
		query = query.Where("recipes.id IN (?)", favorited)
	}
	if filter.InCartOf != nil {
		inCart := r.db.Model(&models.ShoppingCartEntry{}).
			Select("recipe_id").
			Where("user_id = ?", *filter.InCartOf)
		query = query.Where("recipes.id IN (?)", inCart)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Order("recipes.pub_date DESC, recipes.id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&recipes).Error
	return recipes, total, err
}

// ListByAuthors retrieves all recipes of the given authors, newest first
func (r *RecipeRepository) ListByAuthors(authorIDs []uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if len(authorIDs) == 0 {
		return recipes, nil
	}
	err := r.db.Where("author_id IN ?", authorIDs).Order("pub_date DESC, id").Find(&recipes).Error
	return recipes, err
}

// CountByAuthors returns per-author recipe counts in one grouped query.
// Authors with no recipes are absent from the map.
func (r *RecipeRepository) CountByAuthors(authorIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64)
	if len(authorIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		AuthorID uuid.UUID
		Total    int64
	}
	err := r.db.Model(&models.Recipe{}).
		Select("author_id, COUNT(*) AS total").
		Where("author_id IN ?", authorIDs).
		Group("author_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.AuthorID] = row.Total
	}
	return counts, nil
}

// Delete removes a recipe; ingredient rows and tag links go with it via cascade
func (r *RecipeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Recipe{}, "id = ?", id).Error
}
