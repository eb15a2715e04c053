package repository

import (
	"recipeshare-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	GetFollowing(followerID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
}

// TagRepositoryInterface defines the interface for tag repository operations
type TagRepositoryInterface interface {
	Create(tag *models.Tag) error
	GetAll() ([]models.Tag, error)
	GetByID(id uuid.UUID) (*models.Tag, error)
	GetByIDs(ids []uuid.UUID) ([]models.Tag, error)
	GetBySlugs(slugs []string) ([]models.Tag, error)
}

// IngredientRepositoryInterface defines the interface for ingredient repository operations
type IngredientRepositoryInterface interface {
	Create(ingredient *models.Ingredient) error
	GetAll(namePrefix string, limit, offset int) ([]models.Ingredient, int64, error)
	GetByID(id uuid.UUID) (*models.Ingredient, error)
	GetByIDs(ids []uuid.UUID) ([]models.Ingredient, error)
	CountRecipeReferences(id uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
}

// RecipeListFilter narrows and pages the recipe listing. Nil pointer fields
// mean "no filter"; TagSlugs match any (OR) when present.
type RecipeListFilter struct {
	AuthorID    *uuid.UUID
	TagSlugs    []string
	FavoritedBy *uuid.UUID
	InCartOf    *uuid.UUID
	Limit       int
	Offset      int
}

// RecipeRepositoryInterface defines the interface for recipe repository operations
type RecipeRepositoryInterface interface {
	Create(recipe *models.Recipe) error
	Update(recipe *models.Recipe, ingredients []models.RecipeIngredient, tags []models.Tag) error
	GetByID(id uuid.UUID) (*models.Recipe, error)
	ExistsByAuthorAndName(authorID uuid.UUID, name string) (bool, error)
	List(filter RecipeListFilter) ([]models.Recipe, int64, error)
	ListByAuthors(authorIDs []uuid.UUID) ([]models.Recipe, error)
	CountByAuthors(authorIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	Delete(id uuid.UUID) error
}

// FavoriteRepositoryInterface defines the interface for favorite repository operations
type FavoriteRepositoryInterface interface {
	Create(favorite *models.Favorite) error
	Delete(userID, recipeID uuid.UUID) error
	Exists(userID, recipeID uuid.UUID) (bool, error)
	RecipeIDSet(userID uuid.UUID, recipeIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

// CartIngredientRow is one flat (ingredient, amount) row from a user's cart,
// before consolidation.
type CartIngredientRow struct {
	Name            string
	MeasurementUnit string
	Amount          int
}

// ShoppingCartRepositoryInterface defines the interface for shopping cart repository operations
type ShoppingCartRepositoryInterface interface {
	Create(entry *models.ShoppingCartEntry) error
	Delete(userID, recipeID uuid.UUID) error
	Exists(userID, recipeID uuid.UUID) (bool, error)
	RecipeIDSet(userID uuid.UUID, recipeIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	IngredientRows(userID uuid.UUID) ([]CartIngredientRow, error)
}

// FollowRepositoryInterface defines the interface for follow repository operations
type FollowRepositoryInterface interface {
	Create(follow *models.Follow) error
	Delete(followerID, followingID uuid.UUID) error
	Exists(followerID, followingID uuid.UUID) (bool, error)
	FollowingIDSet(followerID uuid.UUID, userIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}
