package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Register(req *RegisterRequest) (*UserResponse, error)
	Login(req *LoginRequest) (*TokenResponse, error)
	GetByID(viewer Viewer, id uuid.UUID) (*UserResponse, error)
	GetAll(viewer Viewer, page, pageSize int) (*UserListResponse, error)
	SetPassword(userID uuid.UUID, req *SetPasswordRequest) error
	Subscriptions(userID uuid.UUID, page, pageSize, recipesLimit int) (*SubscriptionListResponse, error)
}

// TagServiceInterface defines the interface for tag service
type TagServiceInterface interface {
	GetAll() ([]TagResponse, error)
	GetByID(id uuid.UUID) (*TagResponse, error)
}

// IngredientServiceInterface defines the interface for ingredient service
type IngredientServiceInterface interface {
	GetAll(namePrefix string, page, pageSize int) (*IngredientListResponse, error)
	GetByID(id uuid.UUID) (*IngredientResponse, error)
	Delete(id uuid.UUID) error
}

// RecipeServiceInterface defines the interface for recipe service
type RecipeServiceInterface interface {
	Create(authorID uuid.UUID, req *CreateRecipeRequest) (*RecipeResponse, error)
	GetByID(viewer Viewer, id uuid.UUID) (*RecipeResponse, error)
	List(viewer Viewer, query *RecipeListQuery) (*RecipeListResponse, error)
	Update(userID, recipeID uuid.UUID, req *UpdateRecipeRequest) (*RecipeResponse, error)
	Delete(userID, recipeID uuid.UUID) error
}

// FavoriteServiceInterface defines the interface for favorite service
type FavoriteServiceInterface interface {
	Add(userID, recipeID uuid.UUID) (*RecipePreviewResponse, error)
	Remove(userID, recipeID uuid.UUID) error
}

// ShoppingCartServiceInterface defines the interface for shopping cart service
type ShoppingCartServiceInterface interface {
	Add(userID, recipeID uuid.UUID) (*RecipePreviewResponse, error)
	Remove(userID, recipeID uuid.UUID) error
}

// FollowServiceInterface defines the interface for follow service
type FollowServiceInterface interface {
	Subscribe(followerID, followingID uuid.UUID, recipesLimit int) (*SubscriptionResponse, error)
	Unsubscribe(followerID, followingID uuid.UUID) error
}

// ShoppingListServiceInterface defines the interface for shopping list service
type ShoppingListServiceInterface interface {
	Build(userID uuid.UUID) ([]ShoppingListItem, error)
}
