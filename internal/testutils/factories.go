package testutils

import (
	"time"

	"recipeshare-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values.
// Email and username carry a UUID fragment to avoid unique index conflicts.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	suffix := id.String()[:8]

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:     "user-" + suffix + "@test.com",
		Username:  "user-" + suffix,
		FirstName: "Test",
		LastName:  "User",
		// bcrypt hash of "password123"
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMye1J8t6VbXW5n5v6mLz1y3H5u1z5eWm1W",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// TagFactory provides methods to create test Tag data
type TagFactory struct{}

// NewTagFactory creates a new TagFactory
func NewTagFactory() *TagFactory {
	return &TagFactory{}
}

// Create creates a test Tag with default values
func (f *TagFactory) Create() *models.Tag {
	id := uuid.New()
	suffix := id.String()[:8]

	return &models.Tag{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:  "tag-" + suffix,
		Color: "#49B64E",
		Slug:  "tag-" + suffix,
	}
}

// WithName sets a custom name and slug for the tag
func (f *TagFactory) WithName(name string) *models.Tag {
	tag := f.Create()
	tag.Name = name
	tag.Slug = name
	return tag
}

// WithColor sets a custom color for the tag
func (f *TagFactory) WithColor(color string) *models.Tag {
	tag := f.Create()
	tag.Color = color
	return tag
}

// IngredientFactory provides methods to create test Ingredient data
type IngredientFactory struct{}

// NewIngredientFactory creates a new IngredientFactory
func NewIngredientFactory() *IngredientFactory {
	return &IngredientFactory{}
}

// Create creates a test Ingredient with default values
func (f *IngredientFactory) Create() *models.Ingredient {
	id := uuid.New()
	suffix := id.String()[:8]

	return &models.Ingredient{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:            "ingredient-" + suffix,
		MeasurementUnit: "g",
	}
}

// WithName sets a custom name for the ingredient
func (f *IngredientFactory) WithName(name string) *models.Ingredient {
	ingredient := f.Create()
	ingredient.Name = name
	return ingredient
}

// WithUnit sets a custom measurement unit for the ingredient
func (f *IngredientFactory) WithUnit(unit string) *models.Ingredient {
	ingredient := f.Create()
	ingredient.MeasurementUnit = unit
	return ingredient
}

// RecipeFactory provides methods to create test Recipe data
type RecipeFactory struct{}

// NewRecipeFactory creates a new RecipeFactory
func NewRecipeFactory() *RecipeFactory {
	return &RecipeFactory{}
}

// Create creates a test Recipe with default values
func (f *RecipeFactory) Create() *models.Recipe {
	id := uuid.New()
	suffix := id.String()[:8]

	return &models.Recipe{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AuthorID:    uuid.New(),
		Name:        "recipe-" + suffix,
		Image:       "recipes/images/" + suffix + ".png",
		Text:        "A test recipe",
		CookingTime: 30,
		PubDate:     time.Now().UTC(),
	}
}

// WithAuthor sets the author ID for the recipe
func (f *RecipeFactory) WithAuthor(authorID uuid.UUID) *models.Recipe {
	recipe := f.Create()
	recipe.AuthorID = authorID
	return recipe
}

// WithName sets a custom name for the recipe
func (f *RecipeFactory) WithName(name string) *models.Recipe {
	recipe := f.Create()
	recipe.Name = name
	return recipe
}

// WithCookingTime sets a custom cooking time for the recipe
func (f *RecipeFactory) WithCookingTime(minutes int) *models.Recipe {
	recipe := f.Create()
	recipe.CookingTime = minutes
	return recipe
}

// RecipeIngredientFactory provides methods to create test RecipeIngredient data
type RecipeIngredientFactory struct{}

// NewRecipeIngredientFactory creates a new RecipeIngredientFactory
func NewRecipeIngredientFactory() *RecipeIngredientFactory {
	return &RecipeIngredientFactory{}
}

// Create creates a test RecipeIngredient with default values
func (f *RecipeIngredientFactory) Create() *models.RecipeIngredient {
	return &models.RecipeIngredient{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RecipeID:     uuid.New(),
		IngredientID: uuid.New(),
		Amount:       100,
	}
}

// For links the row to a recipe and ingredient
func (f *RecipeIngredientFactory) For(recipeID, ingredientID uuid.UUID) *models.RecipeIngredient {
	item := f.Create()
	item.RecipeID = recipeID
	item.IngredientID = ingredientID
	return item
}

// WithAmount sets a custom amount
func (f *RecipeIngredientFactory) WithAmount(recipeID, ingredientID uuid.UUID, amount int) *models.RecipeIngredient {
	item := f.For(recipeID, ingredientID)
	item.Amount = amount
	return item
}

// FavoriteFactory provides methods to create test Favorite data
type FavoriteFactory struct{}

// NewFavoriteFactory creates a new FavoriteFactory
func NewFavoriteFactory() *FavoriteFactory {
	return &FavoriteFactory{}
}

// For creates a favorite linking a user and recipe
func (f *FavoriteFactory) For(userID, recipeID uuid.UUID) *models.Favorite {
	return &models.Favorite{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:   userID,
		RecipeID: recipeID,
	}
}

// ShoppingCartEntryFactory provides methods to create test ShoppingCartEntry data
type ShoppingCartEntryFactory struct{}

// NewShoppingCartEntryFactory creates a new ShoppingCartEntryFactory
func NewShoppingCartEntryFactory() *ShoppingCartEntryFactory {
	return &ShoppingCartEntryFactory{}
}

// For creates a cart entry linking a user and recipe
func (f *ShoppingCartEntryFactory) For(userID, recipeID uuid.UUID) *models.ShoppingCartEntry {
	return &models.ShoppingCartEntry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:   userID,
		RecipeID: recipeID,
	}
}

// FollowFactory provides methods to create test Follow data
type FollowFactory struct{}

// NewFollowFactory creates a new FollowFactory
func NewFollowFactory() *FollowFactory {
	return &FollowFactory{}
}

// For creates a follow from a follower to a followed user
func (f *FollowFactory) For(followerID, followingID uuid.UUID) *models.Follow {
	return &models.Follow{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FollowerID:  followerID,
		FollowingID: followingID,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User              *UserFactory
	Tag               *TagFactory
	Ingredient        *IngredientFactory
	Recipe            *RecipeFactory
	RecipeIngredient  *RecipeIngredientFactory
	Favorite          *FavoriteFactory
	ShoppingCartEntry *ShoppingCartEntryFactory
	Follow            *FollowFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:              NewUserFactory(),
		Tag:               NewTagFactory(),
		Ingredient:        NewIngredientFactory(),
		Recipe:            NewRecipeFactory(),
		RecipeIngredient:  NewRecipeIngredientFactory(),
		Favorite:          NewFavoriteFactory(),
		ShoppingCartEntry: NewShoppingCartEntryFactory(),
		Follow:            NewFollowFactory(),
	}
}

// CreateFullRecipeGraph creates an author with one recipe carrying a tag and one ingredient row
func (fs *FactorySet) CreateFullRecipeGraph() (*models.User, *models.Tag, *models.Ingredient, *models.Recipe, *models.RecipeIngredient) {
	author := fs.User.Create()
	tag := fs.Tag.Create()
	ingredient := fs.Ingredient.Create()
	recipe := fs.Recipe.WithAuthor(author.ID)
	item := fs.RecipeIngredient.For(recipe.ID, ingredient.ID)
	return author, tag, ingredient, recipe, item
}
