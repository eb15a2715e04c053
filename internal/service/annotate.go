package service

import (
	"fmt"

	"recipeshare-backend/internal/repository"

	"github.com/google/uuid"
)

// Annotator computes viewer-scoped flags for pages of recipes and users.
// Each flag family costs one batched query per page; the anonymous viewer
// costs zero queries and every flag stays false.
type Annotator struct {
	favoriteRepo repository.FavoriteRepositoryInterface
	cartRepo     repository.ShoppingCartRepositoryInterface
	followRepo   repository.FollowRepositoryInterface
	recipeRepo   repository.RecipeRepositoryInterface
}

// NewAnnotator creates a new Annotator
func NewAnnotator(
	favoriteRepo repository.FavoriteRepositoryInterface,
	cartRepo repository.ShoppingCartRepositoryInterface,
	followRepo repository.FollowRepositoryInterface,
	recipeRepo repository.RecipeRepositoryInterface,
) *Annotator {
	return &Annotator{
		favoriteRepo: favoriteRepo,
		cartRepo:     cartRepo,
		followRepo:   followRepo,
		recipeRepo:   recipeRepo,
	}
}

// RecipeFlags holds per-recipe viewer flags. Lookups on absent IDs are false.
type RecipeFlags struct {
	Favorited map[uuid.UUID]bool
	InCart    map[uuid.UUID]bool
}

// RecipeFlags returns is_favorited and is_in_shopping_cart membership sets
// for the given recipes as seen by the viewer
func (a *Annotator) RecipeFlags(viewer Viewer, recipeIDs []uuid.UUID) (*RecipeFlags, error) {
	if !viewer.Authenticated || len(recipeIDs) == 0 {
		return &RecipeFlags{
			Favorited: map[uuid.UUID]bool{},
			InCart:    map[uuid.UUID]bool{},
		}, nil
	}

	favorited, err := a.favoriteRepo.RecipeIDSet(viewer.ID, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorite flags: %w", err)
	}

	inCart, err := a.cartRepo.RecipeIDSet(viewer.ID, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart flags: %w", err)
	}

	return &RecipeFlags{Favorited: favorited, InCart: inCart}, nil
}

// SubscribedSet returns which of the given users the viewer is subscribed to
func (a *Annotator) SubscribedSet(viewer Viewer, userIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	if !viewer.Authenticated || len(userIDs) == 0 {
		return map[uuid.UUID]bool{}, nil
	}

	subscribed, err := a.followRepo.FollowingIDSet(viewer.ID, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscription flags: %w", err)
	}
	return subscribed, nil
}

// RecipeCounts returns per-author recipe counts for the given users.
// Viewer-independent, so it runs for anonymous pages too.
func (a *Annotator) RecipeCounts(userIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts, err := a.recipeRepo.CountByAuthors(userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe counts: %w", err)
	}
	return counts, nil
}
