package service

import (
	"errors"
	"fmt"

	apperrors "recipeshare-backend/internal/errors"

	"recipeshare-backend/internal/database/models"
	"recipeshare-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowService provides the subscription toggle. Self-follow is rejected
// before any state is consulted.
type FollowService struct {
	followRepo repository.FollowRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	recipeRepo repository.RecipeRepositoryInterface
	annotator  *Annotator
}

// Ensure FollowService implements FollowServiceInterface
var _ FollowServiceInterface = (*FollowService)(nil)

// NewFollowService creates a new FollowService
func NewFollowService(
	followRepo repository.FollowRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	recipeRepo repository.RecipeRepositoryInterface,
	annotator *Annotator,
) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
		annotator:  annotator,
	}
}

// Subscribe follows an author and returns them with their recent recipes
func (s *FollowService) Subscribe(followerID, followingID uuid.UUID, recipesLimit int) (*SubscriptionResponse, error) {
	if followerID == followingID {
		return nil, apperrors.ErrSelfFollow
	}

	author, err := s.userRepo.GetByID(followingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	exists, err := s.followRepo.Exists(followerID, followingID)
	if err != nil {
		return nil, fmt.Errorf("failed to check follow: %w", err)
	}
	if exists {
		return nil, apperrors.ErrFollowExists
	}

	follow := models.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := s.followRepo.Create(&follow); err != nil {
		// Concurrent subscribe lost the race on the pair constraint
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrFollowExists
		}
		return nil, fmt.Errorf("failed to create follow: %w", err)
	}

	counts, err := s.annotator.RecipeCounts([]uuid.UUID{author.ID})
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipeRepo.ListByAuthors([]uuid.UUID{author.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to get author recipes: %w", err)
	}
	previews := make([]RecipePreviewResponse, 0, len(recipes))
	for _, r := range recipes {
		if recipesLimit > 0 && len(previews) >= recipesLimit {
			break
		}
		previews = append(previews, toRecipePreviewResponse(&r))
	}

	return &SubscriptionResponse{
		UserResponse: toUserResponse(author, true),
		Recipes:      previews,
		RecipesCount: counts[author.ID],
	}, nil
}

// Unsubscribe unfollows an author
func (s *FollowService) Unsubscribe(followerID, followingID uuid.UUID) error {
	if followerID == followingID {
		return apperrors.ErrSelfFollow
	}

	if _, err := s.userRepo.GetByID(followingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	exists, err := s.followRepo.Exists(followerID, followingID)
	if err != nil {
		return fmt.Errorf("failed to check follow: %w", err)
	}
	if !exists {
		return apperrors.ErrFollowNotFound
	}

	if err := s.followRepo.Delete(followerID, followingID); err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	return nil
}
