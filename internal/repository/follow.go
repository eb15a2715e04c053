package repository

import (
	"recipeshare-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowRepository handles database operations for follows
type FollowRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Create creates a new follow
func (r *FollowRepository) Create(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

// Delete removes a follow
func (r *FollowRepository) Delete(followerID, followingID uuid.UUID) error {
	return r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).Delete(&models.Follow{}).Error
}

// Exists checks if a follow exists
func (r *FollowRepository) Exists(followerID, followingID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ? AND following_id = ?", followerID, followingID).Count(&count).Error
	return count > 0, err
}

// FollowingIDSet returns which of the given users the follower is subscribed
// to, in one batched query
func (r *FollowRepository) FollowingIDSet(followerID uuid.UUID, userIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	set := make(map[uuid.UUID]bool)
	if len(userIDs) == 0 {
		return set, nil
	}

	var ids []uuid.UUID
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id IN ?", followerID, userIDs).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
