package models

import (
	"github.com/google/uuid"
)

// Follow subscribes one user to another's recipes. One row per pair;
// follower == following is rejected at the service layer before any write.
type Follow struct {
	BaseModel
	FollowerID  uuid.UUID `json:"follower_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_follows_pair" validate:"required"`
	FollowingID uuid.UUID `json:"following_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_follows_pair" validate:"required"`

	// Relationships
	Follower  User `json:"follower,omitempty" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Following User `json:"following,omitempty" gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Follow
func (Follow) TableName() string {
	return "follows"
}
