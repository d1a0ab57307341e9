package models

import (
	"time"
)

// Follow is a directed edge follower -> followee. The composite unique
// index makes the edge set duplicate-free at the storage level, which is
// what the idempotent follow/unfollow contract leans on. Edges are hard
// rows (no soft delete): a removed edge must free the index slot so the
// pair can re-follow.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follow_edge"`
	FolloweeID uint      `json:"followee_id" gorm:"index;uniqueIndex:idx_follow_edge"`
	CreatedAt  time.Time `json:"created_at"`
	Follower   User      `json:"-" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Followee   User      `json:"-" gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE"`
}
