package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Username string `json:"username" gorm:"uniqueIndex"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio" gorm:"type:varchar(500)"`
	Website  string `json:"website" gorm:"type:varchar(200)"`
}

// UserDto is the minimal user representation embedded in other views
// (post author, comment author, notification sender).
type UserDto struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// ProfileDto is the full profile view with live relation counts.
type ProfileDto struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Username       string `json:"username"`
	Avatar         string `json:"avatar"`
	Bio            string `json:"bio"`
	Website        string `json:"website"`
	FollowersCount int64  `json:"followers_count"`
	FollowingCount int64  `json:"following_count"`
	IsFollowing    bool   `json:"is_following"`
}

// ToDto reduces a user to its minimal embedded representation.
func (u *User) ToDto() UserDto {
	return UserDto{
		ID:       u.ID,
		Username: u.Username,
		Avatar:   u.Avatar,
	}
}
