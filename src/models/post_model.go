package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MaxCaptionLength = 2200
	MaxCommentLength = 1000
)

type Post struct {
	gorm.Model
	AuthorID uint      `json:"author_id" gorm:"index"`
	Image    string    `json:"image"`
	Caption  string    `json:"caption" gorm:"type:text"`
	Author   User      `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Likes    []Like    `json:"-" gorm:"foreignKey:PostID"`
	Comments []Comment `json:"-" gorm:"foreignKey:PostID"`
}

// Like is a (post, user) edge. The composite unique index is the
// concurrency guard for the like toggle: two racing inserts for the same
// pair cannot both land. Plain rows, no soft delete, so an unlike frees
// the index slot for the next toggle.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_like_post_user"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_like_post_user"`
	CreatedAt time.Time `json:"created_at"`
	Post      Post      `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type Comment struct {
	gorm.Model
	PostID uint   `json:"post_id" gorm:"index"`
	UserID uint   `json:"user_id" gorm:"index"`
	Text   string `json:"text" gorm:"type:varchar(1000)"`
	Post   Post   `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	User   User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// PostDto is the read view of a post: fresh counts, the viewer's like
// state and the three most recent comments.
type PostDto struct {
	ID             uint         `json:"id"`
	Author         UserDto      `json:"author"`
	Image          string       `json:"image"`
	Caption        string       `json:"caption"`
	LikesCount     int64        `json:"likes_count"`
	CommentsCount  int64        `json:"comments_count"`
	IsLiked        bool         `json:"is_liked"`
	RecentComments []CommentDto `json:"recent_comments"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

type CommentDto struct {
	ID        uint      `json:"id"`
	User      UserDto   `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
