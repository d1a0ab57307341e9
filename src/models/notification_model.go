package models

import (
	"time"

	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationTypeLike    NotificationType = "like"
	NotificationTypeComment NotificationType = "comment"
	NotificationTypeFollow  NotificationType = "follow"
)

// Notification is written only by the notify engine. PostID is null for
// follow notifications, and is nulled (not cascaded) when the linked post
// is deleted, so the historical record stays queryable.
type Notification struct {
	gorm.Model
	SenderID   uint             `json:"sender_id" gorm:"index"`
	ReceiverID uint             `json:"receiver_id" gorm:"index"`
	Type       NotificationType `json:"type" gorm:"type:varchar(20)"`
	PostID     *uint            `json:"post_id"`
	IsRead     bool             `json:"is_read" gorm:"default:false"`
	Sender     User             `json:"-" gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	Receiver   User             `json:"-" gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE"`
	Post       *Post            `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:SET NULL"`
}

// NotificationDto embeds the sender's minimal profile and, for like and
// comment notifications, the linked post's image reference.
type NotificationDto struct {
	ID        uint             `json:"id"`
	Type      NotificationType `json:"type"`
	Sender    UserDto          `json:"sender"`
	PostID    *uint            `json:"post_id"`
	PostImage *string          `json:"post_image"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
