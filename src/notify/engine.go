// Package notify turns committed mutations into notification records.
//
// Services dispatch an event after their own write has gone through; the
// engine's failures are logged and swallowed so the primary mutation never
// fails or rolls back because a notification could not be written.
package notify

import (
	"log"

	"github.com/nursetov/pixnest/src/lib"
	"github.com/nursetov/pixnest/src/models"
)

type EventType string

const (
	LikeCreated    EventType = "like.created"
	CommentCreated EventType = "comment.created"
	FollowCreated  EventType = "follow.created"
)

// Event describes a qualifying mutation. PostID and PostAuthorID are zero
// for follow events.
type Event struct {
	Type         EventType
	ActorID      uint
	TargetUserID uint // post author, or followee for follow events
	PostID       uint
}

// Dispatch applies the notification rule for the event. Self-targeting
// events (own post liked/commented by its author) are suppressed, not
// errors. Deletions never dispatch.
func Dispatch(ev Event) {
	if ev.ActorID == ev.TargetUserID {
		return
	}

	notification := models.Notification{
		SenderID:   ev.ActorID,
		ReceiverID: ev.TargetUserID,
	}

	switch ev.Type {
	case LikeCreated:
		notification.Type = models.NotificationTypeLike
		postID := ev.PostID
		notification.PostID = &postID
	case CommentCreated:
		notification.Type = models.NotificationTypeComment
		postID := ev.PostID
		notification.PostID = &postID
	case FollowCreated:
		notification.Type = models.NotificationTypeFollow
	default:
		log.Printf("notify: unknown event type %q dropped", ev.Type)
		return
	}

	if err := lib.DB.Create(&notification).Error; err != nil {
		// Fire and forget: the triggering mutation already committed.
		log.Printf("notify: failed to create %s notification from %d to %d: %v",
			notification.Type, ev.ActorID, ev.TargetUserID, err)
	}
}
