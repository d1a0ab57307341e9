package services

import (
	"errors"

	"github.com/nursetov/pixnest/src/lib"
	"github.com/nursetov/pixnest/src/models"
	"github.com/nursetov/pixnest/src/notify"
	"gorm.io/gorm"
)

// FollowUser idempotently ensures the edge actor -> target exists. Only an
// absent -> present transition dispatches a follow notification; a repeat
// call is a silent no-op.
func FollowUser(actorID, targetID uint) error {
	if actorID == targetID {
		return ErrSelfFollow
	}

	var target models.User
	if err := lib.DB.First(&target, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	edge := models.Follow{
		FollowerID: actorID,
		FolloweeID: targetID,
	}

	if err := lib.DB.Create(&edge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Edge already present, nothing transitioned.
			return nil
		}
		return err
	}

	notify.Dispatch(notify.Event{
		Type:         notify.FollowCreated,
		ActorID:      actorID,
		TargetUserID: targetID,
	})

	return nil
}

// UnfollowUser idempotently ensures the edge actor -> target is absent.
// Removing a missing edge is not an error and nothing is notified.
func UnfollowUser(actorID, targetID uint) error {
	return lib.DB.
		Where("follower_id = ? AND followee_id = ?", actorID, targetID).
		Delete(&models.Follow{}).Error
}

// IsFollowing reports whether viewer currently follows subject. Anonymous
// viewers (zero ID) never follow anybody.
func IsFollowing(viewerID, subjectID uint) bool {
	if viewerID == 0 || viewerID == subjectID {
		return false
	}

	var count int64
	lib.DB.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", viewerID, subjectID).
		Count(&count)

	return count > 0
}
