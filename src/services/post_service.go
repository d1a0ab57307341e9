package services

import (
	"errors"
	"strings"

	"github.com/nursetov/pixnest/src/lib"
	"github.com/nursetov/pixnest/src/models"
	"github.com/nursetov/pixnest/src/notify"
	"gorm.io/gorm"
)

// CreatePost validates and stores a new post. Image is the media-store
// reference, never raw bytes.
func CreatePost(authorID uint, image, caption string) (*models.Post, error) {
	if image == "" {
		return nil, validationErr("image", "image is required")
	}
	if len(caption) > models.MaxCaptionLength {
		return nil, validationErr("caption", "caption is too long")
	}

	post := models.Post{
		AuthorID: authorID,
		Image:    image,
		Caption:  caption,
	}

	if err := lib.DB.Create(&post).Error; err != nil {
		return nil, err
	}

	return &post, nil
}

// UpdatePost changes the caption of the actor's own post.
func UpdatePost(actorID, postID uint, caption string) (*models.Post, error) {
	if len(caption) > models.MaxCaptionLength {
		return nil, validationErr("caption", "caption is too long")
	}

	post, err := findPost(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != actorID {
		return nil, ErrPermission
	}

	post.Caption = caption
	if err := lib.DB.Save(post).Error; err != nil {
		return nil, err
	}

	return post, nil
}

// DeletePost removes the actor's own post. Likes and comments go with it
// via the cascade; notifications that pointed at the post survive with
// their post reference nulled.
func DeletePost(actorID, postID uint) error {
	post, err := findPost(postID)
	if err != nil {
		return err
	}
	if post.AuthorID != actorID {
		return ErrPermission
	}

	return lib.DB.Unscoped().Delete(post).Error
}

// ToggleLike flips the (actor, post) like edge and returns the new state.
// Delete-first, then a constraint-guarded insert: two racing toggles can
// never both insert, the unique index on (post_id, user_id) rejects the
// loser. Only the call that actually inserted dispatches a notification.
func ToggleLike(actorID, postID uint) (liked bool, err error) {
	post, err := findPost(postID)
	if err != nil {
		return false, err
	}

	res := lib.DB.
		Where("post_id = ? AND user_id = ?", postID, actorID).
		Delete(&models.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	like := models.Like{PostID: postID, UserID: actorID}
	if err := lib.DB.Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent toggle inserted first; the like exists and
			// the winner already notified.
			return true, nil
		}
		return false, err
	}

	notify.Dispatch(notify.Event{
		Type:         notify.LikeCreated,
		ActorID:      actorID,
		TargetUserID: post.AuthorID,
		PostID:       post.ID,
	})

	return true, nil
}

// AddComment validates and stores a comment, then notifies the post
// author (unless they commented on their own post).
func AddComment(actorID, postID uint, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, validationErr("text", "comment text cannot be empty")
	}
	if len(text) > models.MaxCommentLength {
		return nil, validationErr("text", "comment text is too long")
	}

	post, err := findPost(postID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		PostID: postID,
		UserID: actorID,
		Text:   text,
	}

	if err := lib.DB.Create(&comment).Error; err != nil {
		return nil, err
	}

	notify.Dispatch(notify.Event{
		Type:         notify.CommentCreated,
		ActorID:      actorID,
		TargetUserID: post.AuthorID,
		PostID:       post.ID,
	})

	return &comment, nil
}

func findPost(postID uint) (*models.Post, error) {
	var post models.Post
	if err := lib.DB.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}
