package services

import (
	"errors"

	"github.com/nursetov/pixnest/src/lib"
	"github.com/nursetov/pixnest/src/models"
	"gorm.io/gorm"
)

// ListNotifications returns the viewer's notifications newest-first, each
// with the sender's minimal profile and, when a post is still linked, its
// image reference. A nulled post ref (post deleted since) renders like a
// follow notification: post_image stays null.
func ListNotifications(viewerID uint) ([]models.NotificationDto, error) {
	var notifications []models.Notification
	err := lib.DB.Preload("Sender").Preload("Post").
		Where("receiver_id = ?", viewerID).
		Order("created_at DESC, id DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}

	dtos := make([]models.NotificationDto, 0, len(notifications))
	for i := range notifications {
		n := &notifications[i]
		dto := models.NotificationDto{
			ID:        n.ID,
			Type:      n.Type,
			Sender:    n.Sender.ToDto(),
			PostID:    n.PostID,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
		if n.PostID != nil && n.Post != nil {
			image := n.Post.Image
			dto.PostImage = &image
		}
		dtos = append(dtos, dto)
	}

	return dtos, nil
}

// MarkNotificationRead flips is_read on one of the viewer's own
// notifications.
func MarkNotificationRead(viewerID, notificationID uint) (*models.Notification, error) {
	var notification models.Notification
	err := lib.DB.
		Where("id = ? AND receiver_id = ?", notificationID, viewerID).
		First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	notification.IsRead = true
	if err := lib.DB.Save(&notification).Error; err != nil {
		return nil, err
	}

	return &notification, nil
}

// DeleteNotification removes one of the viewer's own notifications.
func DeleteNotification(viewerID, notificationID uint) error {
	res := lib.DB.Unscoped().
		Where("id = ? AND receiver_id = ?", notificationID, viewerID).
		Delete(&models.Notification{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
