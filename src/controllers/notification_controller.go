package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nursetov/pixnest/src/lib"
	"github.com/nursetov/pixnest/src/models"
	"github.com/nursetov/pixnest/src/services"
)

// GetUserNotifications returns all notifications for the authenticated
// user, newest first, with sender and post data populated
func GetUserNotifications(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	notifications, err := services.ListNotifications(user.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(notifications)
}

// MarkNotificationAsRead marks a notification as read for the
// authenticated user
func MarkNotificationAsRead(c *fiber.Ctx) error {
	notificationID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid notification ID format",
		})
	}

	user := c.Locals("user").(models.User)

	notification, err := services.MarkNotificationRead(user.ID, notificationID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(notification)
}

// DeleteNotification deletes a notification for the authenticated user
func DeleteNotification(c *fiber.Ctx) error {
	notificationID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid notification ID format",
		})
	}

	user := c.Locals("user").(models.User)

	if err := services.DeleteNotification(user.ID, notificationID); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(lib.MessageResponse("Notification deleted successfully"))
}
