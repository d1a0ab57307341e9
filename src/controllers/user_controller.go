package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nursetov/pixnest/src/lib"
	"github.com/nursetov/pixnest/src/models"
	"github.com/nursetov/pixnest/src/services"
)

// viewerID returns the authenticated user's ID, or 0 for anonymous
// requests that came through OptionalAuth.
func viewerID(c *fiber.Ctx) uint {
	if user, ok := c.Locals("user").(models.User); ok {
		return user.ID
	}
	return 0
}

// serviceError maps the service error taxonomy onto HTTP statuses.
func serviceError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"field":   validationErr.Field,
			"detail":  validationErr.Reason,
		})
	case errors.Is(err, services.ErrSelfFollow):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Not found",
		})
	case errors.Is(err, services.ErrPermission):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Not authorized",
		})
	default:
		log.Printf("Unexpected service error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}
}

// GetPublicProfile returns the profile of a user by username, with live
// follower/following counts and the viewer's follow state
func GetPublicProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	if username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Username is required",
		})
	}

	profile, err := services.GetProfile(username, viewerID(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(profile)
}

// SearchUsers returns minimal profiles of users matching a username query
func SearchUsers(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Query parameter q is required",
		})
	}

	users, err := services.SearchUsers(q, c.QueryInt("limit"))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(users)
}

// UpdateProfile updates the authenticated user's profile with allowed fields
func UpdateProfile(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var body struct {
		Name    *string `json:"name"`
		Bio     *string `json:"bio"`
		Website *string `json:"website"`
		Avatar  *string `json:"avatar"`
	}

	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if body.Bio != nil && len(*body.Bio) > 500 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Bio is too long",
		})
	}
	if body.Website != nil && len(*body.Website) > 200 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Website is too long",
		})
	}

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Bio != nil {
		updates["bio"] = *body.Bio
	}
	if body.Website != nil {
		updates["website"] = *body.Website
	}
	if body.Avatar != nil {
		updates["avatar"] = *body.Avatar
	}

	if len(updates) > 0 {
		err := lib.DB.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error
		if err != nil {
			log.Printf("Error updating profile: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to update profile",
			})
		}
	}

	updated, err := lib.FindUserByID(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to load updated profile",
		})
	}

	return c.JSON(updated)
}

// FollowUser makes the authenticated user follow the target user
func FollowUser(c *fiber.Ctx) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID format",
		})
	}

	user := c.Locals("user").(models.User)

	if err := services.FollowUser(user.ID, targetID); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(lib.MessageResponse("Following"))
}

// UnfollowUser makes the authenticated user unfollow the target user
func UnfollowUser(c *fiber.Ctx) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID format",
		})
	}

	user := c.Locals("user").(models.User)

	if err := services.UnfollowUser(user.ID, targetID); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(lib.MessageResponse("Unfollowed"))
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(raw), nil
}
