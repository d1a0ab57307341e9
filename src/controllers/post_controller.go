package controllers

import (
	"encoding/base64"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/nursetov/pixnest/src/lib"
	"github.com/nursetov/pixnest/src/models"
	"github.com/nursetov/pixnest/src/services"
)

// GetGlobalFeed returns all posts newest-first, paginated
func GetGlobalFeed(c *fiber.Ctx) error {
	posts, err := services.GlobalFeed(viewerID(c), c.QueryInt("page", 1), c.QueryInt("limit"))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(posts)
}

// GetPersonalFeed returns posts from users the authenticated user follows
func GetPersonalFeed(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	posts, err := services.PersonalFeed(user.ID, c.QueryInt("page", 1), c.QueryInt("limit"))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(posts)
}

// CreatePost creates a new post for the authenticated user. The image is
// either a media reference from a previous upload or inline base64 bytes
// that get pushed through the media store first.
func CreatePost(c *fiber.Ctx) error {
	var req struct {
		Image     string `json:"image"`
		ImageData string `json:"image_data,omitempty"` // base64, stored via the media store
		Caption   string `json:"caption"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	user := c.Locals("user").(models.User)

	imageRef := req.Image
	if imageRef == "" && req.ImageData != "" {
		data, err := base64.StdEncoding.DecodeString(req.ImageData)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid image data",
			})
		}

		imageRef, err = lib.Media.Store(data, ".jpg")
		if err != nil {
			log.Printf("Error storing image: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to store image",
			})
		}
	}

	post, err := services.CreatePost(user.ID, imageRef, req.Caption)
	if err != nil {
		return serviceError(c, err)
	}

	view, err := services.GetPostView(post.ID, user.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(view)
}

// GetPostByID returns a post with fresh counts, the viewer's like state
// and its most recent comments
func GetPostByID(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID format",
		})
	}

	view, err := services.GetPostView(postID, viewerID(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(view)
}

// UpdatePost changes the caption of a post owned by the authenticated user
func UpdatePost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID format",
		})
	}

	var req struct {
		Caption string `json:"caption"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	user := c.Locals("user").(models.User)

	if _, err := services.UpdatePost(user.ID, postID, req.Caption); err != nil {
		return serviceError(c, err)
	}

	view, err := services.GetPostView(postID, user.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(view)
}

// DeletePost deletes a post by ID if the authenticated user is the author
func DeletePost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID format",
		})
	}

	user := c.Locals("user").(models.User)

	if err := services.DeletePost(user.ID, postID); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(lib.MessageResponse("Post deleted successfully"))
}

// LikePost toggles a like/unlike for a post by the authenticated user
func LikePost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID format",
		})
	}

	user := c.Locals("user").(models.User)

	liked, err := services.ToggleLike(user.ID, postID)
	if err != nil {
		return serviceError(c, err)
	}

	message := "Like removed"
	if liked {
		message = "Post liked"
	}

	return c.JSON(fiber.Map{
		"message": message,
		"liked":   liked,
	})
}

// CreateComment adds a new comment to a post by its ID
func CreateComment(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID format",
		})
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	user := c.Locals("user").(models.User)

	comment, err := services.AddComment(user.ID, postID, req.Text)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.CommentDto{
		ID:        comment.ID,
		User:      user.ToDto(),
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	})
}
