package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nursetov/pixnest/src/lib"
	"github.com/nursetov/pixnest/src/models"
)

// ProtectRoute checks for a valid JWT token, authenticates the user, and
// attaches the user to the request context
func ProtectRoute(c *fiber.Ctx) error {
	user, err := resolveUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	c.Locals("user", *user)

	return c.Next()
}

// OptionalAuth resolves the viewer when a token is present but lets
// anonymous requests through. Read endpoints use it so is_liked and
// is_following can be viewer-aware without requiring login.
func OptionalAuth(c *fiber.Ctx) error {
	if c.Get("Authorization") != "" {
		if user, err := resolveUser(c); err == nil {
			c.Locals("user", *user)
		}
	}

	return c.Next()
}

func resolveUser(c *fiber.Ctx) (*models.User, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - no token provided")
	}

	// Expected format: "Bearer <token>"
	var token string
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		token = authHeader[7:]
	} else {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid token format")
	}

	decoded, err := lib.VerifyJWT(token)
	if err != nil || decoded == nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid token")
	}

	userID, ok := lib.UserIDFromClaims(decoded)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid token")
	}

	user, err := lib.FindUserByID(userID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "User not found")
	}

	return user, nil
}
