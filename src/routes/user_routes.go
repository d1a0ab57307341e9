package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nursetov/pixnest/src/controllers"
	"github.com/nursetov/pixnest/src/middleware"
)

// UserRoutes sets up user-related routes for search, public profile,
// profile update, and follow/unfollow
func UserRoutes(app *fiber.App) {
	user := app.Group("/api/v1/users")

	user.Get("/search", middleware.ProtectRoute, controllers.SearchUsers)
	user.Put("/profile", middleware.ProtectRoute, controllers.UpdateProfile)
	user.Post("/:id/follow", middleware.ProtectRoute, controllers.FollowUser)
	user.Delete("/:id/follow", middleware.ProtectRoute, controllers.UnfollowUser)
	user.Get("/:username", middleware.OptionalAuth, controllers.GetPublicProfile)
}
