package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nursetov/pixnest/src/controllers"
	"github.com/nursetov/pixnest/src/middleware"
)

// PostRoutes sets up post-related routes for feeds, creation, update,
// deletion, details, comments, and likes
func PostRoutes(app *fiber.App) {
	post := app.Group("/api/v1/posts")

	post.Get("/", middleware.OptionalAuth, controllers.GetGlobalFeed)
	post.Get("/feed", middleware.ProtectRoute, controllers.GetPersonalFeed)
	post.Post("/", middleware.ProtectRoute, controllers.CreatePost)
	post.Get("/:id", middleware.OptionalAuth, controllers.GetPostByID)
	post.Put("/:id", middleware.ProtectRoute, controllers.UpdatePost)
	post.Delete("/:id", middleware.ProtectRoute, controllers.DeletePost)
	post.Post("/:id/like", middleware.ProtectRoute, controllers.LikePost)
	post.Post("/:id/comment", middleware.ProtectRoute, controllers.CreateComment)
}
