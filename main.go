package main

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/nursetov/pixnest/src/lib"
	"github.com/nursetov/pixnest/src/routes"
)

func main() {

	app := fiber.New()

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:5173",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Connect to SQLite database
	lib.ConnectDB()

	lib.AutoMigrate()

	// Register routes
	routes.AuthRoutes(app)
	routes.UserRoutes(app)
	routes.PostRoutes(app)
	routes.NotificationRoutes(app)

	// Get the server port from environment variable or use default
	var port string = os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Serve uploaded media from the public directory
	app.Static("/", "./public")

	fmt.Printf("Server is running on port %s\n", port)
	// Start the Fiber server on the specified port
	app.Listen(":" + port)
}
