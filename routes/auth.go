package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/cabinet-api/controllers"
	"github.com/meinhoongagan/cabinet-api/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.Refresh)

	// Protected routes
	auth.Post("/register", middleware.Protected(), middleware.Authorize("users", "create"), controllers.CreateUser)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
	auth.Get("/me", middleware.Protected(), controllers.GetMe)
}
