package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/cabinet-api/controllers"
	"github.com/meinhoongagan/cabinet-api/middleware"
)

// SetupUserRoutes configures all user administration routes, admin only
func SetupUserRoutes(app *fiber.App) {
	user := app.Group("/users", middleware.Protected())

	user.Get("/", middleware.Authorize("users", "read"), controllers.GetUsers)
	user.Get("/:id", middleware.Authorize("users", "read"), controllers.GetUser)
	user.Post("/", middleware.Authorize("users", "create"), controllers.CreateUser)
	user.Patch("/:id", middleware.Authorize("users", "update"), controllers.UpdateUser)
	user.Delete("/:id", middleware.Authorize("users", "delete"), controllers.DeleteUser)
}
