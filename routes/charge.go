package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/cabinet-api/controllers"
	"github.com/meinhoongagan/cabinet-api/middleware"
)

// SetupChargeRoutes configures all expense related routes
func SetupChargeRoutes(app *fiber.App) {
	charge := app.Group("/charges", middleware.Protected())

	charge.Get("/stats", middleware.Authorize("charges", "read"), controllers.GetChargesStats)
	charge.Get("/monthly", middleware.Authorize("charges", "read"), controllers.GetChargesMonthly)

	charge.Get("/", middleware.Authorize("charges", "read"), controllers.GetCharges)
	charge.Get("/:id", middleware.Authorize("charges", "read"), controllers.GetCharge)
	charge.Post("/", middleware.Authorize("charges", "create"), controllers.CreateCharge)
	charge.Patch("/:id", middleware.Authorize("charges", "update"), controllers.UpdateCharge)
	charge.Delete("/:id", middleware.Authorize("charges", "delete"), controllers.DeleteCharge)
}
