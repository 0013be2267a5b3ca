package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/cabinet-api/controllers"
	"github.com/meinhoongagan/cabinet-api/middleware"
)

// SetupStatsRoutes configures the dashboard statistics routes
func SetupStatsRoutes(app *fiber.App) {
	stats := app.Group("/stats", middleware.Protected(), middleware.Authorize("stats", "read"))

	stats.Get("/overview", controllers.GetOverviewStats)
	stats.Get("/appointments", controllers.GetAppointmentStats)
	stats.Get("/top-patients", controllers.GetTopPatients)
}
