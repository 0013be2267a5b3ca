package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/cabinet-api/controllers"
	"github.com/meinhoongagan/cabinet-api/middleware"
)

// SetupBilanRoutes configures the financial report routes
func SetupBilanRoutes(app *fiber.App) {
	bilan := app.Group("/bilan", middleware.Protected(), middleware.Authorize("bilan", "read"))

	bilan.Get("/stats", controllers.GetBilanStats)
	bilan.Get("/monthly", controllers.GetBilanMonthly)
	bilan.Get("/top-patients", controllers.GetTopPatients)
	bilan.Get("/overall", controllers.GetBilanOverall)

	// Net result: received revenue against expenses
	bilanFinal := app.Group("/bilan-final", middleware.Protected(), middleware.Authorize("bilan", "read"))

	bilanFinal.Get("/stats", controllers.GetBilanFinalStats)
	bilanFinal.Get("/monthly", controllers.GetBilanFinalMonthly)
}
