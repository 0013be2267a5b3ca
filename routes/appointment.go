package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/cabinet-api/controllers"
	"github.com/meinhoongagan/cabinet-api/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments", middleware.Protected())

	appointment.Get("/", middleware.Authorize("appointments", "read"), controllers.GetAppointments)
	appointment.Get("/:id", middleware.Authorize("appointments", "read"), controllers.GetAppointment)
	appointment.Post("/", middleware.Authorize("appointments", "create"), controllers.CreateAppointment)
	appointment.Patch("/:id", middleware.Authorize("appointments", "update"), controllers.UpdateAppointment)
	appointment.Delete("/:id", middleware.Authorize("appointments", "delete"), controllers.DeleteAppointment)
}
