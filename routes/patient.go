package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/cabinet-api/controllers"
	"github.com/meinhoongagan/cabinet-api/middleware"
)

// SetupPatientRoutes configures all patient related routes
func SetupPatientRoutes(app *fiber.App) {
	patient := app.Group("/patients", middleware.Protected())

	patient.Get("/", middleware.Authorize("patients", "read"), controllers.GetPatients)
	patient.Get("/:id", middleware.Authorize("patients", "read"), controllers.GetPatient)
	patient.Post("/", middleware.Authorize("patients", "create"), controllers.CreatePatient)
	patient.Patch("/:id", middleware.Authorize("patients", "update"), controllers.UpdatePatient)
	patient.Delete("/:id", middleware.Authorize("patients", "delete"), controllers.DeletePatient)

	// Care records are embedded in the patient
	patient.Post("/:id/soins", middleware.Authorize("patients", "update"), controllers.AddSoin)
	patient.Patch("/:id/soins/:soinId", middleware.Authorize("patients", "update"), controllers.UpdateSoin)
	patient.Delete("/:id/soins/:soinId", middleware.Authorize("patients", "update"), controllers.DeleteSoin)
}
