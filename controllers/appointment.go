package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/cabinet-api/db"
	"github.com/meinhoongagan/cabinet-api/models"
	"github.com/meinhoongagan/cabinet-api/utils"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}

// GetAppointments lists appointments with filters: exact date, date range,
// patient and status. Cancelled appointments are excluded unless asked for
// explicitly. Sorted by (date, heureDebut) ascending, paginated.
func GetAppointments(c *fiber.Ctx) error {
	page, limit, offset := utils.ParsePage(c, 50)

	query := db.DB.Model(&models.Appointment{})

	if statut := c.Query("statut"); statut != "" {
		if !models.AppointmentStatus(statut).Valid() {
			return utils.Fail(c, utils.ErrValidation, "Invalid statut filter")
		}
		query = query.Where("statut = ?", statut)
	} else if c.Query("includeCancelled") != "true" {
		query = query.Where("statut <> ?", models.StatusCancelled)
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			return utils.Fail(c, utils.ErrValidation, "Invalid date, expected YYYY-MM-DD")
		}
		query = query.Where("date = ?", date)
	} else if c.Query("startDate") != "" && c.Query("endDate") != "" {
		start, err := parseDate(c.Query("startDate"))
		if err != nil {
			return utils.Fail(c, utils.ErrValidation, "Invalid startDate, expected YYYY-MM-DD")
		}
		end, err := parseDate(c.Query("endDate"))
		if err != nil {
			return utils.Fail(c, utils.ErrValidation, "Invalid endDate, expected YYYY-MM-DD")
		}
		query = query.Where("date BETWEEN ? AND ?", start, end)
	}

	if patientID := c.QueryInt("patientId"); patientID > 0 {
		query = query.Where("patient_id = ?", patientID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to count appointments")
	}

	var appointments []models.Appointment
	if err := query.Preload("Patient").
		Order("date asc, heure_debut asc").
		Offset(offset).Limit(limit).
		Find(&appointments).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to fetch appointments")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"appointments": appointments,
			"pagination":   utils.NewPagination(page, limit, total),
		},
	})
}

// GetAppointment returns one appointment by id.
func GetAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := db.DB.Preload("Patient").First(&appointment, c.Params("id")).Error; err != nil {
		return utils.Fail(c, utils.ErrNotFound, "Appointment not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    appointment,
	})
}

// CreateAppointment books a slot. Validation order: time format and duration
// first, then patient lookup, then the overlap check inside a transaction
// that locks the patient's day, so two concurrent creates for the same slot
// cannot both pass.
func CreateAppointment(c *fiber.Ctx) error {
	type CreateAppointmentInput struct {
		PatientID  uint   `json:"patientId"`
		Date       string `json:"date"`
		HeureDebut string `json:"heureDebut"`
		HeureFin   string `json:"heureFin"`
		Motif      string `json:"motif"`
		Notes      string `json:"notes"`
	}

	input := new(CreateAppointmentInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, utils.ErrValidation, "Cannot parse JSON")
	}

	if input.PatientID == 0 || input.Date == "" || input.HeureDebut == "" || input.HeureFin == "" {
		return utils.Fail(c, utils.ErrValidation, "Missing required fields: patientId, date, heureDebut, heureFin")
	}
	date, err := parseDate(input.Date)
	if err != nil {
		return utils.Fail(c, utils.ErrValidation, "Invalid date, expected YYYY-MM-DD")
	}
	if err := utils.ValidateTimeRange(input.HeureDebut, input.HeureFin); err != nil {
		return utils.Fail(c, utils.ErrValidation, err.Error())
	}

	var patient models.Patient
	if err := db.DB.First(&patient, input.PatientID).Error; err != nil {
		return utils.Fail(c, utils.ErrNotFound, "Patient not found")
	}

	createdBy, _ := c.Locals("userID").(uint)
	appointment := models.Appointment{
		PatientID:  patient.ID,
		PatientNom: patient.Nom + " " + patient.Prenom,
		Date:       date,
		HeureDebut: input.HeureDebut,
		HeureFin:   input.HeureFin,
		Statut:     models.StatusScheduled,
		Motif:      strings.TrimSpace(input.Motif),
		Notes:      strings.TrimSpace(input.Notes),
		CreatedBy:  createdBy,
	}

	var conflict *models.Appointment
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := utils.LockSchedule(tx, patient.ID, date); err != nil {
			return err
		}
		existing, err := utils.FindOverlapping(tx, patient.ID, date, input.HeureDebut, input.HeureFin, 0)
		if err != nil {
			return err
		}
		if existing != nil {
			conflict = existing
			return gorm.ErrInvalidData // roll back, surfaced as conflict below
		}
		return tx.Create(&appointment).Error
	})
	if conflict != nil {
		return utils.FailWithData(c, utils.ErrConflict, "This slot is already taken", conflict)
	}
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to create appointment")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Appointment created",
		"data":    appointment,
	})
}

// UpdateAppointment edits a slot. When date or times change, the overlap
// check reruns with the appointment itself excluded from the comparison set.
// Status changes go through the transition rule: cancelled is terminal.
func UpdateAppointment(c *fiber.Ctx) error {
	type UpdateAppointmentInput struct {
		Date       *string `json:"date"`
		HeureDebut *string `json:"heureDebut"`
		HeureFin   *string `json:"heureFin"`
		Statut     *string `json:"statut"`
		Motif      *string `json:"motif"`
		Notes      *string `json:"notes"`
	}

	input := new(UpdateAppointmentInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, utils.ErrValidation, "Cannot parse JSON")
	}

	var appointment models.Appointment
	if err := db.DB.First(&appointment, c.Params("id")).Error; err != nil {
		return utils.Fail(c, utils.ErrNotFound, "Appointment not found")
	}

	if input.Statut != nil {
		newStatus := models.AppointmentStatus(*input.Statut)
		if !newStatus.Valid() {
			return utils.Fail(c, utils.ErrValidation, "Invalid statut")
		}
		if !appointment.CanTransition(newStatus) {
			return utils.Fail(c, utils.ErrValidation, "A cancelled appointment cannot be reopened, book a new one")
		}
		appointment.Statut = newStatus
	}
	if input.Motif != nil {
		appointment.Motif = strings.TrimSpace(*input.Motif)
	}
	if input.Notes != nil {
		appointment.Notes = strings.TrimSpace(*input.Notes)
	}

	rescheduled := input.Date != nil || input.HeureDebut != nil || input.HeureFin != nil
	if rescheduled {
		newDate := appointment.Date
		if input.Date != nil {
			parsed, err := parseDate(*input.Date)
			if err != nil {
				return utils.Fail(c, utils.ErrValidation, "Invalid date, expected YYYY-MM-DD")
			}
			newDate = parsed
		}
		newDebut := appointment.HeureDebut
		if input.HeureDebut != nil {
			newDebut = *input.HeureDebut
		}
		newFin := appointment.HeureFin
		if input.HeureFin != nil {
			newFin = *input.HeureFin
		}
		if err := utils.ValidateTimeRange(newDebut, newFin); err != nil {
			return utils.Fail(c, utils.ErrValidation, err.Error())
		}
		appointment.Date = newDate
		appointment.HeureDebut = newDebut
		appointment.HeureFin = newFin
	}

	var conflict *models.Appointment
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if rescheduled {
			if err := utils.LockSchedule(tx, appointment.PatientID, appointment.Date); err != nil {
				return err
			}
			existing, err := utils.FindOverlapping(tx, appointment.PatientID, appointment.Date,
				appointment.HeureDebut, appointment.HeureFin, appointment.ID)
			if err != nil {
				return err
			}
			if existing != nil {
				conflict = existing
				return gorm.ErrInvalidData
			}
		}
		return tx.Save(&appointment).Error
	})
	if conflict != nil {
		return utils.FailWithData(c, utils.ErrConflict, "This slot is already taken", conflict)
	}
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to update appointment")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Appointment updated",
		"data":    appointment,
	})
}

// DeleteAppointment permanently removes an appointment. This is not a
// cancellation: cancelling keeps the record with statut=cancelled, deletion
// leaves nothing behind.
func DeleteAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := db.DB.First(&appointment, c.Params("id")).Error; err != nil {
		return utils.Fail(c, utils.ErrNotFound, "Appointment not found")
	}

	if err := db.DB.Delete(&appointment).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to delete appointment")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Appointment deleted",
	})
}
