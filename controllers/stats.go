package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/cabinet-api/db"
	"github.com/meinhoongagan/cabinet-api/models"
	"github.com/meinhoongagan/cabinet-api/utils"
)

// GetOverviewStats returns the dashboard counters: patient base size, new
// patients this month, today's and this month's appointment load (cancelled
// excluded) and this month's collected revenue.
func GetOverviewStats(c *fiber.Ctx) error {
	now := time.Now()
	today := startOfDay(now)
	month := startOfMonth(now)

	var totalPatients int64
	if err := db.DB.Model(&models.Patient{}).Count(&totalPatients).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute stats")
	}

	var patientsThisMonth int64
	if err := db.DB.Model(&models.Patient{}).
		Where("created_at >= ?", month).
		Count(&patientsThisMonth).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute stats")
	}

	var totalMedecins int64
	if err := db.DB.Model(&models.User{}).
		Where("role = ? AND is_active = ?", models.RoleMedecin, true).
		Count(&totalMedecins).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute stats")
	}

	var rendezVousToday int64
	if err := db.DB.Model(&models.Appointment{}).
		Where("date = ? AND statut <> ?", today, models.StatusCancelled).
		Count(&rendezVousToday).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute stats")
	}

	var rendezVousMonth int64
	if err := db.DB.Model(&models.Appointment{}).
		Where("date >= ? AND statut <> ?", month, models.StatusCancelled).
		Count(&rendezVousMonth).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute stats")
	}

	revenue, err := aggregateSoins(month)
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute stats")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"totalPatients":     totalPatients,
			"patientsThisMonth": patientsThisMonth,
			"totalMedecins":     totalMedecins,
			"rendezVousToday":   rendezVousToday,
			"rendezVousMonth":   rendezVousMonth,
			"revenusMonth":      revenue.TotalRecu,
		},
	})
}

// GetAppointmentStats breaks down this month's appointments by status,
// cancelled included so no-shows stay visible.
func GetAppointmentStats(c *fiber.Ctx) error {
	month := startOfMonth(time.Now())

	type statusCount struct {
		Statut string
		Count  int64
	}
	var rows []statusCount
	if err := db.DB.Model(&models.Appointment{}).
		Select("statut, COUNT(*) AS count").
		Where("date >= ?", month).
		Group("statut").
		Scan(&rows).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute appointment stats")
	}

	counts := fiber.Map{
		string(models.StatusScheduled): int64(0),
		string(models.StatusConfirmed): int64(0),
		string(models.StatusCompleted): int64(0),
		string(models.StatusCancelled): int64(0),
	}
	var total int64
	for _, row := range rows {
		counts[row.Statut] = row.Count
		total += row.Count
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total":     total,
			"parStatut": counts,
		},
	})
}
