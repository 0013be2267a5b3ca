package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/cabinet-api/db"
	"github.com/meinhoongagan/cabinet-api/models"
	"github.com/meinhoongagan/cabinet-api/utils"
)

// GetBilanStats returns care revenue for the current day, week and month.
// totalHonoraires is what was billed, totalRecu what actually came in; the
// two only match once every patient has settled.
func GetBilanStats(c *fiber.Ctx) error {
	now := time.Now()

	day, err := aggregateSoins(startOfDay(now))
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute bilan stats")
	}
	week, err := aggregateSoins(startOfWeek(now))
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute bilan stats")
	}
	month, err := aggregateSoins(startOfMonth(now))
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute bilan stats")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"jour":    day,
			"semaine": week,
			"mois":    month,
		},
	})
}

// monthsParam reads the ?months= window size, default 12, clamped to [1, 24].
func monthsParam(c *fiber.Ctx) int {
	months := c.QueryInt("months", 12)
	if months < 1 {
		months = 12
	}
	if months > 24 {
		months = 24
	}
	return months
}

// GetBilanMonthly returns the trailing calendar months of care activity,
// zero-filled, oldest first.
func GetBilanMonthly(c *fiber.Ctx) error {
	now := time.Now()
	months := monthsParam(c)

	rows, err := soinsByMonth(monthsAgo(now, months-1))
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute monthly bilan")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fillBilanMonths(now, months, rows),
	})
}

// GetTopPatients ranks patients by total received payments, best payers
// first. Limit defaults to 10, capped at 50.
func GetTopPatients(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	type TopPatient struct {
		PatientID       uint    `json:"patientId"`
		Nom             string  `json:"nom"`
		Prenom          string  `json:"prenom"`
		TotalHonoraires float64 `json:"totalHonoraires"`
		TotalRecu       float64 `json:"totalRecu"`
		NombreSoins     int64   `json:"nombreSoins"`
	}

	var top []TopPatient
	err := db.DB.Model(&models.Soin{}).
		Select(`soins.patient_id AS patient_id,
			patients.nom AS nom,
			patients.prenom AS prenom,
			COALESCE(SUM(soins.honoraire),0) AS total_honoraires,
			COALESCE(SUM(soins.recu),0) AS total_recu,
			COUNT(*) AS nombre_soins`).
		Joins("JOIN patients ON patients.id = soins.patient_id").
		Group("soins.patient_id, patients.nom, patients.prenom").
		Order("total_recu desc").
		Limit(limit).
		Scan(&top).Error
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute top patients")
	}

	for i := range top {
		top[i].TotalHonoraires = utils.Round2(top[i].TotalHonoraires)
		top[i].TotalRecu = utils.Round2(top[i].TotalRecu)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    top,
	})
}

// GetBilanOverall returns all-time totals across the whole patient base.
func GetBilanOverall(c *fiber.Ctx) error {
	all, err := aggregateSoins(time.Time{})
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute overall bilan")
	}

	var totalPatients int64
	if err := db.DB.Model(&models.Patient{}).Count(&totalPatients).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to count patients")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"totalHonoraires": all.TotalHonoraires,
			"totalRecu":       all.TotalRecu,
			"nombreSoins":     all.NombreSoins,
			"totalPatients":   totalPatients,
			"resteAPayer":     utils.Round2(all.TotalHonoraires - all.TotalRecu),
		},
	})
}
