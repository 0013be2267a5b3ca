package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/cabinet-api/db"
	"github.com/meinhoongagan/cabinet-api/models"
	"github.com/meinhoongagan/cabinet-api/utils"
)

// GetCharges lists practice expenses with pagination and motif search.
func GetCharges(c *fiber.Ctx) error {
	page, limit, offset := utils.ParsePage(c, 20)

	query := db.DB.Model(&models.Charge{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where("motif ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to count charges")
	}

	var charges []models.Charge
	if err := query.Order("date desc").Offset(offset).Limit(limit).Find(&charges).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to fetch charges")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"charges":    charges,
			"pagination": utils.NewPagination(page, limit, total),
		},
	})
}

// GetCharge returns one charge by id.
func GetCharge(c *fiber.Ctx) error {
	var charge models.Charge
	if err := db.DB.First(&charge, c.Params("id")).Error; err != nil {
		return utils.Fail(c, utils.ErrNotFound, "Charge not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    charge,
	})
}

// CreateCharge records an expense. Date defaults to now.
func CreateCharge(c *fiber.Ctx) error {
	type CreateChargeInput struct {
		Date    *time.Time `json:"date"`
		Motif   string     `json:"motif"`
		Montant *float64   `json:"montant"`
	}

	input := new(CreateChargeInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, utils.ErrValidation, "Cannot parse JSON")
	}

	if strings.TrimSpace(input.Motif) == "" {
		return utils.Fail(c, utils.ErrValidation, "Motif is required")
	}
	if input.Montant == nil || *input.Montant < 0 {
		return utils.Fail(c, utils.ErrValidation, "Montant is required and must be positive")
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	charge := models.Charge{
		Date:    date,
		Motif:   strings.TrimSpace(input.Motif),
		Montant: *input.Montant,
	}
	if err := db.DB.Create(&charge).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to create charge")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Charge created",
		"data":    charge,
	})
}

// UpdateCharge edits an expense.
func UpdateCharge(c *fiber.Ctx) error {
	type UpdateChargeInput struct {
		Date    *time.Time `json:"date"`
		Motif   *string    `json:"motif"`
		Montant *float64   `json:"montant"`
	}

	input := new(UpdateChargeInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, utils.ErrValidation, "Cannot parse JSON")
	}

	var charge models.Charge
	if err := db.DB.First(&charge, c.Params("id")).Error; err != nil {
		return utils.Fail(c, utils.ErrNotFound, "Charge not found")
	}

	if input.Date != nil {
		charge.Date = *input.Date
	}
	if input.Motif != nil {
		if strings.TrimSpace(*input.Motif) == "" {
			return utils.Fail(c, utils.ErrValidation, "Motif cannot be empty")
		}
		charge.Motif = strings.TrimSpace(*input.Motif)
	}
	if input.Montant != nil {
		if *input.Montant < 0 {
			return utils.Fail(c, utils.ErrValidation, "Montant must be positive")
		}
		charge.Montant = *input.Montant
	}

	if err := db.DB.Save(&charge).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to update charge")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Charge updated",
		"data":    charge,
	})
}

// DeleteCharge removes an expense.
func DeleteCharge(c *fiber.Ctx) error {
	var charge models.Charge
	if err := db.DB.First(&charge, c.Params("id")).Error; err != nil {
		return utils.Fail(c, utils.ErrNotFound, "Charge not found")
	}

	if err := db.DB.Delete(&charge).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to delete charge")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Charge deleted",
	})
}

// GetChargesStats returns expense totals for the current day, week and
// month. Recomputed on every call, nothing cached.
func GetChargesStats(c *fiber.Ctx) error {
	now := time.Now()

	day, err := aggregateCharges(startOfDay(now))
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute charge stats")
	}
	week, err := aggregateCharges(startOfWeek(now))
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute charge stats")
	}
	month, err := aggregateCharges(startOfMonth(now))
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute charge stats")
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

// GetChargesMonthly returns expense totals for the trailing calendar months,
// zero-filled for months without activity, oldest first.
func GetChargesMonthly(c *fiber.Ctx) error {
	now := time.Now()
	months := monthsParam(c)

	rows, err := chargesByMonth(monthsAgo(now, months-1))
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute monthly charges")
	}

	result := make([]ChargeMonthly, 0, months)
	for i := months - 1; i >= 0; i-- {
		y, m := monthAt(now, -i)
		row := rows[monthKey(y, m)]
		result = append(result, ChargeMonthly{
			Year:          y,
			Month:         m,
			TotalMontant:  utils.Round2(row.TotalMontant),
			NombreCharges: row.NombreCharges,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}
