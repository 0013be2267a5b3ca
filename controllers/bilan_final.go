package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/cabinet-api/utils"
)

// GetBilanFinalStats returns the current month's bottom line: received care
// payments minus expenses. Revenue here means money actually collected, not
// billed honoraires.
func GetBilanFinalStats(c *fiber.Ctx) error {
	since := startOfMonth(time.Now())

	soins, err := aggregateSoins(since)
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute bilan final")
	}
	charges, err := aggregateCharges(since)
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute bilan final")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"revenus":  soins.TotalRecu,
			"charges":  charges.TotalMontant,
			"benefice": utils.Round2(soins.TotalRecu - charges.TotalMontant),
		},
	})
}

// GetBilanFinalMonthly returns revenue, expenses and profit per month for
// the trailing calendar months, newest first, zero-filled.
func GetBilanFinalMonthly(c *fiber.Ctx) error {
	now := time.Now()
	months := monthsParam(c)
	since := monthsAgo(now, months-1)

	soins, err := soinsByMonth(since)
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute monthly bilan final")
	}
	charges, err := chargesByMonth(since)
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to compute monthly bilan final")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fillBilanFinalMonths(now, months, soins, charges),
	})
}
