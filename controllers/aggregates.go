package controllers

import (
	"time"

	"github.com/meinhoongagan/cabinet-api/db"
	"github.com/meinhoongagan/cabinet-api/models"
	"github.com/meinhoongagan/cabinet-api/utils"
)

// SQL rollups backing the bilan and charge reports. All sums are COALESCEd
// so an empty window answers zeros, not NULLs.

type SoinAgg struct {
	TotalHonoraires float64 `json:"totalHonoraires"`
	TotalRecu       float64 `json:"totalRecu"`
	NombreSoins     int64   `json:"nombreSoins"`
}

type ChargeAgg struct {
	TotalMontant  float64 `json:"totalMontant"`
	NombreCharges int64   `json:"nombreCharges"`
}

type soinMonthRow struct {
	Year            int
	Month           int
	TotalHonoraires float64
	TotalRecu       float64
	NombreSoins     int64
	NombrePatients  int64
}

type chargeMonthRow struct {
	Year          int
	Month         int
	TotalMontant  float64
	NombreCharges int64
}

// ChargeMonthly is one row of the monthly expense report.
type ChargeMonthly struct {
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	TotalMontant  float64 `json:"totalMontant"`
	NombreCharges int64   `json:"nombreCharges"`
}

// BilanMonthly is one row of the monthly care report. ResteAPayer is the
// billed-but-unpaid remainder for the month.
type BilanMonthly struct {
	Year            int     `json:"year"`
	Month           int     `json:"month"`
	TotalHonoraires float64 `json:"totalHonoraires"`
	TotalRecu       float64 `json:"totalRecu"`
	NombreSoins     int64   `json:"nombreSoins"`
	NombrePatients  int64   `json:"nombrePatients"`
	ResteAPayer     float64 `json:"resteAPayer"`
}

// BilanFinalMonthly is one row of the monthly profit report: received care
// payments against expenses.
type BilanFinalMonthly struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Revenus  float64 `json:"revenus"`
	Charges  float64 `json:"charges"`
	Benefice float64 `json:"benefice"`
}

func aggregateSoins(since time.Time) (SoinAgg, error) {
	var agg SoinAgg
	err := db.DB.Model(&models.Soin{}).
		Select("COALESCE(SUM(honoraire),0) AS total_honoraires, COALESCE(SUM(recu),0) AS total_recu, COUNT(*) AS nombre_soins").
		Where("date >= ?", since).
		Scan(&agg).Error
	if err != nil {
		return SoinAgg{}, err
	}
	agg.TotalHonoraires = utils.Round2(agg.TotalHonoraires)
	agg.TotalRecu = utils.Round2(agg.TotalRecu)
	return agg, nil
}

func aggregateCharges(since time.Time) (ChargeAgg, error) {
	var agg ChargeAgg
	err := db.DB.Model(&models.Charge{}).
		Select("COALESCE(SUM(montant),0) AS total_montant, COUNT(*) AS nombre_charges").
		Where("date >= ?", since).
		Scan(&agg).Error
	if err != nil {
		return ChargeAgg{}, err
	}
	agg.TotalMontant = utils.Round2(agg.TotalMontant)
	return agg, nil
}

func soinsByMonth(since time.Time) (map[int]soinMonthRow, error) {
	var rows []soinMonthRow
	err := db.DB.Model(&models.Soin{}).
		Select(`EXTRACT(YEAR FROM date)::int AS year,
			EXTRACT(MONTH FROM date)::int AS month,
			COALESCE(SUM(honoraire),0) AS total_honoraires,
			COALESCE(SUM(recu),0) AS total_recu,
			COUNT(*) AS nombre_soins,
			COUNT(DISTINCT patient_id) AS nombre_patients`).
		Where("date >= ?", since).
		Group("1, 2").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	byMonth := make(map[int]soinMonthRow, len(rows))
	for _, row := range rows {
		byMonth[monthKey(row.Year, row.Month)] = row
	}
	return byMonth, nil
}

func chargesByMonth(since time.Time) (map[int]chargeMonthRow, error) {
	var rows []chargeMonthRow
	err := db.DB.Model(&models.Charge{}).
		Select(`EXTRACT(YEAR FROM date)::int AS year,
			EXTRACT(MONTH FROM date)::int AS month,
			COALESCE(SUM(montant),0) AS total_montant,
			COUNT(*) AS nombre_charges`).
		Where("date >= ?", since).
		Group("1, 2").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	byMonth := make(map[int]chargeMonthRow, len(rows))
	for _, row := range rows {
		byMonth[monthKey(row.Year, row.Month)] = row
	}
	return byMonth, nil
}

// fillBilanMonths expands sparse per-month rollups into a dense 12-entry
// series, oldest month first, with zeros where nothing happened.
func fillBilanMonths(now time.Time, months int, rows map[int]soinMonthRow) []BilanMonthly {
	result := make([]BilanMonthly, 0, months)
	for i := months - 1; i >= 0; i-- {
		y, m := monthAt(now, -i)
		row := rows[monthKey(y, m)]
		result = append(result, BilanMonthly{
			Year:            y,
			Month:           m,
			TotalHonoraires: utils.Round2(row.TotalHonoraires),
			TotalRecu:       utils.Round2(row.TotalRecu),
			NombreSoins:     row.NombreSoins,
			NombrePatients:  row.NombrePatients,
			ResteAPayer:     utils.Round2(row.TotalHonoraires - row.TotalRecu),
		})
	}
	return result
}

// fillBilanFinalMonths builds the profit series, newest month first.
func fillBilanFinalMonths(now time.Time, months int, soins map[int]soinMonthRow, charges map[int]chargeMonthRow) []BilanFinalMonthly {
	result := make([]BilanFinalMonthly, 0, months)
	for i := 0; i < months; i++ {
		y, m := monthAt(now, -i)
		key := monthKey(y, m)
		revenus := soins[key].TotalRecu
		montant := charges[key].TotalMontant
		result = append(result, BilanFinalMonthly{
			Year:     y,
			Month:    m,
			Revenus:  utils.Round2(revenus),
			Charges:  utils.Round2(montant),
			Benefice: utils.Round2(revenus - montant),
		})
	}
	return result
}
