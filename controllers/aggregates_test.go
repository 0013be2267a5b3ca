package controllers

import (
	"testing"
	"time"
)

func TestFillBilanMonths(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	rows := map[int]soinMonthRow{
		monthKey(2026, 8): {Year: 2026, Month: 8, TotalHonoraires: 1500, TotalRecu: 1200, NombreSoins: 12, NombrePatients: 8},
		monthKey(2026, 3): {Year: 2026, Month: 3, TotalHonoraires: 300.556, TotalRecu: 100, NombreSoins: 2, NombrePatients: 2},
	}

	result := fillBilanMonths(now, 12, rows)

	if len(result) != 12 {
		t.Fatalf("len(result) = %d, want 12", len(result))
	}

	// Oldest first: 12 months back from August 2026 is September 2025.
	if result[0].Year != 2025 || result[0].Month != 9 {
		t.Errorf("first entry = %d-%d, want 2025-9", result[0].Year, result[0].Month)
	}
	last := result[11]
	if last.Year != 2026 || last.Month != 8 {
		t.Errorf("last entry = %d-%d, want 2026-8", last.Year, last.Month)
	}
	if last.TotalHonoraires != 1500 || last.TotalRecu != 1200 {
		t.Errorf("last entry totals = (%v, %v), want (1500, 1200)", last.TotalHonoraires, last.TotalRecu)
	}
	if last.ResteAPayer != 300 {
		t.Errorf("last entry resteAPayer = %v, want 300", last.ResteAPayer)
	}

	// Months without activity are filled with zeros.
	empty := result[10] // July 2026
	if empty.Year != 2026 || empty.Month != 7 {
		t.Fatalf("entry 10 = %d-%d, want 2026-7", empty.Year, empty.Month)
	}
	if empty.TotalHonoraires != 0 || empty.TotalRecu != 0 || empty.NombreSoins != 0 || empty.NombrePatients != 0 {
		t.Errorf("empty month not zero-filled: %+v", empty)
	}

	// Sums are rounded to cents.
	march := result[6]
	if march.Month != 3 {
		t.Fatalf("entry 6 month = %d, want 3", march.Month)
	}
	if march.TotalHonoraires != 300.56 {
		t.Errorf("march totalHonoraires = %v, want 300.56", march.TotalHonoraires)
	}
}

func TestFillBilanFinalMonths(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	soins := map[int]soinMonthRow{
		monthKey(2026, 8): {TotalRecu: 2000},
		monthKey(2026, 7): {TotalRecu: 1000},
	}
	charges := map[int]chargeMonthRow{
		monthKey(2026, 8): {TotalMontant: 500},
		monthKey(2026, 6): {TotalMontant: 250},
	}

	result := fillBilanFinalMonths(now, 12, soins, charges)

	if len(result) != 12 {
		t.Fatalf("len(result) = %d, want 12", len(result))
	}

	// Newest first.
	current := result[0]
	if current.Year != 2026 || current.Month != 8 {
		t.Fatalf("first entry = %d-%d, want 2026-8", current.Year, current.Month)
	}
	if current.Revenus != 2000 || current.Charges != 500 || current.Benefice != 1500 {
		t.Errorf("current month = %+v, want revenus 2000, charges 500, benefice 1500", current)
	}

	// Expenses without matching revenue make a negative benefice.
	june := result[2]
	if june.Month != 6 {
		t.Fatalf("entry 2 month = %d, want 6", june.Month)
	}
	if june.Revenus != 0 || june.Charges != 250 || june.Benefice != -250 {
		t.Errorf("june = %+v, want revenus 0, charges 250, benefice -250", june)
	}

	oldest := result[11]
	if oldest.Year != 2025 || oldest.Month != 9 {
		t.Errorf("oldest entry = %d-%d, want 2025-9", oldest.Year, oldest.Month)
	}
}
