package models

import (
	"testing"
	"time"
)

func TestPatientRefresh(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}

	p := Patient{
		SequenceID: 7,
		Soins: []Soin{
			{Date: day(1), Honoraire: 100, Recu: 100},
			{Date: day(15), Honoraire: 250.50, Recu: 120},
			{Date: day(8), Honoraire: 80, Recu: 0},
		},
	}
	p.Refresh()

	if p.NumeroPatient != "P000007" {
		t.Errorf("NumeroPatient = %q, want P000007", p.NumeroPatient)
	}
	if p.TotalHonoraires != 430.50 {
		t.Errorf("TotalHonoraires = %v, want 430.50", p.TotalHonoraires)
	}
	if p.TotalRecu != 220 {
		t.Errorf("TotalRecu = %v, want 220", p.TotalRecu)
	}
	if p.DerniereSoin == nil {
		t.Fatal("DerniereSoin is nil")
	}
	if !p.DerniereSoin.Date.Equal(day(15)) {
		t.Errorf("DerniereSoin.Date = %v, want %v", p.DerniereSoin.Date, day(15))
	}
}

func TestPatientRefreshWithoutSoins(t *testing.T) {
	p := Patient{SequenceID: 123456}
	p.Refresh()

	if p.NumeroPatient != "P123456" {
		t.Errorf("NumeroPatient = %q, want P123456", p.NumeroPatient)
	}
	if p.TotalHonoraires != 0 || p.TotalRecu != 0 {
		t.Errorf("totals = (%v, %v), want zeros", p.TotalHonoraires, p.TotalRecu)
	}
	if p.DerniereSoin != nil {
		t.Errorf("DerniereSoin = %v, want nil", p.DerniereSoin)
	}
}

func TestPatientRefreshIsIdempotent(t *testing.T) {
	p := Patient{
		SequenceID: 1,
		Soins:      []Soin{{Date: time.Now(), Honoraire: 50, Recu: 25}},
	}
	p.Refresh()
	p.Refresh()

	if p.TotalHonoraires != 50 || p.TotalRecu != 25 {
		t.Errorf("totals after double refresh = (%v, %v), want (50, 25)", p.TotalHonoraires, p.TotalRecu)
	}
}
