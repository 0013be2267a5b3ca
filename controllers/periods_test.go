package controllers

import (
	"testing"
	"time"
)

func TestStartOfWeek(t *testing.T) {
	// 2026-08-28 is a Friday; the week started Sunday the 23rd.
	friday := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)
	want := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	if got := startOfWeek(friday); !got.Equal(want) {
		t.Errorf("startOfWeek(%v) = %v, want %v", friday, got, want)
	}

	// A Sunday is its own week start.
	sunday := time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)
	if got := startOfWeek(sunday); !got.Equal(want) {
		t.Errorf("startOfWeek(%v) = %v, want %v", sunday, got, want)
	}
}

func TestMonthAt(t *testing.T) {
	now := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		offset    int
		wantYear  int
		wantMonth int
	}{
		{0, 2026, 2},
		{-1, 2026, 1},
		{-2, 2025, 12},
		{-13, 2025, 1},
		{1, 2026, 3},
	}
	for _, tt := range tests {
		y, m := monthAt(now, tt.offset)
		if y != tt.wantYear || m != tt.wantMonth {
			t.Errorf("monthAt(feb 2026, %d) = (%d, %d), want (%d, %d)",
				tt.offset, y, m, tt.wantYear, tt.wantMonth)
		}
	}
}

func TestMonthsAgo(t *testing.T) {
	// Offsets from a month start, not from the current day: asking from
	// March 31st must not skid into unexpected months.
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	want := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	if got := monthsAgo(now, 11); !got.Equal(want) {
		t.Errorf("monthsAgo(mar 31 2026, 11) = %v, want %v", got, want)
	}
}

func TestMonthKey(t *testing.T) {
	if got := monthKey(2026, 8); got != 202608 {
		t.Errorf("monthKey(2026, 8) = %d, want 202608", got)
	}
	if monthKey(2025, 12) == monthKey(2026, 1) {
		t.Error("adjacent months must not collide")
	}
}
