package utils

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{"partial overlap", "09:00", "10:00", "09:30", "10:30", true},
		{"touching slots do not overlap", "09:00", "10:00", "10:00", "11:00", false},
		{"touching the other way", "10:00", "11:00", "09:00", "10:00", false},
		{"b inside a", "09:00", "12:00", "10:00", "11:00", true},
		{"a inside b", "10:00", "11:00", "09:00", "12:00", true},
		{"identical", "09:00", "10:00", "09:00", "10:00", true},
		{"disjoint", "09:00", "10:00", "14:00", "15:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
			// Overlap is symmetric
			if got := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v",
					tt.bStart, tt.bEnd, tt.aStart, tt.aEnd, got, tt.want)
			}
		})
	}
}
