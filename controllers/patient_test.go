package controllers

import "testing"

func TestParsePatientNumber(t *testing.T) {
	tests := []struct {
		input  string
		wantID int64
		wantOK bool
	}{
		{"123", 123, true},
		{"P000123", 123, true},
		{"p5", 5, true},
		{"P000007", 7, true},
		{"0", 0, true},
		{"Dupont", 0, false},
		{"P", 0, false},
		{"12a", 0, false},
		{"", 0, false},
		{"PP123", 0, false},
	}
	for _, tt := range tests {
		id, ok := parsePatientNumber(tt.input)
		if ok != tt.wantOK || id != tt.wantID {
			t.Errorf("parsePatientNumber(%q) = (%d, %v), want (%d, %v)",
				tt.input, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2026-08-28", false},
		{" 2026-08-28 ", false},
		{"2026-13-01", true},
		{"28/08/2026", true},
		{"2026-08-28T10:00:00Z", true},
		{"", true},
	}
	for _, tt := range tests {
		_, err := parseDate(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
