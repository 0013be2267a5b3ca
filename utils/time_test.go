package utils

import "testing"

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"23:59", 1439, false},
		{"9:00", 0, true},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"0900", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMinutes(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMinutes(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseMinutes(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestValidateTimeRange(t *testing.T) {
	tests := []struct {
		name    string
		debut   string
		fin     string
		wantErr bool
	}{
		{"valid 30 min", "09:00", "09:30", false},
		{"minimum duration", "09:00", "09:15", false},
		{"maximum duration", "09:00", "12:00", false},
		{"too short", "09:00", "09:10", true},
		{"too long", "09:00", "12:01", true},
		{"reversed", "10:00", "09:00", true},
		{"equal", "09:00", "09:00", true},
		{"bad start format", "9h00", "10:00", true},
		{"bad end format", "09:00", "25:00", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimeRange(tt.debut, tt.fin)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTimeRange(%q, %q) error = %v, wantErr %v", tt.debut, tt.fin, err, tt.wantErr)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{0, 0},
		{10.004, 10.0},
		{10.006, 10.01},
		{99.999, 100},
		{-10.006, -10.01},
		{1234.5, 1234.5},
		// Exactly representable half-cents round away from zero.
		{0.125, 0.13},
		{-0.125, -0.13},
	}
	for _, tt := range tests {
		if got := Round2(tt.input); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
