package utils

import (
	"fmt"
	"math"
	"regexp"
)

var clockTime = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

const (
	MinAppointmentMinutes = 15
	MaxAppointmentMinutes = 180
)

// ParseMinutes converts an "HH:mm" clock time (24h) to minutes since
// midnight. Rejects anything outside 00:00-23:59.
func ParseMinutes(s string) (int, error) {
	m := clockTime.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:mm", s)
	}
	var h, min int
	fmt.Sscanf(s, "%d:%d", &h, &min)
	return h*60 + min, nil
}

// ValidateTimeRange checks format, ordering and the duration bounds of an
// appointment slot. The returned error message is safe to show to callers.
func ValidateTimeRange(debut, fin string) error {
	start, err := ParseMinutes(debut)
	if err != nil {
		return err
	}
	end, err := ParseMinutes(fin)
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("start time must be before end time")
	}
	switch d := end - start; {
	case d < MinAppointmentMinutes:
		return fmt.Errorf("minimum duration is %d minutes", MinAppointmentMinutes)
	case d > MaxAppointmentMinutes:
		return fmt.Errorf("maximum duration is %d minutes", MaxAppointmentMinutes)
	}
	return nil
}

// Round2 rounds a currency amount to 2 decimal places. Every aggregate sum
// goes through this before leaving a handler.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
