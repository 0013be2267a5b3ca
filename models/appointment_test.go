package models

import "testing"

func TestAppointmentStatusValid(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []AppointmentStatus{"", "pending", "SCHEDULED", "done"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{"scheduled to confirmed", StatusScheduled, StatusConfirmed, true},
		{"scheduled to completed", StatusScheduled, StatusCompleted, true},
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"completed to confirmed", StatusCompleted, StatusConfirmed, true},
		{"completed to cancelled", StatusCompleted, StatusCancelled, true},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, false},
		{"cancelled to scheduled", StatusCancelled, StatusScheduled, false},
		{"cancelled to completed", StatusCancelled, StatusCompleted, false},
		{"cancelled stays cancelled", StatusCancelled, StatusCancelled, true},
		{"to invalid status", StatusScheduled, "pending", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Appointment{Statut: tt.from}
			if got := a.CanTransition(tt.to); got != tt.want {
				t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
