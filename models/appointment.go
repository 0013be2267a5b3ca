package models

import (
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the four known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Appointment struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	PatientID uint    `json:"patient_id" gorm:"index:idx_appointments_patient_date"`
	Patient   Patient `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	// PatientNom is a snapshot of "{nom} {prenom}" taken at creation. It is
	// not kept in sync with later renames.
	PatientNom string            `json:"patientNom"`
	Date       time.Time         `json:"date" gorm:"type:date;index:idx_appointments_patient_date"`
	HeureDebut string            `json:"heureDebut"` // "HH:mm", 24h
	HeureFin   string            `json:"heureFin"`   // "HH:mm", 24h
	Statut     AppointmentStatus `json:"statut"`
	Motif      string            `json:"motif,omitempty"`
	Notes      string            `json:"notes,omitempty"`
	CreatedBy  uint              `json:"created_by,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Statut == "" {
		a.Statut = StatusScheduled
	}
	return nil
}

// CanTransition reports whether the status change is allowed. Cancelled is
// terminal: a cancelled appointment cannot be revived, a new one has to be
// booked so the overlap check runs again. Every other transition is accepted.
func (a *Appointment) CanTransition(to AppointmentStatus) bool {
	if !to.Valid() {
		return false
	}
	if a.Statut == StatusCancelled && to != StatusCancelled {
		return false
	}
	return true
}
