package utils

import (
	"errors"
	"time"

	"github.com/meinhoongagan/cabinet-api/models"
	"gorm.io/gorm"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Times are "HH:mm" strings: lexicographic order
// matches clock order, so slots that merely touch do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// LockSchedule serializes all writers of one patient's day. It must be called
// inside a transaction; the lock is released on commit or rollback. Without
// it, two concurrent creates for the same free slot could both pass the
// overlap check before either row exists.
func LockSchedule(tx *gorm.DB, patientID uint, date time.Time) error {
	key := int64(patientID)<<32 | int64(date.Year()*10000+int(date.Month())*100+date.Day())
	return tx.Exec(`SELECT pg_advisory_xact_lock(?)`, key).Error
}

// FindOverlapping returns the first non-cancelled appointment of the patient
// on the given date whose interval intersects [heureDebut, heureFin).
// excludeID skips the appointment being updated; pass 0 on create. Returns
// nil when the slot is free.
func FindOverlapping(tx *gorm.DB, patientID uint, date time.Time, heureDebut, heureFin string, excludeID uint) (*models.Appointment, error) {
	query := tx.
		Where("patient_id = ? AND date = ?", patientID, date).
		Where("statut <> ?", models.StatusCancelled).
		Where("heure_debut < ? AND ? < heure_fin", heureFin, heureDebut)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var existing models.Appointment
	if err := query.First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &existing, nil
}
