package models

import (
	"gorm.io/gorm"
)

// Counter is a named monotonically increasing sequence. One row per name.
// Values are never reused, even after the records they numbered are deleted.
type Counter struct {
	Name  string `json:"name" gorm:"primaryKey"`
	Value int64  `json:"value"`
}

// NextSequence atomically increments the named counter and returns the new
// value. The counter row is created on first use, so the first call returns 1.
// The read-increment-return runs as a single statement: two concurrent calls
// for the same name can never see the same value.
func NextSequence(tx *gorm.DB, name string) (int64, error) {
	var value int64
	err := tx.Raw(`
		INSERT INTO counters (name, value)
		VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		RETURNING value
	`, name).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}
