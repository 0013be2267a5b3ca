package models

import (
	"time"
)

// Charge is a standalone practice expense, unrelated to any patient or
// appointment. Only the financial reports read it.
type Charge struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Date      time.Time `json:"date" gorm:"index"`
	Motif     string    `json:"motif"`
	Montant   float64   `json:"montant"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
