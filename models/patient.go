package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Soin is one billable care record, owned by its patient. It has no lifecycle
// of its own: created, updated and deleted only through the patient endpoints.
type Soin struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PatientID   uint      `json:"patient_id" gorm:"index"`
	Date        time.Time `json:"date"`
	Dent        string    `json:"dent,omitempty"`
	Description string    `json:"description"`
	Honoraire   float64   `json:"honoraire"`
	Recu        float64   `json:"recu" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
}

type Patient struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	SequenceID     int64     `json:"sequenceId" gorm:"uniqueIndex"`
	Nom            string    `json:"nom"`
	Prenom         string    `json:"prenom"`
	DateNaissance  time.Time `json:"dateNaissance"`
	Telephone      string    `json:"telephone"`
	Email          string    `json:"email,omitempty"`
	Adresse        string    `json:"adresse,omitempty"`
	Mutuelle       string    `json:"mutuelle,omitempty"`
	NumeroMutuelle string    `json:"numeroMutuelle,omitempty"`
	Antecedents    string    `json:"antecedents,omitempty"`
	Soins          []Soin    `json:"soins"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Derived fields, recomputed on every read, never stored.
	NumeroPatient   string  `json:"numeroPatient" gorm:"-"`
	TotalHonoraires float64 `json:"totalHonoraires" gorm:"-"`
	TotalRecu       float64 `json:"totalRecu" gorm:"-"`
	DerniereSoin    *Soin   `json:"derniereSoin,omitempty" gorm:"-"`
}

// AfterFind fills the derived fields from the loaded soins.
func (p *Patient) AfterFind(tx *gorm.DB) error {
	p.Refresh()
	return nil
}

// Refresh recomputes the read model: formatted patient number, billed and
// received totals, and the most recent soin.
func (p *Patient) Refresh() {
	p.NumeroPatient = fmt.Sprintf("P%06d", p.SequenceID)
	p.TotalHonoraires = 0
	p.TotalRecu = 0
	p.DerniereSoin = nil
	for i := range p.Soins {
		soin := &p.Soins[i]
		p.TotalHonoraires += soin.Honoraire
		p.TotalRecu += soin.Recu
		if p.DerniereSoin == nil || soin.Date.After(p.DerniereSoin.Date) {
			p.DerniereSoin = soin
		}
	}
}
