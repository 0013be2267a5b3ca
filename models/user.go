package models

import (
	"time"
)

const (
	RoleAdmin     = "admin"
	RoleMedecin   = "medecin"
	RoleAssistant = "assistant"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleMedecin || role == RoleAssistant
}

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"unique"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	Nom       string    `json:"nom"`
	Prenom    string    `json:"prenom"`
	Role      string    `json:"role"`
	Telephone string    `json:"telephone,omitempty"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
