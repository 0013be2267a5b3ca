package middleware

import (
	"testing"

	"github.com/meinhoongagan/cabinet-api/models"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		want     bool
	}{
		{"admin manages users", models.RoleAdmin, "users", "create", true},
		{"medecin cannot manage users", models.RoleMedecin, "users", "create", false},
		{"assistant cannot read users", models.RoleAssistant, "users", "read", false},
		{"assistant reads patients", models.RoleAssistant, "patients", "read", true},
		{"medecin updates appointments", models.RoleMedecin, "appointments", "update", true},
		{"assistant reads bilan", models.RoleAssistant, "bilan", "read", true},
		{"admin reads stats", models.RoleAdmin, "stats", "read", true},
		{"unknown resource denied", models.RoleAdmin, "invoices", "read", false},
		{"unknown action denied", models.RoleAdmin, "patients", "export", false},
		{"unknown role denied", "guest", "patients", "read", false},
		{"empty role denied", "", "patients", "read", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.role, tt.resource, tt.action); got != tt.want {
				t.Errorf("Allowed(%q, %q, %q) = %v, want %v", tt.role, tt.resource, tt.action, got, tt.want)
			}
		})
	}
}

func TestEveryCapabilityNamesKnownRoles(t *testing.T) {
	for key, roles := range capabilities {
		if len(roles) == 0 {
			t.Errorf("capability %q grants no role", key)
		}
		for _, role := range roles {
			if !models.ValidRole(role) {
				t.Errorf("capability %q names unknown role %q", key, role)
			}
		}
	}
}
