package utils

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		kind string
		want int
	}{
		{ErrValidation, fiber.StatusBadRequest},
		{ErrNotFound, fiber.StatusNotFound},
		{ErrConflict, fiber.StatusConflict},
		{ErrAuthentication, fiber.StatusUnauthorized},
		{ErrForbidden, fiber.StatusForbidden},
		{ErrInternal, fiber.StatusInternalServerError},
		{"something_else", fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.kind); got != tt.want {
			t.Errorf("StatusFor(%q) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}
