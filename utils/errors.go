package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Stable error kinds carried in every failure envelope. Clients branch on
// these, messages are for humans.
const (
	ErrValidation     = "validation_error"
	ErrNotFound       = "not_found"
	ErrConflict       = "conflict"
	ErrAuthentication = "authentication_error"
	ErrForbidden      = "forbidden"
	ErrInternal       = "internal_error"
)

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind string) int {
	switch kind {
	case ErrValidation:
		return fiber.StatusBadRequest
	case ErrNotFound:
		return fiber.StatusNotFound
	case ErrConflict:
		return fiber.StatusConflict
	case ErrAuthentication:
		return fiber.StatusUnauthorized
	case ErrForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// Fail writes the standard failure envelope.
func Fail(c *fiber.Ctx, kind, message string) error {
	return c.Status(StatusFor(kind)).JSON(fiber.Map{
		"success": false,
		"error":   kind,
		"message": message,
	})
}

// FailWithData writes the failure envelope with a payload, e.g. the
// conflicting appointment on an overlap rejection.
func FailWithData(c *fiber.Ctx, kind, message string, data interface{}) error {
	return c.Status(StatusFor(kind)).JSON(fiber.Map{
		"success": false,
		"error":   kind,
		"message": message,
		"data":    data,
	})
}
