package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/cabinet-api/models"
	"github.com/meinhoongagan/cabinet-api/utils"
)

var allRoles = []string{models.RoleAdmin, models.RoleMedecin, models.RoleAssistant}
var adminOnly = []string{models.RoleAdmin}

// capabilities declares, per resource:action, which roles may perform it.
// User management is admin territory; the clinic data is shared by the whole
// practice. One table, checked in one place, instead of role conditionals
// scattered through the handlers.
var capabilities = map[string][]string{
	"users:create": adminOnly,
	"users:read":   adminOnly,
	"users:update": adminOnly,
	"users:delete": adminOnly,

	"patients:create": allRoles,
	"patients:read":   allRoles,
	"patients:update": allRoles,
	"patients:delete": allRoles,

	"appointments:create": allRoles,
	"appointments:read":   allRoles,
	"appointments:update": allRoles,
	"appointments:delete": allRoles,

	"charges:create": allRoles,
	"charges:read":   allRoles,
	"charges:update": allRoles,
	"charges:delete": allRoles,

	"bilan:read": allRoles,
	"stats:read": allRoles,
}

// Allowed reports whether the role may perform action on resource. Unknown
// resource:action pairs are denied.
func Allowed(role, resource, action string) bool {
	for _, r := range capabilities[resource+":"+action] {
		if r == role {
			return true
		}
	}
	return false
}

// Authorize gates a route on the capability table. Must run after
// Protected(), which sets the role local.
func Authorize(resource, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return utils.Fail(c, utils.ErrAuthentication, "User role not found in context")
		}
		if !Allowed(role, resource, action) {
			return utils.Fail(c, utils.ErrForbidden, "You don't have permission to perform this action")
		}
		return c.Next()
	}
}
