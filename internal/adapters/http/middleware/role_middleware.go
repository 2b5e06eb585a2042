package middleware

import (
	"vetkom-cpd-admin/internal/core/domain"
	"vetkom-cpd-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RoleHeader carries the caller's role. The value is taken at face value;
// there is no token behind it.
const RoleHeader = "X-User-Role"

// RoleKey is the locals key the parsed role is stored under.
const RoleKey = "role"

// RequireKnownRole rejects requests whose role header does not name one of
// the known admin UI roles. Both Administrator and EventManager pass.
func RequireKnownRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := domain.ParseRole(c.Get(RoleHeader))
		if !ok {
			return response.Forbidden(c, "Unknown role")
		}
		c.Locals(RoleKey, role)
		return c.Next()
	}
}

// RequireFileAccess guards the file attachment routes. Runs after
// RequireKnownRole, so the role in locals is always set.
func RequireFileAccess() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(RoleKey).(domain.Role)
		if !domain.CanAccessFiles(role) {
			return response.Forbidden(c, "Role has no access to files")
		}
		return c.Next()
	}
}
