package auth

import (
	"github.com/gofiber/fiber/v2"

	"scholax_backend/internals/constants"
	helper "scholax_backend/internals/helpers"
)

// RoleMiddlewareWithCustomError validates the role claim with a custom
// forbidden message. A missing or unrecognized role claim is 401 (no
// usable identity); a known identity with a disallowed role is 403.
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok || !constants.IsValidRole(role) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return helper.JsonError(c, fiber.StatusForbidden, customForbiddenMessage)
	}
}

// OnlyRoles is a shortcut for cleaner route setup
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
