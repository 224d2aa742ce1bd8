package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/philosophy-hub/models"
)

// RequireRole gates a route on the caller's user type. Must run after
// Protected, which fills the userType local from the token claims.
func RequireRole(role models.UserType, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userType, _ := c.Locals("userType").(string)
		if userType != string(role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": message,
			})
		}
		return c.Next()
	}
}
