package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/philosophy-hub/db"
	"github.com/meinhoongagan/philosophy-hub/models"
)

// CheckOTPAttempts short-circuits send-otp/verify-otp while the email is
// locked out. An elapsed lock is cleared here, and only here, so a fresh
// cycle starts with attempts at zero.
func CheckOTPAttempts(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil || body.Email == "" {
		// Let the controller report the validation error.
		return c.Next()
	}

	var record models.Otp
	if err := db.DB.Where("email = ?", body.Email).First(&record).Error; err != nil {
		return c.Next()
	}

	if record.BlockedUntil != nil {
		if record.BlockedUntil.After(time.Now().Add(time.Second)) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": fmt.Sprintf("Your account is blocked. Try again after %s",
					record.BlockedUntil.UTC().Format("2006-01-02 15:04:05")),
			})
		}

		if err := db.DB.Model(&record).Updates(map[string]interface{}{
			"attempts":      0,
			"blocked_until": nil,
		}).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}
	}

	return c.Next()
}
