package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/philosophy-hub/controllers"
	"github.com/meinhoongagan/philosophy-hub/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	// OTP routes run behind the lockout gate
	auth.Post("/send-otp", middleware.CheckOTPAttempts, controllers.SendOTP)
	auth.Post("/verify-otp", middleware.CheckOTPAttempts, controllers.VerifyOTP)

	auth.Post("/signup", controllers.Signup)
	auth.Post("/login", controllers.Login)

	auth.Get("/profile", middleware.Protected(), controllers.GetProfile)
}
