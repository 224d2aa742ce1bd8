package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/philosophy-hub/controllers"
	"github.com/meinhoongagan/philosophy-hub/middleware"
)

// SetupUploadRoutes configures the media upload routes
func SetupUploadRoutes(app *fiber.App) {
	uploads := app.Group("/api/uploads")

	uploads.Post("/image", middleware.Protected(), controllers.UploadImage)
}
