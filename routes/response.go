package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/philosophy-hub/controllers"
	"github.com/meinhoongagan/philosophy-hub/middleware"
)

// SetupResponseRoutes configures the answer routes
func SetupResponseRoutes(app *fiber.App) {
	responses := app.Group("/api/responses")

	responses.Post("/create", middleware.Protected(), controllers.CreateResponse)
	responses.Put("/:id/like", middleware.Protected(), controllers.LikeResponse)
}
