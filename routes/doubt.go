package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/philosophy-hub/controllers"
	"github.com/meinhoongagan/philosophy-hub/middleware"
)

// SetupDoubtRoutes configures the Q&A forum routes
func SetupDoubtRoutes(app *fiber.App) {
	doubts := app.Group("/api/doubts")

	doubts.Get("/all", controllers.GetAllDoubts)
	doubts.Get("/:id", controllers.GetDoubtByID)
	doubts.Post("/create", middleware.Protected(), controllers.CreateDoubt)
	doubts.Put("/:id/active", middleware.Protected(), controllers.ActivateDoubt)
	doubts.Put("/:id/inactive", middleware.Protected(), controllers.DeactivateDoubt)
	doubts.Put("/:id/like", middleware.Protected(), controllers.LikeDoubt)
	doubts.Put("/:id/dislike", middleware.Protected(), controllers.DislikeDoubt)
}
