package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/philosophy-hub/controllers"
	"github.com/meinhoongagan/philosophy-hub/middleware"
)

// SetupCommentRoutes configures the discussion comment routes
func SetupCommentRoutes(app *fiber.App) {
	comments := app.Group("/api/comments")

	comments.Post("/create", middleware.Protected(), controllers.CreateComment)
	comments.Put("/:id/like", middleware.Protected(), controllers.LikeComment)
	comments.Put("/:id/dislike", middleware.Protected(), controllers.DislikeComment)
}
