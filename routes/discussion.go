package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/philosophy-hub/controllers"
	"github.com/meinhoongagan/philosophy-hub/middleware"
)

// SetupDiscussionRoutes configures the discussion thread routes
func SetupDiscussionRoutes(app *fiber.App) {
	discussions := app.Group("/api/discussions")

	discussions.Get("/all", controllers.GetAllDiscussions)
	discussions.Get("/:id", controllers.GetDiscussionByID)
	discussions.Post("/create", middleware.Protected(), controllers.CreateDiscussion)
	discussions.Put("/:id/update", middleware.Protected(), controllers.UpdateDiscussion)
	discussions.Put("/:id/like", middleware.Protected(), controllers.LikeDiscussion)
	discussions.Put("/:id/dislike", middleware.Protected(), controllers.DislikeDiscussion)
}
