package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/philosophy-hub/controllers"
	"github.com/meinhoongagan/philosophy-hub/middleware"
	"github.com/meinhoongagan/philosophy-hub/models"
)

// SetupContentRoutes configures all article related routes
func SetupContentRoutes(app *fiber.App) {
	content := app.Group("/api/content")

	content.Get("/", controllers.GetAllContent)
	content.Post("/", middleware.Protected(),
		middleware.RequireRole(models.UserTypePhilosopher, "Only philosophers can create content"),
		controllers.CreateContent)
	content.Get("/me", middleware.Protected(), controllers.GetMyContent)
	content.Get("/:id", controllers.GetContentByID)
	content.Put("/:id", middleware.Protected(), controllers.UpdateContent)
	content.Delete("/:id", middleware.Protected(), controllers.DeleteContent)
	content.Post("/:id/like", middleware.Protected(), controllers.ToggleContentLike)
	content.Post("/:id/comment", middleware.Protected(), controllers.AddContentComment)
}
