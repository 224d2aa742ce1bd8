package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/philosophy-hub/controllers"
	"github.com/meinhoongagan/philosophy-hub/middleware"
	"github.com/meinhoongagan/philosophy-hub/models"
)

// SetupSeminarRoutes configures all seminar related routes
func SetupSeminarRoutes(app *fiber.App) {
	seminars := app.Group("/api/seminars")

	seminars.Get("/", controllers.GetAllSeminars)
	seminars.Get("/my/seminars", middleware.Protected(), controllers.GetMySeminars)
	seminars.Post("/create", middleware.Protected(),
		middleware.RequireRole(models.UserTypePhilosopher, "Only philosophers can create seminars"),
		controllers.CreateSeminar)
	seminars.Post("/:seminarId/register", middleware.Protected(), controllers.RegisterForSeminar)
	seminars.Get("/:id", controllers.GetSeminarByID)
	seminars.Put("/:id", middleware.Protected(), controllers.UpdateSeminar)
	seminars.Delete("/:id", middleware.Protected(), controllers.DeleteSeminar)
}
