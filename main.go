package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/meinhoongagan/philosophy-hub/cron"
	"github.com/meinhoongagan/philosophy-hub/db"
	"github.com/meinhoongagan/philosophy-hub/redis"
	"github.com/meinhoongagan/philosophy-hub/routes"
)

func allowedOrigins() []string {
	origins := []string{
		"http://localhost:5173",
		"http://localhost:5174",
		"http://localhost:3000",
		"http://localhost:5000",
	}
	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}
	return origins
}

func main() {
	app := fiber.New()
	db.Migrate()
	redis.InitRedis()
	cron.StartCronJobs()

	origins := allowedOrigins()
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			for _, o := range origins {
				if o == origin {
					return true
				}
			}
			// anything deployed on the platform's wildcard domain
			return strings.HasSuffix(origin, ".vercel.app")
		},
		AllowCredentials: true,
	}))

	app.Get("/api/test", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":   true,
			"message":   "Backend is working!",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	routes.SetupAuthRoutes(app)
	routes.SetupContentRoutes(app)
	routes.SetupDoubtRoutes(app)
	routes.SetupResponseRoutes(app)
	routes.SetupDiscussionRoutes(app)
	routes.SetupCommentRoutes(app)
	routes.SetupSeminarRoutes(app)
	routes.SetupUploadRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Fatal(app.Listen(":" + port))
}
