package main

import (
	"log"
	"time"

	config "github.com/codezon/lms-backend/configs"
	"github.com/codezon/lms-backend/database"
	"github.com/codezon/lms-backend/handlers"
	"github.com/codezon/lms-backend/jobs"
	"github.com/codezon/lms-backend/routes"
	"github.com/codezon/lms-backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	db, err := database.Connect(config.DatabaseURL())
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	if err := database.SeedAdmin(db); err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
	}

	c := cron.New()
	c.AddFunc("*/30 * * * *", func() { jobs.RecalculateCourseRatings(db) })
	go c.Start()
	log.Println("✅ Cron job for course ratings scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "Codezon LMS",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	strictPayload := config.Config("REVIEW_STRICT_PAYLOAD") == "true"
	reviewService := services.NewReviewService(db, strictPayload)

	authHandler := handlers.NewAuthHandler(db)
	reviewHandler := handlers.NewReviewHandler(db, reviewService)
	enrollmentHandler := handlers.NewEnrollmentHandler(db, reviewService)
	seedHandler := handlers.NewSeedHandler(db, reviewService)

	routes.AuthRoutes(app, authHandler)
	routes.ReviewRoutes(app, reviewHandler)
	routes.EnrollmentRoutes(app, enrollmentHandler)
	routes.UploadRoutes(app)
	routes.AdminRoutes(app, seedHandler, reviewHandler)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	port := config.ConfigDefault("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
