package routes

import (
	"github.com/codezon/lms-backend/handlers"
	"github.com/codezon/lms-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func EnrollmentRoutes(app *fiber.App, h *handlers.EnrollmentHandler) {
	api := app.Group("/api/v1", middleware.Protected())

	api.Post("/courses/:courseId/enroll", h.Enroll)
	api.Put("/courses/:courseId/progress", h.UpdateProgress)
	api.Get("/me/enrollments", h.MyEnrollments)
}
