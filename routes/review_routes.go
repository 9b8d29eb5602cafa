package routes

import (
	"github.com/codezon/lms-backend/handlers"
	"github.com/codezon/lms-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func ReviewRoutes(app *fiber.App, h *handlers.ReviewHandler) {
	api := app.Group("/api/v1")

	// Public listing for the marketing pages.
	api.Get("/courses/:courseId/reviews", h.ListCourseReviews)
	api.Post("/reviews/:reviewId/helpful", h.MarkHelpful)

	// Authenticated student surface.
	api.Post("/courses/:courseId/reviews", middleware.Protected(), h.CreateReview)
}
