package routes

import (
	"github.com/codezon/lms-backend/handlers"
	"github.com/codezon/lms-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App, seed *handlers.SeedHandler, reviews *handlers.ReviewHandler) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Post("/seed-reviews", seed.SeedReviews)
	admin.Post("/upload/branding", handlers.UploadBranding)

	r := admin.Group("/reviews")
	r.Get("", reviews.AdminListReviews)
	r.Put("/:reviewId/approve", reviews.AdminApproveReview)
	r.Put("/:reviewId/display", reviews.AdminSetDisplay)
	r.Put("/:reviewId/hide", reviews.AdminHideReview)
}
