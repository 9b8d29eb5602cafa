package handlers

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/codezon/lms-backend/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SeedHandler struct {
	db      *gorm.DB
	reviews *services.ReviewService
}

func NewSeedHandler(db *gorm.DB, reviews *services.ReviewService) *SeedHandler {
	return &SeedHandler{db: db, reviews: reviews}
}

// SeedReviews populates demo enrollments and reviews. Safe to call
// repeatedly; re-runs only report skips.
func (h *SeedHandler) SeedReviews(c *fiber.Ctx) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	seeder := services.NewSeeder(h.db, h.reviews, rng)

	result, err := seeder.Run()
	if err != nil {
		if errors.Is(err, services.ErrNoCourses) || errors.Is(err, services.ErrNoStudents) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}
		log.Printf("Error seeding reviews: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to seed reviews",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Reviews seeded successfully",
		"data":    result,
	})
}
