package handlers

import (
	"errors"

	"github.com/codezon/lms-backend/middleware"
	"github.com/codezon/lms-backend/models"
	"github.com/codezon/lms-backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewHandler struct {
	db      *gorm.DB
	reviews *services.ReviewService
}

func NewReviewHandler(db *gorm.DB, reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{db: db, reviews: reviews}
}

type CreateReviewRequest struct {
	Rating         int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewType     string `json:"review_type" validate:"omitempty,oneof=text video"`
	Title          string `json:"title" validate:"max=100"`
	Comment        string `json:"comment" validate:"max=1000"`
	VideoURL       string `json:"video_url" validate:"omitempty,url"`
	VideoThumbnail string `json:"video_thumbnail" validate:"omitempty,url"`
}

// CreateReview lets an enrolled student submit one review per course.
// Submitted reviews start unapproved and wait for moderation.
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(middleware.ClaimString(c, "user_id"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	enrolled, err := h.reviews.IsEnrolled(studentID, courseID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if !enrolled {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You must be enrolled in this course to review it"})
	}

	outcome, err := h.reviews.EnsureReview(courseID, studentID, models.CourseReview{
		Rating:         req.Rating,
		ReviewType:     req.ReviewType,
		Title:          req.Title,
		Comment:        req.Comment,
		VideoURL:       req.VideoURL,
		VideoThumbnail: req.VideoThumbnail,
		IsPublic:       true,
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if outcome != services.ReviewCreated {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already reviewed this course"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Review submitted and awaiting approval",
	})
}

// ListCourseReviews is the public listing backing the marketing pages.
func (h *ReviewHandler) ListCourseReviews(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	reviews, err := h.reviews.ListPublicReviews(courseID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"success": true, "data": reviews})
}

func (h *ReviewHandler) MarkHelpful(c *fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}
	review, err := h.reviews.AddHelpfulVote(reviewID)
	if err != nil {
		return h.reviewError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": review})
}

// AdminListReviews returns everything, including unapproved and hidden
// reviews, for the moderation queue.
func (h *ReviewHandler) AdminListReviews(c *fiber.Ctx) error {
	var reviews []models.CourseReview
	query := h.db.Order("created_at DESC")
	if c.Query("pending") == "true" {
		query = query.Where("is_approved = ?", false)
	}
	if err := query.Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"success": true, "data": reviews})
}

type ApproveReviewRequest struct {
	Approved bool `json:"approved"`
}

func (h *ReviewHandler) AdminApproveReview(c *fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}

	req := ApproveReviewRequest{Approved: true}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}
	}

	review, err := h.reviews.ApproveReview(reviewID, req.Approved)
	if err != nil {
		return h.reviewError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": review})
}

type DisplayReviewRequest struct {
	Displayed    bool `json:"displayed"`
	DisplayOrder int  `json:"display_order"`
}

func (h *ReviewHandler) AdminSetDisplay(c *fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}

	var req DisplayReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	review, err := h.reviews.SetReviewDisplay(reviewID, req.Displayed, req.DisplayOrder)
	if err != nil {
		return h.reviewError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": review})
}

func (h *ReviewHandler) AdminHideReview(c *fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}

	review, err := h.reviews.HideReview(reviewID)
	if err != nil {
		return h.reviewError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": review})
}

func (h *ReviewHandler) reviewError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrReviewNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
}
