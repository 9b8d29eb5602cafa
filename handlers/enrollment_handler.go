package handlers

import (
	"time"

	"github.com/codezon/lms-backend/middleware"
	"github.com/codezon/lms-backend/models"
	"github.com/codezon/lms-backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentHandler struct {
	db      *gorm.DB
	reviews *services.ReviewService
}

func NewEnrollmentHandler(db *gorm.DB, reviews *services.ReviewService) *EnrollmentHandler {
	return &EnrollmentHandler{db: db, reviews: reviews}
}

// Enroll registers the caller in a course. Enrolling twice returns the
// existing enrollment with a 200 instead of a 201.
func (h *EnrollmentHandler) Enroll(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(middleware.ClaimString(c, "user_id"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	var course models.Course
	if err := h.db.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	enrollment, created, err := h.reviews.EnsureEnrollment(studentID, courseID, models.Enrollment{
		Status:        models.EnrollmentStatusActive,
		PaymentStatus: models.PaymentStatusPaid,
		PaymentAmount: course.EffectivePrice(),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to enroll"})
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"success": true, "data": enrollment})
}

func (h *EnrollmentHandler) MyEnrollments(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(middleware.ClaimString(c, "user_id"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var enrollments []models.Enrollment
	if err := h.db.Where("student_id = ?", studentID).Order("enrolled_at DESC").Find(&enrollments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"success": true, "data": enrollments})
}

type UpdateProgressRequest struct {
	Progress int `json:"progress" validate:"min=0,max=100"`
}

// UpdateProgress records course progress and touches lastAccessedAt.
// Reaching 100 flips the status to completed.
func (h *EnrollmentHandler) UpdateProgress(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(middleware.ClaimString(c, "user_id"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	var req UpdateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var enrollment models.Enrollment
	if err := h.db.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&enrollment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}

	enrollment.Progress = req.Progress
	enrollment.LastAccessedAt = time.Now()
	if req.Progress == 100 && enrollment.Status == models.EnrollmentStatusActive {
		enrollment.Status = models.EnrollmentStatusCompleted
	}
	if err := h.db.Save(&enrollment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update progress"})
	}
	return c.JSON(fiber.Map{"success": true, "data": enrollment})
}
