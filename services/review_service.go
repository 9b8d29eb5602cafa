package services

import (
	"errors"
	"fmt"

	"github.com/codezon/lms-backend/models"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnsureOutcome reports how an ensure-style write resolved. A concurrent
// duplicate-key insert is an expected outcome under racing writers, not
// an error: the store's unique constraint is the authority and losing
// that race still leaves the invariant satisfied.
type EnsureOutcome int

const (
	// ReviewCreated means this call inserted the record.
	ReviewCreated EnsureOutcome = iota
	// ReviewAlreadyExists means the pre-insert lookup found a record.
	ReviewAlreadyExists
	// ReviewConflict means a concurrent writer inserted between our
	// lookup and our insert; the constraint rejected us.
	ReviewConflict
)

var ErrReviewNotFound = errors.New("review not found")

// ReviewService enforces the one-enrollment and one-review per
// (student, course) invariants and owns the review moderation states.
type ReviewService struct {
	db       *gorm.DB
	validate *validator.Validate

	// strictPayload additionally requires comment for text reviews and
	// videoUrl for video reviews. Off by default to match the permissive
	// stored schema.
	strictPayload bool
}

func NewReviewService(db *gorm.DB, strictPayload bool) *ReviewService {
	return &ReviewService{
		db:            db,
		validate:      validator.New(),
		strictPayload: strictPayload,
	}
}

// EnsureEnrollment returns the enrollment for (student, course),
// creating one from defaults when absent. The second return reports
// whether this call created it. Losing a duplicate-key race to a
// concurrent writer resolves by re-reading the winner's record.
func (s *ReviewService) EnsureEnrollment(studentID, courseID uuid.UUID, defaults models.Enrollment) (*models.Enrollment, bool, error) {
	var existing models.Enrollment
	err := s.db.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("lookup enrollment: %w", err)
	}

	enrollment := defaults
	enrollment.ID = uuid.Nil
	enrollment.StudentID = studentID
	enrollment.CourseID = courseID
	if enrollment.Status == "" {
		enrollment.Status = models.EnrollmentStatusActive
	}
	if enrollment.PaymentStatus == "" {
		enrollment.PaymentStatus = models.PaymentStatusPaid
	}
	if err := s.validate.Struct(&enrollment); err != nil {
		return nil, false, err
	}

	if err := s.db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent writer got there first; theirs is the record.
			var winner models.Enrollment
			if lookupErr := s.db.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&winner).Error; lookupErr != nil {
				return nil, false, fmt.Errorf("reread enrollment after conflict: %w", lookupErr)
			}
			return &winner, false, nil
		}
		return nil, false, fmt.Errorf("create enrollment: %w", err)
	}
	return &enrollment, true, nil
}

// EnsureReview persists the review unless one already exists for
// (course, student). The payload's CourseID/StudentID are overwritten
// from the arguments.
func (s *ReviewService) EnsureReview(courseID, studentID uuid.UUID, review models.CourseReview) (EnsureOutcome, error) {
	var existing models.CourseReview
	err := s.db.Where("course_id = ? AND student_id = ?", courseID, studentID).First(&existing).Error
	if err == nil {
		return ReviewAlreadyExists, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ReviewAlreadyExists, fmt.Errorf("lookup review: %w", err)
	}

	review.ID = uuid.Nil
	review.CourseID = courseID
	review.StudentID = studentID
	if review.ReviewType == "" {
		review.ReviewType = models.ReviewTypeText
	}
	if err := s.ValidateReview(&review); err != nil {
		return ReviewAlreadyExists, err
	}

	if err := s.db.Create(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ReviewConflict, nil
		}
		return ReviewAlreadyExists, fmt.Errorf("create review: %w", err)
	}
	return ReviewCreated, nil
}

// ValidateReview applies the field rules, plus the cross-field
// type-payload rule when strict mode is on.
func (s *ReviewService) ValidateReview(review *models.CourseReview) error {
	if err := s.validate.Struct(review); err != nil {
		return err
	}
	if s.strictPayload {
		switch review.ReviewType {
		case models.ReviewTypeText:
			if review.Comment == "" {
				return errors.New("text reviews require a comment")
			}
		case models.ReviewTypeVideo:
			if review.VideoURL == "" {
				return errors.New("video reviews require a video url")
			}
		}
	}
	return nil
}

// IsEnrolled reports whether the student has any enrollment in the course.
func (s *ReviewService) IsEnrolled(studentID, courseID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.Enrollment{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check enrollment: %w", err)
	}
	return count > 0, nil
}

// ApproveReview flips moderation approval. Approving does not touch the
// curation flags; hiding a review is a separate operation.
func (s *ReviewService) ApproveReview(reviewID uuid.UUID, approved bool) (*models.CourseReview, error) {
	return s.updateReview(reviewID, map[string]interface{}{"is_approved": approved})
}

// SetReviewDisplay curates a review onto (or off) the marketing site,
// with an explicit ordering slot.
func (s *ReviewService) SetReviewDisplay(reviewID uuid.UUID, displayed bool, order int) (*models.CourseReview, error) {
	return s.updateReview(reviewID, map[string]interface{}{
		"is_displayed":  displayed,
		"display_order": order,
	})
}

// HideReview withdraws a review from public listings. Reviews are never
// hard-deleted.
func (s *ReviewService) HideReview(reviewID uuid.UUID) (*models.CourseReview, error) {
	return s.updateReview(reviewID, map[string]interface{}{
		"is_public":    false,
		"is_displayed": false,
	})
}

// AddHelpfulVote increments the helpful counter atomically.
func (s *ReviewService) AddHelpfulVote(reviewID uuid.UUID) (*models.CourseReview, error) {
	res := s.db.Model(&models.CourseReview{}).
		Where("id = ?", reviewID).
		UpdateColumn("helpful_votes", gorm.Expr("helpful_votes + 1"))
	if res.Error != nil {
		return nil, fmt.Errorf("add helpful vote: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrReviewNotFound
	}
	return s.getReview(reviewID)
}

// ListPublicReviews returns approved, public reviews for a course,
// curated ones first.
func (s *ReviewService) ListPublicReviews(courseID uuid.UUID) ([]models.CourseReview, error) {
	var reviews []models.CourseReview
	err := s.db.Where("course_id = ? AND is_approved = ? AND is_public = ?", courseID, true, true).
		Order("is_displayed DESC, display_order ASC, created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) updateReview(reviewID uuid.UUID, fields map[string]interface{}) (*models.CourseReview, error) {
	res := s.db.Model(&models.CourseReview{}).Where("id = ?", reviewID).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("update review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrReviewNotFound
	}
	return s.getReview(reviewID)
}

func (s *ReviewService) getReview(reviewID uuid.UUID) (*models.CourseReview, error) {
	var review models.CourseReview
	if err := s.db.First(&review, "id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}
