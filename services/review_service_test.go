package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/codezon/lms-backend/models"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestEnsureEnrollmentCreatesOnce(t *testing.T) {
	db := testDB(t)
	svc := NewReviewService(db, false)
	student := createStudent(t, db, "s1@example.com")
	course := createCourse(t, db, "go-basics", 49.99)

	first, created, err := svc.EnsureEnrollment(student.ID, course.ID, models.Enrollment{
		Status:        models.EnrollmentStatusActive,
		Progress:      40,
		PaymentStatus: models.PaymentStatusPaid,
		PaymentAmount: course.EffectivePrice(),
	})
	if err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true on first ensure")
	}

	second, created, err := svc.EnsureEnrollment(student.ID, course.ID, models.Enrollment{Progress: 99})
	if err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if created {
		t.Fatalf("expected created=false on second ensure")
	}
	if second.ID != first.ID {
		t.Fatalf("expected the existing enrollment back, got %s want %s", second.ID, first.ID)
	}
	if second.Progress != 40 {
		t.Fatalf("second ensure must not overwrite: progress=%d", second.Progress)
	}

	var count int64
	db.Model(&models.Enrollment{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one enrollment, got %d", count)
	}
}

func TestEnsureEnrollmentRejectsOutOfRangeProgress(t *testing.T) {
	db := testDB(t)
	svc := NewReviewService(db, false)
	student := createStudent(t, db, "s1@example.com")
	course := createCourse(t, db, "go-basics", 10)

	_, _, err := svc.EnsureEnrollment(student.ID, course.ID, models.Enrollment{Progress: 101})
	if err == nil {
		t.Fatalf("expected validation error for progress=101")
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validator.ValidationErrors, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "Progress") {
		t.Fatalf("error should name the offending field: %v", err)
	}
}

func TestEnsureReviewOutcomes(t *testing.T) {
	db := testDB(t)
	svc := NewReviewService(db, false)
	student := createStudent(t, db, "s1@example.com")
	course := createCourse(t, db, "go-basics", 10)

	outcome, err := svc.EnsureReview(course.ID, student.ID, models.CourseReview{
		Rating:     5,
		ReviewType: models.ReviewTypeText,
		Title:      "Great",
		Comment:    "Enjoyed it.",
		IsPublic:   true,
	})
	if err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	if outcome != ReviewCreated {
		t.Fatalf("expected ReviewCreated, got %v", outcome)
	}

	outcome, err = svc.EnsureReview(course.ID, student.ID, models.CourseReview{Rating: 1})
	if err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if outcome != ReviewAlreadyExists {
		t.Fatalf("expected ReviewAlreadyExists, got %v", outcome)
	}

	var count int64
	db.Model(&models.CourseReview{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one review, got %d", count)
	}
}

func TestUniqueConstraintIsTheBackstop(t *testing.T) {
	db := testDB(t)
	student := createStudent(t, db, "s1@example.com")
	course := createCourse(t, db, "go-basics", 10)

	r1 := models.CourseReview{CourseID: course.ID, StudentID: student.ID, Rating: 4, ReviewType: models.ReviewTypeText}
	if err := db.Create(&r1).Error; err != nil {
		t.Fatalf("first insert: %v", err)
	}

	// A second raw insert models the concurrent writer that slipped past
	// the application-level pre-check.
	r2 := models.CourseReview{CourseID: course.ID, StudentID: student.ID, Rating: 2, ReviewType: models.ReviewTypeText}
	err := db.Create(&r2).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey, got %v", err)
	}

	e1 := models.Enrollment{StudentID: student.ID, CourseID: course.ID, Status: "active", PaymentStatus: "paid"}
	if err := db.Create(&e1).Error; err != nil {
		t.Fatalf("first enrollment insert: %v", err)
	}
	e2 := models.Enrollment{StudentID: student.ID, CourseID: course.ID, Status: "active", PaymentStatus: "paid"}
	err = db.Create(&e2).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey for enrollment, got %v", err)
	}
}

func TestReviewRatingBounds(t *testing.T) {
	db := testDB(t)
	svc := NewReviewService(db, false)
	student := createStudent(t, db, "s1@example.com")
	course := createCourse(t, db, "go-basics", 10)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.EnsureReview(course.ID, student.ID, models.CourseReview{
			Rating:     rating,
			ReviewType: models.ReviewTypeText,
		})
		if err == nil {
			t.Fatalf("expected validation error for rating=%d", rating)
		}
		if !strings.Contains(err.Error(), "Rating") {
			t.Fatalf("error should name the rating field: %v", err)
		}
	}

	var count int64
	db.Model(&models.CourseReview{}).Count(&count)
	if count != 0 {
		t.Fatalf("invalid ratings must not be persisted, got %d rows", count)
	}
}

func TestReviewCommentLengthBound(t *testing.T) {
	db := testDB(t)
	svc := NewReviewService(db, false)
	student := createStudent(t, db, "s1@example.com")
	course := createCourse(t, db, "go-basics", 10)

	_, err := svc.EnsureReview(course.ID, student.ID, models.CourseReview{
		Rating:     4,
		ReviewType: models.ReviewTypeText,
		Comment:    strings.Repeat("a", 1001),
	})
	if err == nil {
		t.Fatalf("expected validation error for oversized comment")
	}

	_, err = svc.EnsureReview(course.ID, student.ID, models.CourseReview{
		Rating:     4,
		ReviewType: models.ReviewTypeText,
		Comment:    strings.Repeat("a", 1000),
	})
	if err != nil {
		t.Fatalf("comment of exactly 1000 chars should pass: %v", err)
	}
}

func TestStrictPayloadMode(t *testing.T) {
	db := testDB(t)
	strict := NewReviewService(db, true)
	student := createStudent(t, db, "s1@example.com")
	course := createCourse(t, db, "go-basics", 10)

	_, err := strict.EnsureReview(course.ID, student.ID, models.CourseReview{
		Rating:     4,
		ReviewType: models.ReviewTypeText,
	})
	if err == nil {
		t.Fatalf("strict mode should reject a text review without a comment")
	}

	_, err = strict.EnsureReview(course.ID, student.ID, models.CourseReview{
		Rating:     4,
		ReviewType: models.ReviewTypeVideo,
	})
	if err == nil {
		t.Fatalf("strict mode should reject a video review without a url")
	}

	// The permissive default matches the stored schema.
	permissive := NewReviewService(db, false)
	outcome, err := permissive.EnsureReview(course.ID, student.ID, models.CourseReview{
		Rating:     4,
		ReviewType: models.ReviewTypeText,
	})
	if err != nil || outcome != ReviewCreated {
		t.Fatalf("permissive mode should accept a bare text review: outcome=%v err=%v", outcome, err)
	}
}

func TestReviewModeration(t *testing.T) {
	db := testDB(t)
	svc := NewReviewService(db, false)
	student := createStudent(t, db, "s1@example.com")
	course := createCourse(t, db, "go-basics", 10)

	if _, err := svc.EnsureReview(course.ID, student.ID, models.CourseReview{
		Rating:     5,
		ReviewType: models.ReviewTypeText,
		Comment:    "Nice.",
		IsPublic:   true,
	}); err != nil {
		t.Fatalf("ensure review: %v", err)
	}
	var review models.CourseReview
	if err := db.First(&review).Error; err != nil {
		t.Fatalf("load review: %v", err)
	}
	if review.IsApproved {
		t.Fatalf("reviews must start unapproved")
	}

	// Unapproved reviews stay out of the public listing.
	public, err := svc.ListPublicReviews(course.ID)
	if err != nil {
		t.Fatalf("list public: %v", err)
	}
	if len(public) != 0 {
		t.Fatalf("expected no public reviews before approval, got %d", len(public))
	}

	if _, err := svc.ApproveReview(review.ID, true); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := svc.SetReviewDisplay(review.ID, true, 2); err != nil {
		t.Fatalf("set display: %v", err)
	}

	public, err = svc.ListPublicReviews(course.ID)
	if err != nil {
		t.Fatalf("list public: %v", err)
	}
	if len(public) != 1 || !public[0].IsDisplayed || public[0].DisplayOrder != 2 {
		t.Fatalf("unexpected public listing: %+v", public)
	}

	hidden, err := svc.HideReview(review.ID)
	if err != nil {
		t.Fatalf("hide: %v", err)
	}
	if hidden.IsPublic || hidden.IsDisplayed {
		t.Fatalf("hide must clear public and displayed flags: %+v", hidden)
	}

	// Hidden, not deleted.
	var count int64
	db.Model(&models.CourseReview{}).Count(&count)
	if count != 1 {
		t.Fatalf("hide must not delete the row")
	}
}

func TestAddHelpfulVote(t *testing.T) {
	db := testDB(t)
	svc := NewReviewService(db, false)
	student := createStudent(t, db, "s1@example.com")
	course := createCourse(t, db, "go-basics", 10)

	if _, err := svc.EnsureReview(course.ID, student.ID, models.CourseReview{
		Rating: 5, ReviewType: models.ReviewTypeText, Comment: "x",
	}); err != nil {
		t.Fatalf("ensure review: %v", err)
	}
	var review models.CourseReview
	db.First(&review)

	for i := 1; i <= 3; i++ {
		updated, err := svc.AddHelpfulVote(review.ID)
		if err != nil {
			t.Fatalf("vote %d: %v", i, err)
		}
		if updated.HelpfulVotes != i {
			t.Fatalf("vote %d: got %d helpful votes", i, updated.HelpfulVotes)
		}
	}

	if _, err := svc.AddHelpfulVote(uuid.New()); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}
