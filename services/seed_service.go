package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/codezon/lms-backend/models"
	"gorm.io/gorm"
)

const (
	seedCourseLimit     = 50
	seedStudentLimit    = 100
	minReviewsPerCourse = 3
	maxReviewsPerCourse = 8
)

var (
	ErrNoCourses  = errors.New("No courses found. Please create courses first.")
	ErrNoStudents = errors.New("No students found. Please create students first.")
)

// SeedResult aggregates what a seeding run did.
type SeedResult struct {
	ReviewsCreated     int `json:"reviewsCreated"`
	EnrollmentsCreated int `json:"enrollmentsCreated"`
	ReviewsSkipped     int `json:"reviewsSkipped"`
}

// Seeder populates representative enrollments and reviews for every
// course from a random subset of students. Running it again is a no-op:
// existing (student, course) pairs are counted as skips, and the unique
// constraints backstop any pair racing a concurrent writer.
type Seeder struct {
	db      *gorm.DB
	reviews *ReviewService
	rng     *rand.Rand
}

// NewSeeder builds a seeder around an injectable random source so tests
// can pin the draws.
func NewSeeder(db *gorm.DB, reviews *ReviewService, rng *rand.Rand) *Seeder {
	return &Seeder{db: db, reviews: reviews, rng: rng}
}

func (s *Seeder) Run() (SeedResult, error) {
	var result SeedResult

	var courses []models.Course
	if err := s.db.Limit(seedCourseLimit).Find(&courses).Error; err != nil {
		return result, fmt.Errorf("fetch courses: %w", err)
	}
	if len(courses) == 0 {
		return result, ErrNoCourses
	}

	var students []models.User
	if err := s.db.Where("role = ?", models.RoleStudent).Limit(seedStudentLimit).Find(&students).Error; err != nil {
		return result, fmt.Errorf("fetch students: %w", err)
	}
	if len(students) == 0 {
		return result, ErrNoStudents
	}

	for _, course := range courses {
		for _, student := range s.pickStudents(students) {
			s.seedPair(&course, &student, &result)
		}
	}

	return result, nil
}

// pickStudents draws 3-8 students without replacement; the whole pool
// when it is smaller than the draw.
func (s *Seeder) pickStudents(students []models.User) []models.User {
	n := s.rng.Intn(maxReviewsPerCourse-minReviewsPerCourse+1) + minReviewsPerCourse
	if n > len(students) {
		n = len(students)
	}
	picked := make([]models.User, 0, n)
	for _, i := range s.rng.Perm(len(students))[:n] {
		picked = append(picked, students[i])
	}
	return picked
}

// seedPair ensures one enrollment and one review for the pair. Per-pair
// failures become counters or log lines so the run covers the whole
// matrix; only store-level failures in Run abort everything.
func (s *Seeder) seedPair(course *models.Course, student *models.User, result *SeedResult) {
	_, created, err := s.reviews.EnsureEnrollment(student.ID, course.ID, models.Enrollment{
		Status:        s.drawEnrollmentStatus(),
		Progress:      s.rng.Intn(100),
		PaymentStatus: models.PaymentStatusPaid,
		PaymentAmount: course.EffectivePrice(),
	})
	if err != nil {
		log.Printf("Error creating enrollment for course %s: %v", course.Title, err)
		return
	}
	if created {
		result.EnrollmentsCreated++
	}

	outcome, err := s.reviews.EnsureReview(course.ID, student.ID, s.drawReview())
	if err != nil {
		log.Printf("Error creating review for course %s: %v", course.Title, err)
		return
	}
	switch outcome {
	case ReviewCreated:
		result.ReviewsCreated++
	case ReviewAlreadyExists, ReviewConflict:
		result.ReviewsSkipped++
	}
}

func (s *Seeder) drawEnrollmentStatus() string {
	if s.rng.Float64() > 0.7 {
		return models.EnrollmentStatusCompleted
	}
	return models.EnrollmentStatusActive
}

// drawReview samples one canned review, 50/50 text or video.
func (s *Seeder) drawReview() models.CourseReview {
	review := models.CourseReview{
		IsVerified:   true,
		IsPublic:     true,
		IsApproved:   s.rng.Float64() > 0.2,
		HelpfulVotes: s.rng.Intn(20),
	}

	if s.rng.Float64() < 0.5 {
		sample := sampleVideoReviews[s.rng.Intn(len(sampleVideoReviews))]
		review.ReviewType = models.ReviewTypeVideo
		review.Title = sample.Title
		review.VideoURL = sample.VideoURL
		review.VideoThumbnail = sample.VideoThumbnail
		review.Rating = sample.Rating
	} else {
		sample := sampleComments[s.rng.Intn(len(sampleComments))]
		review.ReviewType = models.ReviewTypeText
		review.Title = sample.Title
		review.Comment = sample.Comment
		review.Rating = sample.Rating
	}
	return review
}
