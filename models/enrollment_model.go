package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	EnrollmentStatusActive    = "active"
	EnrollmentStatusCompleted = "completed"
	EnrollmentStatusDropped   = "dropped"
	EnrollmentStatusSuspended = "suspended"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
	PaymentStatusFailed   = "failed"
)

// Enrollment links a student to a course. At most one enrollment may
// exist per (student, course) pair; the composite unique index is the
// authoritative guard, the application only pre-checks.
type Enrollment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_enrollment_student_course" json:"student_id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_enrollment_student_course" json:"course_id"`

	EnrolledAt     time.Time `gorm:"not null" json:"enrolled_at"`
	Status         string    `gorm:"size:20;not null;default:'active';index" json:"status" validate:"oneof=active completed dropped suspended"`
	Progress       int       `gorm:"not null;default:0" json:"progress" validate:"min=0,max=100"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
	PaymentStatus  string    `gorm:"size:20;not null;default:'paid';index" json:"payment_status" validate:"oneof=pending paid refunded failed"`
	PaymentAmount  float64   `gorm:"type:numeric(10,2)" json:"payment_amount" validate:"min=0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
