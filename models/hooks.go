package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// App-side UUID generation so inserts also work on databases without
// gen_random_uuid (the sqlite engine used in tests).

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (e *Enrollment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	now := time.Now()
	if e.EnrolledAt.IsZero() {
		e.EnrolledAt = now
	}
	if e.LastAccessedAt.IsZero() {
		e.LastAccessedAt = now
	}
	return nil
}

func (r *CourseReview) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
