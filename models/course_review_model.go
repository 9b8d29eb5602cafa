package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReviewTypeText  = "text"
	ReviewTypeVideo = "video"
)

// CourseReview is a student's review of a course, either a written
// comment or a linked video. One review per (course, student) pair.
//
// Title/comment/video fields are all optional at the schema level; which
// ones a reviewType needs is only enforced when strict payload checking
// is enabled (see services.ReviewService).
type CourseReview struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_review_course_student" json:"course_id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_review_course_student" json:"student_id"`

	Rating     int    `gorm:"not null" json:"rating" validate:"required,min=1,max=5"`
	ReviewType string `gorm:"size:10;not null;default:'text'" json:"review_type" validate:"required,oneof=text video"`

	Title          string `gorm:"size:100" json:"title,omitempty" validate:"max=100"`
	Comment        string `gorm:"size:1000" json:"comment,omitempty" validate:"max=1000"`
	VideoURL       string `gorm:"size:500" json:"video_url,omitempty" validate:"omitempty,url"`
	VideoThumbnail string `gorm:"size:500" json:"video_thumbnail,omitempty" validate:"omitempty,url"`

	IsVerified   bool `gorm:"default:false" json:"is_verified"`
	IsPublic     bool `gorm:"default:true" json:"is_public"`
	IsApproved   bool `gorm:"default:false;index" json:"is_approved"`
	IsDisplayed  bool `gorm:"default:false" json:"is_displayed"`
	DisplayOrder int  `gorm:"default:0" json:"display_order"`

	HelpfulVotes  int `gorm:"default:0" json:"helpful_votes" validate:"min=0"`
	ReportedCount int `gorm:"default:0" json:"reported_count" validate:"min=0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
