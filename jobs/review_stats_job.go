package jobs

import (
	"log"

	"github.com/codezon/lms-backend/models"
	"gorm.io/gorm"
)

// RecalculateCourseRatings refreshes the denormalized average rating and
// review count on every course from its approved public reviews.
// Scheduled from cmd/api; also safe to call ad hoc.
func RecalculateCourseRatings(db *gorm.DB) {
	var courses []models.Course
	if err := db.Find(&courses).Error; err != nil {
		log.Printf("[rating job] failed to list courses: %v", err)
		return
	}

	for _, course := range courses {
		type aggregate struct {
			Avg   float64
			Count int64
		}
		var agg aggregate
		err := db.Model(&models.CourseReview{}).
			Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
			Where("course_id = ? AND is_approved = ? AND is_public = ?", course.ID, true, true).
			Scan(&agg).Error
		if err != nil {
			log.Printf("[rating job] aggregate failed for course %s: %v", course.Title, err)
			continue
		}

		if course.AverageRating == agg.Avg && course.ReviewCount == int(agg.Count) {
			continue
		}
		err = db.Model(&models.Course{}).Where("id = ?", course.ID).Updates(map[string]interface{}{
			"average_rating": agg.Avg,
			"review_count":   agg.Count,
		}).Error
		if err != nil {
			log.Printf("[rating job] update failed for course %s: %v", course.Title, err)
		}
	}
}
