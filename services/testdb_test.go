package services

import (
	"fmt"
	"testing"

	"github.com/codezon/lms-backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a fresh named in-memory database. TranslateError is on,
// matching production, so unique violations come back as
// gorm.ErrDuplicatedKey.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	// A single connection keeps the shared in-memory database alive for
	// the whole test.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Enrollment{},
		&models.CourseReview{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func createStudent(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	u := models.User{FullName: "Test Student", Email: email, Password: "x", Role: models.RoleStudent}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create student: %v", err)
	}
	return u
}

func createCourse(t *testing.T, db *gorm.DB, title string, price float64) models.Course {
	t.Helper()
	c := models.Course{Title: title, Slug: title, Price: price, IsPublished: true}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("create course: %v", err)
	}
	return c
}
