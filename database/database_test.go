package database

import (
	"testing"

	"github.com/codezon/lms-backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "changeme123")
	t.Setenv("ADMIN_FULL_NAME", "Site Admin")

	db := testDB(t)

	if err := SeedAdmin(db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := SeedAdmin(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var admins []models.User
	if err := db.Where("role = ?", models.RoleAdmin).Find(&admins).Error; err != nil {
		t.Fatalf("list admins: %v", err)
	}
	if len(admins) != 1 {
		t.Fatalf("expected one admin, got %d", len(admins))
	}
	if admins[0].Email != "admin@example.com" || admins[0].FullName != "Site Admin" {
		t.Fatalf("unexpected admin record: %+v", admins[0])
	}
	if admins[0].Password == "changeme123" {
		t.Fatalf("password must be hashed")
	}
}

func TestSeedAdminSkipsWithoutConfig(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")

	db := testDB(t)
	if err := SeedAdmin(db); err != nil {
		t.Fatalf("seed without config: %v", err)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no users, got %d", count)
	}
}
