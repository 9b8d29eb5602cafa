package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	config "github.com/codezon/lms-backend/configs"
	"github.com/codezon/lms-backend/database"
	"github.com/codezon/lms-backend/services"
)

// Standalone seeder. Reads DATABASE_URL (defaulting to a local
// instance), populates demo enrollments and reviews, and prints the
// aggregate counts. Safe to run repeatedly.
func main() {
	if err := run(); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func run() error {
	db, err := database.Connect(config.DatabaseURL())
	if err != nil {
		return err
	}
	// Release the connection whether the run succeeds or fails.
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("failed to close database: %v", err)
		} else {
			log.Println("🔌 Disconnected from database")
		}
	}()
	log.Println("✅ Connected to database")

	if err := database.Migrate(db); err != nil {
		return err
	}

	strictPayload := config.Config("REVIEW_STRICT_PAYLOAD") == "true"
	reviews := services.NewReviewService(db, strictPayload)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	seeder := services.NewSeeder(db, reviews, rng)

	result, err := seeder.Run()
	if err != nil {
		return fmt.Errorf("seeding reviews: %w", err)
	}

	log.Println("✅ Seed completed successfully!")
	log.Println("📊 Statistics:")
	log.Printf("   - Reviews created: %d", result.ReviewsCreated)
	log.Printf("   - Enrollments created: %d", result.EnrollmentsCreated)
	log.Printf("   - Reviews skipped (already exist): %d", result.ReviewsSkipped)
	return nil
}
