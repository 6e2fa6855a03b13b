package Controllers_test

import (
	"log"
	"os"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tablebook/tablebook/models"
	"github.com/tablebook/tablebook/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// setupTestDB -> SQLite in-memory with the storea demo floor plan.
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Restaurant{}, &models.Table{}, &models.Reservation{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	restaurant := models.Restaurant{
		Subdomain:   "storea",
		Name:        "Store A Restaurant",
		Email:       "hello@storea.com",
		MaxCapacity: 30,
		Tables: []models.Table{
			{Number: 1, Capacity: 2},
			{Number: 2, Capacity: 4},
			{Number: 3, Capacity: 4},
			{Number: 4, Capacity: 6},
			{Number: 5, Capacity: 6},
		},
	}
	if err := db.Create(&restaurant).Error; err != nil {
		log.Fatalf("failed to seed: %v", err)
	}
	return db
}

// futureDate -> a booking date safely past the 24h lead-time rule.
func futureDate() string {
	return time.Now().UTC().Add(72 * time.Hour).Format("2006-01-02")
}
