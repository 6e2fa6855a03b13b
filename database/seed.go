package database

import (
	"gorm.io/gorm"

	"github.com/tablebook/tablebook/models"
	"github.com/tablebook/tablebook/utils"
)

// SeedDemoData provisions the demo tenant used in local development:
// the "storea" restaurant with its five-table floor plan. Safe to run
// repeatedly; it is a no-op once the subdomain exists.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Restaurant{}).Where("subdomain = ?", "storea").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	photo := func(u string) *string { return &u }
	restaurant := models.Restaurant{
		Subdomain:   "storea",
		Name:        "Store A Restaurant",
		Email:       "hello@storea.com",
		MaxCapacity: 30,
		Tables: []models.Table{
			{Number: 1, Capacity: 2, PhotoURL: photo("https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=400&h=300&fit=crop")},
			{Number: 2, Capacity: 4, PhotoURL: photo("https://images.unsplash.com/photo-1551218808-94e220e084d2?w=400&h=300&fit=crop")},
			{Number: 3, Capacity: 4, PhotoURL: photo("https://images.unsplash.com/photo-1559339352-11d035aa65de?w=400&h=300&fit=crop")},
			{Number: 4, Capacity: 6, PhotoURL: photo("https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=400&h=300&fit=crop")},
			{Number: 5, Capacity: 6, PhotoURL: photo("https://images.unsplash.com/photo-1578474846511-04ba529f0b88?w=400&h=300&fit=crop")},
		},
	}
	if err := db.Create(&restaurant).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("Seeded restaurant %q (subdomain=%s) with %d tables",
		restaurant.Name, restaurant.Subdomain, len(restaurant.Tables))
	return nil
}
