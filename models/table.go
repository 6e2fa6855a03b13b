package models

import "time"

// Table belongs to exactly one restaurant. Number is the display label
// guests pick from the floor plan and is unique within its restaurant.
type Table struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RestaurantID uint      `gorm:"not null;index;uniqueIndex:uniq_restaurant_table_number" json:"restaurantId"`
	Number       int       `gorm:"not null;uniqueIndex:uniq_restaurant_table_number" json:"number"`
	Capacity     int       `gorm:"not null" json:"capacity"`
	PhotoURL     *string   `gorm:"type:varchar(512)" json:"photoUrl,omitempty"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"not null" json:"updatedAt"`
}
