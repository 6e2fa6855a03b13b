package models

import "time"

// Restaurant is a tenant. Each restaurant is addressed by its unique
// subdomain, which is normalized to lowercase before it is stored or
// looked up.
type Restaurant struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Subdomain   string    `gorm:"type:varchar(63);not null;uniqueIndex" json:"subdomain"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Email       string    `gorm:"type:varchar(255);not null" json:"email"`
	MaxCapacity int       `gorm:"not null;default:0" json:"maxCapacity"`
	Tables      []Table   `gorm:"foreignKey:RestaurantID" json:"tables,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}
