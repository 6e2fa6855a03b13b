package models

import "time"

const (
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Reservation holds one table for one slot. The composite unique index
// on (table_id, date, time) is the authoritative guard against double
// booking: it covers every status, so a cancelled reservation still
// blocks its slot. Date is an ISO "YYYY-MM-DD" string and Time a
// 24-hour "HH:MM" wall-clock string, both interpreted in UTC.
type Reservation struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Code         string     `gorm:"type:varchar(36);not null;uniqueIndex" json:"code"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`
	TableID      uint       `gorm:"not null;uniqueIndex:uniq_table_slot" json:"tableId"`
	Table        Table      `gorm:"foreignKey:TableID" json:"-"`
	Date         string     `gorm:"type:varchar(10);not null;uniqueIndex:uniq_table_slot" json:"date"`
	Time         string     `gorm:"type:varchar(5);not null;uniqueIndex:uniq_table_slot" json:"time"`
	PartySize    int        `gorm:"not null" json:"partySize"`
	GuestName    string     `gorm:"type:varchar(255);not null" json:"guestName"`
	GuestEmail   string     `gorm:"type:varchar(255);not null" json:"guestEmail"`
	Status       string     `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	CreatedAt    time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updatedAt"`
}
