package services

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tablebook/tablebook/models"
	"github.com/tablebook/tablebook/utils"
)

// MinLeadTime is the minimum interval between booking submission and
// the reserved moment.
const MinLeadTime = 24 * time.Hour

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

type ReservationService struct {
	DB *gorm.DB
	// Now is swapped out in tests to pin the lead-time boundary.
	Now func() time.Time
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db, Now: time.Now}
}

// CreateReservationInput carries a validated-shape booking request.
// Time must already be in 24-hour "HH:MM" form.
type CreateReservationInput struct {
	RestaurantID uint
	TableID      uint
	Date         string
	Time         string
	PartySize    int
	GuestName    string
	GuestEmail   string
}

// ReservationDetail is the denormalized confirmation-page view of a
// reservation: restaurant subdomain and table number are copied on so
// the caller needs no further lookups.
type ReservationDetail struct {
	ID             uint      `json:"id"`
	Code           string    `json:"code"`
	RestaurantName string    `json:"restaurantName"`
	TableNumber    int       `json:"tableNumber"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	DisplayTime    string    `json:"displayTime"`
	PartySize      int       `json:"partySize"`
	GuestName      string    `json:"guestName"`
	GuestEmail     string    `json:"guestEmail"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// FindAvailableTables returns the restaurant's tables that seat at
// least partySize and are not already reserved for the exact
// (date, time) slot, smallest sufficient table first. Reservations of
// every status block their slot, cancelled ones included. An empty
// result is valid "no availability", not an error.
func (s *ReservationService) FindAvailableTables(restaurantID uint, date, timeStr string, partySize int) ([]models.Table, error) {
	if restaurantID == 0 || partySize <= 0 || !datePattern.MatchString(date) || !timePattern.MatchString(timeStr) {
		return nil, ErrMissingParams
	}

	var bookedIDs []uint
	if err := s.DB.Model(&models.Reservation{}).
		Where("restaurant_id = ? AND date = ? AND time = ?", restaurantID, date, timeStr).
		Pluck("table_id", &bookedIDs).Error; err != nil {
		return nil, err
	}

	q := s.DB.Where("restaurant_id = ? AND capacity >= ?", restaurantID, partySize)
	if len(bookedIDs) > 0 {
		q = q.Where("id NOT IN ?", bookedIDs)
	}

	tables := make([]models.Table, 0)
	if err := q.Order("capacity ASC, number ASC").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// Create validates and persists a booking. Validation order: field
// presence, 24-hour lead time (date+time interpreted in UTC), table
// ownership, slot occupancy. The pre-insert occupancy check is advisory;
// the unique index on (table_id, date, time) is what actually decides a
// race between two concurrent requests, so a duplicate-key failure is
// reported as the same slot conflict.
func (s *ReservationService) Create(in CreateReservationInput) (*models.Reservation, error) {
	if in.RestaurantID == 0 || in.TableID == 0 || in.PartySize <= 0 ||
		in.GuestName == "" || in.GuestEmail == "" ||
		!datePattern.MatchString(in.Date) || !timePattern.MatchString(in.Time) {
		return nil, ErrMissingFields
	}

	slot, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, time.UTC)
	if err != nil {
		return nil, ErrMissingFields
	}
	if slot.Before(s.Now().UTC().Add(MinLeadTime)) {
		return nil, ErrLeadTime
	}

	var table models.Table
	if err := s.DB.Where("id = ? AND restaurant_id = ?", in.TableID, in.RestaurantID).First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownTable
		}
		return nil, err
	}

	var occupied int64
	if err := s.DB.Model(&models.Reservation{}).
		Where("table_id = ? AND date = ? AND time = ?", in.TableID, in.Date, in.Time).
		Count(&occupied).Error; err != nil {
		return nil, err
	}
	if occupied > 0 {
		return nil, ErrSlotConflict
	}

	reservation := models.Reservation{
		Code:         uuid.NewString(),
		RestaurantID: in.RestaurantID,
		TableID:      in.TableID,
		Date:         in.Date,
		Time:         in.Time,
		PartySize:    in.PartySize,
		GuestName:    in.GuestName,
		GuestEmail:   in.GuestEmail,
		Status:       models.ReservationConfirmed,
	}
	if err := s.DB.Create(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race to a concurrent booking of the same slot.
			return nil, ErrSlotConflict
		}
		return nil, err
	}
	return &reservation, nil
}

// GetByID fetches one reservation for confirmation display.
func (s *ReservationService) GetByID(id uint) (*ReservationDetail, error) {
	var reservation models.Reservation
	err := s.DB.Preload("Restaurant").Preload("Table").First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return s.detail(&reservation), nil
}

// GetByCode is GetByID keyed on the confirmation code guests receive.
func (s *ReservationService) GetByCode(code string) (*ReservationDetail, error) {
	var reservation models.Reservation
	err := s.DB.Preload("Restaurant").Preload("Table").Where("code = ?", code).First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return s.detail(&reservation), nil
}

// Cancel soft-cancels a reservation and returns the updated record.
// Cancelling twice is a no-op that succeeds; the slot stays blocked
// either way because the unique index ignores status.
func (s *ReservationService) Cancel(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if reservation.Status != models.ReservationCancelled {
		reservation.Status = models.ReservationCancelled
		if err := s.DB.Save(&reservation).Error; err != nil {
			return nil, err
		}
	}
	return &reservation, nil
}

func (s *ReservationService) detail(r *models.Reservation) *ReservationDetail {
	display, err := utils.To12Hour(r.Time)
	if err != nil {
		display = r.Time
	}
	return &ReservationDetail{
		ID:             r.ID,
		Code:           r.Code,
		RestaurantName: r.Restaurant.Subdomain,
		TableNumber:    r.Table.Number,
		Date:           r.Date,
		Time:           r.Time,
		DisplayTime:    display,
		PartySize:      r.PartySize,
		GuestName:      r.GuestName,
		GuestEmail:     r.GuestEmail,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt,
	}
}
