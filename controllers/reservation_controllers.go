package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tablebook/tablebook/services"
	"github.com/tablebook/tablebook/utils"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{Service: services.NewReservationService(db)}
}

type createReservationRequest struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	TableID      uint   `json:"tableId" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	PartySize    int    `json:"partySize" binding:"required"`
	GuestName    string `json:"guestName" binding:"required"`
	GuestEmail   string `json:"guestEmail" binding:"required,email"`
}

// CreateReservation -> validates and books a table for a slot.
// The richer booking form submits 12-hour times ("5:30 PM"); those are
// converted to storage format here, and a conversion failure is a 400,
// never a silently wrong booking.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, services.ErrMissingFields)
		return
	}

	timeStr := req.Time
	if looks12Hour(timeStr) {
		converted, err := utils.To24Hour(timeStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		timeStr = converted
	}

	reservation, err := rc.Service.Create(services.CreateReservationInput{
		RestaurantID: req.RestaurantID,
		TableID:      req.TableID,
		Date:         req.Date,
		Time:         timeStr,
		PartySize:    req.PartySize,
		GuestName:    req.GuestName,
		GuestEmail:   req.GuestEmail,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields),
			errors.Is(err, services.ErrLeadTime),
			errors.Is(err, services.ErrSlotConflict),
			errors.Is(err, services.ErrUnknownTable):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondInternal(c, err)
		}
		return
	}

	utils.InfoLogger.Printf("Reservation %d created: table %d on %s %s for %d (%s)",
		reservation.ID, reservation.TableID, reservation.Date, reservation.Time,
		reservation.PartySize, reservation.GuestName)
	c.JSON(http.StatusOK, gin.H{"success": true, "reservation": reservation})
}

// GetReservation -> confirmation detail with denormalized restaurant
// subdomain and table number.
func (rc *ReservationController) GetReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("reservation_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, services.ErrReservationNotFound)
		return
	}

	detail, err := rc.Service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// GetReservationByCode -> same detail, keyed on the confirmation code.
func (rc *ReservationController) GetReservationByCode(c *gin.Context) {
	detail, err := rc.Service.GetByCode(c.Param("code"))
	if err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// CancelReservation -> soft-cancel; idempotent, the slot stays blocked.
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("reservation_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, services.ErrReservationNotFound)
		return
	}

	reservation, err := rc.Service.Cancel(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondInternal(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d cancelled", reservation.ID)
	c.JSON(http.StatusOK, gin.H{
		"message":     "Reservation cancelled successfully",
		"reservation": reservation,
	})
}

func looks12Hour(s string) bool {
	upper := strings.ToUpper(strings.TrimSpace(s))
	return strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM")
}
