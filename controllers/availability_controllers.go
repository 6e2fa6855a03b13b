package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tablebook/tablebook/services"
	"github.com/tablebook/tablebook/utils"
)

type AvailabilityController struct {
	Service *services.ReservationService
}

func NewAvailabilityController(db *gorm.DB) *AvailabilityController {
	return &AvailabilityController{Service: services.NewReservationService(db)}
}

// GetAvailability -> tables free for the requested slot and party size.
// Responds 200 with a (possibly empty) array of tables ordered by
// capacity ascending, or 400 when a parameter is missing or malformed.
func (ac *AvailabilityController) GetAvailability(c *gin.Context) {
	restaurantID := queryUint(c, "restaurantId")
	partySize, _ := strconv.Atoi(c.Query("partySize"))
	date := c.Query("date")
	timeStr := c.Query("time")

	tables, err := ac.Service.FindAvailableTables(restaurantID, date, timeStr, partySize)
	if err != nil {
		if errors.Is(err, services.ErrMissingParams) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, tables)
}

// queryUint parses a positive integer query parameter, 0 on any failure.
func queryUint(c *gin.Context, key string) uint {
	v, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}
