package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/tablebook/tablebook/controllers"
	"github.com/tablebook/tablebook/models"
)

func setupReservationRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	reservationCtrl := controllers.NewReservationController(db)
	router.POST("/api/reservations", reservationCtrl.CreateReservation)
	router.GET("/api/reservations/:reservation_id", reservationCtrl.GetReservation)
	router.GET("/api/reservations/code/:code", reservationCtrl.GetReservationByCode)
	router.DELETE("/api/reservations/:reservation_id", reservationCtrl.CancelReservation)
	return router
}

func postReservation(router *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bookingBody(date string) map[string]interface{} {
	return map[string]interface{}{
		"restaurantId": 1,
		"tableId":      2,
		"date":         date,
		"time":         "18:00",
		"partySize":    4,
		"guestName":    "Ada Lovelace",
		"guestEmail":   "ada@example.com",
	}
}

func TestCreateReservation(t *testing.T) {
	db := setupTestDB()
	router := setupReservationRouter(db)

	w := postReservation(router, bookingBody(futureDate()))
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success     bool               `json:"success"`
		Reservation models.Reservation `json:"reservation"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, models.ReservationConfirmed, response.Reservation.Status)
	assert.Equal(t, uint(2), response.Reservation.TableID)
	assert.Equal(t, "18:00", response.Reservation.Time)
	assert.NotEmpty(t, response.Reservation.Code)
	assert.NotZero(t, response.Reservation.ID)
}

func TestCreateReservationTwelveHourTime(t *testing.T) {
	db := setupTestDB()
	router := setupReservationRouter(db)

	body := bookingBody(futureDate())
	body["time"] = "6:30 PM"
	w := postReservation(router, body)
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Reservation models.Reservation `json:"reservation"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "18:30", response.Reservation.Time)

	// A malformed 12-hour time must be rejected, never booked wrong.
	body = bookingBody(futureDate())
	body["time"] = "13:00 PM"
	w = postReservation(router, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReservationMissingFields(t *testing.T) {
	db := setupTestDB()
	router := setupReservationRouter(db)

	for _, field := range []string{"restaurantId", "tableId", "date", "time", "partySize", "guestName", "guestEmail"} {
		body := bookingBody(futureDate())
		delete(body, field)
		w := postReservation(router, body)

		assert.Equal(t, http.StatusBadRequest, w.Code, field)
		var response map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Missing required fields", response["error"], field)
	}
}

func TestCreateReservationLeadTimeViolation(t *testing.T) {
	db := setupTestDB()
	router := setupReservationRouter(db)

	// A slot a few hours from now is well inside the 24h window.
	body := bookingBody("2020-01-01")
	w := postReservation(router, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Reservations must be made at least 24 hours in advance", response["error"])
}

func TestCreateReservationSlotConflict(t *testing.T) {
	db := setupTestDB()
	router := setupReservationRouter(db)
	date := futureDate()

	w := postReservation(router, bookingBody(date))
	assert.Equal(t, http.StatusOK, w.Code)

	body := bookingBody(date)
	body["guestName"] = "Grace Hopper"
	body["guestEmail"] = "grace@example.com"
	w = postReservation(router, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Table is already booked for this time", response["error"])
}

func TestGetReservationDetail(t *testing.T) {
	db := setupTestDB()
	router := setupReservationRouter(db)
	date := futureDate()

	w := postReservation(router, bookingBody(date))
	assert.Equal(t, http.StatusOK, w.Code)
	var created struct {
		Reservation models.Reservation `json:"reservation"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/reservations/%d", created.Reservation.ID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var detail map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "storea", detail["restaurantName"])
	assert.Equal(t, float64(2), detail["tableNumber"])
	assert.Equal(t, date, detail["date"])
	assert.Equal(t, "18:00", detail["time"])
	assert.Equal(t, "6:00 PM", detail["displayTime"])
	assert.Equal(t, float64(4), detail["partySize"])
	assert.Equal(t, "Ada Lovelace", detail["guestName"])
	assert.Equal(t, "ada@example.com", detail["guestEmail"])

	// Lookup by confirmation code returns the same record.
	req = httptest.NewRequest(http.MethodGet, "/api/reservations/code/"+created.Reservation.Code, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetReservationNotFound(t *testing.T) {
	db := setupTestDB()
	router := setupReservationRouter(db)

	for _, url := range []string{"/api/reservations/9999", "/api/reservations/not-a-number", "/api/reservations/code/unknown"} {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code, url)
		var response map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Reservation not found", response["error"], url)
	}
}

func TestCancelReservation(t *testing.T) {
	db := setupTestDB()
	router := setupReservationRouter(db)

	w := postReservation(router, bookingBody(futureDate()))
	assert.Equal(t, http.StatusOK, w.Code)
	var created struct {
		Reservation models.Reservation `json:"reservation"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	url := fmt.Sprintf("/api/reservations/%d", created.Reservation.ID)
	for i := 0; i < 2; i++ { // cancelling twice succeeds both times
		req := httptest.NewRequest(http.MethodDelete, url, nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "attempt %d", i+1)
		var response struct {
			Message     string             `json:"message"`
			Reservation models.Reservation `json:"reservation"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Reservation cancelled successfully", response.Message)
		assert.Equal(t, models.ReservationCancelled, response.Reservation.Status)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/9999", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
