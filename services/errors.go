// Package services holds the booking rules that sit between the HTTP
// controllers and gorm: availability queries, lead-time validation,
// slot-conflict detection and soft cancellation.
package services

import "errors"

// User-facing business errors. Controllers translate these into 400 or
// 404 responses with the message verbatim; any other error is an
// internal failure answered with a generic message.
var (
	ErrMissingParams       = errors.New("Missing required parameters")
	ErrMissingFields       = errors.New("Missing required fields")
	ErrLeadTime            = errors.New("Reservations must be made at least 24 hours in advance")
	ErrSlotConflict        = errors.New("Table is already booked for this time")
	ErrUnknownTable        = errors.New("Table does not belong to this restaurant")
	ErrReservationNotFound = errors.New("Reservation not found")
)
