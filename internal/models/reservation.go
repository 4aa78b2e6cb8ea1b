package models

import (
	"errors"
	"time"

	"github.com/tableside/restaurant-ops-backend/pkg/validator"
)

// ReservationStatus values
const (
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusCompleted = "completed"
)

// Reservation represents a booking for a service date.
// GuestName is a snapshot taken at creation, not a live join.
type Reservation struct {
	ID          string    `json:"id" db:"id"`
	GuestID     string    `json:"guest_id" db:"guest_id"`
	GuestName   string    `json:"guest_name" db:"guest_name"`
	ServiceDate string    `json:"service_date" db:"service_date"`
	Time        string    `json:"time" db:"time"`
	PartySize   int       `json:"party_size" db:"party_size"`
	Notes       *string   `json:"notes,omitempty" db:"notes"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CreateReservationRequest represents the request to create a reservation
type CreateReservationRequest struct {
	GuestID     string  `json:"guest_id" binding:"required"`
	GuestName   string  `json:"guest_name" binding:"required"`
	ServiceDate string  `json:"service_date" binding:"required"`
	Time        string  `json:"time" binding:"required"`
	PartySize   int     `json:"party_size" binding:"required"`
	Notes       *string `json:"notes,omitempty"`
	Status      string  `json:"status"`
}

// UpdateReservationRequest represents a partial update to a reservation
type UpdateReservationRequest struct {
	GuestID     *string `json:"guest_id,omitempty"`
	GuestName   *string `json:"guest_name,omitempty"`
	ServiceDate *string `json:"service_date,omitempty"`
	Time        *string `json:"time,omitempty"`
	PartySize   *int    `json:"party_size,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// ValidReservationStatus reports whether s is a known reservation status
func ValidReservationStatus(s string) bool {
	return s == ReservationStatusConfirmed || s == ReservationStatusCancelled || s == ReservationStatusCompleted
}

// Validate validates the create reservation request
func (r *CreateReservationRequest) Validate() error {
	if err := validator.ValidateServiceDate(r.ServiceDate); err != nil {
		return err
	}
	if err := validator.ValidateClockTime(r.Time); err != nil {
		return err
	}
	if r.PartySize <= 0 {
		return errors.New("party_size must be positive")
	}
	if r.Status != "" && !ValidReservationStatus(r.Status) {
		return errors.New("status must be one of: confirmed, cancelled, completed")
	}
	return nil
}

// Validate validates the update reservation request
func (r *UpdateReservationRequest) Validate() error {
	if r.ServiceDate != nil {
		if err := validator.ValidateServiceDate(*r.ServiceDate); err != nil {
			return err
		}
	}
	if r.Time != nil {
		if err := validator.ValidateClockTime(*r.Time); err != nil {
			return err
		}
	}
	if r.PartySize != nil && *r.PartySize <= 0 {
		return errors.New("party_size must be positive")
	}
	if r.Status != nil && !ValidReservationStatus(*r.Status) {
		return errors.New("status must be one of: confirmed, cancelled, completed")
	}
	return nil
}

// IsEmpty reports whether the update request carries no fields
func (r *UpdateReservationRequest) IsEmpty() bool {
	return r.GuestID == nil && r.GuestName == nil && r.ServiceDate == nil &&
		r.Time == nil && r.PartySize == nil && r.Notes == nil && r.Status == nil
}
