package models

import (
	"errors"
	"time"
)

// Staff represents a staff member on the roster
type Staff struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Position   string    `json:"position" db:"position"` // server, host, bartender, chef, manager
	HourlyRate float64   `json:"hourly_rate" db:"hourly_rate"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// CreateStaffRequest represents the request to create a staff member
type CreateStaffRequest struct {
	Name       string  `json:"name" binding:"required"`
	Position   string  `json:"position" binding:"required"`
	HourlyRate float64 `json:"hourly_rate" binding:"required"`
}

// UpdateStaffRequest represents a partial update to a staff member
type UpdateStaffRequest struct {
	Name       *string  `json:"name,omitempty"`
	Position   *string  `json:"position,omitempty"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
}

// Validate validates the create staff request
func (r *CreateStaffRequest) Validate() error {
	if r.HourlyRate < 0 {
		return errors.New("hourly_rate cannot be negative")
	}
	return nil
}

// IsEmpty reports whether the update request carries no fields
func (r *UpdateStaffRequest) IsEmpty() bool {
	return r.Name == nil && r.Position == nil && r.HourlyRate == nil
}
