package models

import (
	"errors"
	"time"

	"github.com/tableside/restaurant-ops-backend/pkg/validator"
)

// ServiceConfig holds per-date service expectations. At most one exists per
// service date. Walk-in min/max are operator estimates and are passed through
// to the briefing without min<=max enforcement.
type ServiceConfig struct {
	ID                string    `json:"id" db:"id"`
	ServiceDate       string    `json:"service_date" db:"service_date"`
	ExpectedWalkInMin int       `json:"expected_walk_in_min" db:"expected_walk_in_min"`
	ExpectedWalkInMax int       `json:"expected_walk_in_max" db:"expected_walk_in_max"`
	PeakTimeStart     *string   `json:"peak_time_start,omitempty" db:"peak_time_start"`
	PeakTimeEnd       *string   `json:"peak_time_end,omitempty" db:"peak_time_end"`
	Notes             *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// CreateServiceConfigRequest represents the request to create a service config
type CreateServiceConfigRequest struct {
	ServiceDate       string  `json:"service_date" binding:"required"`
	ExpectedWalkInMin int     `json:"expected_walk_in_min"`
	ExpectedWalkInMax int     `json:"expected_walk_in_max"`
	PeakTimeStart     *string `json:"peak_time_start,omitempty"`
	PeakTimeEnd       *string `json:"peak_time_end,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}

// UpdateServiceConfigRequest represents a partial update to a service config
type UpdateServiceConfigRequest struct {
	ExpectedWalkInMin *int    `json:"expected_walk_in_min,omitempty"`
	ExpectedWalkInMax *int    `json:"expected_walk_in_max,omitempty"`
	PeakTimeStart     *string `json:"peak_time_start,omitempty"`
	PeakTimeEnd       *string `json:"peak_time_end,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}

// Validate validates the create service config request
func (r *CreateServiceConfigRequest) Validate() error {
	if err := validator.ValidateServiceDate(r.ServiceDate); err != nil {
		return err
	}
	if r.ExpectedWalkInMin < 0 || r.ExpectedWalkInMax < 0 {
		return errors.New("expected walk-in counts cannot be negative")
	}
	return nil
}

// IsEmpty reports whether the update request carries no fields
func (r *UpdateServiceConfigRequest) IsEmpty() bool {
	return r.ExpectedWalkInMin == nil && r.ExpectedWalkInMax == nil &&
		r.PeakTimeStart == nil && r.PeakTimeEnd == nil && r.Notes == nil
}
