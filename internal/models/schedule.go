package models

import (
	"errors"
	"time"

	"github.com/tableside/restaurant-ops-backend/pkg/validator"
)

// StaffSchedule represents one scheduled shift for a service date.
// StaffName, Position and HourlyRate are snapshots taken at creation
// so later staff edits never rewrite past schedules.
type StaffSchedule struct {
	ID             string    `json:"id" db:"id"`
	StaffID        string    `json:"staff_id" db:"staff_id"`
	StaffName      string    `json:"staff_name" db:"staff_name"`
	Position       string    `json:"position" db:"position"`
	ServiceDate    string    `json:"service_date" db:"service_date"`
	ShiftStart     string    `json:"shift_start" db:"shift_start"`
	ShiftEnd       string    `json:"shift_end" db:"shift_end"`
	ScheduledHours float64   `json:"scheduled_hours" db:"scheduled_hours"`
	HourlyRate     float64   `json:"hourly_rate" db:"hourly_rate"`
	Notes          *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// CreateScheduleRequest represents the request to create a staff schedule
type CreateScheduleRequest struct {
	StaffID        string  `json:"staff_id" binding:"required"`
	StaffName      string  `json:"staff_name" binding:"required"`
	Position       string  `json:"position" binding:"required"`
	ServiceDate    string  `json:"service_date" binding:"required"`
	ShiftStart     string  `json:"shift_start" binding:"required"`
	ShiftEnd       string  `json:"shift_end" binding:"required"`
	ScheduledHours float64 `json:"scheduled_hours" binding:"required"`
	HourlyRate     float64 `json:"hourly_rate" binding:"required"`
	Notes          *string `json:"notes,omitempty"`
}

// UpdateScheduleRequest represents a partial update to a staff schedule
type UpdateScheduleRequest struct {
	StaffID        *string  `json:"staff_id,omitempty"`
	StaffName      *string  `json:"staff_name,omitempty"`
	Position       *string  `json:"position,omitempty"`
	ServiceDate    *string  `json:"service_date,omitempty"`
	ShiftStart     *string  `json:"shift_start,omitempty"`
	ShiftEnd       *string  `json:"shift_end,omitempty"`
	ScheduledHours *float64 `json:"scheduled_hours,omitempty"`
	HourlyRate     *float64 `json:"hourly_rate,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// Validate validates the create schedule request
func (r *CreateScheduleRequest) Validate() error {
	if err := validator.ValidateServiceDate(r.ServiceDate); err != nil {
		return err
	}
	if err := validator.ValidateClockTime(r.ShiftStart); err != nil {
		return err
	}
	if err := validator.ValidateClockTime(r.ShiftEnd); err != nil {
		return err
	}
	if r.ScheduledHours < 0 {
		return errors.New("scheduled_hours cannot be negative")
	}
	if r.HourlyRate < 0 {
		return errors.New("hourly_rate cannot be negative")
	}
	return nil
}

// Validate validates the update schedule request
func (r *UpdateScheduleRequest) Validate() error {
	if r.ServiceDate != nil {
		if err := validator.ValidateServiceDate(*r.ServiceDate); err != nil {
			return err
		}
	}
	if r.ShiftStart != nil {
		if err := validator.ValidateClockTime(*r.ShiftStart); err != nil {
			return err
		}
	}
	if r.ShiftEnd != nil {
		if err := validator.ValidateClockTime(*r.ShiftEnd); err != nil {
			return err
		}
	}
	if r.ScheduledHours != nil && *r.ScheduledHours < 0 {
		return errors.New("scheduled_hours cannot be negative")
	}
	if r.HourlyRate != nil && *r.HourlyRate < 0 {
		return errors.New("hourly_rate cannot be negative")
	}
	return nil
}

// IsEmpty reports whether the update request carries no fields
func (r *UpdateScheduleRequest) IsEmpty() bool {
	return r.StaffID == nil && r.StaffName == nil && r.Position == nil &&
		r.ServiceDate == nil && r.ShiftStart == nil && r.ShiftEnd == nil &&
		r.ScheduledHours == nil && r.HourlyRate == nil && r.Notes == nil
}
