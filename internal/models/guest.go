package models

import (
	"errors"
	"time"
)

// Guest represents a guest profile with visit history and lifetime value
type Guest struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Phone       *string   `json:"phone,omitempty" db:"phone"`
	Email       *string   `json:"email,omitempty" db:"email"`
	TotalVisits int       `json:"total_visits" db:"total_visits"`
	TotalSpend  float64   `json:"total_spend" db:"total_spend"`
	Preferences *string   `json:"preferences,omitempty" db:"preferences"`
	VIPStatus   bool      `json:"vip_status" db:"vip_status"`
	LastVisit   *string   `json:"last_visit,omitempty" db:"last_visit"`
	Notes       *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CreateGuestRequest represents the request to create a guest
type CreateGuestRequest struct {
	Name        string  `json:"name" binding:"required"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	TotalVisits int     `json:"total_visits"`
	TotalSpend  float64 `json:"total_spend"`
	Preferences *string `json:"preferences,omitempty"`
	VIPStatus   bool    `json:"vip_status"`
	LastVisit   *string `json:"last_visit,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// UpdateGuestRequest represents a partial update to a guest.
// Only non-nil fields are applied.
type UpdateGuestRequest struct {
	Name        *string  `json:"name,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Email       *string  `json:"email,omitempty"`
	TotalVisits *int     `json:"total_visits,omitempty"`
	TotalSpend  *float64 `json:"total_spend,omitempty"`
	Preferences *string  `json:"preferences,omitempty"`
	VIPStatus   *bool    `json:"vip_status,omitempty"`
	LastVisit   *string  `json:"last_visit,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

// Validate validates the create guest request
func (r *CreateGuestRequest) Validate() error {
	if r.TotalVisits < 0 {
		return errors.New("total_visits cannot be negative")
	}
	if r.TotalSpend < 0 {
		return errors.New("total_spend cannot be negative")
	}
	return nil
}

// IsEmpty reports whether the update request carries no fields
func (r *UpdateGuestRequest) IsEmpty() bool {
	return r.Name == nil && r.Phone == nil && r.Email == nil &&
		r.TotalVisits == nil && r.TotalSpend == nil && r.Preferences == nil &&
		r.VIPStatus == nil && r.LastVisit == nil && r.Notes == nil
}
