package validator

import (
	"errors"
	"regexp"
	"time"
)

var (
	// ErrEmptyDate indicates the service date is empty
	ErrEmptyDate = errors.New("service date cannot be empty")

	// ErrInvalidDateFormat indicates the service date is not YYYY-MM-DD
	ErrInvalidDateFormat = errors.New("service date must be in YYYY-MM-DD format")

	// ErrEmptyTime indicates the time value is empty
	ErrEmptyTime = errors.New("time cannot be empty")

	// ErrInvalidTimeFormat indicates the time value is not 24-hour HH:MM
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM 24-hour format")
)

// clockTimeRegex matches 24-hour HH:MM values
var clockTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidateServiceDate validates a YYYY-MM-DD service date string.
// The date must parse as a real calendar date, not just match the shape.
func ValidateServiceDate(date string) error {
	if date == "" {
		return ErrEmptyDate
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrInvalidDateFormat
	}
	return nil
}

// ValidateClockTime validates an HH:MM 24-hour time string
func ValidateClockTime(value string) error {
	if value == "" {
		return ErrEmptyTime
	}
	if !clockTimeRegex.MatchString(value) {
		return ErrInvalidTimeFormat
	}
	return nil
}

// IsValidServiceDate is a convenience wrapper around ValidateServiceDate
func IsValidServiceDate(date string) bool {
	return ValidateServiceDate(date) == nil
}

// IsValidClockTime is a convenience wrapper around ValidateClockTime
func IsValidClockTime(value string) bool {
	return ValidateClockTime(value) == nil
}
