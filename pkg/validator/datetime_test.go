package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateServiceDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr error
	}{
		{"Valid Date", "2025-01-10", nil},
		{"Valid Leap Day", "2024-02-29", nil},
		{"Empty", "", ErrEmptyDate},
		{"Wrong Separator", "2025/01/10", ErrInvalidDateFormat},
		{"US Format", "01-10-2025", ErrInvalidDateFormat},
		{"Month Out Of Range", "2025-13-01", ErrInvalidDateFormat},
		{"Day Out Of Range", "2025-01-32", ErrInvalidDateFormat},
		{"Non-Leap Feb 29", "2025-02-29", ErrInvalidDateFormat},
		{"Free Text", "tonight", ErrInvalidDateFormat},
		{"Date With Time", "2025-01-10T19:00", ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateServiceDate(tt.date)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateClockTime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{"Valid Evening", "19:00", nil},
		{"Valid Midnight", "00:00", nil},
		{"Valid End Of Day", "23:59", nil},
		{"Empty", "", ErrEmptyTime},
		{"Hour Out Of Range", "24:00", ErrInvalidTimeFormat},
		{"Minute Out Of Range", "19:60", ErrInvalidTimeFormat},
		{"Missing Leading Zero", "9:00", ErrInvalidTimeFormat},
		{"With Seconds", "19:00:00", ErrInvalidTimeFormat},
		{"12-Hour Format", "7:00 PM", ErrInvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClockTime(tt.value)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestIsValidWrappers(t *testing.T) {
	assert.True(t, IsValidServiceDate("2025-01-10"))
	assert.False(t, IsValidServiceDate("2025-1-10"))
	assert.True(t, IsValidClockTime("19:30"))
	assert.False(t, IsValidClockTime("19.30"))
}
