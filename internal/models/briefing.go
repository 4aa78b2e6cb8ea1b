package models

import "time"

// BriefingRequest asks for a pre-shift briefing for one service date
type BriefingRequest struct {
	ServiceDate string `json:"service_date" binding:"required"`
}

// BriefingResult is the generated briefing for one service date.
// It is created fresh on every request and never persisted.
type BriefingResult struct {
	ServiceDate  string    `json:"service_date"`
	BriefingText string    `json:"briefing_text"`
	GeneratedAt  time.Time `json:"generated_at"`
}
