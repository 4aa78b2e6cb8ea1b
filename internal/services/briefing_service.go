package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tableside/restaurant-ops-backend/internal/models"
	"github.com/tableside/restaurant-ops-backend/pkg/llm"
)

// ReservationFinder looks up reservations for a service date and status
type ReservationFinder interface {
	GetByDateAndStatus(serviceDate, status string) ([]models.Reservation, error)
}

// ScheduleFinder looks up staff schedules for a service date
type ScheduleFinder interface {
	GetByDate(serviceDate string) ([]models.StaffSchedule, error)
}

// ServiceConfigFinder looks up the service config for a service date.
// Implementations return sql.ErrNoRows when no config exists.
type ServiceConfigFinder interface {
	GetByDate(serviceDate string) (*models.ServiceConfig, error)
}

// GuestFinder looks up guests by ID. Never called with an empty set.
type GuestFinder interface {
	GetByIDs(ids []string) ([]models.Guest, error)
}

// BriefingService assembles the pre-shift briefing for one service date:
// it collects the day's data, derives operational metrics, renders the
// generation prompts and invokes the text-generation provider.
type BriefingService struct {
	reservations ReservationFinder
	schedules    ScheduleFinder
	configs      ServiceConfigFinder
	guests       GuestFinder
	generator    llm.Generator
	logger       *logrus.Logger
}

// NewBriefingService creates a new BriefingService
func NewBriefingService(
	reservations ReservationFinder,
	schedules ScheduleFinder,
	configs ServiceConfigFinder,
	guests GuestFinder,
	generator llm.Generator,
	logger *logrus.Logger,
) *BriefingService {
	return &BriefingService{
		reservations: reservations,
		schedules:    schedules,
		configs:      configs,
		guests:       guests,
		generator:    generator,
		logger:       logger,
	}
}

// briefingData holds the read-only snapshot collected for one briefing
type briefingData struct {
	reservations []models.Reservation
	schedules    []models.StaffSchedule
	config       *models.ServiceConfig
	guests       map[string]models.Guest
}

// GenerateBriefing produces the briefing for a service date. Store failures
// surface as *CollectionError and provider failures as *GenerationError;
// empty data sets are valid states and render placeholder text instead.
func (s *BriefingService) GenerateBriefing(ctx context.Context, serviceDate string) (*models.BriefingResult, error) {
	data, err := s.collect(serviceDate)
	if err != nil {
		return nil, &CollectionError{Err: err}
	}

	metrics := calculateMetrics(data)
	userPrompt := buildUserPrompt(serviceDate, data, metrics)

	briefingText, err := s.generator.Generate(ctx, briefingSystemPrompt, userPrompt)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service_date": serviceDate,
			"error":        err.Error(),
		}).Error("Briefing generation failed")
		return nil, &GenerationError{Err: err}
	}

	return &models.BriefingResult{
		ServiceDate:  serviceDate,
		BriefingText: briefingText,
		GeneratedAt:  time.Now().UTC(),
	}, nil
}

// collect fetches the four input sets for the service date. Cancelled and
// completed reservations are excluded by policy; schedules carry no status
// filter; a missing config is an expected state, not an error.
func (s *BriefingService) collect(serviceDate string) (briefingData, error) {
	var data briefingData

	reservations, err := s.reservations.GetByDateAndStatus(serviceDate, models.ReservationStatusConfirmed)
	if err != nil {
		return data, err
	}
	data.reservations = reservations

	schedules, err := s.schedules.GetByDate(serviceDate)
	if err != nil {
		return data, err
	}
	data.schedules = schedules

	config, err := s.configs.GetByDate(serviceDate)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return data, err
	}
	data.config = config

	data.guests = map[string]models.Guest{}
	guestIDs := distinctGuestIDs(reservations)
	if len(guestIDs) > 0 {
		guests, err := s.guests.GetByIDs(guestIDs)
		if err != nil {
			return data, err
		}
		for _, g := range guests {
			data.guests[g.ID] = g
		}
	}

	return data, nil
}

// distinctGuestIDs returns the distinct guest IDs in reservation order
func distinctGuestIDs(reservations []models.Reservation) []string {
	seen := make(map[string]bool, len(reservations))
	ids := make([]string, 0, len(reservations))
	for _, r := range reservations {
		if !seen[r.GuestID] {
			seen[r.GuestID] = true
			ids = append(ids, r.GuestID)
		}
	}
	return ids
}
