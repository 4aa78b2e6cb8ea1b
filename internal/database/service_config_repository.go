package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tableside/restaurant-ops-backend/internal/models"
)

// ServiceConfigRepository handles database operations for the service_configs table
type ServiceConfigRepository struct {
	db DB
}

// NewServiceConfigRepository creates a new ServiceConfigRepository
func NewServiceConfigRepository(db DB) *ServiceConfigRepository {
	return &ServiceConfigRepository{db: db}
}

// Create inserts a new service config. The table enforces one config per
// service date; handlers surface the duplicate as a client error.
func (r *ServiceConfigRepository) Create(req *models.CreateServiceConfigRequest) (*models.ServiceConfig, error) {
	cfg := &models.ServiceConfig{
		ID:                uuid.New().String(),
		ServiceDate:       req.ServiceDate,
		ExpectedWalkInMin: req.ExpectedWalkInMin,
		ExpectedWalkInMax: req.ExpectedWalkInMax,
		PeakTimeStart:     req.PeakTimeStart,
		PeakTimeEnd:       req.PeakTimeEnd,
		Notes:             req.Notes,
		CreatedAt:         time.Now().UTC(),
	}

	query := `
		INSERT INTO service_configs (
			id, service_date, expected_walk_in_min, expected_walk_in_max,
			peak_time_start, peak_time_end, notes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(
		query,
		cfg.ID, cfg.ServiceDate, cfg.ExpectedWalkInMin, cfg.ExpectedWalkInMax,
		cfg.PeakTimeStart, cfg.PeakTimeEnd, cfg.Notes, cfg.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create service config: %w", err)
	}

	return cfg, nil
}

// GetByDate retrieves the service config for a service date.
// Returns sql.ErrNoRows when no config exists for the date.
func (r *ServiceConfigRepository) GetByDate(serviceDate string) (*models.ServiceConfig, error) {
	query := `
		SELECT id, service_date, expected_walk_in_min, expected_walk_in_max,
		       peak_time_start, peak_time_end, notes, created_at
		FROM service_configs
		WHERE service_date = $1
	`

	var cfg models.ServiceConfig
	if err := r.db.Get(&cfg, query, serviceDate); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// UpdateByDate applies a partial update keyed by service date
func (r *ServiceConfigRepository) UpdateByDate(serviceDate string, req *models.UpdateServiceConfigRequest) (*models.ServiceConfig, error) {
	query := `
		UPDATE service_configs
		SET expected_walk_in_min = COALESCE($2::int, expected_walk_in_min),
		    expected_walk_in_max = COALESCE($3::int, expected_walk_in_max),
		    peak_time_start = COALESCE($4::text, peak_time_start),
		    peak_time_end = COALESCE($5::text, peak_time_end),
		    notes = COALESCE($6::text, notes)
		WHERE service_date = $1
	`

	result, err := r.db.Exec(
		query,
		serviceDate, req.ExpectedWalkInMin, req.ExpectedWalkInMax,
		req.PeakTimeStart, req.PeakTimeEnd, req.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update service config: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, sql.ErrNoRows
	}

	return r.GetByDate(serviceDate)
}
