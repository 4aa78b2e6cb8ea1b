package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tableside/restaurant-ops-backend/internal/models"
)

// ScheduleRepository handles database operations for the staff_schedules table
type ScheduleRepository struct {
	db DB
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create inserts a new staff schedule
func (r *ScheduleRepository) Create(req *models.CreateScheduleRequest) (*models.StaffSchedule, error) {
	schedule := &models.StaffSchedule{
		ID:             uuid.New().String(),
		StaffID:        req.StaffID,
		StaffName:      req.StaffName,
		Position:       req.Position,
		ServiceDate:    req.ServiceDate,
		ShiftStart:     req.ShiftStart,
		ShiftEnd:       req.ShiftEnd,
		ScheduledHours: req.ScheduledHours,
		HourlyRate:     req.HourlyRate,
		Notes:          req.Notes,
		CreatedAt:      time.Now().UTC(),
	}

	query := `
		INSERT INTO staff_schedules (
			id, staff_id, staff_name, position, service_date, shift_start,
			shift_end, scheduled_hours, hourly_rate, notes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(
		query,
		schedule.ID, schedule.StaffID, schedule.StaffName, schedule.Position,
		schedule.ServiceDate, schedule.ShiftStart, schedule.ShiftEnd,
		schedule.ScheduledHours, schedule.HourlyRate, schedule.Notes, schedule.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	return schedule, nil
}

// GetAll retrieves schedules, optionally filtered by service date
func (r *ScheduleRepository) GetAll(serviceDate string) ([]models.StaffSchedule, error) {
	if serviceDate != "" {
		return r.GetByDate(serviceDate)
	}

	query := `
		SELECT id, staff_id, staff_name, position, service_date, shift_start,
		       shift_end, scheduled_hours, hourly_rate, notes, created_at
		FROM staff_schedules
		ORDER BY service_date, shift_start
	`

	schedules := []models.StaffSchedule{}
	if err := r.db.Select(&schedules, query); err != nil {
		return nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}

	return schedules, nil
}

// GetByDate retrieves all schedules for a service date
func (r *ScheduleRepository) GetByDate(serviceDate string) ([]models.StaffSchedule, error) {
	query := `
		SELECT id, staff_id, staff_name, position, service_date, shift_start,
		       shift_end, scheduled_hours, hourly_rate, notes, created_at
		FROM staff_schedules
		WHERE service_date = $1
		ORDER BY shift_start
	`

	schedules := []models.StaffSchedule{}
	if err := r.db.Select(&schedules, query, serviceDate); err != nil {
		return nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}

	return schedules, nil
}

// GetByID retrieves a schedule by ID
func (r *ScheduleRepository) GetByID(id string) (*models.StaffSchedule, error) {
	query := `
		SELECT id, staff_id, staff_name, position, service_date, shift_start,
		       shift_end, scheduled_hours, hourly_rate, notes, created_at
		FROM staff_schedules
		WHERE id = $1
	`

	var schedule models.StaffSchedule
	if err := r.db.Get(&schedule, query, id); err != nil {
		return nil, err
	}

	return &schedule, nil
}

// Update applies a partial update and returns the updated schedule
func (r *ScheduleRepository) Update(id string, req *models.UpdateScheduleRequest) (*models.StaffSchedule, error) {
	query := `
		UPDATE staff_schedules
		SET staff_id = COALESCE($2::text, staff_id),
		    staff_name = COALESCE($3::text, staff_name),
		    position = COALESCE($4::text, position),
		    service_date = COALESCE($5::text, service_date),
		    shift_start = COALESCE($6::text, shift_start),
		    shift_end = COALESCE($7::text, shift_end),
		    scheduled_hours = COALESCE($8::numeric, scheduled_hours),
		    hourly_rate = COALESCE($9::numeric, hourly_rate),
		    notes = COALESCE($10::text, notes)
		WHERE id = $1
	`

	result, err := r.db.Exec(
		query,
		id, req.StaffID, req.StaffName, req.Position, req.ServiceDate,
		req.ShiftStart, req.ShiftEnd, req.ScheduledHours, req.HourlyRate, req.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, sql.ErrNoRows
	}

	return r.GetByID(id)
}

// Delete removes a schedule by ID
func (r *ScheduleRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM staff_schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
