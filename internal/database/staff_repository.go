package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tableside/restaurant-ops-backend/internal/models"
)

// StaffRepository handles database operations for the staff table
type StaffRepository struct {
	db DB
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// Create inserts a new staff member
func (r *StaffRepository) Create(req *models.CreateStaffRequest) (*models.Staff, error) {
	staff := &models.Staff{
		ID:         uuid.New().String(),
		Name:       req.Name,
		Position:   req.Position,
		HourlyRate: req.HourlyRate,
		CreatedAt:  time.Now().UTC(),
	}

	query := `
		INSERT INTO staff (id, name, position, hourly_rate, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(query, staff.ID, staff.Name, staff.Position, staff.HourlyRate, staff.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}

	return staff, nil
}

// GetAll retrieves all staff members
func (r *StaffRepository) GetAll() ([]models.Staff, error) {
	query := `
		SELECT id, name, position, hourly_rate, created_at
		FROM staff
		ORDER BY created_at
	`

	staff := []models.Staff{}
	if err := r.db.Select(&staff, query); err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}

	return staff, nil
}

// GetByID retrieves a staff member by ID
func (r *StaffRepository) GetByID(id string) (*models.Staff, error) {
	query := `
		SELECT id, name, position, hourly_rate, created_at
		FROM staff
		WHERE id = $1
	`

	var staff models.Staff
	if err := r.db.Get(&staff, query, id); err != nil {
		return nil, err
	}

	return &staff, nil
}

// Update applies a partial update and returns the updated staff member
func (r *StaffRepository) Update(id string, req *models.UpdateStaffRequest) (*models.Staff, error) {
	query := `
		UPDATE staff
		SET name = COALESCE($2::text, name),
		    position = COALESCE($3::text, position),
		    hourly_rate = COALESCE($4::numeric, hourly_rate)
		WHERE id = $1
	`

	result, err := r.db.Exec(query, id, req.Name, req.Position, req.HourlyRate)
	if err != nil {
		return nil, fmt.Errorf("failed to update staff member: %w", err)
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

// Delete removes a staff member by ID
func (r *StaffRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
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
