package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/tableside/restaurant-ops-backend/internal/models"
)

// GuestRepository handles database operations for the guests table
type GuestRepository struct {
	db DB
}

// NewGuestRepository creates a new GuestRepository
func NewGuestRepository(db DB) *GuestRepository {
	return &GuestRepository{db: db}
}

// Create inserts a new guest
func (r *GuestRepository) Create(req *models.CreateGuestRequest) (*models.Guest, error) {
	guest := &models.Guest{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		TotalVisits: req.TotalVisits,
		TotalSpend:  req.TotalSpend,
		Preferences: req.Preferences,
		VIPStatus:   req.VIPStatus,
		LastVisit:   req.LastVisit,
		Notes:       req.Notes,
		CreatedAt:   time.Now().UTC(),
	}

	query := `
		INSERT INTO guests (
			id, name, phone, email, total_visits, total_spend,
			preferences, vip_status, last_visit, notes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(
		query,
		guest.ID, guest.Name, guest.Phone, guest.Email, guest.TotalVisits,
		guest.TotalSpend, guest.Preferences, guest.VIPStatus, guest.LastVisit,
		guest.Notes, guest.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}

	return guest, nil
}

// GetAll retrieves all guests
func (r *GuestRepository) GetAll() ([]models.Guest, error) {
	query := `
		SELECT id, name, phone, email, total_visits, total_spend,
		       preferences, vip_status, last_visit, notes, created_at
		FROM guests
		ORDER BY created_at
	`

	guests := []models.Guest{}
	if err := r.db.Select(&guests, query); err != nil {
		return nil, fmt.Errorf("failed to fetch guests: %w", err)
	}

	return guests, nil
}

// GetByID retrieves a guest by ID
func (r *GuestRepository) GetByID(id string) (*models.Guest, error) {
	query := `
		SELECT id, name, phone, email, total_visits, total_spend,
		       preferences, vip_status, last_visit, notes, created_at
		FROM guests
		WHERE id = $1
	`

	var guest models.Guest
	if err := r.db.Get(&guest, query, id); err != nil {
		return nil, err
	}

	return &guest, nil
}

// GetByIDs retrieves the guests whose IDs appear in ids.
// Callers must not pass an empty set.
func (r *GuestRepository) GetByIDs(ids []string) ([]models.Guest, error) {
	query := `
		SELECT id, name, phone, email, total_visits, total_spend,
		       preferences, vip_status, last_visit, notes, created_at
		FROM guests
		WHERE id = ANY($1)
	`

	guests := []models.Guest{}
	if err := r.db.Select(&guests, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("failed to fetch guests by ids: %w", err)
	}

	return guests, nil
}

// Update applies a partial update and returns the updated guest
func (r *GuestRepository) Update(id string, req *models.UpdateGuestRequest) (*models.Guest, error) {
	query := `
		UPDATE guests
		SET name = COALESCE($2::text, name),
		    phone = COALESCE($3::text, phone),
		    email = COALESCE($4::text, email),
		    total_visits = COALESCE($5::int, total_visits),
		    total_spend = COALESCE($6::numeric, total_spend),
		    preferences = COALESCE($7::text, preferences),
		    vip_status = COALESCE($8::boolean, vip_status),
		    last_visit = COALESCE($9::text, last_visit),
		    notes = COALESCE($10::text, notes)
		WHERE id = $1
	`

	result, err := r.db.Exec(
		query,
		id, req.Name, req.Phone, req.Email, req.TotalVisits, req.TotalSpend,
		req.Preferences, req.VIPStatus, req.LastVisit, req.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update guest: %w", err)
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

// Delete removes a guest by ID
func (r *GuestRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM guests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete guest: %w", err)
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
