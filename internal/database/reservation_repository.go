package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tableside/restaurant-ops-backend/internal/models"
)

// ReservationRepository handles database operations for the reservations table
type ReservationRepository struct {
	db DB
}

// NewReservationRepository creates a new ReservationRepository
func NewReservationRepository(db DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create inserts a new reservation
func (r *ReservationRepository) Create(req *models.CreateReservationRequest) (*models.Reservation, error) {
	status := req.Status
	if status == "" {
		status = models.ReservationStatusConfirmed
	}

	reservation := &models.Reservation{
		ID:          uuid.New().String(),
		GuestID:     req.GuestID,
		GuestName:   req.GuestName,
		ServiceDate: req.ServiceDate,
		Time:        req.Time,
		PartySize:   req.PartySize,
		Notes:       req.Notes,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}

	query := `
		INSERT INTO reservations (
			id, guest_id, guest_name, service_date, time,
			party_size, notes, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(
		query,
		reservation.ID, reservation.GuestID, reservation.GuestName,
		reservation.ServiceDate, reservation.Time, reservation.PartySize,
		reservation.Notes, reservation.Status, reservation.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	return reservation, nil
}

// GetAll retrieves reservations, optionally filtered by service date
func (r *ReservationRepository) GetAll(serviceDate string) ([]models.Reservation, error) {
	reservations := []models.Reservation{}

	if serviceDate == "" {
		query := `
			SELECT id, guest_id, guest_name, service_date, time,
			       party_size, notes, status, created_at
			FROM reservations
			ORDER BY service_date, time
		`
		if err := r.db.Select(&reservations, query); err != nil {
			return nil, fmt.Errorf("failed to fetch reservations: %w", err)
		}
		return reservations, nil
	}

	query := `
		SELECT id, guest_id, guest_name, service_date, time,
		       party_size, notes, status, created_at
		FROM reservations
		WHERE service_date = $1
		ORDER BY time
	`
	if err := r.db.Select(&reservations, query, serviceDate); err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}

	return reservations, nil
}

// GetByDateAndStatus retrieves reservations for a service date with the given status
func (r *ReservationRepository) GetByDateAndStatus(serviceDate, status string) ([]models.Reservation, error) {
	query := `
		SELECT id, guest_id, guest_name, service_date, time,
		       party_size, notes, status, created_at
		FROM reservations
		WHERE service_date = $1 AND status = $2
		ORDER BY created_at
	`

	reservations := []models.Reservation{}
	if err := r.db.Select(&reservations, query, serviceDate, status); err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}

	return reservations, nil
}

// GetByID retrieves a reservation by ID
func (r *ReservationRepository) GetByID(id string) (*models.Reservation, error) {
	query := `
		SELECT id, guest_id, guest_name, service_date, time,
		       party_size, notes, status, created_at
		FROM reservations
		WHERE id = $1
	`

	var reservation models.Reservation
	if err := r.db.Get(&reservation, query, id); err != nil {
		return nil, err
	}

	return &reservation, nil
}

// Update applies a partial update and returns the updated reservation
func (r *ReservationRepository) Update(id string, req *models.UpdateReservationRequest) (*models.Reservation, error) {
	query := `
		UPDATE reservations
		SET guest_id = COALESCE($2::text, guest_id),
		    guest_name = COALESCE($3::text, guest_name),
		    service_date = COALESCE($4::text, service_date),
		    time = COALESCE($5::text, time),
		    party_size = COALESCE($6::int, party_size),
		    notes = COALESCE($7::text, notes),
		    status = COALESCE($8::text, status)
		WHERE id = $1
	`

	result, err := r.db.Exec(
		query,
		id, req.GuestID, req.GuestName, req.ServiceDate, req.Time,
		req.PartySize, req.Notes, req.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
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

// Delete removes a reservation by ID
func (r *ReservationRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
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
