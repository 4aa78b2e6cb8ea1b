package database

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tableside/restaurant-ops-backend/internal/models"
)

func reservationColumns() []string {
	return []string{
		"id", "guest_id", "guest_name", "service_date", "time",
		"party_size", "notes", "status", "created_at",
	}
}

func TestCreateReservation(t *testing.T) {
	db, mock, closeDB := newMockDB(t)
	defer closeDB()

	repo := NewReservationRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO reservations`).
			WithArgs(
				sqlmock.AnyArg(), "guest-1", "Vera", "2025-01-10", "19:00",
				4, nil, "confirmed", sqlmock.AnyArg(),
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		reservation, err := repo.Create(&models.CreateReservationRequest{
			GuestID:     "guest-1",
			GuestName:   "Vera",
			ServiceDate: "2025-01-10",
			Time:        "19:00",
			PartySize:   4,
			Status:      models.ReservationStatusConfirmed,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, reservation.ID)
		assert.Equal(t, "guest-1", reservation.GuestID)
		assert.Equal(t, models.ReservationStatusConfirmed, reservation.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Defaults Status To Confirmed", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO reservations`).
			WithArgs(
				sqlmock.AnyArg(), "guest-1", "Vera", "2025-01-10", "19:00",
				4, nil, "confirmed", sqlmock.AnyArg(),
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		reservation, err := repo.Create(&models.CreateReservationRequest{
			GuestID:     "guest-1",
			GuestName:   "Vera",
			ServiceDate: "2025-01-10",
			Time:        "19:00",
			PartySize:   4,
		})
		require.NoError(t, err)
		assert.Equal(t, models.ReservationStatusConfirmed, reservation.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO reservations`).
			WillReturnError(fmt.Errorf("database error"))

		reservation, err := repo.Create(&models.CreateReservationRequest{
			GuestID:     "guest-1",
			GuestName:   "Vera",
			ServiceDate: "2025-01-10",
			Time:        "19:00",
			PartySize:   4,
		})
		assert.Error(t, err)
		assert.Nil(t, reservation)
		assert.Contains(t, err.Error(), "failed to create reservation")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetReservations(t *testing.T) {
	db, mock, closeDB := newMockDB(t)
	defer closeDB()

	repo := NewReservationRepository(db)

	t.Run("All", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM reservations ORDER BY service_date, time`).
			WillReturnRows(sqlmock.NewRows(reservationColumns()).
				AddRow("r1", "g1", "Vera", "2025-01-10", "19:00", 4, nil, "confirmed", now).
				AddRow("r2", "g2", "Sam", "2025-01-11", "20:00", 2, nil, "cancelled", now))

		reservations, err := repo.GetAll("")
		require.NoError(t, err)
		assert.Len(t, reservations, 2)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Filtered By Date", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM reservations WHERE service_date`).
			WithArgs("2025-01-10").
			WillReturnRows(sqlmock.NewRows(reservationColumns()).
				AddRow("r1", "g1", "Vera", "2025-01-10", "19:00", 4, nil, "confirmed", now))

		reservations, err := repo.GetAll("2025-01-10")
		require.NoError(t, err)
		require.Len(t, reservations, 1)
		assert.Equal(t, "2025-01-10", reservations[0].ServiceDate)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty Result Is Not An Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM reservations WHERE service_date`).
			WithArgs("2025-06-01").
			WillReturnRows(sqlmock.NewRows(reservationColumns()))

		reservations, err := repo.GetAll("2025-06-01")
		require.NoError(t, err)
		assert.Empty(t, reservations)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetReservationsByDateAndStatus(t *testing.T) {
	db, mock, closeDB := newMockDB(t)
	defer closeDB()

	repo := NewReservationRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		notes := "anniversary"
		mock.ExpectQuery(`SELECT (.+) FROM reservations WHERE service_date = \$1 AND status = \$2`).
			WithArgs("2025-01-10", "confirmed").
			WillReturnRows(sqlmock.NewRows(reservationColumns()).
				AddRow("r1", "g1", "Vera", "2025-01-10", "19:00", 4, notes, "confirmed", now))

		reservations, err := repo.GetByDateAndStatus("2025-01-10", models.ReservationStatusConfirmed)
		require.NoError(t, err)
		require.Len(t, reservations, 1)
		assert.Equal(t, "confirmed", reservations[0].Status)
		require.NotNil(t, reservations[0].Notes)
		assert.Equal(t, "anniversary", *reservations[0].Notes)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM reservations WHERE service_date = \$1 AND status = \$2`).
			WithArgs("2025-01-10", "confirmed").
			WillReturnError(fmt.Errorf("database error"))

		reservations, err := repo.GetByDateAndStatus("2025-01-10", models.ReservationStatusConfirmed)
		assert.Error(t, err)
		assert.Nil(t, reservations)
		assert.Contains(t, err.Error(), "failed to fetch reservations")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateReservation(t *testing.T) {
	db, mock, closeDB := newMockDB(t)
	defer closeDB()

	repo := NewReservationRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		status := models.ReservationStatusCancelled

		mock.ExpectExec(`UPDATE reservations`).
			WithArgs("r1", nil, nil, nil, nil, nil, nil, status).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT (.+) FROM reservations WHERE id`).
			WithArgs("r1").
			WillReturnRows(sqlmock.NewRows(reservationColumns()).
				AddRow("r1", "g1", "Vera", "2025-01-10", "19:00", 4, nil, status, now))

		reservation, err := repo.Update("r1", &models.UpdateReservationRequest{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, status, reservation.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		status := models.ReservationStatusCancelled

		mock.ExpectExec(`UPDATE reservations`).
			WithArgs("missing", nil, nil, nil, nil, nil, nil, status).
			WillReturnResult(sqlmock.NewResult(0, 0))

		reservation, err := repo.Update("missing", &models.UpdateReservationRequest{Status: &status})
		assert.Nil(t, reservation)
		assert.ErrorIs(t, err, sql.ErrNoRows)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteReservation(t *testing.T) {
	db, mock, closeDB := newMockDB(t)
	defer closeDB()

	repo := NewReservationRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM reservations`).
			WithArgs("r1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete("r1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM reservations`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete("missing"), sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
