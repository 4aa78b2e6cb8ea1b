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

func scheduleColumns() []string {
	return []string{
		"id", "staff_id", "staff_name", "position", "service_date", "shift_start",
		"shift_end", "scheduled_hours", "hourly_rate", "notes", "created_at",
	}
}

func TestCreateSchedule(t *testing.T) {
	db, mock, closeDB := newMockDB(t)
	defer closeDB()

	repo := NewScheduleRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO staff_schedules`).
			WithArgs(
				sqlmock.AnyArg(), "staff-1", "Ana", "server", "2025-01-10",
				"16:00", "23:00", 7.0, 20.0, nil, sqlmock.AnyArg(),
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		schedule, err := repo.Create(&models.CreateScheduleRequest{
			StaffID:        "staff-1",
			StaffName:      "Ana",
			Position:       "server",
			ServiceDate:    "2025-01-10",
			ShiftStart:     "16:00",
			ShiftEnd:       "23:00",
			ScheduledHours: 7,
			HourlyRate:     20,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, schedule.ID)
		assert.Equal(t, "Ana", schedule.StaffName)
		assert.Equal(t, 7.0, schedule.ScheduledHours)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO staff_schedules`).
			WillReturnError(fmt.Errorf("database error"))

		schedule, err := repo.Create(&models.CreateScheduleRequest{
			StaffID:     "staff-1",
			StaffName:   "Ana",
			Position:    "server",
			ServiceDate: "2025-01-10",
			ShiftStart:  "16:00",
			ShiftEnd:    "23:00",
		})
		assert.Error(t, err)
		assert.Nil(t, schedule)
		assert.Contains(t, err.Error(), "failed to create schedule")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetSchedulesByDate(t *testing.T) {
	db, mock, closeDB := newMockDB(t)
	defer closeDB()

	repo := NewScheduleRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM staff_schedules WHERE service_date`).
			WithArgs("2025-01-10").
			WillReturnRows(sqlmock.NewRows(scheduleColumns()).
				AddRow("s1", "staff-1", "Ana", "server", "2025-01-10", "16:00", "23:00", 7.0, 20.0, nil, now).
				AddRow("s2", "staff-2", "Ben", "chef", "2025-01-10", "14:00", "22:00", 8.0, 30.0, nil, now))

		schedules, err := repo.GetByDate("2025-01-10")
		require.NoError(t, err)
		require.Len(t, schedules, 2)
		assert.Equal(t, "Ana", schedules[0].StaffName)
		assert.Equal(t, "Ben", schedules[1].StaffName)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty Result Is Not An Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM staff_schedules WHERE service_date`).
			WithArgs("2025-06-01").
			WillReturnRows(sqlmock.NewRows(scheduleColumns()))

		schedules, err := repo.GetByDate("2025-06-01")
		require.NoError(t, err)
		assert.Empty(t, schedules)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetAllSchedules(t *testing.T) {
	db, mock, closeDB := newMockDB(t)
	defer closeDB()

	repo := NewScheduleRepository(db)

	t.Run("Without Date Filter", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM staff_schedules ORDER BY service_date, shift_start`).
			WillReturnRows(sqlmock.NewRows(scheduleColumns()).
				AddRow("s1", "staff-1", "Ana", "server", "2025-01-10", "16:00", "23:00", 7.0, 20.0, nil, now))

		schedules, err := repo.GetAll("")
		require.NoError(t, err)
		assert.Len(t, schedules, 1)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("With Date Filter Delegates To GetByDate", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM staff_schedules WHERE service_date`).
			WithArgs("2025-01-10").
			WillReturnRows(sqlmock.NewRows(scheduleColumns()))

		schedules, err := repo.GetAll("2025-01-10")
		require.NoError(t, err)
		assert.Empty(t, schedules)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateSchedule(t *testing.T) {
	db, mock, closeDB := newMockDB(t)
	defer closeDB()

	repo := NewScheduleRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		hours := 9.0

		mock.ExpectExec(`UPDATE staff_schedules`).
			WithArgs("s1", nil, nil, nil, nil, nil, nil, hours, nil, nil).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT (.+) FROM staff_schedules WHERE id`).
			WithArgs("s1").
			WillReturnRows(sqlmock.NewRows(scheduleColumns()).
				AddRow("s1", "staff-1", "Ana", "server", "2025-01-10", "16:00", "23:00", hours, 20.0, nil, now))

		schedule, err := repo.Update("s1", &models.UpdateScheduleRequest{ScheduledHours: &hours})
		require.NoError(t, err)
		assert.Equal(t, hours, schedule.ScheduledHours)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		hours := 9.0

		mock.ExpectExec(`UPDATE staff_schedules`).
			WithArgs("missing", nil, nil, nil, nil, nil, nil, hours, nil, nil).
			WillReturnResult(sqlmock.NewResult(0, 0))

		schedule, err := repo.Update("missing", &models.UpdateScheduleRequest{ScheduledHours: &hours})
		assert.Nil(t, schedule)
		assert.ErrorIs(t, err, sql.ErrNoRows)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteSchedule(t *testing.T) {
	db, mock, closeDB := newMockDB(t)
	defer closeDB()

	repo := NewScheduleRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM staff_schedules`).
			WithArgs("s1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete("s1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM staff_schedules`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete("missing"), sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
