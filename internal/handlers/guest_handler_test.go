package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tableside/restaurant-ops-backend/internal/database"
	"github.com/tableside/restaurant-ops-backend/internal/models"
)

// setupTestDB creates a sqlmock-backed database for handler tests
func setupTestDB(t *testing.T) (database.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return &database.PostgresDB{DB: sqlxDB}, mock, func() { sqlxDB.Close() }
}

func setupGuestRouter(db database.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewGuestHandler(database.NewGuestRepository(db))

	router := gin.New()
	guests := router.Group("/api/guests")
	{
		guests.POST("", handler.CreateGuest)
		guests.GET("", handler.GetGuests)
		guests.GET("/:id", handler.GetGuest)
		guests.PUT("/:id", handler.UpdateGuest)
		guests.DELETE("/:id", handler.DeleteGuest)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body == "" {
		buf = bytes.NewBuffer(nil)
	} else {
		buf = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateGuestHandler(t *testing.T) {
	db, mock, closeDB := setupTestDB(t)
	defer closeDB()

	router := setupGuestRouter(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO guests`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		w := doJSON(t, router, http.MethodPost, "/api/guests", `{"name": "Vera", "total_visits": 8, "total_spend": 2400.50, "vip_status": true}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var guest models.Guest
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &guest))
		assert.NotEmpty(t, guest.ID)
		assert.Equal(t, "Vera", guest.Name)
		assert.True(t, guest.VIPStatus)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Name", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/guests", `{"total_visits": 8}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Negative Spend", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/guests", `{"name": "Vera", "total_spend": -5}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "total_spend cannot be negative")
	})
}

func TestGetGuestHandler(t *testing.T) {
	db, mock, closeDB := setupTestDB(t)
	defer closeDB()

	router := setupGuestRouter(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM guests WHERE id`).
			WithArgs("guest-1").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "name", "phone", "email", "total_visits", "total_spend",
				"preferences", "vip_status", "last_visit", "notes", "created_at",
			}).AddRow("guest-1", "Vera", nil, nil, 8, 2400.50, nil, true, nil, nil, now))

		w := doJSON(t, router, http.MethodGet, "/api/guests/guest-1", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var guest models.Guest
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &guest))
		assert.Equal(t, "guest-1", guest.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM guests WHERE id`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		w := doJSON(t, router, http.MethodGet, "/api/guests/missing", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Guest not found")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateGuestHandler(t *testing.T) {
	db, mock, closeDB := setupTestDB(t)
	defer closeDB()

	router := setupGuestRouter(db)

	t.Run("Empty Body Rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/guests/guest-1", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "No fields to update")
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE guests`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		w := doJSON(t, router, http.MethodPut, "/api/guests/missing", `{"name": "Renamed"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success", func(t *testing.T) {
		now := time.Now()

		mock.ExpectExec(`UPDATE guests`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT (.+) FROM guests WHERE id`).
			WithArgs("guest-1").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "name", "phone", "email", "total_visits", "total_spend",
				"preferences", "vip_status", "last_visit", "notes", "created_at",
			}).AddRow("guest-1", "Renamed", nil, nil, 8, 2400.50, nil, true, nil, nil, now))

		w := doJSON(t, router, http.MethodPut, "/api/guests/guest-1", `{"name": "Renamed"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var guest models.Guest
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &guest))
		assert.Equal(t, "Renamed", guest.Name)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteGuestHandler(t *testing.T) {
	db, mock, closeDB := setupTestDB(t)
	defer closeDB()

	router := setupGuestRouter(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM guests`).
			WithArgs("guest-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		w := doJSON(t, router, http.MethodDelete, "/api/guests/guest-1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Guest deleted successfully")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM guests`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		w := doJSON(t, router, http.MethodDelete, "/api/guests/missing", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
