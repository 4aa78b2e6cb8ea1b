package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tableside/restaurant-ops-backend/internal/database"
	"github.com/tableside/restaurant-ops-backend/internal/models"
)

// ReservationHandler serves the reservation CRUD endpoints
type ReservationHandler struct {
	reservationRepo *database.ReservationRepository
}

// NewReservationHandler creates a new ReservationHandler
func NewReservationHandler(reservationRepo *database.ReservationRepository) *ReservationHandler {
	return &ReservationHandler{reservationRepo: reservationRepo}
}

// CreateReservation creates a new reservation
// POST /api/reservations
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req models.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := h.reservationRepo.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reservation"})
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// GetReservations retrieves reservations, optionally filtered by service_date
// GET /api/reservations?service_date=YYYY-MM-DD
func (h *ReservationHandler) GetReservations(c *gin.Context) {
	reservations, err := h.reservationRepo.GetAll(c.Query("service_date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reservations"})
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// GetReservation retrieves a reservation by ID
// GET /api/reservations/:id
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	reservation, err := h.reservationRepo.GetByID(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reservation"})
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// UpdateReservation partially updates a reservation
// PUT /api/reservations/:id
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	var req models.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := h.reservationRepo.Update(c.Param("id"), &req)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reservation"})
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// DeleteReservation deletes a reservation by ID
// DELETE /api/reservations/:id
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	if err := h.reservationRepo.Delete(c.Param("id")); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reservation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted successfully"})
}
