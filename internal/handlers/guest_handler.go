package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tableside/restaurant-ops-backend/internal/database"
	"github.com/tableside/restaurant-ops-backend/internal/models"
)

// GuestHandler serves the guest CRUD endpoints
type GuestHandler struct {
	guestRepo *database.GuestRepository
}

// NewGuestHandler creates a new GuestHandler
func NewGuestHandler(guestRepo *database.GuestRepository) *GuestHandler {
	return &GuestHandler{guestRepo: guestRepo}
}

// CreateGuest creates a new guest
// POST /api/guests
func (h *GuestHandler) CreateGuest(c *gin.Context) {
	var req models.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guest, err := h.guestRepo.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest"})
		return
	}

	c.JSON(http.StatusOK, guest)
}

// GetGuests retrieves all guests
// GET /api/guests
func (h *GuestHandler) GetGuests(c *gin.Context) {
	guests, err := h.guestRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guests"})
		return
	}

	c.JSON(http.StatusOK, guests)
}

// GetGuest retrieves a guest by ID
// GET /api/guests/:id
func (h *GuestHandler) GetGuest(c *gin.Context) {
	guest, err := h.guestRepo.GetByID(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest"})
		return
	}

	c.JSON(http.StatusOK, guest)
}

// UpdateGuest partially updates a guest
// PUT /api/guests/:id
func (h *GuestHandler) UpdateGuest(c *gin.Context) {
	var req models.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	guest, err := h.guestRepo.Update(c.Param("id"), &req)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guest"})
		return
	}

	c.JSON(http.StatusOK, guest)
}

// DeleteGuest deletes a guest by ID
// DELETE /api/guests/:id
func (h *GuestHandler) DeleteGuest(c *gin.Context) {
	if err := h.guestRepo.Delete(c.Param("id")); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete guest"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Guest deleted successfully"})
}
