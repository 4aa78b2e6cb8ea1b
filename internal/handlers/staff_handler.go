package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tableside/restaurant-ops-backend/internal/database"
	"github.com/tableside/restaurant-ops-backend/internal/models"
)

// StaffHandler serves the staff roster CRUD endpoints
type StaffHandler struct {
	staffRepo *database.StaffRepository
}

// NewStaffHandler creates a new StaffHandler
func NewStaffHandler(staffRepo *database.StaffRepository) *StaffHandler {
	return &StaffHandler{staffRepo: staffRepo}
}

// CreateStaff creates a new staff member
// POST /api/staff
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req models.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	staff, err := h.staffRepo.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff member"})
		return
	}

	c.JSON(http.StatusOK, staff)
}

// GetStaff retrieves all staff members
// GET /api/staff
func (h *StaffHandler) GetStaff(c *gin.Context) {
	staff, err := h.staffRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch staff"})
		return
	}

	c.JSON(http.StatusOK, staff)
}

// GetStaffMember retrieves a staff member by ID
// GET /api/staff/:id
func (h *StaffHandler) GetStaffMember(c *gin.Context) {
	staff, err := h.staffRepo.GetByID(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch staff member"})
		return
	}

	c.JSON(http.StatusOK, staff)
}

// UpdateStaff partially updates a staff member
// PUT /api/staff/:id
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	var req models.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	staff, err := h.staffRepo.Update(c.Param("id"), &req)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update staff member"})
		return
	}

	c.JSON(http.StatusOK, staff)
}

// DeleteStaff deletes a staff member by ID
// DELETE /api/staff/:id
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	if err := h.staffRepo.Delete(c.Param("id")); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete staff member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully"})
}
