package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tableside/restaurant-ops-backend/internal/database"
	"github.com/tableside/restaurant-ops-backend/internal/models"
)

// ServiceConfigHandler serves the per-date service config endpoints
type ServiceConfigHandler struct {
	configRepo *database.ServiceConfigRepository
}

// NewServiceConfigHandler creates a new ServiceConfigHandler
func NewServiceConfigHandler(configRepo *database.ServiceConfigRepository) *ServiceConfigHandler {
	return &ServiceConfigHandler{configRepo: configRepo}
}

// CreateServiceConfig creates the service config for a date.
// At most one config may exist per service date.
// POST /api/service-config
func (h *ServiceConfigHandler) CreateServiceConfig(c *gin.Context) {
	var req models.CreateServiceConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.configRepo.GetByDate(req.ServiceDate); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Service config already exists for this date. Use PUT to update."})
		return
	} else if err != sql.ErrNoRows {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing service config"})
		return
	}

	cfg, err := h.configRepo.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service config"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// GetServiceConfig retrieves the service config for a date. A missing config
// is not an error; the response body is null.
// GET /api/service-config?service_date=YYYY-MM-DD
func (h *ServiceConfigHandler) GetServiceConfig(c *gin.Context) {
	serviceDate := c.Query("service_date")
	if serviceDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service_date query parameter is required"})
		return
	}

	cfg, err := h.configRepo.GetByDate(serviceDate)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch service config"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// UpdateServiceConfig partially updates the config for a date
// PUT /api/service-config/:service_date
func (h *ServiceConfigHandler) UpdateServiceConfig(c *gin.Context) {
	var req models.UpdateServiceConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	cfg, err := h.configRepo.UpdateByDate(c.Param("service_date"), &req)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service config not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service config"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}
