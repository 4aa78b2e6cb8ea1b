package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tableside/restaurant-ops-backend/internal/models"
	"github.com/tableside/restaurant-ops-backend/internal/services"
	"github.com/tableside/restaurant-ops-backend/pkg/validator"
)

// BriefingGenerator produces a briefing for one service date
type BriefingGenerator interface {
	GenerateBriefing(ctx context.Context, serviceDate string) (*models.BriefingResult, error)
}

// BriefingHandler serves the briefing generation endpoint
type BriefingHandler struct {
	briefingService BriefingGenerator
}

// NewBriefingHandler creates a new BriefingHandler
func NewBriefingHandler(briefingService BriefingGenerator) *BriefingHandler {
	return &BriefingHandler{briefingService: briefingService}
}

// GenerateBriefing generates the pre-shift briefing for a service date
// POST /api/generate-briefing
func (h *BriefingHandler) GenerateBriefing(c *gin.Context) {
	var req models.BriefingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validator.ValidateServiceDate(req.ServiceDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.briefingService.GenerateBriefing(c.Request.Context(), req.ServiceDate)
	if err != nil {
		var collectionErr *services.CollectionError
		if errors.As(err, &collectionErr) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to collect briefing data"})
			return
		}

		var generationErr *services.GenerationError
		if errors.As(err, &generationErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error generating briefing: " + generationErr.Err.Error()})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate briefing"})
		return
	}

	c.JSON(http.StatusOK, result)
}
