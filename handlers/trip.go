// File: handlers/trip.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ujwal-s-r/travel-agent-deployed/models"
	"github.com/ujwal-s-r/travel-agent-deployed/services/trip"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TripHandler exposes the trip planning service over HTTP.
type TripHandler struct {
	Planner trip.PlannerService
	Logger  *zap.Logger
}

func NewTripHandler(planner trip.PlannerService, logger *zap.Logger) *TripHandler {
	return &TripHandler{Planner: planner, Logger: logger}
}

// PlanTrip handles POST /plan-trip.
func (h *TripHandler) PlanTrip(c *gin.Context) {
	var req models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("PlanTrip: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query cannot be empty"})
		return
	}

	answer, err := h.Planner.PlanTrip(c.Request.Context(), req.Query)
	if err != nil {
		if errors.Is(err, trip.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Query cannot be empty"})
			return
		}
		h.Logger.Error("PlanTrip: planner failed", zap.String("query", req.Query), zap.Error(err))
		c.JSON(http.StatusOK, models.TripAnswer{
			Success:  false,
			Error:    err.Error(),
			Response: "I apologize, but I encountered an error processing your request.",
		})
		return
	}

	c.JSON(http.StatusOK, answer)
}
