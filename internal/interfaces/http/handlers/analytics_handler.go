package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nodex-club.backend/internal/interfaces/http/response"
	"nodex-club.backend/internal/usecases"
)

// AnalyticsHandler serves the dashboard overview counts
type AnalyticsHandler struct {
	analytics *usecases.AnalyticsUsecase
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics *usecases.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Summary returns membership and team aggregates.
// GET /api/dashboard/analytics
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.analytics.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"analytics": summary})
}
