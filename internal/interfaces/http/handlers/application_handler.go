package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nodex-club.backend/internal/domain/entities"
	domainerrors "nodex-club.backend/internal/domain/errors"
	"nodex-club.backend/internal/interfaces/http/middleware"
	"nodex-club.backend/internal/interfaces/http/response"
	"nodex-club.backend/internal/usecases"
)

// ApplicationHandler handles recruiter review of join applications
type ApplicationHandler struct {
	applications *usecases.ApplicationUsecase
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applications *usecases.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// ListApplications returns applications with derived status.
// GET /api/dashboard/applications?status=pending|approved|rejected|all
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	status := c.DefaultQuery("status", "all")
	switch status {
	case "all", "pending", "approved", "rejected":
	default:
		response.Error(c, domainerrors.BadRequest("status must be pending, approved, rejected or all"))
		return
	}

	apps, err := h.applications.List(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"applications": apps})
}

// MarkApplication records an accept/reject decision.
// POST /api/dashboard/applications/:id/mark
func (h *ApplicationHandler) MarkApplication(c *gin.Context) {
	var input entities.MarkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	reviewer := "unknown"
	if session, ok := middleware.GetSession(c); ok {
		reviewer = session.Label
	}

	mark, err := h.applications.Mark(
		c.Request.Context(),
		c.Param("id"),
		entities.ApplicationStatus(input.Status),
		input.Remarks,
		reviewer,
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Application marked",
		"mark":    mark,
	})
}

// RollbackApplication reverts a previous decision.
// POST /api/dashboard/applications/:id/rollback
func (h *ApplicationHandler) RollbackApplication(c *gin.Context) {
	var input entities.RollbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	reviewer := "unknown"
	if session, ok := middleware.GetSession(c); ok {
		reviewer = session.Label
	}

	if err := h.applications.Rollback(c.Request.Context(), c.Param("id"), input.Reason, reviewer); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Application mark rolled back"})
}
