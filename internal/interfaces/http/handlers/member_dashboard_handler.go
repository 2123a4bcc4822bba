package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "nodex-club.backend/internal/domain/errors"
	"nodex-club.backend/internal/domain/repositories"
	"nodex-club.backend/internal/interfaces/http/middleware"
	"nodex-club.backend/internal/interfaces/http/response"
	"nodex-club.backend/internal/usecases"
)

// MemberDashboardHandler serves the member self-service dashboard
type MemberDashboardHandler struct {
	memberRepo repositories.MemberRepository
	memberAuth *usecases.MemberAuthUsecase
}

// NewMemberDashboardHandler creates a new member dashboard handler
func NewMemberDashboardHandler(
	memberRepo repositories.MemberRepository,
	memberAuth *usecases.MemberAuthUsecase,
) *MemberDashboardHandler {
	return &MemberDashboardHandler{
		memberRepo: memberRepo,
		memberAuth: memberAuth,
	}
}

// Profile returns the logged-in member's own record.
// GET /api/member-dashboard/profile
func (h *MemberDashboardHandler) Profile(c *gin.Context) {
	session, ok := middleware.GetMemberSession(c)
	if !ok {
		response.Error(c, domainerrors.AuthRequired("authentication required"))
		return
	}

	member, err := h.memberRepo.GetByID(c.Request.Context(), session.MemberID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"member": member})
}

// Teams returns the teams the logged-in member belongs to.
// GET /api/member-dashboard/teams
func (h *MemberDashboardHandler) Teams(c *gin.Context) {
	session, ok := middleware.GetMemberSession(c)
	if !ok {
		response.Error(c, domainerrors.AuthRequired("authentication required"))
		return
	}

	teams, err := h.memberAuth.MemberTeams(c.Request.Context(), session.MemberID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"teams": teams})
}
