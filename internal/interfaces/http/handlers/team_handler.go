package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/volatiletech/null/v8"
	"nodex-club.backend/internal/domain/entities"
	domainerrors "nodex-club.backend/internal/domain/errors"
	"nodex-club.backend/internal/domain/repositories"
	"nodex-club.backend/internal/interfaces/http/middleware"
	"nodex-club.backend/internal/interfaces/http/response"
	"nodex-club.backend/internal/usecases"
)

// TeamHandler handles dashboard team management
type TeamHandler struct {
	teamRepo   repositories.TeamRepository
	teamUC     *usecases.TeamUsecase
	membership *usecases.MembershipUsecase
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(
	teamRepo repositories.TeamRepository,
	teamUC *usecases.TeamUsecase,
	membership *usecases.MembershipUsecase,
) *TeamHandler {
	return &TeamHandler{
		teamRepo:   teamRepo,
		teamUC:     teamUC,
		membership: membership,
	}
}

// ListTeams returns all teams.
// GET /api/dashboard/teams
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamRepo.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"teams": teams})
}

// GetTeam returns one team with its members.
// GET /api/dashboard/teams/:id
func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, members, err := h.teamUC.GetTeamWithMembers(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"team":    team,
		"members": members,
	})
}

// CreateTeam creates a team.
// POST /api/dashboard/teams
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var input entities.CreateTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	createdBy := ""
	if session, ok := middleware.GetSession(c); ok {
		createdBy = session.Label
	}

	team := &entities.Team{
		Name:           strings.TrimSpace(input.Name),
		Description:    strings.TrimSpace(input.Description),
		Category:       strings.TrimSpace(input.Category),
		TeamLead:       strings.TrimSpace(input.TeamLead),
		RepositoryURL:  strings.TrimSpace(input.RepositoryURL),
		JiraURL:        strings.TrimSpace(input.JiraURL),
		Status:         entities.TeamStatusActive,
		ImageURL:       strings.TrimSpace(input.ImageURL),
		SkillsRequired: input.SkillsRequired,
		CreatedBy:      createdBy,
	}
	if input.MaxMembers > 0 {
		team.MaxMembers = null.IntFrom(input.MaxMembers)
	}

	if err := h.teamRepo.Create(c.Request.Context(), team); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Team created",
		"team":    team,
	})
}

// UpdateTeam updates a team.
// PUT /api/dashboard/teams/:id
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	existing, err := h.teamRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("team not found"))
			return
		}
		response.Error(c, err)
		return
	}

	var input entities.UpdateTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	existing.Name = strings.TrimSpace(input.Name)
	existing.Description = strings.TrimSpace(input.Description)
	existing.Category = strings.TrimSpace(input.Category)
	existing.TeamLead = strings.TrimSpace(input.TeamLead)
	existing.RepositoryURL = strings.TrimSpace(input.RepositoryURL)
	existing.JiraURL = strings.TrimSpace(input.JiraURL)
	existing.ImageURL = strings.TrimSpace(input.ImageURL)
	existing.SkillsRequired = input.SkillsRequired
	if input.Status != "" {
		existing.Status = entities.TeamStatus(input.Status)
	}
	if input.MaxMembers > 0 {
		existing.MaxMembers = null.IntFrom(input.MaxMembers)
	} else {
		existing.MaxMembers = null.Int{}
	}

	if err := h.teamRepo.Update(c.Request.Context(), existing); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Team updated",
		"team":    existing,
	})
}

// DeleteTeam strips the team from every member, then removes it.
// DELETE /api/dashboard/teams/:id
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	report, err := h.teamUC.DeleteTeam(c.Request.Context(), c.Param("id"))
	if err != nil {
		var appErr *domainerrors.AppError
		if report != nil && errors.As(err, &appErr) {
			// Partial failure: surface the report so the caller can retry.
			c.JSON(appErr.Status, gin.H{
				"error":  appErr.Message,
				"report": report,
			})
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "Team deleted",
		"report":  report,
	})
}

// AddTeamMember adds a member (canonical or legacy ref) to a team.
// POST /api/dashboard/teams/:id/members
func (h *TeamHandler) AddTeamMember(c *gin.Context) {
	var input struct {
		MemberID string `json:"memberId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	ref := entities.ParseMemberRef(input.MemberID)
	member, err := h.membership.AddMember(c.Request.Context(), c.Param("id"), ref)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Member added to team",
		"member":  member,
	})
}

// RemoveTeamMember removes a member from a team.
// DELETE /api/dashboard/teams/:id/members/:memberId
func (h *TeamHandler) RemoveTeamMember(c *gin.Context) {
	ref := entities.ParseMemberRef(c.Param("memberId"))
	member, err := h.membership.RemoveMember(c.Request.Context(), c.Param("id"), ref)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Member removed from team",
		"member":  member,
	})
}
