package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"nodex-club.backend/internal/domain/entities"
	domainerrors "nodex-club.backend/internal/domain/errors"
	"nodex-club.backend/internal/domain/repositories"
	"nodex-club.backend/internal/interfaces/http/response"
	"nodex-club.backend/internal/usecases"
	"nodex-club.backend/pkg/utils"
)

// ClubMemberHandler handles dashboard club-member management. Listings merge
// both people collections; mutations only ever touch club_members (legacy
// profiles must be migrated first).
type ClubMemberHandler struct {
	memberRepo repositories.MemberRepository
	membership *usecases.MembershipUsecase
}

// NewClubMemberHandler creates a new club member handler
func NewClubMemberHandler(
	memberRepo repositories.MemberRepository,
	membership *usecases.MembershipUsecase,
) *ClubMemberHandler {
	return &ClubMemberHandler{
		memberRepo: memberRepo,
		membership: membership,
	}
}

// ListMembers returns the merged people listing.
// GET /api/dashboard/club-members
func (h *ClubMemberHandler) ListMembers(c *gin.Context) {
	merged, err := h.membership.ListMerged(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	params := utils.GetPaginationParams(page, limit)

	response.Success(c, http.StatusOK, gin.H{
		"members":    utils.Slice(merged, params),
		"pagination": utils.CalculateMeta(int64(len(merged)), params.Page, params.Limit),
	})
}

// CreateMember creates a club member directly (bypassing the join flow).
// POST /api/dashboard/club-members
func (h *ClubMemberHandler) CreateMember(c *gin.Context) {
	var input entities.CreateMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	member := &entities.Member{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(input.Email),
		StudentID:    strings.TrimSpace(input.StudentID),
		Phone:        strings.TrimSpace(input.Phone),
		MemberType:   entities.MemberType(input.MemberType),
		Position:     strings.TrimSpace(input.Position),
		Department:   strings.TrimSpace(input.Department),
		Year:         strings.TrimSpace(input.Year),
		Teams:        []string{},
		Skills:       input.Skills,
		Bio:          input.Bio,
		LinkedInURL:  strings.TrimSpace(input.LinkedInURL),
		GithubURL:    strings.TrimSpace(input.GithubURL),
		PortfolioURL: strings.TrimSpace(input.PortfolioURL),
		Status:       entities.MemberStatusActive,
	}

	if err := h.memberRepo.Create(c.Request.Context(), member); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Member created",
		"member":  member,
	})
}

// UpdateMember updates a club member. Legacy refs are rejected: migrate
// first, then edit the canonical record.
// PUT /api/dashboard/club-members/:id
func (h *ClubMemberHandler) UpdateMember(c *gin.Context) {
	ref := entities.ParseMemberRef(c.Param("id"))
	if ref.IsLegacy() {
		response.Error(c, domainerrors.BadRequest("legacy members must be migrated before editing"))
		return
	}

	existing, err := h.memberRepo.GetByID(c.Request.Context(), ref.ID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("member not found"))
			return
		}
		response.Error(c, err)
		return
	}

	var input entities.UpdateMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	existing.Name = strings.TrimSpace(input.Name)
	existing.Email = strings.TrimSpace(input.Email)
	existing.StudentID = strings.TrimSpace(input.StudentID)
	existing.Phone = strings.TrimSpace(input.Phone)
	existing.MemberType = entities.MemberType(input.MemberType)
	existing.Position = strings.TrimSpace(input.Position)
	existing.Department = strings.TrimSpace(input.Department)
	existing.Year = strings.TrimSpace(input.Year)
	existing.Skills = input.Skills
	existing.Bio = input.Bio
	existing.LinkedInURL = strings.TrimSpace(input.LinkedInURL)
	existing.GithubURL = strings.TrimSpace(input.GithubURL)
	existing.PortfolioURL = strings.TrimSpace(input.PortfolioURL)
	if input.Status != "" {
		existing.Status = entities.MemberStatus(input.Status)
	}

	if err := h.memberRepo.Update(c.Request.Context(), existing); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Member updated",
		"member":  existing,
	})
}

// DeleteMember deletes a club member record.
// DELETE /api/dashboard/club-members/:id
func (h *ClubMemberHandler) DeleteMember(c *gin.Context) {
	ref := entities.ParseMemberRef(c.Param("id"))
	if ref.IsLegacy() {
		response.Error(c, domainerrors.BadRequest("legacy members cannot be deleted from the dashboard"))
		return
	}

	if err := h.memberRepo.Delete(c.Request.Context(), ref.ID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("member not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Member deleted"})
}

// MigrateLegacyMember materializes a club_members record for a legacy
// profile, an explicit operator action.
// POST /api/dashboard/club-members/migrate/:legacyId
func (h *ClubMemberHandler) MigrateLegacyMember(c *gin.Context) {
	member, err := h.membership.MigrateLegacyMember(c.Request.Context(), c.Param("legacyId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "Legacy member migrated",
		"member":  member,
	})
}
