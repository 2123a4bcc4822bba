package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nodex-club.backend/internal/domain/entities"
	"nodex-club.backend/internal/domain/repositories"
	"nodex-club.backend/internal/interfaces/http/response"
)

// PublicHandler serves the unauthenticated public-site endpoints
type PublicHandler struct {
	legacyRepo repositories.LegacyMemberRepository
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(legacyRepo repositories.LegacyMemberRepository) *PublicHandler {
	return &PublicHandler{legacyRepo: legacyRepo}
}

// TeamRoster returns the public team page roster grouped by category,
// each group in pos order.
// GET /api/team
func (h *PublicHandler) TeamRoster(c *gin.Context) {
	profiles, err := h.legacyRepo.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	groups := map[entities.LegacyCategory][]*entities.LegacyMember{
		entities.LegacyCategoryFounding: {},
		entities.LegacyCategoryCore:     {},
		entities.LegacyCategoryDirec:    {},
	}
	for _, p := range profiles {
		groups[p.Category] = append(groups[p.Category], p)
	}

	response.Success(c, http.StatusOK, gin.H{
		"founding": groups[entities.LegacyCategoryFounding],
		"core":     groups[entities.LegacyCategoryCore],
		"bos":      groups[entities.LegacyCategoryDirec],
	})
}
