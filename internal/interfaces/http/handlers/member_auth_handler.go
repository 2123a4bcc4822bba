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

// memberCookieMaxAge is the member-session cookie lifetime in seconds (24h).
const memberCookieMaxAge = 24 * 60 * 60

// MemberAuthHandler handles member self-service login
type MemberAuthHandler struct {
	memberAuth    *usecases.MemberAuthUsecase
	secureCookies bool
}

// NewMemberAuthHandler creates a new member auth handler
func NewMemberAuthHandler(memberAuth *usecases.MemberAuthUsecase, secureCookies bool) *MemberAuthHandler {
	return &MemberAuthHandler{memberAuth: memberAuth, secureCookies: secureCookies}
}

// Login verifies a student ID plus access key and sets the member-session cookie.
// POST /api/member-auth/login
func (h *MemberAuthHandler) Login(c *gin.Context) {
	var input entities.MemberLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	member, token, err := h.memberAuth.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(middleware.MemberSessionCookie, token, memberCookieMaxAge, "/", "", h.secureCookies, true)
	response.Success(c, http.StatusOK, gin.H{
		"message": "Logged in",
		"member":  member,
	})
}

// Logout clears the member-session cookie.
// POST /api/member-auth/logout
func (h *MemberAuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.MemberSessionCookie, "", -1, "/", "", h.secureCookies, true)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}
