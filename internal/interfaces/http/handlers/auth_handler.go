package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "nodex-club.backend/internal/domain/errors"
	"nodex-club.backend/internal/interfaces/http/middleware"
	"nodex-club.backend/internal/interfaces/http/response"
	"nodex-club.backend/internal/usecases"
)

// authCookieMaxAge is the recruiter cookie lifetime in seconds (7 days).
const authCookieMaxAge = 7 * 24 * 60 * 60

// AuthHandler handles recruiter/admin authentication
type AuthHandler struct {
	authUsecase   *usecases.AuthUsecase
	secureCookies bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase, secureCookies bool) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, secureCookies: secureCookies}
}

// Login validates an auth key and sets the auth-key cookie.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		AuthKey string `json:"authKey" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	session, err := h.authUsecase.Resolve(c.Request.Context(), input.AuthKey)
	if err != nil {
		if err == domainerrors.ErrAuthInvalid {
			response.Error(c, domainerrors.Unauthorized("invalid auth key"))
			return
		}
		response.Error(c, err)
		return
	}

	c.SetCookie(middleware.AuthKeyCookie, input.AuthKey, authCookieMaxAge, "/", "", h.secureCookies, true)
	response.Success(c, http.StatusOK, gin.H{
		"message": "Logged in",
		"session": session,
	})
}

// Logout clears the auth-key cookie and drops the cached session.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if key, err := c.Cookie(middleware.AuthKeyCookie); err == nil && key != "" {
		h.authUsecase.Invalidate(c.Request.Context(), key)
	}
	c.SetCookie(middleware.AuthKeyCookie, "", -1, "/", "", h.secureCookies, true)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the current session context.
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		response.Error(c, domainerrors.AuthRequired("authentication required"))
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": session})
}
