package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nodex-club.backend/internal/domain/entities"
	domainerrors "nodex-club.backend/internal/domain/errors"
	"nodex-club.backend/internal/usecases"
)

const (
	// AuthKeyCookie is the recruiter/admin session cookie
	AuthKeyCookie = "auth-key"
	// SessionKey is the gin context key holding the resolved Session
	SessionKey = "session"
)

// AuthMiddleware resolves the auth-key cookie into a Session exactly once
// per request and stores it in the gin context. Handlers never look at the
// cookie themselves.
func AuthMiddleware(authUsecase *usecases.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := c.Cookie(AuthKeyCookie)
		if err != nil || key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}

		session, err := authUsecase.Resolve(c.Request.Context(), key)
		if err != nil {
			if err == domainerrors.ErrAuthInvalid {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "invalid auth key",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "record store request failed",
			})
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// GetSession gets the resolved session from the gin context
func GetSession(c *gin.Context) (*entities.Session, bool) {
	v, exists := c.Get(SessionKey)
	if !exists {
		return nil, false
	}
	session, ok := v.(*entities.Session)
	return session, ok
}

// RequireTeamMgmt aborts with 403 unless the session carries the team_mgmt
// flag. Must run after AuthMiddleware.
func RequireTeamMgmt() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}
		if !session.TeamMgmt {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "team management permission required",
			})
			return
		}
		c.Next()
	}
}
