package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"nodex-club.backend/internal/domain/entities"
	domainerrors "nodex-club.backend/internal/domain/errors"
	"nodex-club.backend/internal/usecases"
)

const (
	// MemberSessionCookie is the member self-service session cookie
	MemberSessionCookie = "member-session"
	// MemberSessionKey is the gin context key holding the MemberSession
	MemberSessionKey = "member_session"
)

// MemberSessionMiddleware validates the member-session cookie and stores the
// decoded session in the gin context.
func MemberSessionMiddleware(memberAuth *usecases.MemberAuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(MemberSessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}

		session, err := memberAuth.Validate(c.Request.Context(), token)
		if err != nil {
			msg := "invalid session"
			if errors.Is(err, domainerrors.ErrSessionExpired) {
				msg = "session expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Set(MemberSessionKey, session)
		c.Next()
	}
}

// GetMemberSession gets the member session from the gin context
func GetMemberSession(c *gin.Context) (*entities.MemberSession, bool) {
	v, exists := c.Get(MemberSessionKey)
	if !exists {
		return nil, false
	}
	session, ok := v.(*entities.MemberSession)
	return session, ok
}
