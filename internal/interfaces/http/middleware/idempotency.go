package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"nodex-club.backend/pkg/redis"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	// SubmissionLock is how long a submission key is held once accepted
	SubmissionLock = 24 * time.Hour
)

var (
	redisSetNX = redis.SetNX
	redisDel   = redis.Del
)

// IdempotencyMiddleware guards the public join endpoint against duplicate
// submissions. The client sends an Idempotency-Key header; a repeat of the
// same key from the same IP is answered with 409 instead of creating a
// second application. Requests without the header pass through.
//
// The key is reserved atomically before the handler runs so two concurrent
// submissions cannot both get through, but it is released again when the
// handler rejects the request. A corrected retry after a validation error
// must not be answered with 409.
func IdempotencyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		storageKey := fmt.Sprintf("idempotency:%s:%s", c.ClientIP(), key)
		acquired, err := redisSetNX(c.Request.Context(), storageKey, "submitted", SubmissionLock)
		if err != nil {
			// Redis being down must not block public submissions.
			c.Next()
			return
		}
		if !acquired {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": "duplicate submission",
			})
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			// Best effort: on failure the key simply expires.
			redisDel(c.Request.Context(), storageKey)
		}
	}
}
