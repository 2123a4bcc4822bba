package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "nodex-club.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response as {"error": message} with the HTTP status
// derived from the domain error.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"error": appErr.Message})
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		status, message = http.StatusNotFound, "resource not found"
	case errors.Is(err, domainerrors.ErrConflict):
		status, message = http.StatusConflict, "resource conflict"
	case errors.Is(err, domainerrors.ErrInvalidInput):
		status, message = http.StatusBadRequest, "invalid input"
	case errors.Is(err, domainerrors.ErrAuthRequired):
		status, message = http.StatusUnauthorized, "authentication required"
	case errors.Is(err, domainerrors.ErrAuthInvalid):
		status, message = http.StatusUnauthorized, "authentication invalid"
	case errors.Is(err, domainerrors.ErrSessionExpired):
		status, message = http.StatusUnauthorized, "session expired"
	case errors.Is(err, domainerrors.ErrForbidden):
		status, message = http.StatusForbidden, "forbidden"
	case errors.Is(err, domainerrors.ErrUpstreamFailure):
		status, message = http.StatusInternalServerError, "record store request failed"
	}

	c.JSON(status, gin.H{"error": message})
}
