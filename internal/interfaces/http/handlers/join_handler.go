package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nodex-club.backend/internal/domain/entities"
	domainerrors "nodex-club.backend/internal/domain/errors"
	"nodex-club.backend/internal/interfaces/http/response"
	"nodex-club.backend/internal/usecases"
)

// JoinHandler handles public join-form submissions
type JoinHandler struct {
	join *usecases.JoinUsecase
}

// NewJoinHandler creates a new join handler
func NewJoinHandler(join *usecases.JoinUsecase) *JoinHandler {
	return &JoinHandler{join: join}
}

// Submit accepts a join application from the public form.
// POST /api/join
func (h *JoinHandler) Submit(c *gin.Context) {
	var input entities.JoinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.join.Submit(c.Request.Context(), &input, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.Blocked {
		c.JSON(http.StatusSeeOther, gin.H{"redirect": result.RedirectURL})
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":     "Application submitted",
		"application": result.Application,
	})
}
