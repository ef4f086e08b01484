package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"burnout-check/internal/service"
)

// MoodHandler expone el diario de ánimo.
type MoodHandler struct {
	logger *zap.Logger
	svc    *service.MoodService
}

func NewMoodHandler(logger *zap.Logger, svc *service.MoodService) *MoodHandler {
	return &MoodHandler{logger: logger, svc: svc}
}

// List maneja GET /api/mood.
func (h *MoodHandler) List(c *gin.Context) {
	entries, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list moods failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read mood log"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Append maneja POST /api/mood. Un cuerpo vacío usa los valores por defecto.
func (h *MoodHandler) Append(c *gin.Context) {
	var req service.MoodInput
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("invalid mood request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if _, err := h.svc.Append(c.Request.Context(), req); err != nil {
		h.logger.Error("append mood failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save mood"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
