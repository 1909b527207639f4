package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"podshop/internal/domain"
)

type handlers struct {
	logger *zap.Logger
	deps   Deps
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondServiceError maps collaborator failures: unknown entities are
// 404, anything else means data is unavailable and the client must not
// proceed.
func (h *handlers) respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		respondError(c, http.StatusNotFound, "not found")
		return
	}
	if errors.Is(err, domain.ErrDataUnavailable) {
		h.logger.Warn("data unavailable", zap.String("path", c.Request.URL.Path), zap.Error(err))
		respondError(c, http.StatusServiceUnavailable, "data unavailable")
		return
	}
	h.logger.Error("handler error", zap.String("path", c.Request.URL.Path), zap.Error(err))
	respondError(c, http.StatusServiceUnavailable, "data unavailable")
}
