package upload

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aidnetlk/aidnet/internal/auth"
	"github.com/aidnetlk/aidnet/internal/middleware"
)

// Handler handles HTTP requests for upload endpoints.
type Handler struct {
	service *Service
	logger  *zap.SugaredLogger
}

// NewHandler creates a new upload handler instance.
func NewHandler(svc *Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Sign handles POST /uploads.
func (h *Handler) Sign(c *gin.Context) {
	var req SignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Sign(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrUnknownFolder) {
			writeError(c, "INVALID_REQUEST", "unknown upload folder", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("upload signing failed", "error", err)
		writeError(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func writeError(c *gin.Context, code, message string, statusCode int) {
	c.JSON(statusCode, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// RegisterRoutes registers upload module routes.
func RegisterRoutes(r *gin.Engine, tokens *auth.TokenManager, svc *Service, logger *zap.SugaredLogger) {
	h := NewHandler(svc, logger)
	r.POST("/uploads", middleware.RequireAuth(tokens), h.Sign)
}
