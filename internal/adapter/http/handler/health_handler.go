package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/emotion-classifier/internal/usecase"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	emotionUC usecase.EmotionUsecase
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(emotionUC usecase.EmotionUsecase) *HealthHandler {
	return &HealthHandler{emotionUC: emotionUC}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health. The process is live even without a
// credential; the missing credential only degrades the status.
func (h *HealthHandler) Health(c *gin.Context) {
	components := map[string]string{
		"variant": h.emotionUC.Variant().Name,
	}

	status := "healthy"
	if h.emotionUC.Configured() {
		components["completion_service"] = "configured"
	} else {
		components["completion_service"] = "not configured"
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if !h.emotionUC.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "completion service api key not set"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
