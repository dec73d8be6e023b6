package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/emotion-classifier/internal/usecase"
)

// EmotionHandler handles emotion classification HTTP requests
type EmotionHandler struct {
	emotionUC usecase.EmotionUsecase
}

// NewEmotionHandler creates a new emotion handler
func NewEmotionHandler(emotionUC usecase.EmotionUsecase) *EmotionHandler {
	return &EmotionHandler{emotionUC: emotionUC}
}

// Classify handles POST /api/v1/emotions/classify
func (h *EmotionHandler) Classify(c *gin.Context) {
	req, err := ReadClassificationRequest(c)
	if err != nil {
		_ = c.Error(err)
		errResp := MapBodyError(err)
		respondError(c, errResp.StatusCode, errResp.Message)
		return
	}

	result, err := h.emotionUC.Classify(c.Request.Context(), req)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, result)
}

// Labels handles GET /api/v1/emotions/labels
func (h *EmotionHandler) Labels(c *gin.Context) {
	respondSuccess(c, http.StatusOK, h.emotionUC.Variant())
}
