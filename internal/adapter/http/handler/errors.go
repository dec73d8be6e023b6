package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/emotion-classifier/internal/usecase"
)

// Error messages returned to callers
const (
	MessageAPIKeyNotSet         = "OpenAI API key not set in environment variables."
	MessageClassificationFailed = "emotion classification failed"
	MessageInternalError        = "internal server error"
	MessageBodyTooLarge         = "request body too large"
	MessageBodyUnreadable       = "request body could not be read"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP error responses.
// It is shared by the HTTP and Lambda adapters.
func MapUsecaseError(err error) ErrorResponse {
	switch {
	case errors.Is(err, usecase.ErrAPIKeyNotSet):
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Message:    MessageAPIKeyNotSet,
		}
	case errors.Is(err, usecase.ErrClassificationFailed):
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Message:    MessageClassificationFailed,
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Message:    MessageInternalError,
		}
	}
}

// HandleUsecaseError records err on the context and sends the mapped JSON error response.
func HandleUsecaseError(c *gin.Context, err error) {
	_ = c.Error(err)
	errResp := MapUsecaseError(err)
	respondError(c, errResp.StatusCode, errResp.Message)
}
