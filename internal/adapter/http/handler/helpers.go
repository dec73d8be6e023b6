package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/emotion-classifier/internal/domain/entity"
)

// MaxBodyBytes bounds the size of a classify request body
const MaxBodyBytes = 64 << 10

// Body errors
var (
	ErrBodyTooLarge   = errors.New("request body too large")
	ErrBodyUnreadable = errors.New("request body could not be read")
)

// ReadClassificationRequest reads the request body leniently.
// A missing or non-JSON body yields an empty request; a body over
// MaxBodyBytes or a failed read is an error.
func ReadClassificationRequest(c *gin.Context) (*entity.ClassificationRequest, error) {
	if c.Request.Body == nil {
		return &entity.ClassificationRequest{}, nil
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, ErrBodyUnreadable
	}
	return ParseClassificationBody(body)
}

// ParseClassificationBody enforces MaxBodyBytes and decodes a complete body
func ParseClassificationBody(body []byte) (*entity.ClassificationRequest, error) {
	if len(body) > MaxBodyBytes {
		return nil, ErrBodyTooLarge
	}
	return entity.ParseClassificationRequest(body), nil
}

// MapBodyError maps body errors to HTTP error responses
func MapBodyError(err error) ErrorResponse {
	if errors.Is(err, ErrBodyTooLarge) {
		return ErrorResponse{
			StatusCode: http.StatusRequestEntityTooLarge,
			Message:    MessageBodyTooLarge,
		}
	}
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Message:    MessageBodyUnreadable,
	}
}
