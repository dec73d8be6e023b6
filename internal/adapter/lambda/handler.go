// Package lambda serves the emotion classifier as an API Gateway proxy function.
package lambda

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/ressKim-io/emotion-classifier/internal/adapter/http/handler"
	"github.com/ressKim-io/emotion-classifier/internal/domain/entity"
	"github.com/ressKim-io/emotion-classifier/internal/usecase"
)

var jsonHeaders = map[string]string{
	"Content-Type":  "application/json",
	"Cache-Control": "no-store",
}

// Handler adapts API Gateway proxy events to the emotion usecase
type Handler struct {
	emotionUC usecase.EmotionUsecase
	logger    *zap.Logger
}

// NewHandler creates a new Lambda handler
func NewHandler(emotionUC usecase.EmotionUsecase, logger *zap.Logger) *Handler {
	return &Handler{emotionUC: emotionUC, logger: logger}
}

// Handle classifies the event body. Usecase failures are returned as
// JSON error responses, never as a Lambda invocation error.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req, err := parseEvent(event)
	if err != nil {
		errResp := handler.MapBodyError(err)
		h.logger.Warn("Rejected request body",
			zap.String("request_id", event.RequestContext.RequestID),
			zap.Int("status", errResp.StatusCode),
			zap.Error(err),
		)
		return respond(errResp.StatusCode, handler.ErrorBody{Error: errResp.Message})
	}

	result, err := h.emotionUC.Classify(ctx, req)
	if err != nil {
		errResp := handler.MapUsecaseError(err)
		h.logger.Error("Classification failed",
			zap.String("request_id", event.RequestContext.RequestID),
			zap.Int("status", errResp.StatusCode),
			zap.Error(err),
		)
		return respond(errResp.StatusCode, handler.ErrorBody{Error: errResp.Message})
	}

	h.logger.Info("Classification completed",
		zap.String("request_id", event.RequestContext.RequestID),
		zap.String("emotion", string(result.Emotion)),
	)
	return respond(http.StatusOK, result)
}

func parseEvent(event events.APIGatewayProxyRequest) (*entity.ClassificationRequest, error) {
	if !event.IsBase64Encoded {
		return handler.ParseClassificationBody([]byte(event.Body))
	}
	decoded, err := base64.StdEncoding.DecodeString(event.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", handler.ErrBodyUnreadable, err)
	}
	return handler.ParseClassificationBody(decoded)
}

func respond(status int, body interface{}) (events.APIGatewayProxyResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    jsonHeaders,
		Body:       string(data),
	}, nil
}
