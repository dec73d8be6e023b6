package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ressKim-io/emotion-classifier/internal/domain/entity"
	"github.com/ressKim-io/emotion-classifier/internal/domain/service"
	"github.com/ressKim-io/emotion-classifier/internal/infrastructure/metrics"
)

// Error definitions for emotion usecase
var (
	ErrAPIKeyNotSet         = errors.New("completion service api key not set")
	ErrClassificationFailed = errors.New("emotion classification failed")
)

// Generation parameters: one token, no sampling.
const (
	completionMaxTokens   = 1
	completionTemperature = 0
)

// VariantOutput describes the active classifier profile
type VariantOutput struct {
	Name            string   `json:"name"`
	AllowedEmotions []string `json:"allowed_emotions"`
	DefaultEmotion  string   `json:"default_emotion"`
	Model           string   `json:"model"`
}

// EmotionConfig is the per-deployment configuration of the usecase
type EmotionConfig struct {
	APIKey  string
	Model   string
	Variant *entity.Variant
}

// EmotionUsecase defines the interface for emotion classification
type EmotionUsecase interface {
	Classify(ctx context.Context, req *entity.ClassificationRequest) (*entity.ClassificationResult, error)
	Variant() *VariantOutput
	Configured() bool
}

type emotionUsecase struct {
	cfg     EmotionConfig
	client  service.CompletionClient
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewEmotionUsecase creates a new emotion usecase.
// A nil logger or metrics disables that output.
func NewEmotionUsecase(cfg EmotionConfig, client service.CompletionClient, m *metrics.Metrics, logger *zap.Logger) EmotionUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &emotionUsecase{
		cfg:     cfg,
		client:  client,
		metrics: m,
		logger:  logger,
	}
}

func (u *emotionUsecase) Classify(ctx context.Context, req *entity.ClassificationRequest) (*entity.ClassificationResult, error) {
	if u.cfg.APIKey == "" {
		return nil, ErrAPIKeyNotSet
	}

	start := time.Now()
	completion, err := u.client.Complete(ctx, &service.CompletionRequest{
		APIKey:       u.cfg.APIKey,
		Model:        u.cfg.Model,
		SystemPrompt: u.cfg.Variant.SystemPrompt,
		Text:         req.TextOrEmpty(),
		MaxTokens:    completionMaxTokens,
		Temperature:  completionTemperature,
	})
	elapsed := time.Since(start)
	if err != nil {
		u.metrics.ObserveUpstream(elapsed, metrics.OutcomeFailure)
		u.logger.Warn("Completion service call failed",
			zap.String("variant", u.cfg.Variant.Name),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrClassificationFailed, err)
	}

	if completion.ErrorStatus != 0 {
		u.metrics.ObserveUpstream(elapsed, metrics.OutcomeErrorAnswer)
		u.logger.Warn("Completion service answered with an error",
			zap.String("variant", u.cfg.Variant.Name),
			zap.Int("status", completion.ErrorStatus),
		)
	} else {
		u.metrics.ObserveUpstream(elapsed, metrics.OutcomeSuccess)
	}

	emotion, matched := u.cfg.Variant.Resolve(completion.Content)
	if !matched {
		u.logger.Debug("Completion outside allow-list, using default",
			zap.String("variant", u.cfg.Variant.Name),
			zap.String("content", completion.Content),
			zap.Bool("has_choice", completion.HasChoice),
			zap.String("default", string(u.cfg.Variant.DefaultEmotion)),
		)
	}
	u.metrics.ObserveClassification(u.cfg.Variant.Name, string(emotion), !matched)

	return &entity.ClassificationResult{Emotion: emotion}, nil
}

func (u *emotionUsecase) Variant() *VariantOutput {
	return &VariantOutput{
		Name:            u.cfg.Variant.Name,
		AllowedEmotions: u.cfg.Variant.Labels(),
		DefaultEmotion:  string(u.cfg.Variant.DefaultEmotion),
		Model:           u.cfg.Model,
	}
}

func (u *emotionUsecase) Configured() bool {
	return u.cfg.APIKey != ""
}
