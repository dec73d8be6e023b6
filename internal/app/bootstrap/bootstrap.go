// Package bootstrap wires the emotion usecase from configuration.
// It is shared by the HTTP server, the Lambda function and the CLI.
package bootstrap

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ressKim-io/emotion-classifier/internal/adapter/client"
	"github.com/ressKim-io/emotion-classifier/internal/domain/service"
	"github.com/ressKim-io/emotion-classifier/internal/infrastructure/config"
	"github.com/ressKim-io/emotion-classifier/internal/infrastructure/metrics"
	"github.com/ressKim-io/emotion-classifier/internal/infrastructure/variants"
	"github.com/ressKim-io/emotion-classifier/internal/usecase"
)

// Options overrides parts of the default wiring
type Options struct {
	// Client replaces the OpenAI completion client
	Client service.CompletionClient
	// Registerer receives the service metrics; nil disables metrics
	Registerer prometheus.Registerer
}

// NewEmotionUsecase resolves the configured variant and builds the usecase.
// A missing API key is not an error here; it is reported per request.
func NewEmotionUsecase(cfg *config.Config, log *zap.Logger, opts Options) (usecase.EmotionUsecase, error) {
	catalog, err := variants.Load(cfg.Classifier.VariantsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load variants: %w", err)
	}

	variant, err := catalog.Get(cfg.Classifier.Variant)
	if err != nil {
		return nil, err
	}

	completionClient := opts.Client
	if completionClient == nil {
		completionClient = client.NewOpenAIClient(client.OpenAIOptions{
			BaseURL: cfg.OpenAI.BaseURL,
			Timeout: cfg.OpenAI.Timeout,
		})
	}

	var m *metrics.Metrics
	if opts.Registerer != nil {
		m = metrics.New(opts.Registerer)
	}

	if cfg.OpenAI.APIKey == "" {
		log.Warn("Completion service API key not set, classification requests will fail")
	}
	log.Info("Emotion classifier configured",
		zap.String("variant", variant.Name),
		zap.Strings("allowed_emotions", variant.Labels()),
		zap.String("default_emotion", string(variant.DefaultEmotion)),
		zap.String("model", cfg.OpenAI.Model),
	)

	return usecase.NewEmotionUsecase(usecase.EmotionConfig{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		Variant: variant,
	}, completionClient, m, log), nil
}
