package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ressKim-io/emotion-classifier/internal/adapter/http/handler"
	"github.com/ressKim-io/emotion-classifier/internal/app/bootstrap"
	"github.com/ressKim-io/emotion-classifier/internal/domain/entity"
	"github.com/ressKim-io/emotion-classifier/internal/domain/service"
	"github.com/ressKim-io/emotion-classifier/internal/infrastructure/config"
)

type classifyOptions struct {
	variant string
	model   string
	client  service.CompletionClient
}

func newClassifyCmd() *cobra.Command {
	var opts classifyOptions

	cmd := &cobra.Command{
		Use:   "classify <text...>",
		Short: "Classify text and print the result as JSON",
		Long: `Classify joins its arguments into one text, classifies it and prints
{"emotion": "..."} on success or {"error": "..."} on failure.

Examples:
    emotionctl classify "I miss my childhood home"
    emotionctl classify --variant extended "nothing to do today"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVar(&opts.variant, "variant", "", "Classifier variant (overrides EMOTION_CLASSIFIER_VARIANT)")
	cmd.Flags().StringVar(&opts.model, "model", "", "Chat model (overrides EMOTION_OPENAI_MODEL)")

	return cmd
}

func runClassify(cmd *cobra.Command, text string, opts classifyOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.variant != "" {
		cfg.Classifier.Variant = opts.variant
	}
	if opts.model != "" {
		cfg.OpenAI.Model = opts.model
	}

	emotionUC, err := bootstrap.NewEmotionUsecase(cfg, zap.NewNop(), bootstrap.Options{Client: opts.client})
	if err != nil {
		return err
	}

	result, err := emotionUC.Classify(cmd.Context(), &entity.ClassificationRequest{Text: &text})
	if err != nil {
		errResp := handler.MapUsecaseError(err)
		if werr := writeJSON(cmd.OutOrStdout(), handler.ErrorBody{Error: errResp.Message}); werr != nil {
			return werr
		}
		return err
	}

	return writeJSON(cmd.OutOrStdout(), result)
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
