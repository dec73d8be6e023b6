// Command lambda runs the emotion classifier as an AWS Lambda function
// behind an API Gateway proxy integration.
package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	lambdaadapter "github.com/ressKim-io/emotion-classifier/internal/adapter/lambda"
	"github.com/ressKim-io/emotion-classifier/internal/app/bootstrap"
	"github.com/ressKim-io/emotion-classifier/internal/infrastructure/config"
	"github.com/ressKim-io/emotion-classifier/internal/infrastructure/logger"
)

func main() {
	h, err := newHandler()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	lambda.Start(h.Handle)
}

func newHandler() (*lambdaadapter.Handler, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Log, "lambda")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	emotionUC, err := bootstrap.NewEmotionUsecase(cfg, log, bootstrap.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to configure classifier: %w", err)
	}

	return lambdaadapter.NewHandler(emotionUC, log), nil
}
