package service

import "context"

// CompletionRequest is a single-shot chat completion call
type CompletionRequest struct {
	APIKey       string
	Model        string
	SystemPrompt string
	Text         string
	MaxTokens    int64
	Temperature  float64
}

// Completion is the first choice returned by the completion service.
// HasChoice is false when the service returned no choices at all, including
// a JSON error body. ErrorStatus carries the status of such an error answer.
type Completion struct {
	Content      string
	HasChoice    bool
	Model        string
	FinishReason string
	ErrorStatus  int
}

// CompletionClient defines the interface for the external completion service
type CompletionClient interface {
	// Complete sends the system prompt and user text and returns the first choice
	Complete(ctx context.Context, req *CompletionRequest) (*Completion, error)
}
