package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/ressKim-io/emotion-classifier/internal/domain/service"
)

// DefaultModel is the chat model used when none is configured
const DefaultModel = "gpt-3.5-turbo"

// ErrMissingAPIKey is returned when a request carries no credential
var ErrMissingAPIKey = errors.New("completion request has no api key")

// OpenAIClient is a completion client for the OpenAI chat completions API
type OpenAIClient struct {
	client openai.Client
}

// OpenAIOptions configures the underlying SDK client
type OpenAIOptions struct {
	// BaseURL overrides the API endpoint, e.g. for a proxy or a test server
	BaseURL string
	Timeout time.Duration
}

// NewOpenAIClient creates a new OpenAI completion client.
// SDK retries are disabled so every Complete call issues exactly one request.
func NewOpenAIClient(opts OpenAIOptions) *OpenAIClient {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	reqOpts := []option.RequestOption{
		option.WithMaxRetries(0),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}

	return &OpenAIClient{client: openai.NewClient(reqOpts...)}
}

// Complete sends a system prompt and the user text and returns the first choice.
// A non-2xx answer with a JSON body is a completion without choices; transport
// failures and undecodable answers are errors.
func (c *OpenAIClient) Complete(ctx context.Context, req *service.CompletionRequest) (*service.Completion, error) {
	if req.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	model := req.Model
	if model == "" {
		model = DefaultModel
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.Text),
		},
		MaxTokens:   openai.Int(req.MaxTokens),
		Temperature: openai.Float(req.Temperature),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params, option.WithAPIKey(req.APIKey))
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			if hasJSONBody(apiErr) {
				return &service.Completion{ErrorStatus: apiErr.StatusCode}, nil
			}
			return nil, fmt.Errorf("completion service returned status %d: %w", apiErr.StatusCode, err)
		}
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return toCompletion(resp), nil
}

func toCompletion(resp *openai.ChatCompletion) *service.Completion {
	if resp == nil || len(resp.Choices) == 0 {
		return &service.Completion{}
	}

	choice := resp.Choices[0]
	return &service.Completion{
		Content:      choice.Message.Content,
		HasChoice:    true,
		Model:        resp.Model,
		FinishReason: string(choice.FinishReason),
	}
}

// hasJSONBody reports whether the error answer carried a JSON document.
// The SDK restores the response body after reading it.
func hasJSONBody(apiErr *openai.Error) bool {
	if apiErr.Response == nil || apiErr.Response.Body == nil {
		return false
	}
	body, err := io.ReadAll(apiErr.Response.Body)
	if err != nil {
		return false
	}
	return json.Valid(body)
}
