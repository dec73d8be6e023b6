package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ressKim-io/emotion-classifier/internal/domain/service"
)

func chatCompletionJSON(content string) string {
	return `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "gpt-3.5-turbo-0125",
		"choices": [{
			"index": 0,
			"finish_reason": "length",
			"message": {"role": "assistant", "content": ` + mustJSON(content) + `}
		}]
	}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func newTestRequest() *service.CompletionRequest {
	return &service.CompletionRequest{
		APIKey:       "sk-test",
		Model:        "gpt-3.5-turbo",
		SystemPrompt: "You are an emotion classifier.",
		Text:         "I miss my childhood home",
		MaxTokens:    1,
		Temperature:  0,
	}
}

func TestOpenAIClient_Complete(t *testing.T) {
	t.Run("successful completion", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

			var body map[string]interface{}
			err := json.NewDecoder(r.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "gpt-3.5-turbo", body["model"])
			assert.Equal(t, float64(1), body["max_tokens"])
			assert.Contains(t, body, "temperature")
			assert.Equal(t, float64(0), body["temperature"])

			messages, ok := body["messages"].([]interface{})
			require.True(t, ok)
			require.Len(t, messages, 2)
			system := messages[0].(map[string]interface{})
			user := messages[1].(map[string]interface{})
			assert.Equal(t, "system", system["role"])
			assert.Equal(t, "You are an emotion classifier.", system["content"])
			assert.Equal(t, "user", user["role"])
			assert.Equal(t, "I miss my childhood home", user["content"])

			w.Header().Set("Content-Type", "application/json")
			_, err = w.Write([]byte(chatCompletionJSON("Nostalgic")))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewOpenAIClient(OpenAIOptions{BaseURL: server.URL + "/v1/", Timeout: 5 * time.Second})
		result, err := client.Complete(context.Background(), newTestRequest())

		require.NoError(t, err)
		assert.True(t, result.HasChoice)
		assert.Equal(t, "Nostalgic", result.Content)
		assert.Equal(t, "length", result.FinishReason)
		assert.Equal(t, "gpt-3.5-turbo-0125", result.Model)
	})

	t.Run("default model when unset", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, DefaultModel, body["model"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(chatCompletionJSON("happy")))
		}))
		defer server.Close()

		req := newTestRequest()
		req.Model = ""

		client := NewOpenAIClient(OpenAIOptions{BaseURL: server.URL + "/v1/", Timeout: 5 * time.Second})
		_, err := client.Complete(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("no choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"chatcmpl-2","object":"chat.completion","created":1700000000,"model":"gpt-3.5-turbo","choices":[]}`))
		}))
		defer server.Close()

		client := NewOpenAIClient(OpenAIOptions{BaseURL: server.URL + "/v1/", Timeout: 5 * time.Second})
		result, err := client.Complete(context.Background(), newTestRequest())

		require.NoError(t, err)
		assert.False(t, result.HasChoice)
		assert.Empty(t, result.Content)
	})

	t.Run("json error answer is a completion without choices", func(t *testing.T) {
		tests := []struct {
			name   string
			status int
			body   string
		}{
			{name: "bad request", status: http.StatusBadRequest, body: `{"error":{"message":"Missing required parameter: 'messages'.","type":"invalid_request_error"}}`},
			{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`},
			{name: "rate limited", status: http.StatusTooManyRequests, body: `{"error":{"message":"Rate limit reached","type":"requests"}}`},
			{name: "server error", status: http.StatusInternalServerError, body: `{"error":{"message":"internal error","type":"server_error"}}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				calls := 0
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					calls++
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(tt.body))
				}))
				defer server.Close()

				client := NewOpenAIClient(OpenAIOptions{BaseURL: server.URL + "/v1/", Timeout: 5 * time.Second})
				result, err := client.Complete(context.Background(), newTestRequest())

				require.NoError(t, err)
				assert.False(t, result.HasChoice)
				assert.Empty(t, result.Content)
				assert.Equal(t, tt.status, result.ErrorStatus)
				assert.Equal(t, 1, calls)
			})
		}
	})

	t.Run("non-json error answer fails", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls++
			w.Header().Set("Content-Type", "text/html")
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		}))
		defer server.Close()

		client := NewOpenAIClient(OpenAIOptions{BaseURL: server.URL + "/v1/", Timeout: 5 * time.Second})
		_, err := client.Complete(context.Background(), newTestRequest())

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("undecodable success answer fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := NewOpenAIClient(OpenAIOptions{BaseURL: server.URL + "/v1/", Timeout: 5 * time.Second})
		_, err := client.Complete(context.Background(), newTestRequest())

		assert.Error(t, err)
	})

	t.Run("connection error", func(t *testing.T) {
		client := NewOpenAIClient(OpenAIOptions{BaseURL: "http://127.0.0.1:1/v1/", Timeout: time.Second})
		_, err := client.Complete(context.Background(), newTestRequest())

		assert.Error(t, err)
	})

	t.Run("missing api key", func(t *testing.T) {
		client := NewOpenAIClient(OpenAIOptions{})
		req := newTestRequest()
		req.APIKey = ""

		_, err := client.Complete(context.Background(), req)

		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})
}
