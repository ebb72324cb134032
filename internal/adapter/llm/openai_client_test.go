package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quiz-ai/internal/config"
	"quiz-ai/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLLMConfig(serverURL string) config.LLMConfig {
	return config.LLMConfig{
		Server:  serverURL,
		Model:   "test-model",
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	}
}

// chatRequest mirrors the fields of the upstream request contract this
// service cares about.
type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
	} `json:"messages"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

func completionBody(content string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"id":      "cmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "test-model",
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
	})
	return string(body)
}

func TestOpenAIClient_Generate(t *testing.T) {
	var gotReq chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody(`{"questions": []}`)))
	}))
	defer server.Close()

	client, err := NewOpenAIClient(testLLMConfig(server.URL))
	require.NoError(t, err)

	out, err := client.Generate(context.Background(), "Generate exactly 2 Multiple Choice Questions.")
	require.NoError(t, err)
	assert.Equal(t, `{"questions": []}`, out)

	// Request payload contract.
	assert.Equal(t, "test-model", gotReq.Model)
	assert.InDelta(t, 0.5, gotReq.Temperature, 0.001)
	assert.Equal(t, 1200, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Contains(t, string(gotReq.Messages[0].Content), "Multiple Choice Questions")
}

func TestOpenAIClient_UpstreamUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from now on

	client, err := NewOpenAIClient(testLLMConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "prompt")
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeLLMServiceError, domainErr.Code)
}

func TestOpenAIClient_UpstreamServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model crashed", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewOpenAIClient(testLLMConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "prompt")
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeLLMServiceError, domainErr.Code)
}

func TestOpenAIClient_EmptyCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody("")))
	}))
	defer server.Close()

	client, err := NewOpenAIClient(testLLMConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "prompt")
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidLLMResponse, domainErr.Code)
}

func TestNewOpenAIClient_Validation(t *testing.T) {
	_, err := NewOpenAIClient(config.LLMConfig{Model: "m", APIKey: "k"})
	assert.Error(t, err, "empty server URL must be rejected")

	_, err = NewOpenAIClient(config.LLMConfig{Server: "http://localhost:1234/v1", APIKey: "k"})
	assert.Error(t, err, "empty model name must be rejected")
}
