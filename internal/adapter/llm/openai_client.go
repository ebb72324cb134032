package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"quiz-ai/internal/config"
	"quiz-ai/internal/domain"
	"quiz-ai/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// Generation parameters are part of the upstream request contract and are
// not configurable per request.
const (
	temperature = 0.5
	maxTokens   = 1200
)

// OpenAIClient implements domain.QuizGenerator against any server speaking
// the OpenAI chat-completions protocol (LM Studio, vLLM, OpenAI itself).
type OpenAIClient struct {
	model  llms.Model
	logger *zap.Logger
}

// NewOpenAIClient creates the client from configuration. The configured
// timeout bounds the whole request; there are no retries.
func NewOpenAIClient(cfg config.LLMConfig) (*OpenAIClient, error) {
	if cfg.Server == "" {
		return nil, fmt.Errorf("LLM server URL cannot be empty")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("LLM model name cannot be empty")
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	model, err := openai.New(
		openai.WithBaseURL(cfg.Server),
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.APIKey),
		openai.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return &OpenAIClient{
		model:  model,
		logger: logger.Get(),
	}, nil
}

// Generate implements domain.QuizGenerator. Transport failures (connection
// refused, timeout, upstream 5xx) map to LLM_SERVICE_ERROR; a reply the
// server delivered but that carries no usable completion maps to
// INVALID_LLM_RESPONSE.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt,
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		if isEmptyResponse(err) {
			c.logger.Error("LLM returned an empty completion", zap.Error(err))
			return "", domain.NewInvalidLLMResponseError(err)
		}
		c.logger.Error("LLM request failed", zap.Error(err))
		return "", domain.NewLLMServiceError(err)
	}

	if strings.TrimSpace(completion) == "" {
		return "", domain.NewInvalidLLMResponseError(fmt.Errorf("completion is empty"))
	}

	c.logger.Debug("Raw LLM response received", zap.Int("length", len(completion)))
	return completion, nil
}

// isEmptyResponse reports whether the error means the upstream answered
// but without the expected choices/message fields.
func isEmptyResponse(err error) bool {
	return strings.Contains(err.Error(), "no response") ||
		strings.Contains(err.Error(), "empty response")
}

// Static assertion to ensure OpenAIClient implements QuizGenerator
var _ domain.QuizGenerator = (*OpenAIClient)(nil)
