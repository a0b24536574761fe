package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spacesedan/researchflow/config"
	"github.com/spacesedan/researchflow/internal/models"
	"github.com/spacesedan/researchflow/internal/prompts"
)

// ErrEmptyCompletion is wrapped by GenerationError when the endpoint answers
// without any choices.
var ErrEmptyCompletion = errors.New("completion returned no choices")

// GenerationError reports a failed call to the text-generation endpoint.
type GenerationError struct {
	Model string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("[GroqClient] generation with %s failed: %v", e.Model, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// GroqClient talks to Groq through its OpenAI-compatible API.
type GroqClient struct {
	Client *openai.Client
	Model  string
}

func NewGroqClient(cfg *config.Config) *GroqClient {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = DEFAULT_HTTP_TIMEOUT
	}

	clientConfig := openai.DefaultConfig(cfg.GroqAPIKey)
	clientConfig.BaseURL = cfg.GroqBaseURL
	clientConfig.HTTPClient = &http.Client{Timeout: timeout}

	slog.Info("[GroqClient] Groq client initialized",
		slog.String("model", cfg.GroqModel),
		slog.Duration("timeout", timeout))

	return &GroqClient{
		Client: openai.NewClientWithConfig(clientConfig),
		Model:  cfg.GroqModel,
	}
}

// Generate sends persona and prompt as one chat completion and returns the raw
// reply. It makes exactly one attempt.
func (g *GroqClient) Generate(ctx context.Context, persona models.PersonaConfig, prompt string) (string, error) {
	start := time.Now()
	resp, err := g.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: prompts.SystemMessage(persona),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: strings.TrimSpace(prompt),
			},
		},
	})
	if err != nil {
		slog.Warn("[GroqClient] Chat completion failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)))
		return "", &GenerationError{Model: g.Model, Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &GenerationError{Model: g.Model, Err: ErrEmptyCompletion}
	}

	slog.Debug("[GroqClient] Chat completion finished",
		slog.String("finish_reason", string(resp.Choices[0].FinishReason)),
		slog.Duration("elapsed", time.Since(start)))

	return resp.Choices[0].Message.Content, nil
}

// HealthCheck reports whether the endpoint answers a model listing.
func (g *GroqClient) HealthCheck(ctx context.Context) bool {
	_, err := g.Client.ListModels(ctx)
	if err != nil {
		slog.Warn("[GroqClient] Health check failed", slog.String("error", err.Error()))
		return false
	}
	return true
}
