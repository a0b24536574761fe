// Package search runs keyword queries against a pluggable web search backend,
// either returning the backend's structured results directly or handing them to
// the model to write an answer, the way a tool-using agent would.
package search

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spacesedan/researchflow/config"
	"github.com/spacesedan/researchflow/internal/clients"
	"github.com/spacesedan/researchflow/internal/models"
)

const DEFAULT_MAX_RESULTS = 10

// Backend is one web search provider.
type Backend interface {
	Name() string
	Search(ctx context.Context, query string) (models.AgentResponse, error)
}

// Agent researches one keyword per Run.
type Agent interface {
	Run(ctx context.Context, keyword string) (models.AgentResponse, error)
}

// Generator is the model capability the agent mode needs.
type Generator interface {
	Generate(ctx context.Context, persona models.PersonaConfig, prompt string) (string, error)
}

// NewBackend picks the backend named by cfg.SearchBackend.
func NewBackend(cfg *config.Config) (Backend, error) {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = clients.DEFAULT_HTTP_TIMEOUT
	}
	httpClient := &http.Client{Timeout: timeout}
	switch cfg.SearchBackend {
	case "duckduckgo", "":
		return NewDuckDuckGo(httpClient), nil
	case "jina":
		return NewJina(httpClient, cfg.JinaAPIKey), nil
	case "reddit":
		return NewReddit(clients.NewRedditClient(cfg)), nil
	default:
		return nil, fmt.Errorf("[Search] unknown backend %q", cfg.SearchBackend)
	}
}

// NewAgent wraps backend according to cfg.SearchMode.
func NewAgent(cfg *config.Config, backend Backend, generator Generator) Agent {
	if cfg.SearchMode == "tool" {
		return &ToolAgent{Backend: backend}
	}
	return &ModelAgent{Backend: backend, Generator: generator}
}
