package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spacesedan/researchflow/config"
	"github.com/spacesedan/researchflow/internal/clients"
	"github.com/spacesedan/researchflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	response models.AgentResponse
	err      error
	queries  []string
}

func (f *fakeBackend) Name() string { return "Fake" }

func (f *fakeBackend) Search(_ context.Context, query string) (models.AgentResponse, error) {
	f.queries = append(f.queries, query)
	return f.response, f.err
}

type fakeGenerator struct {
	reply   string
	err     error
	persona models.PersonaConfig
	prompt  string
}

func (f *fakeGenerator) Generate(_ context.Context, persona models.PersonaConfig, prompt string) (string, error) {
	f.persona = persona
	f.prompt = prompt
	return f.reply, f.err
}

func TestToolAgent_PassesBackendResponseThrough(t *testing.T) {
	backend := &fakeBackend{response: models.ListResponse([]models.ResultItem{
		models.NewResultItem("t", "l", "s"),
	})}

	res, err := (&ToolAgent{Backend: backend}).Run(context.Background(), "solar")
	require.NoError(t, err)
	assert.Equal(t, []string{"solar"}, backend.queries)
	assert.Equal(t, backend.response, res)
}

func TestModelAgent_PlainTextReply(t *testing.T) {
	backend := &fakeBackend{response: models.ListResponse([]models.ResultItem{
		models.NewResultItem("EV news", "https://example.com", "sales up"),
	})}
	gen := &fakeGenerator{reply: "EV adoption is accelerating."}

	res, err := (&ModelAgent{Backend: backend, Generator: gen}).Run(context.Background(), "electric vehicles")
	require.NoError(t, err)

	assert.Equal(t, models.AgentResponseText, res.Kind)
	assert.Equal(t, []models.SearchResult{{
		Title:   models.DEFAULT_RESULT_TITLE,
		Link:    "",
		Snippet: "EV adoption is accelerating.",
	}}, res.Normalize())

	assert.Contains(t, gen.prompt, "Find detailed information and news about: electric vehicles")
	assert.Contains(t, gen.prompt, "1. EV news")
	assert.Contains(t, gen.persona.Description, "search agent")
}

func TestModelAgent_FencedJSONReply(t *testing.T) {
	backend := &fakeBackend{response: models.ListResponse(nil)}
	gen := &fakeGenerator{reply: "```json\n[{\"title\":\"A\",\"link\":\"https://a\",\"snippet\":\"s\"}]\n```"}

	res, err := (&ModelAgent{Backend: backend, Generator: gen}).Run(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, models.AgentResponseList, res.Kind)
	assert.Equal(t, "https://a", res.Normalize()[0].Link)
	assert.Contains(t, gen.prompt, "No results found.")
}

func TestModelAgent_BackendErrorSkipsGeneration(t *testing.T) {
	backend := &fakeBackend{err: errors.New("down")}
	gen := &fakeGenerator{}

	_, err := (&ModelAgent{Backend: backend, Generator: gen}).Run(context.Background(), "a")
	assert.Error(t, err)
	assert.Empty(t, gen.prompt)
}

func TestModelAgent_GenerationError(t *testing.T) {
	backend := &fakeBackend{response: models.ListResponse(nil)}
	gen := &fakeGenerator{err: errors.New("rate limited")}

	_, err := (&ModelAgent{Backend: backend, Generator: gen}).Run(context.Background(), "a")
	assert.ErrorContains(t, err, "rate limited")
}

func TestNewBackendAndAgent(t *testing.T) {
	cfg := &config.Config{SearchBackend: "jina", SearchMode: "tool"}
	backend, err := NewBackend(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Jina AI", backend.Name())
	assert.IsType(t, &ToolAgent{}, NewAgent(cfg, backend, nil))

	cfg.SearchBackend = ""
	cfg.SearchMode = "agent"
	backend, err = NewBackend(cfg)
	require.NoError(t, err)
	assert.Equal(t, "DuckDuckGo", backend.Name())
	assert.IsType(t, &ModelAgent{}, NewAgent(cfg, backend, &fakeGenerator{}))

	cfg.SearchBackend = "bing"
	_, err = NewBackend(cfg)
	assert.Error(t, err)
}

func TestNewBackend_AppliesTimeout(t *testing.T) {
	backend, err := NewBackend(&config.Config{SearchBackend: "jina"})
	require.NoError(t, err)
	require.IsType(t, &Jina{}, backend)
	assert.Equal(t, clients.DEFAULT_HTTP_TIMEOUT, backend.(*Jina).Client.Timeout)

	backend, err = NewBackend(&config.Config{SearchBackend: "duckduckgo", HTTPTimeout: 5 * time.Second})
	require.NoError(t, err)
	require.IsType(t, &DuckDuckGo{}, backend)
	assert.Equal(t, 5*time.Second, backend.(*DuckDuckGo).Client.Timeout)
}
