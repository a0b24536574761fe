package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spacesedan/researchflow/internal/models"
	"github.com/spacesedan/researchflow/internal/prompts"
)

// ToolAgent returns the backend's results as they are.
type ToolAgent struct {
	Backend Backend
}

func (a *ToolAgent) Run(ctx context.Context, keyword string) (models.AgentResponse, error) {
	return a.Backend.Search(ctx, keyword)
}

// ModelAgent searches first and lets the model answer from the results. The
// model's reply is decoded as-is, so it may come back as text, a list or a
// mapping.
type ModelAgent struct {
	Backend   Backend
	Generator Generator
}

func (a *ModelAgent) Run(ctx context.Context, keyword string) (models.AgentResponse, error) {
	found, err := a.Backend.Search(ctx, keyword)
	if err != nil {
		return models.AgentResponse{}, err
	}

	prompt := searchPrompt(keyword, a.Backend.Name(), found.Normalize())
	reply, err := a.Generator.Generate(ctx, prompts.SearchPersona(), prompt)
	if err != nil {
		return models.AgentResponse{}, fmt.Errorf("[SearchAgent] generation failed for %q: %w", keyword, err)
	}

	response := models.DecodeAgentResponse(cleanModelReply(reply))
	slog.Debug("[SearchAgent] Model answered",
		slog.String("keyword", keyword),
		slog.String("kind", response.Kind.String()))
	return response, nil
}

func searchPrompt(keyword, backend string, results []models.SearchResult) string {
	var b strings.Builder
	b.WriteString(prompts.SearchQuery(keyword))
	fmt.Fprintf(&b, "\n\nWeb search results (%s):\n", backend)
	if len(results) == 0 {
		b.WriteString("No results found.\n")
	}
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s\n   %s\n   %s\n", i+1, r.Title, r.Link, r.Snippet)
	}
	return b.String()
}

// cleanModelReply strips a surrounding markdown code fence.
func cleanModelReply(reply string) string {
	reply = strings.TrimSpace(reply)
	if !strings.HasPrefix(reply, "```") {
		return reply
	}
	reply = strings.TrimPrefix(reply, "```json")
	reply = strings.TrimPrefix(reply, "```")
	reply = strings.TrimSuffix(reply, "```")
	return strings.TrimSpace(reply)
}
