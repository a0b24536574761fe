package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/spacesedan/researchflow/internal/clients"
	"github.com/spacesedan/researchflow/internal/models"
)

const JINA_SEARCH_URL = "https://s.jina.ai/"

type jinaResult struct {
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
}

// Jina queries the Jina AI search API. The key is optional but unkeyed calls
// are heavily rate limited.
type Jina struct {
	Client   *http.Client
	Endpoint string
	APIKey   string
}

func NewJina(client *http.Client, apiKey string) *Jina {
	return &Jina{Client: client, Endpoint: JINA_SEARCH_URL, APIKey: apiKey}
}

func (j *Jina) Name() string { return "Jina AI" }

func (j *Jina) Search(ctx context.Context, query string) (models.AgentResponse, error) {
	endpoint, err := url.Parse(j.Endpoint)
	if err != nil {
		return models.AgentResponse{}, fmt.Errorf("[Jina] Failed to parse endpoint: %w", err)
	}
	params := endpoint.Query()
	params.Set("q", query)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return models.AgentResponse{}, fmt.Errorf("[Jina] Failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", clients.USER_AGENT)
	if j.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+j.APIKey)
	}

	res, err := j.Client.Do(req)
	if err != nil {
		return models.AgentResponse{}, fmt.Errorf("[Jina] Request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return models.AgentResponse{}, fmt.Errorf("[Jina] Failed to read response body: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return models.AgentResponse{}, fmt.Errorf("[Jina] unexpected status %d", res.StatusCode)
	}

	var searchResponse struct {
		Data []jinaResult `json:"data"`
	}
	if err := json.Unmarshal(body, &searchResponse); err != nil {
		return models.AgentResponse{}, fmt.Errorf("[Jina] Failed to parse JSON response: %w", err)
	}

	items := make([]models.ResultItem, 0, len(searchResponse.Data))
	for _, r := range searchResponse.Data {
		items = append(items, models.ResultItem{Title: r.Title, Link: r.URL, Snippet: r.Description})
	}

	slog.Info("[Jina] Search completed",
		slog.String("query", query),
		slog.Int("results", len(items)))
	return models.KeyedResponse(items), nil
}
