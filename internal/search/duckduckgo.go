package search

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/spacesedan/researchflow/internal/clients"
	"github.com/spacesedan/researchflow/internal/models"
)

const DUCKDUCKGO_HTML_URL = "https://html.duckduckgo.com/html/"

// DuckDuckGo scrapes the keyless HTML endpoint.
type DuckDuckGo struct {
	Client     *http.Client
	Endpoint   string
	MaxResults int
}

func NewDuckDuckGo(client *http.Client) *DuckDuckGo {
	return &DuckDuckGo{
		Client:     client,
		Endpoint:   DUCKDUCKGO_HTML_URL,
		MaxResults: DEFAULT_MAX_RESULTS,
	}
}

func (d *DuckDuckGo) Name() string { return "DuckDuckGo" }

func (d *DuckDuckGo) Search(ctx context.Context, query string) (models.AgentResponse, error) {
	endpoint, err := url.Parse(d.Endpoint)
	if err != nil {
		return models.AgentResponse{}, fmt.Errorf("[DuckDuckGo] Failed to parse endpoint: %w", err)
	}
	params := endpoint.Query()
	params.Set("q", query)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return models.AgentResponse{}, fmt.Errorf("[DuckDuckGo] Failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", clients.USER_AGENT)

	res, err := d.Client.Do(req)
	if err != nil {
		return models.AgentResponse{}, fmt.Errorf("[DuckDuckGo] Request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return models.AgentResponse{}, fmt.Errorf("[DuckDuckGo] unexpected status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return models.AgentResponse{}, fmt.Errorf("[DuckDuckGo] Failed to parse HTML: %w", err)
	}

	var items []models.ResultItem
	doc.Find(".result").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		anchor := s.Find("a.result__a").First()
		title := strings.TrimSpace(anchor.Text())
		if title == "" {
			return true
		}
		href, _ := anchor.Attr("href")
		snippet := strings.TrimSpace(s.Find(".result__snippet").First().Text())

		items = append(items, models.NewResultItem(title, resolveRedirect(href), snippet))
		return d.MaxResults <= 0 || len(items) < d.MaxResults
	})

	slog.Info("[DuckDuckGo] Search completed",
		slog.String("query", query),
		slog.Int("results", len(items)))
	return models.ListResponse(items), nil
}

// resolveRedirect unwraps DuckDuckGo's //duckduckgo.com/l/?uddg=<target> links.
func resolveRedirect(href string) string {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" && strings.HasSuffix(u.Host, "duckduckgo.com") {
		return target
	}
	return href
}
