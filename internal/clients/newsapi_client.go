package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spacesedan/researchflow/config"
	"github.com/spacesedan/researchflow/internal/models"
)

type NewsAPIClient struct {
	Client   *http.Client
	APIKey   string
	Endpoint string
}

func NewNewsAPIClient(cfg *config.Config) *NewsAPIClient {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = DEFAULT_HTTP_TIMEOUT
	}
	return &NewsAPIClient{
		Client:   &http.Client{Timeout: timeout},
		APIKey:   cfg.NewsAPIKey,
		Endpoint: cfg.NewsAPIURL,
	}
}

// FetchTrendingArticles returns up to five popular English articles for keyword.
// A non-200 answer is logged and yields no articles and no error; transport and
// decoding failures are returned.
func (n *NewsAPIClient) FetchTrendingArticles(ctx context.Context, keyword string) ([]models.Article, error) {
	if n.APIKey == "" {
		return nil, fmt.Errorf("[NewsAPIClient] API key is missing")
	}

	endpoint, err := url.Parse(n.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("[NewsAPIClient] Failed to parse endpoint: %w", err)
	}
	params := endpoint.Query()
	params.Set("q", keyword)
	params.Set("sortBy", NEWS_API_SORT_BY)
	params.Set("apiKey", n.APIKey)
	params.Set("language", NEWS_API_LANGUAGE)
	params.Set("pageSize", strconv.Itoa(NEWS_API_PAGE_SIZE))
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("[NewsAPIClient] Failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", USER_AGENT)

	slog.Info("[NewsAPIClient] Fetching trending articles", slog.String("keyword", keyword))
	res, err := n.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[NewsAPIClient] Request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("[NewsAPIClient] Failed to read response body: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		logUnexpectedStatus(keyword, res.StatusCode, body)
		return []models.Article{}, nil
	}

	var response models.NewsAPIEverythingResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("[NewsAPIClient] Failed to parse JSON response: %w", err)
	}

	articles := make([]models.Article, 0, len(response.Articles))
	for _, a := range response.Articles {
		articles = append(articles, a.ToArticle())
	}

	slog.Info("[NewsAPIClient] Successfully fetched articles",
		slog.String("keyword", keyword),
		slog.Int("count", len(articles)))
	return articles, nil
}

func logUnexpectedStatus(keyword string, status int, body []byte) {
	var apiErr models.NewsAPIErrorResponse
	_ = json.Unmarshal(body, &apiErr)

	attrs := []any{
		slog.String("keyword", keyword),
		slog.Int("statusCode", status),
		slog.String("code", apiErr.Code),
		slog.String("message", apiErr.Message),
	}

	switch status {
	case http.StatusBadRequest:
		slog.Warn("[NewsAPIClient] Bad request: check query parameters", attrs...)
	case http.StatusUnauthorized:
		slog.Error("[NewsAPIClient] Invalid API Key, check credentials", attrs...)
	case http.StatusTooManyRequests:
		slog.Warn("[NewsAPIClient] Rate limit exceeded", attrs...)
	case http.StatusInternalServerError:
		slog.Warn("[NewsAPIClient] Server Error", attrs...)
	default:
		slog.Warn("[NewsAPIClient] Unexpected Response", attrs...)
	}
}
