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
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

const (
	REDDIT_AUTH_URL = "https://www.reddit.com/api/v1/access_token"
	REDDIT_API_URL  = "https://oauth.reddit.com"
)

type RedditClient struct {
	Client  *http.Client
	BaseURL string
	limiter *rate.Limiter
}

// NewRedditClient authenticates with the app-only client-credentials flow.
func NewRedditClient(cfg *config.Config) *RedditClient {
	oauthConf := &clientcredentials.Config{
		ClientID:     cfg.RedditClientID,
		ClientSecret: cfg.RedditClientSecret,
		TokenURL:     REDDIT_AUTH_URL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = DEFAULT_HTTP_TIMEOUT
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: timeout})

	client := oauthConf.Client(ctx)
	client.Timeout = timeout

	return newRedditClient(client, REDDIT_API_URL)
}

func newRedditClient(client *http.Client, baseURL string) *RedditClient {
	return &RedditClient{
		Client:  client,
		BaseURL: baseURL,
		// reddit allows roughly one request per second for app-only clients
		limiter: rate.NewLimiter(rate.Limit(1), 1),
	}
}

// SearchPosts runs a site-wide search sorted by relevance.
func (rc *RedditClient) SearchPosts(ctx context.Context, query string, limit int) ([]models.RedditAPIChildData, error) {
	parsedURL, err := url.Parse(rc.BaseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("[RedditClient] Failed to parse URL: %w", err)
	}
	params := parsedURL.Query()
	params.Set("q", query)
	params.Set("sort", "relevance")
	params.Set("limit", strconv.Itoa(limit))
	parsedURL.RawQuery = params.Encode()

	if err := rc.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("[RedditClient] Rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsedURL.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := rc.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[RedditClient] Request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("[RedditClient] Unexpected status", slog.Int("statusCode", resp.StatusCode))
		return nil, fmt.Errorf("[RedditClient] unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("[RedditClient] Failed to read response body: %w", err)
	}

	var listing models.RedditAPIResponse
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("[RedditClient] Failed to parse JSON response: %w", err)
	}

	posts := make([]models.RedditAPIChildData, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		posts = append(posts, child.Data)
	}
	return posts, nil
}
