// Package dispatch fans a keyword list out to the search agent and the news
// client, one keyword at a time, and merges what comes back.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spacesedan/researchflow/internal/models"
	"github.com/spacesedan/researchflow/internal/monitoring"
	"github.com/spacesedan/researchflow/internal/prompts"
	"github.com/spacesedan/researchflow/internal/search"
)

const (
	SEARCH_CACHE_PREFIX = "search:"
	NEWS_CACHE_PREFIX   = "news:"
)

// NewsFetcher looks up articles for one keyword.
type NewsFetcher interface {
	FetchTrendingArticles(ctx context.Context, keyword string) ([]models.Article, error)
}

// Cache is an optional string store with expiry, satisfied by the valkey client.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type Dispatcher struct {
	Agent    search.Agent
	News     NewsFetcher
	Cache    Cache
	CacheTTL time.Duration
}

// Dispatch runs the search agent once per keyword, in order. A keyword whose
// search fails contributes no records and one warning; the run continues.
// Each keyword contributes at most limit records.
func (d *Dispatcher) Dispatch(ctx context.Context, keywords []string, limit int) ([]models.SearchResult, []string) {
	var (
		merged   = []models.SearchResult{}
		warnings []string
	)

	for _, keyword := range keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" {
			continue
		}

		results, err := d.searchKeyword(ctx, keyword)
		if err != nil {
			slog.Warn("[Dispatcher] Search failed",
				slog.String("keyword", keyword),
				slog.String("error", err.Error()))
			monitoring.RecordSearch("error")
			warnings = append(warnings, fmt.Sprintf("Search failed for %s: %v", keyword, err))
			continue
		}

		if limit >= 0 && len(results) > limit {
			results = results[:limit]
		}
		merged = append(merged, results...)
	}

	return merged, warnings
}

func (d *Dispatcher) searchKeyword(ctx context.Context, keyword string) ([]models.SearchResult, error) {
	var cached []models.SearchResult
	if d.readCache(ctx, SEARCH_CACHE_PREFIX+keyword, &cached) {
		monitoring.RecordSearch("cache_hit")
		return cached, nil
	}

	slog.Info("[Dispatcher] Searching", slog.String("query", prompts.SearchQuery(keyword)))
	response, err := d.Agent.Run(ctx, keyword)
	if err != nil {
		return nil, err
	}
	monitoring.RecordSearch("ok")

	results := response.Normalize()
	d.writeCache(ctx, SEARCH_CACHE_PREFIX+keyword, results)
	return results, nil
}

// FetchNews concatenates the news client's articles for every keyword. A news
// lookup that errors is skipped with a warning.
func (d *Dispatcher) FetchNews(ctx context.Context, keywords []string) ([]models.Article, []string) {
	var (
		articles = []models.Article{}
		warnings []string
	)
	if d.News == nil {
		return articles, nil
	}

	for _, keyword := range keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" {
			continue
		}

		var found []models.Article
		if d.readCache(ctx, NEWS_CACHE_PREFIX+keyword, &found) {
			monitoring.RecordNews("cache_hit")
			articles = append(articles, found...)
			continue
		}

		found, err := d.News.FetchTrendingArticles(ctx, keyword)
		if err != nil {
			slog.Warn("[Dispatcher] News lookup failed",
				slog.String("keyword", keyword),
				slog.String("error", err.Error()))
			monitoring.RecordNews("error")
			warnings = append(warnings, fmt.Sprintf("News lookup failed for %s: %v", keyword, err))
			continue
		}
		monitoring.RecordNews("ok")

		if len(found) > 0 {
			d.writeCache(ctx, NEWS_CACHE_PREFIX+keyword, found)
		}
		articles = append(articles, found...)
	}

	return articles, warnings
}

func (d *Dispatcher) readCache(ctx context.Context, key string, out any) bool {
	if d.Cache == nil {
		return false
	}
	raw, ok, err := d.Cache.Get(ctx, key)
	if err != nil {
		slog.Warn("[Dispatcher] Cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		slog.Warn("[Dispatcher] Dropping unreadable cache entry", slog.String("key", key))
		return false
	}
	return true
}

func (d *Dispatcher) writeCache(ctx context.Context, key string, value any) {
	if d.Cache == nil || d.CacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := d.Cache.Set(ctx, key, string(raw), d.CacheTTL); err != nil {
		slog.Warn("[Dispatcher] Cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
