package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spacesedan/researchflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAgent struct {
	responses map[string]models.AgentResponse
	failures  map[string]error
	calls     []string
}

func (f *fakeAgent) Run(_ context.Context, keyword string) (models.AgentResponse, error) {
	f.calls = append(f.calls, keyword)
	if err := f.failures[keyword]; err != nil {
		return models.AgentResponse{}, err
	}
	return f.responses[keyword], nil
}

type fakeNews struct {
	articles map[string][]models.Article
	err      error
	calls    int
}

func (f *fakeNews) FetchTrendingArticles(_ context.Context, keyword string) ([]models.Article, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.articles[keyword], nil
}

type memoryCache struct {
	values map[string]string
	ttl    time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string]string{}}
}

func (m *memoryCache) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.values[key] = value
	m.ttl = ttl
	return nil
}

func items(n int) []models.ResultItem {
	out := make([]models.ResultItem, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.NewResultItem("t", "l", "s"))
	}
	return out
}

func TestDispatch_PlainTextAnswer(t *testing.T) {
	agent := &fakeAgent{responses: map[string]models.AgentResponse{
		"electric vehicles": models.TextResponse("EVs are growing fast."),
	}}
	d := &Dispatcher{Agent: agent}

	results, warnings := d.Dispatch(context.Background(), []string{"electric vehicles"}, 5)
	assert.Empty(t, warnings)
	assert.Equal(t, []models.SearchResult{{
		Title:   "Search Result",
		Link:    "",
		Snippet: "EVs are growing fast.",
	}}, results)
}

func TestDispatch_TruncatesPerKeywordAndKeepsOrder(t *testing.T) {
	agent := &fakeAgent{responses: map[string]models.AgentResponse{
		"a": models.ListResponse(items(4)),
		"b": models.KeyedResponse(items(1)),
	}}
	d := &Dispatcher{Agent: agent}

	results, _ := d.Dispatch(context.Background(), []string{"a", "b"}, 2)
	assert.Len(t, results, 3)
	assert.Equal(t, []string{"a", "b"}, agent.calls)
}

func TestDispatch_FailureIsIsolatedToItsKeyword(t *testing.T) {
	agent := &fakeAgent{
		responses: map[string]models.AgentResponse{"good": models.ListResponse(items(1))},
		failures:  map[string]error{"bad": errors.New("timeout")},
	}
	d := &Dispatcher{Agent: agent}

	results, warnings := d.Dispatch(context.Background(), []string{"bad", "good"}, 5)
	assert.Len(t, results, 1)
	require.Len(t, warnings, 1)
	assert.Equal(t, "Search failed for bad: timeout", warnings[0])
}

func TestDispatch_SkipsBlankKeywords(t *testing.T) {
	agent := &fakeAgent{responses: map[string]models.AgentResponse{"x": models.TextResponse("y")}}
	d := &Dispatcher{Agent: agent}

	results, _ := d.Dispatch(context.Background(), []string{"  ", " x "}, 5)
	assert.Len(t, results, 1)
	assert.Equal(t, []string{"x"}, agent.calls)
}

func TestDispatch_NoKeywordsYieldsEmpty(t *testing.T) {
	d := &Dispatcher{Agent: &fakeAgent{}}
	results, warnings := d.Dispatch(context.Background(), nil, 5)
	assert.NotNil(t, results)
	assert.Empty(t, results)
	assert.Empty(t, warnings)
}

func TestDispatch_UsesCache(t *testing.T) {
	agent := &fakeAgent{responses: map[string]models.AgentResponse{"ev": models.ListResponse(items(2))}}
	cache := newMemoryCache()
	d := &Dispatcher{Agent: agent, Cache: cache, CacheTTL: time.Minute}

	first, _ := d.Dispatch(context.Background(), []string{"ev"}, 5)
	second, _ := d.Dispatch(context.Background(), []string{"ev"}, 5)

	assert.Equal(t, first, second)
	assert.Len(t, agent.calls, 1)
	assert.Contains(t, cache.values, SEARCH_CACHE_PREFIX+"ev")
	assert.Equal(t, time.Minute, cache.ttl)
}

func TestFetchNews_ConcatenatesInKeywordOrder(t *testing.T) {
	news := &fakeNews{articles: map[string][]models.Article{
		"a": {{Title: "a1"}, {Title: "a2"}},
		"b": {{Title: "b1"}},
	}}
	d := &Dispatcher{News: news}

	articles, warnings := d.FetchNews(context.Background(), []string{"a", "b"})
	assert.Empty(t, warnings)
	require.Len(t, articles, 3)
	assert.Equal(t, "a1", articles[0].Title)
	assert.Equal(t, "b1", articles[2].Title)
}

func TestFetchNews_ErrorBecomesWarning(t *testing.T) {
	d := &Dispatcher{News: &fakeNews{err: errors.New("connection refused")}}

	articles, warnings := d.FetchNews(context.Background(), []string{"a"})
	assert.Empty(t, articles)
	assert.Equal(t, []string{"News lookup failed for a: connection refused"}, warnings)
}

func TestFetchNews_DisabledWithoutClient(t *testing.T) {
	articles, warnings := (&Dispatcher{}).FetchNews(context.Background(), []string{"a"})
	assert.Empty(t, articles)
	assert.Empty(t, warnings)
}

func TestFetchNews_UsesCache(t *testing.T) {
	news := &fakeNews{articles: map[string][]models.Article{"a": {{Title: "a1"}}}}
	d := &Dispatcher{News: news, Cache: newMemoryCache(), CacheTTL: time.Minute}

	_, _ = d.FetchNews(context.Background(), []string{"a"})
	articles, _ := d.FetchNews(context.Background(), []string{"a"})
	assert.Equal(t, 1, news.calls)
	assert.Equal(t, "a1", articles[0].Title)
}

func TestParseKeywords(t *testing.T) {
	keywords, err := ParseKeywords("AI in healthcare\n\n  electric vehicles  \n")
	require.NoError(t, err)
	assert.Equal(t, []string{"AI in healthcare", "electric vehicles"}, keywords)

	_, err = ParseKeywords(" \n\t\n")
	assert.ErrorIs(t, err, ErrNoKeywords)

	_, err = CleanKeywords([]string{"", " "})
	assert.ErrorIs(t, err, ErrNoKeywords)
}
