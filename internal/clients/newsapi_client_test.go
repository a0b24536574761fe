package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spacesedan/researchflow/config"
	"github.com/spacesedan/researchflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNewsClient(t *testing.T, handler http.HandlerFunc) *NewsAPIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewNewsAPIClient(&config.Config{
		NewsAPIKey:  "test-key",
		NewsAPIURL:  srv.URL + "/v2/everything",
		HTTPTimeout: 5 * time.Second,
	})
}

func TestFetchTrendingArticles_SendsQueryParameters(t *testing.T) {
	client := newTestNewsClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/everything", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "electric vehicles", q.Get("q"))
		assert.Equal(t, "popularity", q.Get("sortBy"))
		assert.Equal(t, "test-key", q.Get("apiKey"))
		assert.Equal(t, "en", q.Get("language"))
		assert.Equal(t, "5", q.Get("pageSize"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","totalResults":2,"articles":[
			{"title":"EV sales soar","description":"Record quarter","content":"Full text","url":"https://news.example/1"},
			{"title":"Battery breakthrough","description":null,"content":null,"url":"https://news.example/2"}
		]}`))
	})

	articles, err := client.FetchTrendingArticles(context.Background(), "electric vehicles")
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, models.Article{
		Title:       "EV sales soar",
		Description: "Record quarter",
		Content:     "Full text",
		URL:         "https://news.example/1",
	}, articles[0])
	assert.Equal(t, "", articles[1].Description)
	assert.Equal(t, "", articles[1].Content)
}

func TestFetchTrendingArticles_NonOKYieldsNoArticles(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusTeapot} {
		client := newTestNewsClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"nope"}`))
		})

		articles, err := client.FetchTrendingArticles(context.Background(), "ev")
		assert.NoError(t, err, "status %d", status)
		assert.NotNil(t, articles)
		assert.Empty(t, articles, "status %d", status)
	}
}

func TestFetchTrendingArticles_MalformedJSON(t *testing.T) {
	client := newTestNewsClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"articles": [`))
	})

	_, err := client.FetchTrendingArticles(context.Background(), "ev")
	assert.Error(t, err)
}

func TestFetchTrendingArticles_MissingKey(t *testing.T) {
	client := &NewsAPIClient{Client: http.DefaultClient, Endpoint: "http://127.0.0.1:1"}

	_, err := client.FetchTrendingArticles(context.Background(), "ev")
	assert.Error(t, err)
}
