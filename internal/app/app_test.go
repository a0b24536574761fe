package app

import (
	"context"
	"testing"
	"time"

	"github.com/spacesedan/researchflow/config"
	"github.com/spacesedan/researchflow/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MinimalConfig(t *testing.T) {
	cfg := &config.Config{
		GroqAPIKey:       "groq",
		GroqBaseURL:      config.DEFAULT_GROQ_BASE_URL,
		GroqModel:        config.DEFAULT_GROQ_MODEL,
		NewsAPIKey:       "news",
		NewsAPIURL:       config.DEFAULT_NEWS_API_URL,
		NewsEnabled:      true,
		SearchBackend:    "duckduckgo",
		SearchMode:       "agent",
		HTTPTimeout:      time.Minute,
		SentimentEnabled: true,
	}

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	assert.IsType(t, &db.MemoryReportStore{}, a.Store)
	assert.True(t, a.Research.Sentiment)
	assert.Nil(t, a.Research.Publisher)
	assert.NotNil(t, a.Groq)
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New(context.Background(), &config.Config{SearchBackend: "altavista"})
	assert.Error(t, err)
}
