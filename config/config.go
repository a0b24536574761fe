package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DEFAULT_GROQ_BASE_URL = "https://api.groq.com/openai/v1"
	DEFAULT_GROQ_MODEL    = "llama-3.3-70b-versatile"
	DEFAULT_NEWS_API_URL  = "https://newsapi.org/v2/everything"

	DEFAULT_LIMIT = 5
	MIN_LIMIT     = 1
	MAX_LIMIT     = 10
)

// ErrMissingKey is returned by Load when a required API key is absent.
var ErrMissingKey = errors.New("missing required API key")

// Config is built once at startup and handed to every component that needs it.
type Config struct {
	GroqAPIKey  string
	GroqBaseURL string
	GroqModel   string

	NewsAPIKey  string
	NewsAPIURL  string
	NewsEnabled bool

	SearchBackend      string
	SearchMode         string
	JinaAPIKey         string
	RedditClientID     string
	RedditClientSecret string

	HTTPTimeout time.Duration
	ListenAddr  string

	ValkeyAddress  string
	ValkeyPassword string
	ValkeyTLS      bool
	CacheTTL       time.Duration

	ReportsTable string
	AWSEndpoint  string
	AWSRegion    string

	KafkaBroker string
	KafkaTopic  string

	SentimentEnabled bool
}

// Load reads the configuration from the environment. It fails when GROQ_API_KEY
// is unset, or when NEWS_API_KEY is unset while news is enabled.
func Load() (*Config, error) {
	cfg := &Config{
		GroqAPIKey:         os.Getenv("GROQ_API_KEY"),
		GroqBaseURL:        getEnv("GROQ_BASE_URL", DEFAULT_GROQ_BASE_URL),
		GroqModel:          getEnv("GROQ_MODEL", DEFAULT_GROQ_MODEL),
		NewsAPIKey:         os.Getenv("NEWS_API_KEY"),
		NewsAPIURL:         getEnv("NEWS_API_URL", DEFAULT_NEWS_API_URL),
		NewsEnabled:        getBool("NEWS_ENABLED", true),
		SearchBackend:      strings.ToLower(getEnv("SEARCH_BACKEND", "duckduckgo")),
		SearchMode:         strings.ToLower(getEnv("SEARCH_MODE", "agent")),
		JinaAPIKey:         os.Getenv("JINA_API_KEY"),
		RedditClientID:     os.Getenv("REDDIT_CLIENT_ID"),
		RedditClientSecret: os.Getenv("REDDIT_CLIENT_SECRET"),
		HTTPTimeout:        time.Duration(getInt("HTTP_TIMEOUT_SECONDS", 60)) * time.Second,
		ListenAddr:         getEnv("LISTEN_ADDR", ":8080"),
		ValkeyAddress:      os.Getenv("VALKEY_INIT_ADDRESS"),
		ValkeyPassword:     os.Getenv("VALKEY_PASSWORD"),
		ValkeyTLS:          getBool("VALKEY_TLS", false),
		CacheTTL:           time.Duration(getInt("CACHE_TTL_SECONDS", 900)) * time.Second,
		ReportsTable:       os.Getenv("REPORTS_TABLE"),
		AWSEndpoint:        os.Getenv("AWS_ENDPOINT"),
		AWSRegion:          getEnv("AWS_REGION", "us-west-2"),
		KafkaBroker:        os.Getenv("KAFKA_BROKER"),
		KafkaTopic:         getEnv("KAFKA_REPORTS_TOPIC", "research.reports"),
		SentimentEnabled:   getBool("SENTIMENT_ENABLED", true),
	}

	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("[Config] GROQ_API_KEY: %w", ErrMissingKey)
	}
	if cfg.NewsEnabled && cfg.NewsAPIKey == "" {
		return nil, fmt.Errorf("[Config] NEWS_API_KEY: %w", ErrMissingKey)
	}

	switch cfg.SearchBackend {
	case "duckduckgo", "jina":
	case "reddit":
		if cfg.RedditClientID == "" || cfg.RedditClientSecret == "" {
			return nil, fmt.Errorf("[Config] reddit search backend needs REDDIT_CLIENT_ID and REDDIT_CLIENT_SECRET: %w", ErrMissingKey)
		}
	default:
		return nil, fmt.Errorf("[Config] unknown SEARCH_BACKEND %q", cfg.SearchBackend)
	}

	switch cfg.SearchMode {
	case "agent", "tool":
	default:
		return nil, fmt.Errorf("[Config] unknown SEARCH_MODE %q", cfg.SearchMode)
	}

	return cfg, nil
}

// ClampLimit bounds a requested result limit to the range the dashboard offers.
// Zero means "not set" and yields the default.
func ClampLimit(limit int) int {
	switch {
	case limit == 0:
		return DEFAULT_LIMIT
	case limit < MIN_LIMIT:
		return MIN_LIMIT
	case limit > MAX_LIMIT:
		return MAX_LIMIT
	}
	return limit
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func getBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}
