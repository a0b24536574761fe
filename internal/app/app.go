// Package app assembles the research pipeline from configuration. Optional
// infrastructure (cache, archive table, report topic) is only connected when
// configured.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spacesedan/researchflow/config"
	"github.com/spacesedan/researchflow/internal/clients"
	"github.com/spacesedan/researchflow/internal/clients/kafka_client"
	"github.com/spacesedan/researchflow/internal/db"
	"github.com/spacesedan/researchflow/internal/dispatch"
	"github.com/spacesedan/researchflow/internal/generation"
	"github.com/spacesedan/researchflow/internal/research"
	"github.com/spacesedan/researchflow/internal/search"
)

type App struct {
	Config   *config.Config
	Groq     *clients.GroqClient
	Research *research.Service
	Store    db.ReportStore

	closers []func()
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	a.Groq = clients.NewGroqClient(cfg)

	backend, err := search.NewBackend(cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("[App] Search configured",
		slog.String("backend", backend.Name()),
		slog.String("mode", cfg.SearchMode))

	dispatcher := &dispatch.Dispatcher{
		Agent:    search.NewAgent(cfg, backend, a.Groq),
		CacheTTL: cfg.CacheTTL,
	}
	if cfg.NewsEnabled {
		dispatcher.News = clients.NewNewsAPIClient(cfg)
	}
	if cfg.ValkeyAddress != "" {
		cache, err := clients.NewValkeyClient(cfg)
		if err != nil {
			slog.Warn("[App] Continuing without cache", slog.String("error", err.Error()))
		} else {
			dispatcher.Cache = cache
			a.closers = append(a.closers, cache.Close)
		}
	}

	if cfg.ReportsTable != "" {
		client, err := clients.NewDynamoDBClient(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("[App] report archive: %w", err)
		}
		a.Store = db.NewDynamoReportStore(client, cfg.ReportsTable)
	} else {
		a.Store = db.NewMemoryReportStore()
	}

	a.Research = research.NewService(dispatcher, generation.NewService(a.Groq), a.Store)
	a.Research.Sentiment = cfg.SentimentEnabled

	if cfg.KafkaBroker != "" {
		producer, err := kafka_client.NewReportProducer(kafka_client.GetKafkaConfig(cfg))
		if err != nil {
			slog.Warn("[App] Continuing without report publishing", slog.String("error", err.Error()))
		} else {
			a.Research.Publisher = producer
			a.closers = append(a.closers, producer.Close)
		}
	}

	return a, nil
}

// Close releases connections in reverse order of creation.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
