package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const NAMESPACE = "researchflow"

var (
	ResearchRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: NAMESPACE,
			Name:      "research_runs_total",
			Help:      "Total number of research runs",
		},
		[]string{"status"},
	)

	ResearchRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: NAMESPACE,
			Name:      "research_run_duration_seconds",
			Help:      "Duration of research runs in seconds",
			Buckets:   []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	// SearchRequestsTotal counts search agent runs by outcome (ok, error, cache_hit).
	SearchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: NAMESPACE,
			Name:      "search_requests_total",
			Help:      "Total number of search agent runs",
		},
		[]string{"status"},
	)

	NewsRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: NAMESPACE,
			Name:      "news_requests_total",
			Help:      "Total number of news API lookups",
		},
		[]string{"status"},
	)

	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: NAMESPACE,
			Name:      "generations_total",
			Help:      "Total number of generation calls",
		},
		[]string{"kind", "status"},
	)

	ExtractionMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: NAMESPACE,
			Name:      "extraction_misses_total",
			Help:      "Sections replaced by a placeholder because their header was missing",
		},
	)

	ModelHealthy = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: NAMESPACE,
			Name:      "model_healthy",
			Help:      "Generation model status (1 = healthy, 0 = unhealthy)",
		},
	)
)

func RecordRun(status string, duration time.Duration) {
	ResearchRunsTotal.WithLabelValues(status).Inc()
	ResearchRunDuration.Observe(duration.Seconds())
}

func RecordSearch(status string) {
	SearchRequestsTotal.WithLabelValues(status).Inc()
}

func RecordNews(status string) {
	NewsRequestsTotal.WithLabelValues(status).Inc()
}

func RecordGeneration(kind, status string) {
	GenerationsTotal.WithLabelValues(kind, status).Inc()
}

func RecordExtractionMisses(n int) {
	if n > 0 {
		ExtractionMissesTotal.Add(float64(n))
	}
}

func SetModelHealthy(healthy bool) {
	if healthy {
		ModelHealthy.Set(1)
		return
	}
	ModelHealthy.Set(0)
}
