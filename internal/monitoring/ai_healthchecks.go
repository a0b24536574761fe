package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

const HEALTHCHECK_TIMER = 15

// HealthChecker is anything that can report whether the model endpoint answers.
type HealthChecker interface {
	HealthCheck(ctx context.Context) bool
}

// MonitorModelHealth polls checker until ctx is done and publishes the result
// to healthy and the model_healthy gauge.
func MonitorModelHealth(ctx context.Context, checker HealthChecker, healthy *atomic.Bool) {
	monitorModelHealth(ctx, checker, healthy, time.Second*HEALTHCHECK_TIMER)
}

func monitorModelHealth(ctx context.Context, checker HealthChecker, healthy *atomic.Bool, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	check := func() {
		isHealthy := checker.HealthCheck(ctx)
		healthy.Store(isHealthy)
		SetModelHealthy(isHealthy)
		if !isHealthy {
			slog.Warn("[HealthCheck] Generation model is unhealthy")
		}
	}

	check()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}
