package workers

import (
	"context"
	"log/slog"
	"time"

	"safesignal/internal/domain"
	rds "safesignal/internal/redis"
)

type ActiveReportSource interface {
	ListActive(ctx context.Context) ([]domain.CachedReport, error)
}

// CacheRefresher keeps the active-report cache warm so location checks
// rarely hit the database.
type CacheRefresher struct {
	source   ActiveReportSource
	cache    rds.ReportCacheService
	logger   *slog.Logger
	interval time.Duration
	ttl      time.Duration
}

func NewCacheRefresher(source ActiveReportSource, cache rds.ReportCacheService, logger *slog.Logger, interval, ttl time.Duration) *CacheRefresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &CacheRefresher{
		source:   source,
		cache:    cache,
		logger:   logger,
		interval: interval,
		ttl:      ttl,
	}
}

func (w *CacheRefresher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("cache refresher started", slog.Duration("interval", w.interval))

	// warm the cache before the first tick
	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("cache refresher stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *CacheRefresher) refresh(ctx context.Context) {
	reports, err := w.source.ListActive(ctx)
	if err != nil {
		w.logger.Error("active report fetch failed", slog.Any("error", err))
		return
	}

	if err := w.cache.SetActive(ctx, reports, w.ttl); err != nil {
		w.logger.Error("cache write failed", slog.Any("error", err))
		return
	}

	w.logger.Debug("report cache refreshed", slog.Int("count", len(reports)))
}
