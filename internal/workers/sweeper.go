package workers

import (
	"context"
	"log/slog"
	"time"
)

type ExpiringReports interface {
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}

type PrunableAlerts interface {
	PruneExpired(ctx context.Context) (int64, error)
	PruneViewed(ctx context.Context, olderThan time.Time) (int64, error)
}

// Sweeper periodically expires past-TTL reports, deletes the alerts
// those reports raised, and prunes old viewed alerts. Expiry drives
// the implicit cleanup the clients rely on.
type Sweeper struct {
	reports        ExpiringReports
	alerts         PrunableAlerts
	logger         *slog.Logger
	interval       time.Duration
	alertRetention time.Duration
}

func NewSweeper(reports ExpiringReports, alerts PrunableAlerts, logger *slog.Logger, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Sweeper{
		reports:        reports,
		alerts:         alerts,
		logger:         logger,
		interval:       interval,
		alertRetention: 7 * 24 * time.Hour,
	}
}

func (w *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("sweeper started", slog.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("sweeper stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *Sweeper) sweep(ctx context.Context) {
	now := time.Now().UTC()

	expired, err := w.reports.ExpireDue(ctx, now)
	if err != nil {
		w.logger.Error("report expiry sweep failed", slog.Any("error", err))
	} else if expired > 0 {
		w.logger.Info("reports expired", slog.Int64("count", expired))
	}

	dropped, err := w.alerts.PruneExpired(ctx)
	if err != nil {
		w.logger.Error("expired alert prune failed", slog.Any("error", err))
	} else if dropped > 0 {
		w.logger.Info("expired report alerts pruned", slog.Int64("count", dropped))
	}

	pruned, err := w.alerts.PruneViewed(ctx, now.Add(-w.alertRetention))
	if err != nil {
		w.logger.Error("alert prune failed", slog.Any("error", err))
	} else if pruned > 0 {
		w.logger.Info("viewed alerts pruned", slog.Int64("count", pruned))
	}
}
