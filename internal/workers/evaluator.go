package workers

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"safesignal/internal/domain"
	rds "safesignal/internal/redis"
	"safesignal/pkg/e"
)

type ReportEvaluator interface {
	EvaluateReport(ctx context.Context, event domain.ReportEvent) error
}

// AlertEvaluator fans new-report events out to a fixed worker pool.
type AlertEvaluator struct {
	queue    *rds.EvalQueue
	alerts   ReportEvaluator
	logger   *slog.Logger
	poolSize int
}

func NewAlertEvaluator(queue *rds.EvalQueue, alerts ReportEvaluator, logger *slog.Logger, poolSize int) *AlertEvaluator {
	if poolSize < 1 {
		poolSize = 1
	}
	return &AlertEvaluator{
		queue:    queue,
		alerts:   alerts,
		logger:   logger,
		poolSize: poolSize,
	}
}

func (w *AlertEvaluator) Run(ctx context.Context) {
	var wg sync.WaitGroup

	w.logger.Info("alert evaluator started", slog.Int("pool_size", w.poolSize))

	for i := 0; i < w.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.worker(ctx)
		}()
	}

	wg.Wait()
	w.logger.Info("alert evaluator stopped")
}

func (w *AlertEvaluator) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		event, err := w.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			w.logger.Error("eval queue pop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if err := w.alerts.EvaluateReport(ctx, event); err != nil {
			w.logger.Error("report evaluation failed",
				slog.String("report_id", event.ReportID.String()),
				slog.Any("error", err),
			)
		}
	}
}
