package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"safesignal/internal/config"
	"safesignal/internal/domain"
	"safesignal/internal/redis"
	"safesignal/pkg/e"
)

// AlertSender drains the delivery queue and pushes payloads to the
// configured notification endpoint. With no endpoint configured the
// queue is drained and payloads only logged.
type AlertSender struct {
	logger *slog.Logger
	cfg    config.AlertsConfig
	queue  *redis.DeliveryQueue
	http   *http.Client
}

func NewAlertSender(logger *slog.Logger, cfg config.AlertsConfig, q *redis.DeliveryQueue) *AlertSender {
	return &AlertSender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *AlertSender) Run(ctx context.Context) {
	s.logger.Info("alertSender started", slog.String("url", s.cfg.DeliveryURL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("alertSender stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		payload, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if s.cfg.DeliveryURL == "" {
			s.logger.Info("alert delivery skipped, no endpoint",
				slog.String("alert_id", payload.AlertID.String()))
			continue
		}

		s.logger.Info("sending alert", slog.String("alert_id", payload.AlertID.String()))
		s.sendWithRetry(ctx, payload)
	}
}

func (s *AlertSender) sendWithRetry(ctx context.Context, p domain.AlertPayload) {
	const maxRetries = 3

	body, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("marshal alert payload failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.DeliveryURL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create delivery request failed", slog.String("error", err.Error()))
			return
		}

		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("alert delivery failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.DeliveryURL),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
