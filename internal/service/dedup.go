package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const dedupCleanupInterval = 10 * time.Minute

// Deduplicator remembers (report, target) pairs so the evaluator never
// raises the same alert twice within the TTL window.
type Deduplicator struct {
	logger *slog.Logger
	ttl    time.Duration
	seen   map[string]time.Time
	mu     sync.Mutex
}

func NewDeduplicator(ttl time.Duration, logger *slog.Logger) *Deduplicator {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Deduplicator{
		logger: logger,
		ttl:    ttl,
		seen:   make(map[string]time.Time),
	}
}

// Record atomically checks and marks a pair. Returns true when the pair
// is new.
func (d *Deduplicator) Record(kind, reportID, targetID string) bool {
	key := fmt.Sprintf("%s:%s:%s", kind, reportID, targetID)

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.seen[key]; exists {
		return false
	}
	d.seen[key] = time.Now()
	return true
}

// Run cleans up expired entries until the context is cancelled.
func (d *Deduplicator) Run(ctx context.Context) {
	ticker := time.NewTicker(dedupCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.cleanup()
		}
	}
}

func (d *Deduplicator) cleanup() {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	expired := 0
	for key, seenAt := range d.seen {
		if now.Sub(seenAt) > d.ttl {
			delete(d.seen, key)
			expired++
		}
	}

	if expired > 0 {
		d.logger.Debug("dedup cache cleaned",
			slog.Int("expired", expired),
			slog.Int("remaining", len(d.seen)),
		)
	}
}
