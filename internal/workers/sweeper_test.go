package workers

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"
)

type stubExpiringReports struct {
	calls int
}

func (s *stubExpiringReports) ExpireDue(_ context.Context, _ time.Time) (int64, error) {
	s.calls++
	return 2, nil
}

type stubPrunableAlerts struct {
	expiredCalls int
	viewedCalls  int
	cutoff       time.Time
}

func (s *stubPrunableAlerts) PruneExpired(_ context.Context) (int64, error) {
	s.expiredCalls++
	return 1, nil
}

func (s *stubPrunableAlerts) PruneViewed(_ context.Context, olderThan time.Time) (int64, error) {
	s.viewedCalls++
	s.cutoff = olderThan
	return 1, nil
}

func TestSweeper_SweepExpiresAndPrunes(t *testing.T) {
	t.Parallel()

	reports := &stubExpiringReports{}
	alerts := &stubPrunableAlerts{}
	logger := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))

	w := NewSweeper(reports, alerts, logger, time.Minute)
	w.sweep(context.Background())

	if reports.calls != 1 {
		t.Fatalf("ExpireDue called %d times, want 1", reports.calls)
	}
	if alerts.expiredCalls != 1 {
		t.Fatalf("PruneExpired called %d times, want 1", alerts.expiredCalls)
	}
	if alerts.viewedCalls != 1 {
		t.Fatalf("PruneViewed called %d times, want 1", alerts.viewedCalls)
	}

	wantCutoff := time.Now().UTC().Add(-7 * 24 * time.Hour)
	if diff := alerts.cutoff.Sub(wantCutoff); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("viewed-alert cutoff %s too far from %s", alerts.cutoff, wantCutoff)
	}
}
