package service

import (
	"context"

	"safesignal/internal/domain"
)

//go:generate mockgen -source=stats.go -destination=mocks/mock_stats.go
type StatsRepository interface {
	CountUniqueDevices(ctx context.Context, minutes int) (int64, error)
	CountTotalChecks(ctx context.Context, minutes int) (int64, error)
}

type ReportCounter interface {
	CountSince(ctx context.Context, minutes int) (int64, error)
}

type statsService struct {
	repo    StatsRepository
	reports ReportCounter
}

func NewStatsService(repo StatsRepository, reports ReportCounter) StatsService {
	return &statsService{repo: repo, reports: reports}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.UsageStats, error) {
	minutes := req.Minutes
	if minutes == 0 {
		minutes = 60
	}

	unique, err := s.repo.CountUniqueDevices(ctx, minutes)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountTotalChecks(ctx, minutes)
	if err != nil {
		return nil, err
	}

	reports, err := s.reports.CountSince(ctx, minutes)
	if err != nil {
		return nil, err
	}

	return &domain.UsageStats{
		DeviceCount: unique,
		TotalChecks: total,
		ReportCount: reports,
		Minutes:     minutes,
	}, nil
}
