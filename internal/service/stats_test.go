package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"safesignal/internal/domain"
	"safesignal/internal/service"
	mock_service "safesignal/internal/service/mocks"
)

func TestStatsService_GetStats_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockStatsRepository(ctrl)
	reports := mock_service.NewMockReportCounter(ctrl)
	svc := service.NewStatsService(repo, reports)

	repo.EXPECT().CountUniqueDevices(gomock.Any(), 30).Return(int64(12), nil)
	repo.EXPECT().CountTotalChecks(gomock.Any(), 30).Return(int64(47), nil)
	reports.EXPECT().CountSince(gomock.Any(), 30).Return(int64(5), nil)

	stats, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: 30})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.DeviceCount != 12 || stats.TotalChecks != 47 || stats.ReportCount != 5 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.Minutes != 30 {
		t.Fatalf("minutes not echoed: %d", stats.Minutes)
	}
}

func TestStatsService_GetStats_DefaultsToHour(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockStatsRepository(ctrl)
	reports := mock_service.NewMockReportCounter(ctrl)
	svc := service.NewStatsService(repo, reports)

	repo.EXPECT().CountUniqueDevices(gomock.Any(), 60).Return(int64(0), nil)
	repo.EXPECT().CountTotalChecks(gomock.Any(), 60).Return(int64(0), nil)
	reports.EXPECT().CountSince(gomock.Any(), 60).Return(int64(0), nil)

	stats, err := svc.GetStats(context.Background(), domain.StatsRequest{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.Minutes != 60 {
		t.Fatalf("expected default window of 60 minutes, got %d", stats.Minutes)
	}
}

func TestStatsService_GetStats_ErrorPropagated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockStatsRepository(ctrl)
	reports := mock_service.NewMockReportCounter(ctrl)
	svc := service.NewStatsService(repo, reports)

	wantErr := errors.New("db down")
	repo.EXPECT().CountUniqueDevices(gomock.Any(), 60).Return(int64(0), wantErr)

	_, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: 60})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}
