package service

import (
	"context"

	"safesignal/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type ReportService interface {
	Create(ctx context.Context, req domain.CreateReportRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]*domain.Report, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	CheckLocation(ctx context.Context, req domain.LocationCheckRequest) (domain.LocationCheckResponse, error)
	ForceExpire(ctx context.Context, id uuid.UUID) error
}

type FavoriteService interface {
	Create(ctx context.Context, req domain.CreateFavoriteRequest) (*domain.FavoritePlace, error)
	List(ctx context.Context, deviceID uuid.UUID) ([]*domain.FavoritePlace, error)
	Get(ctx context.Context, id, deviceID uuid.UUID) (*domain.FavoritePlace, error)
	Update(ctx context.Context, id, deviceID uuid.UUID, req domain.UpdateFavoriteRequest) (*domain.FavoritePlace, error)
	Delete(ctx context.Context, id, deviceID uuid.UUID) error
}

type AlertService interface {
	List(ctx context.Context, deviceID uuid.UUID) (domain.ListAlertsResponse, error)
	MarkViewed(ctx context.Context, id, deviceID uuid.UUID) error
	EvaluateReport(ctx context.Context, event domain.ReportEvent) error
}

type SettingsService interface {
	Get(ctx context.Context, deviceID uuid.UUID) (*domain.DeviceSettings, error)
	Update(ctx context.Context, deviceID uuid.UUID, req domain.UpdateSettingsRequest) (*domain.DeviceSettings, error)
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.UsageStats, error)
}

type Service struct {
	ReportService   ReportService
	FavoriteService FavoriteService
	AlertService    AlertService
	SettingsService SettingsService
	StatsService    StatsService
}

func NewService(
	reportService ReportService,
	favoriteService FavoriteService,
	alertService AlertService,
	settingsService SettingsService,
	statsService StatsService,
) *Service {
	return &Service{
		ReportService:   reportService,
		FavoriteService: favoriteService,
		AlertService:    alertService,
		SettingsService: settingsService,
		StatsService:    statsService,
	}
}
