package public

import (
	"context"
	"log/slog"

	"safesignal/internal/domain"
	"safesignal/internal/geocode"

	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ReportsAPI interface {
	Create(ctx context.Context, req domain.CreateReportRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]*domain.Report, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	CheckLocation(ctx context.Context, req domain.LocationCheckRequest) (domain.LocationCheckResponse, error)
}

type FavoritesAPI interface {
	Create(ctx context.Context, req domain.CreateFavoriteRequest) (*domain.FavoritePlace, error)
	List(ctx context.Context, deviceID uuid.UUID) ([]*domain.FavoritePlace, error)
	Get(ctx context.Context, id, deviceID uuid.UUID) (*domain.FavoritePlace, error)
	Update(ctx context.Context, id, deviceID uuid.UUID, req domain.UpdateFavoriteRequest) (*domain.FavoritePlace, error)
	Delete(ctx context.Context, id, deviceID uuid.UUID) error
}

type AlertsAPI interface {
	List(ctx context.Context, deviceID uuid.UUID) (domain.ListAlertsResponse, error)
	MarkViewed(ctx context.Context, id, deviceID uuid.UUID) error
}

type SettingsAPI interface {
	Get(ctx context.Context, deviceID uuid.UUID) (*domain.DeviceSettings, error)
	Update(ctx context.Context, deviceID uuid.UUID, req domain.UpdateSettingsRequest) (*domain.DeviceSettings, error)
}

type Handler struct {
	logger    *slog.Logger
	Reports   ReportsAPI
	Favorites FavoritesAPI
	Alerts    AlertsAPI
	Settings  SettingsAPI
	Geocoder  geocode.Service
}

func NewHandler(
	logger *slog.Logger,
	reports ReportsAPI,
	favorites FavoritesAPI,
	alerts AlertsAPI,
	settings SettingsAPI,
	geocoder geocode.Service,
) *Handler {
	return &Handler{
		logger:    logger,
		Reports:   reports,
		Favorites: favorites,
		Alerts:    alerts,
		Settings:  settings,
		Geocoder:  geocoder,
	}
}
