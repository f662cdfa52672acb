package service

import (
	"context"
	"log/slog"
	"time"

	"safesignal/internal/domain"
	rds "safesignal/internal/redis"
	"safesignal/pkg/e"
	"safesignal/pkg/geo"

	"github.com/google/uuid"
)

//go:generate mockgen -source=alerts.go -destination=mocks/mock_alerts.go
type AlertRepository interface {
	Insert(ctx context.Context, alert *domain.Alert) error
	ListByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]domain.Alert, error)
	MarkViewed(ctx context.Context, id, deviceID uuid.UUID) error
	HasUnviewed(ctx context.Context, deviceID uuid.UUID) (bool, error)
}

type AlertableFavorites interface {
	ListAlertable(ctx context.Context) ([]*domain.FavoritePlace, error)
}

type DeviceLocations interface {
	All(ctx context.Context) ([]rds.DeviceLocation, error)
}

type DeliveryQueue interface {
	Enqueue(ctx context.Context, payload domain.AlertPayload) error
}

type alertService struct {
	repo      AlertRepository
	favorites AlertableFavorites
	locations DeviceLocations
	settings  SettingsService
	delivery  DeliveryQueue
	dedup     *Deduplicator
	logger    *slog.Logger

	// fallback radius for devices whose settings cannot be read
	deviceRadiusM float64
}

func NewAlertService(
	repo AlertRepository,
	favorites AlertableFavorites,
	locations DeviceLocations,
	settings SettingsService,
	delivery DeliveryQueue,
	dedup *Deduplicator,
	logger *slog.Logger,
) AlertService {
	return &alertService{
		repo:          repo,
		favorites:     favorites,
		locations:     locations,
		settings:      settings,
		delivery:      delivery,
		dedup:         dedup,
		logger:        logger,
		deviceRadiusM: domain.DefaultAlertDistanceMeters,
	}
}

func (s *alertService) List(ctx context.Context, deviceID uuid.UUID) (domain.ListAlertsResponse, error) {
	if deviceID == uuid.Nil {
		return domain.ListAlertsResponse{}, e.ErrInvalidDeviceID
	}

	alerts, err := s.repo.ListByDevice(ctx, deviceID, 50)
	if err != nil {
		return domain.ListAlertsResponse{}, err
	}
	for i := range alerts {
		alerts[i].Distance = geo.FormatDistance(alerts[i].DistanceMeters)
	}

	unviewed, err := s.repo.HasUnviewed(ctx, deviceID)
	if err != nil {
		return domain.ListAlertsResponse{}, err
	}

	return domain.ListAlertsResponse{Alerts: alerts, HasUnviewed: unviewed}, nil
}

func (s *alertService) MarkViewed(ctx context.Context, id, deviceID uuid.UUID) error {
	return s.repo.MarkViewed(ctx, id, deviceID)
}

// EvaluateReport raises alerts for every favorite place and every
// recently seen device that a new report landed near. One alert per
// (report, target) pair; duplicates are dropped by the TTL cache.
func (s *alertService) EvaluateReport(ctx context.Context, event domain.ReportEvent) error {
	s.logger.Debug("evaluating report",
		slog.String("report_id", event.ReportID.String()),
		slog.String("category", string(event.Category)),
	)

	if err := s.evaluateFavorites(ctx, event); err != nil {
		return err
	}
	return s.evaluateDevices(ctx, event)
}

func (s *alertService) evaluateFavorites(ctx context.Context, event domain.ReportEvent) error {
	// favorites only listen for safety reports
	if event.Category != domain.CategorySafety {
		return nil
	}

	favorites, err := s.favorites.ListAlertable(ctx)
	if err != nil {
		return err
	}

	for _, fav := range favorites {
		if fav.DeviceID == event.DeviceID {
			continue // no alert for the reporter's own favorites
		}

		dist := geo.DistanceMeters(event.Lat, event.Lng, fav.Lat, fav.Lng)
		if dist > fav.AlertDistanceM {
			continue
		}
		if !s.dedup.Record("favorite", event.ReportID.String(), fav.ID.String()) {
			continue
		}

		favID := fav.ID
		alert := &domain.Alert{
			ID:             uuid.New(),
			DeviceID:       fav.DeviceID,
			ReportID:       event.ReportID,
			FavoriteID:     &favID,
			FavoriteName:   fav.Name,
			DistanceMeters: dist,
			BypassSilent:   s.shouldBypassSilent(ctx, fav.DeviceID, dist),
			CreatedAt:      time.Now().UTC(),
		}

		s.raise(ctx, alert)
	}

	return nil
}

func (s *alertService) evaluateDevices(ctx context.Context, event domain.ReportEvent) error {
	locations, err := s.locations.All(ctx)
	if err != nil {
		return err
	}

	for _, loc := range locations {
		deviceID, err := uuid.Parse(loc.DeviceID)
		if err != nil || deviceID == event.DeviceID {
			continue
		}

		dist := geo.DistanceMeters(event.Lat, event.Lng, loc.Lat, loc.Lng)

		settings, err := s.settings.Get(ctx, deviceID)
		if err != nil {
			s.logger.Warn("settings lookup failed", slog.String("device_id", deviceID.String()), slog.Any("error", err))
			settings = nil
		}

		radius := s.deviceRadiusM
		if settings != nil && settings.AlertRadiusM > 0 {
			radius = settings.AlertRadiusM
		}
		if dist > radius {
			continue
		}
		if !s.dedup.Record("device", event.ReportID.String(), loc.DeviceID) {
			continue
		}

		bypass := settings != nil && settings.EmergencyBypassSilent && dist <= settings.EmergencyOverrideDistanceM

		alert := &domain.Alert{
			ID:             uuid.New(),
			DeviceID:       deviceID,
			ReportID:       event.ReportID,
			DistanceMeters: dist,
			BypassSilent:   bypass,
			CreatedAt:      time.Now().UTC(),
		}

		s.raise(ctx, alert)
	}

	return nil
}

// shouldBypassSilent applies the emergency override: bypass only when
// the device opted in and the report is inside the override distance.
func (s *alertService) shouldBypassSilent(ctx context.Context, deviceID uuid.UUID, dist float64) bool {
	settings, err := s.settings.Get(ctx, deviceID)
	if err != nil {
		s.logger.Warn("settings lookup failed", slog.String("device_id", deviceID.String()), slog.Any("error", err))
		return false
	}
	return settings.EmergencyBypassSilent && dist <= settings.EmergencyOverrideDistanceM
}

func (s *alertService) raise(ctx context.Context, alert *domain.Alert) {
	if err := s.repo.Insert(ctx, alert); err != nil {
		s.logger.Error("alert insert failed",
			slog.String("report_id", alert.ReportID.String()),
			slog.Any("error", err),
		)
		return
	}

	payload := domain.AlertPayload{
		AlertID:        alert.ID,
		DeviceID:       alert.DeviceID,
		ReportID:       alert.ReportID,
		FavoriteID:     alert.FavoriteID,
		FavoriteName:   alert.FavoriteName,
		DistanceMeters: alert.DistanceMeters,
		BypassSilent:   alert.BypassSilent,
		CreatedAt:      alert.CreatedAt,
	}
	if err := s.delivery.Enqueue(ctx, payload); err != nil {
		s.logger.Error("alert enqueue failed", slog.Any("error", err))
		return
	}

	s.logger.Info("alert raised",
		slog.String("alert_id", alert.ID.String()),
		slog.String("device_id", alert.DeviceID.String()),
		slog.Float64("distance_m", alert.DistanceMeters),
		slog.Bool("bypass_silent", alert.BypassSilent),
	)
}
