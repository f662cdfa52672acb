package service

import (
	"context"
	"log/slog"
	"time"

	"safesignal/internal/domain"
	rds "safesignal/internal/redis"
	"safesignal/pkg/e"
	"safesignal/pkg/geo"
	"safesignal/pkg/validator"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reports.go -destination=mocks/mock_reports.go
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report, photo []byte) error
	List(ctx context.Context, page, limit int) ([]*domain.Report, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	FindNearby(ctx context.Context, lat, lng, radiusM float64) ([]domain.NearbyReport, error)
	ForceExpire(ctx context.Context, id uuid.UUID) error
}

type StatsRecorder interface {
	SaveCheck(ctx context.Context, check *domain.LocationCheck) error
}

type EvalQueue interface {
	Enqueue(ctx context.Context, event domain.ReportEvent) error
}

type LocationStore interface {
	Set(ctx context.Context, loc rds.DeviceLocation) error
}

type reportService struct {
	repo          ReportRepository
	cache         rds.ReportCacheService
	evalQueue     EvalQueue
	locations     LocationStore
	stats         StatsRecorder
	settings      SettingsService
	logger        *slog.Logger
	expireAfter   time.Duration
	nearbyRadiusM float64
}

func NewReportService(
	repo ReportRepository,
	cache rds.ReportCacheService,
	evalQueue EvalQueue,
	locations LocationStore,
	stats StatsRecorder,
	settings SettingsService,
	logger *slog.Logger,
	expireAfter time.Duration,
	nearbyRadiusM float64,
) ReportService {
	if expireAfter <= 0 {
		expireAfter = 4 * time.Hour
	}
	if nearbyRadiusM <= 0 {
		nearbyRadiusM = domain.DefaultAlertDistanceMeters
	}
	return &reportService{
		repo:          repo,
		cache:         cache,
		evalQueue:     evalQueue,
		locations:     locations,
		stats:         stats,
		settings:      settings,
		logger:        logger,
		expireAfter:   expireAfter,
		nearbyRadiusM: nearbyRadiusM,
	}
}

func (s *reportService) Create(ctx context.Context, req domain.CreateReportRequest) (uuid.UUID, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return uuid.Nil, e.Wrap("invalid report", e.ErrInvalidInput)
	}

	deviceID, err := uuid.Parse(req.DeviceID)
	if err != nil {
		return uuid.Nil, e.ErrInvalidDeviceID
	}

	now := time.Now().UTC()
	report := &domain.Report{
		ID:        uuid.New(),
		DeviceID:  deviceID,
		Lat:       req.Lat,
		Lng:       req.Lng,
		Text:      req.Text,
		Language:  defaultLanguage(req.Language),
		Category:  req.Category,
		Status:    domain.ReportActive,
		CreatedAt: now,
		ExpiresAt: now.Add(s.expireAfter),
	}

	if err := s.repo.Create(ctx, report, req.Photo); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("report created",
		slog.String("id", report.ID.String()),
		slog.String("category", string(report.Category)),
		slog.Bool("has_photo", report.HasPhoto),
	)

	event := domain.ReportEvent{
		ReportID:  report.ID,
		DeviceID:  report.DeviceID,
		Lat:       report.Lat,
		Lng:       report.Lng,
		Category:  report.Category,
		CreatedAt: report.CreatedAt,
	}
	if err := s.evalQueue.Enqueue(ctx, event); err != nil {
		// the report exists either way; alerting is best effort
		s.logger.Error("enqueue report event failed", slog.Any("error", err))
	}

	s.markFirstReport(ctx, deviceID)

	return report.ID, nil
}

// markFirstReport flips the one-time first_report_created flag the
// client uses to stop showing the tutorial.
func (s *reportService) markFirstReport(ctx context.Context, deviceID uuid.UUID) {
	settings, err := s.settings.Get(ctx, deviceID)
	if err != nil {
		s.logger.Warn("settings lookup failed", slog.Any("error", err))
		return
	}
	if settings.FirstReportCreated {
		return
	}
	created := true
	if _, err := s.settings.Update(ctx, deviceID, domain.UpdateSettingsRequest{FirstReportCreated: &created}); err != nil {
		s.logger.Warn("settings update failed", slog.Any("error", err))
	}
}

func (s *reportService) List(ctx context.Context, page, limit int) ([]*domain.Report, int64, error) {
	return s.repo.List(ctx, page, limit)
}

func (s *reportService) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	return s.repo.Get(ctx, id)
}

func (s *reportService) ForceExpire(ctx context.Context, id uuid.UUID) error {
	return s.repo.ForceExpire(ctx, id)
}

func (s *reportService) CheckLocation(ctx context.Context, req domain.LocationCheckRequest) (domain.LocationCheckResponse, error) {
	if !geo.ValidCoordinates(req.Lat, req.Lng) {
		s.logger.Warn("invalid coordinates",
			slog.String("device_id", req.DeviceID),
			slog.Float64("lat", req.Lat),
			slog.Float64("lng", req.Lng),
		)
		return domain.LocationCheckResponse{}, e.ErrInvalidCoordinates
	}

	deviceID, err := uuid.Parse(req.DeviceID)
	if err != nil {
		return domain.LocationCheckResponse{}, e.ErrInvalidDeviceID
	}

	nearby, err := s.nearbyReports(ctx, req.Lat, req.Lng)
	if err != nil {
		return domain.LocationCheckResponse{}, err
	}

	// remember where this device is so the evaluator can alert it
	if err := s.locations.Set(ctx, rds.DeviceLocation{
		DeviceID:  deviceID.String(),
		Lat:       req.Lat,
		Lng:       req.Lng,
		UpdatedAt: time.Now().UTC(),
	}); err != nil {
		s.logger.Warn("device location store failed", slog.Any("error", err))
	}

	ids := make([]uuid.UUID, 0, len(nearby))
	for _, r := range nearby {
		ids = append(ids, r.ID)
	}
	if err := s.stats.SaveCheck(ctx, &domain.LocationCheck{
		DeviceID:  deviceID,
		Lat:       req.Lat,
		Lng:       req.Lng,
		ReportIDs: ids,
	}); err != nil {
		s.logger.Warn("save location check failed", slog.Any("error", err))
	}

	s.logger.Debug("location check done", slog.Int("nearby", len(nearby)))

	return domain.LocationCheckResponse{Reports: nearby}, nil
}

// nearbyReports filters the active-report cache with haversine when it
// is warm and asks PostGIS directly on a miss. The refresher worker
// owns repopulating the cache.
func (s *reportService) nearbyReports(ctx context.Context, lat, lng float64) ([]domain.NearbyReport, error) {
	cached, err := s.cache.GetActive(ctx)
	if err != nil {
		s.logger.Warn("report cache read failed", slog.Any("error", err))
	}
	if cached != nil {
		return filterNearby(cached, lat, lng, s.nearbyRadiusM), nil
	}

	return s.repo.FindNearby(ctx, lat, lng, s.nearbyRadiusM)
}

func filterNearby(reports []domain.CachedReport, lat, lng, radiusM float64) []domain.NearbyReport {
	nearby := make([]domain.NearbyReport, 0)
	for _, r := range reports {
		dist := geo.DistanceMeters(lat, lng, r.Lat, r.Lng)
		if dist <= radiusM {
			nearby = append(nearby, domain.NearbyReport{
				ID:             r.ID,
				Lat:            r.Lat,
				Lng:            r.Lng,
				Category:       r.Category,
				DistanceMeters: dist,
				Distance:       geo.FormatDistance(dist),
			})
		}
	}
	return nearby
}

func defaultLanguage(lang string) string {
	if lang == "" {
		return "en"
	}
	return lang
}
