package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safesignal/internal/domain"
	rds "safesignal/internal/redis"
	"safesignal/internal/service"
	mock_service "safesignal/internal/service/mocks"
)

type alertMocks struct {
	repo      *mock_service.MockAlertRepository
	favorites *mock_service.MockAlertableFavorites
	locations *mock_service.MockDeviceLocations
	settings  *mock_service.MockSettingsService
	delivery  *mock_service.MockDeliveryQueue
}

func newAlertService(ctrl *gomock.Controller) (service.AlertService, alertMocks) {
	m := alertMocks{
		repo:      mock_service.NewMockAlertRepository(ctrl),
		favorites: mock_service.NewMockAlertableFavorites(ctrl),
		locations: mock_service.NewMockDeviceLocations(ctrl),
		settings:  mock_service.NewMockSettingsService(ctrl),
		delivery:  mock_service.NewMockDeliveryQueue(ctrl),
	}
	dedup := service.NewDeduplicator(24*time.Hour, testLogger())
	svc := service.NewAlertService(m.repo, m.favorites, m.locations, m.settings, m.delivery, dedup, testLogger())
	return svc, m
}

func safetyEvent(reporter uuid.UUID) domain.ReportEvent {
	return domain.ReportEvent{
		ReportID:  uuid.New(),
		DeviceID:  reporter,
		Lat:       40.7128,
		Lng:       -74.0060,
		Category:  domain.CategorySafety,
		CreatedAt: time.Now().UTC(),
	}
}

func TestAlertService_EvaluateReport_FavoriteInRange(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAlertService(ctrl)

	reporter := uuid.New()
	owner := uuid.New()
	event := safetyEvent(reporter)

	fav := &domain.FavoritePlace{
		ID:                 uuid.New(),
		DeviceID:           owner,
		Name:               "Home",
		Lat:                40.7130, // ~25m away
		Lng:                -74.0061,
		AlertDistanceM:     domain.DefaultAlertDistanceMeters,
		EnableSafetyAlerts: true,
	}

	m.favorites.EXPECT().ListAlertable(gomock.Any()).Return([]*domain.FavoritePlace{fav}, nil)
	m.locations.EXPECT().All(gomock.Any()).Return(nil, nil)
	m.settings.EXPECT().
		Get(gomock.Any(), owner).
		Return(&domain.DeviceSettings{DeviceID: owner, EmergencyOverrideDistanceM: 400}, nil)

	var inserted *domain.Alert
	m.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Alert) error {
			inserted = a
			return nil
		})
	m.delivery.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, svc.EvaluateReport(context.Background(), event))
	require.NotNil(t, inserted)
	assert.Equal(t, owner, inserted.DeviceID)
	assert.Equal(t, event.ReportID, inserted.ReportID)
	require.NotNil(t, inserted.FavoriteID)
	assert.Equal(t, fav.ID, *inserted.FavoriteID)
	assert.Equal(t, "Home", inserted.FavoriteName)
	assert.False(t, inserted.BypassSilent, "bypass is opt-in")
	assert.Greater(t, inserted.DistanceMeters, 0.0)
	assert.LessOrEqual(t, inserted.DistanceMeters, fav.AlertDistanceM)
}

func TestAlertService_EvaluateReport_NonSafetySkipsFavorites(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAlertService(ctrl)

	event := safetyEvent(uuid.New())
	event.Category = domain.CategoryHazard

	// favorites are never listed for non-safety reports
	m.locations.EXPECT().All(gomock.Any()).Return(nil, nil)

	require.NoError(t, svc.EvaluateReport(context.Background(), event))
}

func TestAlertService_EvaluateReport_SkipsReportersOwnFavorite(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAlertService(ctrl)

	reporter := uuid.New()
	event := safetyEvent(reporter)

	own := &domain.FavoritePlace{
		ID:                 uuid.New(),
		DeviceID:           reporter,
		Name:               "Home",
		Lat:                event.Lat,
		Lng:                event.Lng,
		AlertDistanceM:     domain.DefaultAlertDistanceMeters,
		EnableSafetyAlerts: true,
	}

	m.favorites.EXPECT().ListAlertable(gomock.Any()).Return([]*domain.FavoritePlace{own}, nil)
	m.locations.EXPECT().All(gomock.Any()).Return(nil, nil)

	require.NoError(t, svc.EvaluateReport(context.Background(), event))
}

func TestAlertService_EvaluateReport_OutOfRangeFavorite(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAlertService(ctrl)

	event := safetyEvent(uuid.New())

	far := &domain.FavoritePlace{
		ID:                 uuid.New(),
		DeviceID:           uuid.New(),
		Name:               "Cabin",
		Lat:                41.5, // way outside one mile
		Lng:                -75.5,
		AlertDistanceM:     domain.DefaultAlertDistanceMeters,
		EnableSafetyAlerts: true,
	}

	m.favorites.EXPECT().ListAlertable(gomock.Any()).Return([]*domain.FavoritePlace{far}, nil)
	m.locations.EXPECT().All(gomock.Any()).Return(nil, nil)

	require.NoError(t, svc.EvaluateReport(context.Background(), event))
}

func TestAlertService_EvaluateReport_DeduplicatesSecondPass(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAlertService(ctrl)

	owner := uuid.New()
	event := safetyEvent(uuid.New())

	fav := &domain.FavoritePlace{
		ID:                 uuid.New(),
		DeviceID:           owner,
		Name:               "Home",
		Lat:                event.Lat,
		Lng:                event.Lng,
		AlertDistanceM:     domain.DefaultAlertDistanceMeters,
		EnableSafetyAlerts: true,
	}

	m.favorites.EXPECT().ListAlertable(gomock.Any()).Return([]*domain.FavoritePlace{fav}, nil).Times(2)
	m.locations.EXPECT().All(gomock.Any()).Return(nil, nil).Times(2)
	m.settings.EXPECT().
		Get(gomock.Any(), owner).
		Return(&domain.DeviceSettings{DeviceID: owner, EmergencyOverrideDistanceM: 400}, nil).
		Times(1)

	// exactly one alert despite two deliveries of the same event
	m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.delivery.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	require.NoError(t, svc.EvaluateReport(context.Background(), event))
	require.NoError(t, svc.EvaluateReport(context.Background(), event))
}

func TestAlertService_EvaluateReport_DeviceProximityWithBypass(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAlertService(ctrl)

	reporter := uuid.New()
	bystander := uuid.New()
	event := safetyEvent(reporter)

	m.favorites.EXPECT().ListAlertable(gomock.Any()).Return(nil, nil)
	m.locations.EXPECT().All(gomock.Any()).Return([]rds.DeviceLocation{
		{DeviceID: reporter.String(), Lat: event.Lat, Lng: event.Lng},  // the reporter, skipped
		{DeviceID: bystander.String(), Lat: 40.7130, Lng: -74.0061},   // ~25m away
		{DeviceID: "not-a-uuid", Lat: event.Lat, Lng: event.Lng},      // junk key, skipped
	}, nil)

	m.settings.EXPECT().
		Get(gomock.Any(), bystander).
		Return(&domain.DeviceSettings{
			DeviceID:                   bystander,
			EmergencyOverrideDistanceM: 400,
			EmergencyBypassSilent:      true,
		}, nil)

	var inserted *domain.Alert
	m.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Alert) error {
			inserted = a
			return nil
		})
	m.delivery.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.AlertPayload) error {
			assert.True(t, p.BypassSilent)
			assert.Equal(t, bystander, p.DeviceID)
			return nil
		})

	require.NoError(t, svc.EvaluateReport(context.Background(), event))
	require.NotNil(t, inserted)
	assert.True(t, inserted.BypassSilent, "inside override distance with opt-in")
	assert.Nil(t, inserted.FavoriteID)
}

func TestAlertService_EvaluateReport_BypassDeniedOutsideOverrideDistance(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAlertService(ctrl)

	bystander := uuid.New()
	event := safetyEvent(uuid.New())

	m.favorites.EXPECT().ListAlertable(gomock.Any()).Return(nil, nil)
	m.locations.EXPECT().All(gomock.Any()).Return([]rds.DeviceLocation{
		{DeviceID: bystander.String(), Lat: 40.7200, Lng: -74.0060}, // ~800m away
	}, nil)

	m.settings.EXPECT().
		Get(gomock.Any(), bystander).
		Return(&domain.DeviceSettings{
			DeviceID:                   bystander,
			EmergencyOverrideDistanceM: 400,
			EmergencyBypassSilent:      true,
		}, nil)

	var inserted *domain.Alert
	m.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Alert) error {
			inserted = a
			return nil
		})
	m.delivery.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, svc.EvaluateReport(context.Background(), event))
	require.NotNil(t, inserted)
	assert.False(t, inserted.BypassSilent, "outside the override distance")
}

func TestAlertService_EvaluateReport_DeviceRadiusFromSettings(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAlertService(ctrl)

	bystander := uuid.New()
	event := safetyEvent(uuid.New())

	m.favorites.EXPECT().ListAlertable(gomock.Any()).Return(nil, nil)
	m.locations.EXPECT().All(gomock.Any()).Return([]rds.DeviceLocation{
		{DeviceID: bystander.String(), Lat: 40.7200, Lng: -74.0060}, // ~800m away
	}, nil)

	// tighter than the default one mile, so 800m is out of range
	m.settings.EXPECT().
		Get(gomock.Any(), bystander).
		Return(&domain.DeviceSettings{
			DeviceID:                   bystander,
			AlertRadiusM:               500,
			EmergencyOverrideDistanceM: 400,
		}, nil)

	require.NoError(t, svc.EvaluateReport(context.Background(), event))
}

func TestAlertService_EvaluateReport_WidenedDeviceRadius(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAlertService(ctrl)

	bystander := uuid.New()
	event := safetyEvent(uuid.New())

	m.favorites.EXPECT().ListAlertable(gomock.Any()).Return(nil, nil)
	m.locations.EXPECT().All(gomock.Any()).Return([]rds.DeviceLocation{
		{DeviceID: bystander.String(), Lat: 40.8000, Lng: -74.0060}, // ~9.7km away
	}, nil)

	m.settings.EXPECT().
		Get(gomock.Any(), bystander).
		Return(&domain.DeviceSettings{
			DeviceID:                   bystander,
			AlertRadiusM:               15000,
			EmergencyOverrideDistanceM: 400,
		}, nil)

	var inserted *domain.Alert
	m.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Alert) error {
			inserted = a
			return nil
		})
	m.delivery.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, svc.EvaluateReport(context.Background(), event))
	require.NotNil(t, inserted)
	assert.Equal(t, bystander, inserted.DeviceID)
	assert.Greater(t, inserted.DistanceMeters, 1609.34, "beyond the default radius")
}

func TestAlertService_List(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAlertService(ctrl)

	deviceID := uuid.New()
	alerts := []domain.Alert{
		{ID: uuid.New(), DeviceID: deviceID, ReportID: uuid.New(), DistanceMeters: 120},
	}

	m.repo.EXPECT().ListByDevice(gomock.Any(), deviceID, 50).Return(alerts, nil)
	m.repo.EXPECT().HasUnviewed(gomock.Any(), deviceID).Return(true, nil)

	resp, err := svc.List(context.Background(), deviceID)
	require.NoError(t, err)
	assert.Len(t, resp.Alerts, 1)
	assert.Equal(t, "394 ft", resp.Alerts[0].Distance)
	assert.True(t, resp.HasUnviewed)
}

func TestAlertService_MarkViewed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAlertService(ctrl)

	id := uuid.New()
	deviceID := uuid.New()
	m.repo.EXPECT().MarkViewed(gomock.Any(), id, deviceID).Return(nil)

	require.NoError(t, svc.MarkViewed(context.Background(), id, deviceID))
}
