package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"safesignal/internal/domain"
	"safesignal/internal/service"
	mock_service "safesignal/internal/service/mocks"
	"safesignal/pkg/e"
)

func TestSettingsService_Get_ReturnsDefaultsWhenMissing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSettingsRepository(ctrl)
	svc := service.NewSettingsService(repo)

	deviceID := uuid.New()
	repo.EXPECT().Get(gomock.Any(), deviceID).Return(nil, e.ErrNotFound).Times(1)

	settings, err := svc.Get(context.Background(), deviceID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if settings.Language != "en" {
		t.Fatalf("expected default language en, got %q", settings.Language)
	}
	if !settings.SoundAlertsEnabled {
		t.Fatalf("expected sound alerts enabled by default")
	}
	if settings.EmergencyOverrideDistanceM != 400 {
		t.Fatalf("expected 400m override distance, got %f", settings.EmergencyOverrideDistanceM)
	}
	if settings.AlertRadiusM != domain.DefaultAlertDistanceMeters {
		t.Fatalf("expected default alert radius, got %f", settings.AlertRadiusM)
	}
	if settings.EmergencyBypassSilent {
		t.Fatalf("emergency bypass must be opt-in")
	}
}

func TestSettingsService_Get_NilDevice(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSettingsRepository(ctrl)
	svc := service.NewSettingsService(repo)

	if _, err := svc.Get(context.Background(), uuid.Nil); !errors.Is(err, e.ErrInvalidDeviceID) {
		t.Fatalf("expected ErrInvalidDeviceID, got %v", err)
	}
}

func TestSettingsService_Update_MergesOverDefaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSettingsRepository(ctrl)
	svc := service.NewSettingsService(repo)

	deviceID := uuid.New()
	repo.EXPECT().Get(gomock.Any(), deviceID).Return(nil, e.ErrNotFound).Times(1)
	repo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.DeviceSettings) error {
			if s.Language != "es" {
				t.Fatalf("language not updated: %q", s.Language)
			}
			if !s.EmergencyBypassSilent {
				t.Fatalf("bypass silent not updated")
			}
			if !s.SoundAlertsEnabled {
				t.Fatalf("untouched default lost")
			}
			if s.UpdatedAt.IsZero() {
				t.Fatalf("updated_at not set")
			}
			return nil
		}).
		Times(1)

	lang := "es"
	bypass := true
	got, err := svc.Update(context.Background(), deviceID, domain.UpdateSettingsRequest{
		Language:              &lang,
		EmergencyBypassSilent: &bypass,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Language != "es" {
		t.Fatalf("unexpected language %q", got.Language)
	}
}

func TestSettingsService_Update_AlertRadius(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSettingsRepository(ctrl)
	svc := service.NewSettingsService(repo)

	deviceID := uuid.New()
	repo.EXPECT().Get(gomock.Any(), deviceID).Return(nil, e.ErrNotFound).Times(1)
	repo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.DeviceSettings) error {
			if s.AlertRadiusM != 800 {
				t.Fatalf("alert radius not updated: %f", s.AlertRadiusM)
			}
			return nil
		}).
		Times(1)

	radius := 800.0
	got, err := svc.Update(context.Background(), deviceID, domain.UpdateSettingsRequest{
		AlertRadiusM: &radius,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.AlertRadiusM != 800 {
		t.Fatalf("unexpected alert radius %f", got.AlertRadiusM)
	}
}

func TestSettingsService_Update_RejectsUnknownLanguage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSettingsRepository(ctrl)
	svc := service.NewSettingsService(repo)

	lang := "fr"
	_, err := svc.Update(context.Background(), uuid.New(), domain.UpdateSettingsRequest{Language: &lang})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
