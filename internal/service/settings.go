package service

import (
	"context"
	"errors"
	"time"

	"safesignal/internal/domain"
	"safesignal/pkg/e"
	"safesignal/pkg/validator"

	"github.com/google/uuid"
)

//go:generate mockgen -source=settings.go -destination=mocks/mock_settings.go
type SettingsRepository interface {
	Get(ctx context.Context, deviceID uuid.UUID) (*domain.DeviceSettings, error)
	Upsert(ctx context.Context, settings *domain.DeviceSettings) error
}

type settingsService struct {
	repo SettingsRepository
}

func NewSettingsService(repo SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

// Get never returns ErrNotFound: a device that has stored nothing reads
// back the defaults.
func (s *settingsService) Get(ctx context.Context, deviceID uuid.UUID) (*domain.DeviceSettings, error) {
	if deviceID == uuid.Nil {
		return nil, e.ErrInvalidDeviceID
	}

	settings, err := s.repo.Get(ctx, deviceID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			def := domain.DefaultSettings(deviceID)
			return &def, nil
		}
		return nil, err
	}

	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, deviceID uuid.UUID, req domain.UpdateSettingsRequest) (*domain.DeviceSettings, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, e.Wrap("invalid settings update", e.ErrInvalidInput)
	}

	settings, err := s.Get(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	if req.Language != nil {
		settings.Language = *req.Language
	}
	if req.SoundAlertsEnabled != nil {
		settings.SoundAlertsEnabled = *req.SoundAlertsEnabled
	}
	if req.AlertRadiusM != nil {
		settings.AlertRadiusM = *req.AlertRadiusM
	}
	if req.EmergencyOverrideDistanceM != nil {
		settings.EmergencyOverrideDistanceM = *req.EmergencyOverrideDistanceM
	}
	if req.EmergencyBypassSilent != nil {
		settings.EmergencyBypassSilent = *req.EmergencyBypassSilent
	}
	if req.DarkMode != nil {
		settings.DarkMode = *req.DarkMode
	}
	if req.FirstReportCreated != nil {
		settings.FirstReportCreated = *req.FirstReportCreated
	}
	if req.InstructionsSeen != nil {
		settings.InstructionsSeen = *req.InstructionsSeen
	}
	settings.UpdatedAt = time.Now().UTC()

	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
