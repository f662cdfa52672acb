package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"safesignal/internal/domain"
	"safesignal/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSettingsRepo(pool *pgxpool.Pool, logger *slog.Logger) *SettingsRepo {
	return &SettingsRepo{pool: pool, logger: logger}
}

func (p *SettingsRepo) Get(ctx context.Context, deviceID uuid.UUID) (*domain.DeviceSettings, error) {
	const op = "postgres.Settings.Get"

	if deviceID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidDeviceID)
	}

	const query = `
		SELECT device_id, language, sound_alerts_enabled, alert_radius_m, emergency_override_distance_m,
			   emergency_bypass_silent, dark_mode, first_report_created, instructions_seen, updated_at
		FROM device_settings
		WHERE device_id = $1
	`

	var s domain.DeviceSettings
	err := p.pool.QueryRow(ctx, query, deviceID).Scan(
		&s.DeviceID,
		&s.Language,
		&s.SoundAlertsEnabled,
		&s.AlertRadiusM,
		&s.EmergencyOverrideDistanceM,
		&s.EmergencyBypassSilent,
		&s.DarkMode,
		&s.FirstReportCreated,
		&s.InstructionsSeen,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return &s, nil
}

func (p *SettingsRepo) Upsert(ctx context.Context, settings *domain.DeviceSettings) error {
	const op = "postgres.Settings.Upsert"

	if settings == nil || settings.DeviceID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidDeviceID)
	}

	const query = `
		INSERT INTO device_settings (device_id, language, sound_alerts_enabled, alert_radius_m,
			emergency_override_distance_m, emergency_bypass_silent, dark_mode, first_report_created,
			instructions_seen, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (device_id) DO UPDATE SET
			language                      = EXCLUDED.language,
			sound_alerts_enabled          = EXCLUDED.sound_alerts_enabled,
			alert_radius_m                = EXCLUDED.alert_radius_m,
			emergency_override_distance_m = EXCLUDED.emergency_override_distance_m,
			emergency_bypass_silent       = EXCLUDED.emergency_bypass_silent,
			dark_mode                     = EXCLUDED.dark_mode,
			first_report_created          = EXCLUDED.first_report_created,
			instructions_seen             = EXCLUDED.instructions_seen,
			updated_at                    = EXCLUDED.updated_at
	`

	if settings.UpdatedAt.IsZero() {
		settings.UpdatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		settings.DeviceID,
		settings.Language,
		settings.SoundAlertsEnabled,
		settings.AlertRadiusM,
		settings.EmergencyOverrideDistanceM,
		settings.EmergencyBypassSilent,
		settings.DarkMode,
		settings.FirstReportCreated,
		settings.InstructionsSeen,
		settings.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}
