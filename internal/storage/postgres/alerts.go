package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"safesignal/internal/domain"
	"safesignal/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AlertRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAlertRepo(pool *pgxpool.Pool, logger *slog.Logger) *AlertRepo {
	return &AlertRepo{pool: pool, logger: logger}
}

func (p *AlertRepo) Insert(ctx context.Context, alert *domain.Alert) error {
	const op = "postgres.Alert.Insert"

	if alert == nil || alert.DeviceID == uuid.Nil || alert.ReportID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO alerts (id, device_id, report_id, favorite_id, favorite_name, distance_m, bypass_silent, is_viewed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		alert.ID,
		alert.DeviceID,
		alert.ReportID,
		alert.FavoriteID,
		alert.FavoriteName,
		alert.DistanceMeters,
		alert.BypassSilent,
		alert.IsViewed,
		alert.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// ListByDevice returns unviewed alerts first, newest within each group.
func (p *AlertRepo) ListByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]domain.Alert, error) {
	const op = "postgres.Alert.ListByDevice"

	if limit <= 0 || limit > 200 {
		limit = 50
	}

	const query = `
		SELECT id, device_id, report_id, favorite_id, favorite_name, distance_m, bypass_silent, is_viewed, created_at
		FROM alerts
		WHERE device_id = $1
		ORDER BY is_viewed ASC, created_at DESC
		LIMIT $2
	`

	rows, err := p.pool.Query(ctx, query, deviceID, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	alerts := make([]domain.Alert, 0, limit)
	for rows.Next() {
		var a domain.Alert
		if err := rows.Scan(
			&a.ID,
			&a.DeviceID,
			&a.ReportID,
			&a.FavoriteID,
			&a.FavoriteName,
			&a.DistanceMeters,
			&a.BypassSilent,
			&a.IsViewed,
			&a.CreatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return alerts, nil
}

// MarkViewed is idempotent: re-marking a viewed alert is not an error,
// only an unknown (id, device) pair is.
func (p *AlertRepo) MarkViewed(ctx context.Context, id, deviceID uuid.UUID) error {
	const op = "postgres.Alert.MarkViewed"

	const query = `
		UPDATE alerts
		SET is_viewed = true
		WHERE id = $1 AND device_id = $2
	`

	cmd, err := p.pool.Exec(ctx, query, id, deviceID)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *AlertRepo) HasUnviewed(ctx context.Context, deviceID uuid.UUID) (bool, error) {
	const op = "postgres.Alert.HasUnviewed"

	const query = `
		SELECT EXISTS (
			SELECT 1 FROM alerts WHERE device_id = $1 AND is_viewed = false
		)
	`

	var exists bool
	if err := p.pool.QueryRow(ctx, query, deviceID).Scan(&exists); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}

	return exists, nil
}

// PruneExpired removes every alert whose report has expired, viewed or
// not. Expiry flips the report status in place, so the cascade on the
// foreign key never fires and this delete is the cleanup path.
func (p *AlertRepo) PruneExpired(ctx context.Context) (int64, error) {
	const op = "postgres.Alert.PruneExpired"

	const query = `
		DELETE FROM alerts
		USING reports
		WHERE alerts.report_id = reports.id AND reports.status = 'expired'
	`

	cmd, err := p.pool.Exec(ctx, query)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return cmd.RowsAffected(), nil
}

func (p *AlertRepo) PruneViewed(ctx context.Context, olderThan time.Time) (int64, error) {
	const op = "postgres.Alert.PruneViewed"

	const query = `
		DELETE FROM alerts
		WHERE is_viewed = true AND created_at < $1
	`

	cmd, err := p.pool.Exec(ctx, query, olderThan)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return cmd.RowsAffected(), nil
}
