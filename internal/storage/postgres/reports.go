package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"safesignal/internal/domain"
	"safesignal/pkg/e"
	"safesignal/pkg/geo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

func (p *ReportRepo) Create(ctx context.Context, report *domain.Report, photo []byte) error {
	const op = "postgres.Report.Create"

	const query = `
		INSERT INTO reports (id, device_id, geo_point, body, language, category, photo, status, created_at, expires_at)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6, $7, $8, $9, $10, $11)
	`

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	if report.Status == "" {
		report.Status = domain.ReportActive
	}
	report.HasPhoto = len(photo) > 0

	var photoArg any
	if len(photo) > 0 {
		photoArg = photo
	}

	_, err := p.pool.Exec(ctx, query,
		report.ID,
		report.DeviceID,
		report.Lng,
		report.Lat,
		report.Text,
		report.Language,
		report.Category,
		photoArg,
		report.Status,
		report.CreatedAt,
		report.ExpiresAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *ReportRepo) List(ctx context.Context, page, limit int) ([]*domain.Report, int64, error) {
	const op = "postgres.Report.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	const countQuery = `SELECT COUNT(*) FROM reports WHERE status = 'active'`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	const listQuery = `
		SELECT id,
			   device_id,
			   ST_Y(geo_point::geometry) AS lat,
			   ST_X(geo_point::geometry) AS lng,
			   body,
			   language,
			   category,
			   photo IS NOT NULL AS has_photo,
			   status,
			   created_at,
			   expires_at
		FROM reports
		WHERE status = 'active'
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.pool.Query(ctx, listQuery, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var reports []*domain.Report
	for rows.Next() {
		var r domain.Report
		if err := rows.Scan(
			&r.ID,
			&r.DeviceID,
			&r.Lat,
			&r.Lng,
			&r.Text,
			&r.Language,
			&r.Category,
			&r.HasPhoto,
			&r.Status,
			&r.CreatedAt,
			&r.ExpiresAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		reports = append(reports, &r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return reports, total, nil
}

func (p *ReportRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	const op = "postgres.Report.Get"

	const query = `
		SELECT id,
			   device_id,
			   ST_Y(geo_point::geometry) AS lat,
			   ST_X(geo_point::geometry) AS lng,
			   body,
			   language,
			   category,
			   photo IS NOT NULL AS has_photo,
			   status,
			   created_at,
			   expires_at
		FROM reports
		WHERE id = $1
	`

	var r domain.Report
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&r.ID,
		&r.DeviceID,
		&r.Lat,
		&r.Lng,
		&r.Text,
		&r.Language,
		&r.Category,
		&r.HasPhoto,
		&r.Status,
		&r.CreatedAt,
		&r.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &r, nil
}

func (p *ReportRepo) ListActive(ctx context.Context) ([]domain.CachedReport, error) {
	const op = "postgres.Report.ListActive"

	const query = `
		SELECT id,
			   ST_Y(geo_point::geometry) AS lat,
			   ST_X(geo_point::geometry) AS lng,
			   category
		FROM reports
		WHERE status = 'active'
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	reports := make([]domain.CachedReport, 0, 64)
	for rows.Next() {
		var r domain.CachedReport
		if err := rows.Scan(&r.ID, &r.Lat, &r.Lng, &r.Category); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return reports, nil
}

// FindNearby returns the active reports within radiusM of the point,
// closest first, with the distance PostGIS computed.
func (p *ReportRepo) FindNearby(ctx context.Context, lat, lng, radiusM float64) ([]domain.NearbyReport, error) {
	const op = "postgres.Report.FindNearby"

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 || radiusM <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	// geo_point is geography, so ST_DWithin works in meters directly.
	const query = `
		SELECT id,
			   ST_Y(geo_point::geometry) AS lat,
			   ST_X(geo_point::geometry) AS lng,
			   category,
			   ST_Distance(geo_point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) AS distance_m
		FROM reports
		WHERE status = 'active'
		  AND ST_DWithin(
			geo_point,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			$3
		  )
		ORDER BY distance_m
	`

	rows, err := p.pool.Query(ctx, query, lng, lat, radiusM)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	nearby := make([]domain.NearbyReport, 0, 8)
	for rows.Next() {
		var r domain.NearbyReport
		if err := rows.Scan(&r.ID, &r.Lat, &r.Lng, &r.Category, &r.DistanceMeters); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		r.Distance = geo.FormatDistance(r.DistanceMeters)
		nearby = append(nearby, r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return nearby, nil
}

// ExpireDue flips every active report whose TTL has passed and returns
// how many rows changed. The sweeper deletes the alerts of flipped
// reports right after via PruneExpired.
func (p *ReportRepo) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	const op = "postgres.Report.ExpireDue"

	const query = `
		UPDATE reports
		SET status = 'expired'
		WHERE status = 'active' AND expires_at <= $1
	`

	cmd, err := p.pool.Exec(ctx, query, now)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return cmd.RowsAffected(), nil
}

func (p *ReportRepo) ForceExpire(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Report.ForceExpire"

	const query = `
		UPDATE reports
		SET status = 'expired'
		WHERE id = $1 AND status = 'active'
	`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *ReportRepo) CountSince(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.Report.CountSince"

	if minutes <= 0 || minutes > 1440 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT COUNT(*)
		FROM reports
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute')
	`

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, minutes).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return cnt, nil
}
