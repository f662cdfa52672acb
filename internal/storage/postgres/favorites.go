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

type FavoriteRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewFavoriteRepo(pool *pgxpool.Pool, logger *slog.Logger) *FavoriteRepo {
	return &FavoriteRepo{pool: pool, logger: logger}
}

const favoriteColumns = `
	id,
	device_id,
	name,
	description,
	ST_Y(geo_point::geometry) AS lat,
	ST_X(geo_point::geometry) AS lng,
	alert_distance_m,
	enable_safety_alerts,
	created_at
`

func (p *FavoriteRepo) Create(ctx context.Context, fav *domain.FavoritePlace) error {
	const op = "postgres.Favorite.Create"

	if fav.AlertDistanceM <= 0 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO favorite_places (id, device_id, name, description, geo_point, alert_distance_m, enable_safety_alerts, created_at)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7, $8, $9)
	`

	if fav.ID == uuid.Nil {
		fav.ID = uuid.New()
	}
	if fav.CreatedAt.IsZero() {
		fav.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		fav.ID,
		fav.DeviceID,
		fav.Name,
		fav.Description,
		fav.Lng,
		fav.Lat,
		fav.AlertDistanceM,
		fav.EnableSafetyAlerts,
		fav.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *FavoriteRepo) ListByDevice(ctx context.Context, deviceID uuid.UUID) ([]*domain.FavoritePlace, error) {
	const op = "postgres.Favorite.ListByDevice"

	query := `SELECT ` + favoriteColumns + `
		FROM favorite_places
		WHERE device_id = $1
		ORDER BY created_at DESC
	`

	rows, err := p.pool.Query(ctx, query, deviceID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return p.scanFavorites(ctx, op, rows)
}

// ListAlertable returns every favorite that can receive safety alerts,
// across all devices. The alert evaluator walks this set per report.
func (p *FavoriteRepo) ListAlertable(ctx context.Context) ([]*domain.FavoritePlace, error) {
	const op = "postgres.Favorite.ListAlertable"

	query := `SELECT ` + favoriteColumns + `
		FROM favorite_places
		WHERE enable_safety_alerts = true
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return p.scanFavorites(ctx, op, rows)
}

func (p *FavoriteRepo) Get(ctx context.Context, id uuid.UUID) (*domain.FavoritePlace, error) {
	const op = "postgres.Favorite.Get"

	query := `SELECT ` + favoriteColumns + `
		FROM favorite_places
		WHERE id = $1
	`

	var fav domain.FavoritePlace
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&fav.ID,
		&fav.DeviceID,
		&fav.Name,
		&fav.Description,
		&fav.Lat,
		&fav.Lng,
		&fav.AlertDistanceM,
		&fav.EnableSafetyAlerts,
		&fav.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &fav, nil
}

func (p *FavoriteRepo) Update(ctx context.Context, fav *domain.FavoritePlace) error {
	const op = "postgres.Favorite.Update"

	if fav.AlertDistanceM <= 0 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		UPDATE favorite_places
		SET name                 = $2,
			description          = $3,
			geo_point            = ST_SetSRID(ST_MakePoint($4, $5), 4326),
			alert_distance_m     = $6,
			enable_safety_alerts = $7
		WHERE id = $1 AND device_id = $8
	`

	cmd, err := p.pool.Exec(ctx, query,
		fav.ID,
		fav.Name,
		fav.Description,
		fav.Lng,
		fav.Lat,
		fav.AlertDistanceM,
		fav.EnableSafetyAlerts,
		fav.DeviceID,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", fav.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *FavoriteRepo) Delete(ctx context.Context, id, deviceID uuid.UUID) error {
	const op = "postgres.Favorite.Delete"

	const query = `DELETE FROM favorite_places WHERE id = $1 AND device_id = $2`

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

func (p *FavoriteRepo) scanFavorites(ctx context.Context, op string, rows pgx.Rows) ([]*domain.FavoritePlace, error) {
	var favorites []*domain.FavoritePlace
	for rows.Next() {
		var fav domain.FavoritePlace
		if err := rows.Scan(
			&fav.ID,
			&fav.DeviceID,
			&fav.Name,
			&fav.Description,
			&fav.Lat,
			&fav.Lng,
			&fav.AlertDistanceM,
			&fav.EnableSafetyAlerts,
			&fav.CreatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		favorites = append(favorites, &fav)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return favorites, nil
}
