package postgres

import (
	"context"
	"time"

	"safesignal/internal/domain"

	"github.com/google/uuid"
)

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report, photo []byte) error
	List(ctx context.Context, page, limit int) ([]*domain.Report, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	ListActive(ctx context.Context) ([]domain.CachedReport, error)
	FindNearby(ctx context.Context, lat, lng, radiusM float64) ([]domain.NearbyReport, error)
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
	ForceExpire(ctx context.Context, id uuid.UUID) error
	CountSince(ctx context.Context, minutes int) (int64, error)
}

type FavoriteRepository interface {
	Create(ctx context.Context, fav *domain.FavoritePlace) error
	ListByDevice(ctx context.Context, deviceID uuid.UUID) ([]*domain.FavoritePlace, error)
	ListAlertable(ctx context.Context) ([]*domain.FavoritePlace, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.FavoritePlace, error)
	Update(ctx context.Context, fav *domain.FavoritePlace) error
	Delete(ctx context.Context, id, deviceID uuid.UUID) error
}

type AlertRepository interface {
	Insert(ctx context.Context, alert *domain.Alert) error
	ListByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]domain.Alert, error)
	MarkViewed(ctx context.Context, id, deviceID uuid.UUID) error
	HasUnviewed(ctx context.Context, deviceID uuid.UUID) (bool, error)
	PruneExpired(ctx context.Context) (int64, error)
	PruneViewed(ctx context.Context, olderThan time.Time) (int64, error)
}

type SettingsRepository interface {
	Get(ctx context.Context, deviceID uuid.UUID) (*domain.DeviceSettings, error)
	Upsert(ctx context.Context, settings *domain.DeviceSettings) error
}

type StatsRepository interface {
	SaveCheck(ctx context.Context, check *domain.LocationCheck) error
	CountUniqueDevices(ctx context.Context, minutes int) (int64, error)
	CountTotalChecks(ctx context.Context, minutes int) (int64, error)
}

func (p *Postgres) Reports() ReportRepository     { return p.ReportRepo }
func (p *Postgres) Favorites() FavoriteRepository { return p.FavoriteRepo }
func (p *Postgres) Alerts() AlertRepository       { return p.AlertRepo }
func (p *Postgres) Settings() SettingsRepository  { return p.SettingsRepo }
func (p *Postgres) Stats() StatsRepository        { return p.StatRepo }
