package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"safesignal/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=report_cache.go -destination=mocks/mock.go
type ReportCacheService interface {
	GetActive(ctx context.Context) ([]domain.CachedReport, error)
	SetActive(ctx context.Context, reports []domain.CachedReport, ttl time.Duration) error
}

type ReportCache struct {
	client *goredis.Client
	key    string
}

func NewReportCache(r *Redis) *ReportCache {
	return &ReportCache{
		client: r.Client,
		key:    "reports:active",
	}
}

// GetActive returns (nil, nil) on a cache miss; callers fall back to
// the database.
func (c *ReportCache) GetActive(ctx context.Context) ([]domain.CachedReport, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var reports []domain.CachedReport
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, err
	}

	return reports, nil
}

func (c *ReportCache) SetActive(ctx context.Context, reports []domain.CachedReport, ttl time.Duration) error {
	b, err := json.Marshal(reports)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}
