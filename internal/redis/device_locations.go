package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DeviceLocation is a device's last reported position, kept only long
// enough to evaluate proximity alerts against it.
type DeviceLocation struct {
	DeviceID  string    `json:"device_id"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DeviceLocationStore struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

func NewDeviceLocationStore(r *Redis, ttl time.Duration) *DeviceLocationStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &DeviceLocationStore{
		client: r.Client,
		prefix: "device:location:",
		ttl:    ttl,
	}
}

func (s *DeviceLocationStore) Set(ctx context.Context, loc DeviceLocation) error {
	b, err := json.Marshal(loc)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.prefix+loc.DeviceID, b, s.ttl).Err()
}

// All scans the keyspace for every live device location. The set is
// bounded by the TTL, so SCAN stays cheap.
func (s *DeviceLocationStore) All(ctx context.Context) ([]DeviceLocation, error) {
	var (
		cursor uint64
		locs   []DeviceLocation
	)

	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"*", 100).Result()
		if err != nil {
			return nil, err
		}

		for _, key := range keys {
			data, err := s.client.Get(ctx, key).Bytes()
			if err != nil {
				if errors.Is(err, goredis.Nil) {
					continue // expired between SCAN and GET
				}
				return nil, err
			}
			var loc DeviceLocation
			if err := json.Unmarshal(data, &loc); err != nil {
				continue
			}
			locs = append(locs, loc)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return locs, nil
}
