package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"safesignal/internal/domain"
	"safesignal/pkg/e"

	"github.com/redis/go-redis/v9"
)

// DeliveryQueue holds alert payloads until the sender pushes them to
// the configured delivery endpoint.
type DeliveryQueue struct {
	client *redis.Client
	key    string
}

func NewDeliveryQueue(client *redis.Client, key string) *DeliveryQueue {
	return &DeliveryQueue{client: client, key: key}
}

func (q *DeliveryQueue) Enqueue(ctx context.Context, payload domain.AlertPayload) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *DeliveryQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.AlertPayload, error) {
	var p domain.AlertPayload

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return p, e.ErrQueueEmpty
		}
		return p, err
	}
	if len(res) < 2 {
		return p, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &p); err != nil {
		return p, err
	}
	return p, nil
}
