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

// EvalQueue carries freshly created reports to the alert evaluator.
type EvalQueue struct {
	client *redis.Client
	key    string
}

func NewEvalQueue(client *redis.Client, key string) *EvalQueue {
	return &EvalQueue{client: client, key: key}
}

func (q *EvalQueue) Enqueue(ctx context.Context, event domain.ReportEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *EvalQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.ReportEvent, error) {
	var ev domain.ReportEvent

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ev, e.ErrQueueEmpty
		}
		return ev, err
	}
	if len(res) < 2 {
		return ev, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return ev, err
	}
	return ev, nil
}
