package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cadizaccesible/internal/domain"
	"cadizaccesible/pkg/e"

	"github.com/redis/go-redis/v9"
)

// StatusQueue buffers status-changed events between the workflow and the
// webhook sender.
type StatusQueue struct {
	client *redis.Client
	key    string
}

func NewStatusQueue(client *redis.Client, key string) *StatusQueue {
	return &StatusQueue{client: client, key: key}
}

func (q *StatusQueue) Enqueue(ctx context.Context, event domain.StatusChangedEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *StatusQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.StatusChangedEvent, error) {
	var event domain.StatusChangedEvent

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return event, e.ErrQueueEmpty
		}
		return event, err
	}
	if len(res) < 2 {
		return event, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &event); err != nil {
		return event, err
	}
	return event, nil
}
