package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cadizaccesible/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

type StatsCacheService interface {
	GetSummary(ctx context.Context) (*domain.StatsSummary, error)
	SetSummary(ctx context.Context, summary *domain.StatsSummary, ttl time.Duration) error
}

// StatsCache keeps the latest dashboard snapshot so aggregate reads do
// not hit Postgres on every request. A miss returns (nil, nil).
type StatsCache struct {
	client *goredis.Client
	key    string
}

func NewStatsCache(r *Redis) *StatsCache {
	return &StatsCache{
		client: r.Client,
		key:    "incidents:stats",
	}
}

func (c *StatsCache) GetSummary(ctx context.Context) (*domain.StatsSummary, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var summary domain.StatsSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

func (c *StatsCache) SetSummary(ctx context.Context, summary *domain.StatsSummary, ttl time.Duration) error {
	b, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}
