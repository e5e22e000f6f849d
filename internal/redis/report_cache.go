package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/swetha221234/smart-rural-connect/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ReportCache keeps the unfiltered dashboard report for a short TTL. A miss
// or a redis failure is never fatal; callers fall through to the store.
type ReportCache struct {
	client *goredis.Client
	key    string
}

func NewReportCache(r *Redis) *ReportCache {
	return &ReportCache{
		client: r.Client,
		key:    "reports:summary",
	}
}

func (c *ReportCache) Get(ctx context.Context) (*domain.Report, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}

	return &report, nil
}

func (c *ReportCache) Set(ctx context.Context, report *domain.Report, ttl time.Duration) error {
	b, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

func (c *ReportCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
