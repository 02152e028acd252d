// Package cache implements the report cache on Redis.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/moneymap/backend/config"
	"github.com/moneymap/backend/internal/application/adapter"
)

// reportKeyPattern matches every cached report key.
const reportKeyPattern = "report:*"

// NewRedisClient creates a Redis client from configuration.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	opts.DB = cfg.DB

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

// reportCache implements adapter.ReportCache on a Redis client.
type reportCache struct {
	client *redis.Client
}

// NewReportCache creates a Redis-backed report cache.
func NewReportCache(client *redis.Client) adapter.ReportCache {
	return &reportCache{
		client: client,
	}
}

// Get returns the cached payload for key, or nil on a miss.
func (c *reportCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

// Set stores payload under key with the given TTL.
func (c *reportCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, payload, ttl).Err()
}

// InvalidateAll drops every cached report.
func (c *reportCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, reportKeyPattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// noopCache is the fallback when Redis is unavailable: every lookup
// misses and every write succeeds silently.
type noopCache struct{}

// NewNoopReportCache creates a cache that never stores anything.
func NewNoopReportCache() adapter.ReportCache {
	return noopCache{}
}

func (noopCache) Get(_ context.Context, _ string) ([]byte, error) {
	return nil, nil
}

func (noopCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}

func (noopCache) InvalidateAll(_ context.Context) error {
	return nil
}
