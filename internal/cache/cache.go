// Package cache stores precomputed top-company payloads in Redis.
//
// The homepage hits these aggregations on every load, while the underlying
// counts move slowly; a short TTL plus a cron re-warm keeps Postgres out of
// the hot path. Cache failures are never fatal — callers fall back to the
// datastore.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jobport/search-service/internal/model"
)

// ErrMiss is returned when a key is absent or expired.
var ErrMiss = errors.New("cache miss")

const (
	topCompaniesKey   = "search:top_companies:%d"
	topCompanyJobsKey = "search:top_company_jobs:%d"
)

// Cache wraps a Redis client with JSON encode/decode and a fixed TTL.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New returns a Cache with the given TTL.
func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// GetTopCompanies loads the cached activity list for a limit.
func (c *Cache) GetTopCompanies(ctx context.Context, limit int) ([]model.CompanyActivity, error) {
	var out []model.CompanyActivity
	if err := c.get(ctx, fmt.Sprintf(topCompaniesKey, limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetTopCompanies stores the activity list for a limit.
func (c *Cache) SetTopCompanies(ctx context.Context, limit int, v []model.CompanyActivity) error {
	return c.set(ctx, fmt.Sprintf(topCompaniesKey, limit), v)
}

// GetTopCompanyJobs loads the cached representative-job feed for a limit.
func (c *Cache) GetTopCompanyJobs(ctx context.Context, limit int) ([]model.JobResult, error) {
	var out []model.JobResult
	if err := c.get(ctx, fmt.Sprintf(topCompanyJobsKey, limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetTopCompanyJobs stores the representative-job feed for a limit.
func (c *Cache) SetTopCompanyJobs(ctx context.Context, limit int, v []model.JobResult) error {
	return c.set(ctx, fmt.Sprintf(topCompanyJobsKey, limit), v)
}

func (c *Cache) get(ctx context.Context, key string, out any) error {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("redis GET %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (c *Cache) set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis SET %s: %w", key, err)
	}
	return nil
}
