package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

const versionKeyPrefix = "gst:version:"

// ReportCache stores computed GST reports per tenant. Every key embeds the
// tenant's current version so Bump invalidates all of a tenant's reports at
// once. Concurrent misses for the same key share one loader call.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
}

// NewReportCache creates a ReportCache. A nil client disables caching; the
// loader then runs on every call.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{client: client, ttl: ttl}
}

var _ port.ReportCache = (*ReportCache)(nil)

func versionKey(tenantID uuid.UUID) string {
	return versionKeyPrefix + tenantID.String()
}

func (c *ReportCache) version(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	ver, err := c.client.Get(ctx, versionKey(tenantID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return ver, err
}

// FetchJSON decodes the cached value for key into dest, populating it with
// loader on a miss.
func (c *ReportCache) FetchJSON(ctx context.Context, tenantID uuid.UUID, key string, dest any, loader func(context.Context) (any, error)) error {
	if loader == nil {
		return errors.New("cache: loader required")
	}
	if c == nil || c.client == nil {
		return load(ctx, dest, loader)
	}

	ver, err := c.version(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("cache: reading version: %w", err)
	}
	fullKey := fmt.Sprintf("gst:%s:%d:%s", tenantID, ver, key)

	payload, err := c.client.Get(ctx, fullKey).Bytes()
	if err == nil {
		return json.Unmarshal(payload, dest)
	}
	if !errors.Is(err, redis.Nil) {
		return fmt.Errorf("cache: get %s: %w", fullKey, err)
	}

	// The shared call outlives any single caller; a cancelled request must not
	// fail the others waiting on it.
	shared := context.WithoutCancel(ctx)
	res := c.group.DoChan(fullKey, func() (any, error) {
		value, err := loader(shared)
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		if err := c.client.Set(shared, fullKey, raw, c.ttl).Err(); err != nil {
			return nil, fmt.Errorf("cache: set %s: %w", fullKey, err)
		}
		return raw, nil
	})
	select {
	case <-ctx.Done():
		return ctx.Err()
	case r := <-res:
		if r.Err != nil {
			return r.Err
		}
		return json.Unmarshal(r.Val.([]byte), dest)
	}
}

// Bump invalidates every cached report of the tenant.
func (c *ReportCache) Bump(ctx context.Context, tenantID uuid.UUID) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Incr(ctx, versionKey(tenantID)).Err()
}

func load(ctx context.Context, dest any, loader func(context.Context) (any, error)) error {
	value, err := loader(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}
