package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

// Locker hands out Redis locks that expire after their TTL.
type Locker struct {
	client *redislock.Client
}

// NewLocker creates a Locker on the given Redis client.
func NewLocker(client *redis.Client) *Locker {
	return &Locker{client: redislock.New(client)}
}

var _ port.Locker = (*Locker)(nil)

// Obtain acquires key without retrying. A held lock yields domain.ErrLockHeld.
func (l *Locker) Obtain(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	lock, err := l.client.Obtain(ctx, key, ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, domain.ErrLockHeld
	}
	if err != nil {
		return nil, fmt.Errorf("obtaining lock %s: %w", key, err)
	}
	return func(ctx context.Context) error {
		err := lock.Release(ctx)
		if errors.Is(err, redislock.ErrLockNotHeld) {
			return nil
		}
		return err
	}, nil
}
