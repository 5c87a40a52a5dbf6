package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orcamentos_rtv/internal/config"
	"orcamentos_rtv/internal/usecase/interfaces"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

var ErrLocked = interfaces.ErrLockHeld

// Connect opens the Redis client and checks it with a PING.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect redis at %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// WithLock runs fn while holding key. ErrLocked is returned without running
// fn when someone else holds it.
func WithLock(ctx context.Context, rdb redis.Scripter, key string, ttl time.Duration, fn func(ctx context.Context) error) error {
	locker := redislock.New(rdb)
	lock, err := locker.Obtain(ctx, key, ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return ErrLocked
	}
	if err != nil {
		return fmt.Errorf("obtaining lock %s: %w", key, err)
	}
	defer func() {
		_ = lock.Release(context.WithoutCancel(ctx))
	}()
	return fn(ctx)
}

// RedisLocker holds every lock for a fixed TTL.
type RedisLocker struct {
	rdb redis.Scripter
	ttl time.Duration
}

var _ interfaces.ILocker = (*RedisLocker)(nil)

func NewRedisLocker(rdb redis.Scripter, ttl time.Duration) *RedisLocker {
	return &RedisLocker{rdb: rdb, ttl: ttl}
}

func (l *RedisLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	return WithLock(ctx, l.rdb, key, l.ttl, fn)
}
