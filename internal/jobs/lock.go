package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	refreshLockKey      = "foodinv:lock:status_refresh"
	refreshLockTTL      = 10 * time.Minute
	redisConnectTimeout = 5 * time.Second
)

// Lock guards a job against concurrent runs across processes.
type Lock interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// NoopLock always grants the lock. It is used for single-process deployments.
type NoopLock struct{}

func (NoopLock) Acquire(context.Context) (bool, error) { return true, nil }

func (NoopLock) Release(context.Context) error { return nil }

type lockStore interface {
	SetNX(ctx context.Context, key, token string, ttl time.Duration) (bool, error)
	// DeleteIfEqual removes key only while it still holds token.
	DeleteIfEqual(ctx context.Context, key, token string) error
}

// RefreshLock is the Redis lock taken around a status refresh. The TTL frees
// the key if the holder dies mid-run.
type RefreshLock struct {
	store lockStore
	token string
}

func NewRefreshLock(store lockStore) *RefreshLock {
	return &RefreshLock{store: store}
}

func (l *RefreshLock) Acquire(ctx context.Context) (bool, error) {
	token := uuid.NewString()
	ok, err := l.store.SetNX(ctx, refreshLockKey, token, refreshLockTTL)
	if err != nil {
		return false, fmt.Errorf("acquire refresh lock: %w", err)
	}
	if ok {
		l.token = token
	}
	return ok, nil
}

func (l *RefreshLock) Release(ctx context.Context) error {
	if l.token == "" {
		return nil
	}
	token := l.token
	l.token = ""
	if err := l.store.DeleteIfEqual(ctx, refreshLockKey, token); err != nil {
		return fmt.Errorf("release refresh lock: %w", err)
	}
	return nil
}

// compareAndDelete runs GET and DEL as one step so an expired lock taken over
// by another process is never deleted by the previous holder.
var compareAndDelete = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisClient is the go-redis backed lockStore.
type RedisClient struct {
	raw *redis.Client
}

// NewRedisClient parses url, connects and verifies the connection with a ping.
func NewRedisClient(ctx context.Context, url string) (*RedisClient, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	raw := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, redisConnectTimeout)
	defer cancel()
	if err := raw.Ping(pingCtx).Err(); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisClient{raw: raw}, nil
}

func (c *RedisClient) SetNX(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	return c.raw.SetNX(ctx, key, token, ttl).Result()
}

func (c *RedisClient) DeleteIfEqual(ctx context.Context, key, token string) error {
	return compareAndDelete.Run(ctx, c.raw, []string{key}, token).Err()
}

func (c *RedisClient) Close() error {
	return c.raw.Close()
}
