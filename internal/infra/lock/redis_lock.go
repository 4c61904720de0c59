package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisLocker(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl, log: log}
}

func key(professionalID uuid.UUID) string {
	return fmt.Sprintf("spa:booking-lock:%s", professionalID)
}

// Acquire takes the per-professional booking lock. ok is false when another
// writer holds it; release is a no-op in that case.
func (l *RedisLocker) Acquire(
	ctx context.Context,
	professionalID uuid.UUID,
) (release func(), ok bool, err error) {

	token := uuid.NewString()
	k := key(professionalID)

	ok, err = l.client.SetNX(ctx, k, token, l.ttl).Result()
	if err != nil {
		return func() {}, false, fmt.Errorf("acquire booking lock: %w", err)
	}
	if !ok {
		return func() {}, false, nil
	}

	return func() { l.release(k, token) }, true, nil
}

// release runs on its own context; the request's may already be cancelled.
// A failed release leaves the key to expire after the TTL.
func (l *RedisLocker) release(k, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := releaseScript.Run(ctx, l.client, []string{k}, token).Err(); err != nil {
		l.log.Error("booking lock release failed",
			zap.String("key", k),
			zap.Duration("expires_in", l.ttl),
			zap.Error(err),
		)
	}
}

func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return client, nil
}
