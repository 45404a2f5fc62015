package session

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "hekoprot2:session:"

// RedisStore shares the session between operators of the same Redis instance.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// NewRedisStoreFromURL parses a redis:// URL and pings the server.
func NewRedisStoreFromURL(ctx context.Context, rawURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, crerr.Wrap(err, "parse SESSION_REDIS_URL")
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, crerr.Wrap(err, "ping session redis")
	}
	return NewRedisStore(client), nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, nil
	}

	value, err := s.client.Get(ctx, redisKeyPrefix+key).Result()
	if crerr.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, crerr.Wrapf(err, "redis get %s", key)
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errEmptyKey
	}
	if err := s.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return crerr.Wrapf(err, "redis set %s", key)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := s.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return crerr.Wrapf(err, "redis del %s", key)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
