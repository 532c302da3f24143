package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/timewinder-app/timewinder/internal/core/domain"
)

// RedisKVStore backs the engine's key-value capability with Redis. Goal and
// streak payloads are stored without expiry; the same client also serves as
// the TTL code store for OTP codes and reset tokens.
type RedisKVStore struct {
	client *redis.Client
}

func NewRedisKVStore(client *redis.Client) *RedisKVStore {
	return &RedisKVStore{client: client}
}

func (s *RedisKVStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrKeyNotFound
		}
		return "", fmt.Errorf("redis get %q failed: %w", key, err)
	}
	return val, nil
}

func (s *RedisKVStore) Set(ctx context.Context, key string, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q failed: %w", key, err)
	}
	return nil
}

func (s *RedisKVStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %q failed: %w", key, err)
	}
	return nil
}

// Put stores a short-lived secret with an expiry (services.CodeStore).
func (s *RedisKVStore) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis setex %q failed: %w", key, err)
	}
	return nil
}

func (s *RedisKVStore) Delete(ctx context.Context, key string) error {
	return s.Remove(ctx, key)
}
