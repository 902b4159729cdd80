package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/riskibarqy/worldcup-analytics/internal/platform/resilience"
)

// RedisStore is a Backend shared across replicas. Every call passes through
// the circuit breaker so a dead Redis costs one fast failure per request.
type RedisStore struct {
	client  *redis.Client
	prefix  string
	ttl     time.Duration
	breaker *resilience.CircuitBreaker
}

var _ Backend = (*RedisStore)(nil)

type RedisConfig struct {
	URL       string
	KeyPrefix string
	TTL       time.Duration
	Circuit   resilience.CircuitBreakerConfig
}

func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewRedisStoreFromClient(client, cfg.KeyPrefix, cfg.TTL, cfg.Circuit), nil
}

func NewRedisStoreFromClient(client *redis.Client, prefix string, ttl time.Duration, circuit resilience.CircuitBreakerConfig) *RedisStore {
	return &RedisStore{
		client:  client,
		prefix:  prefix,
		ttl:     ttl,
		breaker: circuit.Build(),
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var (
		value []byte
		found bool
	)
	err := s.guard(func() error {
		raw, err := s.client.Get(ctx, s.prefix+key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		value, found = raw, true
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, found, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.guard(func() error {
		return s.client.Set(ctx, s.prefix+key, value, s.ttl).Err()
	})
	if err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	err := s.guard(func() error {
		return s.client.Del(ctx, s.prefix+key).Err()
	})
	if err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) HealthCheck(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) CircuitState() resilience.CircuitState {
	return s.breaker.State()
}

func (s *RedisStore) guard(fn func() error) error {
	return s.breaker.Execute(fn)
}
