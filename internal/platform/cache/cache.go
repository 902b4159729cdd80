package cache

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"golang.org/x/sync/singleflight"

	"github.com/riskibarqy/worldcup-analytics/internal/platform/logging"
)

// Backend stores encoded values by key. A miss is (nil, false, nil).
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Cache collapses concurrent loads of the same key and degrades to the loader
// whenever the backend fails. A nil *Cache is valid and never caches.
type Cache struct {
	backend Backend
	flight  singleflight.Group
	logger  *logging.Logger
}

func New(backend Backend, logger *logging.Logger) *Cache {
	if backend == nil {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Cache{backend: backend, logger: logger}
}

// Remember returns the cached value for key or loads, stores and returns it.
func Remember[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, error) {
	if load == nil {
		var zero T
		return zero, fmt.Errorf("loader is required")
	}
	if c == nil || key == "" {
		return load(ctx)
	}

	if value, ok := lookup[T](ctx, c, key); ok {
		return value, nil
	}

	result, err, _ := c.flight.Do(key, func() (any, error) {
		if cached, ok := lookup[T](ctx, c, key); ok {
			return cached, nil
		}

		loaded, err := load(ctx)
		if err != nil {
			return nil, err
		}
		store(ctx, c, key, loaded)
		return loaded, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	value, _ := result.(T)
	return value, nil
}

func lookup[T any](ctx context.Context, c *Cache, key string) (T, bool) {
	var out T
	raw, found, err := c.backend.Get(ctx, key)
	if err != nil {
		c.logger.WarnContext(ctx, "cache get failed", "key", key, "error", err)
		return out, false
	}
	if !found {
		return out, false
	}
	if err := sonic.Unmarshal(raw, &out); err != nil {
		c.logger.WarnContext(ctx, "cache decode failed", "key", key, "error", err)
		_ = c.backend.Delete(ctx, key)
		return out, false
	}
	return out, true
}

func store[T any](ctx context.Context, c *Cache, key string, value T) {
	raw, err := sonic.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.backend.Set(ctx, key, raw); err != nil {
		c.logger.WarnContext(ctx, "cache set failed", "key", key, "error", err)
	}
}
