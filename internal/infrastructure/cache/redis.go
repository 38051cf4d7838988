package cache

import (
	"context"
	"math/rand"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/turtacn/PetMatch-Engine/internal/config"
	"github.com/turtacn/PetMatch-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/PetMatch-Engine/pkg/errors"
)

// Sentinel errors for the shared result cache.
var (
	ErrCacheMiss        = errors.New(errors.ErrCodeNotFound, "cache miss")
	ErrCacheUnavailable = errors.New(errors.ErrCodeUnavailable, "cache unavailable")
)

// IsUnavailable reports whether err means the shared cache itself is
// unreachable, as opposed to a miss or a caller error.
func IsUnavailable(err error) bool {
	return errors.IsCode(err, errors.ErrCodeUnavailable)
}

// ResultCache is the shared result-cache contract.  Deployments that run
// several matcher processes point this at Redis so genetic reports computed
// by one process are visible to the rest; the in-process Bounded cache stays
// authoritative for the hot path either way.
type ResultCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration, loader func(ctx context.Context) (interface{}, error)) error
	Ping(ctx context.Context) error
}

// NewRedisClient builds a go-redis client from the engine configuration.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
}

type redisCache struct {
	client     *redis.Client
	logger     logging.Logger
	prefix     string
	defaultTTL time.Duration
	group      singleflight.Group
}

// RedisOption customises a Redis-backed ResultCache.
type RedisOption func(*redisCache)

// WithPrefix overrides the key prefix (default "petmatch:").
func WithPrefix(prefix string) RedisOption {
	return func(c *redisCache) { c.prefix = prefix }
}

// WithDefaultTTL overrides the TTL applied when Set receives a zero ttl.
func WithDefaultTTL(ttl time.Duration) RedisOption {
	return func(c *redisCache) { c.defaultTTL = ttl }
}

// NewRedisCache wraps a go-redis client as a ResultCache.  Values are
// serialized with goccy/go-json; TTLs get ±10% jitter so keys written in a
// burst do not all expire in the same instant.
func NewRedisCache(client *redis.Client, log logging.Logger, opts ...RedisOption) ResultCache {
	c := &redisCache{
		client:     client,
		logger:     log,
		prefix:     "petmatch:",
		defaultTTL: 15 * time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *redisCache) fullKey(key string) string {
	return c.prefix + key
}

func (c *redisCache) jitterTTL(ttl time.Duration) time.Duration {
	if ttl == 0 {
		return 0
	}
	jitter := float64(ttl) * 0.1 * (rand.Float64()*2 - 1)
	return ttl + time.Duration(jitter)
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, c.fullKey(key)).Bytes()
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		c.logger.Warn("redis get failed", logging.String("key", key), logging.Err(err))
		return ErrCacheUnavailable.WithCause(err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to decode cached value")
	}
	return nil
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode value for cache")
	}
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	if err := c.client.Set(ctx, c.fullKey(key), data, c.jitterTTL(ttl)).Err(); err != nil {
		c.logger.Warn("redis set failed", logging.String("key", key), logging.Err(err))
		return ErrCacheUnavailable.WithCause(err)
	}
	return nil
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.fullKey(k)
	}
	if err := c.client.Del(ctx, full...).Err(); err != nil {
		return ErrCacheUnavailable.WithCause(err)
	}
	return nil
}

// GetOrSet returns the cached value for key or, on a miss, invokes loader
// exactly once per key across concurrent callers (singleflight), stores the
// loaded value, and decodes it into dest.
func (c *redisCache) GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration, loader func(ctx context.Context) (interface{}, error)) error {
	if err := c.Get(ctx, key, dest); err == nil {
		return nil
	} else if !errors.IsCode(err, errors.ErrCodeNotFound) {
		return err
	}

	data, err, _ := c.group.Do(key, func() (interface{}, error) {
		value, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		if err := c.Set(ctx, key, value, ttl); err != nil {
			// A write failure must not fail the load; the value is still good.
			c.logger.Warn("cache backfill failed", logging.String("key", key), logging.Err(err))
		}
		return json.Marshal(value)
	})
	if err != nil {
		return errors.Wrap(err, errors.CodeUnknown, "cache loader failed")
	}
	return json.Unmarshal(data.([]byte), dest)
}

func (c *redisCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return ErrCacheUnavailable.WithCause(err)
	}
	return nil
}

//Personal.AI order the ending
