package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/PetMatch-Engine/internal/config"
	"github.com/turtacn/PetMatch-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/PetMatch-Engine/pkg/errors"
)

func TestNewRedisClient(t *testing.T) {
	client := NewRedisClient(config.RedisConfig{Addr: "localhost:6379", DB: 1, PoolSize: 4})
	require.NotNil(t, client)
	assert.Equal(t, "localhost:6379", client.Options().Addr)
	assert.Equal(t, 1, client.Options().DB)
}

func TestNewRedisCache_Options(t *testing.T) {
	client := NewRedisClient(config.RedisConfig{Addr: "localhost:6379"})
	c := NewRedisCache(client, logging.NewNopLogger(),
		WithPrefix("test:"),
		WithDefaultTTL(time.Minute),
	).(*redisCache)

	assert.Equal(t, "test:genetic|a|b", c.fullKey("genetic|a|b"))
	assert.Equal(t, time.Minute, c.defaultTTL)
}

func TestJitterTTL_Bounds(t *testing.T) {
	client := NewRedisClient(config.RedisConfig{Addr: "localhost:6379"})
	c := NewRedisCache(client, logging.NewNopLogger()).(*redisCache)

	assert.Equal(t, time.Duration(0), c.jitterTTL(0))

	base := 10 * time.Minute
	for i := 0; i < 50; i++ {
		got := c.jitterTTL(base)
		assert.GreaterOrEqual(t, got, 9*time.Minute)
		assert.LessOrEqual(t, got, 11*time.Minute)
	}
}

func TestCacheMissSentinel(t *testing.T) {
	assert.True(t, errors.IsCode(ErrCacheMiss, errors.ErrCodeNotFound))
	assert.True(t, errors.IsCode(ErrCacheUnavailable, errors.ErrCodeUnavailable))
}

//Personal.AI order the ending
