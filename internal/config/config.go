// Package config defines all configuration structures for the PetMatch
// compatibility engine.  No I/O or parsing logic lives here — only plain data
// types and validation.
package config

import (
	"fmt"
	"time"

	"github.com/turtacn/PetMatch-Engine/internal/infrastructure/monitoring/logging"
)

// EngineConfig holds the scoring-engine tunables.
type EngineConfig struct {
	// BreedCacheLimit is the breed-pair cache ceiling.  When the cache
	// reaches this size it is cleared wholesale before the next insert.
	BreedCacheLimit int `mapstructure:"breed_cache_limit"`

	// GeneticCacheLimit is the genetic-pair cache ceiling.
	GeneticCacheLimit int `mapstructure:"genetic_cache_limit"`

	// ReportValidity is how long a genetic compatibility report stays valid.
	// The engine stamps ExpiryDate = AnalysisDate + ReportValidity; it does
	// not enforce expiry itself — callers check it.
	ReportValidity time.Duration `mapstructure:"report_validity"`
}

// RedisConfig holds the optional shared result-cache connection parameters.
type RedisConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	DefaultTTL   time.Duration `mapstructure:"default_ttl"`
}

// MetricsConfig holds the prometheus collector settings.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
	Subsystem string `mapstructure:"subsystem"`
}

// Config is the root configuration object.
type Config struct {
	Log     logging.LogConfig `mapstructure:"log"`
	Engine  EngineConfig      `mapstructure:"engine"`
	Redis   RedisConfig       `mapstructure:"redis"`
	Metrics MetricsConfig     `mapstructure:"metrics"`
}

// Validate checks cross-field constraints after defaults have been applied.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	if c.Engine.BreedCacheLimit < 1 {
		return fmt.Errorf("config: engine.breed_cache_limit must be ≥ 1, got %d", c.Engine.BreedCacheLimit)
	}
	if c.Engine.GeneticCacheLimit < 1 {
		return fmt.Errorf("config: engine.genetic_cache_limit must be ≥ 1, got %d", c.Engine.GeneticCacheLimit)
	}
	if c.Engine.ReportValidity <= 0 {
		return fmt.Errorf("config: engine.report_validity must be positive, got %s", c.Engine.ReportValidity)
	}

	if c.Redis.Enabled {
		if c.Redis.Addr == "" {
			return fmt.Errorf("config: redis.addr is required when redis.enabled is true")
		}
		if c.Redis.DB < 0 {
			return fmt.Errorf("config: redis.db must be ≥ 0, got %d", c.Redis.DB)
		}
	}

	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("config: metrics.namespace is required when metrics.enabled is true")
	}

	return nil
}

//Personal.AI order the ending
