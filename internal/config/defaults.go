package config

import "time"

// Default value constants.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultBreedCacheLimit   = 5000
	DefaultGeneticCacheLimit = 5000

	// Genetic compatibility reports are valid for two years.
	DefaultReportValidity = 2 * 365 * 24 * time.Hour

	DefaultRedisAddr = "localhost:6379"
	DefaultRedisTTL  = 15 * time.Minute

	DefaultMetricsNamespace = "petmatch"
	DefaultMetricsSubsystem = "engine"
)

// ApplyDefaults fills every zero-value field in cfg with the engine default.
// Fields already set by the caller are left unchanged so that explicit
// configuration always wins.  Must be called after unmarshalling and before
// Validate() so optional-but-defaulted fields are never seen as missing.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	if cfg.Engine.BreedCacheLimit == 0 {
		cfg.Engine.BreedCacheLimit = DefaultBreedCacheLimit
	}
	if cfg.Engine.GeneticCacheLimit == 0 {
		cfg.Engine.GeneticCacheLimit = DefaultGeneticCacheLimit
	}
	if cfg.Engine.ReportValidity == 0 {
		cfg.Engine.ReportValidity = DefaultReportValidity
	}

	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = DefaultRedisAddr
	}
	if cfg.Redis.DefaultTTL == 0 {
		cfg.Redis.DefaultTTL = DefaultRedisTTL
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Subsystem == "" {
		cfg.Metrics.Subsystem = DefaultMetricsSubsystem
	}
}

//Personal.AI order the ending
