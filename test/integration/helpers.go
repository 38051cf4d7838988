// Shared infrastructure for the integration test suite: environment
// detection, service bootstrapping, and profile fixtures. All integration
// tests in this package depend on this file.
package integration

import (
	"context"
	"os"
	"testing"
	"time"

	appMatching "github.com/turtacn/PetMatch-Engine/internal/application/matching"
	"github.com/turtacn/PetMatch-Engine/internal/config"
	"github.com/turtacn/PetMatch-Engine/internal/infrastructure/cache"
	"github.com/turtacn/PetMatch-Engine/internal/infrastructure/monitoring/logging"
	domainMatching "github.com/turtacn/PetMatch-Engine/internal/domain/matching"
	commonTypes "github.com/turtacn/PetMatch-Engine/pkg/types/common"
)

// ---------------------------------------------------------------------------
// Environment detection
// ---------------------------------------------------------------------------

const (
	// EnvRedisAddr enables the shared-result-cache tests when set to a
	// reachable Redis address (e.g. "localhost:6379"). The in-process
	// pipeline tests need no external services and always run.
	EnvRedisAddr = "PETMATCH_TEST_REDIS_ADDR"

	// TestTimeout is the maximum duration for a single integration test.
	TestTimeout = 30 * time.Second
)

// ---------------------------------------------------------------------------
// TestEnvironment
// ---------------------------------------------------------------------------

// TestEnvironment aggregates the configuration and fully wired matching
// service required by integration tests. Each test builds a fresh
// environment so cache state never leaks between tests.
type TestEnvironment struct {
	Ctx     context.Context
	Cancel  context.CancelFunc
	Cfg     *config.Config
	Logger  logging.Logger
	Service appMatching.Service
}

// SetupTestEnvironment builds a default-configured engine with a nop logger.
// Teardown is registered on t automatically.
func SetupTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	logger := logging.NewNopLogger()
	svc := appMatching.NewService(cfg.Engine, logger, appMatching.WithClock(func() time.Time { return fixtureNow }))

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	t.Cleanup(cancel)

	return &TestEnvironment{
		Ctx:     ctx,
		Cancel:  cancel,
		Cfg:     cfg,
		Logger:  logger,
		Service: svc,
	}
}

// SetupRedisEnvironment builds an engine backed by a real Redis result
// cache, or skips the calling test when EnvRedisAddr is unset.
func SetupRedisEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	addr := os.Getenv(EnvRedisAddr)
	if addr == "" {
		t.Skipf("skipping Redis integration test: set %s to enable", EnvRedisAddr)
	}

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Redis.Enabled = true
	cfg.Redis.Addr = addr

	logger := logging.NewNopLogger()
	client := cache.NewRedisClient(cfg.Redis)
	rc := cache.NewRedisCache(client, logger, cache.WithDefaultTTL(cfg.Redis.DefaultTTL))

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	t.Cleanup(cancel)
	t.Cleanup(func() { _ = client.Close() })

	if err := rc.Ping(ctx); err != nil {
		t.Skipf("skipping Redis integration test: %s unreachable: %v", addr, err)
	}

	svc := appMatching.NewService(cfg.Engine, logger,
		appMatching.WithResultCache(rc),
		appMatching.WithClock(func() time.Time { return fixtureNow }))
	return &TestEnvironment{
		Ctx:     ctx,
		Cancel:  cancel,
		Cfg:     cfg,
		Logger:  logger,
		Service: svc,
	}
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

// fixtureNow anchors every age computation so tests stay stable over time.
var fixtureNow = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

// newPetProfile builds a pet fixture aged ageYears relative to fixtureNow.
func newPetProfile(id, name string, species commonTypes.Species, breedName string, gender commonTypes.Gender, ageYears float64, temperament []float64) *domainMatching.PetProfile {
	birth := fixtureNow.Add(-time.Duration(ageYears * 365.25 * 24 * float64(time.Hour)))
	return &domainMatching.PetProfile{
		ID:          commonTypes.PetID(id),
		Name:        name,
		Species:     species,
		Breed:       breedName,
		Gender:      gender,
		BirthDate:   &birth,
		Temperament: temperament,
	}
}

// carrierMarkers returns raw marker data carrying one heterozygous risk
// allele for the named SNP plus neutral background markers.
func carrierMarkers(riskSNP string) map[string]string {
	return map[string]string{
		riskSNP:    "AT",
		"rs100001": "AA",
		"rs100002": "GG",
	}
}

// cleanMarkers returns raw marker data with no modeled risk alleles.
func cleanMarkers() map[string]string {
	return map[string]string{
		"rs100001": "AA",
		"rs100002": "GG",
		"rs100003": "CC",
	}
}

//Personal.AI order the ending
