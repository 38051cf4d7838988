// Package matching is the application service over the three scoring
// engines: breed compatibility, genetics and the pet aggregator. It
// owns logging, metrics and the optional shared result cache; the
// domain packages stay pure.
package matching

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/turtacn/PetMatch-Engine/internal/config"
	"github.com/turtacn/PetMatch-Engine/internal/domain/breed"
	"github.com/turtacn/PetMatch-Engine/internal/domain/genetics"
	"github.com/turtacn/PetMatch-Engine/internal/domain/matching"
	"github.com/turtacn/PetMatch-Engine/internal/infrastructure/cache"
	"github.com/turtacn/PetMatch-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/PetMatch-Engine/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/PetMatch-Engine/pkg/types/common"
)

// Service is the engine's public operation surface.
type Service interface {
	CalculateBreedCompatibility(ctx context.Context, breedA, breedB string) breed.CompatibilityResult
	GetCompatibleBreeds(ctx context.Context, breedName string, minScore int) []breed.Ranked
	SearchBreeds(ctx context.Context, query string) []breed.Info
	GetAllBreeds(ctx context.Context) []breed.Info
	GetBreed(ctx context.Context, name string) (breed.Info, bool)
	LoadGeneticProfile(ctx context.Context, petID common.PetID, raw map[string]string, provider genetics.Provider) (*genetics.Profile, error)
	CalculateGeneticCompatibility(ctx context.Context, a, b *genetics.Profile) (*genetics.CompatibilityResult, error)
	CalculatePetCompatibility(ctx context.Context, petA, petB *matching.PetProfile) (*matching.MatchResult, error)
}

// Option tunes a Service at construction time.
type Option func(*service)

// WithResultCache wires a shared result cache for genetic analyses,
// letting multiple engine instances reuse each other's reports.
func WithResultCache(rc cache.ResultCache) Option {
	return func(s *service) { s.results = rc }
}

// WithMetrics wires engine metrics. Without it metrics are no-ops.
func WithMetrics(m *prometheus.EngineMetrics) Option {
	return func(s *service) { s.metrics = m }
}

// WithClock overrides the time source for the aggregator and the
// genetics model.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

type service struct {
	store      *breed.Store
	calculator *breed.Calculator
	model      *genetics.Model
	aggregator *matching.Aggregator
	results    cache.ResultCache
	log        logging.Logger
	metrics    *prometheus.EngineMetrics
	now        func() time.Time

	// counterMu guards the last-published cache counters so the
	// monotonic Prometheus counters only receive deltas.
	counterMu sync.Mutex
	published map[string]cacheCounters
}

type cacheCounters struct {
	hits   uint64
	misses uint64
	clears uint64
}

// NewService assembles the full engine from configuration.
func NewService(cfg config.EngineConfig, log logging.Logger, opts ...Option) Service {
	s := &service{
		log:       log.Named("matching-service"),
		metrics:   prometheus.NopEngineMetrics(),
		now:       time.Now,
		published: make(map[string]cacheCounters),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.store = breed.NewStore()
	s.calculator = breed.NewCalculator(s.store, cfg.BreedCacheLimit)
	s.model = genetics.NewModel(cfg.GeneticCacheLimit,
		genetics.WithClock(s.now),
		genetics.WithReportValidity(cfg.ReportValidity))
	s.aggregator = matching.NewAggregator(s.calculator,
		matching.WithGenetics(s.model),
		matching.WithClock(s.now))

	s.publishReferenceCounts()
	return s
}

// publishReferenceCounts sets the static reference-data gauges.
func (s *service) publishReferenceCounts() {
	bySpecies := make(map[string]int)
	for _, b := range s.store.All() {
		bySpecies[b.Species.String()]++
	}
	for species, n := range bySpecies {
		s.metrics.BreedsLoaded.WithLabelValues(species).Set(float64(n))
	}

	bySeverity := make(map[string]int)
	for _, d := range s.model.Diseases() {
		bySeverity[d.Severity.String()]++
	}
	for severity, n := range bySeverity {
		s.metrics.DiseasesLoaded.WithLabelValues(severity).Set(float64(n))
	}
}

func (s *service) CalculateBreedCompatibility(ctx context.Context, breedA, breedB string) breed.CompatibilityResult {
	start := s.now()
	res := s.calculator.Calculate(breedA, breedB)
	stats := s.calculator.Stats()
	s.publishCacheStats(prometheus.CacheBreed,
		cacheCounters{hits: stats.Hits, misses: stats.Misses, clears: stats.Clears}, stats.Size)
	s.metrics.ObserveCalculation(prometheus.KindBreed, "ok", s.now().Sub(start))
	s.metrics.ScoreObserved.WithLabelValues(prometheus.KindBreed).Observe(float64(res.Score))

	s.log.Debug("breed compatibility calculated",
		logging.String("breed_a", breedA),
		logging.String("breed_b", breedB),
		logging.Int("score", res.Score),
		logging.Float64("confidence", res.Confidence))
	return res
}

func (s *service) GetCompatibleBreeds(ctx context.Context, breedName string, minScore int) []breed.Ranked {
	ranked := s.calculator.CompatibleBreeds(breedName, minScore)
	if len(ranked) == 0 {
		if _, known := s.store.Lookup(breedName); !known {
			s.log.Warn("compatible breeds requested for unknown breed",
				logging.String("breed", breedName))
		}
	}
	return ranked
}

func (s *service) SearchBreeds(ctx context.Context, query string) []breed.Info {
	return s.store.Search(query)
}

func (s *service) GetAllBreeds(ctx context.Context) []breed.Info {
	return s.store.All()
}

func (s *service) GetBreed(ctx context.Context, name string) (breed.Info, bool) {
	return s.store.Lookup(name)
}

func (s *service) LoadGeneticProfile(ctx context.Context, petID common.PetID, raw map[string]string, provider genetics.Provider) (*genetics.Profile, error) {
	profile, err := s.model.LoadProfile(petID, raw, provider)
	if err != nil {
		s.log.Warn("genetic profile load failed",
			logging.String("pet_id", string(petID)),
			logging.Err(err))
		return nil, err
	}
	s.metrics.ProfilesLoadedTotal.WithLabelValues(provider.String()).Inc()
	s.metrics.MarkersPerProfile.WithLabelValues(provider.String()).Observe(float64(profile.TotalMarkers))
	s.log.Info("genetic profile loaded",
		logging.String("pet_id", string(petID)),
		logging.String("provider", provider.String()),
		logging.Int("markers", profile.TotalMarkers),
		logging.String("primary_breed", profile.Breed))
	return profile, nil
}

func (s *service) CalculateGeneticCompatibility(ctx context.Context, a, b *genetics.Profile) (*genetics.CompatibilityResult, error) {
	start := s.now()

	if s.results != nil && a != nil && b != nil {
		return s.sharedGeneticCompatibility(ctx, a, b, start)
	}
	return s.localGeneticCompatibility(a, b, start)
}

// sharedGeneticCompatibility consults the shared result cache first
// and falls back to local computation when the cache is unreachable.
func (s *service) sharedGeneticCompatibility(ctx context.Context, a, b *genetics.Profile, start time.Time) (*genetics.CompatibilityResult, error) {
	key := "genetic:" + cache.PairKey(string(a.PetID), string(b.PetID))
	var cached genetics.CompatibilityResult
	err := s.results.GetOrSet(ctx, key, &cached, 0, func(ctx context.Context) (interface{}, error) {
		res, err := s.model.CalculateCompatibility(a, b)
		if err != nil {
			return nil, err
		}
		s.metrics.GeneticReportsTotal.WithLabelValues(res.Recommendation.String()).Inc()
		return res, nil
	})
	if err != nil {
		if cache.IsUnavailable(err) {
			s.log.Warn("shared result cache unavailable, computing locally",
				logging.Err(err))
			return s.localGeneticCompatibility(a, b, start)
		}
		s.metrics.ObserveCalculation(prometheus.KindGenetic, "error", s.now().Sub(start))
		return nil, err
	}
	if cached.IsExpired(s.now()) {
		s.log.Debug("cached genetic analysis past its validity window",
			logging.String("analysis_id", string(cached.AnalysisID)))
	}
	s.metrics.ObserveCalculation(prometheus.KindGenetic, "ok", s.now().Sub(start))
	return &cached, nil
}

func (s *service) localGeneticCompatibility(a, b *genetics.Profile, start time.Time) (*genetics.CompatibilityResult, error) {
	res, err := s.model.CalculateCompatibility(a, b)
	if err != nil {
		s.metrics.ObserveCalculation(prometheus.KindGenetic, "error", s.now().Sub(start))
		return nil, err
	}
	stats := s.model.Stats()
	s.publishCacheStats(prometheus.CacheGenetic,
		cacheCounters{hits: stats.Hits, misses: stats.Misses, clears: stats.Clears}, stats.Size)
	s.metrics.ObserveCalculation(prometheus.KindGenetic, "ok", s.now().Sub(start))
	s.metrics.GeneticReportsTotal.WithLabelValues(res.Recommendation.String()).Inc()
	s.metrics.ScoreObserved.WithLabelValues(prometheus.KindGenetic).Observe(res.CompatibilityScore)

	s.log.Info("genetic compatibility calculated",
		logging.String("pet_a", string(a.PetID)),
		logging.String("pet_b", string(b.PetID)),
		logging.Float64("score", res.CompatibilityScore),
		logging.String("recommendation", res.Recommendation.String()))
	return res, nil
}

func (s *service) CalculatePetCompatibility(ctx context.Context, petA, petB *matching.PetProfile) (*matching.MatchResult, error) {
	start := s.now()
	res, err := s.aggregator.Calculate(petA, petB)
	if err != nil {
		s.metrics.ObserveCalculation(prometheus.KindMatch, "error", s.now().Sub(start))
		s.log.Warn("pet compatibility rejected", logging.Err(err))
		return nil, err
	}
	s.metrics.ObserveCalculation(prometheus.KindMatch, "ok", s.now().Sub(start))
	s.metrics.ScoreObserved.WithLabelValues(prometheus.KindMatch).Observe(float64(res.Score))
	if len(petA.Temperament) > 0 && len(petA.Temperament) == len(petB.Temperament) {
		similarity := matching.CosineSimilarity(petA.Temperament, petB.Temperament)
		s.metrics.ScoreObserved.WithLabelValues(prometheus.KindTemperament).Observe(similarity * 100)
	}

	s.log.Info("pet compatibility calculated",
		logging.String("pet_a", petName(petA)),
		logging.String("pet_b", petName(petB)),
		logging.Int("score", res.Score),
		logging.Float64("confidence", res.Confidence))
	return res, nil
}

// publishCacheStats feeds one pair cache's counters into Prometheus.
// The domain snapshots are cumulative, so only the delta since the
// last publication is added to the monotonic counters. Snapshots are
// taken outside the lock and may arrive out of order under concurrent
// calculations; a stale snapshot must never rewind the high-water
// marks, or the unsigned delta would underflow.
func (s *service) publishCacheStats(kind string, current cacheCounters, size int) {
	s.counterMu.Lock()
	last := s.published[kind]
	hits := counterDelta(current.hits, last.hits)
	misses := counterDelta(current.misses, last.misses)
	clears := counterDelta(current.clears, last.clears)
	s.published[kind] = cacheCounters{
		hits:   last.hits + hits,
		misses: last.misses + misses,
		clears: last.clears + clears,
	}
	s.counterMu.Unlock()

	s.metrics.CacheSize.WithLabelValues(kind).Set(float64(size))
	s.metrics.CacheHitsTotal.WithLabelValues(kind).Add(float64(hits))
	s.metrics.CacheMissesTotal.WithLabelValues(kind).Add(float64(misses))
	s.metrics.CacheClearsTotal.WithLabelValues(kind).Add(float64(clears))
}

// counterDelta returns current-last, or 0 when the snapshot is stale.
func counterDelta(current, last uint64) uint64 {
	if current < last {
		return 0
	}
	return current - last
}

func petName(p *matching.PetProfile) string {
	if p == nil {
		return "<nil>"
	}
	if p.Name != "" {
		return fmt.Sprintf("%s(%s)", p.Name, p.ID)
	}
	return string(p.ID)
}

//Personal.AI order the ending
