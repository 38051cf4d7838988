package prometheus

import "time"

// EngineMetrics holds the compatibility engine's metric set.
type EngineMetrics struct {
	// Scoring layer
	CalculationsTotal   CounterVec
	CalculationDuration HistogramVec
	ScoreObserved       HistogramVec

	// Cache layer
	CacheHitsTotal   CounterVec
	CacheMissesTotal CounterVec
	CacheSize        GaugeVec
	CacheClearsTotal CounterVec

	// Genetic layer
	GeneticReportsTotal CounterVec
	ProfilesLoadedTotal CounterVec
	MarkersPerProfile   HistogramVec

	// Reference data
	BreedsLoaded   GaugeVec
	DiseasesLoaded GaugeVec
}

// Default buckets.
var (
	DefaultCalcDurationBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1}
	DefaultScoreBuckets        = []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	DefaultMarkerCountBuckets  = []float64{1, 5, 10, 50, 100, 500, 1000, 5000}
)

// Calculation kind label values.
const (
	KindBreed       = "breed"
	KindGenetic     = "genetic"
	KindTemperament = "temperament"
	KindMatch       = "match"
)

// Cache label values.
const (
	CacheBreed   = "breed_pair"
	CacheGenetic = "genetic_pair"
)

// NewEngineMetrics registers all engine metrics against the collector.
func NewEngineMetrics(collector MetricsCollector) *EngineMetrics {
	m := &EngineMetrics{}

	m.CalculationsTotal = collector.RegisterCounter("calculations_total", "Compatibility calculations performed", "kind", "status")
	m.CalculationDuration = collector.RegisterHistogram("calculation_duration_seconds", "Compatibility calculation duration", DefaultCalcDurationBuckets, "kind")
	m.ScoreObserved = collector.RegisterHistogram("score", "Distribution of returned compatibility scores", DefaultScoreBuckets, "kind")

	m.CacheHitsTotal = collector.RegisterCounter("cache_hits_total", "Pair-cache hits", "cache")
	m.CacheMissesTotal = collector.RegisterCounter("cache_misses_total", "Pair-cache misses", "cache")
	m.CacheSize = collector.RegisterGauge("cache_entries", "Current pair-cache entry count", "cache")
	m.CacheClearsTotal = collector.RegisterCounter("cache_clears_total", "Wholesale cache clears at the size ceiling", "cache")

	m.GeneticReportsTotal = collector.RegisterCounter("genetic_reports_total", "Genetic compatibility reports generated", "recommendation")
	m.ProfilesLoadedTotal = collector.RegisterCounter("genetic_profiles_loaded_total", "Genetic profiles derived from raw marker data", "provider")
	m.MarkersPerProfile = collector.RegisterHistogram("genetic_markers_per_profile", "SNP markers extracted per profile", DefaultMarkerCountBuckets, "provider")

	m.BreedsLoaded = collector.RegisterGauge("breeds_loaded", "Reference breeds in the taxonomy store", "species")
	m.DiseasesLoaded = collector.RegisterGauge("diseases_loaded", "Reference diseases in the genetic model", "severity")

	return m
}

// ObserveCalculation records one calculation with its outcome and duration.
func (m *EngineMetrics) ObserveCalculation(kind, status string, elapsed time.Duration) {
	m.CalculationsTotal.WithLabelValues(kind, status).Inc()
	m.CalculationDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// NopEngineMetrics returns an EngineMetrics whose instruments discard all
// observations.  Used when metrics are disabled and in tests.
func NopEngineMetrics() *EngineMetrics {
	return &EngineMetrics{
		CalculationsTotal:   noopCounterVec{},
		CalculationDuration: noopHistogramVec{},
		ScoreObserved:       noopHistogramVec{},
		CacheHitsTotal:      noopCounterVec{},
		CacheMissesTotal:    noopCounterVec{},
		CacheSize:           noopGaugeVec{},
		CacheClearsTotal:    noopCounterVec{},
		GeneticReportsTotal: noopCounterVec{},
		ProfilesLoadedTotal: noopCounterVec{},
		MarkersPerProfile:   noopHistogramVec{},
		BreedsLoaded:        noopGaugeVec{},
		DiseasesLoaded:      noopGaugeVec{},
	}
}

//Personal.AI order the ending
