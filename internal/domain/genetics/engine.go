package genetics

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	apperrors "github.com/turtacn/PetMatch-Engine/pkg/errors"
	"github.com/turtacn/PetMatch-Engine/pkg/types/common"

	"github.com/turtacn/PetMatch-Engine/internal/infrastructure/cache"
)

// markerPrefix selects SNP entries out of a raw provider export.
const markerPrefix = "rs"

// profileConfidence and analysisConfidence are the fixed confidence
// levels attached to loaded profiles and pairwise analyses.
const (
	profileConfidence  = 0.95
	analysisConfidence = 0.92
)

// Final-score weights.
const (
	weightRiskReduction = 50.0
	weightDiversity     = 30.0
	weightBreedMatch    = 20.0

	sameBreedFlag  = 1.0
	mixedBreedFlag = 0.6
)

// snpAffinity scores a pair of genotypes at the same position.
// Unlisted pairs fall back to 0.5.
var snpAffinity = map[string]map[string]float64{
	"AA": {"AA": 1.0, "AT": 0.8, "TT": 0.5},
	"AT": {"AA": 0.8, "AT": 0.9, "TT": 0.8},
	"TT": {"AA": 0.5, "AT": 0.8, "TT": 1.0},
}

// breedFingerprints maps reference breeds to the panel markers whose
// presence indicates that ancestry.
var breedFingerprints = map[string][]string{
	"Golden Retriever": {"rs123456", "rs123457", "rs123458"},
	"Labrador":         {"rs234567", "rs234568", "rs234569"},
	"German Shepherd":  {"rs345678", "rs345679", "rs345680"},
}

// Option tunes a Model at construction time.
type Option func(*Model)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithReportValidity overrides the advisory validity window stamped
// onto analyses.
func WithReportValidity(d time.Duration) Option {
	return func(m *Model) { m.reportValidity = d }
}

// Model loads genetic profiles and scores pairwise compatibility.
// Pairwise analyses are memoized in a bounded cache keyed by the
// unordered pet-id pair.
type Model struct {
	diseases       []Disease
	cache          *cache.Bounded[*CompatibilityResult]
	reportValidity time.Duration
	now            func() time.Time

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewModel builds a Model with a pair cache bounded at limit entries.
func NewModel(limit int, opts ...Option) *Model {
	m := &Model{
		diseases:       defaultDiseases,
		cache:          cache.NewBounded[*CompatibilityResult](limit),
		reportValidity: 2 * 365 * 24 * time.Hour,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Diseases returns the reference disease table.
func (m *Model) Diseases() []Disease {
	return m.diseases
}

// LoadProfile derives a full genetic profile from a raw marker map as
// exported by a test provider. Keys with the marker prefix become SNP
// markers; everything else is ignored. A map with no markers still
// yields a valid profile with zeroed statistics.
func (m *Model) LoadProfile(petID common.PetID, raw map[string]string, provider Provider) (*Profile, error) {
	if !provider.IsValid() {
		return nil, apperrors.New(apperrors.ErrCodeGeneticProviderUnknown,
			"unknown test provider").WithDetail(string(provider))
	}

	markers := extractMarkers(raw)
	primaryBreed, purity, mixture := analyzeBreedPurity(markers)

	return &Profile{
		PetID:                 petID,
		Breed:                 primaryBreed,
		Species:               common.SpeciesDog,
		Markers:               markers,
		TotalMarkers:          len(markers),
		BreedPurity:           purity,
		BreedMixture:          mixture,
		Heterozygosity:        heterozygosity(markers),
		InbreedingCoefficient: inbreedingCoefficient(markers),
		DiseaseRisks:          m.analyzeDiseaseRisks(markers),
		Provider:              provider,
		TestDate:              m.now(),
		Confidence:            profileConfidence,
	}, nil
}

// extractMarkers pulls SNP entries out of the raw map in a stable
// order. Chromosome, position and frequency are derived
// deterministically from the numeric marker id, so reloading the same
// raw map always yields the same profile.
func extractMarkers(raw map[string]string) []Marker {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		if strings.HasPrefix(k, markerPrefix) && raw[k] != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	markers := make([]Marker, 0, len(keys))
	for _, k := range keys {
		val := raw[k]
		var a1, a2 string
		if len(val) >= 2 {
			a1, a2 = string(val[0]), string(val[1])
		} else {
			a1, a2 = string(val[0]), string(val[0])
		}
		id, _ := strconv.ParseInt(strings.TrimPrefix(k, markerPrefix), 10, 64)
		markers = append(markers, Marker{
			RsID:       k,
			Chromosome: int(id % 38),
			Position:   id,
			Allele1:    a1,
			Allele2:    a2,
			Genotype:   a1 + a2,
			Frequency:  float64(id%1000) / 1000.0,
		})
	}
	return markers
}

func analyzeBreedPurity(markers []Marker) (string, float64, map[string]float64) {
	present := make(map[string]struct{}, len(markers))
	for _, mk := range markers {
		present[mk.RsID] = struct{}{}
	}

	bestMatch := "Mixed"
	bestScore := 0.0
	mixture := make(map[string]float64, len(breedFingerprints))
	for _, breed := range fingerprintBreeds() {
		fingerprint := breedFingerprints[breed]
		matched := 0
		for _, rsID := range fingerprint {
			if _, ok := present[rsID]; ok {
				matched++
			}
		}
		score := float64(matched) / float64(len(fingerprint))
		mixture[breed] = score * 100
		if score > bestScore {
			bestScore = score
			bestMatch = breed
		}
	}
	return bestMatch, bestScore * 100, mixture
}

// fingerprintBreeds returns reference breeds in a stable order so the
// best-match tiebreak is deterministic.
func fingerprintBreeds() []string {
	breeds := make([]string, 0, len(breedFingerprints))
	for b := range breedFingerprints {
		breeds = append(breeds, b)
	}
	sort.Strings(breeds)
	return breeds
}

func heterozygosity(markers []Marker) float64 {
	if len(markers) == 0 {
		return 0
	}
	het := 0
	for _, mk := range markers {
		if mk.Heterozygous() {
			het++
		}
	}
	return float64(het) / float64(len(markers))
}

func inbreedingCoefficient(markers []Marker) float64 {
	if len(markers) == 0 {
		return 0
	}
	hom := 0
	for _, mk := range markers {
		if !mk.Heterozygous() {
			hom++
		}
	}
	homRate := float64(hom) / float64(len(markers))
	return common.Clamp01((homRate - 0.5) / 0.5)
}

// analyzeDiseaseRisks produces one entry per reference disease. A
// homozygous risk marker contributes 1.0, a heterozygous one 0.5; the
// average scales the disease's baseline population risk.
func (m *Model) analyzeDiseaseRisks(markers []Marker) []DiseaseRisk {
	byID := make(map[string]Marker, len(markers))
	for _, mk := range markers {
		byID[mk.RsID] = mk
	}

	risks := make([]DiseaseRisk, 0, len(m.diseases))
	for _, disease := range m.diseases {
		var hits []Marker
		for _, rsID := range disease.RiskSNPs {
			if mk, ok := byID[rsID]; ok {
				hits = append(hits, mk)
			}
		}
		if len(hits) == 0 {
			risks = append(risks, DiseaseRisk{Disease: disease, Risk: 0, Status: StatusClear})
			continue
		}

		total := 0.0
		for _, mk := range hits {
			if mk.Heterozygous() {
				total += 0.5
			} else {
				total += 1.0
			}
		}
		avg := total / float64(len(hits))

		status := StatusClear
		switch {
		case avg >= 0.9:
			status = StatusAffected
		case avg >= 0.4:
			status = StatusCarrier
		}
		risks = append(risks, DiseaseRisk{
			Disease: disease,
			Risk:    common.Clamp01(disease.BaselineRisk * avg),
			Status:  status,
		})
	}
	return risks
}

// CalculateCompatibility runs the full pairwise analysis. Both
// profiles are required; results are memoized by unordered pet-id
// pair, which makes the analysis symmetric by construction.
func (m *Model) CalculateCompatibility(a, b *Profile) (*CompatibilityResult, error) {
	if a == nil || b == nil {
		return nil, apperrors.New(apperrors.ErrCodeMissingProfile,
			"both genetic profiles are required")
	}

	key := cache.PairKey(string(a.PetID), string(b.PetID))
	if res, ok := m.cache.Get(key); ok {
		m.hits.Add(1)
		return res, nil
	}
	m.misses.Add(1)

	comparisons := m.compareSNPs(a, b)
	riskReduction := m.diseaseRiskReduction(a, b)
	diversity := offspringDiversity(a, b)
	predicted := m.predictOffspringDiseases(a, b)

	breedFlag := mixedBreedFlag
	if a.Breed == b.Breed {
		breedFlag = sameBreedFlag
	}
	score := common.ClampScore(riskReduction*weightRiskReduction +
		diversity*weightDiversity + breedFlag*weightBreedMatch)

	now := m.now()
	result := &CompatibilityResult{
		AnalysisID:         common.NewID(),
		PetAID:             a.PetID,
		PetBID:             b.PetID,
		CompatibilityScore: score,
		SNPComparisons:     comparisons,
		PredictedOffspring: Offspring{
			ExpectedDiseases: predicted,
			ExpectedTraits:   predictTraits(),
			GeneticDiversity: diversity,
		},
		Recommendation:     RecommendationFor(score),
		Reasoning:          reasoning(score, riskReduction, diversity),
		PreventionMeasures: m.preventionMeasures(predicted),
		Confidence:         analysisConfidence,
		AnalysisDate:       now,
		ExpiryDate:         now.Add(m.reportValidity),
	}
	m.cache.Put(key, result)
	return result, nil
}

// compareSNPs lines up the markers both profiles share.
func (m *Model) compareSNPs(a, b *Profile) []SNPComparison {
	byID := make(map[string]Marker, len(b.Markers))
	for _, mk := range b.Markers {
		byID[mk.RsID] = mk
	}

	var comparisons []SNPComparison
	for _, snpA := range a.Markers {
		snpB, ok := byID[snpA.RsID]
		if !ok {
			continue
		}
		affinity := 0.5
		if row, ok := snpAffinity[snpA.Genotype]; ok {
			if v, ok := row[snpB.Genotype]; ok {
				affinity = v
			}
		}
		rr := 0.0
		if snpA.Genotype != snpB.Genotype {
			rr = 0.3
		}
		boost := 0.0
		if snpA.Heterozygous() && snpB.Heterozygous() {
			boost = 0.2
		}
		comparisons = append(comparisons, SNPComparison{
			SNPID:          snpA.RsID,
			PetAGenotype:   snpA.Genotype,
			PetBGenotype:   snpB.Genotype,
			Compatibility:  affinity,
			RiskReduction:  rr,
			DiversityBoost: boost,
		})
	}
	return comparisons
}

// diseaseRiskReduction averages, over the reference diseases, how far
// the riskier parent stays below certainty.
func (m *Model) diseaseRiskReduction(a, b *Profile) float64 {
	total := 0.0
	for _, disease := range m.diseases {
		riskA, riskB := 0.0, 0.0
		if r, ok := a.RiskFor(disease.ID); ok {
			riskA = r.Risk
		}
		if r, ok := b.RiskFor(disease.ID); ok {
			riskB = r.Risk
		}
		total += 1 - math.Max(riskA, riskB)
	}
	return total / float64(len(m.diseases))
}

func offspringDiversity(a, b *Profile) float64 {
	return common.Clamp01((a.Heterozygosity+b.Heterozygosity)/2 + 0.1)
}

// predictOffspringDiseases applies Mendelian transmission logic per
// inheritance pattern. Only diseases both profiles were analyzed for
// are considered.
func (m *Model) predictOffspringDiseases(a, b *Profile) []PredictedDisease {
	var predicted []PredictedDisease
	for _, disease := range m.diseases {
		riskA, okA := a.RiskFor(disease.ID)
		riskB, okB := b.RiskFor(disease.ID)
		if !okA || !okB {
			continue
		}

		risk := 0.0
		switch disease.Inheritance {
		case AutosomalRecessive:
			if riskA.Status != StatusClear && riskB.Status != StatusClear {
				risk = 0.25
			}
		case AutosomalDominant:
			if riskA.Status == StatusAffected || riskB.Status == StatusAffected {
				risk = 0.5
			}
		case XLinked:
			// Flat approximation: half of male offspring of a
			// carrier dam are affected, halved again for carrier
			// uncertainty. Clear/clear pairings carry no allele
			// to transmit.
			if riskA.Status != StatusClear || riskB.Status != StatusClear {
				risk = 0.25
			}
		}
		if risk > 0 {
			predicted = append(predicted, PredictedDisease{
				Disease:         disease.Name,
				InheritanceRisk: risk,
				Severity:        disease.Severity,
			})
		}
	}
	return predicted
}

func reasoning(score, riskReduction, diversity float64) []string {
	var reasons []string
	if riskReduction > 0.7 {
		reasons = append(reasons, "Excellent disease risk reduction for offspring")
	} else if riskReduction > 0.5 {
		reasons = append(reasons, "Good disease risk reduction")
	}
	if diversity > 0.7 {
		reasons = append(reasons, "High genetic diversity in offspring")
	}
	if score >= 85 {
		reasons = append(reasons, "Excellent overall genetic compatibility")
	}
	return reasons
}

// preventionMeasures merges the baseline measures with every
// predicted disease's measures, deduplicated in first-seen order.
func (m *Model) preventionMeasures(predicted []PredictedDisease) []string {
	measures := []string{
		"Regular health screenings for offspring",
		"Maintain healthy weight and exercise",
		"Provide quality nutrition",
	}
	seen := make(map[string]struct{}, len(measures))
	for _, ms := range measures {
		seen[ms] = struct{}{}
	}
	for _, pd := range predicted {
		for _, disease := range m.diseases {
			if disease.Name != pd.Disease {
				continue
			}
			for _, ms := range disease.PreventionMeasures {
				if _, ok := seen[ms]; ok {
					continue
				}
				seen[ms] = struct{}{}
				measures = append(measures, ms)
			}
		}
	}
	return measures
}

func predictTraits() []string {
	return []string{
		"Blend of both parent breeds",
		"Likely to inherit coat color from parents",
		"Size likely between parent sizes",
	}
}

// CacheStats is a point-in-time snapshot of the pair cache.
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Clears uint64
	Size   int
}

// Stats snapshots the pair cache counters.
func (m *Model) Stats() CacheStats {
	return CacheStats{
		Hits:   m.hits.Load(),
		Misses: m.misses.Load(),
		Clears: m.cache.Clears(),
		Size:   m.cache.Len(),
	}
}

//Personal.AI order the ending
