package genetics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/turtacn/PetMatch-Engine/pkg/errors"
)

func fixedClock(t *testing.T) func() time.Time {
	t.Helper()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return now }
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	return NewModel(5000, WithClock(fixedClock(t)))
}

func TestLoadProfile_MarkerDerivation(t *testing.T) {
	model := newTestModel(t)

	profile, err := model.LoadProfile("pet-1", map[string]string{
		"rs123456":   "AT",
		"rs123457":   "AA",
		"chip_batch": "9981", // not a marker
	}, ProviderEmbark)
	require.NoError(t, err)

	require.Len(t, profile.Markers, 2)
	assert.Equal(t, 2, profile.TotalMarkers)

	mk := profile.Markers[0]
	assert.Equal(t, "rs123456", mk.RsID)
	assert.Equal(t, 123456%38, mk.Chromosome)
	assert.Equal(t, int64(123456), mk.Position)
	assert.Equal(t, "AT", mk.Genotype)
	assert.True(t, mk.Heterozygous())
	assert.Equal(t, 0.456, mk.Frequency)

	assert.False(t, profile.Markers[1].Heterozygous())
}

func TestLoadProfile_Deterministic(t *testing.T) {
	model := newTestModel(t)
	raw := map[string]string{"rs123456": "AT", "rs234567": "TT", "rs8679508": "AA"}

	first, err := model.LoadProfile("pet-1", raw, ProviderWisdomPanel)
	require.NoError(t, err)
	second, err := model.LoadProfile("pet-1", raw, ProviderWisdomPanel)
	require.NoError(t, err)

	assert.Equal(t, first.Markers, second.Markers)
	assert.Equal(t, first.BreedMixture, second.BreedMixture)
	assert.Equal(t, first.DiseaseRisks, second.DiseaseRisks)
}

func TestLoadProfile_UnknownProvider(t *testing.T) {
	model := newTestModel(t)

	_, err := model.LoadProfile("pet-1", map[string]string{"rs1": "AA"}, Provider("23andme"))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeGeneticProviderUnknown))
}

func TestLoadProfile_BreedPurity(t *testing.T) {
	model := newTestModel(t)

	profile, err := model.LoadProfile("pet-1", map[string]string{
		"rs123456": "AA", "rs123457": "AT", "rs123458": "TT",
		"rs234567": "AA",
	}, ProviderEmbark)
	require.NoError(t, err)

	assert.Equal(t, "Golden Retriever", profile.Breed)
	assert.Equal(t, 100.0, profile.BreedPurity)
	assert.InDelta(t, 100.0/3.0, profile.BreedMixture["Labrador"], 1e-9)
	assert.Zero(t, profile.BreedMixture["German Shepherd"])
}

func TestLoadProfile_EmptyMarkerMap(t *testing.T) {
	model := newTestModel(t)

	profile, err := model.LoadProfile("pet-1", map[string]string{"vendor": "acme"}, ProviderOther)
	require.NoError(t, err)

	assert.Empty(t, profile.Markers)
	assert.Equal(t, "Mixed", profile.Breed)
	assert.Zero(t, profile.Heterozygosity)
	assert.Zero(t, profile.InbreedingCoefficient)
	require.Len(t, profile.DiseaseRisks, len(model.Diseases()))
	for _, r := range profile.DiseaseRisks {
		assert.Equal(t, StatusClear, r.Status)
		assert.Zero(t, r.Risk)
	}
}

func TestLoadProfile_InbreedingCoefficient(t *testing.T) {
	model := newTestModel(t)

	homozygous, err := model.LoadProfile("pet-1", map[string]string{
		"rs1": "AA", "rs2": "TT", "rs3": "AA", "rs4": "TT",
	}, ProviderEmbark)
	require.NoError(t, err)
	assert.Zero(t, homozygous.Heterozygosity)
	assert.Equal(t, 1.0, homozygous.InbreedingCoefficient)

	mixed, err := model.LoadProfile("pet-2", map[string]string{
		"rs1": "AT", "rs2": "AT", "rs3": "AA", "rs4": "TT",
	}, ProviderEmbark)
	require.NoError(t, err)
	assert.Equal(t, 0.5, mixed.Heterozygosity)
	assert.Zero(t, mixed.InbreedingCoefficient)
}

func TestLoadProfile_DiseaseRisks(t *testing.T) {
	model := newTestModel(t)

	profile, err := model.LoadProfile("pet-1", map[string]string{
		"rs8679508": "AT", // hip dysplasia, heterozygous
		"rs8679516": "AA", // degenerative myelopathy, homozygous
	}, ProviderEmbark)
	require.NoError(t, err)

	hip, ok := profile.RiskFor("hip_dysplasia")
	require.True(t, ok)
	assert.Equal(t, StatusCarrier, hip.Status)
	assert.InDelta(t, 0.125, hip.Risk, 1e-9)

	dm, ok := profile.RiskFor("dm")
	require.True(t, ok)
	assert.Equal(t, StatusAffected, dm.Status)
	assert.InDelta(t, 0.03, dm.Risk, 1e-9)

	pra, ok := profile.RiskFor("pra")
	require.True(t, ok)
	assert.Equal(t, StatusClear, pra.Status)
	assert.Zero(t, pra.Risk)
}

func TestCalculateCompatibility_MissingProfile(t *testing.T) {
	model := newTestModel(t)

	profile, err := model.LoadProfile("pet-1", map[string]string{"rs1": "AA"}, ProviderEmbark)
	require.NoError(t, err)

	_, err = model.CalculateCompatibility(profile, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeMissingProfile))

	_, err = model.CalculateCompatibility(nil, profile)
	require.Error(t, err)
}

func TestCalculateCompatibility_CleanProfiles(t *testing.T) {
	model := newTestModel(t)

	a, err := model.LoadProfile("pet-1", map[string]string{"rs1": "AA"}, ProviderEmbark)
	require.NoError(t, err)
	b, err := model.LoadProfile("pet-2", map[string]string{"rs2": "TT"}, ProviderEmbark)
	require.NoError(t, err)

	res, err := model.CalculateCompatibility(a, b)
	require.NoError(t, err)

	// All risks are zero, so risk reduction is total. Diversity floors
	// at 0.1 and both profiles resolve to the Mixed pseudo-breed.
	// 1.0*50 + 0.1*30 + 1.0*20 = 73.
	assert.InDelta(t, 73.0, res.CompatibilityScore, 1e-9)
	assert.Equal(t, Recommended, res.Recommendation)
	assert.Equal(t, 0.92, res.Confidence)
	assert.NotEmpty(t, res.AnalysisID)
	assert.Contains(t, res.Reasoning, "Excellent disease risk reduction for offspring")

	// Neither parent carries any modeled allele, so nothing is
	// predicted for offspring.
	assert.Empty(t, res.PredictedOffspring.ExpectedDiseases)
}

func TestCalculateCompatibility_SymmetricAndCached(t *testing.T) {
	model := newTestModel(t)

	a, err := model.LoadProfile("pet-1", map[string]string{"rs8679508": "AT"}, ProviderEmbark)
	require.NoError(t, err)
	b, err := model.LoadProfile("pet-2", map[string]string{"rs8679508": "AA"}, ProviderEmbark)
	require.NoError(t, err)

	ab, err := model.CalculateCompatibility(a, b)
	require.NoError(t, err)
	ba, err := model.CalculateCompatibility(b, a)
	require.NoError(t, err)

	assert.Same(t, ab, ba)
	stats := model.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestCalculateCompatibility_RecessivePairing(t *testing.T) {
	model := newTestModel(t)

	carrierA, err := model.LoadProfile("pet-1", map[string]string{"rs8679513": "AT"}, ProviderEmbark)
	require.NoError(t, err)
	carrierB, err := model.LoadProfile("pet-2", map[string]string{"rs8679513": "AT"}, ProviderEmbark)
	require.NoError(t, err)
	clearPet, err := model.LoadProfile("pet-3", map[string]string{"rs1": "AA"}, ProviderEmbark)
	require.NoError(t, err)

	res, err := model.CalculateCompatibility(carrierA, carrierB)
	require.NoError(t, err)
	pra := findPredicted(res, "Progressive Retinal Atrophy")
	require.NotNil(t, pra)
	assert.Equal(t, 0.25, pra.InheritanceRisk)
	assert.Equal(t, SeverityHigh, pra.Severity)
	assert.Contains(t, res.PreventionMeasures, "Regular eye exams")

	// A single carrier does not trigger the recessive prediction.
	res, err = model.CalculateCompatibility(carrierA, clearPet)
	require.NoError(t, err)
	assert.Nil(t, findPredicted(res, "Progressive Retinal Atrophy"))
}

func TestCalculateCompatibility_DominantPairing(t *testing.T) {
	model := newTestModel(t)

	affected, err := model.LoadProfile("pet-1", map[string]string{"rs8679517": "AA", "rs8679518": "TT"}, ProviderEmbark)
	require.NoError(t, err)
	clearPet, err := model.LoadProfile("pet-2", map[string]string{"rs1": "AA"}, ProviderEmbark)
	require.NoError(t, err)

	res, err := model.CalculateCompatibility(affected, clearPet)
	require.NoError(t, err)

	hcm := findPredicted(res, "Hypertrophic Cardiomyopathy")
	require.NotNil(t, hcm)
	assert.Equal(t, 0.5, hcm.InheritanceRisk)
	assert.Contains(t, res.PreventionMeasures, "Annual cardiac ultrasound")
}

func TestCalculateCompatibility_XLinkedCarrier(t *testing.T) {
	model := newTestModel(t)

	carrier, err := model.LoadProfile("pet-1", map[string]string{"rs8679519": "AT"}, ProviderEmbark)
	require.NoError(t, err)
	clearPet, err := model.LoadProfile("pet-2", map[string]string{"rs1": "AA"}, ProviderEmbark)
	require.NoError(t, err)

	res, err := model.CalculateCompatibility(carrier, clearPet)
	require.NoError(t, err)

	xl := findPredicted(res, "X-Linked Muscular Dystrophy")
	require.NotNil(t, xl)
	assert.Equal(t, 0.25, xl.InheritanceRisk)
	assert.Equal(t, SeverityCritical, xl.Severity)
}

func TestCalculateCompatibility_SNPComparisons(t *testing.T) {
	model := newTestModel(t)

	a, err := model.LoadProfile("pet-1", map[string]string{"rs10": "AA", "rs11": "AT", "rs12": "AA"}, ProviderEmbark)
	require.NoError(t, err)
	b, err := model.LoadProfile("pet-2", map[string]string{"rs10": "TT", "rs11": "AT", "rs99": "AA"}, ProviderEmbark)
	require.NoError(t, err)

	res, err := model.CalculateCompatibility(a, b)
	require.NoError(t, err)

	require.Len(t, res.SNPComparisons, 2)

	opposed := res.SNPComparisons[0]
	assert.Equal(t, "rs10", opposed.SNPID)
	assert.Equal(t, 0.5, opposed.Compatibility)
	assert.Equal(t, 0.3, opposed.RiskReduction)
	assert.Zero(t, opposed.DiversityBoost)

	matchedHet := res.SNPComparisons[1]
	assert.Equal(t, "rs11", matchedHet.SNPID)
	assert.Equal(t, 0.9, matchedHet.Compatibility)
	assert.Zero(t, matchedHet.RiskReduction)
	assert.Equal(t, 0.2, matchedHet.DiversityBoost)
}

func TestCalculateCompatibility_ExpiryWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	model := NewModel(10,
		WithClock(func() time.Time { return now }),
		WithReportValidity(30*24*time.Hour))

	a, err := model.LoadProfile("pet-1", map[string]string{"rs1": "AA"}, ProviderEmbark)
	require.NoError(t, err)
	b, err := model.LoadProfile("pet-2", map[string]string{"rs2": "AA"}, ProviderEmbark)
	require.NoError(t, err)

	res, err := model.CalculateCompatibility(a, b)
	require.NoError(t, err)

	assert.Equal(t, now, res.AnalysisDate)
	assert.Equal(t, now.Add(30*24*time.Hour), res.ExpiryDate)
	assert.False(t, res.IsExpired(now))
	assert.True(t, res.IsExpired(now.Add(31*24*time.Hour)))
}

func TestRecommendationFor(t *testing.T) {
	tests := []struct {
		score float64
		want  Recommendation
	}{
		{95, HighlyRecommended},
		{85, HighlyRecommended},
		{84.9, Recommended},
		{70, Recommended},
		{69, Caution},
		{50, Caution},
		{49, NotRecommended},
		{0, NotRecommended},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RecommendationFor(tt.score), "score %.1f", tt.score)
		assert.NotEmpty(t, tt.want.Description())
	}
}

func findPredicted(res *CompatibilityResult, name string) *PredictedDisease {
	for i := range res.PredictedOffspring.ExpectedDiseases {
		if res.PredictedOffspring.ExpectedDiseases[i].Disease == name {
			return &res.PredictedOffspring.ExpectedDiseases[i]
		}
	}
	return nil
}

//Personal.AI order the ending
