package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/PetMatch-Engine/internal/domain/breed"
	"github.com/turtacn/PetMatch-Engine/internal/domain/genetics"
	apperrors "github.com/turtacn/PetMatch-Engine/pkg/errors"
	"github.com/turtacn/PetMatch-Engine/pkg/types/common"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestAggregator(t *testing.T, opts ...AggregatorOption) *Aggregator {
	t.Helper()
	calc := breed.NewCalculator(breed.NewStore(), 5000)
	opts = append([]AggregatorOption{WithClock(func() time.Time { return testNow })}, opts...)
	return NewAggregator(calc, opts...)
}

func birthYearsAgo(years float64) *time.Time {
	bd := testNow.Add(-time.Duration(years * 365 * 24 * float64(time.Hour)))
	return &bd
}

func fullProfile(id common.PetID, name, breedName string, species common.Species, gender common.Gender) *PetProfile {
	return &PetProfile{
		ID:          id,
		Name:        name,
		Species:     species,
		Breed:       breedName,
		Gender:      gender,
		BirthDate:   birthYearsAgo(4),
		Temperament: []float64{0.8, 0.3, 0.6},
	}
}

func TestCalculate_SelfMatch(t *testing.T) {
	agg := newTestAggregator(t)
	pet := fullProfile("pet-1", "Rex", "Golden Retriever", common.SpeciesDog, common.GenderMale)

	_, err := agg.Calculate(pet, pet)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSelfMatch))
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestCalculate_NilProfile(t *testing.T) {
	agg := newTestAggregator(t)
	pet := fullProfile("pet-1", "Rex", "Golden Retriever", common.SpeciesDog, common.GenderMale)

	_, err := agg.Calculate(pet, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeMissingProfile))

	_, err = agg.Calculate(nil, pet)
	require.Error(t, err)
}

func TestCalculate_FullProfiles(t *testing.T) {
	agg := newTestAggregator(t)
	a := fullProfile("pet-1", "Rex", "Golden Retriever", common.SpeciesDog, common.GenderMale)
	b := fullProfile("pet-2", "Luna", "Labrador Retriever", common.SpeciesDog, common.GenderFemale)

	res, err := agg.Calculate(a, b)
	require.NoError(t, err)

	// breed 96, temperament 100, age 100, gender 80:
	// 96*0.4 + 100*0.3 + 100*0.2 + 80*0.1 = 96.4 -> 96.
	assert.Equal(t, 96, res.Score)
	assert.Equal(t, 80.0, res.Confidence)
	assert.Contains(t, res.Reasons, "Breeds are highly compatible")
	assert.Contains(t, res.Reasons, "Personality traits are very similar")
	assert.Contains(t, res.Reasons, "Pets are of similar age")
	assert.Contains(t, res.Reasons, "Compatible gender pairing")
}

func TestCalculate_Symmetry(t *testing.T) {
	agg := newTestAggregator(t)
	a := fullProfile("pet-1", "Rex", "Golden Retriever", common.SpeciesDog, common.GenderMale)
	b := fullProfile("pet-2", "Misu", "Siamese", common.SpeciesCat, common.GenderFemale)

	ab, err := agg.Calculate(a, b)
	require.NoError(t, err)
	ba, err := agg.Calculate(b, a)
	require.NoError(t, err)
	assert.Equal(t, ab.Score, ba.Score)
	assert.Equal(t, ab.Confidence, ba.Confidence)
}

func TestCalculate_SpeciesVeto(t *testing.T) {
	agg := newTestAggregator(t)
	a := fullProfile("pet-1", "Rex", "Golden Retriever", common.SpeciesDog, common.GenderMale)
	b := fullProfile("pet-2", "Misu", "Maine Coon", common.SpeciesCat, common.GenderFemale)
	a.HasDNAData = true
	b.HasDNAData = true

	res, err := agg.Calculate(a, b)
	require.NoError(t, err)

	assert.Less(t, res.Score, 30)
	require.NotEmpty(t, res.Reasons)
	assert.Contains(t, res.Reasons[0], "Different species")
	assert.Equal(t, 100.0, res.Confidence)
}

func TestCalculate_AgeDistance(t *testing.T) {
	agg := newTestAggregator(t)

	base := &PetProfile{ID: "pet-1", Species: common.SpeciesDog, BirthDate: birthYearsAgo(4)}
	near := &PetProfile{ID: "pet-2", Species: common.SpeciesDog, BirthDate: birthYearsAgo(4.1)}
	far := &PetProfile{ID: "pet-3", Species: common.SpeciesDog, BirthDate: birthYearsAgo(12)}

	nearRes, err := agg.Calculate(base, near)
	require.NoError(t, err)
	farRes, err := agg.Calculate(base, far)
	require.NoError(t, err)

	assert.Greater(t, nearRes.Score, farRes.Score)
	assert.Contains(t, nearRes.Reasons, "Pets are of similar age")
	assert.NotContains(t, farRes.Reasons, "Pets are of similar age")
}

func TestCalculate_ConfidenceScalesWithData(t *testing.T) {
	agg := newTestAggregator(t)

	bare := func(id common.PetID) *PetProfile {
		return &PetProfile{ID: id, Species: common.SpeciesDog}
	}
	withBreed := func(id common.PetID) *PetProfile {
		p := bare(id)
		p.Breed = "Beagle"
		return p
	}

	none, err := agg.Calculate(bare("pet-1"), bare("pet-2"))
	require.NoError(t, err)
	one, err := agg.Calculate(withBreed("pet-1"), withBreed("pet-2"))
	require.NoError(t, err)
	full, err := agg.Calculate(
		fullProfile("pet-1", "Rex", "Beagle", common.SpeciesDog, common.GenderMale),
		fullProfile("pet-2", "Max", "Beagle", common.SpeciesDog, common.GenderMale))
	require.NoError(t, err)

	assert.Equal(t, 0.0, none.Confidence)
	assert.Equal(t, 20.0, one.Confidence)
	assert.Equal(t, 80.0, full.Confidence)
	assert.Equal(t, []string{"General compatibility parameters"}, none.Reasons)
}

func TestCalculate_MismatchedTemperamentIsNoSignal(t *testing.T) {
	agg := newTestAggregator(t)

	a := &PetProfile{ID: "pet-1", Species: common.SpeciesDog, Temperament: []float64{1, 0, 0}}
	b := &PetProfile{ID: "pet-2", Species: common.SpeciesDog, Temperament: []float64{1, 0}}

	res, err := agg.Calculate(a, b)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Confidence)
	assert.Equal(t, 50, res.Score)
}

func TestCalculate_DNAPresencePlaceholder(t *testing.T) {
	agg := newTestAggregator(t)

	a := &PetProfile{ID: "pet-1", Species: common.SpeciesDog, HasDNAData: true}
	b := &PetProfile{ID: "pet-2", Species: common.SpeciesDog, HasDNAData: true}

	res, err := agg.Calculate(a, b)
	require.NoError(t, err)

	// 85*0.4 + 50*0.6 = 64.
	assert.Equal(t, 64, res.Score)
	assert.Equal(t, 20.0, res.Confidence)
	assert.Contains(t, res.Reasons, "Molecular compatibility analyzed")
}

func TestCalculate_DNAUsesGeneticModel(t *testing.T) {
	model := genetics.NewModel(100, genetics.WithClock(func() time.Time { return testNow }))
	agg := newTestAggregator(t, WithGenetics(model))

	profA, err := model.LoadProfile("pet-1", map[string]string{"rs1": "AA"}, genetics.ProviderEmbark)
	require.NoError(t, err)
	profB, err := model.LoadProfile("pet-2", map[string]string{"rs2": "TT"}, genetics.ProviderEmbark)
	require.NoError(t, err)

	a := &PetProfile{ID: "pet-1", Species: common.SpeciesDog, Genetic: profA}
	b := &PetProfile{ID: "pet-2", Species: common.SpeciesDog, Genetic: profB}

	res, err := agg.Calculate(a, b)
	require.NoError(t, err)

	// Genetic score for two clean profiles is 73, not the 85
	// presence placeholder: 73*0.4 + 50*0.6 = 59.2 -> 59.
	assert.Equal(t, 59, res.Score)
}

//Personal.AI order the ending
