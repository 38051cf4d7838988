package matching

import (
	"fmt"
	"math"
	"time"

	apperrors "github.com/turtacn/PetMatch-Engine/pkg/errors"
	"github.com/turtacn/PetMatch-Engine/pkg/types/common"

	"github.com/turtacn/PetMatch-Engine/internal/domain/breed"
	"github.com/turtacn/PetMatch-Engine/internal/domain/genetics"
)

// Factor weights of the aggregate score. DNA, when present, takes a
// 40% cut of the blended total.
const (
	weightBreed       = 0.4
	weightTemperament = 0.3
	weightAge         = 0.2
	weightGender      = 0.1

	weightDNA = 0.4

	neutralScore = 50.0

	// dnaPresenceScore stands in for a full genetic analysis when only
	// the presence of DNA data is known.
	dnaPresenceScore = 85.0

	// speciesVeto is the hard penalty applied across species.
	speciesVeto = 0.2

	maxDataPoints = 5
)

// Aggregator folds the five compatibility signals into one score.
// The genetics model is optional: without it (or without two loaded
// profiles) the DNA factor falls back to a fixed presence score.
type Aggregator struct {
	breeds   *breed.Calculator
	genetics *genetics.Model
	now      func() time.Time
}

// AggregatorOption tunes an Aggregator at construction time.
type AggregatorOption func(*Aggregator)

// WithGenetics wires a genetics model so the DNA factor reflects the
// actual pairwise analysis instead of the presence placeholder.
func WithGenetics(model *genetics.Model) AggregatorOption {
	return func(a *Aggregator) { a.genetics = model }
}

// WithClock overrides the time source used for age computation.
func WithClock(now func() time.Time) AggregatorOption {
	return func(a *Aggregator) { a.now = now }
}

// NewAggregator builds an Aggregator over the breed calculator.
func NewAggregator(breeds *breed.Calculator, opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{breeds: breeds, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Calculate scores the pairing of two pets. Matching a pet with
// itself, or passing a nil profile, is a contract violation. Every
// factor with data on both sides adds one confidence data point;
// factors without data stay at the neutral 50 and contribute nothing
// to confidence.
func (g *Aggregator) Calculate(petA, petB *PetProfile) (*MatchResult, error) {
	if petA == nil || petB == nil {
		return nil, apperrors.New(apperrors.ErrCodeMissingProfile,
			"both pet profiles are required")
	}
	if petA.ID == petB.ID {
		return nil, apperrors.New(apperrors.ErrCodeSelfMatch,
			"cannot match a pet with itself").WithDetail(string(petA.ID))
	}

	var reasons []string
	dataPoints := 0

	dnaScore := neutralScore
	hasDNA := petA.carriesDNA() && petB.carriesDNA()
	if hasDNA {
		dnaScore = dnaPresenceScore
		if g.genetics != nil && petA.Genetic != nil && petB.Genetic != nil {
			report, err := g.genetics.CalculateCompatibility(petA.Genetic, petB.Genetic)
			if err != nil {
				return nil, err
			}
			dnaScore = report.CompatibilityScore
		}
		reasons = append(reasons, "Molecular compatibility analyzed")
		dataPoints++
	}

	breedScore := neutralScore
	if petA.Breed != "" && petB.Breed != "" {
		res := g.breeds.Calculate(petA.Breed, petB.Breed)
		breedScore = float64(res.Score)
		if breedScore > 80 {
			reasons = append(reasons, "Breeds are highly compatible")
		}
		dataPoints++
	}

	temperamentScore := neutralScore
	if len(petA.Temperament) > 0 && len(petA.Temperament) == len(petB.Temperament) {
		temperamentScore = CosineSimilarity(petA.Temperament, petB.Temperament) * 100
		if temperamentScore > 85 {
			reasons = append(reasons, "Personality traits are very similar")
		}
		dataPoints++
	}

	ageScore := neutralScore
	if petA.BirthDate != nil && petB.BirthDate != nil {
		now := g.now()
		ageDiff := math.Abs(common.AgeYears(*petA.BirthDate, now) - common.AgeYears(*petB.BirthDate, now))
		ageScore = math.Max(0, 100-ageDiff*10)
		if ageDiff <= 2 {
			reasons = append(reasons, "Pets are of similar age")
		}
		dataPoints++
	}

	genderScore := neutralScore
	if petA.Gender != "" && petB.Gender != "" {
		if petA.Gender != petB.Gender {
			genderScore = 80
			reasons = append(reasons, "Compatible gender pairing")
		} else {
			genderScore = 60
		}
		dataPoints++
	}

	raw := breedScore*weightBreed +
		temperamentScore*weightTemperament +
		ageScore*weightAge +
		genderScore*weightGender
	if hasDNA {
		raw = dnaScore*weightDNA + raw*(1-weightDNA)
	}

	if petA.Species != petB.Species {
		raw *= speciesVeto
		reasons = append([]string{fmt.Sprintf("Different species: %s and %s",
			petA.Species, petB.Species)}, reasons...)
	}

	if len(reasons) == 0 {
		reasons = []string{"General compatibility parameters"}
	}
	return &MatchResult{
		Score:      common.RoundScore(raw),
		Confidence: float64(dataPoints) / maxDataPoints * 100,
		Reasons:    reasons,
	}, nil
}

//Personal.AI order the ending
