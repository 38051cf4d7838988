package genetics

import (
	"time"

	"github.com/turtacn/PetMatch-Engine/pkg/types/common"
)

// Recommendation is the pairing advice derived from the final score.
type Recommendation string

const (
	HighlyRecommended Recommendation = "highly_recommended"
	Recommended       Recommendation = "recommended"
	Caution           Recommendation = "caution"
	NotRecommended    Recommendation = "not_recommended"
)

// String returns the string representation of the recommendation.
func (r Recommendation) String() string {
	return string(r)
}

// Description returns a human-readable explanation of the
// recommendation tier.
func (r Recommendation) Description() string {
	switch r {
	case HighlyRecommended:
		return "Excellent genetic pairing with strong disease protection and diversity"
	case Recommended:
		return "Sound genetic pairing with acceptable risk levels"
	case Caution:
		return "Pairing carries elevated genetic risk, review predicted diseases"
	case NotRecommended:
		return "Pairing is genetically inadvisable"
	default:
		return "Unknown recommendation"
	}
}

// RecommendationFor maps a compatibility score to its tier.
func RecommendationFor(score float64) Recommendation {
	switch {
	case score >= 85:
		return HighlyRecommended
	case score >= 70:
		return Recommended
	case score >= 50:
		return Caution
	default:
		return NotRecommended
	}
}

// SNPComparison records how one marker shared by both profiles lines
// up.
type SNPComparison struct {
	SNPID          string  `json:"snpId"`
	PetAGenotype   string  `json:"petAGenotype"`
	PetBGenotype   string  `json:"petBGenotype"`
	Compatibility  float64 `json:"compatibility"`
	RiskReduction  float64 `json:"riskReduction"`
	DiversityBoost float64 `json:"diversityBoost"`
}

// PredictedDisease is a disease the offspring could inherit, with its
// Mendelian transmission risk.
type PredictedDisease struct {
	Disease         string   `json:"disease"`
	InheritanceRisk float64  `json:"inheritanceRisk"`
	Severity        Severity `json:"severity"`
}

// Offspring summarizes the expected genetic outcome of the pairing.
type Offspring struct {
	ExpectedDiseases []PredictedDisease `json:"expectedDiseases"`
	ExpectedTraits   []string           `json:"expectedTraits"`
	GeneticDiversity float64            `json:"geneticDiversity"`
}

// CompatibilityResult is the full pairwise genetic analysis.
type CompatibilityResult struct {
	AnalysisID         common.ID       `json:"analysisId"`
	PetAID             common.PetID    `json:"petAId"`
	PetBID             common.PetID    `json:"petBId"`
	CompatibilityScore float64         `json:"compatibilityScore"`
	SNPComparisons     []SNPComparison `json:"snpComparisons"`
	PredictedOffspring Offspring       `json:"predictedOffspring"`
	Recommendation     Recommendation  `json:"recommendation"`
	Reasoning          []string        `json:"reasoning"`
	PreventionMeasures []string        `json:"preventionMeasures"`
	Confidence         float64         `json:"confidence"`
	AnalysisDate       time.Time       `json:"analysisDate"`
	ExpiryDate         time.Time       `json:"expiryDate"`
}

// IsExpired reports whether the analysis has aged past its advisory
// validity window. Expiry is not enforced by the engine itself.
func (r *CompatibilityResult) IsExpired(now time.Time) bool {
	return now.After(r.ExpiryDate)
}

//Personal.AI order the ending
