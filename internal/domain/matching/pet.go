// Package matching aggregates the per-factor compatibility signals
// into a single pet-to-pet match score.
package matching

import (
	"time"

	"github.com/turtacn/PetMatch-Engine/internal/domain/genetics"
	"github.com/turtacn/PetMatch-Engine/pkg/types/common"
)

// PetProfile is the matching view of a pet. Every field beyond ID and
// Species is optional; each present field contributes one data point
// to the match confidence.
type PetProfile struct {
	ID          common.PetID   `json:"id"`
	Name        string         `json:"name"`
	Species     common.Species `json:"species"`
	Breed       string         `json:"breed,omitempty"`
	Gender      common.Gender  `json:"gender,omitempty"`
	BirthDate   *time.Time     `json:"birthDate,omitempty"`
	Temperament []float64      `json:"temperament,omitempty"`

	// Genetic is the loaded DNA profile, when the owner has uploaded
	// test results. HasDNAData may be set without a loaded profile
	// when only the flag is known (profile stored elsewhere).
	Genetic    *genetics.Profile `json:"genetic,omitempty"`
	HasDNAData bool              `json:"hasDnaData"`
}

// carriesDNA reports whether the pet contributes a DNA signal.
func (p *PetProfile) carriesDNA() bool {
	return p.HasDNAData || p.Genetic != nil
}

// MatchResult is the aggregated outcome of a pet pairing.
type MatchResult struct {
	Score      int      `json:"score"`
	Confidence float64  `json:"confidence"`
	Reasons    []string `json:"reasons"`
}

//Personal.AI order the ending
