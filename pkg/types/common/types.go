// Package common holds the shared primitive types used across the
// PetMatch-Engine domains: identifiers, the species taxonomy root, and the
// score helpers that enforce the [0,100] clamping invariant.
package common

import (
	"time"

	"github.com/google/uuid"
)

// ID is a string alias for an entity identifier.  Pet identifiers are owned
// by the calling system; analysis report identifiers are UUID v4.
type ID string

// NewID returns a fresh UUID v4 identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// PetID identifies a pet profile in the calling system.
type PetID string

// Species is the closed set of animal species the engine understands.
type Species string

const (
	SpeciesDog     Species = "dog"
	SpeciesCat     Species = "cat"
	SpeciesBird    Species = "bird"
	SpeciesReptile Species = "reptile"
	SpeciesExotic  Species = "exotic"
)

// IsValid checks if the species is one of the closed variants.
func (s Species) IsValid() bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesBird, SpeciesReptile, SpeciesExotic:
		return true
	default:
		return false
	}
}

// String returns the string representation of the species.
func (s Species) String() string {
	return string(s)
}

// Gender is the closed set of pet genders used for pairing.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid checks if the gender is one of the closed variants.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// String returns the string representation of the gender.
func (g Gender) String() string {
	return string(g)
}

// ClampScore bounds a raw score to the canonical [0,100] range.  Every score
// the engine returns passes through this before leaving the computing layer.
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// RoundScore clamps a raw score to [0,100] and rounds it to the nearest
// integer, the form all public results carry.
func RoundScore(score float64) int {
	clamped := ClampScore(score)
	return int(clamped + 0.5)
}

// Clamp01 bounds a fraction to [0,1].  Used for ratios such as
// heterozygosity, inbreeding coefficients, and per-disease risks.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// AgeYears returns the age in fractional years between birth and now.
func AgeYears(birth, now time.Time) float64 {
	return now.Sub(birth).Hours() / (24 * 365)
}

//Personal.AI order the ending
