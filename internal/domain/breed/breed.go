// Package breed holds the breed taxonomy and the breed-level
// compatibility calculator.
package breed

import (
	"strings"

	"github.com/turtacn/PetMatch-Engine/pkg/types/common"
)

// Size buckets breeds by adult body mass.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeGiant  Size = "giant"
)

// IsValid checks whether the size is a known bucket.
func (s Size) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeGiant:
		return true
	default:
		return false
	}
}

// String returns the string representation of the size.
func (s Size) String() string {
	return string(s)
}

// Ordinal maps the size onto a 1..4 scale used for distance scoring.
func (s Size) Ordinal() int {
	switch s {
	case SizeSmall:
		return 1
	case SizeMedium:
		return 2
	case SizeLarge:
		return 3
	case SizeGiant:
		return 4
	default:
		return 0
	}
}

// Energy buckets breeds by typical activity demand.
type Energy string

const (
	EnergyLow    Energy = "low"
	EnergyMedium Energy = "medium"
	EnergyHigh   Energy = "high"
)

// IsValid checks whether the energy level is known.
func (e Energy) IsValid() bool {
	switch e {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the energy level.
func (e Energy) String() string {
	return string(e)
}

// Ordinal maps the energy level onto a 1..3 scale.
func (e Energy) Ordinal() int {
	switch e {
	case EnergyLow:
		return 1
	case EnergyMedium:
		return 2
	case EnergyHigh:
		return 3
	default:
		return 0
	}
}

// Group is a phylogenetic / registry grouping such as "sporting" or
// "shorthair". Groups drive the pairwise group-affinity matrix.
type Group string

// String returns the string representation of the group.
func (g Group) String() string {
	return string(g)
}

// Info is the static taxonomy record for a single breed.
type Info struct {
	Name        string         `json:"name"`
	Species     common.Species `json:"species"`
	Group       Group          `json:"group"`
	Size        Size           `json:"size"`
	Energy      Energy         `json:"energy"`
	Temperament []string       `json:"temperament"`
}

// SharedTraits returns the temperament traits present in both breeds.
// Comparison is case-insensitive.
func (i Info) SharedTraits(other Info) []string {
	seen := make(map[string]struct{}, len(other.Temperament))
	for _, t := range other.Temperament {
		seen[strings.ToLower(t)] = struct{}{}
	}
	var shared []string
	for _, t := range i.Temperament {
		if _, ok := seen[strings.ToLower(t)]; ok {
			shared = append(shared, t)
		}
	}
	return shared
}

//Personal.AI order the ending
