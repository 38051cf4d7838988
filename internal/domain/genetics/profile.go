package genetics

import (
	"time"

	"github.com/turtacn/PetMatch-Engine/pkg/types/common"
)

// Provider identifies the commercial DNA test the raw markers came
// from.
type Provider string

const (
	ProviderEmbark      Provider = "embark"
	ProviderWisdomPanel Provider = "wisdom_panel"
	ProviderOther       Provider = "other"
)

// IsValid checks whether the provider is recognized.
func (p Provider) IsValid() bool {
	switch p {
	case ProviderEmbark, ProviderWisdomPanel, ProviderOther:
		return true
	default:
		return false
	}
}

// String returns the string representation of the provider.
func (p Provider) String() string {
	return string(p)
}

// Marker is a single sequenced SNP position.
type Marker struct {
	RsID       string  `json:"rsId"`
	Chromosome int     `json:"chromosome"`
	Position   int64   `json:"position"`
	Allele1    string  `json:"allele1"`
	Allele2    string  `json:"allele2"`
	Genotype   string  `json:"genotype"`
	Frequency  float64 `json:"frequency"`
}

// Heterozygous reports whether the two alleles differ.
func (m Marker) Heterozygous() bool {
	return m.Allele1 != m.Allele2
}

// DiseaseRisk is a pet's analyzed risk for one reference disease.
// Every profile carries one entry per known disease; diseases with no
// overlapping markers are recorded as clear with zero risk.
type DiseaseRisk struct {
	Disease Disease       `json:"disease"`
	Risk    float64       `json:"petRisk"`
	Status  CarrierStatus `json:"carrierStatus"`
}

// Profile is the full genetic picture derived from one raw marker map.
type Profile struct {
	PetID                 common.PetID       `json:"petId"`
	Breed                 string             `json:"breed"`
	Species               common.Species     `json:"species"`
	Markers               []Marker           `json:"snpMarkers"`
	TotalMarkers          int                `json:"totalMarkersSequenced"`
	BreedPurity           float64            `json:"breedPurity"`
	BreedMixture          map[string]float64 `json:"breedMixture"`
	Heterozygosity        float64            `json:"heterozygosity"`
	InbreedingCoefficient float64            `json:"inbreedingCoefficient"`
	DiseaseRisks          []DiseaseRisk      `json:"diseaseRisks"`
	Provider              Provider           `json:"testProvider"`
	TestDate              time.Time          `json:"testDate"`
	Confidence            float64            `json:"confidence"`
}

// RiskFor returns the profile's analyzed risk entry for the disease
// id, if present.
func (p *Profile) RiskFor(diseaseID string) (DiseaseRisk, bool) {
	for _, r := range p.DiseaseRisks {
		if r.Disease.ID == diseaseID {
			return r, true
		}
	}
	return DiseaseRisk{}, false
}

//Personal.AI order the ending
