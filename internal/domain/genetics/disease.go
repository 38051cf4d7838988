// Package genetics implements the DNA model: profile loading from raw
// SNP marker maps and pairwise genetic compatibility analysis.
package genetics

// InheritancePattern is the Mendelian transmission mode of a disease.
type InheritancePattern string

const (
	AutosomalRecessive InheritancePattern = "autosomal_recessive"
	AutosomalDominant  InheritancePattern = "autosomal_dominant"
	XLinked            InheritancePattern = "x_linked"
)

// IsValid checks whether the pattern is a known transmission mode.
func (p InheritancePattern) IsValid() bool {
	switch p {
	case AutosomalRecessive, AutosomalDominant, XLinked:
		return true
	default:
		return false
	}
}

// String returns the string representation of the pattern.
func (p InheritancePattern) String() string {
	return string(p)
}

// Severity grades the clinical impact of a disease.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// IsValid checks whether the severity is a known grade.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	default:
		return false
	}
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// CarrierStatus classifies a pet's relationship to a disease.
type CarrierStatus string

const (
	StatusClear    CarrierStatus = "clear"
	StatusCarrier  CarrierStatus = "carrier"
	StatusAffected CarrierStatus = "affected"
)

// String returns the string representation of the status.
func (c CarrierStatus) String() string {
	return string(c)
}

// Disease is a heritable condition tracked by the risk analyzer.
type Disease struct {
	ID                 string             `json:"diseaseId"`
	Name               string             `json:"diseaseName"`
	Inheritance        InheritancePattern `json:"inheritancePattern"`
	RiskSNPs           []string           `json:"riskSnps"`
	BaselineRisk       float64            `json:"baselineRisk"`
	Severity           Severity           `json:"severity"`
	PreventionMeasures []string           `json:"preventionMeasures"`
}

// defaultDiseases is the built-in reference table. Marker ids are the
// panel positions the commercial test providers report for each
// condition.
var defaultDiseases = []Disease{
	{
		ID:           "hip_dysplasia",
		Name:         "Hip Dysplasia",
		Inheritance:  AutosomalRecessive,
		RiskSNPs:     []string{"rs8679508", "rs8679509", "rs8679510"},
		BaselineRisk: 0.25,
		Severity:     SeverityHigh,
		PreventionMeasures: []string{
			"Maintain healthy weight",
			"Regular exercise",
			"Joint supplements",
			"Avoid high-impact activities",
		},
	},
	{
		ID:           "elbow_dysplasia",
		Name:         "Elbow Dysplasia",
		Inheritance:  AutosomalRecessive,
		RiskSNPs:     []string{"rs8679511", "rs8679512"},
		BaselineRisk: 0.15,
		Severity:     SeverityHigh,
		PreventionMeasures: []string{
			"Controlled growth",
			"Proper nutrition",
			"Limited jumping",
			"Regular vet checkups",
		},
	},
	{
		ID:           "pra",
		Name:         "Progressive Retinal Atrophy",
		Inheritance:  AutosomalRecessive,
		RiskSNPs:     []string{"rs8679513", "rs8679514"},
		BaselineRisk: 0.08,
		Severity:     SeverityHigh,
		PreventionMeasures: []string{
			"Regular eye exams",
			"Antioxidant supplements",
			"Genetic testing",
			"Breeding selection",
		},
	},
	{
		ID:           "cea",
		Name:         "Collie Eye Anomaly",
		Inheritance:  AutosomalRecessive,
		RiskSNPs:     []string{"rs8679515"},
		BaselineRisk: 0.05,
		Severity:     SeverityMedium,
		PreventionMeasures: []string{
			"Ophthalmologic exams",
			"Genetic screening",
			"Breeding recommendations",
		},
	},
	{
		ID:           "dm",
		Name:         "Degenerative Myelopathy",
		Inheritance:  AutosomalRecessive,
		RiskSNPs:     []string{"rs8679516"},
		BaselineRisk: 0.03,
		Severity:     SeverityCritical,
		PreventionMeasures: []string{
			"Physical therapy",
			"Mobility aids",
			"Genetic counseling",
			"Avoid breeding affected dogs",
		},
	},
	{
		ID:           "hcm",
		Name:         "Hypertrophic Cardiomyopathy",
		Inheritance:  AutosomalDominant,
		RiskSNPs:     []string{"rs8679517", "rs8679518"},
		BaselineRisk: 0.1,
		Severity:     SeverityCritical,
		PreventionMeasures: []string{
			"Annual cardiac ultrasound",
			"Genetic screening",
			"Avoid breeding affected cats",
		},
	},
	{
		ID:           "xl_md",
		Name:         "X-Linked Muscular Dystrophy",
		Inheritance:  XLinked,
		RiskSNPs:     []string{"rs8679519"},
		BaselineRisk: 0.02,
		Severity:     SeverityCritical,
		PreventionMeasures: []string{
			"Genetic counseling",
			"Carrier screening of dams",
			"Physical therapy",
		},
	},
}

//Personal.AI order the ending
