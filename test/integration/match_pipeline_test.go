// Integration Test: Genetic Analysis and Pet Matching Pipeline
// Validates profile loading, pairwise genetic compatibility, and the full
// five-signal match aggregation through the application service.
package integration

import (
	"strings"
	"testing"

	"github.com/turtacn/PetMatch-Engine/internal/domain/genetics"
	commonTypes "github.com/turtacn/PetMatch-Engine/pkg/types/common"
)

// ---------------------------------------------------------------------------
// Test: genetic profile loading and pair analysis
// ---------------------------------------------------------------------------

func TestGeneticPipeline_EndToEnd(t *testing.T) {
	env := SetupTestEnvironment(t)

	t.Run("CarrierDetection", func(t *testing.T) {
		profile, err := env.Service.LoadGeneticProfile(env.Ctx, "pet-1", carrierMarkers("rs8679513"), genetics.ProviderEmbark)
		if err != nil {
			t.Fatalf("LoadGeneticProfile: %v", err)
		}
		risk, ok := profile.RiskFor("pra")
		if !ok {
			t.Fatal("profile should carry a PRA risk entry")
		}
		if risk.Status != genetics.StatusCarrier {
			t.Fatalf("heterozygous risk marker should yield carrier status, got %s", risk.Status)
		}
		t.Logf("PRA carrier detected, risk %.3f ✓", risk.Risk)
	})

	t.Run("CleanProfile", func(t *testing.T) {
		profile, err := env.Service.LoadGeneticProfile(env.Ctx, "pet-2", cleanMarkers(), genetics.ProviderWisdomPanel)
		if err != nil {
			t.Fatalf("LoadGeneticProfile: %v", err)
		}
		for _, risk := range profile.DiseaseRisks {
			if risk.Status != genetics.StatusClear || risk.Risk != 0 {
				t.Fatalf("clean markers should yield all-clear risks, got %s=%s", risk.Disease.ID, risk.Status)
			}
		}
	})

	t.Run("RecessivePairing", func(t *testing.T) {
		a, err := env.Service.LoadGeneticProfile(env.Ctx, "dam", carrierMarkers("rs8679513"), genetics.ProviderEmbark)
		if err != nil {
			t.Fatalf("LoadGeneticProfile: %v", err)
		}
		b, err := env.Service.LoadGeneticProfile(env.Ctx, "sire", carrierMarkers("rs8679513"), genetics.ProviderEmbark)
		if err != nil {
			t.Fatalf("LoadGeneticProfile: %v", err)
		}

		res, err := env.Service.CalculateGeneticCompatibility(env.Ctx, a, b)
		if err != nil {
			t.Fatalf("CalculateGeneticCompatibility: %v", err)
		}
		var predicted bool
		for _, d := range res.PredictedOffspring.ExpectedDiseases {
			if d.Disease == "Progressive Retinal Atrophy" {
				predicted = true
				if d.InheritanceRisk != 0.25 {
					t.Fatalf("carrier x carrier recessive risk should be 0.25, got %.2f", d.InheritanceRisk)
				}
			}
		}
		if !predicted {
			t.Fatal("carrier x carrier pairing should predict the recessive disease")
		}
		var hasEyeExams bool
		for _, m := range res.PreventionMeasures {
			if m == "Regular eye exams" {
				hasEyeExams = true
			}
		}
		if !hasEyeExams {
			t.Fatalf("prevention measures should include the disease-specific entry, got %v", res.PreventionMeasures)
		}
	})

	t.Run("CleanPairing", func(t *testing.T) {
		a, err := env.Service.LoadGeneticProfile(env.Ctx, "pet-3", cleanMarkers(), genetics.ProviderEmbark)
		if err != nil {
			t.Fatalf("LoadGeneticProfile: %v", err)
		}
		b, err := env.Service.LoadGeneticProfile(env.Ctx, "pet-4", cleanMarkers(), genetics.ProviderEmbark)
		if err != nil {
			t.Fatalf("LoadGeneticProfile: %v", err)
		}

		res, err := env.Service.CalculateGeneticCompatibility(env.Ctx, a, b)
		if err != nil {
			t.Fatalf("CalculateGeneticCompatibility: %v", err)
		}
		if res.CompatibilityScore != 73 {
			t.Fatalf("clean pairing should score 73, got %.1f", res.CompatibilityScore)
		}
		if res.Recommendation != genetics.Recommended {
			t.Fatalf("clean pairing should be recommended, got %s", res.Recommendation)
		}
		if len(res.PredictedOffspring.ExpectedDiseases) != 0 {
			t.Fatalf("clean pairing should predict no diseases, got %v", res.PredictedOffspring.ExpectedDiseases)
		}
	})
}

// ---------------------------------------------------------------------------
// Test: five-signal match aggregation
// ---------------------------------------------------------------------------

func TestMatchPipeline_EndToEnd(t *testing.T) {
	env := SetupTestEnvironment(t)

	t.Run("FullProfiles", func(t *testing.T) {
		temper := []float64{0.8, 0.6, 0.9}
		a := newPetProfile("pet-1", "Rex", commonTypes.SpeciesDog, "Golden Retriever", commonTypes.GenderMale, 4, temper)
		b := newPetProfile("pet-2", "Luna", commonTypes.SpeciesDog, "Labrador Retriever", commonTypes.GenderFemale, 4, temper)

		res, err := env.Service.CalculatePetCompatibility(env.Ctx, a, b)
		if err != nil {
			t.Fatalf("CalculatePetCompatibility: %v", err)
		}
		if res.Score != 96 {
			t.Fatalf("full-signal pairing should score 96, got %d", res.Score)
		}
		if res.Confidence != 80 {
			t.Fatalf("four of five signals should yield confidence 80, got %.1f", res.Confidence)
		}
		if len(res.Reasons) != 4 {
			t.Fatalf("expected 4 reasons, got %v", res.Reasons)
		}
		t.Logf("full match: score %d confidence %.0f ✓", res.Score, res.Confidence)
	})

	t.Run("SpeciesVeto", func(t *testing.T) {
		a := newPetProfile("pet-1", "Rex", commonTypes.SpeciesDog, "Golden Retriever", commonTypes.GenderMale, 4, nil)
		b := newPetProfile("pet-3", "Misu", commonTypes.SpeciesCat, "Siamese", commonTypes.GenderFemale, 4, nil)

		res, err := env.Service.CalculatePetCompatibility(env.Ctx, a, b)
		if err != nil {
			t.Fatalf("CalculatePetCompatibility: %v", err)
		}
		if res.Score >= 30 {
			t.Fatalf("cross-species match should score below 30, got %d", res.Score)
		}
		if len(res.Reasons) == 0 || !strings.HasPrefix(res.Reasons[0], "Different species") {
			t.Fatalf("first reason should warn about species, got %v", res.Reasons)
		}
	})

	t.Run("SelfMatchRejected", func(t *testing.T) {
		a := newPetProfile("pet-1", "Rex", commonTypes.SpeciesDog, "Golden Retriever", commonTypes.GenderMale, 4, nil)
		if _, err := env.Service.CalculatePetCompatibility(env.Ctx, a, a); err == nil {
			t.Fatal("matching a pet with itself should fail")
		}
	})

	t.Run("DNASignalWired", func(t *testing.T) {
		ga, err := env.Service.LoadGeneticProfile(env.Ctx, "pet-1", cleanMarkers(), genetics.ProviderEmbark)
		if err != nil {
			t.Fatalf("LoadGeneticProfile: %v", err)
		}
		gb, err := env.Service.LoadGeneticProfile(env.Ctx, "pet-2", cleanMarkers(), genetics.ProviderEmbark)
		if err != nil {
			t.Fatalf("LoadGeneticProfile: %v", err)
		}

		a := newPetProfile("pet-1", "Rex", commonTypes.SpeciesDog, "", commonTypes.GenderMale, 0, nil)
		a.Genetic = ga
		a.HasDNAData = true
		b := newPetProfile("pet-2", "Luna", commonTypes.SpeciesDog, "", commonTypes.GenderFemale, 0, nil)
		b.Genetic = gb
		b.HasDNAData = true
		a.BirthDate, b.BirthDate = nil, nil

		res, err := env.Service.CalculatePetCompatibility(env.Ctx, a, b)
		if err != nil {
			t.Fatalf("CalculatePetCompatibility: %v", err)
		}
		// Genetic 73 blended over neutral-and-gender signals:
		// raw = 50*0.4 + 50*0.3 + 50*0.2 + 80*0.1 = 53; 73*0.4 + 53*0.6 = 61.
		if res.Score != 61 {
			t.Fatalf("DNA-blended score should be 61, got %d", res.Score)
		}
	})
}

//Personal.AI order the ending
