package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/PetMatch-Engine/internal/domain/genetics"
	"github.com/turtacn/PetMatch-Engine/pkg/types/common"
)

// NewGeneticCmd creates the genetic command group.
func NewGeneticCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genetic",
		Short: "Genetic profile loading and pairwise DNA analysis",
	}

	cmd.AddCommand(newGeneticLoadCmd())
	cmd.AddCommand(newGeneticCompatCmd())

	return cmd
}

func newGeneticLoadCmd() *cobra.Command {
	var (
		petID    string
		provider string
	)

	cmd := &cobra.Command{
		Use:   "load <markers.json>",
		Short: "Derive a genetic profile from a raw marker file",
		Long:  "Reads a provider export of rs-prefixed SNP markers and prints the derived profile.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			var raw map[string]string
			if err := readJSONFile(args[0], &raw); err != nil {
				return err
			}

			profile, err := cliCtx.Service.LoadGeneticProfile(cmd.Context(),
				common.PetID(petID), raw, genetics.Provider(provider))
			if err != nil {
				return err
			}
			if cliCtx.OutputFormat == "json" {
				return PrintResult(cmd, "json", profile)
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"pet: %s\nprimary breed: %s (purity %.1f%%)\nmarkers: %d  heterozygosity: %.3f  inbreeding: %.3f\n",
				profile.PetID, profile.Breed, profile.BreedPurity,
				profile.TotalMarkers, profile.Heterozygosity, profile.InbreedingCoefficient)
			for _, r := range profile.DiseaseRisks {
				if r.Status != genetics.StatusClear {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s (risk %.3f)\n",
						r.Disease.Name, r.Status, r.Risk)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&petID, "pet-id", "", "pet identifier")
	cmd.Flags().StringVar(&provider, "provider", string(genetics.ProviderOther),
		"test provider (embark/wisdom_panel/other)")
	_ = cmd.MarkFlagRequired("pet-id")
	return cmd
}

func newGeneticCompatCmd() *cobra.Command {
	var (
		petAID   string
		petBID   string
		provider string
	)

	cmd := &cobra.Command{
		Use:   "compat <markersA.json> <markersB.json>",
		Short: "Run a pairwise genetic compatibility analysis",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			var rawA, rawB map[string]string
			if err := readJSONFile(args[0], &rawA); err != nil {
				return err
			}
			if err := readJSONFile(args[1], &rawB); err != nil {
				return err
			}

			prov := genetics.Provider(provider)
			profA, err := cliCtx.Service.LoadGeneticProfile(cmd.Context(), common.PetID(petAID), rawA, prov)
			if err != nil {
				return err
			}
			profB, err := cliCtx.Service.LoadGeneticProfile(cmd.Context(), common.PetID(petBID), rawB, prov)
			if err != nil {
				return err
			}

			res, err := cliCtx.Service.CalculateGeneticCompatibility(cmd.Context(), profA, profB)
			if err != nil {
				return err
			}
			if cliCtx.OutputFormat == "json" {
				return PrintResult(cmd, "json", res)
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"analysis %s\nscore: %.1f  recommendation: %s\n%s\n",
				res.AnalysisID, res.CompatibilityScore, res.Recommendation,
				res.Recommendation.Description())
			if len(res.Reasoning) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), joinReasons(res.Reasoning))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&petAID, "pet-a", "pet-a", "first pet identifier")
	cmd.Flags().StringVar(&petBID, "pet-b", "pet-b", "second pet identifier")
	cmd.Flags().StringVar(&provider, "provider", string(genetics.ProviderOther),
		"test provider (embark/wisdom_panel/other)")
	return cmd
}

//Personal.AI order the ending
