package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/PetMatch-Engine/internal/domain/matching"
)

// NewMatchCmd creates the match command.
func NewMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <petA.json> <petB.json>",
		Short: "Score the compatibility of two pets",
		Long:  "Reads two pet profile JSON files and prints the aggregated match result.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			var petA, petB matching.PetProfile
			if err := readJSONFile(args[0], &petA); err != nil {
				return err
			}
			if err := readJSONFile(args[1], &petB); err != nil {
				return err
			}

			res, err := cliCtx.Service.CalculatePetCompatibility(cmd.Context(), &petA, &petB)
			if err != nil {
				return err
			}
			if cliCtx.OutputFormat == "json" {
				return PrintResult(cmd, "json", res)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s x %s\nscore: %d  confidence: %.0f%%\n%s\n",
				petLabel(&petA), petLabel(&petB), res.Score, res.Confidence, joinReasons(res.Reasons))
			return nil
		},
	}
}

func petLabel(p *matching.PetProfile) string {
	if p.Name != "" {
		return p.Name
	}
	return string(p.ID)
}

//Personal.AI order the ending
