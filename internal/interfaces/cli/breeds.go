package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewBreedsCmd creates the breeds command group.
func NewBreedsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breeds",
		Short: "Breed taxonomy and compatibility queries",
	}

	cmd.AddCommand(newBreedsListCmd())
	cmd.AddCommand(newBreedsSearchCmd())
	cmd.AddCommand(newBreedsCompatCmd())
	cmd.AddCommand(newBreedsCompatibleCmd())

	return cmd
}

func newBreedsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all known breeds",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			breeds := cliCtx.Service.GetAllBreeds(cmd.Context())
			if cliCtx.OutputFormat == "json" {
				return PrintResult(cmd, "json", breeds)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSPECIES\tGROUP\tSIZE\tENERGY")
			for _, b := range breeds {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", b.Name, b.Species, b.Group, b.Size, b.Energy)
			}
			return w.Flush()
		},
	}
}

func newBreedsSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search breeds by name or group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			found := cliCtx.Service.SearchBreeds(cmd.Context(), args[0])
			if len(found) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no breeds matching %q\n", args[0])
				return nil
			}
			return PrintResult(cmd, cliCtx.OutputFormat, found)
		},
	}
}

func newBreedsCompatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compat <breedA> <breedB>",
		Short: "Score the compatibility of two breeds",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			res := cliCtx.Service.CalculateBreedCompatibility(cmd.Context(), args[0], args[1])
			if cliCtx.OutputFormat == "json" {
				return PrintResult(cmd, "json", res)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s x %s\nscore: %d  confidence: %.2f\n%s\n",
				args[0], args[1], res.Score, res.Confidence, joinReasons(res.Reasons))
			return nil
		},
	}
}

func newBreedsCompatibleCmd() *cobra.Command {
	var minScore int

	cmd := &cobra.Command{
		Use:   "compatible <breed>",
		Short: "Rank breeds compatible with the given one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			ranked := cliCtx.Service.GetCompatibleBreeds(cmd.Context(), args[0], minScore)
			if len(ranked) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no compatible breeds for %q at min score %d\n", args[0], minScore)
				return nil
			}
			if cliCtx.OutputFormat == "json" {
				return PrintResult(cmd, "json", ranked)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BREED\tSCORE")
			for _, r := range ranked {
				fmt.Fprintf(w, "%s\t%d\n", r.Breed, r.Score)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&minScore, "min-score", 70, "minimum compatibility score")
	return cmd
}

//Personal.AI order the ending
